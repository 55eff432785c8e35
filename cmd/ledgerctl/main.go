// Command ledgerctl administers ledgers directly against the database:
// schema migration, JSON export and import, and terminal reports.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
