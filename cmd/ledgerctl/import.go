package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/comitanigiacomo/kanso-ledger/internal/adapters/codec"
	"github.com/comitanigiacomo/kanso-ledger/internal/adapters/repository"
)

func newImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Replace a ledger with the contents of a JSON file",
		Long:  "import validates the file against the ledger schema and the window invariants before overwriting the stored ledger.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			identity, _ := cmd.Flags().GetString("identity")
			file, _ := cmd.Flags().GetString("file")

			data, err := readInput(cmd, file)
			if err != nil {
				return err
			}

			ledger, err := codec.Decode(data)
			if err != nil {
				return err
			}

			db, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := repository.NewSQLLedgerRepository(db).Save(cmd.Context(), identity, ledger); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d days for %s\n", len(ledger), identity)
			return nil
		},
	}

	identityFlag(cmd)
	cmd.Flags().StringP("file", "f", "", "JSON file to import, - for stdin")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func readInput(cmd *cobra.Command, file string) ([]byte, error) {
	if file == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", file, err)
	}
	return data, nil
}
