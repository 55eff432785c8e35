package main

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"github.com/comitanigiacomo/kanso-ledger/internal/adapters/repository"
	"github.com/comitanigiacomo/kanso-ledger/internal/config"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "ledgerctl",
		Short:        "Administer Kanso daily ledgers",
		Long:         "ledgerctl migrates the schema, moves ledgers in and out as JSON and prints feedback reports.",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("env-file", ".env", "Environment file with DB_* settings")

	root.AddCommand(newMigrateCmd())
	root.AddCommand(newExportCmd())
	root.AddCommand(newImportCmd())
	root.AddCommand(newReportCmd())
	root.AddCommand(newListCmd())

	return root
}

// openStore connects to the database named by the environment. The in-memory
// driver is rejected since nothing would survive the command.
func openStore(cmd *cobra.Command) (*sqlx.DB, error) {
	envFile, _ := cmd.Flags().GetString("env-file")

	cfg, err := config.LoadStore(envFile)
	if err != nil {
		return nil, err
	}
	if cfg.DBDriver == config.DriverMemory {
		return nil, fmt.Errorf("ledgerctl needs DB_DRIVER=postgres or sqlite")
	}
	return repository.Open(cfg.DBDriver, cfg.DSN())
}

func identityFlag(cmd *cobra.Command) {
	cmd.Flags().String("identity", "", "Ledger identity (the account email)")
	_ = cmd.MarkFlagRequired("identity")
}
