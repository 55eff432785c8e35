package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/comitanigiacomo/kanso-ledger/internal/adapters/codec"
	"github.com/comitanigiacomo/kanso-ledger/internal/adapters/repository"
)

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a ledger as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			identity, _ := cmd.Flags().GetString("identity")
			out, _ := cmd.Flags().GetString("out")
			pretty, _ := cmd.Flags().GetBool("pretty")

			db, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer db.Close()

			ledger, err := repository.NewSQLLedgerRepository(db).Load(cmd.Context(), identity)
			if err != nil {
				return err
			}

			data, err := codec.Encode(ledger)
			if err != nil {
				return err
			}
			if pretty {
				var buf bytes.Buffer
				if err := json.Indent(&buf, data, "", "  "); err != nil {
					return err
				}
				data = buf.Bytes()
			}
			data = append(data, '\n')

			if out == "" || out == "-" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "exported %d days for %s to %s\n", len(ledger), identity, out)
			return nil
		},
	}

	identityFlag(cmd)
	cmd.Flags().StringP("out", "o", "", "Output file (default stdout)")
	cmd.Flags().Bool("pretty", false, "Indent the JSON")
	return cmd
}
