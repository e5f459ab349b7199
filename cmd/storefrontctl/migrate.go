package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dwikikusuma/storefront/pkg/postgres"
)

func migrateCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePostgres(e); err != nil {
				return err
			}
			db, err := postgres.Open(e.cfg.Postgres)
			if err != nil {
				return err
			}
			defer db.Close()

			ctx, cancel := withTimeout(cmd, e)
			defer cancel()
			applied, err := postgres.Migrate(ctx, db, e.log)
			if err != nil {
				return err
			}
			if len(applied) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "schema is up to date")
				return nil
			}
			for _, v := range applied {
				fmt.Fprintf(cmd.OutOrStdout(), "applied %s\n", v)
			}
			return nil
		},
	}
}
