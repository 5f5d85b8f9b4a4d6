package main

import (
	"errors"
	"fmt"

	"pet-api/internal/adapters/storage/postgres"

	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if !cfg.UsesDatabase() {
				return errors.New("migrate requires a database DSN (--dsn or DB_DSN)")
			}
			log := newLogger(cfg)

			db, err := postgres.Open(cmd.Context(), cfg.DBDSN)
			if err != nil {
				return err
			}
			defer db.Close()

			applied, err := postgres.Migrate(cmd.Context(), db)
			if err != nil {
				log.Error("migrations failed", map[string]any{"error": err.Error()})
				return err
			}

			log.Info("migrations applied", map[string]any{"applied": applied})
			if len(applied) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "schema up to date")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "applied %d migration(s): %v\n", len(applied), applied)
			return nil
		},
	}
}
