package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blogem/adminjournal/database"
)

// NewMigrateCommand applies pending schema migrations
func NewMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending journal schema migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := getRuntime(cmd)
			if err != nil {
				return err
			}

			settings := rt.provider.Settings()
			dialect, err := database.ParseDialect(settings.DatabaseDriver)
			if err != nil {
				return err
			}
			db, err := database.OpenDB(dialect, settings.DatabaseURL)
			if err != nil {
				return err
			}
			defer db.Close()

			applied, err := database.RunMigrations(db, dialect)
			if err != nil {
				return err
			}

			if len(applied) == 0 {
				_, _ = fmt.Fprintln(rt.writer, "No pending migrations.")
				return nil
			}
			for _, version := range applied {
				_, _ = fmt.Fprintf(rt.writer, "Applied %s\n", version)
			}
			return nil
		},
	}
}
