package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/blogem/adminjournal/config"
	"github.com/blogem/adminjournal/database"
	"github.com/blogem/adminjournal/repositories"
	"github.com/blogem/adminjournal/services"
)

// NewClearCommand deletes journal entries past the retention window
func NewClearCommand() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete journal entries older than JOURNAL_ENTRY_EXPIRY_DAYS",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := getRuntime(cmd)
			if err != nil {
				return err
			}

			settings := rt.provider.Settings()
			if !cmd.Flags().Changed("days") {
				days, err = config.EntryExpiryDays()
				if err != nil {
					return err
				}
			}

			dialect, err := database.ParseDialect(settings.DatabaseDriver)
			if err != nil {
				return err
			}
			db, err := database.InitializeDatabase(dialect, settings.DatabaseURL)
			if err != nil {
				return err
			}
			defer db.Close()

			cleanup := services.NewCleanupService(repositories.NewJournalRepository(db, dialect))
			deleted, err := cleanup.ClearExpired(cmd.Context(), days)
			if err != nil {
				return err
			}

			rt.logger.Debug("Journal cleared", zap.Int("days", days), zap.Int64("deleted", deleted))
			_, _ = fmt.Fprintf(rt.writer, "Operation successful. %d entries deleted.\n", deleted)
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 0, "Retention window in days (overrides JOURNAL_ENTRY_EXPIRY_DAYS)")

	return cmd
}
