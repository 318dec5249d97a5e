package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/blogem/adminjournal/config"
	"github.com/blogem/adminjournal/logger"
)

type runtimeState struct {
	envFiles []string
	provider config.Provider
	logger   *zap.Logger
	writer   io.Writer
}

type runtimeKey struct{}

// NewRootCommand builds the adminjournal command tree
func NewRootCommand(out io.Writer) *cobra.Command {
	rt := &runtimeState{writer: out, provider: config.Env{}}

	root := &cobra.Command{
		Use:           "adminjournal",
		Short:         "Audit journal for admin operations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if rt.writer == nil {
				rt.writer = cmd.OutOrStdout()
			}
			if err := config.LoadDotEnv(rt.envFiles...); err != nil {
				return fmt.Errorf("failed to load the env vars: %w", err)
			}

			settings := rt.provider.Settings()
			log, err := logger.New(settings.AppLogLevel, settings.AppLogDevelop)
			if err != nil {
				return fmt.Errorf("invalid LOG_LEVEL %q: %w", settings.AppLogLevel, err)
			}
			rt.logger = log
			zap.ReplaceGlobals(log)
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if rt.logger != nil {
				_ = rt.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringSliceVar(&rt.envFiles, "env-file", nil, "Environment files to load (default .env)")

	root.SetContext(context.WithValue(context.Background(), runtimeKey{}, rt))

	root.AddCommand(
		NewServeCommand(),
		NewClearCommand(),
		NewMigrateCommand(),
	)

	return root
}

func getRuntime(cmd *cobra.Command) (*runtimeState, error) {
	rt, ok := cmd.Context().Value(runtimeKey{}).(*runtimeState)
	if !ok || rt == nil {
		return nil, fmt.Errorf("runtime not initialized")
	}
	return rt, nil
}

// Execute runs the root command and returns the process exit code
func Execute() int {
	root := NewRootCommand(os.Stdout)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}
