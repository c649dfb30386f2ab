// Package cli implements bugctl, a command line client working directly on
// the JSON file store.
package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/bugtracker/internal/adapter/jsonfile"
	"github.com/heartmarshall/bugtracker/internal/adapter/pdf"
	"github.com/heartmarshall/bugtracker/internal/app"
	"github.com/heartmarshall/bugtracker/internal/config"
	bugsvc "github.com/heartmarshall/bugtracker/internal/service/bug"
)

type ctxKey string

const serviceKey ctxKey = "bug_service"

const exportTitle = "Bug report"

// Execute builds the root command and runs it.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// NewRootCmd constructs the command tree. Every subcommand gets a bug
// service over the store in --data-dir.
func NewRootCmd() *cobra.Command {
	var dataDir string
	var logLevel string

	cmd := &cobra.Command{
		Use:           "bugctl",
		Short:         "Inspect and export the bug collection",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.HasParent() {
				return nil
			}
			logger := app.NewLogger(config.LogConfig{Level: logLevel, Format: "text"}, cmd.ErrOrStderr())

			st, err := jsonfile.Open(dataDir)
			if err != nil {
				return err
			}
			svc := bugsvc.NewService(logger, st.Bugs, st.Users, pdf.NewRenderer(exportTitle))

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(context.WithValue(ctx, serviceKey, svc))
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&dataDir, "data-dir", "./data", "directory holding the JSON collections")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: debug|info|warn|error")

	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newExportCmd())
	cmd.AddCommand(newSeedCmd())

	cmd.Run = func(cmd *cobra.Command, args []string) { _ = cmd.Help() }

	return cmd
}

func getService(cmd *cobra.Command) (*bugsvc.Service, error) {
	svc, ok := cmd.Context().Value(serviceKey).(*bugsvc.Service)
	if !ok {
		return nil, errors.New("internal error: bug service not initialized")
	}
	return svc, nil
}
