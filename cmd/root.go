package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/haguru/userstub/config"
	"github.com/haguru/userstub/internal/app"
	"github.com/spf13/cobra"
)

// NewRootCommand builds the userstub command. It takes at most one
// argument, the TCP port to listen on.
func NewRootCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "userstub [port]",
		Short: "userstub serves an in-memory user collection over HTTP",
		Long: `userstub exposes CRUD operations over a single in-memory collection of
user records. It listens on localhost, port 8000 unless a port is given.
Nothing is persisted; GET /reset puts the collection back to its seed.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(args)
			if err != nil {
				return err
			}

			application, err := app.NewApp(cfg, nil)
			if err != nil {
				return err
			}

			return application.Run(cmd.Context())
		},
	}
}

// buildConfig loads the embedded configuration and applies the port argument.
func buildConfig(args []string) (*config.ServiceConfig, error) {
	cfg, err := config.DefaultConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if len(args) == 1 {
		if err := config.ValidatePort(args[0]); err != nil {
			return nil, err
		}
		cfg.Port = args[0]
	}

	return cfg, nil
}

// Execute runs the root command until SIGINT or SIGTERM.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
