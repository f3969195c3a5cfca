package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/camerondurham/typy-cli/internal/app"
	"github.com/camerondurham/typy-cli/internal/logging"
)

var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "typy: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "typy",
		Short:         "typy - a terminal typing practice tool",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.Open(logging.DefaultPath(), cmd.ErrOrStderr())
			defer func() { _ = logger.Close() }()

			return app.Run(cmd.Context(), app.Options{Logger: logger.Logger})
		},
	}
	root.AddCommand(newConfigCmd())
	return root
}
