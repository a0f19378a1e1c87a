package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "idlectl",
		Short: "IdleForge operator tool",
		Long: `Runs maintenance tasks against the configured IdleForge store.
Reads the same environment (and optional .env file) as the server.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newMigrateCmd(),
		newStatusCmd(),
		newBonusCmd(),
		newPlayersCmd(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
