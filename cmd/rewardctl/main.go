package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/zeusync/rewardshaping/internal/core/observability/log"
	"github.com/zeusync/rewardshaping/internal/injector"
)

var (
	logLevel string
	verbose  bool

	kit *injector.Toolkit
)

var rootCmd = &cobra.Command{
	Use:   "rewardctl",
	Short: "Inspect and evaluate shaped rewards",
	Long: `rewardctl builds rewards from a YAML or JSON config and replays recorded
episodes through them, printing the per-term breakdown of every reward.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := log.ParseLevel(logLevel)
		if verbose {
			level = log.LevelDebug
		}
		kit = injector.InitializeToolkit(level)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if kit != nil {
			_ = kit.Log.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug, info, warn, error or silent")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(defaultsCmd, evalCmd)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
