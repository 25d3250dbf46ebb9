package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

// app carries state shared by all subcommands.
type app struct {
	cfg    Config
	logger *slog.Logger
}

// log returns the configured logger, or slog's default before flags are parsed.
func (a *app) log() *slog.Logger {
	if a.logger == nil {
		return slog.Default()
	}

	return a.logger
}

func newRootCmd(a *app) *cobra.Command {
	var (
		logLevel  string
		logFormat string
	)

	rootCmd := &cobra.Command{
		Use:   "heldkarp",
		Short: "Exact Travelling Salesman solver (Held–Karp)",
		Long: `heldkarp computes the optimal round trip through a small set of cities
with the Held–Karp dynamic program. Time and memory grow as n²·2ⁿ, so
instances are limited to a couple of dozen cities.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(cmd.ErrOrStderr(), logLevel, logFormat)
			if err != nil {
				return err
			}
			a.logger = logger
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", a.cfg.LogLevel, "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", a.cfg.LogFormat, "log format: text or json")

	rootCmd.AddCommand(newSolveCmd(a), newMatrixCmd(a))

	return rootCmd
}
