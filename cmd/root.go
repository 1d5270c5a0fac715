package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gurisko/sentrycli/internal/debug"
	"github.com/spf13/cobra"
)

var (
	debugFlag    bool
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "sentry",
	Short: "Sentry - read issues, events and projects from the Sentry API",
	Long: `sentry is a small read-only client for the Sentry web API.

Credentials are read from the config file written by 'sentry config', or from
~/.sentryclirc when that file does not exist. SENTRY_ORG and SENTRY_AUTH_TOKEN
override both.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		debug.SetEnabled(debugFlag)
		return validateFormat(outputFormat)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "log config and HTTP details to stderr")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", formatJSON, "output format: json or yaml")
}

func Execute() error {
	// Silence usage and errors to avoid cluttering output with Cobra defaults
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}
