package cmd

import (
	"fmt"

	"github.com/gurisko/sentrycli/internal/config"
	"github.com/gurisko/sentrycli/internal/debug"
	"github.com/spf13/cobra"
)

var (
	configOrg   string
	configToken string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configure organization and auth token",
	Long: `Store the organization slug and auth token used by the other commands.

Only the values passed are changed; the other one is kept.

Examples:
  sentry config -o my-org
  sentry config -t sntryu_xxx
  sentry config --org my-org --token sntryu_xxx`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().StringVarP(&configOrg, "org", "o", "", "organization slug (e.g. my-org)")
	configCmd.Flags().StringVarP(&configToken, "token", "t", "", "auth token (from sentry.io/settings/auth-tokens/)")
}

func runConfig(cmd *cobra.Command, args []string) error {
	store := newStore()

	cfg, err := store.Load()
	if err != nil {
		// Start over so a broken file can be rewritten
		debug.Log("ignoring unreadable config", "error", err)
		cfg = config.Config{}
	}

	var update config.Config
	if cmd.Flags().Changed("org") {
		update.Organization = config.String(configOrg)
	}
	if cmd.Flags().Changed("token") {
		update.AuthToken = config.String(configToken)
	}

	if err := store.Save(cfg.Merge(update)); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Config saved to %s\n", store.Path)
	return nil
}
