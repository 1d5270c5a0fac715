package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gurisko/sentrycli/internal/apiclient"
	"github.com/spf13/cobra"
)

// issueViews maps the optional second argument of `issue` to a fetcher.
var issueViews = map[string]func(*apiclient.Client, context.Context, string) (json.RawMessage, error){
	"":       (*apiclient.Client).GetIssue,
	"latest": (*apiclient.Client).GetIssueLatestEvent,
	"events": (*apiclient.Client).GetIssueEvents,
	"hashes": (*apiclient.Client).GetIssueHashes,
}

var issueCmd = &cobra.Command{
	Use:   "issue <id> [latest|events|hashes]",
	Short: "Get issue details",
	Long: `Print an issue, or one of its sub-resources.

  latest   the most recent event of the issue
  events   events of the issue (first page)
  hashes   fingerprint hashes grouped into the issue

Examples:
  sentry issue 4512345678
  sentry issue 4512345678 latest`,
	Args: cobra.RangeArgs(1, 2),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) == 1 {
			return []string{"latest", "events", "hashes"}, cobra.ShellCompDirectiveNoFileComp
		}
		return nil, cobra.ShellCompDirectiveNoFileComp
	},
	RunE: runIssue,
}

func init() {
	rootCmd.AddCommand(issueCmd)
}

func runIssue(cmd *cobra.Command, args []string) error {
	issueID := args[0]
	view := ""
	if len(args) > 1 {
		view = args[1]
	}
	fetch, ok := issueViews[view]
	if !ok || (len(args) > 1 && view == "") {
		return fmt.Errorf("unknown issue subcommand %q (expected latest, events or hashes)", view)
	}

	client, err := newClient()
	if err != nil {
		return err
	}
	result, err := fetch(client, cmd.Context(), issueID)
	if err != nil {
		if apiclient.IsNotFound(err) {
			return fmt.Errorf("issue %q not found: %w", issueID, err)
		}
		return explainAuthError(err)
	}
	return printResult(cmd.OutOrStdout(), result)
}
