package cmd

import (
	"github.com/gurisko/sentrycli/internal/apiclient"
	"github.com/spf13/cobra"
)

var issuesQuery string

var issuesCmd = &cobra.Command{
	Use:   "issues <project>",
	Short: "List issues for a project",
	Long: `List the first page of issues in a project matching a search query.

Examples:
  sentry issues web
  sentry issues web -q "is:unresolved level:error"
  sentry issues web --query "assigned:me"`,
	Args: cobra.ExactArgs(1),
	RunE: runIssues,
}

func init() {
	rootCmd.AddCommand(issuesCmd)
	issuesCmd.Flags().StringVarP(&issuesQuery, "query", "q", "", "search query (default: "+apiclient.DefaultIssueQuery+")")
}

func runIssues(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	result, err := client.ListIssues(cmd.Context(), args[0], issuesQuery)
	if err != nil {
		return explainAuthError(err)
	}
	return printResult(cmd.OutOrStdout(), result)
}
