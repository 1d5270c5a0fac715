package cmd

import "github.com/spf13/cobra"

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List projects in the organization",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		result, err := client.ListProjects(cmd.Context())
		if err != nil {
			return explainAuthError(err)
		}
		return printResult(cmd.OutOrStdout(), result)
	},
}

func init() {
	rootCmd.AddCommand(projectsCmd)
}
