package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "strokeaid",
	Short: "Deterministic stroke triage decision support",
	Long: "Strokeaid evaluates an acute stroke assessment and returns a classification,\n" +
		"a calibrated confidence, thrombolysis eligibility, and the action protocol.\n" +
		"Without a CT image the Siriraj clinical score decides; with one, an external\n" +
		"image capability does.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(protocolsCmd)
	rootCmd.AddCommand(agentsCmd)
	rootCmd.AddCommand(versionCmd)
}
