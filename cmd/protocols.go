package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"strokeaid/internal/diagnosis"
	"strokeaid/internal/protocol"
)

var protocolsCmd = &cobra.Command{
	Use:   "protocols",
	Short: "Print the four action protocol texts",
	RunE: func(cmd *cobra.Command, args []string) error {
		agentName, _ := cmd.Flags().GetString("agent")
		agent, err := protocol.LookupAgent(agentName)
		if err != nil {
			return err
		}

		variants := []struct {
			title    string
			st       diagnosis.StrokeType
			eligible bool
		}{
			{"HEMORRHAGIC", diagnosis.Hemorrhagic, false},
			{"ISCHEMIC, THROMBOLYSIS-ELIGIBLE", diagnosis.Ischemic, true},
			{"ISCHEMIC, OUTSIDE WINDOW", diagnosis.Ischemic, false},
			{"UNCERTAIN", diagnosis.Uncertain, false},
		}

		sep := strings.Repeat("─", 72)
		for _, v := range variants {
			text, err := protocol.Select(v.st, v.eligible, agent)
			if err != nil {
				return err
			}
			fmt.Println(sep)
			fmt.Println(v.title)
			fmt.Println(sep)
			fmt.Println(text)
			fmt.Println()
		}
		return nil
	},
}

func init() {
	protocolsCmd.Flags().StringP("agent", "a", "alteplase", "Thrombolytic agent regime for the eligible variant")
}
