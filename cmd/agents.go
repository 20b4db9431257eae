package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"strokeaid/internal/protocol"
)

var agentsCmd = &cobra.Command{
	Use:   "agents",
	Short: "List the built-in thrombolytic agent regimes",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("%-14s  %-10s  %-9s  %-7s  %s\n",
			"Agent", "Dose", "Max", "Bolus", "Infusion")
		for _, name := range protocol.AgentNames() {
			a, err := protocol.LookupAgent(name)
			if err != nil {
				return err
			}
			infusion := "single bolus"
			if a.InfusionMinutes > 0 {
				infusion = fmt.Sprintf("%d min", a.InfusionMinutes)
			}
			fmt.Printf("%-14s  %-10s  %-9s  %-7s  %s\n",
				a.Name,
				fmt.Sprintf("%g mg/kg", a.DoseMgPerKg),
				fmt.Sprintf("%g mg", a.MaxDoseMg),
				fmt.Sprintf("%g%%", a.BolusPercent),
				infusion,
			)
		}
		return nil
	},
}
