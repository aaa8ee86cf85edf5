package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"imobdesk/internal/stats"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show dashboard statistics",
		Long:  "Summarize properties, clients, visits and contracts.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats()
		},
	}
}

func runStats() error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	summary, err := stats.Collect(cmdContext(), st)
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(summary)
	}

	fmt.Printf("Properties: %d\n", summary.Properties)
	for status, n := range summary.PropertiesByStatus {
		fmt.Printf("  %s: %d\n", status, n)
	}
	fmt.Printf("Clients: %d\n", summary.Clients)
	fmt.Printf("Visits: %d (%d today)\n", summary.Visits, summary.VisitsToday)
	for status, n := range summary.VisitsByStatus {
		fmt.Printf("  %s: %d\n", status, n)
	}
	fmt.Printf("Active contracts: %d\n", summary.ActiveContracts)
	fmt.Printf("Total contract value: R$%s\n", formatAmount(summary.TotalContractValue))
	return nil
}
