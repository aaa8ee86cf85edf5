package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"imobdesk/internal/schedule"
)

func newScheduleCmd() *cobra.Command {
	var req schedule.Request

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Schedule a property visit",
		Long: `Schedule a property visit for a client.

Date format: YYYY-MM-DD
Time format: HH:MM

The client's scheduled-visits counter goes up by one. If the client id
is unknown the visit is still recorded and the counter step is skipped.

Examples:
  imob schedule --client 1 --agent 2 --property 3 --date 2025-04-12 --time 14:30
  imob schedule --client 1 --agent 2 --property 3 --date 2025-04-12 --time 14:30 --notes "bring the floor plan"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSchedule(req)
		},
	}

	cmd.Flags().StringVar(&req.ClientID, "client", "", "client id")
	cmd.Flags().StringVar(&req.AgentID, "agent", "", "agent id")
	cmd.Flags().StringVar(&req.PropertyID, "property", "", "property id")
	cmd.Flags().StringVar(&req.Date, "date", "", "visit date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&req.Time, "time", "", "visit time (HH:MM)")
	cmd.Flags().StringVarP(&req.Notes, "notes", "n", "", "optional notes about the visit")

	return cmd
}

func runSchedule(req schedule.Request) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	sched := schedule.New(st, schedule.Options{})
	v, err := sched.Schedule(cmdContext(), req)
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(v)
	}

	fmt.Printf("Visit scheduled: %s %s at %s (%s)\n", v.Date, v.Time, v.PropertyTitle, v.ID)
	if v.ClientName != "" {
		fmt.Printf("  for %s with %s\n", v.ClientName, v.AgentName)
	}
	return nil
}
