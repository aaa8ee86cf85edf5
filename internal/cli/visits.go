package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"imobdesk/internal/schedule"
	"imobdesk/internal/visit"
)

func newVisitsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "visits",
		Short: "Manage scheduled visits",
	}

	cmd.AddCommand(
		newVisitsListCmd(),
		newVisitsShowCmd(),
		newVisitsStatusCmd(),
		newVisitsRemoveCmd(),
	)

	return cmd
}

func newVisitsListCmd() *cobra.Command {
	var f visit.Filter

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List visits",
		Long: `List visits, optionally filtered by search text, status and date.

The date filter matches the visit day exactly; both 2025-04-07 and
07/04/2025 are accepted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVisitsList(f)
		},
	}

	cmd.Flags().StringVar(&f.Search, "search", "", "match against client, agent, property title or address")
	cmd.Flags().StringVar(&f.Status, "status", "", "filter by status (scheduled|completed|canceled)")
	cmd.Flags().StringVar(&f.Date, "date", "", "filter by visit date")

	return cmd
}

func runVisitsList(f visit.Filter) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	visits, err := visit.NewRepository(st).List(cmdContext())
	if err != nil {
		return err
	}
	visits = f.Apply(visits)

	if isJSON() {
		return printJSON(visits)
	}
	return printVisitTable(visits)
}

func newVisitsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a visit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVisitsShow(args[0])
		},
	}
}

func runVisitsShow(id string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	v, err := visit.NewRepository(st).Get(cmdContext(), id)
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(v)
	}

	fmt.Printf("%s  %s %s  (%s)\n", v.ID, v.Date, v.Time, v.Status)
	fmt.Printf("  %s with %s\n", v.ClientName, v.AgentName)
	fmt.Printf("  %s, %s\n", v.PropertyTitle, v.PropertyAddress)
	if v.Notes != "" {
		fmt.Printf("  %s\n", v.Notes)
	}
	return nil
}

func newVisitsStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <id> <status>",
		Short: "Change a visit's status",
		Long:  "Set a visit's status to scheduled, completed or canceled.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVisitsStatus(args[0], args[1])
		},
	}
}

func runVisitsStatus(id, status string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	sched := schedule.New(st, schedule.Options{})
	v, err := sched.SetStatus(cmdContext(), id, visit.Status(strings.ToLower(status)))
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(v)
	}

	fmt.Printf("Visit %s is now %s\n", v.ID, v.Status)
	return nil
}

func newVisitsRemoveCmd() *cobra.Command {
	var decrement bool

	cmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a visit",
		Long: `Remove a visit.

By default the client's scheduled-visits counter is left alone, since it
counts visits ever scheduled. Pass --decrement to take it back down.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVisitsRemove(args[0], decrement)
		},
	}

	cmd.Flags().BoolVar(&decrement, "decrement", false, "also decrement the client's scheduled-visits counter")

	return cmd
}

func runVisitsRemove(id string, decrement bool) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	sched := schedule.New(st, schedule.Options{DecrementOnDelete: decrement})
	if err := sched.Delete(cmdContext(), id); err != nil {
		return err
	}

	fmt.Printf("Visit %s removed\n", id)
	return nil
}
