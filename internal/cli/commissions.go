package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"imobdesk/internal/commission"
)

func newCommissionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "commissions",
		Short: "Manage agent commissions",
	}

	cmd.AddCommand(
		newCommissionsListCmd(),
		newCommissionsAddCmd(),
	)

	return cmd
}

func newCommissionsListCmd() *cobra.Command {
	var f commission.Filter

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List commissions",
		Long:  "List commissions, optionally filtered by search text and status.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommissionsList(f)
		},
	}

	cmd.Flags().StringVar(&f.Search, "search", "", "match against agent, property or client name")
	cmd.Flags().StringVar(&f.Status, "status", "", "filter by status (paid|pending|processing)")

	return cmd
}

func runCommissionsList(f commission.Filter) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	commissions, err := commission.NewRepository(st).List(cmdContext())
	if err != nil {
		return err
	}
	commissions = f.Apply(commissions)

	if isJSON() {
		return printJSON(commissions)
	}
	return printCommissionTable(commissions)
}

func newCommissionsAddCmd() *cobra.Command {
	var c commission.Commission

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a commission",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommissionsAdd(c)
		},
	}

	cmd.Flags().StringVar(&c.AgentName, "agent", "", "agent name snapshot")
	cmd.Flags().StringVar(&c.PropertyTitle, "property-title", "", "property title snapshot")
	cmd.Flags().StringVar(&c.ClientName, "client", "", "client name snapshot")
	cmd.Flags().StringVar(&c.Date, "date", "", "commission date (YYYY-MM-DD)")
	cmd.Flags().StringVar((*string)(&c.Status), "status", string(commission.StatusPending), "status (paid|pending|processing)")
	cmd.Flags().Int64Var(&c.Value, "value", 0, "commission value")

	return cmd
}

func runCommissionsAdd(c commission.Commission) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	created, err := commission.NewRepository(st).Create(cmdContext(), &c)
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(created)
	}

	fmt.Printf("Commission added: %s (%s)\n", created.AgentName, created.ID)
	return nil
}
