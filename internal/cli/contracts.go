package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"imobdesk/internal/contract"
)

func newContractsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contracts",
		Short: "Manage contracts",
	}

	cmd.AddCommand(
		newContractsListCmd(),
		newContractsAddCmd(),
	)

	return cmd
}

func newContractsListCmd() *cobra.Command {
	var f contract.Filter

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List contracts",
		Long:  "List contracts, optionally filtered by search text, status and type.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runContractsList(f)
		},
	}

	cmd.Flags().StringVar(&f.Search, "search", "", "match against property title or client name")
	cmd.Flags().StringVar(&f.Status, "status", "", "filter by status (active|pending|expired)")
	cmd.Flags().StringVar(&f.Type, "type", "", "filter by type (sale|rental)")

	return cmd
}

func runContractsList(f contract.Filter) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	contracts, err := contract.NewRepository(st).List(cmdContext())
	if err != nil {
		return err
	}
	contracts = f.Apply(contracts)

	if isJSON() {
		return printJSON(contracts)
	}
	return printContractTable(contracts)
}

func newContractsAddCmd() *cobra.Command {
	var c contract.Contract

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a contract",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runContractsAdd(c)
		},
	}

	cmd.Flags().StringVar(&c.PropertyID, "property", "", "property id")
	cmd.Flags().StringVar(&c.PropertyTitle, "property-title", "", "property title snapshot")
	cmd.Flags().StringVar(&c.ClientName, "client", "", "client name snapshot")
	cmd.Flags().StringVar((*string)(&c.Type), "type", string(contract.TypeSale), "type (sale|rental)")
	cmd.Flags().StringVar(&c.Date, "date", "", "contract date (YYYY-MM-DD)")
	cmd.Flags().StringVar((*string)(&c.Status), "status", string(contract.StatusPending), "status (active|pending|expired)")
	cmd.Flags().Int64Var(&c.Value, "value", 0, "contract value")

	return cmd
}

func runContractsAdd(c contract.Contract) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	c.Type = contract.Type(strings.ToLower(string(c.Type)))
	created, err := contract.NewRepository(st).Create(cmdContext(), &c)
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(created)
	}

	fmt.Printf("Contract added: %s (%s)\n", created.PropertyTitle, created.ID)
	return nil
}
