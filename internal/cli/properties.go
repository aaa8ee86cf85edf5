package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"imobdesk/internal/property"
)

func newPropertiesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "properties",
		Short: "Manage property listings",
	}

	cmd.AddCommand(
		newPropertiesListCmd(),
		newPropertiesShowCmd(),
		newPropertiesAddCmd(),
		newPropertiesStatusCmd(),
		newPropertiesRemoveCmd(),
	)

	return cmd
}

func newPropertiesListCmd() *cobra.Command {
	var f property.Filter

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List properties",
		Long:  "List properties, optionally filtered by search text, status, type, city and price range.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPropertiesList(f)
		},
	}

	cmd.Flags().StringVar(&f.Search, "search", "", "match against title, address or city")
	cmd.Flags().StringVar(&f.Status, "status", "", "filter by status (available|sold|pending)")
	cmd.Flags().StringVar(&f.Type, "type", "", "filter by type (house|apartment|condo|land)")
	cmd.Flags().StringVar(&f.City, "city", "", "filter by exact city")
	cmd.Flags().StringVar(&f.MinPrice, "min-price", "", "minimum price, inclusive")
	cmd.Flags().StringVar(&f.MaxPrice, "max-price", "", "maximum price, inclusive")

	return cmd
}

func runPropertiesList(f property.Filter) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	props, err := property.NewRepository(st).List(cmdContext())
	if err != nil {
		return err
	}
	props = f.Apply(props)

	if isJSON() {
		return printJSON(props)
	}
	return printPropertyTable(props)
}

func newPropertiesShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a property",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPropertiesShow(args[0])
		},
	}
}

func runPropertiesShow(id string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	p, err := property.NewRepository(st).Get(cmdContext(), id)
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(p)
	}

	fmt.Printf("%s  %s\n", p.ID, p.Title)
	fmt.Printf("  %s, %s\n", p.Address, p.City)
	fmt.Printf("  R$%s  %s  %s\n", formatAmount(p.Price), p.Type, p.Status)
	if p.Bedrooms != nil {
		fmt.Printf("  %d bedrooms", *p.Bedrooms)
		if p.Bathrooms != nil {
			fmt.Printf(", %g bathrooms", *p.Bathrooms)
		}
		fmt.Println()
	}
	if p.Area != nil {
		fmt.Printf("  %gm²\n", *p.Area)
	}
	return nil
}

func newPropertiesAddCmd() *cobra.Command {
	var p property.Property

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a property listing",
		Long: `Add a property listing.

Examples:
  imob properties add "Casa Moderna" --city "São Paulo" --price 850000 --type house
  imob properties add "Apartamento Centro" --city Campinas --price 420000 --type apartment --status pending`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p.Title = strings.Join(args, " ")
			return runPropertiesAdd(p)
		},
	}

	cmd.Flags().StringVar(&p.Address, "address", "", "street address")
	cmd.Flags().StringVar(&p.City, "city", "", "city")
	cmd.Flags().Int64Var(&p.Price, "price", 0, "asking price")
	cmd.Flags().StringVar((*string)(&p.Type), "type", string(property.TypeHouse), "type (house|apartment|condo|land)")
	cmd.Flags().StringVar((*string)(&p.Status), "status", string(property.StatusAvailable), "status (available|sold|pending)")

	return cmd
}

func runPropertiesAdd(p property.Property) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	created, err := property.NewRepository(st).Create(cmdContext(), &p)
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(created)
	}

	fmt.Printf("Property added: %s (%s)\n", created.Title, created.ID)
	return nil
}

func newPropertiesStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <id> <status>",
		Short: "Change a property's status",
		Long:  "Set a property's status to available, sold or pending.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPropertiesStatus(args[0], args[1])
		},
	}
}

func runPropertiesStatus(id, status string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	repo := property.NewRepository(st)
	p, err := repo.Get(cmdContext(), id)
	if err != nil {
		return err
	}

	p.Status = property.Status(strings.ToLower(status))
	if err := repo.Update(cmdContext(), p); err != nil {
		return err
	}

	if isJSON() {
		return printJSON(p)
	}

	fmt.Printf("Property %s is now %s\n", p.ID, p.Status)
	return nil
}

func newPropertiesRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a property",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPropertiesRemove(args[0])
		},
	}
}

func runPropertiesRemove(id string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	if err := property.NewRepository(st).Delete(cmdContext(), id); err != nil {
		return err
	}

	fmt.Printf("Property %s removed\n", id)
	return nil
}
