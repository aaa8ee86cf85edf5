package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"imobdesk/internal/client"
	"imobdesk/internal/schedule"
)

func newClientsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clients",
		Short: "Manage clients",
	}

	cmd.AddCommand(
		newClientsListCmd(),
		newClientsShowCmd(),
		newClientsAddCmd(),
		newClientsViewCmd(),
		newClientsRemoveCmd(),
	)

	return cmd
}

func newClientsListCmd() *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List clients",
		Long:  "List clients, optionally filtered by search text over name, email, phone and city.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClientsList(search)
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "match against name, email, phone or city")

	return cmd
}

func runClientsList(search string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	clients, err := client.NewRepository(st).List(cmdContext())
	if err != nil {
		return err
	}
	clients = client.Search(clients, search)

	if isJSON() {
		return printJSON(clients)
	}
	return printClientTable(clients)
}

func newClientsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClientsShow(args[0])
		},
	}
}

func runClientsShow(id string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	c, err := client.NewRepository(st).Get(cmdContext(), id)
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(c)
	}

	fmt.Printf("%s  %s\n", c.ID, c.Name)
	fmt.Printf("  %s  %s\n", c.Email, c.Phone)
	if c.City != "" {
		fmt.Printf("  %s\n", c.City)
	}
	fmt.Printf("  %d properties viewed, %d visits scheduled\n", c.ViewedProperties, c.ScheduledVisits)
	return nil
}

func newClientsAddCmd() *cobra.Command {
	var c client.Client

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c.Name = args[0]
			return runClientsAdd(c)
		},
	}

	cmd.Flags().StringVar(&c.Email, "email", "", "email address")
	cmd.Flags().StringVar(&c.Phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&c.City, "city", "", "city")

	return cmd
}

func runClientsAdd(c client.Client) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	created, err := client.NewRepository(st).Create(cmdContext(), &c)
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(created)
	}

	fmt.Printf("Client added: %s (%s)\n", created.Name, created.ID)
	return nil
}

func newClientsViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view <id>",
		Short: "Record a property viewing for a client",
		Long:  "Increment a client's viewed-properties counter by one.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClientsView(args[0])
		},
	}
}

func runClientsView(id string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	if err := schedule.New(st, schedule.Options{}).RecordView(cmdContext(), id); err != nil {
		return err
	}

	c, err := client.NewRepository(st).Get(cmdContext(), id)
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(c)
	}

	fmt.Printf("%s has now viewed %d properties\n", c.Name, c.ViewedProperties)
	return nil
}

func newClientsRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClientsRemove(args[0])
		},
	}
}

func runClientsRemove(id string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	if err := client.NewRepository(st).Delete(cmdContext(), id); err != nil {
		return err
	}

	fmt.Printf("Client %s removed\n", id)
	return nil
}
