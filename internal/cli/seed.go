package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"imobdesk/internal/seed"
)

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the demo dataset",
		Long:  "Load the demo dataset into the database. Collections that already hold records are left untouched.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed()
		},
	}
}

func runSeed() error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	if err := seed.Load(cmdContext(), st); err != nil {
		return err
	}

	fmt.Println("Demo data loaded")
	return nil
}
