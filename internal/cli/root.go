// Package cli defines the cobra command tree for imobdesk.
package cli

import (
	"context"

	"imobdesk/internal/store"
	"imobdesk/internal/store/sqlite"

	"github.com/spf13/cobra"
)

var (
	flagFormat string
	flagDB     string
)

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "imob",
		Short:         "Manage property listings, clients and visits",
		Long:          "A real-estate management tool. Track listings, clients, agents and scheduled visits; browse via CLI or serve a JSON API.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format (text|json)")
	root.PersistentFlags().StringVar(&flagDB, "db", "", "SQLite database path (default: ~/.config/imob/imobdesk.db)")

	root.AddCommand(
		newPropertiesCmd(),
		newClientsCmd(),
		newVisitsCmd(),
		newScheduleCmd(),
		newContractsCmd(),
		newCommissionsCmd(),
		newStatsCmd(),
		newSeedCmd(),
		newServeCmd(),
		newVersionCmd(),
	)

	return root
}

// openStore opens the SQLite store using the --db flag, config file, or
// default path.
func openStore() (store.Store, error) {
	path := flagDB
	if path == "" {
		path = databasePath()
	}
	if path == "" {
		var err error
		path, err = sqlite.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	st, err := sqlite.Open(path)
	if err != nil {
		return nil, err
	}
	return st, nil
}

// closeStore closes the store, logging any error to stderr.
func closeStore(st store.Store) {
	if err := st.Close(); err != nil {
		printWarning("closing store: %v", err)
	}
}

// cmdContext returns the context for one-shot CLI operations.
func cmdContext() context.Context {
	return context.Background()
}

// isJSON returns true if the --format flag is set to json.
func isJSON() bool {
	return flagFormat == "json"
}
