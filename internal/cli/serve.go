package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"imobdesk/internal/logging"
	"imobdesk/internal/schedule"
	"imobdesk/internal/web"
)

func newServeCmd() *cobra.Command {
	var (
		port      int
		dev       bool
		decrement bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the JSON API server",
		Long:  "Start an HTTP server exposing the JSON API at /api and Prometheus metrics at /metrics.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(port, dev, decrement)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "port to listen on (default from IMOB_PORT or config)")
	cmd.Flags().BoolVar(&dev, "dev", false, "human-readable log output")
	cmd.Flags().BoolVar(&decrement, "decrement-on-delete", false, "decrement scheduled-visits counters when visits are deleted")

	return cmd
}

func runServe(port int, dev, decrement bool) error {
	logging.Setup(dev)

	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	if port == 0 {
		port = serverPort()
	}

	srv := web.NewServer(st, schedule.Options{DecrementOnDelete: decrement})

	slog.Info("starting server", "url", fmt.Sprintf("http://localhost:%d", port))
	return srv.ListenAndServe(port)
}
