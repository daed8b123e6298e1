package main

import (
	"github.com/aretw0/tmsim/internal/cli"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Exposes the simulator as a JSON API over HTTP, with Prometheus metrics on /metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")

		app, err := setupApp(cmd)
		if err != nil {
			return err
		}
		defer app.Close()

		sc := cli.NewSignalContext(cmd.Context())
		defer sc.Cancel()

		return cli.Serve(sc, app, addr)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("addr", "a", "", "Address to listen on (default from config, :8080)")
}
