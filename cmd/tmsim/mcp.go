package main

import (
	"github.com/aretw0/tmsim/internal/cli"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Model Context Protocol server",
	Long:  `Exposes the simulate and machine_graph tools over stdio, or over SSE when --port is set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		port, _ := cmd.Flags().GetInt("port")

		app, err := setupApp(cmd)
		if err != nil {
			return err
		}
		defer app.Close()

		sc := cli.NewSignalContext(cmd.Context())
		defer sc.Cancel()

		return cli.ServeMCP(sc, app, port)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
	mcpCmd.Flags().IntP("port", "p", 0, "Serve over SSE on this port instead of stdio")
}
