package main

import (
	"fmt"

	"github.com/aretw0/tmsim"
	"github.com/aretw0/tmsim/internal/cli"
	"github.com/aretw0/tmsim/pkg/domain"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <operation> [x y]",
	Short: "Export a machine state diagram",
	Long: `Outputs a Mermaid diagram (graph TD) of the machine behind an operation.
With operands, the machine is run and the visited states are highlighted.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 && len(args) != 3 {
			return fmt.Errorf("expected <operation> or <operation> <x> <y>")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		op, err := domain.ParseOperation(args[0])
		if err != nil {
			return err
		}
		var operands []uint32
		for _, a := range args[1:] {
			n, err := tmsim.ParseOperand(a)
			if err != nil {
				return err
			}
			operands = append(operands, n)
		}

		app, err := setupApp(cmd)
		if err != nil {
			return err
		}
		defer app.Close()

		return cli.RunGraph(cmd.Context(), app, op, operands, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
