package main

import (
	"fmt"

	"github.com/aretw0/tmsim"
	"github.com/aretw0/tmsim/internal/cli"
	"github.com/aretw0/tmsim/pkg/domain"
	"github.com/spf13/cobra"
)

func newSimulateCmd(op domain.Operation, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   fmt.Sprintf("%s <x> <y>", op),
		Short: short,
		Long: fmt.Sprintf(`Runs the %s machine on x and y, writes the trace file %s_<x>_<y>
and prints the interpreted result.`, op, op),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := tmsim.ParseOperand(args[0])
			if err != nil {
				return err
			}
			y, err := tmsim.ParseOperand(args[1])
			if err != nil {
				return err
			}

			app, err := setupApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			printTrace, _ := cmd.Flags().GetBool("print")
			summary, _ := cmd.Flags().GetBool("summary")
			jsonMode, _ := cmd.Flags().GetBool("json")

			sc := cli.NewSignalContext(cmd.Context())
			defer sc.Cancel()

			return cli.RunSimulation(sc, app, op, x, y, cli.SimulateOptions{
				PrintTrace: printTrace,
				Summary:    summary,
				JSON:       jsonMode,
			}, cmd.OutOrStdout())
		},
	}

	cmd.Flags().Bool("print", false, "Print the trace to stdout")
	cmd.Flags().Bool("summary", false, "Print a markdown summary of the run")
	cmd.Flags().Bool("json", false, "Print the record as JSON")
	return cmd
}

func init() {
	rootCmd.AddCommand(
		newSimulateCmd(domain.OpAdd, "Add two numbers"),
		newSimulateCmd(domain.OpMultiply, "Multiply two numbers"),
		newSimulateCmd(domain.OpExponent, "Raise x to the power of y"),
	)
}
