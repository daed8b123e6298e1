package main

import (
	"io"
	"os"

	"github.com/aretw0/tmsim/internal/cli"
	"github.com/spf13/cobra"
)

var batchCmd = &cobra.Command{
	Use:   "batch [file]",
	Short: "Run every \"<operation> <x> <y>\" line of a file (or stdin)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		withTrace, _ := cmd.Flags().GetBool("print")

		var in io.Reader = cmd.InOrStdin()
		if len(args) == 1 && args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			in = f
		}

		app, err := setupApp(cmd)
		if err != nil {
			return err
		}
		defer app.Close()

		sc := cli.NewSignalContext(cmd.Context())
		defer sc.Cancel()

		return cli.RunBatch(sc, app, in, cmd.OutOrStdout(), withTrace)
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)
	batchCmd.Flags().Bool("print", false, "Print the trace of every line")
}
