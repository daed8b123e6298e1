package main

import (
	"github.com/aretw0/tmsim/internal/cli"
	"github.com/spf13/cobra"
)

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Inspect stored simulation records",
}

var recordsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored record IDs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := setupApp(cmd)
		if err != nil {
			return err
		}
		defer app.Close()
		return cli.ListRecords(cmd.Context(), app, cmd.OutOrStdout())
	},
}

var recordsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print the trace of a stored record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonMode, _ := cmd.Flags().GetBool("json")
		app, err := setupApp(cmd)
		if err != nil {
			return err
		}
		defer app.Close()
		return cli.ShowRecord(cmd.Context(), app, args[0], jsonMode, cmd.OutOrStdout())
	},
}

var recordsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a stored record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := setupApp(cmd)
		if err != nil {
			return err
		}
		defer app.Close()
		return cli.DeleteRecord(cmd.Context(), app, args[0])
	},
}

func init() {
	recordsShowCmd.Flags().Bool("json", false, "Print the whole record as JSON")
	recordsCmd.AddCommand(recordsListCmd, recordsShowCmd, recordsDeleteCmd)
	rootCmd.AddCommand(recordsCmd)
}
