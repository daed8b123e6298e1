package main

import (
	"fmt"
	"os"

	"github.com/aretw0/tmsim/internal/cli"
	"github.com/aretw0/tmsim/internal/config"
	"github.com/spf13/cobra"
)

// LegacyArgs accepts the classic "tmsim -add 3 5" form.
var LegacyArgs = cli.LegacyArgs

var rootCmd = &cobra.Command{
	Use:   "tmsim",
	Short: "tmsim simulates unary arithmetic on tape machines",
	Long: `tmsim runs addition, multiplication and exponentiation as small tape machines
and writes a step by step trace of every computation.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setupApp wires the application from the persistent flags.
func setupApp(cmd *cobra.Command) (*cli.App, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	debug, _ := cmd.Flags().GetBool("debug")
	logFile, _ := cmd.Flags().GetString("log-file")
	store, _ := cmd.Flags().GetString("store")
	dir, _ := cmd.Flags().GetString("dir")

	return cli.Setup(cli.Options{
		ConfigPath: cfgPath,
		Debug:      debug,
		LogFile:    logFile,
		Backend:    store,
		Dir:        dir,
	})
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "Configuration file (YAML or JSON)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("log-file", "", "Also write JSON logs to this file")
	rootCmd.PersistentFlags().String("store", "", "Record store backend: file, redis, memory or none")
	rootCmd.PersistentFlags().String("dir", "", "Directory for trace files (file backend)")
}
