// Package cliapp implements the boilerpy command-line tool: single-shot
// extraction, batch extraction over glob patterns, and a watch mode that
// re-extracts on file change.
package cliapp

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var (
	flagConfigPath string
	flagLogLevel   string
	flagLogFile    string

	logger *slog.Logger
	cfg    fileConfig
)

var rootCmd = &cobra.Command{
	Use:           "boilerpy",
	Short:         "Extract the main content from HTML documents",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = newLogger(flagLogLevel, flagLogFile)
		loaded, err := loadConfig(flagConfigPath)
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "boilerpy.yaml", "path to config file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "rotate logs through this file instead of stderr")

	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(watchCmd)
}
