// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Levi Kanwischer

// Package cli provides the command-line interface for the datamine client.
// It implements the show and download subcommands using the Cobra CLI
// framework, with pterm for terminal output.
package cli

import (
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/upsight-tools/go-datamine"
	"github.com/upsight-tools/go-datamine/internal/config"
	"github.com/upsight-tools/go-datamine/internal/logger"
)

var verbose bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:           "datamine",
	Short:         "Query the DataMine analytics service",
	Long:          `datamine is a command-line client for the DataMine analytics service: submit a query, then print the results to the console or download them to a file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute runs the CLI application.
// It executes the root command and handles any errors that occur during execution.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Emit debug logs to stderr")
}

// buildClient assembles a datamine client from the environment-backed
// configuration with the given flag values applied on top. The password
// falls back to DATAMINE_PASSWORD so it does not have to appear in shell
// history.
func buildClient(username, password string) (*datamine.DataMine, error) {
	cfg, err := config.GetConfig()
	if err != nil {
		return nil, err
	}

	if username == "" {
		username = cfg.Username
	}
	if password == "" {
		password = cfg.Password
	}

	opts := []datamine.Option{
		datamine.WithServer(cfg.Server),
		datamine.WithTimeout(cfg.RequestTimeout),
		datamine.WithPollInterval(cfg.PollInterval),
	}
	if verbose {
		opts = append(opts, datamine.WithLogger(logger.NewLogger("cli").Logger))
	}

	return datamine.New(username, password, opts...), nil
}
