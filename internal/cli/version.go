// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Levi Kanwischer

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the CLI version, overridden at build time via
// -ldflags "-X github.com/upsight-tools/go-datamine/internal/cli.Version=...".
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the datamine CLI version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("datamine %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
