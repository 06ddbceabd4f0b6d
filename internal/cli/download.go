// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Levi Kanwischer

package cli

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/upsight-tools/go-datamine"
)

var (
	downloadUsername string
	downloadPassword string
	downloadQuery    string
	downloadFilename string
)

// downloadCmd executes a query and writes its result set to a local file.
var downloadCmd = &cobra.Command{
	Use:   "download",
	Short: "Execute a query and download the result set to a file",
	RunE: func(cmd *cobra.Command, args []string) error {
		dm, err := buildClient(downloadUsername, downloadPassword)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		err = dm.WithSession(ctx, func(dm *datamine.DataMine) error {
			if err := dm.Execute(ctx, downloadQuery); err != nil {
				return err
			}
			return dm.Download(downloadFilename)
		})
		if err != nil {
			return err
		}

		pterm.Success.Printfln("Results written to %s", downloadFilename)
		return nil
	},
}

func init() {
	downloadCmd.Flags().StringVarP(&downloadUsername, "username", "u", "", "Username for the DataMine service")
	downloadCmd.Flags().StringVarP(&downloadPassword, "password", "p", "", "Password for the DataMine service (prefer DATAMINE_PASSWORD)")
	downloadCmd.Flags().StringVarP(&downloadQuery, "query", "q", "", "Query string to execute")
	downloadCmd.Flags().StringVarP(&downloadFilename, "filename", "f", "", "File to download the results to")
	_ = downloadCmd.MarkFlagRequired("query")
	_ = downloadCmd.MarkFlagRequired("filename")

	rootCmd.AddCommand(downloadCmd)
}
