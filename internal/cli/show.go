// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Levi Kanwischer

package cli

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/upsight-tools/go-datamine"
	"github.com/upsight-tools/go-datamine/models"
)

var (
	showUsername string
	showPassword string
	showQuery    string
	showRows     int
)

// showCmd executes a query and prints its result rows to the console.
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Execute a query and print result rows to the console",
	RunE: func(cmd *cobra.Command, args []string) error {
		dm, err := buildClient(showUsername, showPassword)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		return dm.WithSession(ctx, func(dm *datamine.DataMine) error {
			if err := dm.Execute(ctx, showQuery); err != nil {
				return err
			}

			var records []models.Record
			if showRows < 0 {
				records, err = dm.FetchAll()
			} else {
				records, err = dm.FetchMany(showRows)
			}
			if err != nil {
				return err
			}

			columns, err := dm.Columns()
			if err != nil {
				return err
			}

			data := pterm.TableData{columns}
			for _, record := range records {
				data = append(data, record.Values)
			}

			return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
		})
	},
}

func init() {
	showCmd.Flags().StringVarP(&showUsername, "username", "u", "", "Username for the DataMine service")
	showCmd.Flags().StringVarP(&showPassword, "password", "p", "", "Password for the DataMine service (prefer DATAMINE_PASSWORD)")
	showCmd.Flags().StringVarP(&showQuery, "query", "q", "", "Query string to execute")
	showCmd.Flags().IntVarP(&showRows, "rows", "r", -1, "Number of rows to show (default: all)")
	_ = showCmd.MarkFlagRequired("query")

	rootCmd.AddCommand(showCmd)
}
