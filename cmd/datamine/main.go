// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Levi Kanwischer

// Package main is the entry point for the datamine CLI.
package main

import (
	"github.com/upsight-tools/go-datamine/internal/cli"
)

func main() {
	cli.Execute()
}
