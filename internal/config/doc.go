// Package config provides configuration loading, merging, and validation
// for the datamine client and CLI.
//
// Configuration is assembled from two sources (earlier sources win over
// later non-zero fields):
//  1. Environment variables (DATAMINE_* prefix)
//  2. Built-in defaults
//
// Command-line flags are owned by the CLI layer and applied on top of the
// value returned by [GetConfig].
package config
