// Package cmd provides the command-line interface for node-docker-cli.
//
// The root command provisions a project; the presets subcommand prints the
// built-in option presets.
package cmd
