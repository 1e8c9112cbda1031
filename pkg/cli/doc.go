// Package cli holds the command-line layer of node-docker-cli.
//
//   - cli/cmd: cobra commands and flag wiring
//   - cli/ui: prompts, the banner and error handling shared by the commands
package cli
