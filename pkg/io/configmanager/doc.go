// Package configmanager resolves the options that drive project provisioning.
//
// Options start from a named preset and are overlaid, in increasing order of
// precedence, by a YAML config file, NODE_DOCKER_CLI_* environment variables
// and command-line flags.
package configmanager
