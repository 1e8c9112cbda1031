package cmd

import (
	"fmt"
	"os"

	"github.com/MunavvarSinan/node-docker-cli/pkg/cli/ui/errorhandler"
	runtime "github.com/MunavvarSinan/node-docker-cli/pkg/di"
	"github.com/MunavvarSinan/node-docker-cli/pkg/io/configmanager"
	"github.com/spf13/cobra"
)

// Flag names owned by the root command rather than the config manager.
const (
	ConfigFlagName  = "config"
	VerboseFlagName = "verbose"
	TimingFlagName  = "timing"
)

type rootSettings struct {
	runtime     *runtime.Runtime
	searchPaths []string
	workDir     string
	banner      bool
}

// RootOption customizes the root command.
type RootOption func(*rootSettings)

// WithRuntime replaces the default dependency runtime.
func WithRuntime(rt *runtime.Runtime) RootOption {
	return func(s *rootSettings) {
		s.runtime = rt
	}
}

// WithConfigSearchPaths replaces the directories searched for the config file.
func WithConfigSearchPaths(paths ...string) RootOption {
	return func(s *rootSettings) {
		s.searchPaths = paths
	}
}

// WithWorkDir creates projects under dir instead of the working directory.
func WithWorkDir(dir string) RootOption {
	return func(s *rootSettings) {
		s.workDir = dir
	}
}

// WithoutBanner suppresses the logo printed before provisioning.
func WithoutBanner() RootOption {
	return func(s *rootSettings) {
		s.banner = false
	}
}

// NewRootCmd creates and returns the root command with version info and subcommands.
func NewRootCmd(version, commit, date string, opts ...RootOption) *cobra.Command {
	settings := &rootSettings{
		runtime:     runtime.NewRuntime(),
		searchPaths: defaultSearchPaths(),
		banner:      true,
	}

	for _, opt := range opts {
		opt(settings)
	}

	cfgManager := configmanager.NewConfigManager(settings.searchPaths...)

	cmd := &cobra.Command{
		Use:   "node-docker-cli [project-name]",
		Short: "Scaffold a Node.js project that runs with Docker Compose",
		Long: "node-docker-cli clones the Node.js starter template into a new directory, " +
			"installs its dependencies and tells you how to start it with docker compose.",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
	}

	cmd.RunE = runtime.RunEWithRuntime(
		settings.runtime,
		runtime.WithTimer(newProvisionHandler(cfgManager, settings)),
	)

	cmd.Version = fmt.Sprintf("%s (Built on %s from Git SHA %s)", version, date, commit)

	// The flag set is fresh, so binding cannot collide.
	_ = cfgManager.AddFlags(cmd.Flags())

	cmd.Flags().String(
		ConfigFlagName,
		"",
		"Config file (default: "+configmanager.ConfigFileName+".yaml in the working or home directory)",
	)
	cmd.PersistentFlags().Bool(VerboseFlagName, false, "Log every external command and its output to stderr")
	cmd.PersistentFlags().Bool(TimingFlagName, false, "Show per-activity timing output")

	cmd.AddCommand(NewPresetsCmd())

	return cmd
}

// Execute runs the provided root command. Failures come back as an
// *errorhandler.CommandError holding the message to print.
func Execute(cmd *cobra.Command) error {
	return errorhandler.NewExecutor().Execute(cmd)
}

func defaultSearchPaths() []string {
	paths := []string{"."}

	home, err := os.UserHomeDir()
	if err == nil {
		paths = append(paths, home)
	}

	return paths
}
