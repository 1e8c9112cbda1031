package cmd

import (
	"fmt"

	"github.com/MunavvarSinan/node-docker-cli/pkg/io/configmanager"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const presetsIndent = 2

// NewPresetsCmd creates the command that prints the built-in presets as YAML.
func NewPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "presets [name]",
		Short:        "Print the built-in option presets",
		Long:         "Print the built-in option presets as YAML. Any of them can be copied into a config file.",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		ValidArgs:    configmanager.PresetNames(),
		RunE:         handlePresetsRunE,
	}
}

func handlePresetsRunE(cmd *cobra.Command, args []string) error {
	var document any = configmanager.Presets()

	if len(args) == 1 {
		preset, err := configmanager.LookupPreset(args[0])
		if err != nil {
			return err
		}

		document = preset
	}

	encoder := yaml.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent(presetsIndent)

	err := encoder.Encode(document)
	if err != nil {
		return fmt.Errorf("encode presets: %w", err)
	}

	err = encoder.Close()
	if err != nil {
		return fmt.Errorf("encode presets: %w", err)
	}

	return nil
}
