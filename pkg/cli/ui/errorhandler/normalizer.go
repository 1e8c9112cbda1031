package errorhandler

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MunavvarSinan/node-docker-cli/pkg/io/configmanager"
	projectprovisioner "github.com/MunavvarSinan/node-docker-cli/pkg/svc/provisioner/project"
	"github.com/spf13/cobra"
)

// Normalizer turns a command failure into the message printed for the user.
type Normalizer interface {
	Normalize(cmd *cobra.Command, err error) string
}

// verboseHint points at the flag that surfaces the failing tool's output.
const verboseHint = "run again with --verbose to see the command output"

// DefaultNormalizer knows the provisioning and configuration failures. Anything
// else is treated as a usage error and gets cobra's help hint.
type DefaultNormalizer struct{}

// Normalize implements Normalizer.
func (DefaultNormalizer) Normalize(cmd *cobra.Command, err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, context.Canceled):
		return "interrupted"
	case errors.Is(err, projectprovisioner.ErrCloneFailed):
		return projectprovisioner.ErrCloneFailed.Error() + ", " + verboseHint
	case errors.Is(err, projectprovisioner.ErrInstallFailed):
		return projectprovisioner.ErrInstallFailed.Error() + ", " + verboseHint
	case errors.Is(err, projectprovisioner.ErrNoProjectName):
		return "no project name given, pass it as the first argument"
	case errors.Is(err, projectprovisioner.ErrAlreadyExists):
		return detail(err, projectprovisioner.ErrAlreadyExists)
	case projectprovisioner.IsValidationError(err), isConfigError(err):
		return oneLine(err.Error())
	}

	message := oneLine(err.Error())
	if cmd == nil {
		return message
	}

	return fmt.Sprintf("%s\nRun '%s --help' for usage.", message, cmd.CommandPath())
}

func isConfigError(err error) bool {
	for _, target := range []error{
		configmanager.ErrUnknownPreset,
		configmanager.ErrInvalidChoice,
		configmanager.ErrTemplateRequired,
		configmanager.ErrInvalidCloneDepth,
		configmanager.ErrVCSRequired,
		configmanager.ErrPackageManagerEmpty,
		configmanager.ErrFollowUpRequired,
	} {
		if errors.Is(err, target) {
			return true
		}
	}

	return strings.HasPrefix(err.Error(), "failed to read config file")
}

// detail drops the sentinel's own text from the front of err's message.
func detail(err, sentinel error) string {
	message := oneLine(err.Error())

	trimmed := strings.TrimPrefix(message, sentinel.Error()+": ")
	if trimmed == "" {
		return message
	}

	return trimmed
}

// oneLine joins the lines of an aggregated error such as errors.Join output.
func oneLine(message string) string {
	lines := strings.Split(strings.TrimSpace(message), "\n")

	parts := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			parts = append(parts, line)
		}
	}

	return strings.Join(parts, "; ")
}
