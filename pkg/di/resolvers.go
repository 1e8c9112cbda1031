package di

import (
	"fmt"

	"github.com/MunavvarSinan/node-docker-cli/pkg/cmd/runner"
	"github.com/MunavvarSinan/node-docker-cli/pkg/svc/opener"
	"github.com/MunavvarSinan/node-docker-cli/pkg/utils/timer"
	"github.com/samber/do/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Dependency resolvers.

// ResolveTimer retrieves the timer dependency from the injector with consistent error handling.
func ResolveTimer(injector Injector) (timer.Timer, error) {
	tmr, err := do.Invoke[timer.Timer](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve timer dependency: %w", err)
	}

	return tmr, nil
}

// ResolveLogger retrieves the diagnostic logger.
func ResolveLogger(injector Injector) (*logrus.Logger, error) {
	log, err := do.Invoke[*logrus.Logger](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve logger dependency: %w", err)
	}

	return log, nil
}

// ResolveCommandRunner retrieves the process runner.
func ResolveCommandRunner(injector Injector) (runner.CommandRunner, error) {
	commandRunner, err := do.Invoke[runner.CommandRunner](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve command runner dependency: %w", err)
	}

	return commandRunner, nil
}

// ResolveOpener retrieves the OS opener.
func ResolveOpener(injector Injector) (opener.Opener, error) {
	osOpener, err := do.Invoke[opener.Opener](injector)
	if err != nil {
		return opener.PosixOpener, fmt.Errorf("resolve opener dependency: %w", err)
	}

	return osOpener, nil
}

// Handler decorators.

// WithTimer decorates a handler to automatically resolve the timer dependency.
func WithTimer(
	handler func(cmd *cobra.Command, injector Injector, tmr timer.Timer) error,
) func(cmd *cobra.Command, injector Injector) error {
	return func(cmd *cobra.Command, injector Injector) error {
		tmr, err := ResolveTimer(injector)
		if err != nil {
			return err
		}

		return handler(cmd, injector, tmr)
	}
}
