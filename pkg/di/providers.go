package di

import (
	"os"

	"github.com/MunavvarSinan/node-docker-cli/pkg/cmd/runner"
	"github.com/MunavvarSinan/node-docker-cli/pkg/svc/opener"
	"github.com/MunavvarSinan/node-docker-cli/pkg/utils/timer"
	"github.com/samber/do/v2"
	"github.com/sirupsen/logrus"
)

// Dependency providers.

// NewRuntime constructs the shared runtime container used by root command and tests.
// It registers default implementations for the timer, the logger, the command
// runner and the OS opener.
func NewRuntime() *Runtime {
	return New(
		provideTimer,
		provideLogger,
		provideCommandRunner,
		provideOpener,
	)
}

// provideTimer registers the timer dependency with the injector.
func provideTimer(i Injector) error {
	do.Provide(i, func(Injector) (timer.Timer, error) {
		return timer.New(), nil
	})

	return nil
}

// provideLogger registers the diagnostic logger. It logs warnings and above to
// stderr until a command raises the level.
func provideLogger(i Injector) error {
	do.Provide(i, func(Injector) (*logrus.Logger, error) {
		log := logrus.New()
		log.SetOutput(os.Stderr)
		log.SetLevel(logrus.WarnLevel)

		return log, nil
	})

	return nil
}

// provideCommandRunner registers the process runner, logging through the injector's logger.
func provideCommandRunner(i Injector) error {
	do.Provide(i, func(injector Injector) (runner.CommandRunner, error) {
		log, err := ResolveLogger(injector)
		if err != nil {
			return nil, err
		}

		return runner.NewExecCommandRunner(log), nil
	})

	return nil
}

// provideOpener registers the opener of the running platform.
func provideOpener(i Injector) error {
	do.ProvideValue(i, opener.Detect())

	return nil
}
