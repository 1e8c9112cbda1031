package runner

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockCommandRunner is a testify mock of CommandRunner. It doubles as a spy:
// every invocation is recorded in Calls.
type MockCommandRunner struct {
	mock.Mock
}

// NewMockCommandRunner creates a new MockCommandRunner instance.
func NewMockCommandRunner() *MockCommandRunner {
	return &MockCommandRunner{}
}

// Run mocks running an external program.
func (m *MockCommandRunner) Run(ctx context.Context, cmd Command) (CommandResult, error) {
	args := m.Called(ctx, cmd)

	result, ok := args.Get(0).(CommandResult)
	if !ok {
		return CommandResult{}, args.Error(1) //nolint:wrapcheck // Mock function, wrapping not needed
	}

	return result, args.Error(1) //nolint:wrapcheck // Mock function, wrapping not needed
}

// Invocations returns the commands passed to Run, in call order.
func (m *MockCommandRunner) Invocations() []Command {
	commands := make([]Command, 0, len(m.Calls))

	for _, call := range m.Calls {
		if call.Method != "Run" {
			continue
		}

		if cmd, ok := call.Arguments.Get(1).(Command); ok {
			commands = append(commands, cmd)
		}
	}

	return commands
}

var _ CommandRunner = (*MockCommandRunner)(nil)
