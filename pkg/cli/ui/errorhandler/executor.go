package errorhandler

import (
	"github.com/spf13/cobra"
)

// Executor runs a cobra command and turns its failure into a CommandError
// carrying a one-line message for the user.
type Executor struct {
	normalizer Normalizer
}

// ExecutorOption configures an Executor.
type ExecutorOption func(*Executor)

// WithNormalizer replaces the DefaultNormalizer.
func WithNormalizer(normalizer Normalizer) ExecutorOption {
	return func(e *Executor) {
		e.normalizer = normalizer
	}
}

// NewExecutor constructs an Executor.
func NewExecutor(opts ...ExecutorOption) *Executor {
	executor := &Executor{normalizer: DefaultNormalizer{}}

	for _, opt := range opts {
		opt(executor)
	}

	return executor
}

// Execute runs cmd with cobra's own error printing silenced. It returns nil on
// success, or a *CommandError whose message comes from the normalizer and whose
// cause is the original error.
func (e *Executor) Execute(cmd *cobra.Command) error {
	if cmd == nil {
		return nil
	}

	cmd.SilenceErrors = true

	failed, err := cmd.ExecuteC()
	if err == nil {
		return nil
	}

	if failed == nil {
		failed = cmd
	}

	return &CommandError{
		message: e.normalizer.Normalize(failed, err),
		cause:   err,
	}
}

// CommandError is a command failure with the message shown to the user.
type CommandError struct {
	message string
	cause   error
}

// Error returns the normalized message, or the cause's text when there is none.
func (e *CommandError) Error() string {
	switch {
	case e == nil:
		return ""
	case e.message != "":
		return e.message
	case e.cause != nil:
		return e.cause.Error()
	default:
		return ""
	}
}

// Unwrap exposes the underlying cause for errors.Is/errors.As consumers.
func (e *CommandError) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.cause
}
