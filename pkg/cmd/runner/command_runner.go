package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"
)

// ErrCommandFailed is returned when an external program cannot be started or exits non-zero.
var ErrCommandFailed = errors.New("command failed")

// Command describes one invocation of an external program.
type Command struct {
	// Name is the program to run, resolved through PATH.
	Name string
	// Args are passed verbatim; no shell is involved.
	Args []string
	// Dir is the working directory. Empty means the current directory.
	Dir string
	// Env is appended to the current process environment.
	Env []string
}

// String renders the command the way a user would type it.
func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// CommandResult captures the stdout and stderr of a finished program,
// including output produced before a failure.
type CommandResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// CommandRunner executes external programs and blocks until they exit.
type CommandRunner interface {
	Run(ctx context.Context, cmd Command) (CommandResult, error)
}

// ExecCommandRunner runs programs with os/exec. Output is captured rather than
// streamed so the tools' own logs do not interleave with the CLI's status lines.
type ExecCommandRunner struct {
	log logrus.FieldLogger
}

// NewExecCommandRunner creates a runner that logs every invocation at debug level.
// A nil logger discards the logs.
func NewExecCommandRunner(log logrus.FieldLogger) *ExecCommandRunner {
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)

		log = discard
	}

	return &ExecCommandRunner{log: log}
}

// Run starts the command and waits for it. Cancelling ctx kills the process.
func (r *ExecCommandRunner) Run(ctx context.Context, command Command) (CommandResult, error) {
	var outBuf, errBuf bytes.Buffer

	//nolint:gosec // Program names come from configuration, not from untrusted input.
	cmd := exec.CommandContext(ctx, command.Name, command.Args...)
	cmd.Dir = command.Dir
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	if len(command.Env) > 0 {
		cmd.Env = append(os.Environ(), command.Env...)
	}

	entry := r.log.WithFields(logrus.Fields{
		"command": command.String(),
		"dir":     command.Dir,
	})
	entry.Debug("running command")

	runErr := cmd.Run()

	result := CommandResult{
		Stdout:   outBuf.String(),
		Stderr:   errBuf.String(),
		ExitCode: exitCode(cmd, runErr),
	}

	if runErr != nil {
		entry.WithFields(logrus.Fields{
			"exit_code": result.ExitCode,
			"stderr":    strings.TrimSpace(result.Stderr),
		}).Debug("command failed")

		return result, fmt.Errorf("%w: %s: %w", ErrCommandFailed, command, runErr)
	}

	entry.WithField("exit_code", result.ExitCode).Debug("command finished")

	return result, nil
}

// exitCode returns the process exit status, or -1 when the process never ran.
func exitCode(cmd *exec.Cmd, runErr error) int {
	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) {
		return exitErr.ExitCode()
	}

	if cmd.ProcessState != nil {
		return cmd.ProcessState.ExitCode()
	}

	return -1
}

var _ CommandRunner = (*ExecCommandRunner)(nil)
