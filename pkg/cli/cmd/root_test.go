package cmd_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MunavvarSinan/node-docker-cli/pkg/cli/cmd"
	"github.com/MunavvarSinan/node-docker-cli/pkg/cli/ui/errorhandler"
	"github.com/MunavvarSinan/node-docker-cli/pkg/cmd/runner"
	"github.com/MunavvarSinan/node-docker-cli/pkg/di"
	"github.com/MunavvarSinan/node-docker-cli/pkg/io/configmanager"
	"github.com/MunavvarSinan/node-docker-cli/pkg/svc/opener"
	projectprovisioner "github.com/MunavvarSinan/node-docker-cli/pkg/svc/provisioner/project"
	"github.com/MunavvarSinan/node-docker-cli/pkg/utils/timer"
	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/samber/do/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var errCloneExit = errors.New("exit status 128")

func TestMain(m *testing.M) {
	exitCode := m.Run()

	_, err := snaps.Clean(m, snaps.CleanOpts{Sort: true})
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to clean snapshots: " + err.Error() + "\n")

		os.Exit(1)
	}

	os.Exit(exitCode)
}

// newTestRuntime provides the mock runner in place of the exec-backed one.
func newTestRuntime(commandRunner runner.CommandRunner) *di.Runtime {
	return di.New(func(i di.Injector) error {
		do.Provide(i, func(di.Injector) (timer.Timer, error) {
			return timer.New(), nil
		})
		do.Provide(i, func(di.Injector) (*logrus.Logger, error) {
			log := logrus.New()
			log.SetOutput(&bytes.Buffer{})

			return log, nil
		})
		do.ProvideValue[runner.CommandRunner](i, commandRunner)
		do.ProvideValue(i, opener.PosixOpener)

		return nil
	})
}

type rootFixture struct {
	runner  *runner.MockCommandRunner
	workDir string
	out     *bytes.Buffer
}

func newRootFixture(t *testing.T) rootFixture {
	t.Helper()

	return rootFixture{
		runner:  runner.NewMockCommandRunner(),
		workDir: t.TempDir(),
		out:     &bytes.Buffer{},
	}
}

func (f rootFixture) root(stdin string, args ...string) *cobra.Command {
	root := cmd.NewRootCmd(
		"test", "test", "test",
		cmd.WithRuntime(newTestRuntime(f.runner)),
		cmd.WithConfigSearchPaths(),
		cmd.WithWorkDir(f.workDir),
		cmd.WithoutBanner(),
	)
	root.SetOut(f.out)
	root.SetErr(f.out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	return root
}

func (f rootFixture) expectCloneAndInstall(name string) {
	target := filepath.Join(f.workDir, name)

	f.runner.On("Run", mock.Anything, runner.Command{
		Name: "git",
		Args: []string{"clone", "--depth", "1", configmanager.DefaultTemplate, target},
		Dir:  f.workDir,
	}).Return(runner.CommandResult{}, nil)
	f.runner.On("Run", mock.Anything, runner.Command{
		Name: "npm",
		Args: []string{"install"},
		Dir:  target,
	}).Return(runner.CommandResult{}, nil)
}

func TestNewRootCmdVersionFormatting(t *testing.T) {
	t.Parallel()

	version := "1.2.3"
	commit := "abc123"
	date := "2025-08-17"
	root := cmd.NewRootCmd(version, commit, date)

	expectedVersion := version + " (Built on " + date + " from Git SHA " + commit + ")"
	assert.Equal(t, expectedVersion, root.Version)
}

func TestExecuteShowsVersion(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	root := cmd.NewRootCmd("1.2.3", "abc123", "2025-08-17")
	root.SetOut(&out)
	root.SetArgs([]string{"--version"})

	_ = root.Execute()

	snaps.MatchSnapshot(t, out.String())
}

func TestNewRootCmdFlagsDefaultToPreset(t *testing.T) {
	t.Parallel()

	root := cmd.NewRootCmd("test", "test", "test")

	for _, name := range []string{
		configmanager.PresetFlag,
		configmanager.TemplateFlag,
		configmanager.CloneDepthFlag,
		configmanager.PackageManagerFlag,
		configmanager.EditorFlag,
		configmanager.ReinitGitFlag,
		configmanager.OpenFlag,
		cmd.ConfigFlagName,
	} {
		flag := root.Flags().Lookup(name)
		require.NotNil(t, flag, "expected flag %q", name)
		assert.False(t, flag.Changed)
	}

	timing, err := root.PersistentFlags().GetBool(cmd.TimingFlagName)
	require.NoError(t, err)
	assert.False(t, timing)

	verbose, err := root.PersistentFlags().GetBool(cmd.VerboseFlagName)
	require.NoError(t, err)
	assert.False(t, verbose)
}

func TestExecuteProvisionsNamedProject(t *testing.T) {
	t.Parallel()

	fix := newRootFixture(t)
	fix.expectCloneAndInstall("demo")

	err := cmd.Execute(fix.root("", "demo", "--preset", "unattended"))

	require.NoError(t, err)
	assert.Equal(t, errorhandler.ExitSuccess, errorhandler.ExitCode(err))
	assert.Equal(t, 1, strings.Count(fix.out.String(), "cd demo && docker compose up"))
	assert.Contains(t, fix.out.String(), "✔ project files have arrived from the template")
	assert.Contains(t, fix.out.String(), "✔ all dependencies installed")
	fix.runner.AssertExpectations(t)
}

func TestExecutePromptsForMissingName(t *testing.T) {
	t.Parallel()

	fix := newRootFixture(t)
	fix.expectCloneAndInstall("demo")

	err := cmd.Execute(fix.root("\ndemo\nn\nn\n"))

	require.NoError(t, err)

	out := fix.out.String()
	assert.Equal(t, 2, strings.Count(out, "Enter the project name:"))
	assert.Contains(t, out, "✗ project name cannot be empty")
	assert.Contains(t, out, "Would you like to initialize a new Git repository?")
	assert.Contains(t, out, "Would you like to open the project folder now?")
	assert.Equal(t, 1, strings.Count(out, "cd demo && docker compose up"))
	assert.Len(t, fix.runner.Invocations(), 2)
}

func TestExecuteExistingDirectoryFails(t *testing.T) {
	t.Parallel()

	fix := newRootFixture(t)
	require.NoError(t, os.Mkdir(filepath.Join(fix.workDir, "demo"), 0o750))

	err := cmd.Execute(fix.root("", "demo"))

	require.ErrorIs(t, err, projectprovisioner.ErrAlreadyExists)
	assert.Equal(t, errorhandler.ExitFailure, errorhandler.ExitCode(err))
	assert.Empty(t, fix.runner.Invocations())
}

func TestExecuteCloneFailureStopsBeforeInstall(t *testing.T) {
	t.Parallel()

	fix := newRootFixture(t)
	fix.runner.On("Run", mock.Anything, mock.MatchedBy(func(command runner.Command) bool {
		return command.Name == "git"
	})).Return(runner.CommandResult{ExitCode: 128}, errCloneExit)

	err := cmd.Execute(fix.root("", "demo", "--preset", "unattended"))

	require.ErrorIs(t, err, projectprovisioner.ErrCloneFailed)
	assert.Equal(t, errorhandler.ExitFailure, errorhandler.ExitCode(err))
	assert.Len(t, fix.runner.Invocations(), 1)
}

func TestExecuteRejectsExtraArguments(t *testing.T) {
	t.Parallel()

	fix := newRootFixture(t)

	err := cmd.Execute(fix.root("", "one", "two"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts at most 1 arg(s), received 2")
	assert.Empty(t, fix.runner.Invocations())
}

func TestExecuteRejectsUnknownPreset(t *testing.T) {
	t.Parallel()

	fix := newRootFixture(t)

	err := cmd.Execute(fix.root("", "demo", "--preset", "bogus"))

	require.ErrorIs(t, err, configmanager.ErrUnknownPreset)
	assert.Empty(t, fix.runner.Invocations())
}

func TestExecuteReadsConfigFile(t *testing.T) {
	t.Parallel()

	fix := newRootFixture(t)
	configPath := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(
		"preset: unattended\npackage-manager: pnpm\nfollow-up: docker compose up --build\n",
	), 0o600))

	target := filepath.Join(fix.workDir, "demo")
	fix.runner.On("Run", mock.Anything, mock.MatchedBy(func(command runner.Command) bool {
		return command.Name == "git"
	})).Return(runner.CommandResult{}, nil)
	fix.runner.On("Run", mock.Anything, runner.Command{Name: "pnpm", Args: []string{"install"}, Dir: target}).
		Return(runner.CommandResult{}, nil)

	err := cmd.Execute(fix.root("", "demo", "--config", configPath))

	require.NoError(t, err)
	assert.Contains(t, fix.out.String(), "cd demo && docker compose up --build")
	fix.runner.AssertExpectations(t)
}

func TestExecuteTimingPrintsDurations(t *testing.T) {
	t.Parallel()

	fix := newRootFixture(t)
	fix.expectCloneAndInstall("demo")

	err := cmd.Execute(fix.root("", "demo", "--preset", "unattended", "--timing"))

	require.NoError(t, err)
	assert.Contains(t, fix.out.String(), "⏲ current:")
	assert.Contains(t, fix.out.String(), "total:")
}

func TestExecuteWithoutTimingPrintsNoDurations(t *testing.T) {
	t.Parallel()

	fix := newRootFixture(t)
	fix.expectCloneAndInstall("demo")

	err := cmd.Execute(fix.root("", "demo", "--preset", "unattended"))

	require.NoError(t, err)
	assert.NotContains(t, fix.out.String(), "⏲")
}

func TestExecuteVerboseLogsToCommandStderr(t *testing.T) {
	t.Parallel()

	fix := newRootFixture(t)
	fix.expectCloneAndInstall("demo")

	var errOut bytes.Buffer

	root := fix.root("", "demo", "--preset", "unattended", "--verbose")
	root.SetErr(&errOut)

	err := cmd.Execute(root)

	require.NoError(t, err)
	assert.Contains(t, errOut.String(), "options loaded")
	assert.NotContains(t, fix.out.String(), "options loaded")
}

func TestExecuteQuietKeepsDebugLogsHidden(t *testing.T) {
	t.Parallel()

	fix := newRootFixture(t)
	fix.expectCloneAndInstall("demo")

	err := cmd.Execute(fix.root("", "demo", "--preset", "unattended"))

	require.NoError(t, err)
	assert.NotContains(t, fix.out.String(), "options loaded")
}
