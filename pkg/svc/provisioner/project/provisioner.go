package projectprovisioner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/MunavvarSinan/node-docker-cli/pkg/cli/ui/prompt"
	"github.com/MunavvarSinan/node-docker-cli/pkg/cmd/runner"
	"github.com/MunavvarSinan/node-docker-cli/pkg/io/configmanager"
	"github.com/MunavvarSinan/node-docker-cli/pkg/svc/opener"
	"github.com/MunavvarSinan/node-docker-cli/pkg/utils/notify"
	"github.com/sirupsen/logrus"
)

// vcsMetadataDir is removed before the repository is reinitialized.
const vcsMetadataDir = ".git"

// noEditor skips the editor version check and goes straight to the OS opener.
const noEditor = "none"

var errEmptyProjectName = errors.New("project name cannot be empty")

// Dependencies are the collaborators a Provisioner talks to.
type Dependencies struct {
	// Runner is the only way the Provisioner starts external programs.
	Runner runner.CommandRunner
	// Prompter asks for the project name and the optional steps.
	Prompter prompt.Prompter
	// Reporter reports the lifecycle of each step.
	Reporter notify.Reporter
	// Opener is the OS-specific fallback used when the editor is not installed.
	Opener opener.Opener
	// Writer receives titles and the final instructions.
	Writer io.Writer
	// Log receives debug diagnostics. Nil discards them.
	Log logrus.FieldLogger
}

// Provisioner runs the project provisioning pipeline.
type Provisioner struct {
	options  configmanager.Options
	runner   runner.CommandRunner
	prompter prompt.Prompter
	reporter notify.Reporter
	opener   opener.Opener
	writer   io.Writer
	log      logrus.FieldLogger
	workDir  string
	banner   func(io.Writer)
}

// Option customizes a Provisioner.
type Option func(*Provisioner)

// WithWorkDir sets the directory the project is created in. Defaults to the
// process working directory.
func WithWorkDir(dir string) Option {
	return func(p *Provisioner) {
		p.workDir = dir
	}
}

// WithBanner sets a function that prints a banner before provisioning starts.
func WithBanner(banner func(io.Writer)) Option {
	return func(p *Provisioner) {
		p.banner = banner
	}
}

// NewProvisioner creates a Provisioner for validated options.
func NewProvisioner(options configmanager.Options, deps Dependencies, opts ...Option) *Provisioner {
	writer := deps.Writer
	if writer == nil {
		writer = os.Stdout
	}

	log := deps.Log
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)

		log = discard
	}

	reporter := deps.Reporter
	if reporter == nil {
		reporter = notify.NewSpinner(writer)
	}

	prov := &Provisioner{
		options:  options,
		runner:   deps.Runner,
		prompter: deps.Prompter,
		reporter: reporter,
		opener:   deps.Opener,
		writer:   writer,
		log:      log,
	}

	for _, opt := range opts {
		opt(prov)
	}

	return prov
}

// Run provisions a project. args are the positional command-line arguments;
// the first one, if present and not blank, is the project name.
//
// Run returns nil once the follow-up instructions have been printed. Failures of
// the optional steps are reported as warnings and do not make Run fail.
func (p *Provisioner) Run(ctx context.Context, args []string) error {
	name, err := p.ResolveProjectName(args)
	if err != nil {
		return err
	}

	req, err := p.ValidateTargetFree(name)
	if err != nil {
		return err
	}

	if p.banner != nil {
		p.banner(p.writer)
	}

	notify.Titlef(p.writer, "🚀", "Creating a new Node.js project in %s...", req.TargetPath)

	err = p.CloneTemplate(ctx, req)
	if err != nil {
		return err
	}

	err = p.InstallDependencies(ctx, req)
	if err != nil {
		return err
	}

	err = p.MaybeReinitVersionControl(ctx, req)
	if err != nil {
		p.log.WithError(err).Debug("optional step failed")
	}

	err = p.MaybeOpenEditor(ctx, req)
	if err != nil {
		p.log.WithError(err).Debug("optional step failed")
	}

	p.PrintInstructions(req)

	return nil
}

// ResolveProjectName returns the trimmed first argument, or asks for a name
// until a non-blank one is entered.
func (p *Provisioner) ResolveProjectName(args []string) (string, error) {
	if len(args) > 0 {
		name := strings.TrimSpace(args[0])
		if name != "" {
			return name, nil
		}
	}

	if p.prompter == nil {
		return "", ErrNoProjectName
	}

	name, err := p.prompter.Input("Enter the project name:", func(answer string) error {
		if strings.TrimSpace(answer) == "" {
			return errEmptyProjectName
		}

		return nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNoProjectName, err)
	}

	return strings.TrimSpace(name), nil
}

// ValidateTargetFree checks name and that WorkDir/name does not exist yet.
func (p *Provisioner) ValidateTargetFree(name string) (ProjectRequest, error) {
	workDir := p.workDir
	if workDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return ProjectRequest{}, fmt.Errorf("get working directory: %w", err)
		}

		workDir = cwd
	}

	return newProjectRequest(workDir, name)
}

// CloneTemplate shallow-clones the template repository into the target path.
func (p *Provisioner) CloneTemplate(ctx context.Context, req ProjectRequest) error {
	p.reporter.Start("cloning " + p.options.Template)

	_, err := p.runner.Run(ctx, runner.Command{
		Name: p.options.VCS,
		Args: []string{
			"clone",
			"--depth", strconv.Itoa(p.options.CloneDepth),
			p.options.Template,
			req.TargetPath,
		},
		Dir: filepath.Dir(req.TargetPath),
	})
	if err != nil {
		p.reporter.Fail("failed to clone the repository")

		return fmt.Errorf("%w: %w", ErrCloneFailed, err)
	}

	p.reporter.Succeed("project files have arrived from the template")

	return nil
}

// InstallDependencies runs the package manager inside the target path.
func (p *Provisioner) InstallDependencies(ctx context.Context, req ProjectRequest) error {
	p.reporter.Start("installing dependencies")

	_, err := p.runner.Run(ctx, runner.Command{
		Name: p.options.PackageManager,
		Args: p.options.InstallArgs,
		Dir:  req.TargetPath,
	})
	if err != nil {
		p.reporter.Fail(fmt.Sprintf("failed to install dependencies, check that %s works", p.options.PackageManager))

		return fmt.Errorf("%w: %w", ErrInstallFailed, err)
	}

	p.reporter.Succeed("all dependencies installed")

	return nil
}

// MaybeReinitVersionControl replaces the template's history with an empty repository
// when the reinit choice (or the user, default yes) says so.
func (p *Provisioner) MaybeReinitVersionControl(ctx context.Context, req ProjectRequest) error {
	confirmed, err := p.decide(
		p.options.ReinitGit,
		"Would you like to initialize a new Git repository?",
		true,
	)
	if err != nil {
		p.reporter.Warn("could not read an answer, skipping git initialization")

		return fmt.Errorf("%w: %w", ErrReinitFailed, err)
	}

	if !confirmed {
		return nil
	}

	p.reporter.Start("initializing a new git repository")

	err = os.RemoveAll(filepath.Join(req.TargetPath, vcsMetadataDir))
	if err != nil {
		p.reporter.Warn("failed to initialize git repository")

		return fmt.Errorf("%w: remove %s: %w", ErrReinitFailed, vcsMetadataDir, err)
	}

	_, err = p.runner.Run(ctx, runner.Command{
		Name: p.options.VCS,
		Args: []string{"init"},
		Dir:  req.TargetPath,
	})
	if err != nil {
		p.reporter.Warn("failed to initialize git repository")

		return fmt.Errorf("%w: %w", ErrReinitFailed, err)
	}

	p.reporter.Succeed("git repository initialized")

	return nil
}

// MaybeOpenEditor opens the project when the open choice (or the user, default no)
// says so. The editor is used if its --version check succeeds, the OS opener otherwise.
func (p *Provisioner) MaybeOpenEditor(ctx context.Context, req ProjectRequest) error {
	confirmed, err := p.decide(
		p.options.OpenProject,
		"Would you like to open the project folder now?",
		false,
	)
	if err != nil {
		p.reporter.Warn("could not read an answer, please open the project folder manually")

		return fmt.Errorf("%w: %w", ErrOpenFailed, err)
	}

	if !confirmed {
		return nil
	}

	command, target := p.openCommand(ctx, req)

	_, err = p.runner.Run(ctx, command)
	if err != nil {
		p.reporter.Warn("could not open the project folder, please open it manually")

		return fmt.Errorf("%w: %w", ErrOpenFailed, err)
	}

	p.reporter.Succeed("project opened in " + target)

	return nil
}

// openCommand checks the editor and returns the command that opens the project
// together with a name for what it opens it in.
func (p *Provisioner) openCommand(ctx context.Context, req ProjectRequest) (runner.Command, string) {
	editor := strings.TrimSpace(p.options.Editor)
	if editor == "" || editor == noEditor {
		p.reporter.Start("opening the project folder")

		return p.opener.Command(req.TargetPath), p.opener.String()
	}

	p.reporter.Start("checking for " + editor)

	result, err := p.runner.Run(ctx, runner.Command{Name: editor, Args: []string{"--version"}})
	if err != nil {
		p.log.WithField("editor", editor).Debug("editor not detected, falling back to the os opener")
		p.reporter.Start(editor + " not detected, opening the project folder")

		return p.opener.Command(req.TargetPath), p.opener.String()
	}

	p.logEditorVersion(editor, result.Stdout)
	p.reporter.Start(editor + " detected, opening project")

	return runner.Command{Name: editor, Args: []string{req.TargetPath}}, editor
}

// logEditorVersion logs the version an editor reported on the first line of its
// --version output. Output that is not a version is ignored.
func (p *Provisioner) logEditorVersion(editor, output string) {
	firstLine, _, _ := strings.Cut(strings.TrimSpace(output), "\n")

	version, err := semver.NewVersion(strings.TrimSpace(firstLine))
	if err != nil {
		return
	}

	p.log.WithFields(logrus.Fields{
		"editor":  editor,
		"version": version.String(),
	}).Debug("editor detected")
}

// PrintInstructions prints the command that starts the new project.
func (p *Provisioner) PrintInstructions(req ProjectRequest) {
	notify.Titlef(p.writer, "🎉", "Your project is ready!")
	notify.Infof(p.writer, "To start your project, run the following commands:")
	notify.Hintf(p.writer, "cd %s && %s", req.Name, p.options.FollowUp)
}

func (p *Provisioner) decide(choice configmanager.Choice, question string, defaultYes bool) (bool, error) {
	switch choice {
	case configmanager.ChoiceYes:
		return true, nil
	case configmanager.ChoiceNo:
		return false, nil
	case configmanager.ChoiceAsk:
	default:
		return false, fmt.Errorf("%w: %q", configmanager.ErrInvalidChoice, choice)
	}

	if p.prompter == nil {
		return defaultYes, nil
	}

	confirmed, err := p.prompter.Confirm(question, defaultYes)
	if err != nil {
		return false, fmt.Errorf("ask %q: %w", question, err)
	}

	return confirmed, nil
}
