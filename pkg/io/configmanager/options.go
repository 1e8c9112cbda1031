package configmanager

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/MunavvarSinan/node-docker-cli/pkg/utils/envvar"
)

// Validation errors returned by Options.Validate.
var (
	ErrUnknownPreset       = errors.New("unknown preset")
	ErrInvalidChoice       = errors.New("invalid choice")
	ErrTemplateRequired    = errors.New("template repository is required")
	ErrInvalidCloneDepth   = errors.New("clone depth must be positive")
	ErrVCSRequired         = errors.New("version control client is required")
	ErrPackageManagerEmpty = errors.New("package manager is required")
	ErrFollowUpRequired    = errors.New("follow-up command is required")
)

// Choice decides how an optional pipeline step is handled.
type Choice string

const (
	// ChoiceAsk prompts the user, using the step's own default answer.
	ChoiceAsk Choice = "ask"
	// ChoiceYes runs the step without prompting.
	ChoiceYes Choice = "yes"
	// ChoiceNo skips the step without prompting.
	ChoiceNo Choice = "no"
)

// ParseChoice parses ask/yes/no and their common spellings (y, true, n, false ...).
// An empty string parses to the empty Choice, meaning "not set".
func ParseChoice(raw string) (Choice, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return "", nil
	case "ask", "prompt":
		return ChoiceAsk, nil
	case "yes", "y", "true", "always", "1":
		return ChoiceYes, nil
	case "no", "n", "false", "never", "0":
		return ChoiceNo, nil
	default:
		return "", fmt.Errorf("%w: %q (want ask, yes or no)", ErrInvalidChoice, raw)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Choice) UnmarshalText(text []byte) error {
	parsed, err := ParseChoice(string(text))
	if err != nil {
		return err
	}

	*c = parsed

	return nil
}

// Options configures one provisioning run.
type Options struct {
	// Preset names the preset these options were derived from.
	Preset string `mapstructure:"preset" yaml:"-"`
	// Template is the repository cloned as the project's initial contents.
	Template string `mapstructure:"template" yaml:"template"`
	// CloneDepth limits the clone's history.
	CloneDepth int `mapstructure:"clone-depth" yaml:"clone-depth"`
	// VCS is the git-compatible client binary.
	VCS string `mapstructure:"vcs" yaml:"vcs"`
	// PackageManager is the npm-compatible binary.
	PackageManager string `mapstructure:"package-manager" yaml:"package-manager"`
	// InstallArgs follow the package manager binary.
	InstallArgs []string `mapstructure:"install-args" yaml:"install-args"`
	// Editor is run with --version before the OS opener is used. Empty skips the check.
	Editor string `mapstructure:"editor" yaml:"editor"`
	// ReinitGit decides whether the template's history is replaced by a fresh repository.
	ReinitGit Choice `mapstructure:"reinit-git" yaml:"reinit-git"`
	// OpenProject decides whether the project is opened once provisioned.
	OpenProject Choice `mapstructure:"open" yaml:"open"`
	// FollowUp is the command printed after "cd <project> &&".
	FollowUp string `mapstructure:"follow-up" yaml:"follow-up"`
}

// Validate checks that the options can drive a run.
func (o *Options) Validate() error {
	var errs []error

	if strings.TrimSpace(o.Template) == "" {
		errs = append(errs, ErrTemplateRequired)
	}

	if o.CloneDepth <= 0 {
		errs = append(errs, fmt.Errorf("%w: got %d", ErrInvalidCloneDepth, o.CloneDepth))
	}

	if strings.TrimSpace(o.VCS) == "" {
		errs = append(errs, ErrVCSRequired)
	}

	if strings.TrimSpace(o.PackageManager) == "" {
		errs = append(errs, ErrPackageManagerEmpty)
	}

	if strings.TrimSpace(o.FollowUp) == "" {
		errs = append(errs, ErrFollowUpRequired)
	}

	for _, choice := range []Choice{o.ReinitGit, o.OpenProject} {
		switch choice {
		case ChoiceAsk, ChoiceYes, ChoiceNo:
		default:
			errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidChoice, choice))
		}
	}

	return errors.Join(errs...)
}

// expandEnv resolves ${VAR} and ${VAR:-default} placeholders in the string options.
func (o *Options) expandEnv() {
	o.Template = envvar.Expand(o.Template)
	o.VCS = envvar.Expand(o.VCS)
	o.PackageManager = envvar.Expand(o.PackageManager)
	o.InstallArgs = envvar.ExpandAll(o.InstallArgs)
	o.Editor = envvar.Expand(o.Editor)
	o.FollowUp = envvar.Expand(o.FollowUp)
}

// Preset names.
const (
	PresetInteractive = "interactive"
	PresetUnattended  = "unattended"

	// DefaultPreset is used when no preset is configured.
	DefaultPreset = PresetInteractive
)

// DefaultTemplate is the repository both built-in presets clone.
const DefaultTemplate = "https://github.com/MunavvarSinan/node-starter"

// Presets returns the built-in presets keyed by name. Each call returns fresh values.
func Presets() map[string]Options {
	base := Options{
		Template:       DefaultTemplate,
		CloneDepth:     1,
		VCS:            "git",
		PackageManager: "npm",
		InstallArgs:    []string{"install"},
		Editor:         "code",
		FollowUp:       "docker compose up",
	}

	interactive := base
	interactive.Preset = PresetInteractive
	interactive.ReinitGit = ChoiceAsk
	interactive.OpenProject = ChoiceAsk

	unattended := base
	unattended.Preset = PresetUnattended
	unattended.ReinitGit = ChoiceNo
	unattended.OpenProject = ChoiceNo

	return map[string]Options{
		PresetInteractive: interactive,
		PresetUnattended:  unattended,
	}
}

// PresetNames returns the built-in preset names in sorted order.
func PresetNames() []string {
	presets := Presets()
	names := make([]string, 0, len(presets))

	for name := range presets {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// LookupPreset returns the named preset.
func LookupPreset(name string) (Options, error) {
	preset, ok := Presets()[name]
	if !ok {
		return Options{}, fmt.Errorf(
			"%w: %q (available: %s)",
			ErrUnknownPreset,
			name,
			strings.Join(PresetNames(), ", "),
		)
	}

	return preset, nil
}
