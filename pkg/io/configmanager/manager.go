package configmanager

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/MunavvarSinan/node-docker-cli/pkg/fsutil"
	mapstructure "github.com/go-viper/mapstructure/v2"
	"github.com/jinzhu/copier"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes every environment variable read by the config manager.
	EnvPrefix = "NODE_DOCKER_CLI"
	// ConfigFileName is the config file searched for, without extension.
	ConfigFileName = ".node-docker-cli"
)

// Flag names bound to configuration keys.
const (
	PresetFlag         = "preset"
	TemplateFlag       = "template"
	CloneDepthFlag     = "clone-depth"
	VCSFlag            = "vcs"
	PackageManagerFlag = "package-manager"
	InstallArgsFlag    = "install-args"
	EditorFlag         = "editor"
	ReinitGitFlag      = "reinit-git"
	OpenFlag           = "open"
	FollowUpFlag       = "follow-up"
)

func optionKeys() []string {
	return []string{
		PresetFlag,
		TemplateFlag,
		CloneDepthFlag,
		VCSFlag,
		PackageManagerFlag,
		InstallArgsFlag,
		EditorFlag,
		ReinitGitFlag,
		OpenFlag,
		FollowUpFlag,
	}
}

// ConfigManager loads Options through Viper.
type ConfigManager struct {
	Viper       *viper.Viper
	SearchPaths []string
	configFile  string
	fileUsed    string
}

// NewConfigManager creates a manager that searches searchPaths for ConfigFileName.
func NewConfigManager(searchPaths ...string) *ConfigManager {
	viperInstance := viper.New()
	viperInstance.SetEnvPrefix(EnvPrefix)
	viperInstance.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viperInstance.AutomaticEnv()

	for _, key := range optionKeys() {
		// Binding makes env-only keys visible to Unmarshal.
		_ = viperInstance.BindEnv(key)
	}

	return &ConfigManager{
		Viper:       viperInstance,
		SearchPaths: searchPaths,
	}
}

// SetConfigFile pins the config file. A pinned file that does not exist is an error.
func (m *ConfigManager) SetConfigFile(path string) {
	m.configFile = path
}

// ConfigFileUsed returns the config file read by the last Load, if any.
func (m *ConfigManager) ConfigFileUsed() string {
	return m.fileUsed
}

// AddFlags registers the option flags on flags and binds them to Viper keys.
// Flag defaults are zero values so that an untouched flag never overrides a preset.
func (m *ConfigManager) AddFlags(flags *pflag.FlagSet) error {
	flags.String(PresetFlag, "", fmt.Sprintf(
		"Preset to start from (%s; default %q)",
		strings.Join(PresetNames(), ", "),
		DefaultPreset,
	))
	flags.String(TemplateFlag, "", "Template repository to clone")
	flags.Int(CloneDepthFlag, 0, "History depth of the template clone")
	flags.String(VCSFlag, "", "Version control client binary")
	flags.String(PackageManagerFlag, "", "Package manager binary")
	flags.StringSlice(InstallArgsFlag, nil, "Arguments passed to the package manager")
	flags.String(EditorFlag, "", "Editor CLI tried before falling back to the OS opener")
	flags.String(ReinitGitFlag, "", "Reinitialize the git repository (ask, yes, no)")
	flags.String(OpenFlag, "", "Open the project once created (ask, yes, no)")
	flags.String(FollowUpFlag, "", "Command suggested after provisioning")

	err := m.Viper.BindPFlags(flags)
	if err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}

	return nil
}

// Load resolves the options: preset < config file < environment < flags.
func (m *ConfigManager) Load() (*Options, error) {
	err := m.readConfig()
	if err != nil {
		return nil, err
	}

	var overrides Options

	err = m.Viper.Unmarshal(&overrides, viper.DecodeHook(decodeHook()))
	if err != nil {
		return nil, fmt.Errorf("decode configuration: %w", err)
	}

	if len(overrides.InstallArgs) == 0 {
		overrides.InstallArgs = nil
	}

	presetName := strings.TrimSpace(overrides.Preset)
	if presetName == "" {
		presetName = DefaultPreset
	}

	preset, err := LookupPreset(presetName)
	if err != nil {
		return nil, err
	}

	options, err := overlay(preset, overrides)
	if err != nil {
		return nil, err
	}

	options.Preset = presetName
	options.expandEnv()

	err = options.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return options, nil
}

func (m *ConfigManager) readConfig() error {
	m.fileUsed = ""

	if m.configFile != "" {
		path, err := fsutil.ExpandHomePath(m.configFile)
		if err != nil {
			return fmt.Errorf("resolve config file: %w", err)
		}

		m.Viper.SetConfigFile(path)
	} else {
		if len(m.SearchPaths) == 0 {
			return nil
		}

		m.Viper.SetConfigName(ConfigFileName)
		m.Viper.SetConfigType("yaml")

		for _, path := range m.SearchPaths {
			m.Viper.AddConfigPath(path)
		}
	}

	err := m.Viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if m.configFile == "" && errors.As(err, &notFound) {
			return nil
		}

		return fmt.Errorf("failed to read config file: %w", err)
	}

	m.fileUsed = m.Viper.ConfigFileUsed()

	return nil
}

// overlay copies every non-empty field of overrides onto a deep copy of base.
func overlay(base, overrides Options) (*Options, error) {
	var options Options

	err := copier.CopyWithOption(&options, &base, copier.Option{DeepCopy: true})
	if err != nil {
		return nil, fmt.Errorf("copy preset: %w", err)
	}

	err = copier.CopyWithOption(&options, &overrides, copier.Option{IgnoreEmpty: true, DeepCopy: true})
	if err != nil {
		return nil, fmt.Errorf("apply overrides: %w", err)
	}

	return &options, nil
}

func decodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		boolToChoiceHook(),
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)
}

// boolToChoiceHook lets YAML booleans (reinitGit: true) configure a Choice.
func boolToChoiceHook() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if to != reflect.TypeOf(Choice("")) || from.Kind() != reflect.Bool {
			return data, nil
		}

		if enabled, _ := data.(bool); enabled {
			return ChoiceYes, nil
		}

		return ChoiceNo, nil
	}
}
