package config

import (
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// ConfigFileName is the name of the optional configuration file, looked up
// in the user home directory first and the working directory second. Values
// from the working directory win.
const ConfigFileName = ".treegen.yaml"

// AppConfig holds default values for CLI flags. Explicit flags always win
// over configured defaults.
type AppConfig struct {
	Log   LogConfig   `mapstructure:"log"`
	Build BuildConfig `mapstructure:"build"`
	Print PrintConfig `mapstructure:"print"`
}

// LogConfig carries logging defaults.
type LogConfig struct {
	Level         string `mapstructure:"level" validate:"omitempty,oneof=panic fatal error warn warning info debug trace"`
	File          string `mapstructure:"file"`
	ColorDisabled *bool  `mapstructure:"color_disabled"`
}

// BuildConfig carries defaults for the build command.
type BuildConfig struct {
	AddHidden *bool `mapstructure:"add_hidden"`
}

// PrintConfig carries defaults for the print command.
type PrintConfig struct {
	ShowHidden *bool `mapstructure:"show_hidden"`
}

// LoadOptions controls how configuration files are discovered.
type LoadOptions struct {
	WorkingDirectory string // defaults to the current working directory
	ExplicitFilePath string // replaces the working directory lookup when set
}

// Load reads and merges the global and local configuration files and
// validates the result. Missing files are not an error; unreadable or
// invalid ones are.
func Load(options LoadOptions) (AppConfig, error) {
	workingDirectory := options.WorkingDirectory
	if workingDirectory == "" {
		currentDirectory, err := os.Getwd()
		if err != nil {
			return AppConfig{}, errors.WithMessage(err, "failed to determine working directory")
		}
		workingDirectory = currentDirectory
	}

	var merged AppConfig

	if homeDirectory, err := os.UserHomeDir(); err == nil && homeDirectory != "" {
		globalConfig, err := loadFromPath(filepath.Join(homeDirectory, ConfigFileName))
		if err != nil {
			return AppConfig{}, err
		}
		merged = merged.Merge(globalConfig)
	}

	localPath := filepath.Join(workingDirectory, ConfigFileName)
	if options.ExplicitFilePath != "" {
		localPath = options.ExplicitFilePath
	}

	localConfig, err := loadFromPath(localPath)
	if err != nil {
		return AppConfig{}, err
	}
	merged = merged.Merge(localConfig)

	if err := validator.New().Struct(merged); err != nil {
		return AppConfig{}, errors.WithMessage(err, "invalid configuration")
	}

	return merged, nil
}

func loadFromPath(path string) (AppConfig, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return AppConfig{}, nil
	}
	if err != nil {
		return AppConfig{}, errors.WithMessagef(err, "failed to stat configuration %s", path)
	}
	if info.IsDir() {
		return AppConfig{}, errors.Errorf("configuration path %s is a directory", path)
	}

	reader := viper.New()
	reader.SetConfigFile(path)
	if err := reader.ReadInConfig(); err != nil {
		return AppConfig{}, errors.WithMessagef(err, "failed to read configuration %s", path)
	}

	var config AppConfig
	if err := reader.Unmarshal(&config); err != nil {
		return AppConfig{}, errors.WithMessagef(err, "failed to decode configuration %s", path)
	}

	return config, nil
}

// Merge overlays override onto the receiver, returning the combined
// configuration.
func (config AppConfig) Merge(override AppConfig) AppConfig {
	result := config
	result.Log = result.Log.merge(override.Log)
	result.Build = result.Build.merge(override.Build)
	result.Print = result.Print.merge(override.Print)
	return result
}

func (config LogConfig) merge(override LogConfig) LogConfig {
	result := config
	if override.Level != "" {
		result.Level = override.Level
	}
	if override.File != "" {
		result.File = override.File
	}
	if override.ColorDisabled != nil {
		result.ColorDisabled = cloneBool(override.ColorDisabled)
	}
	return result
}

func (config BuildConfig) merge(override BuildConfig) BuildConfig {
	result := config
	if override.AddHidden != nil {
		result.AddHidden = cloneBool(override.AddHidden)
	}
	return result
}

func (config PrintConfig) merge(override PrintConfig) PrintConfig {
	result := config
	if override.ShowHidden != nil {
		result.ShowHidden = cloneBool(override.ShowHidden)
	}
	return result
}

func cloneBool(value *bool) *bool {
	if value == nil {
		return nil
	}
	cloned := *value
	return &cloned
}
