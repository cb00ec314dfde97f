// Package config manages the sdkpkg configuration file. It holds the location of
// the Android SDK and the sdkmanager binary together with output and logging
// settings, and falls back to sensible defaults when no file exists.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/qt-creator/qt-creator-sub139/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	// SDK location and sdkmanager invocation
	SDK SDKConfig `yaml:"sdk" json:"sdk"`

	// General settings
	Settings Settings `yaml:"settings" json:"settings"`
}

// SDKConfig describes where the SDK lives and how sdkmanager is invoked.
type SDKConfig struct {
	// Root is passed as --sdk_root. Defaults to $ANDROID_SDK_ROOT, then $ANDROID_HOME.
	Root string `yaml:"root,omitempty" json:"root,omitempty"`

	// SdkManager is the binary to run. A bare name is looked up in PATH; when
	// empty, <root>/cmdline-tools/latest/bin/sdkmanager is tried first.
	SdkManager string `yaml:"sdkmanager,omitempty" json:"sdkmanager,omitempty"`

	// ExtraArgs are appended after --list --verbose, e.g. --channel=3.
	ExtraArgs []string `yaml:"extra_args,omitempty" json:"extra_args,omitempty"`

	// Timeout bounds a single sdkmanager run.
	Timeout time.Duration `yaml:"timeout" json:"timeout"`
}

// Settings represents general application settings.
type Settings struct {
	OutputFormat string `yaml:"output_format" json:"output_format"` // table, json, yaml
	LogLevel     string `yaml:"log_level" json:"log_level"`         // debug, info, warn, error
	LogFormat    string `yaml:"log_format" json:"log_format"`       // text, json
}

// Default configuration values.
const (
	DefaultOutputFormat = "table"
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "text"
	DefaultTimeout      = 5 * time.Minute

	// YAMLIndent is the number of spaces to use for YAML indentation.
	YAMLIndent = 2

	dirMode  = 0o755
	fileMode = 0o644
)

var (
	validOutputFormats = []string{"table", "json", "yaml"}
	validLogLevels     = []string{"debug", "info", "warn", "error"}
	validLogFormats    = []string{"text", "json"}
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		SDK: SDKConfig{
			Root:    DefaultSdkRoot(),
			Timeout: DefaultTimeout,
		},
		Settings: Settings{
			OutputFormat: DefaultOutputFormat,
			LogLevel:     DefaultLogLevel,
			LogFormat:    DefaultLogFormat,
		},
	}
}

// DefaultSdkRoot returns the SDK root named by the environment, if any.
func DefaultSdkRoot() string {
	for _, name := range []string{"ANDROID_SDK_ROOT", "ANDROID_HOME"} {
		if dir := os.Getenv(name); dir != "" {
			return dir
		}
	}
	return ""
}

// LoadConfig loads configuration from a file. A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, errors.ErrEmptyConfigPath
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInvalidConfigPath, err.Error())
	}

	file, err := os.Open(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, errors.Wrapf(errors.ErrConfigRead, "%s: %v", path, err)
	}
	defer func() { _ = file.Close() }()

	return LoadConfigFromReader(file)
}

// LoadConfigFromReader loads configuration from an io.Reader.
func LoadConfigFromReader(reader io.Reader) (*Config, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.Wrap(errors.ErrConfigRead, err.Error())
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, errors.Wrap(errors.ErrConfigParse, err.Error())
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrConfigValidation, err.Error())
	}

	return &config, nil
}

// SaveConfig writes the configuration to path, replacing any existing file atomically.
func (c *Config) SaveConfig(path string) error {
	if path == "" {
		return errors.ErrEmptyConfigPath
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrap(errors.ErrInvalidConfigPath, err.Error())
	}

	if err := os.MkdirAll(filepath.Dir(absPath), dirMode); err != nil {
		return errors.Wrap(errors.ErrConfigDirectory, err.Error())
	}

	tempPath := absPath + ".tmp"
	file, err := os.OpenFile(tempPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fileMode)
	if err != nil {
		return errors.Wrap(errors.ErrConfigFileCreate, err.Error())
	}

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(YAMLIndent)

	if err := encoder.Encode(c); err != nil {
		_ = file.Close()
		_ = os.Remove(tempPath)
		return errors.Wrap(errors.ErrConfigEncode, err.Error())
	}

	_ = encoder.Close()
	_ = file.Close()

	if err := os.Rename(tempPath, absPath); err != nil {
		_ = os.Remove(tempPath)
		return errors.Wrap(errors.ErrConfigFileRename, err.Error())
	}

	return nil
}

// ToYAML converts the config to YAML bytes.
func (c *Config) ToYAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(errors.ErrConfigEncode, err.Error())
	}
	return data, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c == nil {
		return errors.ErrConfigValidation
	}
	if c.SDK.Timeout < 0 {
		return errors.ErrNegativeTimeout
	}
	if !slices.Contains(validOutputFormats, c.Settings.OutputFormat) {
		return errors.Wrapf(errors.ErrInvalidOutput, "%q (expected one of %s)",
			c.Settings.OutputFormat, strings.Join(validOutputFormats, ", "))
	}
	if !slices.Contains(validLogLevels, strings.ToLower(c.Settings.LogLevel)) {
		return errors.Wrapf(errors.ErrInvalidLogLevel, "%q (expected one of %s)",
			c.Settings.LogLevel, strings.Join(validLogLevels, ", "))
	}
	if !slices.Contains(validLogFormats, c.Settings.LogFormat) {
		return errors.Wrapf(errors.ErrInvalidLogFormat, "%q (expected one of %s)",
			c.Settings.LogFormat, strings.Join(validLogFormats, ", "))
	}
	return nil
}

// SdkManagerPath returns the sdkmanager to run: the configured binary, the
// cmdline-tools copy inside the SDK root when present, or "sdkmanager".
func (c *Config) SdkManagerPath() string {
	if c.SDK.SdkManager != "" {
		return c.SDK.SdkManager
	}
	if c.SDK.Root != "" {
		candidate := filepath.Join(c.SDK.Root, "cmdline-tools", "latest", "bin", "sdkmanager")
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return "sdkmanager"
}

// GetDefaultConfigPath returns the default configuration file path.
func GetDefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, "sdkpkg", "config.yaml"), nil
}

// applyDefaults fills in missing values with defaults.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()

	if c.SDK.Root == "" {
		c.SDK.Root = defaults.SDK.Root
	}
	if c.SDK.Timeout == 0 {
		c.SDK.Timeout = defaults.SDK.Timeout
	}
	if c.Settings.OutputFormat == "" {
		c.Settings.OutputFormat = defaults.Settings.OutputFormat
	}
	if c.Settings.LogLevel == "" {
		c.Settings.LogLevel = defaults.Settings.LogLevel
	}
	if c.Settings.LogFormat == "" {
		c.Settings.LogFormat = defaults.Settings.LogFormat
	}
}
