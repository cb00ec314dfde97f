package errors

import "fmt"

// Common error types.
var (
	// Config errors.
	ErrEmptyConfigPath    = fmt.Errorf("config file path cannot be empty")
	ErrInvalidConfigPath  = fmt.Errorf("invalid config file path")
	ErrConfigRead         = fmt.Errorf("failed to read config")
	ErrConfigParse        = fmt.Errorf("failed to parse config")
	ErrConfigValidation   = fmt.Errorf("invalid configuration")
	ErrConfigEncode       = fmt.Errorf("failed to encode config")
	ErrConfigDirectory    = fmt.Errorf("failed to create config directory")
	ErrConfigFileCreate   = fmt.Errorf("failed to create config file")
	ErrConfigFileRename   = fmt.Errorf("failed to rename temporary config file")
	ErrConfigFileExists   = fmt.Errorf("configuration file already exists (use --force to overwrite)")
	ErrUnknownConfigKey   = fmt.Errorf("unknown configuration key")
	ErrInvalidConfigValue = fmt.Errorf("invalid configuration value")
	ErrInvalidLogLevel    = fmt.Errorf("invalid log level")
	ErrInvalidLogFormat   = fmt.Errorf("invalid log format")
	ErrInvalidOutput      = fmt.Errorf("invalid output format")
	ErrNegativeTimeout    = fmt.Errorf("timeout cannot be negative")

	// Package model errors.
	ErrStateAlreadySet = fmt.Errorf("package state already set")
	ErrInvalidState    = fmt.Errorf("invalid package state")

	// sdkmanager errors.
	ErrSdkManagerNotFound = fmt.Errorf("sdkmanager binary not found")
	ErrSdkManagerRun      = fmt.Errorf("sdkmanager failed")

	// Transcript errors.
	ErrTranscriptOpen  = fmt.Errorf("failed to open transcript")
	ErrTranscriptRead  = fmt.Errorf("failed to read transcript")
	ErrEmptyTranscript = fmt.Errorf("transcript path cannot be empty")

	// Filter errors.
	ErrFilterCompile = fmt.Errorf("failed to compile filter")
	ErrFilterRun     = fmt.Errorf("error evaluating filter")
	ErrFilterResult  = fmt.Errorf("filter must evaluate to a boolean")

	// CLI errors.
	ErrUnknownKind  = fmt.Errorf("unknown package kind")
	ErrUnknownState = fmt.Errorf("unknown package state")
)

// Wrap wraps an error with additional context.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf wraps an error with additional formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
