package cli

import (
	"context"
	"fmt"

	"github.com/qt-creator/qt-creator-sub139/pkg/config"
	"github.com/qt-creator/qt-creator-sub139/pkg/logger"
	"github.com/qt-creator/qt-creator-sub139/pkg/sdk"
	"github.com/qt-creator/qt-creator-sub139/pkg/sdkmanager"
	"github.com/qt-creator/qt-creator-sub139/pkg/transcript"
)

// These variables will be set by the main package
var (
	ConfigPath   *string
	Verbose      *bool
	OutputFormat *string
)

// newRunner builds the sdkmanager runner. Tests replace it to avoid spawning processes.
var newRunner = func(cfg *config.Config) *sdkmanager.Runner {
	return sdkmanager.NewRunner(cfg.SdkManagerPath(), cfg.SDK.Root, cfg.SDK.ExtraArgs...)
}

// loadConfig loads the configuration, applies the global flags and sets up logging.
func loadConfig() (*config.Config, error) {
	configPath := getConfigPath()
	if configPath == "" {
		return nil, fmt.Errorf("failed to determine config path")
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if OutputFormat != nil && *OutputFormat != "" {
		cfg.Settings.OutputFormat = *OutputFormat
	}
	if Verbose != nil && *Verbose {
		cfg.Settings.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	initLogger(cfg)
	return cfg, nil
}

func getConfigPath() string {
	if ConfigPath != nil && *ConfigPath != "" {
		return *ConfigPath
	}

	defaultPath, err := config.GetDefaultConfigPath()
	if err != nil {
		logger.Warn("Failed to get default config path, using empty path", logger.Fields{"error": err})
		return ""
	}
	return defaultPath
}

// sourceOptions selects where the package listing comes from.
type sourceOptions struct {
	input string
	entry string
}

// loadListing returns the raw listing, either from a capture or from sdkmanager.
func loadListing(ctx context.Context, cfg *config.Config, src sourceOptions) (string, error) {
	if src.input != "" {
		logger.Debug("reading listing", logger.Fields{"input": src.input, "entry": src.entry})
		return transcript.Load(ctx, src.input, transcript.Options{Entry: src.entry})
	}

	if cfg.SDK.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.SDK.Timeout)
		defer cancel()
	}
	return newRunner(cfg).ListOutput(ctx)
}

// loadPackages parses the listing selected by src.
func loadPackages(ctx context.Context, cfg *config.Config, src sourceOptions) ([]sdk.Package, error) {
	output, err := loadListing(ctx, cfg, src)
	if err != nil {
		return nil, err
	}
	packages := sdkmanager.ParsePackageListing(output)
	logger.Debug("parsed listing", logger.Fields{"packages": len(packages)})
	return packages, nil
}
