package cli

import (
	"github.com/qt-creator/qt-creator-sub139/pkg/config"
	"github.com/qt-creator/qt-creator-sub139/pkg/logger"
)

// initLogger configures the global logger from the loaded configuration.
func initLogger(cfg *config.Config) {
	format := logger.FormatText
	if cfg.Settings.LogFormat == string(logger.FormatJSON) {
		format = logger.FormatJSON
	}
	logger.InitLogger(cfg.Settings.LogLevel, format)
}
