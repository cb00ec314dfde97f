package config

import (
	"strings"
	"time"

	"github.com/qt-creator/qt-creator-sub139/pkg/errors"
)

// Keys lists the keys accepted by GetValue and SetValue.
var Keys = []string{
	"sdk.root", "sdk.sdkmanager", "sdk.extra_args", "sdk.timeout",
	"output_format", "log_level", "log_format",
}

// SetValue sets a configuration value by key. sdk.extra_args takes a
// whitespace-separated list; sdk.timeout a Go duration such as 2m.
func (c *Config) SetValue(key, value string) error {
	switch key {
	case "sdk.root":
		c.SDK.Root = value
	case "sdk.sdkmanager":
		c.SDK.SdkManager = value
	case "sdk.extra_args":
		c.SDK.ExtraArgs = strings.Fields(value)
	case "sdk.timeout":
		d, err := time.ParseDuration(value)
		if err != nil {
			return errors.Wrapf(errors.ErrInvalidConfigValue, "%s: %v", key, err)
		}
		c.SDK.Timeout = d
	case "output_format":
		c.Settings.OutputFormat = value
	case "log_level":
		c.Settings.LogLevel = value
	case "log_format":
		c.Settings.LogFormat = value
	default:
		return errors.Wrap(errors.ErrUnknownConfigKey, key)
	}
	return c.Validate()
}

// GetValue returns the value of key as a string.
func (c *Config) GetValue(key string) (string, error) {
	switch key {
	case "sdk.root":
		return c.SDK.Root, nil
	case "sdk.sdkmanager":
		return c.SDK.SdkManager, nil
	case "sdk.extra_args":
		return strings.Join(c.SDK.ExtraArgs, " "), nil
	case "sdk.timeout":
		return c.SDK.Timeout.String(), nil
	case "output_format":
		return c.Settings.OutputFormat, nil
	case "log_level":
		return c.Settings.LogLevel, nil
	case "log_format":
		return c.Settings.LogFormat, nil
	default:
		return "", errors.Wrap(errors.ErrUnknownConfigKey, key)
	}
}

// ToMap returns every key with its current value, for display.
func (c *Config) ToMap() map[string]string {
	result := make(map[string]string, len(Keys))
	for _, key := range Keys {
		value, _ := c.GetValue(key)
		result[key] = value
	}
	return result
}
