package config

import (
	"testing"
	"time"

	"github.com/qt-creator/qt-creator-sub139/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetValueGetValue(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, cfg.SetValue("sdk.root", "/opt/android-sdk"))
	require.NoError(t, cfg.SetValue("sdk.extra_args", "--channel=3  --include_obsolete"))
	require.NoError(t, cfg.SetValue("sdk.timeout", "90s"))
	require.NoError(t, cfg.SetValue("output_format", "yaml"))

	assert.Equal(t, []string{"--channel=3", "--include_obsolete"}, cfg.SDK.ExtraArgs)
	assert.Equal(t, 90*time.Second, cfg.SDK.Timeout)

	value, err := cfg.GetValue("sdk.extra_args")
	require.NoError(t, err)
	assert.Equal(t, "--channel=3 --include_obsolete", value)

	value, err = cfg.GetValue("sdk.timeout")
	require.NoError(t, err)
	assert.Equal(t, "1m30s", value)

	m := cfg.ToMap()
	assert.Len(t, m, len(Keys))
	assert.Equal(t, "/opt/android-sdk", m["sdk.root"])
	assert.Equal(t, "yaml", m["output_format"])
}

func TestSetValue_Errors(t *testing.T) {
	cfg := DefaultConfig()

	assert.ErrorIs(t, cfg.SetValue("color_output", "true"), errors.ErrUnknownConfigKey)
	assert.ErrorIs(t, cfg.SetValue("sdk.timeout", "soon"), errors.ErrInvalidConfigValue)
	assert.ErrorIs(t, cfg.SetValue("log_level", "loud"), errors.ErrInvalidLogLevel)

	_, err := cfg.GetValue("color_output")
	assert.ErrorIs(t, err, errors.ErrUnknownConfigKey)
}
