package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T, level string, format OutputFormat, fn func()) string {
	t.Helper()
	buf := &bytes.Buffer{}
	SetTestOutput(buf)
	defer UnsetTestOutput()

	logger = nil
	InitLogger(level, format)

	fn()

	return buf.String()
}

func TestLogger(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		logFn    func()
		contains []string
		excludes []string
	}{
		{
			name:     "info log",
			level:    "info",
			logFn:    func() { Info("parsed listing") },
			contains: []string{"parsed listing", "level=INFO"},
		},
		{
			name:     "debug log with debug level",
			level:    "debug",
			logFn:    func() { Debug("dropped record", Fields{"marker": "platforms"}) },
			contains: []string{"dropped record", "level=DEBUG", "marker=platforms"},
		},
		{
			name:     "debug log with info level",
			level:    "info",
			logFn:    func() { Debug("dropped record") },
			excludes: []string{"dropped record"},
		},
		{
			name:     "warn log with fields",
			level:    "warn",
			logFn:    func() { Warn("orphaned image", Fields{"api": 29, "path": "system-images;android-29"}) },
			contains: []string{"orphaned image", "level=WARN", "api=29"},
		},
		{
			name:     "error log",
			level:    "error",
			logFn:    func() { Error("sdkmanager failed") },
			contains: []string{"sdkmanager failed", "level=ERROR"},
		},
		{
			name:     "success log",
			level:    "info",
			logFn:    func() { Success("config written") },
			contains: []string{"config written", "status=success"},
		},
		{
			name:     "formatted debug with fields",
			level:    "debug",
			logFn:    func() { DebugfWithFields(Fields{"count": 21}, "compiled %d packages", 21) },
			contains: []string{"compiled 21 packages", "count=21"},
		},
		{
			name:     "unknown level falls back to info",
			level:    "verbose",
			logFn:    func() { Debugf("hidden %s", "line"); Infof("shown %s", "line") },
			contains: []string{"shown line"},
			excludes: []string{"hidden line"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := captureOutput(t, tt.level, FormatText, tt.logFn)
			for _, want := range tt.contains {
				assert.Contains(t, output, want)
			}
			for _, notWant := range tt.excludes {
				assert.NotContains(t, output, notWant)
			}
		})
	}
}

func TestGetLogger_InitializesIfNil(t *testing.T) {
	logger = nil
	assert.NotPanics(t, func() {
		lg := GetLogger()
		assert.NotNil(t, lg)
	})
}

func TestSetOutputFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	SetTestOutput(buf)
	defer UnsetTestOutput()

	logger = nil
	InitLogger("debug", FormatText)
	Info("text message")
	assert.Contains(t, buf.String(), "msg=\"text message\"")

	buf.Reset()
	SetOutputFormat(FormatJSON)
	Debug("json message", Fields{"kind": "NDKPackage"})
	out := buf.String()
	assert.Contains(t, out, `"msg":"json message"`)
	assert.Contains(t, out, `"level":"DEBUG"`)
	assert.Contains(t, out, `"kind":"NDKPackage"`)
}

func TestMergeFields(t *testing.T) {
	attrs := mergeFields(Fields{"b": 1, "a": "x"}, Fields{"b": 2})
	assert.Equal(t, []interface{}{"a", "x", "b", 2}, attrs)
	assert.Empty(t, mergeFields())
}
