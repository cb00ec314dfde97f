package sdkmanager

import (
	"testing"

	"github.com/qt-creator/qt-creator-sub139/pkg/sdk"
	mock_sdk "github.com/qt-creator/qt-creator-sub139/pkg/sdk/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestParser returns a parser whose file system reports every path as missing.
func newTestParser(t *testing.T) *Parser {
	t.Helper()
	ctrl := gomock.NewController(t)
	fs := mock_sdk.NewMockFileSystem(ctrl)
	fs.EXPECT().Exists(gomock.Any()).Return(false).AnyTimes()
	return NewParser(WithFileSystem(fs))
}

func TestPlatformNameToAPILevel(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		level     int
		extension string
	}{
		{name: "plain", input: "android-31", level: 31},
		{name: "extension", input: "android-33-ext4", level: 33, extension: " Extension 4"},
		{name: "two digit extension", input: "android-34-ext10", level: 34, extension: " Extension 10"},
		{name: "case insensitive", input: "Android-30", level: 30},
		{name: "codename", input: "android-UpsideDownCake", level: sdk.UnknownAPILevel},
		{name: "no prefix", input: "31", level: sdk.UnknownAPILevel},
		{name: "empty", input: "", level: sdk.UnknownAPILevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, extension := PlatformNameToAPILevel(tt.input)
			assert.Equal(t, tt.level, level)
			assert.Equal(t, tt.extension, extension)
		})
	}
}

func TestSubParsers_DegenerateInput(t *testing.T) {
	p := newTestParser(t)
	parsers := map[string]func([]string) sdk.Package{
		"platform":       p.parsePlatform,
		"build-tools":    p.parseBuildToolsPackage,
		"sdk-tools":      p.parseSdkToolsPackage,
		"platform-tools": p.parsePlatformToolsPackage,
		"emulator":       p.parseEmulatorToolsPackage,
		"ndk":            p.parseNdkPackage,
		"extras":         p.parseExtraToolsPackage,
		"generic":        p.parseGenericTools,
		"system-image": func(data []string) sdk.Package {
			if image, _ := p.parseSystemImage(data); image != nil {
				return image
			}
			return nil
		},
	}

	for name, parse := range parsers {
		t.Run(name, func(t *testing.T) {
			assert.Nil(t, parse([]string{""}))
			assert.Nil(t, parse(nil))
		})
	}
}

func TestParseTools(t *testing.T) {
	tests := []struct {
		name   string
		data   []string
		parse  func(*Parser, []string) sdk.Package
		kind   sdk.Kind
		path   string
		nilPkg bool
	}{
		{
			name:  "build tools",
			data:  []string{"build-tools;33.0.1", "    Description:        Android SDK Build-Tools 33.0.1", "    Version:            33.0.1", "    Installed Location: /sdk/build-tools/33.0.1"},
			parse: (*Parser).parseBuildToolsPackage,
			kind:  sdk.KindBuildTools,
			path:  "build-tools;33.0.1",
		},
		{
			name:   "build tools need two header parts",
			data:   []string{"build-tools", "    Description:        Build tools", "    Version:            33.0.1"},
			parse:  (*Parser).parseBuildToolsPackage,
			nilPkg: true,
		},
		{
			name:  "cmdline tools",
			data:  []string{"cmdline-tools;latest", "    Description:        Android SDK Command-line Tools (latest)", "    Version:            9.0"},
			parse: (*Parser).parseSdkToolsPackage,
			kind:  sdk.KindSdkTools,
			path:  "cmdline-tools;latest",
		},
		{
			name:  "platform tools",
			data:  []string{"platform-tools", "    Description:        Android SDK Platform-Tools", "    Version:            33.0.3"},
			parse: (*Parser).parsePlatformToolsPackage,
			kind:  sdk.KindPlatformTools,
			path:  "platform-tools",
		},
		{
			name:  "emulator",
			data:  []string{"emulator", "    Description:        Android Emulator", "    Version:            31.3.14"},
			parse: (*Parser).parseEmulatorToolsPackage,
			kind:  sdk.KindEmulatorTools,
			path:  "emulator",
		},
		{
			name:  "ndk",
			data:  []string{"ndk;25.1.8937393", "    Description:        NDK (Side by side) 25.1.8937393", "    Version:            25.1.8937393"},
			parse: (*Parser).parseNdkPackage,
			kind:  sdk.KindNDK,
			path:  "ndk;25.1.8937393",
		},
		{
			name:  "extras",
			data:  []string{"extras;google;usb_driver", "    Description:        Google USB Driver", "    Version:            13"},
			parse: (*Parser).parseExtraToolsPackage,
			kind:  sdk.KindExtraTools,
			path:  "extras;google;usb_driver",
		},
		{
			name:  "generic",
			data:  []string{"sources;android-33", "    Description:        Sources for Android 33", "    Version:            1"},
			parse: (*Parser).parseGenericTools,
			kind:  sdk.KindGeneric,
			path:  "sources;android-33",
		},
		{
			name:   "missing version",
			data:   []string{"sources;android-33", "    Description:        Sources for Android 33"},
			parse:  (*Parser).parseGenericTools,
			nilPkg: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pkg := tt.parse(newTestParser(t), tt.data)
			if tt.nilPkg {
				assert.Nil(t, pkg)
				return
			}
			require.NotNil(t, pkg)
			assert.Equal(t, tt.kind, pkg.Kind())
			assert.Equal(t, tt.path, pkg.SdkStylePath())
			assert.Equal(t, pkg.DescriptionText(), pkg.DisplayText())
			assert.NotEmpty(t, pkg.DescriptionText())
			assert.False(t, pkg.Revision().IsNull())
			assert.Equal(t, sdk.StateUnknown, pkg.State())
		})
	}
}

func TestParseBuildTools_Fields(t *testing.T) {
	pkg := newTestParser(t).parseBuildToolsPackage([]string{
		"build-tools;33.0.1",
		"    Description:        Android SDK Build-Tools 33.0.1",
		"    Version:            33.0.1",
		"    Installed Location: /sdk/build-tools/33.0.1",
	})
	require.NotNil(t, pkg)
	assert.Equal(t, []int{33, 0, 1}, pkg.Revision().Segments())
	assert.Equal(t, "Android SDK Build-Tools 33.0.1", pkg.DescriptionText())
	assert.Equal(t, "/sdk/build-tools/33.0.1", pkg.InstalledLocation())
}

func TestParsePlatform(t *testing.T) {
	p := newTestParser(t)

	pkg := p.parsePlatform([]string{"platforms;android-33-ext4", "    Description:        Android SDK Platform 33-ext4", "    Version:            1"})
	require.NotNil(t, pkg)
	platform, ok := pkg.(*sdk.SdkPlatform)
	require.True(t, ok)
	assert.Equal(t, 33, platform.APILevel())
	assert.Equal(t, " Extension 4", platform.Extension())
	assert.Equal(t, "android-33", platform.DisplayText())
	assert.Equal(t, "Android SDK Platform 33-ext4", platform.DescriptionText())

	assert.Nil(t, p.parsePlatform([]string{"platforms;android-UpsideDownCake", "    Description:        Preview", "    Version:            4"}))
	assert.Nil(t, p.parsePlatform([]string{"platforms", "    Description:        Platform", "    Version:            1"}))
}

func TestParseSystemImage(t *testing.T) {
	p := newTestParser(t)

	image, apiLevel := p.parseSystemImage([]string{
		"system-images;android-33;google_apis;arm64-v8a",
		"    Description:        Google APIs ARM 64 v8a System Image",
		"    Version:            8",
	})
	require.NotNil(t, image)
	assert.Equal(t, 33, apiLevel)
	assert.Equal(t, 33, image.APILevel())
	assert.Equal(t, "arm64-v8a", image.ABI())
	assert.Equal(t, "Google APIs ARM 64 v8a System Image", image.DisplayText())
	assert.Nil(t, image.Platform())

	image, apiLevel = p.parseSystemImage([]string{"system-images;android-33;google_apis", "    Description:        Short", "    Version:            8"})
	assert.Nil(t, image)
	assert.Equal(t, sdk.UnknownAPILevel, apiLevel)
}
