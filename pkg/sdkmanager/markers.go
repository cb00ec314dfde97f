package sdkmanager

import (
	"regexp"
	"strings"
)

// MarkerTag classifies a single line of sdkmanager output.
type MarkerTag int

// Marker tags. Section markers can be tested with SectionMarkers.
const (
	MarkerNone MarkerTag = 1 << iota
	MarkerInstalledPackages
	MarkerAvailablePackages
	MarkerAvailableUpdates
	MarkerEmpty
	MarkerPlatform
	MarkerSystemImage
	MarkerBuildTools
	MarkerSdkTools
	MarkerCmdlineSdkTools
	MarkerPlatformTools
	MarkerEmulatorTools
	MarkerNdk
	MarkerExtras
	MarkerGenericTool

	SectionMarkers = MarkerInstalledPackages | MarkerAvailablePackages | MarkerAvailableUpdates
)

const (
	// CmdlineToolsName is the sdk-style path prefix of the command-line tools package.
	CmdlineToolsName = "cmdline-tools"
	// NdkPackageName is the sdk-style path prefix of the NDK packages.
	NdkPackageName = "ndk"
)

type markerLiteral struct {
	tag     MarkerTag
	literal string
}

// markerLiterals is matched in order; the first prefix hit wins.
var markerLiterals = [...]markerLiteral{
	{MarkerInstalledPackages, "Installed packages:"},
	{MarkerAvailablePackages, "Available Packages:"},
	{MarkerAvailableUpdates, "Available Updates:"},
	{MarkerPlatform, "platforms"},
	{MarkerSystemImage, "system-images"},
	{MarkerBuildTools, "build-tools"},
	{MarkerSdkTools, "tools"},
	{MarkerCmdlineSdkTools, CmdlineToolsName},
	{MarkerPlatformTools, "platform-tools"},
	{MarkerEmulatorTools, "emulator"},
	{MarkerNdk, NdkPackageName},
	{MarkerExtras, "extras"},
}

var genericToolPattern = regexp.MustCompile(`^[a-zA-Z][A-Za-z0-9;._-]+$`)

var markerNames = map[MarkerTag]string{
	MarkerNone:              "None",
	MarkerInstalledPackages: "InstalledPackagesMarker",
	MarkerAvailablePackages: "AvailablePackagesMarker",
	MarkerAvailableUpdates:  "AvailableUpdatesMarker",
	MarkerEmpty:             "EmptyMarker",
	MarkerPlatform:          "PlatformMarker",
	MarkerSystemImage:       "SystemImageMarker",
	MarkerBuildTools:        "BuildToolsMarker",
	MarkerSdkTools:          "SdkToolsMarker",
	MarkerCmdlineSdkTools:   "CmdlineSdkToolsMarker",
	MarkerPlatformTools:     "PlatformToolsMarker",
	MarkerEmulatorTools:     "EmulatorToolsMarker",
	MarkerNdk:               "NdkMarker",
	MarkerExtras:            "ExtrasMarker",
	MarkerGenericTool:       "GenericToolMarker",
}

func (m MarkerTag) String() string {
	if name, ok := markerNames[m]; ok {
		return name
	}
	return "UnknownMarker"
}

// IsSection reports whether m is one of the section headers.
func (m MarkerTag) IsSection() bool {
	return m&SectionMarkers != 0
}

// Literal returns the text a line must start with to be classified as m, or ""
// for tags that are not literal-driven.
func (m MarkerTag) Literal() string {
	for _, ml := range markerLiterals {
		if ml.tag == m {
			return ml.literal
		}
	}
	return ""
}

// ParseMarkers classifies a single line. Surrounding whitespace is ignored.
func ParseMarkers(line string) MarkerTag {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return MarkerEmpty
	}

	for _, ml := range markerLiterals {
		if strings.HasPrefix(trimmed, ml.literal) {
			return ml.tag
		}
	}

	if genericToolPattern.MatchString(trimmed) {
		return MarkerGenericTool
	}

	return MarkerNone
}
