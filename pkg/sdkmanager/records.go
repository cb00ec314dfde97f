package sdkmanager

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/qt-creator/qt-creator-sub139/pkg/logger"
	"github.com/qt-creator/qt-creator-sub139/pkg/sdk"
)

// Field keys inside a package record.
const (
	installLocationKey = "Installed Location:"
	revisionKey        = "Version:"
	descriptionKey     = "Description:"
)

var recordKeys = [...]string{installLocationKey, revisionKey, descriptionKey}

var platformNamePattern = regexp.MustCompile(`(?i)android-(?P<apiLevel>[0-9a-z]+)(?:-ext(?P<extension>[0-9]+))?`)

// packageData is the kind-independent content of one record.
type packageData struct {
	headerParts       []string
	sdkStylePath      string
	revision          sdk.Revision
	description       string
	installedLocation string
}

func valueForKey(key, line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, key) {
		return "", false
	}
	return strings.TrimSpace(strings.TrimPrefix(trimmed, key)), true
}

// matchRecordKey returns the first known key the line starts with and its value.
func matchRecordKey(line string) (string, string, bool) {
	for _, key := range recordKeys {
		if value, ok := valueForKey(key, line); ok {
			return key, value, true
		}
	}
	return "", "", false
}

// parseAbstractData reads the header and the known keys of a record. It fails on
// empty input, on fewer than minParts header parts and on a missing revision.
func parseAbstractData(input []string, minParts int, logTag string) (packageData, bool) {
	var output packageData
	if len(input) == 0 || strings.TrimSpace(input[0]) == "" {
		logger.Debug(logTag+": empty input")
		return output, false
	}

	output.sdkStylePath = strings.TrimSpace(input[0])
	output.headerParts = strings.Split(output.sdkStylePath, ";")
	if len(output.headerParts) < minParts {
		logger.Debug(logTag+": unexpected header", logger.Fields{"header": output.sdkStylePath})
		return output, false
	}

	for _, line := range input {
		key, value, ok := matchRecordKey(line)
		if !ok {
			continue
		}
		switch key {
		case installLocationKey:
			output.installedLocation = value
		case revisionKey:
			output.revision = sdk.ParseRevision(value)
		case descriptionKey:
			output.description = value
		}
	}

	if output.revision.IsNull() {
		logger.Debug(logTag+": missing revision", logger.Fields{"header": output.sdkStylePath})
		return output, false
	}
	return output, true
}

// PlatformNameToAPILevel extracts the API level from names such as "android-31"
// or "android-33-ext4". The second result is the extension label, e.g.
// " Extension 4". The level is sdk.UnknownAPILevel when it is not numeric.
func PlatformNameToAPILevel(platformName string) (int, string) {
	match := platformNamePattern.FindStringSubmatch(platformName)
	if match == nil {
		return sdk.UnknownAPILevel, ""
	}

	level, err := strconv.Atoi(match[platformNamePattern.SubexpIndex("apiLevel")])
	if err != nil {
		return sdk.UnknownAPILevel, ""
	}

	var extension string
	if ext := match[platformNamePattern.SubexpIndex("extension")]; ext != "" {
		extension = " Extension " + ext
	}
	return level, extension
}

func (p *Parser) parsePlatform(data []string) sdk.Package {
	packageData, ok := parseAbstractData(data, 2, "Platform")
	if !ok {
		logger.Debug("Platform: parsing failed, minimum required data unavailable")
		return nil
	}

	apiLevel, extension := PlatformNameToAPILevel(packageData.headerParts[1])
	if apiLevel == sdk.UnknownAPILevel {
		logger.Debug("Platform: cannot parse api level", logger.Fields{"header": packageData.sdkStylePath})
		return nil
	}

	platform := sdk.NewSdkPlatform(packageData.revision, packageData.sdkStylePath, apiLevel, p.fs)
	platform.SetExtension(extension)
	platform.SetDescriptionText(packageData.description)
	platform.SetInstalledLocation(packageData.installedLocation)
	return platform
}

func (p *Parser) parseSystemImage(data []string) (*sdk.SystemImage, int) {
	packageData, ok := parseAbstractData(data, 4, "System-image")
	if !ok {
		logger.Debug("System-image: parsing failed, minimum required data unavailable")
		return nil, sdk.UnknownAPILevel
	}

	apiLevel, _ := PlatformNameToAPILevel(packageData.headerParts[1])
	if apiLevel == sdk.UnknownAPILevel {
		logger.Debug("System-image: cannot parse api level", logger.Fields{"header": packageData.sdkStylePath})
		return nil, sdk.UnknownAPILevel
	}

	image := sdk.NewSystemImage(packageData.revision, packageData.sdkStylePath, packageData.headerParts[3], p.fs)
	image.SetInstalledLocation(packageData.installedLocation)
	image.SetDisplayText(packageData.description)
	image.SetDescriptionText(packageData.description)
	image.SetAPILevel(apiLevel)
	return image, apiLevel
}

// toolConstructor builds one of the kinds that only carry the common fields.
type toolConstructor func(sdk.Revision, string, sdk.FileSystem) sdk.Package

// parseTool handles the kinds whose display text is their description.
func (p *Parser) parseTool(data []string, minParts int, logTag string, create toolConstructor) sdk.Package {
	packageData, ok := parseAbstractData(data, minParts, logTag)
	if !ok {
		logger.Debug(logTag + ": parsing failed, minimum required data unavailable")
		return nil
	}

	pkg := create(packageData.revision, packageData.sdkStylePath, p.fs)
	pkg.SetDescriptionText(packageData.description)
	pkg.SetDisplayText(packageData.description)
	pkg.SetInstalledLocation(packageData.installedLocation)
	return pkg
}

func (p *Parser) parseBuildToolsPackage(data []string) sdk.Package {
	return p.parseTool(data, 2, "Build-tools", func(r sdk.Revision, path string, fs sdk.FileSystem) sdk.Package {
		return sdk.NewBuildTools(r, path, fs)
	})
}

func (p *Parser) parseSdkToolsPackage(data []string) sdk.Package {
	return p.parseTool(data, 1, "SDK-tools", func(r sdk.Revision, path string, fs sdk.FileSystem) sdk.Package {
		return sdk.NewSdkTools(r, path, fs)
	})
}

func (p *Parser) parsePlatformToolsPackage(data []string) sdk.Package {
	return p.parseTool(data, 1, "Platform-tools", func(r sdk.Revision, path string, fs sdk.FileSystem) sdk.Package {
		return sdk.NewPlatformTools(r, path, fs)
	})
}

func (p *Parser) parseEmulatorToolsPackage(data []string) sdk.Package {
	return p.parseTool(data, 1, "Emulator-tools", func(r sdk.Revision, path string, fs sdk.FileSystem) sdk.Package {
		return sdk.NewEmulatorTools(r, path, fs)
	})
}

func (p *Parser) parseNdkPackage(data []string) sdk.Package {
	return p.parseTool(data, 1, "NDK Package", func(r sdk.Revision, path string, fs sdk.FileSystem) sdk.Package {
		return sdk.NewNdk(r, path, fs)
	})
}

func (p *Parser) parseExtraToolsPackage(data []string) sdk.Package {
	return p.parseTool(data, 1, "Extras", func(r sdk.Revision, path string, fs sdk.FileSystem) sdk.Package {
		return sdk.NewExtraTools(r, path, fs)
	})
}

func (p *Parser) parseGenericTools(data []string) sdk.Package {
	return p.parseTool(data, 1, "Generic", func(r sdk.Revision, path string, fs sdk.FileSystem) sdk.Package {
		return sdk.NewGenericSdkPackage(r, path, fs)
	})
}
