// Package sdkmanager turns the output of "sdkmanager --list --verbose" into the
// package model of pkg/sdk.
package sdkmanager

import (
	"regexp"
	"strings"

	"github.com/qt-creator/qt-creator-sub139/pkg/logger"
	"github.com/qt-creator/qt-creator-sub139/pkg/sdk"
)

// dependencyIndent prefixes the entries of a "Dependencies:" list.
const dependencyIndent = "        "

var lineDelimiters = regexp.MustCompile(`[\n\r]`)

// Option configures a Parser.
type Option func(*Parser)

// WithFileSystem sets the file system used by the created packages.
func WithFileSystem(fs sdk.FileSystem) Option {
	return func(p *Parser) {
		p.fs = fs
	}
}

type pendingImage struct {
	image    *sdk.SystemImage
	apiLevel int
}

// Parser is a single-threaded parser for sdkmanager package listings. A Parser
// must not be used from several goroutines at once.
type Parser struct {
	fs sdk.FileSystem

	currentSection MarkerTag
	packages       []sdk.Package
	// system images with the API level their header declared, in parse order
	images []pendingImage
}

// NewParser creates a parser.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		fs:             sdk.OSFileSystem{},
		currentSection: MarkerNone,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParsePackageListing parses output with a fresh Parser and returns the packages.
func ParsePackageListing(output string, opts ...Option) []sdk.Package {
	p := NewParser(opts...)
	p.ParsePackageListing(output)
	return p.Packages()
}

// Packages returns the top-level packages in the order they were parsed.
// System images are reachable through their platform only.
func (p *Parser) Packages() []sdk.Package {
	return p.packages
}

// Reset discards the results of a previous parse.
func (p *Parser) Reset() {
	p.currentSection = MarkerNone
	p.packages = nil
	p.images = nil
}

// ParsePackageListing parses the full output of an sdkmanager listing. Records
// that cannot be parsed are dropped.
func (p *Parser) ParsePackageListing(output string) {
	p.Reset()

	var (
		packageData   []string
		collecting    bool
		packageMarker = MarkerNone
	)

	processCurrentPackage := func() {
		if collecting {
			collecting = false
			p.parsePackageData(packageMarker, packageData)
			packageData = nil
		}
	}

	output = strings.ReplaceAll(output, "\r\n", "\n")
	for _, line := range lineDelimiters.Split(output, -1) {
		if strings.HasPrefix(line, dependencyIndent) {
			continue
		}

		// updates are listed again under available packages
		if p.currentSection == MarkerAvailableUpdates {
			continue
		}

		marker := ParseMarkers(line)
		if marker.IsSection() {
			processCurrentPackage()
			p.currentSection = marker
			continue
		}

		if p.currentSection == MarkerNone {
			continue
		}

		switch marker {
		case MarkerEmpty:
			processCurrentPackage()
		case MarkerNone:
			if collecting {
				packageData = append(packageData, line)
			}
		default:
			processCurrentPackage()
			packageMarker = marker
			collecting = true
			packageData = append(packageData, line)
		}
	}
	processCurrentPackage()

	p.compilePackageAssociations()
}

func (p *Parser) parsePackageData(marker MarkerTag, data []string) {
	if len(data) == 0 || marker == MarkerNone {
		logger.Debug("ignoring empty package record", logger.Fields{"marker": marker.String()})
		return
	}

	var pkg sdk.Package
	addPackage := func(created sdk.Package) {
		if created != nil {
			p.packages = append(p.packages, created)
			pkg = created
		}
	}

	switch marker {
	case MarkerBuildTools:
		addPackage(p.parseBuildToolsPackage(data))
	case MarkerSdkTools, MarkerCmdlineSdkTools:
		addPackage(p.parseSdkToolsPackage(data))
	case MarkerPlatformTools:
		addPackage(p.parsePlatformToolsPackage(data))
	case MarkerEmulatorTools:
		addPackage(p.parseEmulatorToolsPackage(data))
	case MarkerPlatform:
		addPackage(p.parsePlatform(data))
	case MarkerSystemImage:
		if image, apiLevel := p.parseSystemImage(data); image != nil {
			p.images = append(p.images, pendingImage{image: image, apiLevel: apiLevel})
			pkg = image
		}
	case MarkerNdk:
		addPackage(p.parseNdkPackage(data))
	case MarkerExtras:
		addPackage(p.parseExtraToolsPackage(data))
	case MarkerGenericTool:
		addPackage(p.parseGenericTools(data))
	default:
		logger.Debug("unhandled package", logger.Fields{"marker": marker.String()})
	}

	if pkg == nil {
		return
	}

	var state sdk.State
	switch p.currentSection {
	case MarkerInstalledPackages:
		state = sdk.StateInstalled
	case MarkerAvailablePackages, MarkerAvailableUpdates:
		state = sdk.StateAvailable
	default:
		logger.Debug("invalid section marker", logger.Fields{"section": p.currentSection.String()})
		return
	}
	if err := pkg.SetState(state); err != nil {
		logger.Debug("cannot set package state", logger.Fields{"error": err.Error()})
	}
}
