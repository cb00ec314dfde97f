// Package sdk models the installable components of an Android SDK: platforms,
// system images, build tools and the various tool packages reported by sdkmanager.
package sdk

import (
	"sort"

	"github.com/qt-creator/qt-creator-sub139/pkg/errors"
	"github.com/qt-creator/qt-creator-sub139/pkg/logger"
)

// Package is implemented by every package kind. The set of kinds is closed.
type Package interface {
	Kind() Kind
	IsValid() bool
	// Less orders packages of different kinds by kind rank and packages of the
	// same kind by display text, unless the kind overrides it.
	Less(other Package) bool

	DisplayText() string
	SetDisplayText(text string)
	DescriptionText() string
	SetDescriptionText(text string)
	Revision() Revision
	State() State
	SetState(state State) error
	SdkStylePath() string
	Extension() string
	SetExtension(extension string)
	InstalledLocation() string
	SetInstalledLocation(path string)

	common() *basePackage
}

type basePackage struct {
	displayText       string
	descriptionText   string
	revision          Revision
	state             State
	sdkStylePath      string
	extension         string
	installedLocation string

	fs      FileSystem
	refresh func()
}

func newBasePackage(revision Revision, sdkStylePath string, fs FileSystem) basePackage {
	if fs == nil {
		fs = OSFileSystem{}
	}
	return basePackage{
		revision:     revision,
		state:        StateUnknown,
		sdkStylePath: sdkStylePath,
		fs:           fs,
	}
}

func (p *basePackage) common() *basePackage { return p }

// DisplayText returns the human readable name.
func (p *basePackage) DisplayText() string { return p.displayText }

// SetDisplayText sets the human readable name.
func (p *basePackage) SetDisplayText(text string) { p.displayText = text }

// DescriptionText returns the description reported by sdkmanager.
func (p *basePackage) DescriptionText() string { return p.descriptionText }

// SetDescriptionText sets the description.
func (p *basePackage) SetDescriptionText(text string) { p.descriptionText = text }

// Revision returns the package version.
func (p *basePackage) Revision() Revision { return p.revision }

// State returns the installation state.
func (p *basePackage) State() State { return p.state }

// SetState moves a package out of StateUnknown. It can only be called once.
func (p *basePackage) SetState(state State) error {
	if state != StateInstalled && state != StateAvailable {
		return errors.Wrapf(errors.ErrInvalidState, "%s for %s", state, p.sdkStylePath)
	}
	if p.state != StateUnknown {
		return errors.Wrapf(errors.ErrStateAlreadySet, "%s is %s", p.sdkStylePath, p.state)
	}
	p.state = state
	return nil
}

// SdkStylePath returns the stable identifier, e.g. "platforms;android-31".
func (p *basePackage) SdkStylePath() string { return p.sdkStylePath }

// Extension returns the SDK extension label, e.g. " Extension 4".
func (p *basePackage) Extension() string { return p.extension }

// SetExtension sets the SDK extension label.
func (p *basePackage) SetExtension(extension string) { p.extension = extension }

// InstalledLocation returns the on-disk location, empty if unknown.
func (p *basePackage) InstalledLocation() string { return p.installedLocation }

// SetInstalledLocation records the on-disk location. When the path exists the
// package details are refreshed.
func (p *basePackage) SetInstalledLocation(path string) {
	p.installedLocation = path
	if path != "" && p.fs.Exists(path) {
		p.refreshDetails()
	}
}

func (p *basePackage) refreshDetails() {
	logger.Debug("refreshing package details", logger.Fields{"path": p.sdkStylePath})
	if p.refresh != nil {
		p.refresh()
	}
}

// locationExists is the validity rule shared by the kinds that need an install.
func (p *basePackage) locationExists() bool {
	return p.installedLocation != "" && p.fs.Exists(p.installedLocation)
}

func lessDefault(p, other Package) bool {
	if p.Kind() != other.Kind() {
		return p.Kind() < other.Kind()
	}
	return p.DisplayText() < other.DisplayText()
}

// SortPackages sorts packages in place using Package.Less. Equal elements keep
// their relative order.
func SortPackages(packages []Package) {
	sort.SliceStable(packages, func(i, j int) bool {
		return packages[i].Less(packages[j])
	})
}

// FilterByState returns the packages whose state matches mask.
func FilterByState(packages []Package, mask State) []Package {
	result := make([]Package, 0, len(packages))
	for _, p := range packages {
		if p.State().Matches(mask) {
			result = append(result, p)
		}
	}
	return result
}

// FilterByKind returns the packages whose kind matches mask.
func FilterByKind(packages []Package, mask Kind) []Package {
	result := make([]Package, 0, len(packages))
	for _, p := range packages {
		if p.Kind()&mask != 0 {
			result = append(result, p)
		}
	}
	return result
}
