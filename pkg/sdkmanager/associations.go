package sdkmanager

import (
	"github.com/qt-creator/qt-creator-sub139/pkg/logger"
	"github.com/qt-creator/qt-creator-sub139/pkg/sdk"
)

// isAlreadyInstalled reports whether container holds an installed package with
// the same sdk-style path and revision as p.
func isAlreadyInstalled[T any](container []T, pkgOf func(T) sdk.Package, p sdk.Package) bool {
	for _, item := range container {
		other := pkgOf(item)
		if other.State() == sdk.StateInstalled &&
			other.SdkStylePath() == p.SdkStylePath() &&
			other.Revision().Equal(p.Revision()) {
			return true
		}
	}
	return false
}

// dropAlreadyInstalled removes available entries that are also listed as installed.
func dropAlreadyInstalled[T any](items []T, pkgOf func(T) sdk.Package) []T {
	kept := make([]T, 0, len(items))
	for _, item := range items {
		p := pkgOf(item)
		if p.State() == sdk.StateAvailable && isAlreadyInstalled(items, pkgOf, p) {
			logger.Debug("dropping available duplicate of installed package", logger.Fields{
				"path":     p.SdkStylePath(),
				"revision": p.Revision().String(),
			})
			continue
		}
		kept = append(kept, item)
	}
	return kept
}

func (p *Parser) compilePackageAssociations() {
	p.packages = dropAlreadyInstalled(p.packages, func(pkg sdk.Package) sdk.Package { return pkg })
	p.images = dropAlreadyInstalled(p.images, func(pi pendingImage) sdk.Package { return pi.image })

	for _, pending := range p.images {
		platform := p.findPlatform(pending.apiLevel)
		if platform == nil {
			logger.Debug("no platform for system image", logger.Fields{
				"path":      pending.image.SdkStylePath(),
				"api_level": pending.apiLevel,
			})
			continue
		}
		platform.AddSystemImage(pending.image)
	}
	p.images = nil
}

func (p *Parser) findPlatform(apiLevel int) *sdk.SdkPlatform {
	for _, pkg := range p.packages {
		if platform, ok := pkg.(*sdk.SdkPlatform); ok && platform.APILevel() == apiLevel {
			return platform
		}
	}
	return nil
}
