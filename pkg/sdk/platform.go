package sdk

import "strconv"

// UnknownAPILevel marks a platform whose API level could not be determined.
const UnknownAPILevel = -1

// SdkPlatform is a "platforms;android-N" package. It owns the system images
// attached to it.
type SdkPlatform struct {
	basePackage
	apiLevel     int
	systemImages []*SystemImage
}

// NewSdkPlatform creates a platform package. The display text is derived from the
// API level.
func NewSdkPlatform(revision Revision, sdkStylePath string, apiLevel int, fs FileSystem) *SdkPlatform {
	p := &SdkPlatform{
		basePackage: newBasePackage(revision, sdkStylePath, fs),
		apiLevel:    apiLevel,
	}
	level := "Unknown"
	if apiLevel != UnknownAPILevel {
		level = strconv.Itoa(apiLevel)
	}
	p.SetDisplayText("android-" + level)
	return p
}

func (p *SdkPlatform) Kind() Kind { return KindSdkPlatform }

// IsValid reports whether the API level is known.
func (p *SdkPlatform) IsValid() bool { return p.apiLevel != UnknownAPILevel }

// Less puts higher API levels first. Platforms sharing a level fall back to
// display text.
func (p *SdkPlatform) Less(other Package) bool {
	o, ok := other.(*SdkPlatform)
	if !ok || o.apiLevel == p.apiLevel {
		return lessDefault(p, other)
	}
	return o.apiLevel < p.apiLevel
}

// APILevel returns the numeric API level or UnknownAPILevel.
func (p *SdkPlatform) APILevel() int { return p.apiLevel }

// AddSystemImage attaches image to the platform. Installed images are kept ahead
// of available ones and each group is ordered by display text.
func (p *SdkPlatform) AddSystemImage(image *SystemImage) {
	pos := 0
	for ; pos < len(p.systemImages); pos++ {
		current := p.systemImages[pos]
		if current.State() == image.State() {
			if current.DisplayText() > image.DisplayText() {
				break
			}
		} else if current.State() > image.State() {
			break
		}
	}
	p.systemImages = append(p.systemImages, nil)
	copy(p.systemImages[pos+1:], p.systemImages[pos:])
	p.systemImages[pos] = image
	image.platform = p
}

// SystemImages returns the attached images whose state matches mask, in
// attachment order.
func (p *SdkPlatform) SystemImages(mask State) []*SystemImage {
	result := make([]*SystemImage, 0, len(p.systemImages))
	for _, image := range p.systemImages {
		if image.State().Matches(mask) {
			result = append(result, image)
		}
	}
	return result
}
