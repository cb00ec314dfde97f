package sdk

// SystemImage is a "system-images;android-N;tag;abi" package.
type SystemImage struct {
	basePackage
	abi      string
	apiLevel int
	platform *SdkPlatform
}

// NewSystemImage creates a system image that is not yet attached to a platform.
func NewSystemImage(revision Revision, sdkStylePath, abi string, fs FileSystem) *SystemImage {
	return &SystemImage{
		basePackage: newBasePackage(revision, sdkStylePath, fs),
		abi:         abi,
		apiLevel:    UnknownAPILevel,
	}
}

func (s *SystemImage) Kind() Kind { return KindSystemImage }

// IsValid reports whether the image is attached to a valid platform.
func (s *SystemImage) IsValid() bool {
	return s.platform != nil && s.platform.IsValid()
}

func (s *SystemImage) Less(other Package) bool { return lessDefault(s, other) }

// ABI returns the image ABI, e.g. "x86_64".
func (s *SystemImage) ABI() string { return s.abi }

// APILevel returns the API level declared by the image header.
func (s *SystemImage) APILevel() int { return s.apiLevel }

// SetAPILevel sets the declared API level.
func (s *SystemImage) SetAPILevel(level int) { s.apiLevel = level }

// Platform returns the owning platform, nil until attached.
func (s *SystemImage) Platform() *SdkPlatform { return s.platform }
