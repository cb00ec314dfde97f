package sdk

// BuildTools is a build-tools package.
type BuildTools struct {
	basePackage
}

// NewBuildTools creates a build-tools package.
func NewBuildTools(revision Revision, sdkStylePath string, fs FileSystem) *BuildTools {
	return &BuildTools{basePackage: newBasePackage(revision, sdkStylePath, fs)}
}

func (t *BuildTools) Kind() Kind { return KindBuildTools }
func (t *BuildTools) IsValid() bool { return true }
func (t *BuildTools) Less(other Package) bool { return lessDefault(t, other) }

// SdkTools is the legacy tools package or a cmdline-tools package.
type SdkTools struct {
	basePackage
}

// NewSdkTools creates an SDK tools package.
func NewSdkTools(revision Revision, sdkStylePath string, fs FileSystem) *SdkTools {
	return &SdkTools{basePackage: newBasePackage(revision, sdkStylePath, fs)}
}

func (t *SdkTools) Kind() Kind { return KindSdkTools }
func (t *SdkTools) IsValid() bool { return true }
func (t *SdkTools) Less(other Package) bool { return lessDefault(t, other) }

// PlatformTools is the platform-tools package (adb, fastboot).
type PlatformTools struct {
	basePackage
}

// NewPlatformTools creates a platform-tools package.
func NewPlatformTools(revision Revision, sdkStylePath string, fs FileSystem) *PlatformTools {
	return &PlatformTools{basePackage: newBasePackage(revision, sdkStylePath, fs)}
}

func (t *PlatformTools) Kind() Kind { return KindPlatformTools }
func (t *PlatformTools) IsValid() bool { return true }
func (t *PlatformTools) Less(other Package) bool { return lessDefault(t, other) }

// EmulatorTools is the emulator package.
type EmulatorTools struct {
	basePackage
}

// NewEmulatorTools creates an emulator package.
func NewEmulatorTools(revision Revision, sdkStylePath string, fs FileSystem) *EmulatorTools {
	return &EmulatorTools{basePackage: newBasePackage(revision, sdkStylePath, fs)}
}

func (t *EmulatorTools) Kind() Kind { return KindEmulatorTools }
func (t *EmulatorTools) IsValid() bool { return t.locationExists() }
func (t *EmulatorTools) Less(other Package) bool { return lessDefault(t, other) }

// ExtraTools is a package from the extras tree.
type ExtraTools struct {
	basePackage
}

// NewExtraTools creates an extras package.
func NewExtraTools(revision Revision, sdkStylePath string, fs FileSystem) *ExtraTools {
	return &ExtraTools{basePackage: newBasePackage(revision, sdkStylePath, fs)}
}

func (t *ExtraTools) Kind() Kind { return KindExtraTools }
func (t *ExtraTools) IsValid() bool { return t.locationExists() }
func (t *ExtraTools) Less(other Package) bool { return lessDefault(t, other) }

// Ndk is an NDK package, either side-by-side ("ndk;25.1.8937393") or ndk-bundle.
type Ndk struct {
	basePackage
}

// NewNdk creates an NDK package.
func NewNdk(revision Revision, sdkStylePath string, fs FileSystem) *Ndk {
	return &Ndk{basePackage: newBasePackage(revision, sdkStylePath, fs)}
}

func (t *Ndk) Kind() Kind { return KindNDK }
func (t *Ndk) IsValid() bool { return t.locationExists() }
func (t *Ndk) Less(other Package) bool { return lessDefault(t, other) }

// GenericSdkPackage is any package-like entry without a dedicated kind, such as
// "sources;android-33" or "cmake;3.22.1".
type GenericSdkPackage struct {
	basePackage
}

// NewGenericSdkPackage creates a generic package.
func NewGenericSdkPackage(revision Revision, sdkStylePath string, fs FileSystem) *GenericSdkPackage {
	return &GenericSdkPackage{basePackage: newBasePackage(revision, sdkStylePath, fs)}
}

func (t *GenericSdkPackage) Kind() Kind { return KindGeneric }
func (t *GenericSdkPackage) IsValid() bool { return t.locationExists() }
func (t *GenericSdkPackage) Less(other Package) bool { return lessDefault(t, other) }
