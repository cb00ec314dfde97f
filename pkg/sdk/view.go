package sdk

// View is the serialisable form of a package used for JSON and YAML output.
type View struct {
	Kind              string `json:"kind" yaml:"kind"`
	SdkStylePath      string `json:"sdk_style_path" yaml:"sdk_style_path"`
	Revision          string `json:"revision" yaml:"revision"`
	DisplayText       string `json:"display_text" yaml:"display_text"`
	Description       string `json:"description,omitempty" yaml:"description,omitempty"`
	State             string `json:"state" yaml:"state"`
	Valid             bool   `json:"valid" yaml:"valid"`
	InstalledLocation string `json:"installed_location,omitempty" yaml:"installed_location,omitempty"`
	Extension         string `json:"extension,omitempty" yaml:"extension,omitempty"`
	APILevel          *int   `json:"api_level,omitempty" yaml:"api_level,omitempty"`
	ABI               string `json:"abi,omitempty" yaml:"abi,omitempty"`
	SystemImages      []View `json:"system_images,omitempty" yaml:"system_images,omitempty"`
}

// NewView builds the view of p. Platforms include their attached images.
func NewView(p Package) View {
	v := View{
		Kind:              p.Kind().String(),
		SdkStylePath:      p.SdkStylePath(),
		Revision:          p.Revision().String(),
		DisplayText:       p.DisplayText(),
		Description:       p.DescriptionText(),
		State:             p.State().String(),
		Valid:             p.IsValid(),
		InstalledLocation: p.InstalledLocation(),
		Extension:         p.Extension(),
	}

	switch pkg := p.(type) {
	case *SdkPlatform:
		level := pkg.APILevel()
		v.APILevel = &level
		for _, image := range pkg.SystemImages(AnyValidState) {
			v.SystemImages = append(v.SystemImages, NewView(image))
		}
	case *SystemImage:
		level := pkg.APILevel()
		v.APILevel = &level
		v.ABI = pkg.ABI()
	}

	return v
}

// NewViews maps NewView over packages.
func NewViews(packages []Package) []View {
	views := make([]View, 0, len(packages))
	for _, p := range packages {
		views = append(views, NewView(p))
	}
	return views
}
