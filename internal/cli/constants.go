package cli

// Default values for CLI flags and output.
const (
	// MaxDescriptionLength is the maximum length of a package description in tables.
	MaxDescriptionLength = 50
	// TabWidth is the width of tabs in formatted output.
	TabWidth = 2
)

// Output formats.
const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)
