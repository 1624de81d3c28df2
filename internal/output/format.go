package output

import "strings"

// OutputFormat selects how listing commands print their result.
type OutputFormat string

const (
	// FormatTable prints a styled table.
	FormatTable OutputFormat = "table"

	// FormatYAML prints YAML.
	FormatYAML OutputFormat = "yaml"

	// FormatJSON prints indented JSON.
	FormatJSON OutputFormat = "json"
)

// String returns the string representation of the output format.
func (f OutputFormat) String() string {
	return string(f)
}

// Valid reports whether f is a known format.
func (f OutputFormat) Valid() bool {
	switch f {
	case FormatTable, FormatYAML, FormatJSON:
		return true
	default:
		return false
	}
}

// ParseOutputFormat parses s case-insensitively. Unknown names are
// returned as given; check Valid.
func ParseOutputFormat(s string) OutputFormat {
	switch strings.ToLower(s) {
	case "table":
		return FormatTable
	case "yaml", "yml":
		return FormatYAML
	case "json":
		return FormatJSON
	default:
		return OutputFormat(s)
	}
}

// ValidFormats returns the accepted format names.
func ValidFormats() []string {
	return []string{"table", "yaml", "json"}
}
