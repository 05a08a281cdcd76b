package refract

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
)

// SourceFormat represents the format of the input document
type SourceFormat string

const (
	// SourceFormatJSON indicates refract serialized as JSON
	SourceFormatJSON SourceFormat = "json"
	// SourceFormatYAML indicates refract serialized as YAML
	SourceFormatYAML SourceFormat = "yaml"
	// SourceFormatBlueprint indicates API Blueprint source that drafter must parse first
	SourceFormatBlueprint SourceFormat = "apib"
	// SourceFormatUnknown indicates the source format could not be determined
	SourceFormatUnknown SourceFormat = "unknown"
)

// Extension returns the conventional file extension for the format.
func (f SourceFormat) Extension() string {
	switch f {
	case SourceFormatJSON:
		return "json"
	case SourceFormatBlueprint:
		return "apib"
	default:
		return "yaml"
	}
}

// ParseSourceFormat maps a user-supplied format name to a SourceFormat.
func ParseSourceFormat(name string) (SourceFormat, error) {
	switch strings.ToLower(name) {
	case "json":
		return SourceFormatJSON, nil
	case "yaml", "yml":
		return SourceFormatYAML, nil
	case "apib", "blueprint", "md":
		return SourceFormatBlueprint, nil
	default:
		return SourceFormatUnknown, fmt.Errorf("refract: unknown input format %q", name)
	}
}

// FormatBytes formats a byte size as a human-readable string.
func FormatBytes(size int64) string {
	// Handle negative values
	if size < 0 {
		return fmt.Sprintf("%d B", size)
	}

	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}

	div, exp := int64(unit), 0
	for n := size / unit; n >= unit && exp < 5; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %ciB", float64(size)/float64(div), "KMGTPE"[exp])
}

// detectFormatFromPath detects the source format from a file path
func detectFormatFromPath(path string) SourceFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return SourceFormatJSON
	case ".yaml", ".yml":
		return SourceFormatYAML
	case ".apib", ".md":
		return SourceFormatBlueprint
	default:
		return SourceFormatUnknown
	}
}

// detectFormatFromContent attempts to detect the format from the content bytes.
// JSON starts with '{' or '[', API Blueprint with a FORMAT metadata line or a
// markdown heading, and anything else is treated as YAML.
func detectFormatFromContent(data []byte) SourceFormat {
	trimmed := bytes.TrimLeft(data, " \t\n\r")

	if len(trimmed) == 0 {
		return SourceFormatUnknown
	}

	if trimmed[0] == '{' || trimmed[0] == '[' {
		return SourceFormatJSON
	}

	if bytes.HasPrefix(trimmed, []byte("FORMAT:")) || trimmed[0] == '#' {
		return SourceFormatBlueprint
	}

	return SourceFormatYAML
}
