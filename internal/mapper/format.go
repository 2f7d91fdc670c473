package mapper

import (
	"fmt"
	"strings"

	"multibundle-mapper/internal/bundle"
)

//go:generate go tool stringer -type=Format -linecomment -output=format_string.go

// Format selects the output file format and its writer.
type Format int

const (
	_ Format = iota // zero value is not a valid format

	FormatJSON // json
	FormatJS   // js
	FormatHTML // html
)

// Default marker tokens for script and markup outputs.
const (
	TextMappingMarker = "{/* requirejs multibundle mapping */}"
	TextBundlesMarker = "{/* requirejs multibundle bundles */}"
)

// IsValid reports whether f is one of the supported formats.
func (f Format) IsValid() bool {
	switch f {
	case FormatJSON, FormatJS, FormatHTML:
		return true
	default:
		return false
	}
}

// DefaultMarkers returns the markers used by f when none are configured.
func (f Format) DefaultMarkers() bundle.Markers {
	switch f {
	case FormatJSON:
		return bundle.Markers{
			Mapping: "appData.static.js.mapping",
			Bundles: "appData.static.js.bundles",
		}
	case FormatJS, FormatHTML:
		return bundle.Markers{
			Mapping: TextMappingMarker,
			Bundles: TextBundlesMarker,
		}
	default:
		return bundle.Markers{}
	}
}

// FormatNames lists the canonical names of the supported formats.
func FormatNames() []string {
	return []string{FormatJSON.String(), FormatJS.String(), FormatHTML.String()}
}

// ParseFormat parses a format name. Besides "json", "js" and "html" it
// accepts the aliases "structured", "script" and "markup".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json", "structured":
		return FormatJSON, nil
	case "js", "javascript", "script":
		return FormatJS, nil
	case "html", "htm", "markup":
		return FormatHTML, nil
	default:
		return 0, fmt.Errorf("unknown format %q (expected json, js or html)", s)
	}
}
