package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		wantErr  bool
	}{
		{input: "json", expected: FormatJSON},
		{input: "JSON", expected: FormatJSON},
		{input: "structured", expected: FormatJSON},
		{input: "js", expected: FormatJS},
		{input: "script", expected: FormatJS},
		{input: " html ", expected: FormatHTML},
		{input: "markup", expected: FormatHTML},
		{input: "xml", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			f, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, f)
		})
	}
}

func TestFormat_String(t *testing.T) {
	assert.Equal(t, "json", FormatJSON.String())
	assert.Equal(t, "js", FormatJS.String())
	assert.Equal(t, "html", FormatHTML.String())
	assert.Equal(t, "Format(0)", Format(0).String())
	assert.Equal(t, "Format(7)", Format(7).String())
}

func TestFormat_DefaultMarkers(t *testing.T) {
	assert.Equal(t, "appData.static.js.mapping", FormatJSON.DefaultMarkers().Mapping)
	assert.Equal(t, "appData.static.js.bundles", FormatJSON.DefaultMarkers().Bundles)
	assert.Equal(t, TextMappingMarker, FormatJS.DefaultMarkers().Mapping)
	assert.Equal(t, TextBundlesMarker, FormatHTML.DefaultMarkers().Bundles)
	assert.False(t, Format(0).IsValid())
}
