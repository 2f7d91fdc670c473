package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"multibundle-mapper/internal/diagnostic"
)

func codes(ds []diagnostic.Diagnostic) []string {
	out := make([]string, 0, len(ds))
	for _, d := range ds {
		out = append(out, d.Code)
	}

	return out
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		errors   []string
		warnings []string
	}{
		{
			name: "valid",
			yaml: `
targets:
  - {format: json, output: a.json}
  - {format: js, output: a.js}
`,
		},
		{
			name:   "no targets",
			yaml:   `prefix: /js`,
			errors: []string{diagnostic.CodeNoTargets},
		},
		{
			name:   "unknown version",
			yaml:   "version: \"2\"\ntargets: [{format: js, output: a.js}]",
			errors: []string{diagnostic.CodeUnsupportedField},
		},
		{
			name: "missing output and bad format",
			yaml: `
targets:
  - {format: json}
  - {format: xml, output: a.xml}
`,
			errors: []string{diagnostic.CodeMissingOutput, diagnostic.CodeUnknownFormat},
		},
		{
			name: "duplicate output",
			yaml: `
targets:
  - {format: js, output: public/config.js}
  - {format: js, output: ./public/config.js}
`,
			errors: []string{diagnostic.CodeDuplicateOutput},
		},
		{
			name: "bad json marker",
			yaml: `
targets:
  - format: json
    output: a.json
    markers: {mapping: "app..mapping"}
`,
			errors: []string{diagnostic.CodeInvalidMarker},
		},
		{
			name: "identical text markers",
			yaml: `
targets:
  - format: html
    output: a.html
    markers: {mapping: "@@", bundles: "@@"}
`,
			warnings: []string{diagnostic.CodeInvalidMarker},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse([]byte(tt.yaml))
			require.NoError(t, err)

			res := Validate(f)
			assert.ElementsMatch(t, tt.errors, codes(res.Errors))
			assert.ElementsMatch(t, tt.warnings, codes(res.Warnings))
		})
	}
}

func TestValidate_Nil(t *testing.T) {
	res := Validate(nil)
	require.True(t, res.HasErrors())
	assert.Error(t, res.Error())
}

func TestValidate_SuggestsFormat(t *testing.T) {
	f, err := Parse([]byte("targets: [{format: hmtl, output: layout.html}]"))
	require.NoError(t, err)

	res := Validate(f)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, []string{"html"}, res.Errors[0].Suggestions)
	assert.Contains(t, res.Error().Error(), "did you mean html?")
}
