package writer

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"multibundle-mapper/internal/bundle"
	"multibundle-mapper/internal/diagnostic"
)

var textMarkers = bundle.Markers{
	Mapping: "{/* requirejs multibundle mapping */}",
	Bundles: "{/* requirejs multibundle bundles */}",
}

func singleAccumulator() *bundle.Accumulator {
	acc := bundle.NewAccumulator()
	acc.Add("common", "http://cdn/js/common", []string{"jquery"})

	return acc
}

func readText(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	return string(data)
}

func TestTextWriter_Synthesize(t *testing.T) {
	tests := []struct {
		name     string
		writer   *TextWriter
		expected string
	}{
		{
			name:     "script",
			writer:   NewScript(),
			expected: "\n;requirejs.config({paths:{\"common\":\"http://cdn/js/common\"},bundles:{\"common\":[\"jquery\"]}});",
		},
		{
			name:   "markup",
			writer: NewMarkup(),
			expected: "\n<!-- -->\n<script>requirejs.config({paths:{\"common\":\"http://cdn/js/common\"}," +
				"bundles:{\"common\":[\"jquery\"]}});</script>",
		},
		{
			name:     "custom config func",
			writer:   &TextWriter{Layout: LayoutScript, ConfigFunc: "require.config"},
			expected: "\n;require.config({paths:{\"common\":\"http://cdn/js/common\"},bundles:{\"common\":[\"jquery\"]}});",
		},
		{
			name:     "zero value writer",
			writer:   &TextWriter{},
			expected: "\n;requirejs.config({paths:{\"common\":\"http://cdn/js/common\"},bundles:{\"common\":[\"jquery\"]}});",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "out", "config")

			report, err := tt.writer.Write(context.Background(), path, singleAccumulator(), textMarkers)
			require.NoError(t, err)
			assert.True(t, report.Created)
			assert.Equal(t, len(tt.expected), report.Bytes)
			assert.Equal(t, tt.expected, readText(t, path))
		})
	}
}

func TestTextWriter_SynthesizeEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.js")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	report, err := NewScript().Write(context.Background(), path, singleAccumulator(), textMarkers)
	require.NoError(t, err)
	assert.True(t, report.Created)
	assert.Contains(t, readText(t, path), "requirejs.config({paths:")
}

func TestTextWriter_ReplacesMarkers(t *testing.T) {
	for _, w := range []*TextWriter{NewScript(), NewMarkup()} {
		path := filepath.Join(t.TempDir(), "config")
		existing := "// header\nvar paths = {/* requirejs multibundle mapping */};\n" +
			"var bundles = {/* requirejs multibundle bundles */};\n// footer\n"
		require.NoError(t, os.WriteFile(path, []byte(existing), 0o644))

		report, err := w.Write(context.Background(), path, singleAccumulator(), textMarkers)
		require.NoError(t, err)
		assert.False(t, report.Created)
		assert.False(t, report.Diagnostics.HasWarnings())

		assert.Equal(t,
			"// header\nvar paths = {\"common\":\"http://cdn/js/common\"};\n"+
				"var bundles = {\"common\":[\"jquery\"]};\n// footer\n",
			readText(t, path))
	}
}

func TestTextWriter_ReplacesFirstOccurrenceOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.js")
	existing := "a=MAP;b=MAP;c=BUN;d=BUN;"
	require.NoError(t, os.WriteFile(path, []byte(existing), 0o644))

	markers := bundle.Markers{Mapping: "MAP", Bundles: "BUN"}

	_, err := NewScript().Write(context.Background(), path, singleAccumulator(), markers)
	require.NoError(t, err)

	assert.Equal(t,
		`a={"common":"http://cdn/js/common"};b=MAP;c={"common":["jquery"]};d=BUN;`,
		readText(t, path))
}

func TestTextWriter_MissingMarker(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.js")
	existing := "var paths = {/* requirejs multibundle mapping */};\n"
	require.NoError(t, os.WriteFile(path, []byte(existing), 0o644))

	report, err := NewScript().Write(context.Background(), path, singleAccumulator(), textMarkers)
	require.NoError(t, err)

	require.Len(t, report.Diagnostics.Warnings, 1)
	warning := report.Diagnostics.Warnings[0]
	assert.Equal(t, diagnostic.CodeMarkerNotFound, warning.Code)
	assert.Equal(t, "bundles", warning.Field)
	assert.Equal(t, path, warning.Target)

	assert.Equal(t, "var paths = {\"common\":\"http://cdn/js/common\"};\n", readText(t, path))
}

func TestTextWriter_StrictMissingMarker(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.js")
	existing := "nothing to see here\n"
	require.NoError(t, os.WriteFile(path, []byte(existing), 0o644))

	w := NewScript()
	w.Strict = true

	report, err := w.Write(context.Background(), path, singleAccumulator(), textMarkers)
	require.ErrorIs(t, err, ErrMarkerNotFound)
	require.NotNil(t, report)
	assert.Len(t, report.Diagnostics.Warnings, 2)

	assert.Equal(t, existing, readText(t, path))
}

func TestTextWriter_MarkupEscapesHTML(t *testing.T) {
	acc := bundle.NewAccumulator()
	acc.Add("evil</script>", "js/evil", []string{"a&b"})

	markupPath := filepath.Join(t.TempDir(), "layout.html")
	_, err := NewMarkup().Write(context.Background(), markupPath, acc, textMarkers)
	require.NoError(t, err)

	markup := readText(t, markupPath)
	assert.NotContains(t, markup, "evil</script>")
	assert.Contains(t, markup, `evil\u003c/script\u003e`)
	assert.Contains(t, markup, `a\u0026b`)

	scriptPath := filepath.Join(t.TempDir(), "config.js")
	_, err = NewScript().Write(context.Background(), scriptPath, acc, textMarkers)
	require.NoError(t, err)
	assert.Contains(t, readText(t, scriptPath), `"a&b"`)
}

func TestTextWriter_KeepsFileMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.js")
	require.NoError(t, os.WriteFile(path, []byte(textMarkers.Mapping+textMarkers.Bundles), 0o600))
	// umask may have narrowed the mode at creation
	require.NoError(t, os.Chmod(path, 0o600))

	_, err := NewScript().Write(context.Background(), path, singleAccumulator(), textMarkers)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	// no temporary files are left behind
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestTextWriter_CanceledContext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.js")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewMarkup().Write(ctx, path, singleAccumulator(), textMarkers)

	var fae *FileAccessError
	require.ErrorAs(t, err, &fae)
	require.ErrorIs(t, err, context.Canceled)
	assert.NoFileExists(t, path)
}
