package writer

import (
	"context"
	"fmt"
	"strings"

	"multibundle-mapper/internal/bundle"
	"multibundle-mapper/internal/diagnostic"
)

// DefaultConfigFunc is the module loader function invoked by synthesized content.
const DefaultConfigFunc = "requirejs.config"

// Layout selects how a TextWriter synthesizes content for an empty file.
type Layout int

const (
	// LayoutScript emits a bare statement for a JS file.
	LayoutScript Layout = iota
	// LayoutMarkup wraps the statement in a script element preceded by an
	// empty comment line, for an HTML file.
	LayoutMarkup
)

// TextWriter merges accumulated data into a text file by replacing marker
// tokens, or synthesizes a loader config call when the file is empty.
type TextWriter struct {
	// Layout chooses the synthesized form.
	Layout Layout
	// ConfigFunc is the function called by synthesized content.
	// Defaults to DefaultConfigFunc.
	ConfigFunc string
	// Strict turns a missing marker into ErrMarkerNotFound instead of a
	// warning. The file is left untouched in that case.
	Strict bool
}

var _ Writer = (*TextWriter)(nil)

// NewScript returns a TextWriter for JS files.
func NewScript() *TextWriter {
	return &TextWriter{Layout: LayoutScript, ConfigFunc: DefaultConfigFunc}
}

// NewMarkup returns a TextWriter for HTML files.
func NewMarkup() *TextWriter {
	return &TextWriter{Layout: LayoutMarkup, ConfigFunc: DefaultConfigFunc}
}

// Write implements Writer.
func (w *TextWriter) Write(
	ctx context.Context, path string, acc *bundle.Accumulator, markers bundle.Markers,
) (*Report, error) {
	escapeHTML := w.Layout == LayoutMarkup

	mapping, err := encodeJSON(acc.Mapping, escapeHTML)
	if err != nil {
		return nil, fmt.Errorf("encoding mapping: %w", err)
	}

	bundles, err := encodeJSON(acc.Bundles, escapeHTML)
	if err != nil {
		return nil, fmt.Errorf("encoding bundles: %w", err)
	}

	if err := checkContext(ctx, OpRead, path); err != nil {
		return nil, err
	}

	data, save, err := readForUpdate(path)
	if err != nil {
		return nil, err
	}

	report := &Report{Path: path}
	content := string(data)

	if content != "" {
		content = w.replaceMarker(report, content, "mapping", markers.Mapping, mapping)
		content = w.replaceMarker(report, content, "bundles", markers.Bundles, bundles)

		if w.Strict && report.Diagnostics.HasWarnings() {
			return report, fmt.Errorf("%w: %s", ErrMarkerNotFound, report.Diagnostics.Warnings[0].String())
		}
	} else {
		content = w.synthesize(mapping, bundles)
		report.Created = true
	}

	if err := checkContext(ctx, OpWrite, path); err != nil {
		return nil, err
	}

	if err := save([]byte(content)); err != nil {
		return nil, err
	}

	report.Bytes = len(content)

	return report, nil
}

// replaceMarker replaces the first occurrence of token with value. A missing
// token leaves content unchanged and records a warning.
func (w *TextWriter) replaceMarker(report *Report, content, field, token, value string) string {
	if token == "" || !strings.Contains(content, token) {
		report.Diagnostics.AddWarning(
			diagnostic.CodeMarkerNotFound,
			fmt.Sprintf("marker %q not found, %s left unchanged", token, field),
			report.Path, field,
		)

		return content
	}

	return strings.Replace(content, token, value, 1)
}

func (w *TextWriter) synthesize(mapping, bundles string) string {
	fn := w.ConfigFunc
	if fn == "" {
		fn = DefaultConfigFunc
	}

	call := fn + "({paths:" + mapping + ",bundles:" + bundles + "});"

	switch w.Layout {
	case LayoutMarkup:
		return "\n<!-- -->\n<script>" + call + "</script>"
	default:
		return "\n;" + call
	}
}
