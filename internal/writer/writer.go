package writer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"multibundle-mapper/internal/bundle"
	"multibundle-mapper/internal/diagnostic"
)

// Writer persists an accumulator into the file at path.
type Writer interface {
	Write(ctx context.Context, path string, acc *bundle.Accumulator, markers bundle.Markers) (*Report, error)
}

// Report describes the outcome of a single write.
type Report struct {
	// Path is the file that was written.
	Path string
	// Created is true when the file did not exist or was empty and its
	// content was synthesized from scratch.
	Created bool
	// Bytes is the size of the persisted content.
	Bytes int
	// Diagnostics collects non-fatal findings such as missing markers.
	Diagnostics diagnostic.Diagnostics
}

var (
	// ErrMarkerNotFound is returned in strict mode when a marker token is
	// absent from existing file content.
	ErrMarkerNotFound = errors.New("marker not found")
	// ErrInvalidDocument is returned when an existing JSON file cannot hold
	// the accumulated data.
	ErrInvalidDocument = errors.New("invalid document")
)

// File operations reported by FileAccessError.
const (
	OpRead  = "read"
	OpParse = "parse"
	OpWrite = "write"
)

// FileAccessError reports a failure to read, parse or write an output file.
type FileAccessError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}

// encodeJSON serializes v compactly. Markup output escapes <, > and & so the
// data cannot terminate the surrounding script element.
func encodeJSON(v any, escapeHTML bool) (string, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(escapeHTML)

	if err := enc.Encode(v); err != nil {
		return "", err
	}

	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func checkContext(ctx context.Context, op, path string) error {
	if err := ctx.Err(); err != nil {
		return &FileAccessError{Op: op, Path: path, Err: err}
	}

	return nil
}
