package mapper

import (
	"errors"
	"fmt"

	"multibundle-mapper/internal/writer"
)

var (
	// ErrClosed is returned by Accept once finalization has begun.
	ErrClosed = errors.New("mapper is closed")
	// ErrAlreadyFinalized is returned by a second call to Finalize.
	ErrAlreadyFinalized = errors.New("mapper already finalized")
	// ErrInvalidRecord is returned by Accept for a record without a name or
	// output file.
	ErrInvalidRecord = errors.New("invalid bundle record")
	// ErrMarkerNotFound is returned in strict mode when a marker token is
	// absent from an existing script or markup file.
	ErrMarkerNotFound = writer.ErrMarkerNotFound
)

// FileAccessError reports a read, parse or write failure during Finalize.
type FileAccessError = writer.FileAccessError

// ConfigurationError reports an invalid constructor argument.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
