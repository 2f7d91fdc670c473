package bundle

import (
	"errors"
	"fmt"
	"strings"
)

// reservedPathChars have query or modifier meaning in document paths.
const reservedPathChars = `*?#|@!\:`

// DocPath is a parsed dotted document path.
type DocPath struct {
	Segments []string
}

// ParseDocPath parses a dotted document path such as "appData.static.js.mapping".
func ParseDocPath(path string) (DocPath, error) {
	if path == "" {
		return DocPath{}, errors.New("empty path")
	}

	var segments []string

	for part := range strings.SplitSeq(path, ".") {
		if part == "" {
			return DocPath{}, fmt.Errorf("invalid path %q: empty segment", path)
		}

		if i := strings.IndexAny(part, reservedPathChars); i >= 0 {
			return DocPath{}, fmt.Errorf("invalid path %q: reserved character %q in segment %q", path, part[i], part)
		}

		segments = append(segments, part)
	}

	return DocPath{Segments: segments}, nil
}

// String returns the dotted form of the path.
func (p DocPath) String() string {
	return strings.Join(p.Segments, ".")
}

// Parents returns the dotted form of every proper ancestor of the path,
// outermost first.
func (p DocPath) Parents() []string {
	if len(p.Segments) < 2 {
		return nil
	}

	parents := make([]string, 0, len(p.Segments)-1)
	for i := 1; i < len(p.Segments); i++ {
		parents = append(parents, strings.Join(p.Segments[:i], "."))
	}

	return parents
}

// SetterPath returns the path with numeric segments forced to object keys,
// so that setting a value never creates an array.
func (p DocPath) SetterPath() string {
	parts := make([]string, len(p.Segments))
	for i, s := range p.Segments {
		if isNumeric(s) {
			s = ":" + s
		}

		parts[i] = s
	}

	return strings.Join(parts, ".")
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return s != ""
}
