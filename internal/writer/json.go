package writer

import (
	"bytes"
	"context"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"multibundle-mapper/internal/bundle"
)

// JSONWriter stores the mapping and bundles objects at the document paths
// named by the markers.
type JSONWriter struct{}

var _ Writer = (*JSONWriter)(nil)

// Write implements Writer.
func (w *JSONWriter) Write(
	ctx context.Context, path string, acc *bundle.Accumulator, markers bundle.Markers,
) (*Report, error) {
	mappingPath, err := bundle.ParseDocPath(markers.Mapping)
	if err != nil {
		return nil, fmt.Errorf("mapping marker: %w", err)
	}

	bundlesPath, err := bundle.ParseDocPath(markers.Bundles)
	if err != nil {
		return nil, fmt.Errorf("bundles marker: %w", err)
	}

	if err := checkContext(ctx, OpRead, path); err != nil {
		return nil, err
	}

	data, save, err := readForUpdate(path)
	if err != nil {
		return nil, err
	}

	report := &Report{Path: path}

	doc := data
	if len(bytes.TrimSpace(doc)) == 0 {
		doc = []byte("{}")
		report.Created = true
	}

	if !gjson.ValidBytes(doc) || !gjson.ParseBytes(doc).IsObject() {
		return nil, &FileAccessError{Op: OpParse, Path: path, Err: fmt.Errorf("%w: top level must be a JSON object", ErrInvalidDocument)}
	}

	doc, err = setObject(doc, mappingPath, acc.Mapping)
	if err != nil {
		return nil, &FileAccessError{Op: OpParse, Path: path, Err: err}
	}

	doc, err = setObject(doc, bundlesPath, acc.Bundles)
	if err != nil {
		return nil, &FileAccessError{Op: OpParse, Path: path, Err: err}
	}

	out := pretty.Pretty(doc)

	if err := checkContext(ctx, OpWrite, path); err != nil {
		return nil, err
	}

	if err := save(out); err != nil {
		return nil, err
	}

	report.Bytes = len(out)

	return report, nil
}

// setObject stores v at p, creating missing parent objects. It refuses to
// descend through an existing value that is not an object.
func setObject(doc []byte, p bundle.DocPath, v any) ([]byte, error) {
	for _, parent := range p.Parents() {
		res := gjson.GetBytes(doc, parent)
		if res.Exists() && !res.IsObject() {
			return nil, fmt.Errorf("%w: %q is a %s, not an object", ErrInvalidDocument, parent, res.Type)
		}
	}

	raw, err := encodeJSON(v, false)
	if err != nil {
		return nil, err
	}

	doc, err = sjson.SetRawBytes(doc, p.SetterPath(), []byte(raw))
	if err != nil {
		return nil, fmt.Errorf("setting %q: %w", p.String(), err)
	}

	return doc, nil
}
