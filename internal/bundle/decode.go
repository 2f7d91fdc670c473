package bundle

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Decode reads records from r and passes each one to emit, in input order.
// The input may be a JSON array of records, a stream of JSON objects, or one
// or more YAML documents each holding a record or a list of records.
// Decoding stops at the first error returned by emit.
func Decode(r io.Reader, emit func(Record) error) error {
	br := bufio.NewReader(r)

	first, err := peekNonSpace(br)
	if errors.Is(err, io.EOF) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("failed to read records: %w", err)
	}

	switch first {
	case '[':
		return decodeJSONArray(br, emit)
	case '{':
		return decodeJSONStream(br, emit)
	default:
		return decodeYAML(br, emit)
	}
}

// LoadFiles decodes records from each file in order.
func LoadFiles(paths []string, emit func(Record) error) error {
	for _, path := range paths {
		if err := loadFile(path, emit); err != nil {
			return err
		}
	}

	return nil
}

func loadFile(path string, emit func(Record) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open record file %s: %w", path, err)
	}
	defer f.Close()

	if err := Decode(f, emit); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return nil
}

func peekNonSpace(br *bufio.Reader) (byte, error) {
	for {
		b, err := br.ReadByte()
		if err != nil {
			return 0, err
		}

		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		}

		return b, br.UnreadByte()
	}
}

func decodeJSONArray(r io.Reader, emit func(Record) error) error {
	dec := json.NewDecoder(r)

	// opening bracket
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("failed to parse records JSON: %w", err)
	}

	for i := 0; dec.More(); i++ {
		var rec Record
		if err := dec.Decode(&rec); err != nil {
			return fmt.Errorf("failed to parse record #%d: %w", i, err)
		}

		if err := emit(rec); err != nil {
			return err
		}
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("failed to parse records JSON: %w", err)
	}

	return nil
}

func decodeJSONStream(r io.Reader, emit func(Record) error) error {
	dec := json.NewDecoder(r)

	for i := 0; ; i++ {
		var rec Record

		err := dec.Decode(&rec)
		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return fmt.Errorf("failed to parse record #%d: %w", i, err)
		}

		if err := emit(rec); err != nil {
			return err
		}
	}
}

func decodeYAML(r io.Reader, emit func(Record) error) error {
	dec := yaml.NewDecoder(r)

	for {
		var node yaml.Node

		err := dec.Decode(&node)
		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return fmt.Errorf("failed to parse records YAML: %w", err)
		}

		records, err := yamlRecords(&node)
		if err != nil {
			return err
		}

		for _, rec := range records {
			if err := emit(rec); err != nil {
				return err
			}
		}
	}
}

func yamlRecords(node *yaml.Node) ([]Record, error) {
	content := node
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return nil, nil
		}

		content = node.Content[0]
	}

	switch content.Kind {
	case yaml.SequenceNode:
		var records []Record
		if err := content.Decode(&records); err != nil {
			return nil, fmt.Errorf("failed to parse records YAML: %w", err)
		}

		return records, nil
	case yaml.MappingNode:
		var rec Record
		if err := content.Decode(&rec); err != nil {
			return nil, fmt.Errorf("failed to parse record YAML: %w", err)
		}

		return []Record{rec}, nil
	case yaml.ScalarNode:
		if content.Tag == "!!null" {
			return nil, nil
		}
	}

	return nil, fmt.Errorf("failed to parse records YAML: unexpected %s at line %d", kindName(content.Kind), content.Line)
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "node"
	}
}
