package source

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Format names the encoding a payload was decoded from.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Document pairs a raw source tree payload with its origin. The payload is
// copied on the way in and out so callers cannot mutate it behind the parser.
type Document struct {
	origin Source
	raw    []byte
}

// NewDocument wraps raw bytes loaded from src.
func NewDocument(src Source, raw []byte) (Document, error) {
	if src == nil {
		return Document{}, errors.New("source: origin is required")
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return Document{}, fmt.Errorf("source: %s is empty", src.Location())
	}
	return Document{origin: src, raw: append([]byte(nil), raw...)}, nil
}

// MustNewDocument panics if the document cannot be created. Useful for tests.
func MustNewDocument(src Source, raw []byte) Document {
	doc, err := NewDocument(src, raw)
	if err != nil {
		panic(err)
	}
	return doc
}

// Origin returns where the payload came from.
func (d Document) Origin() Source {
	return d.origin
}

// Raw returns a copy of the payload.
func (d Document) Raw() []byte {
	return append([]byte(nil), d.raw...)
}

// Location returns the origin identifier, or "" for a zero Document.
func (d Document) Location() string {
	if d.origin == nil {
		return ""
	}
	return d.origin.Location()
}

// Parse decodes the payload into a Tree, trying JSON first and YAML second.
func (d Document) Parse() (Tree, Format, error) {
	return Parse(d.raw, d.Location())
}

// Parse decodes data into a Tree. Unknown fields are ignored; name only
// decorates error messages.
func Parse(data []byte, name string) (Tree, Format, error) {
	if name == "" {
		name = "source tree"
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return Tree{}, "", fmt.Errorf("source: %s is empty", name)
	}

	var tree Tree
	if err := json.Unmarshal(data, &tree); err == nil {
		return tree, FormatJSON, nil
	}

	tree = Tree{}
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return Tree{}, "", fmt.Errorf("source: parse %s: invalid JSON or YAML: %w", name, err)
	}
	return tree, FormatYAML, nil
}
