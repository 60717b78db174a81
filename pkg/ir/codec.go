package ir

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Encoding names a serialized document form.
type Encoding string

const (
	EncodingJSON Encoding = "json"
	EncodingYAML Encoding = "yaml"
)

// ParseEncoding maps user input ("json", "yaml", "yml") to an Encoding.
func ParseEncoding(raw string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "json":
		return EncodingJSON, nil
	case "yaml", "yml":
		return EncodingYAML, nil
	default:
		return "", fmt.Errorf("ir: unknown encoding %q", raw)
	}
}

// Encode serializes doc in the requested encoding.
func Encode(doc Document, enc Encoding) ([]byte, error) {
	switch enc {
	case EncodingYAML:
		return EncodeYAML(doc)
	case EncodingJSON, "":
		return EncodeJSON(doc)
	default:
		return nil, fmt.Errorf("ir: unknown encoding %q", enc)
	}
}

// EncodeJSON serializes doc as indented JSON.
func EncodeJSON(doc Document) ([]byte, error) {
	fillLists(&doc)
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("ir: encode json: %w", err)
	}
	return append(data, '\n'), nil
}

// DecodeJSON parses a JSON document.
func DecodeJSON(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("ir: decode json: %w", err)
	}
	fillLists(&doc)
	return doc, nil
}

// EncodeYAML serializes doc as YAML.
func EncodeYAML(doc Document) ([]byte, error) {
	fillLists(&doc)
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("ir: encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("ir: encode yaml: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodeYAML parses a YAML document.
func DecodeYAML(data []byte) (Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("ir: decode yaml: %w", err)
	}
	fillLists(&doc)
	return doc, nil
}

// fillLists replaces nil top-level lists with empty ones, so both encodings
// write [] and every decoded document carries non-nil lists.
func fillLists(doc *Document) {
	if doc.Widgets == nil {
		doc.Widgets = []Widget{}
	}
	if doc.Handlers == nil {
		doc.Handlers = []Handler{}
	}
	if doc.DataBindings == nil {
		doc.DataBindings = []Binding{}
	}
}

// Decode sniffs the encoding: payloads starting with '{' are JSON, anything
// else is YAML.
func Decode(data []byte) (Document, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return Document{}, fmt.Errorf("ir: document is empty")
	}
	if trimmed[0] == '{' {
		return DecodeJSON(trimmed)
	}
	return DecodeYAML(trimmed)
}

// Write encodes doc to w.
func Write(w io.Writer, doc Document, enc Encoding) error {
	data, err := Encode(doc, enc)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
