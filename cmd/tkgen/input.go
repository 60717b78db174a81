package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/goliatone/go-tkgen/pkg/ir"
	"github.com/goliatone/go-tkgen/pkg/orchestrator"
	"github.com/goliatone/go-tkgen/pkg/source"
)

const (
	stdinArg    = "-"
	httpTimeout = 30 * time.Second
)

// readRequest turns a command argument into a pipeline request. Files holding
// a tkir document skip building when acceptIR is set.
func (a *app) readRequest(arg string, acceptIR bool) (orchestrator.Request, error) {
	arg = strings.TrimSpace(arg)
	switch {
	case arg == "":
		return orchestrator.Request{}, fmt.Errorf("tkgen: missing input")
	case isURL(arg):
		return orchestrator.Request{Source: source.SourceFromURL(arg)}, nil
	}

	data, name, err := a.readInput(arg)
	if err != nil {
		return orchestrator.Request{}, err
	}
	if acceptIR {
		if doc, ok := decodeIR(data); ok {
			return orchestrator.Request{Document: &doc}, nil
		}
	}
	return orchestrator.Request{Source: source.SourceInline(name), Payload: data}, nil
}

func (a *app) readInput(arg string) ([]byte, string, error) {
	if arg == stdinArg {
		data, err := io.ReadAll(a.stdin)
		if err != nil {
			return nil, "", fmt.Errorf("tkgen: read stdin: %w", err)
		}
		return data, "stdin", nil
	}
	data, err := os.ReadFile(arg)
	if err != nil {
		return nil, "", fmt.Errorf("tkgen: read %s: %w", arg, err)
	}
	return data, arg, nil
}

// decodeIR reports whether data is a serialized tkir document. Source trees
// decode into an empty document without the format marker.
func decodeIR(data []byte) (ir.Document, bool) {
	if len(bytes.TrimSpace(data)) == 0 {
		return ir.Document{}, false
	}
	doc, err := ir.Decode(data)
	if err != nil || doc.Format != ir.Format {
		return ir.Document{}, false
	}
	return doc, true
}

func isURL(raw string) bool {
	return strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://")
}

// writeOutput writes data to path, or to fallback when path is empty.
func writeOutput(path string, fallback io.Writer, data []byte) error {
	if path == "" {
		_, err := fallback.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("tkgen: write %s: %w", path, err)
	}
	return nil
}
