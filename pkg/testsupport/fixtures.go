package testsupport

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-tkgen/pkg/ir"
	"github.com/goliatone/go-tkgen/pkg/source"
)

// UpdateEnv names the environment variable that rewrites goldens in place.
const UpdateEnv = "UPDATE_GOLDENS"

// LoadTree reads a JSON or YAML source tree fixture.
func LoadTree(t *testing.T, path string) source.Tree {
	t.Helper()

	tree, err := LoadTreeFromPath(path)
	if err != nil {
		t.Fatalf("load tree: %v", err)
	}
	return tree
}

// LoadTreeFromPath returns a source tree without requiring testing.T so
// fixtures can be loaded from setup helpers.
func LoadTreeFromPath(path string) (source.Tree, error) {
	if path == "" {
		return source.Tree{}, errors.New("testsupport: tree path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return source.Tree{}, fmt.Errorf("testsupport: read tree: %w", err)
	}
	tree, _, err := source.Parse(data, filepath.Base(path))
	if err != nil {
		return source.Tree{}, fmt.Errorf("testsupport: parse tree: %w", err)
	}
	return tree, nil
}

// MustLoadDocument reads a serialized tkir document fixture.
func MustLoadDocument(t *testing.T, path string) ir.Document {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read document: %v", err)
	}
	doc, err := ir.Decode(data)
	if err != nil {
		t.Fatalf("decode document: %v", err)
	}
	return doc
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written.
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv(UpdateEnv) == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// MustReadGoldenString reads a golden file and returns its content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return string(data)
}

// AssertGolden compares got against the golden at path, rewriting it first
// when UPDATE_GOLDENS is set.
func AssertGolden(t *testing.T, path, got string) {
	t.Helper()
	if WriteMaybeGolden(t, path, []byte(got)) {
		return
	}
	if diff := cmp.Diff(MustReadGoldenString(t, path), got); diff != "" {
		t.Fatalf("%s mismatch (-want +got):\n%s", filepath.Base(path), diff)
	}
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}
