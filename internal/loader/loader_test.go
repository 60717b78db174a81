package loader

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-tkgen/pkg/source"
)

const payload = `{"root": {"type": "Column", "children": [{"type": "Text"}]}}`

func TestLoader_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.json")
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	doc, err := New(source.LoaderOptions{}).Load(context.Background(), source.SourceFromFile(path))
	if err != nil {
		t.Fatalf("load file: %v", err)
	}
	tree, format, err := doc.Parse()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if format != source.FormatJSON {
		t.Fatalf("expected json format, got %q", format)
	}
	if root := tree.RootComponent(); root == nil || root.Type != "Column" {
		t.Fatalf("unexpected root: %+v", root)
	}
}

func TestLoader_FS(t *testing.T) {
	files := fstest.MapFS{
		"ui/app.yaml": {Data: []byte("root:\n  type: Row\n")},
	}
	l := New(source.NewLoaderOptions(source.WithFileSystem(files)))

	doc, err := l.Load(context.Background(), source.SourceFromFS("ui/app.yaml"))
	if err != nil {
		t.Fatalf("load fs: %v", err)
	}
	tree, format, err := doc.Parse()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if format != source.FormatYAML || tree.RootComponent().Type != "Row" {
		t.Fatalf("unexpected result: format=%q tree=%+v", format, tree)
	}
}

func TestLoader_HTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(payload))
	}))
	defer server.Close()

	disabled := New(source.LoaderOptions{})
	if _, err := disabled.Load(context.Background(), source.SourceFromURL(server.URL)); err == nil {
		t.Fatalf("expected http to be disabled by default")
	}

	l := New(source.NewLoaderOptions(source.WithHTTPClient(server.Client())))
	doc, err := l.Load(context.Background(), source.SourceFromURL(server.URL+"/app.json"))
	if err != nil {
		t.Fatalf("load http: %v", err)
	}
	if doc.Location() != server.URL+"/app.json" {
		t.Fatalf("unexpected location %q", doc.Location())
	}

	_, err = l.Load(context.Background(), source.SourceFromURL(server.URL+"/missing"))
	if err == nil || !strings.Contains(err.Error(), "unexpected status") {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestLoader_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	files := fstest.MapFS{"app.json": {Data: []byte(payload)}}
	l := New(source.NewLoaderOptions(source.WithFileSystem(files)))
	if _, err := l.Load(ctx, source.SourceFromFS("app.json")); err == nil {
		t.Fatalf("expected cancellation error")
	}
}

func TestLoader_Inline(t *testing.T) {
	if _, err := New(source.LoaderOptions{}).Load(context.Background(), source.SourceInline("x")); err == nil {
		t.Fatalf("expected inline sources to be rejected")
	}
}
