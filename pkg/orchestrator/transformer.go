package orchestrator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-tkgen/pkg/source"
)

// Transformer rewrites a source tree before it is built. Implementations can
// rename components, patch properties or inject handler bodies.
type Transformer interface {
	Transform(ctx context.Context, tree *source.Tree) error
}

// TransformerFunc adapts plain functions to the Transformer interface.
type TransformerFunc func(ctx context.Context, tree *source.Tree) error

// Transform executes the wrapped function when non-nil.
func (fn TransformerFunc) Transform(ctx context.Context, tree *source.Tree) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, tree)
}

// PresetTransformer applies declarative overrides loaded from a JSON or YAML
// document:
//
//	window:
//	  title: Settings
//	components:
//	  save:
//	    properties: {text: Apply, background: "#224466"}
//	    remove: [tooltip]
//	functions:
//	  save:
//	    tcl: puts applied
//
// Components are addressed by id, or by a dotted path of ids when ids repeat
// under different parents.
type PresetTransformer struct {
	document presetDocument
}

type presetDocument struct {
	Window     *source.Window               `yaml:"window"`
	Metadata   map[string]any               `yaml:"metadata"`
	Components map[string]componentPatch    `yaml:"components"`
	Functions  map[string]map[string]string `yaml:"functions"`
}

type componentPatch struct {
	Type       string             `yaml:"type"`
	Properties map[string]any     `yaml:"properties"`
	Remove     []string           `yaml:"remove"`
	Layout     *source.LayoutHint `yaml:"layout"`
	Events     []source.Event     `yaml:"events"`
}

// NewPresetTransformer constructs a transformer from raw JSON or YAML bytes.
func NewPresetTransformer(data []byte) (*PresetTransformer, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("preset transformer: document is empty")
	}
	var document presetDocument
	if err := yaml.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("preset transformer: parse document: %w", err)
	}
	return &PresetTransformer{document: document}, nil
}

// NewPresetTransformerFromFS loads a preset document from the provided
// filesystem path.
func NewPresetTransformerFromFS(fsys fs.FS, path string) (*PresetTransformer, error) {
	if fsys == nil {
		return nil, errors.New("preset transformer: filesystem is nil")
	}
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("preset transformer: path is required")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("preset transformer: read %s: %w", path, err)
	}
	return NewPresetTransformer(data)
}

// Transform applies the patches onto tree. A patch naming a component that
// does not exist is an error.
func (t *PresetTransformer) Transform(ctx context.Context, tree *source.Tree) error {
	if tree == nil {
		return errors.New("preset transformer: tree is nil")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if w := t.document.Window; w != nil {
		if tree.Window == nil {
			tree.Window = &source.Window{}
		}
		mergeWindow(tree.Window, *w)
	}
	if len(t.document.Metadata) > 0 {
		if tree.Metadata == nil {
			tree.Metadata = make(map[string]any, len(t.document.Metadata))
		}
		for key, value := range t.document.Metadata {
			tree.Metadata[key] = value
		}
	}
	if len(t.document.Functions) > 0 {
		if tree.Logic == nil {
			tree.Logic = &source.Logic{}
		}
		if tree.Logic.Functions == nil {
			tree.Logic.Functions = make(map[string]map[string]string, len(t.document.Functions))
		}
		for name, impls := range t.document.Functions {
			tree.Logic.Functions[name] = mergeStringMap(tree.Logic.Functions[name], impls)
		}
	}

	for path, patch := range t.document.Components {
		if err := ctx.Err(); err != nil {
			return err
		}
		comp := findComponent(tree, path)
		if comp == nil {
			return fmt.Errorf("preset transformer: component %q not found", path)
		}
		applyComponentPatch(comp, patch)
	}
	return nil
}

func mergeWindow(dst *source.Window, src source.Window) {
	if src.Title != nil {
		dst.Title = src.Title
	}
	if src.Width != nil {
		dst.Width = src.Width
	}
	if src.Height != nil {
		dst.Height = src.Height
	}
	if src.Resizable != nil {
		dst.Resizable = src.Resizable
	}
	if src.Background != nil {
		dst.Background = src.Background
	}
}

func applyComponentPatch(comp *source.Component, patch componentPatch) {
	if strings.TrimSpace(patch.Type) != "" {
		comp.Type = strings.TrimSpace(patch.Type)
	}
	for _, key := range patch.Remove {
		delete(comp.Properties, key)
	}
	if len(patch.Properties) > 0 {
		if comp.Properties == nil {
			comp.Properties = make(map[string]any, len(patch.Properties))
		}
		for key, value := range patch.Properties {
			comp.Properties[key] = source.CloneValue(value)
		}
	}
	if patch.Layout != nil {
		layout := *patch.Layout
		comp.Layout = &layout
	}
	comp.Events = append(comp.Events, patch.Events...)
}

// findComponent resolves an id or a dotted id path against the nested root
// and the flat component list.
func findComponent(tree *source.Tree, path string) *source.Component {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	segments := strings.Split(path, ".")

	var candidates []*source.Component
	if root := tree.RootComponent(); root != nil {
		candidates = append(candidates, root)
	}
	for i := range tree.Components {
		candidates = append(candidates, &tree.Components[i])
	}

	if len(segments) == 1 {
		for _, comp := range candidates {
			if found := findByID(comp, segments[0]); found != nil {
				return found
			}
		}
		return nil
	}
	for _, comp := range candidates {
		if found := walkPath(comp, segments); found != nil {
			return found
		}
	}
	return nil
}

func findByID(comp *source.Component, id string) *source.Component {
	if comp.ID == id {
		return comp
	}
	for i := range comp.Children {
		if found := findByID(&comp.Children[i], id); found != nil {
			return found
		}
	}
	return nil
}

func walkPath(comp *source.Component, segments []string) *source.Component {
	if comp.ID != segments[0] {
		return nil
	}
	if len(segments) == 1 {
		return comp
	}
	for i := range comp.Children {
		if found := walkPath(&comp.Children[i], segments[1:]); found != nil {
			return found
		}
	}
	return nil
}

func mergeStringMap(dst, src map[string]string) map[string]string {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = make(map[string]string, len(src))
	}
	for key, value := range src {
		dst[key] = value
	}
	return dst
}
