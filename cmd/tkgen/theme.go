package main

import (
	"fmt"
	"os"

	theme "github.com/goliatone/go-theme"
	"gopkg.in/yaml.v3"
)

type manifestFile struct {
	Name     string                       `yaml:"name"`
	Version  string                       `yaml:"version"`
	Tokens   map[string]string            `yaml:"tokens"`
	Variants map[string]map[string]string `yaml:"variants"`
}

// manifestSelector serves a single manifest read from disk. The requested
// theme name is ignored.
type manifestSelector struct {
	manifest *theme.Manifest
}

var _ theme.ThemeSelector = manifestSelector{}

func loadManifestSelector(path string) (manifestSelector, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return manifestSelector{}, fmt.Errorf("tkgen: read theme %s: %w", path, err)
	}
	var file manifestFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return manifestSelector{}, fmt.Errorf("tkgen: parse theme %s: %w", path, err)
	}

	manifest := &theme.Manifest{
		Name:     file.Name,
		Version:  file.Version,
		Tokens:   file.Tokens,
		Variants: make(map[string]theme.Variant, len(file.Variants)),
	}
	for name, tokens := range file.Variants {
		manifest.Variants[name] = theme.Variant{Tokens: tokens}
	}
	return manifestSelector{manifest: manifest}, nil
}

func (s manifestSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	if variant != "" {
		if _, ok := s.manifest.Variants[variant]; !ok {
			return nil, fmt.Errorf("tkgen: theme %q has no variant %q", s.manifest.Name, variant)
		}
	}
	return &theme.Selection{
		Theme:    s.manifest.Name,
		Variant:  variant,
		Manifest: s.manifest,
	}, nil
}
