package main

import (
	"os"
	"path/filepath"
	"strings"

	tkgen "github.com/goliatone/go-tkgen"
	"github.com/goliatone/go-tkgen/pkg/compose"
	"github.com/goliatone/go-tkgen/pkg/orchestrator"
	"github.com/goliatone/go-tkgen/pkg/source"
)

const generatorName = "tkgen"

type pipelineConfig struct {
	compose compose.Options
	preset  string
}

// newOrchestrator assembles the pipeline from configuration shared by every
// command.
func (a *app) newOrchestrator(cfg pipelineConfig) (*orchestrator.Orchestrator, error) {
	cfg.compose.Logger = a.logger
	cfg.compose.Verbose = a.v.GetBool(keyVerbose)
	cfg.compose.Generator = generatorName
	if depth := a.v.GetInt(keyMaxDepth); depth > 0 {
		cfg.compose.MaxDepth = depth
	}

	options := []orchestrator.Option{
		orchestrator.WithLogger(a.logger),
		orchestrator.WithLoader(tkgen.NewLoader(source.WithHTTPFallback(httpTimeout))),
		orchestrator.WithComposeOptions(cfg.compose),
	}

	if path := strings.TrimSpace(a.v.GetString(keyTheme)); path != "" {
		selector, err := loadManifestSelector(path)
		if err != nil {
			return nil, err
		}
		options = append(options,
			orchestrator.WithThemeSelector(selector),
			orchestrator.WithThemeName(selector.manifest.Name, a.v.GetString(keyThemeVariant)),
		)
	}

	if cfg.preset != "" {
		preset, err := orchestrator.NewPresetTransformerFromFS(os.DirFS(filepath.Dir(cfg.preset)), filepath.Base(cfg.preset))
		if err != nil {
			return nil, err
		}
		options = append(options, orchestrator.WithTreeTransformer(preset))
	}

	return orchestrator.New(options...), nil
}

// indentUnit accepts "tab", a space count or a literal unit.
func indentUnit(raw string) string {
	switch trimmed := strings.TrimSpace(raw); {
	case trimmed == "":
		return ""
	case strings.EqualFold(trimmed, "tab"):
		return "\t"
	default:
		n := 0
		for _, r := range trimmed {
			if r < '0' || r > '9' {
				return raw
			}
			n = n*10 + int(r-'0')
		}
		if n == 0 || n > 16 {
			return raw
		}
		return strings.Repeat(" ", n)
	}
}
