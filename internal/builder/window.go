package builder

import (
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-tkgen/pkg/ir"
	"github.com/goliatone/go-tkgen/pkg/normalize"
	"github.com/goliatone/go-tkgen/pkg/source"
)

// Window defaults applied when the source omits or mangles a value.
const (
	DefaultTitle  = "Untitled"
	DefaultWidth  = 800
	DefaultHeight = 600
)

var themeBackgroundTokens = []string{"background", "color.background", "bg"}

func (st *state) resolveWindow(raw *source.Window) ir.Window {
	win := ir.Window{
		Title:     DefaultTitle,
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		Resizable: true,
	}

	if raw != nil {
		if title, ok := source.String(raw.Title); ok && strings.TrimSpace(title) != "" {
			win.Title = title
		}
		if n, ok := source.Number(raw.Width); ok && n > 0 {
			win.Width = int(n)
		}
		if n, ok := source.Number(raw.Height); ok && n > 0 {
			win.Height = int(n)
		}
		if resizable, ok := source.Bool(raw.Resizable); ok {
			win.Resizable = resizable
		}
		if bg, ok := source.String(raw.Background); ok && !normalize.IsTransparent(bg) {
			if color, ok := normalize.NormalizeColor(bg, normalize.ProfileHex); ok {
				win.Background = color
			}
		}
	}

	if win.Background == "" {
		win.Background = st.themeBackground()
	}
	return win
}

// themeBackground reads the background token from the configured theme,
// letting the variant override the base manifest. Selection failures are
// logged and yield "".
func (st *state) themeBackground() string {
	if st.opts.ThemeSelector == nil {
		return ""
	}
	selection, err := st.opts.ThemeSelector.Select(st.opts.ThemeName, st.opts.ThemeVariant)
	if err != nil {
		st.log.Warn("builder: theme selection failed",
			zap.String("theme", st.opts.ThemeName),
			zap.String("variant", st.opts.ThemeVariant),
			zap.Error(err),
		)
		return ""
	}
	if selection == nil || selection.Manifest == nil {
		return ""
	}

	tokens := make(map[string]string, len(selection.Manifest.Tokens))
	for key, value := range selection.Manifest.Tokens {
		tokens[key] = value
	}
	if variant, ok := selection.Manifest.Variants[selection.Variant]; ok {
		for key, value := range variant.Tokens {
			tokens[key] = value
		}
	}

	for _, key := range themeBackgroundTokens {
		if raw, ok := tokens[key]; ok {
			if color, ok := normalize.NormalizeColor(raw, normalize.ProfileHex); ok && !normalize.IsTransparent(raw) {
				return color
			}
		}
	}
	return ""
}
