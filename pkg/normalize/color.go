package normalize

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGBA is a parsed color with 8-bit channels.
type RGBA struct {
	R, G, B, A uint8
}

// Profile selects the textual form produced by FormatColor.
type Profile string

const (
	// ProfileHex renders #rrggbb, or #rrggbbaa when the color is translucent.
	ProfileHex Profile = "hex"
	// ProfileOpaque renders #rrggbb, blending translucent colors over white.
	ProfileOpaque Profile = "opaque"
	// ProfileCSS renders hex for opaque colors and rgba() otherwise.
	ProfileCSS Profile = "css"
)

var namedColors = map[string]RGBA{
	"black":   {0, 0, 0, 255},
	"white":   {255, 255, 255, 255},
	"red":     {255, 0, 0, 255},
	"green":   {0, 128, 0, 255},
	"lime":    {0, 255, 0, 255},
	"blue":    {0, 0, 255, 255},
	"yellow":  {255, 255, 0, 255},
	"cyan":    {0, 255, 255, 255},
	"aqua":    {0, 255, 255, 255},
	"magenta": {255, 0, 255, 255},
	"fuchsia": {255, 0, 255, 255},
	"gray":    {128, 128, 128, 255},
	"grey":    {128, 128, 128, 255},
	"silver":  {192, 192, 192, 255},
	"maroon":  {128, 0, 0, 255},
	"olive":   {128, 128, 0, 255},
	"navy":    {0, 0, 128, 255},
	"purple":  {128, 0, 128, 255},
	"teal":    {0, 128, 128, 255},
	"orange":  {255, 165, 0, 255},
}

// ParseColor parses hex (#rgb, #rgba, #rrggbb, #rrggbbaa), rgb()/rgba()
// notation, the basic named colors, and "transparent". The boolean is false
// when the input is not a color.
func ParseColor(raw string) (RGBA, bool) {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "" {
		return RGBA{}, false
	}
	if value == "transparent" {
		return RGBA{}, true
	}
	if named, ok := namedColors[value]; ok {
		return named, true
	}
	if strings.HasPrefix(value, "#") {
		return parseHex(value)
	}
	if strings.HasPrefix(value, "rgb") {
		return parseFunctional(value)
	}
	return RGBA{}, false
}

func parseHex(value string) (RGBA, bool) {
	digits := value[1:]
	for _, r := range digits {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return RGBA{}, false
		}
	}

	switch len(digits) {
	case 3, 6:
		c, err := colorful.Hex(value)
		if err != nil {
			return RGBA{}, false
		}
		r, g, b := c.RGB255()
		return RGBA{R: r, G: g, B: b, A: 255}, true
	case 4:
		c, ok := parseHex("#" + digits[:3])
		if !ok {
			return RGBA{}, false
		}
		alpha, err := strconv.ParseUint(strings.Repeat(digits[3:], 2), 16, 8)
		if err != nil {
			return RGBA{}, false
		}
		c.A = uint8(alpha)
		return c, true
	case 8:
		c, ok := parseHex("#" + digits[:6])
		if !ok {
			return RGBA{}, false
		}
		alpha, err := strconv.ParseUint(digits[6:], 16, 8)
		if err != nil {
			return RGBA{}, false
		}
		c.A = uint8(alpha)
		return c, true
	default:
		return RGBA{}, false
	}
}

func parseFunctional(value string) (RGBA, bool) {
	open := strings.IndexByte(value, '(')
	if open < 0 || !strings.HasSuffix(value, ")") {
		return RGBA{}, false
	}
	name := strings.TrimSpace(value[:open])
	if name != "rgb" && name != "rgba" {
		return RGBA{}, false
	}
	parts := strings.Split(value[open+1:len(value)-1], ",")
	if len(parts) != 3 && len(parts) != 4 {
		return RGBA{}, false
	}

	var channels [3]uint8
	for i := 0; i < 3; i++ {
		n, err := strconv.ParseFloat(strings.TrimSpace(parts[i]), 64)
		if err != nil || n < 0 || n > 255 {
			return RGBA{}, false
		}
		channels[i] = uint8(math.Round(n))
	}

	alpha := uint8(255)
	if len(parts) == 4 {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || a < 0 || a > 1 {
			return RGBA{}, false
		}
		alpha = uint8(math.Round(a * 255))
	}
	return RGBA{R: channels[0], G: channels[1], B: channels[2], A: alpha}, true
}

// FormatColor renders c for the requested profile. Unknown profiles fall back
// to ProfileHex.
func FormatColor(c RGBA, profile Profile) string {
	switch profile {
	case ProfileOpaque:
		if c.A < 255 {
			c = blendOverWhite(c)
		}
		return hex(c)
	case ProfileCSS:
		if c.A == 255 {
			return hex(c)
		}
		return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B,
			strconv.FormatFloat(float64(c.A)/255, 'f', -1, 32))
	default:
		if c.A == 255 {
			return hex(c)
		}
		return fmt.Sprintf("%s%02x", hex(c), c.A)
	}
}

// NormalizeColor parses raw and re-renders it for profile. The boolean is
// false when raw is not a color.
func NormalizeColor(raw string, profile Profile) (string, bool) {
	c, ok := ParseColor(raw)
	if !ok {
		return "", false
	}
	return FormatColor(c, profile), true
}

// IsTransparent reports whether raw is the transparent keyword or a color
// with a zero alpha channel.
func IsTransparent(raw string) bool {
	c, ok := ParseColor(raw)
	return ok && c.A == 0
}

func hex(c RGBA) string {
	return toColorful(c).Hex()
}

func toColorful(c RGBA) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func blendOverWhite(c RGBA) RGBA {
	white := colorful.Color{R: 1, G: 1, B: 1}
	blended := white.BlendRgb(toColorful(c), float64(c.A)/255)
	r, g, b := blended.Clamped().RGB255()
	return RGBA{R: r, G: g, B: b, A: 255}
}
