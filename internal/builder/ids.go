package builder

import (
	"strings"
	"unicode"

	"go.uber.org/zap"
)

// assignID honors a source id when it sanitizes to a free identifier and
// otherwise generates "wN" from the widget's pre-order position.
func (st *state) assignID(raw string) string {
	if candidate := sanitizeID(raw); candidate != "" {
		if _, taken := st.ids[candidate]; !taken {
			st.ids[candidate] = struct{}{}
			return candidate
		}
		st.log.Warn("builder: duplicate widget id, generating a new one", zap.String("id", raw))
	}
	id := st.nextID("w", len(st.doc.Widgets))
	st.ids[id] = struct{}{}
	return id
}

// sanitizeID maps raw to [a-z][A-Za-z0-9_]*. Path separators and other
// punctuation become underscores so ids compose into toolkit paths.
func sanitizeID(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	var b strings.Builder
	for _, r := range trimmed {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	out := b.String()
	first := rune(out[0])
	switch {
	case unicode.IsLower(first):
		return out
	case unicode.IsUpper(first):
		return string(unicode.ToLower(first)) + out[1:]
	default:
		return "w" + out
	}
}
