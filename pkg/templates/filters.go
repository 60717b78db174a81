package templates

import (
	"strings"
	"unicode"

	"github.com/flosch/pongo2/v6"
)

func registerDefaultFilters() {
	if !pongo2.FilterExists("upper_snake") {
		_ = pongo2.RegisterFilter("upper_snake", filterUpperSnake)
	}
	if !pongo2.FilterExists("comment_safe") {
		_ = pongo2.RegisterFilter("comment_safe", filterCommentSafe)
	}
}

func filterUpperSnake(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsValue(UpperSnake(in.String())), nil
}

func filterCommentSafe(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsValue(CommentSafe(in.String())), nil
}

// UpperSnake converts "Main Window" or "mainWindow" to "MAIN_WINDOW".
func UpperSnake(s string) string {
	var b strings.Builder
	var prev rune
	for i, r := range strings.TrimSpace(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if i > 0 && unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToUpper(r))
		default:
			if b.Len() > 0 && prev != '_' {
				b.WriteByte('_')
			}
			r = '_'
		}
		prev = r
	}
	return strings.TrimRight(b.String(), "_")
}

// CommentSafe flattens s onto one line and breaks block comment terminators
// so it can sit inside any language's comment.
func CommentSafe(s string) string {
	s = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "*/", "* /").Replace(s)
	return strings.TrimSpace(s)
}
