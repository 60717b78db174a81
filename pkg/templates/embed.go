package templates

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tpl
var embedded embed.FS

// HeaderTemplate names the built-in banner rendered at the top of generated
// source.
const HeaderTemplate = "header"

// FS exposes the built-in templates rooted at their directory.
func FS() fs.FS {
	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}
