package tkgen

import (
	"io/fs"

	"github.com/goliatone/go-tkgen/pkg/templates"
)

// EmbeddedTemplates exposes the built-in banner templates so callers can copy
// or extend them for compose.Options.HeaderTemplate.
func EmbeddedTemplates() fs.FS {
	return templates.FS()
}
