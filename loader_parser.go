package tkgen

import (
	internalLoader "github.com/goliatone/go-tkgen/internal/loader"
	"github.com/goliatone/go-tkgen/pkg/source"
)

// NewLoader constructs a loader using the internal implementation while keeping
// the concrete type hidden from consumers.
func NewLoader(options ...source.LoaderOption) source.Loader {
	cfg := source.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}

// Parse decodes a JSON or YAML source tree payload.
func Parse(data []byte, name string) (source.Tree, error) {
	tree, _, err := source.Parse(data, name)
	return tree, err
}
