// Package source defines the loosely typed UI description the builder
// consumes, along with the Source/Loader contracts used to fetch it. Trees can
// be written in JSON or YAML; numeric values are read through the helpers in
// values.go so both decoders behave the same.
package source
