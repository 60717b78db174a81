// Package builder exposes the source-tree to document conversion. The
// implementation lives in internal/builder; this package wraps it with
// functional options and defines the Decorator hook applied by the
// orchestrator after a build.
package builder
