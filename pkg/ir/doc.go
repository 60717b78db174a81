// Package ir defines the intermediate document ("tkir") produced by the
// builder and consumed by every emitter: a flat widget list linked by
// parent ids, the handler list, and data bindings. Documents serialize to
// JSON and YAML without loss.
package ir
