// Package codewriter provides the indentation-aware text buffer that language
// and toolkit modules write generated source into.
package codewriter
