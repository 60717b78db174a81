// Package testsupport holds fixture and golden helpers shared by the package
// tests. Set UPDATE_GOLDENS=1 to rewrite goldens from current output.
package testsupport
