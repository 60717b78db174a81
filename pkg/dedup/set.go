// Package dedup provides the name set used to materialize each named handler
// once, both when building documents and when emitting them.
package dedup

// Set tracks names that have already been seen. The zero value is ready to
// use. A Set is not safe for concurrent use; each build or emit call owns its
// own.
type Set struct {
	seen map[string]struct{}
}

// New returns an empty Set.
func New() *Set {
	return &Set{}
}

// Contains reports whether name was marked.
func (s *Set) Contains(name string) bool {
	if s == nil || s.seen == nil {
		return false
	}
	_, ok := s.seen[name]
	return ok
}

// Mark records name. Marking twice is a no-op.
func (s *Set) Mark(name string) {
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}
	s.seen[name] = struct{}{}
}

// MarkNew records name and reports whether it was not seen before.
func (s *Set) MarkNew(name string) bool {
	if s.Contains(name) {
		return false
	}
	s.Mark(name)
	return true
}

// Len returns the number of distinct names marked.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.seen)
}
