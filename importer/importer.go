// Package importer collects the import or require lines a generation run
// needs. The set is deduplicated and emitted in sorted order so two code
// paths requiring the same logical import always produce one line at the
// same position.
package importer

import "sort"

type Set struct {
	seen  map[string]struct{}
	order []string
}

func NewSet() *Set {
	return &Set{seen: map[string]struct{}{}}
}

// Add records one import line; duplicates are ignored.
func (s *Set) Add(line string) {
	if line == "" {
		return
	}
	if _, ok := s.seen[line]; ok {
		return
	}
	s.seen[line] = struct{}{}
	s.order = append(s.order, line)
}

func (s *Set) Has(line string) bool {
	_, ok := s.seen[line]
	return ok
}

func (s *Set) Len() int {
	return len(s.order)
}

// Sorted returns the collected lines in alphabetical order.
func (s *Set) Sorted() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	sort.Strings(out)
	return out
}

// Reset empties the set for the next generation run.
func (s *Set) Reset() {
	s.seen = map[string]struct{}{}
	s.order = s.order[:0]
}
