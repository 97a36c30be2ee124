package cssprune

import "sort"

// ClassSet is a set of CSS class names. Insertion order is irrelevant and
// duplicates collapse; deterministic output comes from Sorted.
type ClassSet map[string]struct{}

// NewClassSet creates a ClassSet from the given names.
func NewClassSet(names ...string) ClassSet {
	s := make(ClassSet, len(names))
	for _, n := range names {
		s.Add(n)
	}
	return s
}

// Add inserts a name into the set.
func (s ClassSet) Add(name string) { s[name] = struct{}{} }

// Has reports whether name is in the set.
func (s ClassSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Len returns the number of distinct names.
func (s ClassSet) Len() int { return len(s) }

// Diff returns the members of s that are not in other.
func (s ClassSet) Diff(other ClassSet) ClassSet {
	result := make(ClassSet)
	for name := range s {
		if !other.Has(name) {
			result.Add(name)
		}
	}
	return result
}

// Sorted returns the members as a lexically sorted slice.
func (s ClassSet) Sorted() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
