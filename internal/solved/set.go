package solved

import "sort"

// Set is a set of solved question IDs.
type Set map[int]struct{}

// NewSet returns a Set holding ids.
func NewSet(ids ...int) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// IsSolved reports whether id is in the set.
func (s Set) IsSolved(id int) bool {
	_, ok := s[id]
	return ok
}

// IDs returns the members in ascending order.
func (s Set) IDs() []int {
	ids := make([]int, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Clone returns an independent copy of the set.
func (s Set) Clone() Set {
	c := make(Set, len(s))
	for id := range s {
		c[id] = struct{}{}
	}
	return c
}
