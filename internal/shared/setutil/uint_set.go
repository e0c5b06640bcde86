// Package setutil provides a small set type for id collections.
package setutil

// UintSet is a set of uint values.
type UintSet struct {
	items map[uint]struct{}
}

// NewUintSetWithCap creates a new UintSet with initial capacity.
func NewUintSetWithCap(cap int) *UintSet {
	return &UintSet{
		items: make(map[uint]struct{}, cap),
	}
}

// Add adds an id to the set and reports whether it was absent before.
func (s *UintSet) Add(id uint) bool {
	if _, ok := s.items[id]; ok {
		return false
	}
	s.items[id] = struct{}{}
	return true
}

// Has returns true if the id exists in the set.
func (s *UintSet) Has(id uint) bool {
	_, ok := s.items[id]
	return ok
}

// Len returns the number of elements in the set.
func (s *UintSet) Len() int {
	return len(s.items)
}
