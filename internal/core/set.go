package core

// CoordSet stores occupied lattice cells. It only ever grows: there is no
// way to remove a member once inserted.
type CoordSet struct {
	m map[Coord]struct{}
}

// NewCoordSet allocates an empty set with room for size members.
func NewCoordSet(size int) *CoordSet {
	if size < 0 {
		size = 0
	}
	return &CoordSet{m: make(map[Coord]struct{}, size)}
}

// Contains reports whether c is a member.
func (s *CoordSet) Contains(c Coord) bool {
	_, ok := s.m[c]
	return ok
}

// Insert adds c and reports whether it was absent before the call.
func (s *CoordSet) Insert(c Coord) bool {
	if _, ok := s.m[c]; ok {
		return false
	}
	s.m[c] = struct{}{}
	return true
}

// Len returns the number of members.
func (s *CoordSet) Len() int { return len(s.m) }

// Clone returns an independent copy. Inserting into either set never affects
// the other.
func (s *CoordSet) Clone() *CoordSet {
	out := NewCoordSet(len(s.m))
	for c := range s.m {
		out.m[c] = struct{}{}
	}
	return out
}

// Each calls fn for every member in unspecified order.
func (s *CoordSet) Each(fn func(Coord)) {
	for c := range s.m {
		fn(c)
	}
}
