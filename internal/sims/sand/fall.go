package sand

import "sand-ca/internal/core"

// Outcome is the terminal state of a single grain.
type Outcome = core.Outcome

const (
	Settled = core.Settled
	Escaped = core.Escaped
)

// Occupancy is the read side of the occupancy store.
type Occupancy interface {
	Contains(c core.Coord) bool
}

// fallOrder lists candidate moves by priority: down, down-left, down-right.
var fallOrder = [...]core.Coord{{X: 0, Y: 1}, {X: -1, Y: 1}, {X: 1, Y: 1}}

// Floor returns the depth of the virtual floor for a field whose lowest rock
// sits at bottom.
func Floor(bottom int) int { return bottom + 2 }

// blocked is the only place that knows where the boundary is. Under the
// closed policy the floor row is solid without being stored.
func blocked(occ Occupancy, c core.Coord, bottom int, policy core.Policy) bool {
	if policy == core.ClosedFloor && c.Y >= Floor(bottom) {
		return true
	}
	return occ.Contains(c)
}

// Fall drops one grain from source and follows it until it rests or, under
// the open policy, passes below bottom. The returned coordinate is the resting
// cell for Settled and the first cell below bottom for Escaped. Fall only
// reads occ; inserting the rest is up to the caller.
func Fall(occ Occupancy, bottom int, source core.Coord, policy core.Policy) (core.Coord, Outcome) {
	g := source
	for {
		if policy == core.OpenAbyss && g.Y > bottom {
			return g, Escaped
		}
		moved := false
		for _, d := range fallOrder {
			if next := g.Add(d); !blocked(occ, next, bottom, policy) {
				g = next
				moved = true
				break
			}
		}
		if !moved {
			return g, Settled
		}
	}
}
