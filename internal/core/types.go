package core

import (
	"errors"
	"fmt"
	"strings"
)

// Coord addresses a single lattice cell. X grows to the right and Y grows
// downward, so a larger Y means a deeper cell.
type Coord struct {
	X int
	Y int
}

// Add returns the coordinate offset by d.
func (c Coord) Add(d Coord) Coord { return Coord{X: c.X + d.X, Y: c.Y + d.Y} }

// String formats the coordinate the way it appears in puzzle input.
func (c Coord) String() string { return fmt.Sprintf("%d,%d", c.X, c.Y) }

// Policy selects what happens below the lowest rock.
type Policy uint8

const (
	// OpenAbyss lets grains fall forever once they pass the lowest rock.
	OpenAbyss Policy = iota
	// ClosedFloor places an infinite floor two rows below the lowest rock.
	ClosedFloor
)

// ErrUnknownPolicy is returned for policy names or values outside the two
// supported cases.
var ErrUnknownPolicy = errors.New("core: unknown boundary policy")

// Policies lists every supported policy in run order.
func Policies() []Policy { return []Policy{OpenAbyss, ClosedFloor} }

// Valid reports whether p is one of the defined policies.
func (p Policy) Valid() bool { return p == OpenAbyss || p == ClosedFloor }

func (p Policy) String() string {
	switch p {
	case OpenAbyss:
		return "abyss"
	case ClosedFloor:
		return "floor"
	}
	return fmt.Sprintf("Policy(%d)", uint8(p))
}

// ParsePolicy maps a policy name to its value. Both the short names used in
// output ("abyss", "floor") and the descriptive ones ("open", "closed") are
// accepted.
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "abyss", "open":
		return OpenAbyss, nil
	case "floor", "closed":
		return ClosedFloor, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
}
