package rockfield

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedVertex indicates a vertex token that is not "<int>,<int>".
	ErrMalformedVertex = errors.New("rockfield: vertex must be two comma-separated integers")
	// ErrDegeneratePolyline indicates a polyline with fewer than two vertices.
	ErrDegeneratePolyline = errors.New("rockfield: polyline needs at least two vertices")
	// ErrDiagonalSegment indicates consecutive vertices that differ in both x and y.
	ErrDiagonalSegment = errors.New("rockfield: segment must be horizontal or vertical")
)

// ParseError describes why a rock description was rejected. Line is 1-based
// and zero when the polylines did not come from text.
type ParseError struct {
	Line  int
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %q: %v", e.Line, e.Token, e.Err)
	}
	return fmt.Sprintf("%q: %v", e.Token, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
