package rockfield

import (
	"cmp"
	"slices"
	"strings"

	"sand-ca/internal/core"
)

// Polyline is an ordered run of vertices joined by axis-aligned segments.
type Polyline []core.Coord

// Field is the immutable set of rock cells plus the depth of the lowest rock.
type Field struct {
	rocks  *core.CoordSet
	bottom int
}

// Build rasterizes every segment of every polyline, endpoints included.
// Bottom is the largest y of any rock; a field without polylines has Bottom 0.
// Nothing is returned when any polyline is invalid, and the ParseError's Line
// is then the 1-based index of the offending polyline.
func Build(lines []Polyline) (*Field, error) {
	f := &Field{rocks: core.NewCoordSet(0)}
	for i, line := range lines {
		if err := check(line); err != nil {
			err.Line = i + 1
			return nil, err
		}
		for j := 1; j < len(line); j++ {
			f.segment(line[j-1], line[j])
		}
	}
	return f, nil
}

// check rejects polylines that cannot be rasterized. The returned error has
// no line number; callers fill it in.
func check(line Polyline) *ParseError {
	if len(line) < 2 {
		return &ParseError{Token: formatLine(line), Err: ErrDegeneratePolyline}
	}
	for j := 1; j < len(line); j++ {
		a, b := line[j-1], line[j]
		if a.X != b.X && a.Y != b.Y {
			return &ParseError{Token: formatLine(line[j-1 : j+1]), Err: ErrDiagonalSegment}
		}
	}
	return nil
}

func (f *Field) segment(a, b core.Coord) {
	x0, x1 := min(a.X, b.X), max(a.X, b.X)
	y0, y1 := min(a.Y, b.Y), max(a.Y, b.Y)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			f.rocks.Insert(core.Coord{X: x, Y: y})
		}
	}
	f.bottom = max(f.bottom, y1)
}

// Bottom returns the largest y among rock cells.
func (f *Field) Bottom() int { return f.bottom }

// Contains reports whether c is a rock.
func (f *Field) Contains(c core.Coord) bool { return f.rocks.Contains(c) }

// Len returns the number of rock cells.
func (f *Field) Len() int { return f.rocks.Len() }

// Occupancy returns a fresh occupancy set seeded with the rocks. Each
// simulation run must take its own.
func (f *Field) Occupancy() *core.CoordSet { return f.rocks.Clone() }

// Cells lists the rock cells ordered by y, then x.
func (f *Field) Cells() []core.Coord {
	out := make([]core.Coord, 0, f.rocks.Len())
	f.rocks.Each(func(c core.Coord) { out = append(out, c) })
	slices.SortFunc(out, func(a, b core.Coord) int {
		if c := cmp.Compare(a.Y, b.Y); c != 0 {
			return c
		}
		return cmp.Compare(a.X, b.X)
	})
	return out
}

func formatLine(line Polyline) string {
	parts := make([]string, len(line))
	for i, c := range line {
		parts[i] = c.String()
	}
	return strings.Join(parts, vertexSep)
}
