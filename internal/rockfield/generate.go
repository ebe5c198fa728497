package rockfield

import (
	"sand-ca/internal/core"
	prng "sand-ca/pkg/core"
)

// GenerateOptions bounds the random rock layouts produced by Generate.
type GenerateOptions struct {
	Lines       int
	MinVertices int
	MaxVertices int
	MaxSegment  int

	MinX, MaxX int
	MinY, MaxY int
}

// DefaultGenerateOptions returns a window around the default source column
// that never places rock on row 0.
func DefaultGenerateOptions() GenerateOptions {
	return GenerateOptions{
		Lines:       12,
		MinVertices: 2,
		MaxVertices: 5,
		MaxSegment:  6,
		MinX:        480,
		MaxX:        520,
		MinY:        1,
		MaxY:        30,
	}
}

// Generate draws opts.Lines random axis-aligned polylines. The same seed
// always yields the same layout. Every vertex stays inside the configured
// window; a window collapsed to one cell yields polylines that repeat it.
func Generate(rng *prng.RNG, opts GenerateOptions) []Polyline {
	if opts.Lines < 0 {
		opts.Lines = 0
	}
	if opts.MinVertices < 2 {
		opts.MinVertices = 2
	}
	if opts.MaxVertices < opts.MinVertices {
		opts.MaxVertices = opts.MinVertices
	}
	if opts.MaxSegment < 1 {
		opts.MaxSegment = 1
	}
	if opts.MaxX < opts.MinX {
		opts.MaxX = opts.MinX
	}
	if opts.MaxY < opts.MinY {
		opts.MaxY = opts.MinY
	}
	point := opts.MinX == opts.MaxX && opts.MinY == opts.MaxY

	lines := make([]Polyline, 0, opts.Lines)
	for i := 0; i < opts.Lines; i++ {
		n := rng.Between(opts.MinVertices, opts.MaxVertices)
		cur := core.Coord{X: rng.Between(opts.MinX, opts.MaxX), Y: rng.Between(opts.MinY, opts.MaxY)}
		line := Polyline{cur}
		horizontal := rng.Bool()
		for len(line) < n {
			step := rng.Between(1, opts.MaxSegment)
			if rng.Bool() {
				step = -step
			}
			next := cur
			if horizontal {
				next.X = clamp(cur.X+step, opts.MinX, opts.MaxX)
			} else {
				next.Y = clamp(cur.Y+step, opts.MinY, opts.MaxY)
			}
			horizontal = !horizontal
			if next == cur && !point {
				continue
			}
			line = append(line, next)
			cur = next
		}
		lines = append(lines, line)
	}
	return lines
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
