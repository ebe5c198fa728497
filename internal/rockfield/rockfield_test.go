package rockfield_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/src-d/go-billy.v4/memfs"
	"gopkg.in/src-d/go-billy.v4/util"

	"sand-ca/internal/core"
	"sand-ca/internal/rockfield"
	prng "sand-ca/pkg/core"
)

const example = `498,4 -> 498,6 -> 496,6
503,4 -> 502,4 -> 502,9 -> 494,9
`

func TestParseExample(t *testing.T) {
	f, err := rockfield.Parse(example)
	require.NoError(t, err)

	assert.Equal(t, 9, f.Bottom())
	assert.Equal(t, 20, f.Len())
	for _, c := range []core.Coord{{X: 498, Y: 4}, {X: 498, Y: 5}, {X: 498, Y: 6}, {X: 497, Y: 6}, {X: 496, Y: 6}, {X: 503, Y: 4}, {X: 502, Y: 7}, {X: 494, Y: 9}, {X: 500, Y: 9}} {
		assert.Truef(t, f.Contains(c), "expected rock at %v", c)
	}
	for _, c := range []core.Coord{{X: 500, Y: 0}, {X: 497, Y: 5}, {X: 493, Y: 9}, {X: 504, Y: 4}, {X: 500, Y: 8}} {
		assert.Falsef(t, f.Contains(c), "unexpected rock at %v", c)
	}
}

func TestParseIsIdempotent(t *testing.T) {
	a, err := rockfield.Parse(example)
	require.NoError(t, err)
	b, err := rockfield.Parse(example)
	require.NoError(t, err)

	assert.Equal(t, a.Bottom(), b.Bottom())
	assert.Equal(t, a.Cells(), b.Cells())
}

func TestParseTolerantWhitespace(t *testing.T) {
	f, err := rockfield.Parse("\r\n  10, 2 -> 10,4\r\n\n12,3 -> 14,3\n")
	require.NoError(t, err)
	assert.Equal(t, 4, f.Bottom())
	assert.Equal(t, []core.Coord{{X: 10, Y: 2}, {X: 10, Y: 3}, {X: 12, Y: 3}, {X: 13, Y: 3}, {X: 14, Y: 3}, {X: 10, Y: 4}}, f.Cells())
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		line  int
		want  error
	}{
		{"MissingComma", "498 4 -> 498,6", 1, rockfield.ErrMalformedVertex},
		{"NotInteger", "498,4 -> 498,x", 1, rockfield.ErrMalformedVertex},
		{"TrailingArrow", "498,4 -> 498,6 ->", 1, rockfield.ErrMalformedVertex},
		{"SingleVertex", "1,1 -> 1,3\n\n498,4", 3, rockfield.ErrDegeneratePolyline},
		{"Diagonal", "1,1 -> 3,3", 1, rockfield.ErrDiagonalSegment},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := rockfield.Parse(tc.input)
			require.Error(t, err)
			assert.Nil(t, f, "no partial field on error")
			assert.True(t, errors.Is(err, tc.want), "error %v; want %v", err, tc.want)

			var pe *rockfield.ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tc.line, pe.Line)
		})
	}
}

func TestBuildEmpty(t *testing.T) {
	f, err := rockfield.Build(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, f.Bottom())
	assert.Equal(t, 0, f.Len())
}

func TestBuildRejectsDegenerate(t *testing.T) {
	_, err := rockfield.Build([]rockfield.Polyline{{{X: 1, Y: 1}, {X: 1, Y: 2}}, {{X: 4, Y: 4}}})
	var pe *rockfield.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 2, pe.Line)
	assert.ErrorIs(t, err, rockfield.ErrDegeneratePolyline)
}

func TestOccupancyIsFreshCopy(t *testing.T) {
	f, err := rockfield.Parse(example)
	require.NoError(t, err)

	a := f.Occupancy()
	b := f.Occupancy()
	a.Insert(core.Coord{X: 500, Y: 8})

	assert.Equal(t, f.Len()+1, a.Len())
	assert.Equal(t, f.Len(), b.Len())
	assert.False(t, f.Contains(core.Coord{X: 500, Y: 8}), "field must stay immutable")
}

func TestLoadFromFilesystem(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "inputs/14.txt", []byte(example), 0o644))

	f, err := rockfield.Load(fs, "inputs/14.txt")
	require.NoError(t, err)
	assert.Equal(t, 9, f.Bottom())

	_, err = rockfield.Load(fs, "inputs/missing.txt")
	require.Error(t, err)

	require.NoError(t, util.WriteFile(fs, "bad.txt", []byte("1,1 -> 2,2\n"), 0o644))
	_, err = rockfield.Load(fs, "bad.txt")
	assert.ErrorIs(t, err, rockfield.ErrDiagonalSegment)
}

func TestGenerateDeterministicAndValid(t *testing.T) {
	opts := rockfield.DefaultGenerateOptions()
	a := rockfield.Generate(prng.NewRNG(7), opts)
	b := rockfield.Generate(prng.NewRNG(7), opts)
	require.Equal(t, a, b)
	require.Len(t, a, opts.Lines)

	f, err := rockfield.Build(a)
	require.NoError(t, err)
	for _, c := range f.Cells() {
		assert.GreaterOrEqual(t, c.X, opts.MinX)
		assert.LessOrEqual(t, c.X, opts.MaxX)
		assert.GreaterOrEqual(t, c.Y, opts.MinY)
		assert.LessOrEqual(t, c.Y, opts.MaxY)
	}
}

func TestGenerateNegativeLines(t *testing.T) {
	opts := rockfield.DefaultGenerateOptions()
	opts.Lines = -1

	var lines []rockfield.Polyline
	require.NotPanics(t, func() { lines = rockfield.Generate(prng.NewRNG(1), opts) })
	assert.Empty(t, lines)
}

func TestGeneratePointWindowStaysInside(t *testing.T) {
	opts := rockfield.DefaultGenerateOptions()
	opts.MinX, opts.MaxX = 5, 5
	opts.MinY, opts.MaxY = 3, 3

	lines := rockfield.Generate(prng.NewRNG(1), opts)
	require.Len(t, lines, opts.Lines)
	for _, line := range lines {
		require.GreaterOrEqual(t, len(line), 2)
		for _, c := range line {
			assert.Equal(t, core.Coord{X: 5, Y: 3}, c)
		}
	}

	f, err := rockfield.Build(lines)
	require.NoError(t, err)
	assert.Equal(t, []core.Coord{{X: 5, Y: 3}}, f.Cells())
	assert.Equal(t, 3, f.Bottom())
}
