package rockfield

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"sand-ca/internal/core"
)

const vertexSep = " -> "

// Parse builds a Field from puzzle text: one polyline per line, vertices
// separated by " -> ", each vertex written as "x,y".
func Parse(text string) (*Field, error) {
	return ParseReader(strings.NewReader(text))
}

// ParseReader is Parse over a stream.
func ParseReader(r io.Reader) (*Field, error) {
	lines, err := ParsePolylines(r)
	if err != nil {
		return nil, err
	}
	return Build(lines)
}

// ParsePolylines decodes every non-blank line into a polyline without
// rasterizing it. Errors carry the 1-based line number of the input.
func ParsePolylines(r io.Reader) ([]Polyline, error) {
	var out []Polyline
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		line, err := parseLine(text)
		if err == nil {
			err = check(line)
		}
		if err != nil {
			err.Line = n
			return nil, err
		}
		out = append(out, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("rockfield: read input: %w", err)
	}
	return out, nil
}

func parseLine(text string) (Polyline, *ParseError) {
	tokens := strings.Split(text, vertexSep)
	line := make(Polyline, 0, len(tokens))
	for _, tok := range tokens {
		c, err := parseVertex(tok)
		if err != nil {
			return nil, err
		}
		line = append(line, c)
	}
	return line, nil
}

func parseVertex(tok string) (core.Coord, *ParseError) {
	xs, ys, ok := strings.Cut(strings.TrimSpace(tok), ",")
	if !ok {
		return core.Coord{}, &ParseError{Token: tok, Err: ErrMalformedVertex}
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return core.Coord{}, &ParseError{Token: tok, Err: fmt.Errorf("%w: %v", ErrMalformedVertex, err)}
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return core.Coord{}, &ParseError{Token: tok, Err: fmt.Errorf("%w: %v", ErrMalformedVertex, err)}
	}
	return core.Coord{X: x, Y: y}, nil
}
