package pipegrid

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Parse builds a Grid from text, one row per line.
// A trailing '\r' on each line and trailing blank lines are ignored.
// Returns ErrEmptyGrid, ErrUnrecognizedGlyph, ErrRaggedGrid or ErrAnchorCount
// (all wrapping ErrParse) for malformed input.
// Complexity: O(W×H) time and memory.
func Parse(text string) (*Grid, error) {
	lines := strings.Split(text, "\n")
	for i := range lines {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 || lines[0] == "" {
		return nil, ErrEmptyGrid
	}

	h, w := len(lines), utf8.RuneCountInString(lines[0])
	g := newGrid(h, w)
	anchors := 0
	for r, line := range lines {
		if n := utf8.RuneCountInString(line); n != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, row 0 has %d", ErrRaggedGrid, r, n, w)
		}
		c := 0
		for _, ch := range line {
			cell, ok := CellFromGlyph(ch)
			if !ok {
				return nil, fmt.Errorf("%w %q at %v", ErrUnrecognizedGlyph, ch, Position{Row: r, Col: c})
			}
			if cell.Kind == Anchor {
				anchors++
				g.anchor = Position{Row: r, Col: c}
			}
			g.cells[r*w+c] = cell
			c++
		}
	}
	if anchors != 1 {
		return nil, fmt.Errorf("%w: found %d", ErrAnchorCount, anchors)
	}

	return g, nil
}

// MustParse is like Parse but panics on error. Intended for fixtures.
func MustParse(text string) *Grid {
	g, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return g
}
