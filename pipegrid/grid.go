package pipegrid

import (
	"fmt"
	"strings"
)

// Grid is a rectangular, row-major grid of cells holding exactly one anchor.
// It is read-only after Parse except for the single anchor resolution
// performed by ResolveAnchor.
type Grid struct {
	rows, cols int
	cells      []Cell
	anchor     Position
	resolved   bool
}

// newGrid allocates a rows×cols grid of Empty cells.
func newGrid(rows, cols int) *Grid {
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}
}

// Rows returns the grid height.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the grid width.
func (g *Grid) Cols() int { return g.cols }

// Size returns rows×cols.
func (g *Grid) Size() int { return g.rows * g.cols }

// Anchor returns the position of the anchor cell.
func (g *Grid) Anchor() Position { return g.anchor }

// AnchorResolved reports whether the anchor already carries its real Shape.
func (g *Grid) AnchorResolved() bool { return g.resolved }

// InBounds reports whether p lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// Index maps p to its row-major index: Row*Cols + Col.
func (g *Grid) Index(p Position) int {
	return p.Row*g.cols + p.Col
}

// Coordinate converts a row-major index back to a Position.
func (g *Grid) Coordinate(idx int) Position {
	return Position{Row: idx / g.cols, Col: idx % g.cols}
}

// At returns the cell at p. Out-of-bounds positions read as Empty.
func (g *Grid) At(p Position) Cell {
	if !g.InBounds(p) {
		return Cell{}
	}
	return g.cells[g.Index(p)]
}

// Neighbor returns the position one step from p in direction d,
// and false if that position falls outside the grid.
func (g *Grid) Neighbor(p Position, d Direction) (Position, bool) {
	n := p.Step(d)
	return n, g.InBounds(n)
}

// ResolveAnchor replaces the anchor with a Conduit of shape s.
// Resolving again with the same shape is a no-op; a different shape
// returns ErrAnchorResolved. Returns ErrInvalidShape for an invalid s.
func (g *Grid) ResolveAnchor(s Shape) error {
	if !s.Valid() {
		return ErrInvalidShape
	}
	i := g.Index(g.anchor)
	if g.resolved {
		if g.cells[i].Shape != s {
			return fmt.Errorf("%w: have %v, got %v", ErrAnchorResolved, g.cells[i].Shape, s)
		}
		return nil
	}
	g.cells[i] = ConduitCell(s)
	g.resolved = true
	return nil
}

// Retain returns a copy of g in which every Conduit cell for which keep
// returns false is replaced by Empty. Anchor and Empty cells are copied as-is.
// Complexity: O(W×H).
func (g *Grid) Retain(keep func(Position) bool) *Grid {
	out := newGrid(g.rows, g.cols)
	out.anchor = g.anchor
	out.resolved = g.resolved
	for i, c := range g.cells {
		if c.Kind == Conduit && !keep(g.Coordinate(i)) {
			continue // left Empty
		}
		out.cells[i] = c
	}
	return out
}

// String renders the grid back to its glyph text, one line per row.
// A resolved anchor is drawn with its real Shape.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			sb.WriteRune(g.cells[r*g.cols+c].Glyph())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
