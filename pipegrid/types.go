package pipegrid

import "fmt"

// Direction is one of the four compass directions.
// The ordinal order North, South, East, West is the tie-break order used
// wherever a deterministic choice between directions is needed.
type Direction uint8

const (
	North Direction = iota
	South
	East
	West
)

// Directions lists all four directions in ordinal order.
var Directions = [4]Direction{North, South, East, West}

// dirOffsets holds the (row, col) delta of each direction, indexed by Direction.
var dirOffsets = [4][2]int{
	North: {-1, 0},
	South: {1, 0},
	East:  {0, 1},
	West:  {0, -1},
}

// Reverse returns the reciprocal direction: North↔South, East↔West.
func (d Direction) Reverse() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

// Offset returns the (row, col) delta of one step in direction d.
func (d Direction) Offset() (dRow, dCol int) {
	o := dirOffsets[d&3]
	return o[0], o[1]
}

func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case South:
		return "South"
	case East:
		return "East"
	case West:
		return "West"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Position addresses a cell by 0-indexed row and column.
type Position struct {
	Row, Col int
}

// Step returns the position one cell away in direction d. It performs no
// bounds check; use Grid.Neighbor for that.
func (p Position) Step(d Direction) Position {
	dr, dc := d.Offset()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Shape is the unordered pair of directions a conduit opens to.
// It is stored normalized, lower ordinal first; the zero value is invalid.
type Shape struct {
	a, b Direction
}

// The six conduit shapes, named after the glyph they are drawn with.
var (
	Vertical   = Shape{North, South} // |
	Horizontal = Shape{East, West}   // -
	NorthEast  = Shape{North, East}  // L
	NorthWest  = Shape{North, West}  // J
	SouthEast  = Shape{South, East}  // F
	SouthWest  = Shape{South, West}  // 7
)

// NewShape builds the Shape opening toward d1 and d2 in either order.
// Returns ErrInvalidShape if d1 == d2.
func NewShape(d1, d2 Direction) (Shape, error) {
	if d1 == d2 || d1 > West || d2 > West {
		return Shape{}, fmt.Errorf("%w: %v and %v", ErrInvalidShape, d1, d2)
	}
	if d1 > d2 {
		d1, d2 = d2, d1
	}
	return Shape{a: d1, b: d2}, nil
}

// Valid reports whether s holds two distinct directions.
func (s Shape) Valid() bool {
	return s.a != s.b
}

// Directions returns the two open directions, lower ordinal first.
func (s Shape) Directions() (Direction, Direction) {
	return s.a, s.b
}

// Has reports whether s opens toward d.
func (s Shape) Has(d Direction) bool {
	return s.Valid() && (s.a == d || s.b == d)
}

// Other returns the direction of s that is not d.
// ok is false when s does not open toward d.
func (s Shape) Other(d Direction) (dir Direction, ok bool) {
	switch {
	case !s.Valid():
		return 0, false
	case s.a == d:
		return s.b, true
	case s.b == d:
		return s.a, true
	}
	return 0, false
}

// IsCorner reports whether s turns, i.e. joins one vertical and one horizontal direction.
func (s Shape) IsCorner() bool {
	return s.Valid() && s != Vertical && s != Horizontal
}

// Glyph returns the character s is drawn with, or '?' for an invalid shape.
func (s Shape) Glyph() rune {
	switch s {
	case Vertical:
		return '|'
	case Horizontal:
		return '-'
	case NorthEast:
		return 'L'
	case NorthWest:
		return 'J'
	case SouthEast:
		return 'F'
	case SouthWest:
		return '7'
	}
	return '?'
}

func (s Shape) String() string {
	return string(s.Glyph())
}

// Kind tags the variant held by a Cell.
type Kind uint8

const (
	// Empty cells have no connections ('.').
	Empty Kind = iota
	// Conduit cells carry a Shape.
	Conduit
	// Anchor marks the start cell whose Shape is not yet known ('S').
	Anchor
)

func (k Kind) String() string {
	switch k {
	case Empty:
		return "Empty"
	case Conduit:
		return "Conduit"
	case Anchor:
		return "Anchor"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Cell is a single grid cell. Shape is meaningful only when Kind == Conduit.
type Cell struct {
	Kind  Kind
	Shape Shape
}

// ConduitCell returns a Conduit cell of shape s.
func ConduitCell(s Shape) Cell {
	return Cell{Kind: Conduit, Shape: s}
}

// IsConduit reports whether c is a Conduit.
func (c Cell) IsConduit() bool {
	return c.Kind == Conduit
}

// Glyph returns the character c is drawn with.
func (c Cell) Glyph() rune {
	switch c.Kind {
	case Conduit:
		return c.Shape.Glyph()
	case Anchor:
		return 'S'
	}
	return '.'
}

// glyphTable maps input characters to cells.
var glyphTable = map[rune]Cell{
	'|': ConduitCell(Vertical),
	'-': ConduitCell(Horizontal),
	'J': ConduitCell(NorthWest),
	'L': ConduitCell(NorthEast),
	'F': ConduitCell(SouthEast),
	'7': ConduitCell(SouthWest),
	'.': {Kind: Empty},
	'S': {Kind: Anchor},
}

// CellFromGlyph looks r up in the glyph table.
func CellFromGlyph(r rune) (Cell, bool) {
	c, ok := glyphTable[r]
	return c, ok
}
