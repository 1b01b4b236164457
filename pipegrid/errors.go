package pipegrid

import (
	"errors"
	"fmt"
)

// ErrParse is the umbrella for every malformed-input error returned by Parse.
var ErrParse = errors.New("pipegrid: parse error")

// Parse failures; each wraps ErrParse.
var (
	// ErrUnrecognizedGlyph indicates a character outside the glyph table.
	ErrUnrecognizedGlyph = fmt.Errorf("%w: unrecognized glyph", ErrParse)
	// ErrRaggedGrid indicates rows of differing lengths.
	ErrRaggedGrid = fmt.Errorf("%w: all rows must have the same length", ErrParse)
	// ErrAnchorCount indicates the grid does not hold exactly one anchor.
	ErrAnchorCount = fmt.Errorf("%w: grid must contain exactly one anchor", ErrParse)
	// ErrEmptyGrid indicates input with no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("%w: input grid must have at least one row and one column", ErrParse)
)

var (
	// ErrInvalidShape indicates a conduit built from two equal directions.
	ErrInvalidShape = errors.New("pipegrid: conduit needs two distinct directions")
	// ErrAnchorResolved indicates a second resolution with a different shape.
	ErrAnchorResolved = errors.New("pipegrid: anchor already resolved")
	// ErrOutOfBounds indicates a position outside the grid.
	ErrOutOfBounds = errors.New("pipegrid: position out of bounds")
)
