package enclosure

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

// Sentinel errors for enclosure operations.
var (
	// ErrGridNil indicates a nil grid.
	ErrGridNil = errors.New("enclosure: grid is nil")
	// ErrAnchorUnresolved indicates Clean was called before the anchor's shape was inferred.
	ErrAnchorUnresolved = errors.New("enclosure: anchor shape not resolved")
	// ErrDimensionMismatch indicates the wall set belongs to a grid of another size.
	ErrDimensionMismatch = errors.New("enclosure: wall set and grid dimensions differ")
)

// Walls is the wall set of a traced loop. *looptrace.Loop satisfies it.
type Walls interface {
	Contains(p pipegrid.Position) bool
	Dims() (rows, cols int)
}

// Clean returns a copy of g in which every conduit that is not in walls is
// Empty. g itself is not modified.
// Returns ErrGridNil, ErrAnchorUnresolved or ErrDimensionMismatch.
// Complexity: O(W×H).
func Clean(g *pipegrid.Grid, walls Walls) (*pipegrid.Grid, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	if !g.AnchorResolved() {
		return nil, fmt.Errorf("%w: anchor at %v", ErrAnchorUnresolved, g.Anchor())
	}
	if rows, cols := walls.Dims(); rows != g.Rows() || cols != g.Cols() {
		return nil, fmt.Errorf("%w: walls %dx%d, grid %dx%d",
			ErrDimensionMismatch, rows, cols, g.Rows(), g.Cols())
	}
	return g.Retain(walls.Contains), nil
}
