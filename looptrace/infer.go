package looptrace

import (
	"fmt"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

// Infer determines the anchor's real shape from the neighbors that point
// back at it, then resolves the anchor in g to that shape.
//
// Behavior:
//  1. For each direction d in ordinal order (N, S, E, W), the neighbor at
//     anchor+d qualifies if it is a Conduit opening toward d.Reverse().
//  2. Exactly two directions must qualify, else ErrAmbiguousStart.
//  3. The walk starts toward the lowest-ordinal qualifying direction.
//
// Infer is deterministic; running it again on the same grid returns the same
// Start and leaves the already resolved anchor untouched.
// Complexity: O(1).
func Infer(g *pipegrid.Grid) (Start, error) {
	if g == nil {
		return Start{}, ErrGridNil
	}
	anchor := g.Anchor()

	found := make([]pipegrid.Direction, 0, len(pipegrid.Directions))
	for _, d := range pipegrid.Directions {
		n, ok := g.Neighbor(anchor, d)
		if !ok {
			continue
		}
		cell := g.At(n)
		if cell.IsConduit() && cell.Shape.Has(d.Reverse()) {
			found = append(found, d)
		}
	}
	if len(found) != 2 {
		return Start{}, fmt.Errorf("%w: anchor %v has %d (%v)", ErrAmbiguousStart, anchor, len(found), found)
	}

	shape, err := pipegrid.NewShape(found[0], found[1])
	if err != nil {
		return Start{}, err
	}
	if err = g.ResolveAnchor(shape); err != nil {
		return Start{}, fmt.Errorf("looptrace: resolve anchor %v: %w", anchor, err)
	}

	return Start{
		Anchor:  anchor,
		Shape:   shape,
		First:   anchor.Step(found[0]),
		Arrival: found[0].Reverse(),
	}, nil
}
