package enclosure

import "github.com/katalvlaran/pipeloop/pipegrid"

// Classify counts the Empty cells of a cleaned grid that lie inside the loop.
// Every conduit in g is taken to be a wall, so g must come from Clean.
// A grid without walls yields 0.
// Complexity: O(W×H) time, O(1) memory.
func Classify(g *pipegrid.Grid) int {
	count := 0
	scan(g, func(pipegrid.Position) { count++ })
	return count
}

// Enclosed returns the interior cells of a cleaned grid in row-major order.
func Enclosed(g *pipegrid.Grid) []pipegrid.Position {
	var out []pipegrid.Position
	scan(g, func(p pipegrid.Position) { out = append(out, p) })
	return out
}

// scan runs the crossing-parity scan and calls inside for each interior cell.
func scan(g *pipegrid.Grid, inside func(pipegrid.Position)) {
	if g == nil {
		return
	}
	for r := 0; r < g.Rows(); r++ {
		in := false
		var opener pipegrid.Shape
		for c := 0; c < g.Cols(); c++ {
			p := pipegrid.Position{Row: r, Col: c}
			cell := g.At(p)
			switch cell.Kind {
			case pipegrid.Conduit:
				s := cell.Shape
				switch {
				case s == pipegrid.Vertical:
					in = !in
				case s == pipegrid.Horizontal:
					// inside a run
				case s.Has(pipegrid.East): // F or L
					opener = s
				default: // 7 or J
					if opener.Valid() && verticalLeg(opener) != verticalLeg(s) {
						in = !in
					}
					opener = pipegrid.Shape{}
				}
			case pipegrid.Empty:
				if in {
					inside(p)
				}
			}
		}
	}
}

// verticalLeg returns the vertical direction a corner opens toward.
func verticalLeg(s pipegrid.Shape) pipegrid.Direction {
	if s.Has(pipegrid.North) {
		return pipegrid.North
	}
	return pipegrid.South
}
