// Package pipegrid models a rectangular grid of pipe glyphs as typed cells.
//
// What:
//
//   - Parse turns text rows over {| - L J 7 F . S} into a *Grid.
//   - Each Cell is Empty, a Conduit with a two-direction Shape, or the Anchor.
//   - The Anchor ("S") hides its real Shape until ResolveAnchor replaces it once.
//   - Retain produces a copy in which unwanted conduits become Empty.
//
// Glyph table:
//
//	|  North-South     -  East-West
//	L  North-East      J  North-West
//	F  South-East      7  South-West
//	.  Empty           S  Anchor
//
// Errors:
//
//   - ErrParse wraps every parse failure:
//     ErrUnrecognizedGlyph, ErrRaggedGrid, ErrAnchorCount, ErrEmptyGrid.
//   - ErrInvalidShape: a Shape built from two equal directions.
//   - ErrAnchorResolved: the anchor was already resolved to another Shape.
//   - ErrOutOfBounds: a Position outside the grid.
//
// Complexity:
//
//   - Parse, String, Retain: O(W×H) time and memory.
//   - At, InBounds, Neighbor: O(1).
package pipegrid
