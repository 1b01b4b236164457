// Package looptrace infers the hidden shape of the anchor cell and walks the
// single pipe loop through it, recording the wall set and its length.
//
// What
//
//   - Infer inspects the four neighbors of the anchor and keeps the ones whose
//     pipe points back at it. Exactly two must qualify; their directions form
//     the anchor's real Shape, which is written into the grid once.
//   - Trace walks the loop as a value-state machine over
//     (position, arrival direction): at each conduit it leaves through the
//     opening it did not arrive by. No cyclic graph is materialized.
//   - Run chains Infer and Trace.
//   - The resulting Loop holds the ordered path, an O(1) membership bitmap,
//     the step count and Furthest() = ceil(Steps/2).
//
// Determinism
//
//	Directions are tried in the ordinal order North, South, East, West, and
//	the walk always starts toward the first qualifying one, so Path is
//	reproducible across runs.
//
// Guard
//
//	A walk that has not returned to the anchor after rows×cols steps (or
//	WithMaxSteps) stops with ErrNoCycleFound instead of spinning forever.
//
// Complexity (L = loop length, W×H = grid size)
//
//   - Infer: O(1)
//   - Trace: O(L) time, O(W×H) memory
//
// Usage
//
//	start, loop, err := looptrace.Run(g)
//	if err != nil {
//	    // ErrGridNil, ErrAmbiguousStart, ErrOptionViolation, or one of the
//	    // ErrTraversalInvariant family
//	}
//	fmt.Println(start.Shape, loop.Furthest())
package looptrace
