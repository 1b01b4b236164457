package looptrace

import (
	"fmt"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

// walker encapsulates mutable tracing state.
type walker struct {
	grid  *pipegrid.Grid
	opts  TraceOptions
	limit int
	pos   pipegrid.Position
	from  pipegrid.Direction
	loop  *Loop
}

// Trace walks the loop from start until it returns to the anchor.
// start must come from Infer on the same grid, so that the anchor is resolved.
//
// Returns ErrGridNil for a nil grid, ErrOptionViolation for bad options,
// ErrNonConduitCell, ErrBrokenConnection or ErrNoCycleFound (all wrapping
// ErrTraversalInvariant) for corrupt topology, the context error on
// cancellation, or any OnStep hook error.
// Complexity: O(L) time for a loop of length L, O(W×H) memory for the bitmap.
func Trace(g *pipegrid.Grid, start Start, opts ...Option) (*Loop, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	limit := o.MaxSteps
	if limit == 0 {
		limit = g.Size()
	}
	w := &walker{
		grid:  g,
		opts:  o,
		limit: limit,
		pos:   start.First,
		from:  start.Arrival,
		loop: &Loop{
			anchor: start.Anchor,
			rows:   g.Rows(),
			cols:   g.Cols(),
			path:   make([]pipegrid.Position, 0, 2*(g.Rows()+g.Cols())),
			member: make([]bool, g.Size()),
		},
	}
	if !g.InBounds(start.First) {
		return nil, fmt.Errorf("%w: first step %w: %v", ErrBrokenConnection, pipegrid.ErrOutOfBounds, start.First)
	}

	// seed the wall set with the anchor and the first step
	w.mark(start.Anchor)
	w.mark(start.First)
	w.loop.steps = 1
	if err := o.OnStep(start.First, 1); err != nil {
		return nil, fmt.Errorf("looptrace: OnStep error at %v: %w", start.First, err)
	}

	if err := w.run(); err != nil {
		return nil, err
	}
	return w.loop, nil
}

// Run infers the anchor shape of g and traces the loop through it.
func Run(g *pipegrid.Grid, opts ...Option) (Start, *Loop, error) {
	start, err := Infer(g)
	if err != nil {
		return Start{}, nil, err
	}
	loop, err := Trace(g, start, opts...)
	if err != nil {
		return start, nil, err
	}
	return start, loop, nil
}

// run advances the walker until it stands on the anchor again.
func (w *walker) run() error {
	for w.pos != w.loop.anchor {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		if err := w.advance(); err != nil {
			return err
		}
		if w.loop.steps > w.limit {
			return fmt.Errorf("%w: %d steps exceed the limit of %d", ErrNoCycleFound, w.loop.steps, w.limit)
		}
		if err := w.opts.OnStep(w.pos, w.loop.steps); err != nil {
			return fmt.Errorf("looptrace: OnStep error at %v: %w", w.pos, err)
		}
	}
	return nil
}

// advance leaves the current cell through its other opening.
func (w *walker) advance() error {
	cell := w.grid.At(w.pos)
	if !cell.IsConduit() {
		return fmt.Errorf("%w: %v is %v after %d steps", ErrNonConduitCell, w.pos, cell.Kind, w.loop.steps)
	}
	to, ok := cell.Shape.Other(w.from)
	if !ok {
		return fmt.Errorf("%w: %v (%v) has no %v opening", ErrBrokenConnection, w.pos, cell.Shape, w.from)
	}
	next, ok := w.grid.Neighbor(w.pos, to)
	if !ok {
		return fmt.Errorf("%w: %v (%v) exits %v, %w", ErrBrokenConnection, w.pos, cell.Shape, to, pipegrid.ErrOutOfBounds)
	}

	w.pos = next
	w.from = to.Reverse()
	w.loop.steps++
	w.mark(next)
	return nil
}

// mark inserts p into the wall set, appending it to the path on first sight.
func (w *walker) mark(p pipegrid.Position) {
	i := w.grid.Index(p)
	if w.loop.member[i] {
		return
	}
	w.loop.member[i] = true
	w.loop.path = append(w.loop.path, p)
}
