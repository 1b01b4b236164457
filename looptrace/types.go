package looptrace

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

// Sentinel errors for inference and tracing.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("looptrace: grid is nil")

	// ErrAmbiguousStart is returned when the anchor does not have exactly
	// two neighbors pointing back at it.
	ErrAmbiguousStart = errors.New("looptrace: anchor must connect to exactly two neighbors")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("looptrace: invalid option supplied")

	// ErrTraversalInvariant is the umbrella for walks over corrupt topology.
	ErrTraversalInvariant = errors.New("looptrace: traversal invariant violated")
)

// Traversal failures; each wraps ErrTraversalInvariant.
var (
	// ErrNonConduitCell indicates the walk stepped onto a non-pipe cell.
	ErrNonConduitCell = fmt.Errorf("%w: stepped onto a non-conduit cell", ErrTraversalInvariant)
	// ErrBrokenConnection indicates a pipe that does not accept the arrival
	// direction, or whose exit leads off the grid.
	ErrBrokenConnection = fmt.Errorf("%w: pipe does not connect", ErrTraversalInvariant)
	// ErrNoCycleFound indicates the step guard tripped before the walk returned to the anchor.
	ErrNoCycleFound = fmt.Errorf("%w: walk never returned to the anchor", ErrTraversalInvariant)
)

// Start is the outcome of anchor inference.
//   - Shape:   the anchor's real conduit shape.
//   - First:   the neighbor the walk steps onto first.
//   - Arrival: the side of First the walk enters through.
type Start struct {
	Anchor  pipegrid.Position
	Shape   pipegrid.Shape
	First   pipegrid.Position
	Arrival pipegrid.Direction
}

// Option configures Trace via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*TraceOptions)

// TraceOptions holds parameters and callbacks for a trace.
type TraceOptions struct {
	// Ctx allows cancellation; checked once per step.
	Ctx context.Context

	// OnStep is called after each move with the new position and the step
	// count so far. Returning an error aborts the trace.
	OnStep func(p pipegrid.Position, step int) error

	// MaxSteps bounds the walk; 0 means rows×cols.
	MaxSteps int

	err error
}

// DefaultOptions returns TraceOptions with a background context,
// a no-op OnStep hook and the rows×cols step guard.
func DefaultOptions() TraceOptions {
	return TraceOptions{
		Ctx:      context.Background(),
		OnStep:   func(pipegrid.Position, int) error { return nil },
		MaxSteps: 0,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *TraceOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnStep registers a per-step callback.
func WithOnStep(fn func(p pipegrid.Position, step int) error) Option {
	return func(o *TraceOptions) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithMaxSteps replaces the rows×cols guard.
//
//	n > 0: abort with ErrNoCycleFound once the step count exceeds n
//	n <= 0: invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *TraceOptions) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxSteps must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// Loop is the traced cycle: the ordered path starting at the anchor plus a
// membership bitmap over the grid. It is read-only once Trace returns.
type Loop struct {
	anchor pipegrid.Position
	cols   int
	rows   int
	path   []pipegrid.Position
	member []bool
	steps  int
}

// Anchor returns the position the loop starts and ends at.
func (l *Loop) Anchor() pipegrid.Position { return l.anchor }

// Path returns the loop positions in walk order, anchor first.
// The returned slice must not be modified.
func (l *Loop) Path() []pipegrid.Position { return l.path }

// Len returns the number of distinct positions on the loop.
func (l *Loop) Len() int { return len(l.path) }

// Steps returns the number of moves taken to return to the anchor.
func (l *Loop) Steps() int { return l.steps }

// Furthest returns the distance along the loop to the point farthest from
// the anchor: ceil(Steps/2).
func (l *Loop) Furthest() int { return (l.steps + 1) / 2 }

// Dims returns the dimensions of the grid the loop was traced on.
func (l *Loop) Dims() (rows, cols int) { return l.rows, l.cols }

// Contains reports whether p lies on the loop.
// Complexity: O(1).
func (l *Loop) Contains(p pipegrid.Position) bool {
	if p.Row < 0 || p.Row >= l.rows || p.Col < 0 || p.Col >= l.cols {
		return false
	}
	return l.member[p.Row*l.cols+p.Col]
}
