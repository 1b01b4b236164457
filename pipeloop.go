package pipeloop

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/pipeloop/enclosure"
	"github.com/katalvlaran/pipeloop/looptrace"
	"github.com/katalvlaran/pipeloop/pipegrid"
)

// Result is the answer pair for one grid.
type Result struct {
	// FurthestDistance is the number of steps along the loop to the point
	// farthest from the anchor.
	FurthestDistance uint64
	// EnclosedCount is the number of non-loop cells inside the loop.
	EnclosedCount uint64
}

// Analysis holds every intermediate product of a solve.
type Analysis struct {
	// Grid is the parsed grid with its anchor resolved.
	Grid *pipegrid.Grid
	// Start is the inferred anchor shape and first step.
	Start looptrace.Start
	// Loop is the traced wall set.
	Loop *looptrace.Loop
	// Cleaned is Grid with every non-loop pipe turned to ground.
	Cleaned *pipegrid.Grid
	// Enclosed lists the interior cells in row-major order.
	Enclosed []pipegrid.Position
}

// Result reduces the analysis to the answer pair.
func (a *Analysis) Result() Result {
	return Result{
		FurthestDistance: uint64(a.Loop.Furthest()),
		EnclosedCount:    uint64(len(a.Enclosed)),
	}
}

// Option configures Analyze.
type Option func(*options)

type options struct {
	logger *slog.Logger
	trace  []looptrace.Option
}

// WithLogger sets the logger that receives one debug record per stage.
// A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithTraceOptions forwards options to looptrace.Trace.
func WithTraceOptions(opts ...looptrace.Option) Option {
	return func(o *options) {
		o.trace = append(o.trace, opts...)
	}
}

// Solve parses text, traces its loop and counts the enclosed cells.
// Errors from every stage are returned unchanged, so callers can match them
// with errors.Is against the pipegrid, looptrace and enclosure sentinels.
func Solve(text string) (Result, error) {
	a, err := Analyze(text)
	if err != nil {
		return Result{}, err
	}
	return a.Result(), nil
}

// Analyze runs the full pipeline and keeps every intermediate result.
func Analyze(text string, opts ...Option) (*Analysis, error) {
	o := options{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&o)
	}
	log := o.logger

	g, err := pipegrid.Parse(text)
	if err != nil {
		return nil, err
	}
	log.Debug("grid parsed", "rows", g.Rows(), "cols", g.Cols(), "anchor", g.Anchor().String())

	start, err := looptrace.Infer(g)
	if err != nil {
		return nil, err
	}
	log.Debug("anchor resolved",
		"shape", start.Shape.String(),
		"first", start.First.String(),
		"arrival", start.Arrival.String())

	loop, err := looptrace.Trace(g, start, o.trace...)
	if err != nil {
		return nil, err
	}
	log.Debug("loop traced", "steps", loop.Steps(), "furthest", loop.Furthest())

	cleaned, err := enclosure.Clean(g, loop)
	if err != nil {
		return nil, err
	}
	inside := enclosure.Enclosed(cleaned)
	log.Debug("enclosure classified", "walls", loop.Len(), "enclosed", len(inside))

	return &Analysis{
		Grid:     g,
		Start:    start,
		Loop:     loop,
		Cleaned:  cleaned,
		Enclosed: inside,
	}, nil
}
