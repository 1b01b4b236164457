// Package render draws a cleaned pipe grid: loop walls with their glyphs,
// enclosed cells marked, everything else as ground. Output can be plain
// ASCII, Unicode box drawing, and colored through a termenv profile.
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

// ErrGridNil indicates a nil grid.
var ErrGridNil = errors.New("render: grid is nil")

// ErrUnknownCharset indicates a charset name ParseCharset does not know.
var ErrUnknownCharset = errors.New("render: unknown charset")

// Charset selects the glyphs used for walls and interior cells.
type Charset int

const (
	// ASCII draws walls with the input glyphs and interior cells as 'I'.
	ASCII Charset = iota
	// Box draws walls with Unicode box-drawing characters and interior cells as '•'.
	Box
)

// ParseCharset maps "ascii" or "box" to a Charset.
func ParseCharset(name string) (Charset, error) {
	switch strings.ToLower(name) {
	case "", "ascii":
		return ASCII, nil
	case "box":
		return Box, nil
	}
	return ASCII, fmt.Errorf("%w: %q", ErrUnknownCharset, name)
}

func (c Charset) String() string {
	if c == Box {
		return "box"
	}
	return "ascii"
}

var boxGlyphs = map[pipegrid.Shape]rune{
	pipegrid.Vertical:   '│',
	pipegrid.Horizontal: '─',
	pipegrid.NorthEast:  '└',
	pipegrid.NorthWest:  '┘',
	pipegrid.SouthEast:  '┌',
	pipegrid.SouthWest:  '┐',
}

// Palette.
const (
	wallColor     = "#818cf8"
	anchorColor   = "#fb7185"
	interiorColor = "#34d399"
)

// Option configures Render.
type Option func(*config)

type config struct {
	charset Charset
	profile termenv.Profile
}

// WithCharset selects the glyph set. Default ASCII.
func WithCharset(c Charset) Option {
	return func(cfg *config) { cfg.charset = c }
}

// WithProfile colors the output for the given terminal profile.
// Default termenv.Ascii, i.e. no escape sequences.
func WithProfile(p termenv.Profile) Option {
	return func(cfg *config) { cfg.profile = p }
}

// Render writes g one row per line. Every conduit in g is drawn as a wall,
// so g should be a cleaned grid; positions in enclosed are marked as interior.
// Returns ErrGridNil or the first write error.
// Complexity: O(W×H).
func Render(w io.Writer, g *pipegrid.Grid, enclosed []pipegrid.Position, opts ...Option) error {
	if g == nil {
		return ErrGridNil
	}
	cfg := config{charset: ASCII, profile: termenv.Ascii}
	for _, opt := range opts {
		opt(&cfg)
	}

	interior := make([]bool, g.Size())
	for _, p := range enclosed {
		if g.InBounds(p) {
			interior[g.Index(p)] = true
		}
	}

	var sb strings.Builder
	for r := 0; r < g.Rows(); r++ {
		sb.Reset()
		for c := 0; c < g.Cols(); c++ {
			p := pipegrid.Position{Row: r, Col: c}
			cell := g.At(p)
			switch {
			case cell.IsConduit():
				color := wallColor
				if p == g.Anchor() {
					color = anchorColor
				}
				sb.WriteString(cfg.paint(string(cfg.wall(cell.Shape)), color))
			case interior[g.Index(p)]:
				sb.WriteString(cfg.paint(string(cfg.inside()), interiorColor))
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return fmt.Errorf("render: row %d: %w", r, err)
		}
	}
	return nil
}

// String is Render into a string.
func String(g *pipegrid.Grid, enclosed []pipegrid.Position, opts ...Option) (string, error) {
	var sb strings.Builder
	if err := Render(&sb, g, enclosed, opts...); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (cfg config) wall(s pipegrid.Shape) rune {
	if cfg.charset == Box {
		return boxGlyphs[s]
	}
	return s.Glyph()
}

func (cfg config) inside() rune {
	if cfg.charset == Box {
		return '•'
	}
	return 'I'
}

// paint wraps s in the escape sequences for hex; a no-op for the Ascii profile.
func (cfg config) paint(s, hex string) string {
	return cfg.profile.String(s).Foreground(cfg.profile.Color(hex)).String()
}
