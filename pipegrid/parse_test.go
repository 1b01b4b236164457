package pipegrid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pipeloop/internal/fixtures"
	"github.com/katalvlaran/pipeloop/pipegrid"
)

//----------------------------------------------------------------------------//
// Parse error tests
//----------------------------------------------------------------------------//

// TestParse_Errors verifies that malformed inputs are rejected with the right sentinel.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		text string
		err  error
	}{
		{"Empty", "", pipegrid.ErrEmptyGrid},
		{"OnlyNewlines", "\n\n\n", pipegrid.ErrEmptyGrid},
		{"LeadingBlankRow", "\nS-7\n", pipegrid.ErrEmptyGrid},
		{"Ragged", "S-7\n|.\nL-J\n", pipegrid.ErrRaggedGrid},
		{"RaggedBlankMiddle", "S-7\n\nL-J\n", pipegrid.ErrRaggedGrid},
		{"UnknownGlyph", "S-7\n|x|\nL-J\n", pipegrid.ErrUnrecognizedGlyph},
		{"Lowercase", "s-7\n|.|\nL-J\n", pipegrid.ErrUnrecognizedGlyph},
		{"NoAnchor", "F-7\n|.|\nL-J\n", pipegrid.ErrAnchorCount},
		{"TwoAnchors", "S-7\n|.|\nL-S\n", pipegrid.ErrAnchorCount},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := pipegrid.Parse(tc.text)
			if !errors.Is(err, tc.err) {
				t.Fatalf("Parse(%q) error = %v; want %v", tc.text, err, tc.err)
			}
			if !errors.Is(err, pipegrid.ErrParse) {
				t.Errorf("Parse(%q) error %v does not wrap ErrParse", tc.text, err)
			}
			if g != nil {
				t.Errorf("Parse(%q) returned a grid alongside an error", tc.text)
			}
		})
	}
}

// TestParse_ErrorContext checks that wrapped errors name the offending cell.
func TestParse_ErrorContext(t *testing.T) {
	_, err := pipegrid.Parse("S-7\n|#|\nL-J")
	require.ErrorIs(t, err, pipegrid.ErrUnrecognizedGlyph)
	assert.Contains(t, err.Error(), `'#'`)
	assert.Contains(t, err.Error(), "(1,1)")

	_, err = pipegrid.Parse("S-7\n|.|.\nL-J")
	require.ErrorIs(t, err, pipegrid.ErrRaggedGrid)
	assert.Contains(t, err.Error(), "row 1 has 4 cells")
}

//----------------------------------------------------------------------------//
// Parse success tests
//----------------------------------------------------------------------------//

// TestParse_Square checks dimensions, anchor position and cell kinds.
func TestParse_Square(t *testing.T) {
	g, err := pipegrid.Parse(fixtures.Square)
	require.NoError(t, err)

	assert.Equal(t, 5, g.Rows())
	assert.Equal(t, 5, g.Cols())
	assert.Equal(t, 25, g.Size())
	assert.Equal(t, pipegrid.Position{Row: 1, Col: 1}, g.Anchor())
	assert.False(t, g.AnchorResolved())

	assert.Equal(t, pipegrid.Anchor, g.At(pipegrid.Position{Row: 1, Col: 1}).Kind)
	assert.Equal(t, pipegrid.Empty, g.At(pipegrid.Position{Row: 0, Col: 0}).Kind)
	assert.Equal(t, pipegrid.ConduitCell(pipegrid.Horizontal), g.At(pipegrid.Position{Row: 1, Col: 2}))
	assert.Equal(t, pipegrid.ConduitCell(pipegrid.SouthWest), g.At(pipegrid.Position{Row: 1, Col: 3}))
	assert.Equal(t, pipegrid.ConduitCell(pipegrid.Vertical), g.At(pipegrid.Position{Row: 2, Col: 1}))
	assert.Equal(t, pipegrid.ConduitCell(pipegrid.NorthEast), g.At(pipegrid.Position{Row: 3, Col: 1}))
	assert.Equal(t, pipegrid.ConduitCell(pipegrid.NorthWest), g.At(pipegrid.Position{Row: 3, Col: 3}))
}

// TestParse_LineEndings accepts CRLF input and a missing trailing newline.
func TestParse_LineEndings(t *testing.T) {
	for _, text := range []string{
		"S7\r\nLJ\r\n",
		"S7\nLJ",
		"S7\nLJ\n\n\n",
	} {
		g, err := pipegrid.Parse(text)
		require.NoError(t, err, "Parse(%q)", text)
		assert.Equal(t, 2, g.Rows())
		assert.Equal(t, 2, g.Cols())
		assert.Equal(t, "S7\nLJ\n", g.String())
	}
}

// TestParse_RoundTrip checks that String reproduces every fixture verbatim.
func TestParse_RoundTrip(t *testing.T) {
	for _, fx := range fixtures.All {
		t.Run(fx.Name, func(t *testing.T) {
			g, err := pipegrid.Parse(fx.Text)
			require.NoError(t, err)
			assert.Equal(t, fx.Text, g.String())
		})
	}
}

// TestMustParse_Panics ensures MustParse surfaces parse errors as panics.
func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { pipegrid.MustParse("S\nSS") })
	assert.NotPanics(t, func() { pipegrid.MustParse(fixtures.Square) })
}
