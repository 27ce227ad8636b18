package shape_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskaware-ltd/open-eaggr-go/cell"
	"github.com/riskaware-ltd/open-eaggr-go/isea4t"
	"github.com/riskaware-ltd/open-eaggr-go/shape"
)

func TestEncodeParseCellRoundTrip(t *testing.T) {
	g := isea4t.NewGrid()
	c, err := g.CreateCell("0012")
	require.NoError(t, err)

	s := shape.EncodeCell(c)
	assert.Equal(t, "1~0012", s)

	sh, err := shape.Parse(s, g)
	require.NoError(t, err)
	assert.Equal(t, shape.CellShape, sh.Kind)
	assert.Equal(t, "0012", sh.Cell.ID())
}

func TestEncodeParseLineStringRoundTrip(t *testing.T) {
	g := isea4t.NewGrid()
	a, err := g.CreateCell("0012")
	require.NoError(t, err)
	b, err := g.CreateCell("0013")
	require.NoError(t, err)

	s := shape.EncodeLineString([]cell.Cell{a, b})
	assert.Equal(t, "2~0012;0013", s)

	sh, err := shape.Parse(s, g)
	require.NoError(t, err)
	require.Equal(t, shape.LineStringShape, sh.Kind)
	require.Len(t, sh.Line, 2)
	assert.Equal(t, "0012", sh.Line[0].ID())
	assert.Equal(t, "0013", sh.Line[1].ID())
}

func TestEncodeParsePolygonRoundTrip(t *testing.T) {
	g := isea4t.NewGrid()
	outer := make([]cell.Cell, 0, 3)
	for _, id := range []string{"0012", "0013", "0010"} {
		c, err := g.CreateCell(id)
		require.NoError(t, err)
		outer = append(outer, c)
	}
	inner := make([]cell.Cell, 0, 3)
	for _, id := range []string{"0022", "0023", "0020"} {
		c, err := g.CreateCell(id)
		require.NoError(t, err)
		inner = append(inner, c)
	}

	s := shape.EncodePolygon([][]cell.Cell{outer, inner})
	assert.Equal(t, "3~0012;0013;0010:0022;0023;0020", s)

	sh, err := shape.Parse(s, g)
	require.NoError(t, err)
	require.Equal(t, shape.PolygonShape, sh.Kind)
	require.Len(t, sh.Rings, 2)
	require.Len(t, sh.Rings[0], 3)
	require.Len(t, sh.Rings[1], 3)
	assert.Equal(t, "0012", sh.Rings[0][0].ID())
	assert.Equal(t, "0022", sh.Rings[1][0].ID())
}

func TestParseMultiSplitsOnSlash(t *testing.T) {
	g := isea4t.NewGrid()
	a, err := g.CreateCell("0012")
	require.NoError(t, err)
	b, err := g.CreateCell("0013")
	require.NoError(t, err)

	combined := shape.EncodeMulti(shape.EncodeCell(a), shape.EncodeCell(b))
	assert.Equal(t, "1~0012/1~0013", combined)

	shapes, err := shape.ParseMulti(combined, g)
	require.NoError(t, err)
	require.Len(t, shapes, 2)
	assert.Equal(t, "0012", shapes[0].Cell.ID())
	assert.Equal(t, "0013", shapes[1].Cell.ID())
}

func TestParseRejectsMalformedShape(t *testing.T) {
	g := isea4t.NewGrid()
	_, err := shape.Parse("no-tilde-here", g)
	assert.Error(t, err)
}

func TestParseRejectsUnknownKind(t *testing.T) {
	g := isea4t.NewGrid()
	_, err := shape.Parse("9~0012", g)
	assert.Error(t, err)
}
