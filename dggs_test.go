package eaggr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	eaggr "github.com/riskaware-ltd/open-eaggr-go"
	"github.com/riskaware-ltd/open-eaggr-go/latlong"
)

func TestPointToCellToPointRoundTripISEA4T(t *testing.T) {
	dggs := eaggr.NewISEA4T()
	pt, err := latlong.NewWgs84Point(51.5, -0.1, 1000)
	require.NoError(t, err)

	c, err := dggs.PointToCell(pt)
	require.NoError(t, err)

	back, err := dggs.CellToPoint(c)
	require.NoError(t, err)

	assert.InDelta(t, pt.LatDegs, back.LatDegs, 0.5)
	assert.InDelta(t, pt.LongDegs, back.LongDegs, 0.5)
}

func TestPointToCellToPointRoundTripISEA3H(t *testing.T) {
	dggs := eaggr.NewISEA3H()
	pt, err := latlong.NewWgs84Point(-33.8, 151.2, 1000)
	require.NoError(t, err)

	c, err := dggs.PointToCell(pt)
	require.NoError(t, err)

	back, err := dggs.CellToPoint(c)
	require.NoError(t, err)

	assert.InDelta(t, pt.LatDegs, back.LatDegs, 0.5)
	assert.InDelta(t, pt.LongDegs, back.LongDegs, 0.5)
}

func TestCreateCellRoundTripsThroughID(t *testing.T) {
	dggs := eaggr.NewISEA4T()
	pt, err := latlong.NewWgs84Point(10, 10, 1e6)
	require.NoError(t, err)
	c, err := dggs.PointToCell(pt)
	require.NoError(t, err)

	same, err := dggs.CreateCell(c.ID())
	require.NoError(t, err)
	assert.Equal(t, c.ID(), same.ID())
}

func TestSiblingsExcludesSelf(t *testing.T) {
	dggs := eaggr.NewISEA4T()
	c, err := dggs.CreateCell("00123")
	require.NoError(t, err)

	siblings, err := dggs.Siblings(c)
	require.NoError(t, err)

	for _, s := range siblings {
		assert.NotEqual(t, c.ID(), s.ID(), "siblings should not include the cell itself")
	}
}

func TestSiblingsMatchesScenario(t *testing.T) {
	// spec.md section 8 scenario 6.
	dggs := eaggr.NewISEA4T()
	c, err := dggs.CreateCell("0101230")
	require.NoError(t, err)

	siblings, err := dggs.Siblings(c)
	require.NoError(t, err)

	ids := make([]string, len(siblings))
	for i, s := range siblings {
		ids[i] = s.ID()
	}
	assert.Equal(t, []string{"0101231", "0101232", "0101233"}, ids)
}

func TestSiblingsAreDeduplicated(t *testing.T) {
	dggs := eaggr.NewISEA4T()
	c, err := dggs.CreateCell("00123")
	require.NoError(t, err)

	siblings, err := dggs.Siblings(c)
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, s := range siblings {
		assert.False(t, seen[s.ID()], "duplicate sibling %q", s.ID())
		seen[s.ID()] = true
	}
}

func TestCellVerticesProjectToValidWgs84(t *testing.T) {
	dggs := eaggr.NewISEA4T()
	c, err := dggs.CreateCell("00")
	require.NoError(t, err)

	verts, err := dggs.CellVertices(c)
	require.NoError(t, err)
	require.Len(t, verts, 3)
	for _, v := range verts {
		assert.GreaterOrEqual(t, v.LatDegs, -90.0)
		assert.LessOrEqual(t, v.LatDegs, 90.0)
	}
}

func TestGridKindString(t *testing.T) {
	assert.Equal(t, "ISEA4T", eaggr.ISEA4T.String())
	assert.Equal(t, "ISEA3H", eaggr.ISEA3H.String())
}
