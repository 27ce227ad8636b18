package mathutil_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskaware-ltd/open-eaggr-go/mathutil"
)

func TestDegsRadsRoundTrip(t *testing.T) {
	for _, deg := range []float64{0, 45, 90, 180, -90, 359.5} {
		rads := mathutil.DegsToRads(deg)
		assert.InDelta(t, deg, mathutil.RadsToDegs(rads), 1e-9)
	}
}

func TestDegreesRadiansMethods(t *testing.T) {
	d := mathutil.Degrees(180)
	require.InDelta(t, math.Pi, float64(d.ToRadians()), 1e-9)
	r := mathutil.Radians(math.Pi / 2)
	require.InDelta(t, 90, float64(r.ToDegrees()), 1e-9)
}

func TestPosAngleRads(t *testing.T) {
	assert.InDelta(t, 0, mathutil.PosAngleRads(0), 1e-9)
	assert.InDelta(t, mathutil.Pi, mathutil.PosAngleRads(-mathutil.Pi), 1e-9)
	assert.InDelta(t, mathutil.Pi/2, mathutil.PosAngleRads(mathutil.TwoPi+mathutil.Pi/2), 1e-9)
}

func TestWrapLongitudeDegs(t *testing.T) {
	assert.InDelta(t, 180.0, mathutil.WrapLongitudeDegs(-180.0), 1e-9)
	assert.InDelta(t, -170.0, mathutil.WrapLongitudeDegs(190.0), 1e-9)
	assert.InDelta(t, 0.0, mathutil.WrapLongitudeDegs(360.0), 1e-9)
}

func TestWrapAzimuthToSector(t *testing.T) {
	reduced, sectors := mathutil.WrapAzimuthToSector(mathutil.DegsToRads(75), mathutil.DegsToRads(30))
	assert.InDelta(t, mathutil.DegsToRads(15), reduced, 1e-9)
	assert.Equal(t, 2, sectors)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, mathutil.Clamp(-5, 0, 10))
	assert.Equal(t, 10.0, mathutil.Clamp(15, 0, 10))
	assert.Equal(t, 5.0, mathutil.Clamp(5, 0, 10))
}

func TestIPow(t *testing.T) {
	assert.Equal(t, 1, mathutil.IPow(4, 0))
	assert.Equal(t, 64, mathutil.IPow(4, 3))
	assert.Equal(t, 81, mathutil.IPow(3, 4))
}
