// Copyright 2026 The open-eaggr-go Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package projection

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/riskaware-ltd/open-eaggr-go/globe"
	"github.com/riskaware-ltd/open-eaggr-go/mathutil"
)

// TestGetAccuracyAreaMatchesReferenceTable checks the accuracy-angle-to-
// relative-area conversion against a table of angles, including the
// non-invertible clamp at a 100-degree input. Below one degree the area is
// 5*theta^2 (theta in radians), so every small-angle row has the mantissa
// 1.523087.
func TestGetAccuracyAreaMatchesReferenceTable(t *testing.T) {
	rows := []struct {
		angleDegs float64
		wantArea  float64
		tolerance float64
	}{
		{100.0, 1.0, 1e-6},
		{10.0, 1.519225e-1, 1e-7},
		{1.0, 1.523048e-3, 1e-9},
		{0.1, 1.523087e-5, 1e-11},
		{0.01, 1.523087e-7, 1e-13},
		{0.001, 1.523087e-9, 1e-15},
		{0.0001, 1.523087e-11, 1e-17},
		{1e-8, 1.523087e-19, 1e-26},
	}
	for _, r := range rows {
		got := getAccuracyArea(globe.NumFaces, mathutil.DegsToRads(r.angleDegs))
		assert.InDelta(t, r.wantArea, got, r.tolerance, "angle=%v degrees", r.angleDegs)
	}
}

// TestGetAccuracyAngleInvertsExceptAtClamp confirms getAccuracyAngle
// recovers the original angle for an unclamped area, and the documented
// smaller angle once the area has been clamped to a whole face.
func TestGetAccuracyAngleInvertsExceptAtClamp(t *testing.T) {
	angle := mathutil.DegsToRads(10.0)
	area := getAccuracyArea(globe.NumFaces, angle)
	back := getAccuracyAngle(globe.NumFaces, area)
	assert.InDelta(t, angle, back, 1e-9)

	backClamped := getAccuracyAngle(globe.NumFaces, 1.0)
	assert.InDelta(t, 25.841933, mathutil.RadsToDegs(backClamped), 1e-5)
}

// TestWedgeBoundaryMatchesVertexAndEdgeDistances checks the two Napier's-rule
// boundary functions against the icosahedron's independently known vertex
// and edge-midpoint angular/planar distances.
func TestWedgeBoundaryMatchesVertexAndEdgeDistances(t *testing.T) {
	ico := globe.NewIcosahedron()
	p := New(ico)

	// At the edge-midpoint direction (azEdge = 0) the angular radius is g0
	// itself and the planar radius is the inradius.
	assert.InDelta(t, p.g0, p.wedgeAngularRadius(0), 1e-12)
	assert.InDelta(t, faceInradiusNormalized, p.wedgePlanarRadius(0), 1e-12)

	// At the vertex direction (azEdge = vertexSpacingRads/2 = 60 degrees)
	// the angular radius is SmallG and the planar radius is the
	// circumradius.
	assert.InDelta(t, ico.SmallG(), p.wedgeAngularRadius(vertexSpacingRads/2.0), 1e-9)
	assert.InDelta(t, faceCircumradiusNormalized, p.wedgePlanarRadius(vertexSpacingRads/2.0), 1e-9)
}

// TestFoldToEdgeAzimuthIsSixFoldSymmetric checks that folding any azimuth
// into the fundamental wedge gives the same boundary distance as folding
// its mirror/rotation images - the symmetry the construction relies on to
// use the unfolded azimuth for the final (x, y).
func TestFoldToEdgeAzimuthIsSixFoldSymmetric(t *testing.T) {
	p := New(globe.NewIcosahedron())
	base := mathutil.DegsToRads(17.0)
	images := []float64{
		base,
		-base,
		base + vertexSpacingRads,
		-base + vertexSpacingRads,
		base + 2*vertexSpacingRads,
	}
	want := p.wedgeAngularRadius(p.foldToEdgeAzimuth(base))
	for _, az := range images {
		got := p.wedgeAngularRadius(p.foldToEdgeAzimuth(mathutil.PosAngleRads(az)))
		assert.InDelta(t, want, got, 1e-12, "azimuth image %v", az)
	}
}

// TestOneMinusCosIsStableForTinyAngles confirms the half-angle identity
// avoids the cancellation a direct 1-math.Cos would suffer for very small
// angles - the case the reference table's smallest row exercises.
func TestOneMinusCosIsStableForTinyAngles(t *testing.T) {
	tiny := mathutil.DegsToRads(1e-8)
	naive := 1.0 - math.Cos(tiny)
	stable := oneMinusCos(tiny)
	assert.Zero(t, naive, "direct subtraction is expected to underflow for this angle")
	assert.Greater(t, stable, 0.0)
}
