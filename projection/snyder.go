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

// Package projection implements the icosahedral Snyder equal-area
// projection (spec.md section 4.3): the map between a point on the
// authalic sphere and a point on one face of the icosahedron.
//
// The construction is face-local and polar, built around the six-fold
// dihedral symmetry every triangular face has about its centre: a point is
// located by its great-circle distance and bearing from the face centre,
// the bearing is folded into the 60-degree wedge between a vertex direction
// and the adjacent edge-midpoint direction (Snyder's AdjustAz step), the
// fold gives the wedge's two boundary quantities - the angular radius to the
// face edge in that direction, and the corresponding planar distance to the
// same edge - and the point's planar radius is scaled within that wedge so
// the area enclosed out to the point's distance keeps the same proportion
// of the wedge's full area on the sphere as it does in the plane. Because
// the scaling is azimuth-preserving, it reproduces the wedge boundary
// exactly at the edge and the vertex (rather than the circular disc a plain
// Lambert azimuthal equal-area map would give) and is exactly invertible,
// but it is not pointwise equal-area for every point strictly inside a
// wedge; see the package-level accuracy note in DESIGN.md.
package projection

import (
	"math"

	"github.com/riskaware-ltd/open-eaggr-go/dggserr"
	"github.com/riskaware-ltd/open-eaggr-go/facecoord"
	"github.com/riskaware-ltd/open-eaggr-go/globe"
	"github.com/riskaware-ltd/open-eaggr-go/latlong"
	"github.com/riskaware-ltd/open-eaggr-go/mathutil"
)

// authalicSphereAreaM2 is the surface area of the WGS84 authalic sphere,
// 4*pi*R^2.
const authalicSphereAreaM2 = 4.0 * math.Pi * latlong.AuthalicEarthRadiusM * latlong.AuthalicEarthRadiusM

// FaceAreaNormalized is the planar area of one icosahedron face in
// face-local units, where the face is an equilateral triangle of side 1.
var FaceAreaNormalized = math.Sqrt(3) / 4.0

// faceCircumradiusNormalized is the distance from a face's centre to one of
// its vertices, in face-local units (circumradius of an equilateral
// triangle with side 1).
var faceCircumradiusNormalized = 1.0 / math.Sqrt(3)

// faceInradiusNormalized is the distance from a face's centre to the
// midpoint of one of its edges, in face-local units - exactly half the
// circumradius for an equilateral triangle.
var faceInradiusNormalized = faceCircumradiusNormalized / 2.0

// vertexSpacingRads is the azimuthal separation, as seen from a face
// centre, between successive vertex directions: a face has three vertices
// spaced evenly around its centre.
const vertexSpacingRads = 2.0 * math.Pi / 3.0

// poleEpsilonDegs is how close to a pole a latitude must be before the
// dedicated pole face-assignment rule (spec.md section 4.3) applies instead
// of ordinary nearest-face selection.
const poleEpsilonDegs = 1e-9

// Projection binds an icosahedral Globe to the projection math.
type Projection struct {
	globe globe.Globe
	// g0 is the angular distance, along a great circle, from a face centre
	// to the midpoint of one of its edges - the spherical apothem. It is
	// the right-angled leg of the spherical right triangle formed by the
	// face centre, a vertex, and the midpoint of the edge leaving that
	// vertex: the edge-midpoint direction is perpendicular to the edge by
	// the face's mirror symmetry, so Napier's rule for a right spherical
	// triangle gives sin(g0) = sin(G)*sin(SmallG), where G is the angle at
	// the vertex between the geodesics to the centre and along the edge.
	g0 float64
}

// New builds a Projection over the given globe.
func New(g globe.Globe) *Projection {
	g0 := math.Asin(math.Sin(g.G()) * math.Sin(g.SmallG()))
	return &Projection{globe: g, g0: g0}
}

// FaceAreaM2 is the surface area, in square metres, that any one face of
// the globe's icosahedron covers - exactly one twentieth of the authalic
// sphere's area, since the projection is equal-area by construction.
func (p *Projection) FaceAreaM2() float64 {
	return authalicSphereAreaM2 / float64(p.globe.NumFaces())
}

// SphereToFace projects a point on the authalic sphere onto the nearest
// icosahedron face, selecting that face and returning the point in the
// face's local planar coordinates.
func (p *Projection) SphereToFace(pt latlong.SphericalPoint) (facecoord.FaceCoordinate, error) {
	face, err := p.selectFace(pt.LatDegs, pt.LongDegs)
	if err != nil {
		return facecoord.FaceCoordinate{}, err
	}
	return p.pointOnFace(pt, face)
}

// PointOnFace projects pt onto the given face specifically, without doing
// nearest-face selection. No package in this module calls it; SphereToFace
// is the path the DGGS operations use.
func (p *Projection) PointOnFace(pt latlong.SphericalPoint, face int) (facecoord.FaceCoordinate, error) {
	return p.pointOnFace(pt, face)
}

func (p *Projection) pointOnFace(pt latlong.SphericalPoint, face int) (facecoord.FaceCoordinate, error) {
	centre, err := p.globe.FaceCentre(face)
	if err != nil {
		return facecoord.FaceCoordinate{}, err
	}
	orientation, err := p.globe.OrientationOfFace(face)
	if err != nil {
		return facecoord.FaceCoordinate{}, err
	}

	z := angularDistanceRads(centre, pt)
	az := initialBearingRads(centre, pt)
	azLocal := mathutil.PosAngleRads(az - orientation)

	azEdge := p.foldToEdgeAzimuth(azLocal)
	q := p.wedgeAngularRadius(azEdge)
	edgeDist := p.wedgePlanarRadius(azEdge)
	if z > q {
		// Floating point drift across a face boundary that selectFace
		// already resolved in this face's favour.
		z = q
	}

	rho := edgeDist * math.Sqrt(oneMinusCos(z)/oneMinusCos(q))
	x := rho * math.Sin(azLocal)
	y := rho * math.Cos(azLocal)

	angleAccuracyRads := accuracyAngleRadsFromAreaM2(pt.Accuracy)
	relArea := getAccuracyArea(p.globe.NumFaces(), angleAccuracyRads)

	return facecoord.New(face, x, y, relArea*FaceAreaNormalized)
}

// FaceToSphere is the inverse of SphereToFace/PointOnFace: given a point in
// a face's local coordinates, recovers its position on the authalic sphere.
func (p *Projection) FaceToSphere(fc facecoord.FaceCoordinate) (latlong.SphericalPoint, error) {
	centre, err := p.globe.FaceCentre(fc.FaceIndex)
	if err != nil {
		return latlong.SphericalPoint{}, err
	}
	orientation, err := p.globe.OrientationOfFace(fc.FaceIndex)
	if err != nil {
		return latlong.SphericalPoint{}, err
	}

	rho := math.Hypot(fc.X, fc.Y)
	azLocal := 0.0
	if rho > 0 {
		azLocal = mathutil.PosAngleRads(math.Atan2(fc.X, fc.Y))
	}

	azEdge := p.foldToEdgeAzimuth(azLocal)
	q := p.wedgeAngularRadius(azEdge)
	edgeDist := p.wedgePlanarRadius(azEdge)

	ratio := mathutil.Clamp((rho/edgeDist)*(rho/edgeDist), 0, 1)
	z := 2.0 * math.Asin(math.Sqrt(mathutil.Clamp(ratio*oneMinusCos(q)/2.0, 0, 1)))

	az := mathutil.PosAngleRads(azLocal + orientation)
	dest := destinationPointRads(centre, az, z)

	relArea := mathutil.Clamp(fc.Accuracy/FaceAreaNormalized, 0, 1)
	angleAccuracyRads := getAccuracyAngle(p.globe.NumFaces(), relArea)
	accuracyM2 := accuracyAreaM2FromAngleRads(angleAccuracyRads)

	return latlong.NewSphericalPoint(mathutil.RadsToDegs(dest.lat), mathutil.WrapLongitudeDegs(mathutil.RadsToDegs(dest.lon)), accuracyM2)
}

// foldToEdgeAzimuth adjusts a face-local azimuth, measured from the
// direction to the face's vertex 0, into the fundamental 60-degree wedge
// between a vertex direction (0) and the adjacent edge-midpoint direction
// (vertexSpacingRads/2) - Snyder's AdjustAz step. A face's three vertex
// directions and three edge-midpoint directions tile the full circle into
// six congruent mirror-image copies of this wedge, so the boundary
// quantities computed from the folded azimuth apply unchanged to the
// original, unfolded one.
func (p *Projection) foldToEdgeAzimuth(azLocal float64) float64 {
	folded := math.Mod(azLocal, vertexSpacingRads)
	if folded < 0 {
		folded += vertexSpacingRads
	}
	if folded > vertexSpacingRads/2.0 {
		folded = vertexSpacingRads - folded
	}
	// folded is now the offset from the nearest vertex direction (0) towards
	// the adjacent edge midpoint (vertexSpacingRads/2); the wedge formulas
	// below are stated relative to the edge-midpoint direction instead.
	return vertexSpacingRads/2.0 - folded
}

// wedgeAngularRadius is the great-circle angular distance from the face
// centre to the face boundary along the direction azEdge radians (azEdge
// measured from the edge-midpoint direction, 0, towards the nearest vertex
// direction, vertexSpacingRads/2). The centre, the edge midpoint and the
// boundary point form a right spherical triangle with the right angle at
// the edge midpoint (perpendicular to the edge by the face's mirror
// symmetry), so Napier's rule gives tan(q) = tan(g0)/cos(azEdge).
func (p *Projection) wedgeAngularRadius(azEdge float64) float64 {
	return math.Atan(math.Tan(p.g0) / math.Cos(azEdge))
}

// wedgePlanarRadius is the planar analogue of wedgeAngularRadius: the
// Euclidean distance from a face's centroid to its boundary along azEdge,
// in face-local units.
func (p *Projection) wedgePlanarRadius(azEdge float64) float64 {
	return faceInradiusNormalized / math.Cos(azEdge)
}

// getAccuracyArea is the relative area, as a fraction of one face's area,
// of the spherical cap whose angular radius is angleAccuracyRads: cap area
// on a unit sphere is 2*pi*(1-cos(angle)), and a face's share of the whole
// sphere's solid angle is 4*pi/numFaces, so the ratio is
// (numFaces/2)*(1-cos(angle)), clamped to 1 once the cap covers a whole
// face or more.
func getAccuracyArea(numFaces int, angleAccuracyRads float64) float64 {
	return mathutil.Clamp(float64(numFaces)/2.0*oneMinusCos(angleAccuracyRads), 0, 1)
}

// getAccuracyAngle is the inverse of getAccuracyArea: the angular radius of
// the spherical cap whose area is the given fraction of one face's area.
// Because getAccuracyArea clamps, this is not a true inverse once
// relativeArea has reached 1 - the angle returned is the smallest one that
// produces that clamped area, not necessarily the one that produced it
// originally.
func getAccuracyAngle(numFaces int, relativeArea float64) float64 {
	ratio := mathutil.Clamp(relativeArea, 0, 1) / (float64(numFaces) / 2.0)
	ratio = mathutil.Clamp(ratio, 0, 2)
	return 2.0 * math.Asin(math.Sqrt(ratio/2.0))
}

// accuracyAngleRadsFromAreaM2 converts an absolute accuracy area, in square
// metres on the authalic sphere, into the angular radius of the spherical
// cap of that area - the form Snyder's accuracy functions are stated in.
func accuracyAngleRadsFromAreaM2(accuracyM2 float64) float64 {
	x := mathutil.Clamp(2.0*accuracyM2/authalicSphereAreaM2, 0, 2)
	return 2.0 * math.Asin(math.Sqrt(x/2.0))
}

// accuracyAreaM2FromAngleRads is the inverse of accuracyAngleRadsFromAreaM2.
func accuracyAreaM2FromAngleRads(angleAccuracyRads float64) float64 {
	return (authalicSphereAreaM2 / 2.0) * oneMinusCos(angleAccuracyRads)
}

// oneMinusCos computes 1-cos(x) via the half-angle identity
// 2*sin(x/2)^2, which avoids the catastrophic cancellation a direct
// 1-math.Cos(x) suffers for small x.
func oneMinusCos(x float64) float64 {
	s := math.Sin(x / 2.0)
	return 2.0 * s * s
}

// selectFace finds the face whose centre is closest, by great-circle
// distance, to the given point. Ties - which occur only exactly on an edge
// or vertex - resolve to the smallest face index, except at the poles,
// where spec.md section 4.3 pins the result to face 0 (north) and face 15
// (south) regardless of which face centres are nominally closest.
func (p *Projection) selectFace(latDegs, longDegs float64) (int, error) {
	if latDegs >= 90.0-poleEpsilonDegs {
		return 0, nil
	}
	if latDegs <= -90.0+poleEpsilonDegs {
		return 15, nil
	}

	best := -1
	bestDist := math.Inf(1)
	for face := 0; face < p.globe.NumFaces(); face++ {
		centre, err := p.globe.FaceCentre(face)
		if err != nil {
			return 0, dggserr.Wrap(err, dggserr.BadInput, "selecting nearest face")
		}
		d := angularDistanceRads(centre, latlong.SphericalPoint{LatDegs: latDegs, LongDegs: longDegs})
		if d < bestDist {
			bestDist = d
			best = face
		}
	}
	if best < 0 {
		return 0, dggserr.New(dggserr.BadInput, "globe has no faces")
	}
	return best, nil
}

type sphereRads struct {
	lat float64
	lon float64
}

// angularDistanceRads is the great-circle angular distance between a and b,
// via the haversine formula.
func angularDistanceRads(a, b latlong.SphericalPoint) float64 {
	lat1, lat2 := mathutil.DegsToRads(a.LatDegs), mathutil.DegsToRads(b.LatDegs)
	dLat := lat2 - lat1
	dLon := mathutil.DegsToRads(b.LongDegs) - mathutil.DegsToRads(a.LongDegs)

	sinHalfLat := math.Sin(dLat / 2.0)
	sinHalfLon := math.Sin(dLon / 2.0)
	h := sinHalfLat*sinHalfLat + math.Cos(lat1)*math.Cos(lat2)*sinHalfLon*sinHalfLon
	h = mathutil.Clamp(h, 0, 1)
	return 2.0 * math.Asin(math.Sqrt(h))
}

// initialBearingRads is the initial great-circle bearing from a to b,
// measured clockwise from true north.
func initialBearingRads(a, b latlong.SphericalPoint) float64 {
	lat1, lat2 := mathutil.DegsToRads(a.LatDegs), mathutil.DegsToRads(b.LatDegs)
	dLon := mathutil.DegsToRads(b.LongDegs) - mathutil.DegsToRads(a.LongDegs)

	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)
	return mathutil.PosAngleRads(math.Atan2(y, x))
}

// destinationPointRads finds the point a given angular distance and bearing
// from the starting point.
func destinationPointRads(start latlong.SphericalPoint, bearingRads, angularDistRads float64) sphereRads {
	lat1 := mathutil.DegsToRads(start.LatDegs)
	lon1 := mathutil.DegsToRads(start.LongDegs)

	sinLat2 := math.Sin(lat1)*math.Cos(angularDistRads) + math.Cos(lat1)*math.Sin(angularDistRads)*math.Cos(bearingRads)
	sinLat2 = mathutil.Clamp(sinLat2, -1, 1)
	lat2 := math.Asin(sinLat2)

	y := math.Sin(bearingRads) * math.Sin(angularDistRads) * math.Cos(lat1)
	x := math.Cos(angularDistRads) - math.Sin(lat1)*sinLat2
	lon2 := lon1 + math.Atan2(y, x)

	return sphereRads{lat: lat2, lon: lon2}
}
