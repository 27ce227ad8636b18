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

package mathutil

import "math"

// Point2D is a dimensionless planar point. Both the triangular and hexagonal
// grids use this as their working coordinate: the icosahedron face has side
// length 1, face centre at the origin, with vertex 0 directly "up".
type Point2D struct {
	X float64
	Y float64
}

// Sub returns p - q.
func (p Point2D) Sub(q Point2D) Point2D { return Point2D{p.X - q.X, p.Y - q.Y} }

// Add returns p + q.
func (p Point2D) Add(q Point2D) Point2D { return Point2D{p.X + q.X, p.Y + q.Y} }

// Scale returns p scaled by s.
func (p Point2D) Scale(s float64) Point2D { return Point2D{p.X * s, p.Y * s} }

// Magnitude returns the Euclidean length of p treated as a vector from the
// origin.
func (p Point2D) Magnitude() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Dist returns the distance between p and q.
func (p Point2D) Dist(q Point2D) float64 {
	return p.Sub(q).Magnitude()
}

// SignedArea2 returns twice the signed area of the triangle (a, b, c).
// Positive when a, b, c are wound counter-clockwise.
func SignedArea2(a, b, c Point2D) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y)
}

// PointInTriangle reports whether p lies inside or on the boundary of the
// triangle (a, b, c), using the sign of the three sub-triangle areas. The
// triangle's winding order does not matter.
func PointInTriangle(p, a, b, c Point2D) bool {
	d1 := SignedArea2(p, a, b)
	d2 := SignedArea2(p, b, c)
	d3 := SignedArea2(p, c, a)

	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0

	return !(hasNeg && hasPos)
}

// DistToSegment returns the shortest distance from p to the line segment ab.
func DistToSegment(p, a, b Point2D) float64 {
	ab := b.Sub(a)
	abLen2 := ab.X*ab.X + ab.Y*ab.Y
	if abLen2 == 0 {
		return p.Dist(a)
	}
	ap := p.Sub(a)
	t := (ap.X*ab.X + ap.Y*ab.Y) / abLen2
	t = Clamp(t, 0, 1)
	closest := a.Add(ab.Scale(t))
	return p.Dist(closest)
}

// ResolutionFromAccuracy implements the accuracy->resolution mapping shared
// by both grids (spec.md 4.5 and 4.6): resolution = round(log(faceArea /
// accuracy) / log(aperture)), clamped to [0, maxRes]. accuracy and faceArea
// must be in the same unit, never m^2 - the grids pass both in face-local
// area units (a whole face is projection.FaceAreaNormalized), as converted
// through the projection.
func ResolutionFromAccuracy(faceArea, accuracy float64, aperture int, maxRes int) int {
	if accuracy <= 0 {
		return maxRes
	}
	ratio := faceArea / accuracy
	if ratio <= 1 {
		return 0
	}
	res := math.Round(math.Log(ratio) / math.Log(float64(aperture)))
	return int(Clamp(res, 0, float64(maxRes)))
}

// AccuracyFromResolution is the inverse of ResolutionFromAccuracy: the
// relative area of a cell at the given resolution, cellArea = faceArea /
// aperture^res.
func AccuracyFromResolution(faceArea float64, aperture int, res int) float64 {
	return faceArea / float64(IPow(aperture, res))
}
