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

// Package facecoord holds FaceCoordinate, the planar point-on-a-face type
// that sits between the projection and the two grid indexers (spec.md
// section 3), plus the plain CartesianPoint type used for cell vertices.
package facecoord

import "github.com/riskaware-ltd/open-eaggr-go/dggserr"

// MaxFaceIndex is the highest valid icosahedron face index (20 faces,
// numbered 0-19).
const MaxFaceIndex = 19

// FaceCoordinate is a point on a specific icosahedron face in local planar
// coordinates, with an associated area uncertainty. Accuracy is a plain
// float64 in face-local area units: the share of the face covered by the
// uncertainty cap, multiplied by the face's own planar area
// (projection.FaceAreaNormalized, sqrt(3)/4 for a unit-side triangle). It is
// therefore not a fraction in [0, 1]; a whole face is sqrt(3)/4.
type FaceCoordinate struct {
	FaceIndex int
	X         float64
	Y         float64
	Accuracy  float64 // area in face-local units; a whole face is sqrt(3)/4
}

// New validates and constructs a FaceCoordinate. Accuracy must be
// non-negative; face index range is the caller's responsibility since it is
// usually derived from a table lookup that cannot itself be out of range.
func New(faceIndex int, x, y, accuracy float64) (FaceCoordinate, error) {
	if accuracy < 0.0 {
		return FaceCoordinate{}, dggserr.New(dggserr.InvalidCoordinate,
			"accuracy %g cannot be negative", accuracy)
	}
	return FaceCoordinate{FaceIndex: faceIndex, X: x, Y: y, Accuracy: accuracy}, nil
}

// Point returns the (x, y) pair as a CartesianPoint.
func (f FaceCoordinate) Point() CartesianPoint {
	return CartesianPoint{X: f.X, Y: f.Y}
}

// CartesianPoint is a dimensionless planar (x, y) pair, normalized so an
// icosahedron face has side length 1.
type CartesianPoint struct {
	X float64
	Y float64
}
