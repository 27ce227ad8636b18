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

// Package triface classifies a point on an icosahedron face as lying
// strictly inside the face, on one of its edges, or on one of its
// vertices (spec.md section 4.3's edge/vertex handling and section
// 4.6's cell-location classification for the hexagonal grid).
package triface

import (
	"math"

	"github.com/riskaware-ltd/open-eaggr-go/facecoord"
	"github.com/riskaware-ltd/open-eaggr-go/mathutil"
)

// Location is where, within a face, a point lies.
type Location int

const (
	// Interior: strictly inside the face, away from every edge.
	Interior Location = iota
	// Edge: on one of the face's three edges, away from its vertices.
	Edge
	// Vertex: on (or within tolerance of) one of the face's three
	// vertices.
	Vertex
)

func (l Location) String() string {
	switch l {
	case Interior:
		return "interior"
	case Edge:
		return "edge"
	case Vertex:
		return "vertex"
	default:
		return "unknown"
	}
}

// Triangle is a face's three vertices in face-local planar coordinates:
// vertex 0 straight up the +y axis, the other two spaced 120 degrees
// clockwise and counter-clockwise from it.
func Triangle() (v0, v1, v2 mathutil.Point2D) {
	const r = 1.0 / 1.7320508075688772 // 1/sqrt(3), circumradius of a unit-side triangle
	v0 = mathutil.Point2D{X: 0, Y: r}
	v1 = mathutil.Point2D{X: r * math.Sin(2*math.Pi/3), Y: r * math.Cos(2*math.Pi/3)}
	v2 = mathutil.Point2D{X: r * math.Sin(4*math.Pi/3), Y: r * math.Cos(4*math.Pi/3)}
	return
}

// Classify reports whether p (in face-local coordinates) lies at a vertex,
// on an edge, or strictly inside the face, using tolerance as the distance
// below which two points are considered coincident.
func Classify(p facecoord.CartesianPoint, tolerance float64) Location {
	v0, v1, v2 := Triangle()
	pt := mathutil.Point2D{X: p.X, Y: p.Y}

	for _, v := range []mathutil.Point2D{v0, v1, v2} {
		if pt.Dist(v) <= tolerance {
			return Vertex
		}
	}

	edges := [][2]mathutil.Point2D{{v0, v1}, {v1, v2}, {v2, v0}}
	for _, e := range edges {
		if mathutil.DistToSegment(pt, e[0], e[1]) <= tolerance {
			return Edge
		}
	}

	return Interior
}

// ToleranceForResolution returns a sensible coincidence tolerance, in
// face-local planar units, for classifying points produced at the given
// resolution: a small fraction of that resolution's cell spacing, so
// accumulated floating point error never misclassifies an interior point
// as being on an edge.
func ToleranceForResolution(cellSpacing float64) float64 {
	return cellSpacing * 1e-6
}
