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

// Package cell holds the two concrete cell identifier types (spec.md
// section 3): HierarchicalCell for the ISEA4T triangular grid and
// OffsetCell for the ISEA3H hexagonal grid, both implementing the shared
// Cell interface.
package cell

import "github.com/riskaware-ltd/open-eaggr-go/facecoord"

// Orientation is whether a cell's local +y axis points the same way as its
// face's ("standard"), or has been flipped 180 degrees by an odd number of
// central aperture-4 partitions ("rotated").
type Orientation int

const (
	// Standard: the cell's local +y axis agrees with its face's.
	Standard Orientation = iota
	// Rotated: the cell's local +y axis is flipped relative to its face's.
	Rotated
)

func (o Orientation) String() string {
	if o == Rotated {
		return "rotated"
	}
	return "standard"
}

// Location is where on the icosahedron a cell sits.
type Location int

const (
	// FaceLocation: the cell lies entirely within one face's interior.
	FaceLocation Location = iota
	// EdgeLocation: the cell straddles an edge shared by two faces.
	EdgeLocation
	// VertexLocation: the cell surrounds a vertex shared by five faces.
	VertexLocation
	// UnknownLocation: location has not been determined (what
	// NewOffsetCell sets; the zero value of Location is FaceLocation).
	UnknownLocation
)

func (l Location) String() string {
	switch l {
	case FaceLocation:
		return "face"
	case EdgeLocation:
		return "edge"
	case VertexLocation:
		return "vertex"
	default:
		return "unknown"
	}
}

// Cell is a single cell in either grid. It is a closed sum type: the only
// implementations are *HierarchicalCell and *OffsetCell, enforced by the
// unexported marker method.
type Cell interface {
	// ID is the cell's identifier string (spec.md section 6).
	ID() string
	// FaceIndex is the icosahedron face (0-19) the cell belongs to.
	FaceIndex() int
	// Resolution is the cell's depth in its grid's hierarchy.
	Resolution() int
	// CellOrientation is the cell's local axis orientation relative to its
	// face.
	CellOrientation() Orientation
	// CellLocation is where on the icosahedron the cell sits.
	CellLocation() Location
	// Vertices returns the cell's boundary vertices in face-local planar
	// coordinates, wound counter-clockwise.
	Vertices() []facecoord.CartesianPoint

	isCell()
}
