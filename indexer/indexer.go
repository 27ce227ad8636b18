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

// Package indexer defines the common grid-indexer contract that the
// ISEA4T and ISEA3H packages each implement (spec.md sections 4.5 and
// 4.6), so the facade package can drive either grid through one interface.
package indexer

import (
	"github.com/riskaware-ltd/open-eaggr-go/cell"
	"github.com/riskaware-ltd/open-eaggr-go/facecoord"
)

// Indexer is the set of operations a grid family (ISEA4T or ISEA3H)
// provides over its own cell type.
type Indexer interface {
	// CreateCell parses and validates a cell identifier string, returning
	// the cell it names.
	CreateCell(id string) (cell.Cell, error)

	// GetCell returns the cell on fc.FaceIndex that contains fc, at the
	// resolution fc.Accuracy implies (spec.md sections 4.5/4.6's
	// accuracy-to-resolution mapping).
	GetCell(fc facecoord.FaceCoordinate) (cell.Cell, error)

	// GetFaceCoordinate returns the face-local planar position of c's
	// centre, with Accuracy set to c's relative cell area.
	GetFaceCoordinate(c cell.Cell) (facecoord.FaceCoordinate, error)

	// GetParents returns the one or more cells that c is a part of one
	// resolution up - more than one only at a hexagonal grid's
	// resolution-parity boundaries (spec.md section 4.6).
	GetParents(c cell.Cell) ([]cell.Cell, error)

	// GetChildren returns the cells c partitions into one resolution down.
	GetChildren(c cell.Cell) ([]cell.Cell, error)

	// GetVertices returns c's boundary, in face-local planar coordinates,
	// wound counter-clockwise.
	GetVertices(c cell.Cell) ([]facecoord.CartesianPoint, error)

	// Aperture is the number of children one partition produces (4 for
	// ISEA4T, 3 for ISEA3H in area terms though each cell has 6 neighbours
	// feeding 7 children - see the isea3h package for the area accounting).
	Aperture() int

	// MaxResolution is the deepest resolution this grid supports.
	MaxResolution() int
}
