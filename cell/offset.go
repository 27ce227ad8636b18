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

package cell

import (
	"fmt"
	"regexp"

	"github.com/riskaware-ltd/open-eaggr-go/dggserr"
	"github.com/riskaware-ltd/open-eaggr-go/facecoord"
	"github.com/riskaware-ltd/open-eaggr-go/internal/strconvx"
)

// MaxOffsetResolution is the largest resolution an OffsetCell may carry
// (spec.md section 3, invariant 2: resolution <= 40 always). The grammar's
// two-digit resolution field (spec.md section 6) could hold up to 99, but
// the data model caps it at 40 regardless of field width.
const MaxOffsetResolution = 40

// offsetIDPattern is the ISEA3H identifier grammar: a two-digit face index,
// a two-digit resolution, then a signed row and signed column separated by
// a comma.
var offsetIDPattern = regexp.MustCompile(`^(\d{2})(\d{2})(-?\d+),(-?\d+)$`)

// OffsetCell is a cell in the aperture-3 hexagonal (ISEA3H) grid: a face, a
// resolution, and a row/column pair in that resolution's offset coordinate
// system (spec.md section 4.6).
type OffsetCell struct {
	face       int
	resolution int
	row        int64
	col        int64
	location   Location
	vertices   []facecoord.CartesianPoint
}

// NewOffsetCell validates and constructs an OffsetCell.
func NewOffsetCell(face, resolution int, row, col int64) (*OffsetCell, error) {
	if face < 0 || face > facecoord.MaxFaceIndex {
		return nil, dggserr.New(dggserr.InvalidIdentifier, "face index %d is outside the range [0, %d]", face, facecoord.MaxFaceIndex)
	}
	if resolution < 0 || resolution > MaxOffsetResolution {
		return nil, dggserr.New(dggserr.InvalidIdentifier, "resolution %d is outside the range [0, %d]", resolution, MaxOffsetResolution)
	}
	return &OffsetCell{face: face, resolution: resolution, row: row, col: col, location: UnknownLocation}, nil
}

// ParseOffsetCell parses a cell identifier string produced by ID().
func ParseOffsetCell(id string) (*OffsetCell, error) {
	m := offsetIDPattern.FindStringSubmatch(id)
	if m == nil {
		return nil, dggserr.New(dggserr.InvalidIdentifier, "%q is not a valid ISEA3H cell identifier", id)
	}
	face, faceRes := strconvx.ToInt64(m[1])
	resolution, resRes := strconvx.ToInt64(m[2])
	row, rowRes := strconvx.ToInt64(m[3])
	col, colRes := strconvx.ToInt64(m[4])
	if faceRes != strconvx.ConversionSuccessful || resRes != strconvx.ConversionSuccessful {
		return nil, dggserr.New(dggserr.InvalidIdentifier, "%q has a malformed face or resolution field", id)
	}
	if rowRes == strconvx.ConversionOutOfRange || colRes == strconvx.ConversionOutOfRange {
		return nil, dggserr.New(dggserr.RangeOverflow, "%q has a row or column value that overflows a 64-bit integer", id)
	}
	if rowRes != strconvx.ConversionSuccessful || colRes != strconvx.ConversionSuccessful {
		return nil, dggserr.New(dggserr.InvalidIdentifier, "%q has a malformed row or column field", id)
	}
	return NewOffsetCell(int(face), int(resolution), row, col)
}

func (c *OffsetCell) ID() string {
	return fmt.Sprintf("%02d%02d%d,%d", c.face, c.resolution, c.row, c.col)
}

func (c *OffsetCell) FaceIndex() int { return c.face }

func (c *OffsetCell) Resolution() int { return c.resolution }

// Row is the cell's row in its resolution's offset coordinate system.
func (c *OffsetCell) Row() int64 { return c.row }

// Col is the cell's column in its resolution's offset coordinate system.
func (c *OffsetCell) Col() int64 { return c.col }

// CellOrientation reports Standard for even resolutions and Rotated for
// odd ones: the hexagonal grid's rows alternate between a
// horizontally-packed and a vertically-packed arrangement from one
// resolution to the next (spec.md section 4.6).
func (c *OffsetCell) CellOrientation() Orientation {
	if c.resolution%2 == 1 {
		return Rotated
	}
	return Standard
}

func (c *OffsetCell) CellLocation() Location { return c.location }

// SetLocation records where on the icosahedron this cell sits, as
// determined by an indexer during construction.
func (c *OffsetCell) SetLocation(l Location) { c.location = l }

func (c *OffsetCell) Vertices() []facecoord.CartesianPoint { return c.vertices }

// SetVertices records the cell's boundary, as computed by an indexer.
func (c *OffsetCell) SetVertices(v []facecoord.CartesianPoint) { c.vertices = v }

func (c *OffsetCell) isCell() {}
