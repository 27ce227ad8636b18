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
	"strconv"

	"github.com/riskaware-ltd/open-eaggr-go/dggserr"
	"github.com/riskaware-ltd/open-eaggr-go/facecoord"
)

// MaxHierarchicalDigits is the longest partition-digit string a
// HierarchicalCell identifier may carry (spec.md section 6).
const MaxHierarchicalDigits = 40

// hierarchicalFacePattern matches the two-digit face prefix of an ISEA4T
// identifier; the partition-digit tail is validated digit-by-digit (rather
// than by a single regexp) so an out-of-range digit or an over-length tail
// can be reported with the exact detail text spec.md section 8's scenarios
// 3 and 7 require, instead of a generic grammar-mismatch message.
var hierarchicalFacePattern = regexp.MustCompile(`^\d{2}`)

// HierarchicalCell is a cell in the aperture-4 triangular (ISEA4T) grid: a
// face plus a chain of partition digits, each one of four sub-triangles of
// its parent (spec.md section 4.5).
type HierarchicalCell struct {
	face        int
	digits      string
	orientation Orientation
	location    Location
	vertices    []facecoord.CartesianPoint
}

// NewHierarchicalCell validates and constructs a HierarchicalCell from its
// face index and partition-digit string. Orientation and Location are
// derived, not supplied, since they follow mechanically from face and
// digits; callers that already know a cell's boundary geometry (an
// indexer, typically) can set it afterwards with SetVertices.
func NewHierarchicalCell(face int, digits string) (*HierarchicalCell, error) {
	if face < 0 || face > facecoord.MaxFaceIndex {
		return nil, dggserr.New(dggserr.InvalidIdentifier, "face index %d is outside the range [0, %d]", face, facecoord.MaxFaceIndex)
	}
	if len(digits) > MaxHierarchicalDigits {
		return nil, dggserr.New(dggserr.InvalidIdentifier,
			"Cell ID exceeds maximum length (by %d characters)", len(digits)-MaxHierarchicalDigits)
	}
	for _, d := range digits {
		if d < '0' || d > '9' {
			return nil, dggserr.New(dggserr.InvalidIdentifier, "%q is not a valid ISEA4T cell identifier", digits)
		}
		if d > '3' {
			return nil, dggserr.New(dggserr.InvalidIdentifier,
				"Cell index, '%c', exceeds maximum (maximum = 3)", d)
		}
	}
	return &HierarchicalCell{
		face:        face,
		digits:      digits,
		orientation: orientationAfter(digits),
		// ISEA4T cells are always whole sub-triangles of a single face
		// (spec.md section 3): they never straddle a face edge or
		// vertex the way ISEA3H hexagons can.
		location: FaceLocation,
	}, nil
}

// ParseHierarchicalCell parses a cell identifier string produced by ID().
// Only the two-digit face prefix is grammar-checked here; the
// partition-digit tail's length and digit range are validated by
// NewHierarchicalCell so malformed identifiers raise the exact detail
// strings spec.md section 8 requires for over-length IDs (scenario 7) and
// out-of-range digits (scenario 3).
func ParseHierarchicalCell(id string) (*HierarchicalCell, error) {
	if !hierarchicalFacePattern.MatchString(id) {
		return nil, dggserr.New(dggserr.InvalidIdentifier, "%q is not a valid ISEA4T cell identifier", id)
	}
	face, err := strconv.Atoi(id[:2])
	if err != nil {
		return nil, dggserr.Wrap(err, dggserr.InvalidIdentifier, "parsing face index from %q", id)
	}
	return NewHierarchicalCell(face, id[2:])
}

// orientationAfter computes the orientation resulting from a chain of
// aperture-4 partitions: digit 0 selects the central, rotated
// sub-triangle, flipping orientation; digits 1-3 select a corner
// sub-triangle, which keeps its parent's orientation.
func orientationAfter(digits string) Orientation {
	flips := 0
	for _, d := range digits {
		if d == '0' {
			flips++
		}
	}
	if flips%2 == 1 {
		return Rotated
	}
	return Standard
}

func (c *HierarchicalCell) ID() string {
	return fmt.Sprintf("%02d%s", c.face, c.digits)
}

func (c *HierarchicalCell) FaceIndex() int { return c.face }

func (c *HierarchicalCell) Resolution() int { return len(c.digits) }

// Digits returns the partition-digit string (resolution 0 has an empty
// string - the whole face).
func (c *HierarchicalCell) Digits() string { return c.digits }

func (c *HierarchicalCell) CellOrientation() Orientation { return c.orientation }

func (c *HierarchicalCell) CellLocation() Location { return c.location }

// SetLocation records where on the icosahedron this cell sits, as
// determined by an indexer during construction.
func (c *HierarchicalCell) SetLocation(l Location) { c.location = l }

func (c *HierarchicalCell) Vertices() []facecoord.CartesianPoint { return c.vertices }

// SetVertices records the cell's boundary, as computed by an indexer.
func (c *HierarchicalCell) SetVertices(v []facecoord.CartesianPoint) { c.vertices = v }

// Parent returns the cell one resolution up (the parent triangle this cell
// was partitioned from), or an error if this cell is already a face (no
// parent to return to).
func (c *HierarchicalCell) Parent() (*HierarchicalCell, error) {
	if len(c.digits) == 0 {
		return nil, dggserr.New(dggserr.RangeOverflow, "cell %q is already a face; it has no parent", c.ID())
	}
	return NewHierarchicalCell(c.face, c.digits[:len(c.digits)-1])
}

// Child returns the sub-triangle of this cell selected by the given
// partition digit (0-3).
func (c *HierarchicalCell) Child(digit byte) (*HierarchicalCell, error) {
	if digit > '3' || digit < '0' {
		return nil, dggserr.New(dggserr.BadInput, "partition digit %q is not in the range [0, 3]", digit)
	}
	return NewHierarchicalCell(c.face, c.digits+string(digit))
}

func (c *HierarchicalCell) isCell() {}
