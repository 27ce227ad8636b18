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

// Package eaggr is the facade over the whole library (spec.md section
// 4.4): one DGGS type binds a polyhedral globe, a Snyder projection, and a
// grid indexer (either ISEA4T or ISEA3H) behind a single set of
// point/cell operations.
package eaggr

import (
	"github.com/riskaware-ltd/open-eaggr-go/cell"
	"github.com/riskaware-ltd/open-eaggr-go/dggserr"
	"github.com/riskaware-ltd/open-eaggr-go/facecoord"
	"github.com/riskaware-ltd/open-eaggr-go/globe"
	"github.com/riskaware-ltd/open-eaggr-go/indexer"
	"github.com/riskaware-ltd/open-eaggr-go/isea3h"
	"github.com/riskaware-ltd/open-eaggr-go/isea4t"
	"github.com/riskaware-ltd/open-eaggr-go/latlong"
	"github.com/riskaware-ltd/open-eaggr-go/projection"
)

// fcFromCartesian wraps a bare planar point as a FaceCoordinate with zero
// accuracy, for projecting a cell's boundary vertices - they have no
// uncertainty region of their own.
func fcFromCartesian(face int, p facecoord.CartesianPoint) (facecoord.FaceCoordinate, error) {
	return facecoord.New(face, p.X, p.Y, 0)
}

// GridKind selects which grid family a DGGS operates over.
type GridKind int

const (
	// ISEA4T: the aperture-4 triangular grid.
	ISEA4T GridKind = iota
	// ISEA3H: the aperture-3 hexagonal grid.
	ISEA3H
)

func (k GridKind) String() string {
	if k == ISEA3H {
		return "ISEA3H"
	}
	return "ISEA4T"
}

// DGGS is a discrete global grid system: a globe and projection shared by
// both grid families, paired with the indexer for one specific grid.
type DGGS struct {
	kind       GridKind
	globe      globe.Globe
	projection *projection.Projection
	indexer    indexer.Indexer
	converter  *latlong.Converter
}

// NewISEA4T builds a DGGS over the aperture-4 triangular grid.
func NewISEA4T() *DGGS {
	ico := globe.NewIcosahedron()
	return &DGGS{
		kind:       ISEA4T,
		globe:      ico,
		projection: projection.New(ico),
		indexer:    isea4t.NewGrid(),
		converter:  latlong.NewConverter(),
	}
}

// NewISEA3H builds a DGGS over the aperture-3 hexagonal grid.
func NewISEA3H() *DGGS {
	ico := globe.NewIcosahedron()
	return &DGGS{
		kind:       ISEA3H,
		globe:      ico,
		projection: projection.New(ico),
		indexer:    isea3h.NewGrid(),
		converter:  latlong.NewConverter(),
	}
}

// New builds a DGGS over the requested grid.
func New(kind GridKind) *DGGS {
	if kind == ISEA3H {
		return NewISEA3H()
	}
	return NewISEA4T()
}

// Kind reports which grid this DGGS operates over.
func (d *DGGS) Kind() GridKind { return d.kind }

// CreateCell parses a cell identifier string, validating it against this
// DGGS's grid.
func (d *DGGS) CreateCell(id string) (cell.Cell, error) {
	return d.indexer.CreateCell(id)
}

// PointToCell converts a WGS84 point to the cell that contains it, at the
// resolution implied by the point's accuracy (spec.md section 4.4).
func (d *DGGS) PointToCell(p latlong.Wgs84Point) (cell.Cell, error) {
	sp, err := d.converter.ToSphere(p)
	if err != nil {
		return nil, err
	}
	fc, err := d.projection.SphereToFace(sp)
	if err != nil {
		return nil, err
	}
	return d.indexer.GetCell(fc)
}

// CellToPoint converts a cell to the WGS84 location of its centre, with
// accuracy set to the cell's area.
func (d *DGGS) CellToPoint(c cell.Cell) (latlong.Wgs84Point, error) {
	fc, err := d.indexer.GetFaceCoordinate(c)
	if err != nil {
		return latlong.Wgs84Point{}, err
	}
	sp, err := d.projection.FaceToSphere(fc)
	if err != nil {
		return latlong.Wgs84Point{}, err
	}
	return d.converter.ToWgs(sp)
}

// Parents returns the cell(s) that c is nested within, one resolution up.
func (d *DGGS) Parents(c cell.Cell) ([]cell.Cell, error) {
	return d.indexer.GetParents(c)
}

// Children returns the cells c partitions into, one resolution down.
func (d *DGGS) Children(c cell.Cell) ([]cell.Cell, error) {
	return d.indexer.GetChildren(c)
}

// Siblings returns the set of cells that share a parent with c, excluding
// c itself, de-duplicated by identifier while preserving the order each
// identifier was first produced in - ported from the original
// implementation's DGGS::GetSiblings (spec.md section 9), which walks
// every parent's children and drops the input cell by identifier equality
// rather than relying on a geometric neighbour search.
func (d *DGGS) Siblings(c cell.Cell) ([]cell.Cell, error) {
	parents, err := d.indexer.GetParents(c)
	if err != nil {
		return nil, err
	}

	selfID := c.ID()
	seen := make([]string, 0, len(parents)*4)
	result := make([]cell.Cell, 0, len(parents)*4)
	contains := func(id string) bool {
		for _, s := range seen {
			if s == id {
				return true
			}
		}
		return false
	}

	for _, parent := range parents {
		children, err := d.indexer.GetChildren(parent)
		if err != nil {
			return nil, err
		}
		for _, child := range children {
			if child.ID() == selfID || contains(child.ID()) {
				continue
			}
			seen = append(seen, child.ID())
			result = append(result, child)
		}
	}
	return result, nil
}

// CellVertices returns a cell's boundary projected onto WGS84, wound in
// the same order as the indexer's face-local vertices.
func (d *DGGS) CellVertices(c cell.Cell) ([]latlong.Wgs84Point, error) {
	verts, err := d.indexer.GetVertices(c)
	if err != nil {
		return nil, err
	}
	out := make([]latlong.Wgs84Point, len(verts))
	for i, v := range verts {
		fc, err := fcFromCartesian(c.FaceIndex(), v)
		if err != nil {
			return nil, dggserr.Wrap(err, dggserr.BadInput, "building face coordinate for cell %q vertex %d", c.ID(), i)
		}
		sp, err := d.projection.FaceToSphere(fc)
		if err != nil {
			return nil, err
		}
		wp, err := d.converter.ToWgs(sp)
		if err != nil {
			return nil, err
		}
		out[i] = wp
	}
	return out, nil
}
