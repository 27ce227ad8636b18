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

// Package isea3h implements the aperture-3 icosahedral hexagonal grid
// (spec.md section 4.6): a hexagonal tiling per face whose spacing shrinks
// by sqrt(3) each resolution (an area ratio of 3 between neighbouring
// resolutions) and whose orientation alternates between a "pointy-top" and
// a "flat-top" hexagon layout from one resolution to the next.
//
// Unlike the triangular grid's aperture-4 subdivision, a hexagon cannot be
// partitioned into exactly three smaller congruent hexagons that tile it
// exactly - aperture-3 hexagonal hierarchies are inherently approximate.
// Parent/child relationships here are therefore based on nearest hex
// centre rather than exact polygon containment, which is also why a cell
// can have more than one parent at a resolution-parity boundary (spec.md
// section 4.6).
package isea3h

import (
	"math"

	"github.com/riskaware-ltd/open-eaggr-go/cell"
	"github.com/riskaware-ltd/open-eaggr-go/dggserr"
	"github.com/riskaware-ltd/open-eaggr-go/facecoord"
	"github.com/riskaware-ltd/open-eaggr-go/mathutil"
	"github.com/riskaware-ltd/open-eaggr-go/projection"
	"github.com/riskaware-ltd/open-eaggr-go/triface"
)

// Aperture is the area ratio between a cell and each of its children.
const Aperture = 3

// MaxResolution bounds a cell's two-digit resolution field.
const MaxResolution = cell.MaxOffsetResolution

// baseSize is the "radius" (centre to vertex distance) of a resolution-0
// hex cell, chosen so a resolution-0 cell's area is the face's full
// normalized area (sqrt(3)/4): a regular hexagon of circumradius s has
// area (3*sqrt(3)/2)*s^2.
var baseSize = math.Sqrt(projection.FaceAreaNormalized / (3.0 * math.Sqrt(3) / 2.0))

// tieEpsilon is the relative distance tolerance within which two
// candidate parent centres are considered tied.
const tieEpsilon = 1e-6

// Grid implements indexer.Indexer for the ISEA3H hexagonal grid.
type Grid struct{}

// NewGrid builds an ISEA3H grid indexer.
func NewGrid() *Grid { return &Grid{} }

func (g *Grid) Aperture() int      { return Aperture }
func (g *Grid) MaxResolution() int { return MaxResolution }

func sizeAt(resolution int) float64 {
	return baseSize / math.Pow(math.Sqrt(3), float64(resolution))
}

// isFlatTop reports whether the given resolution uses the flat-top hex
// layout; resolutions alternate starting with pointy-top at resolution 0.
func isFlatTop(resolution int) bool {
	return resolution%2 == 1
}

// axialToPixel converts axial hex coordinates (q, r) at the given
// resolution into face-local planar coordinates.
func axialToPixel(q, r int64, resolution int) mathutil.Point2D {
	s := sizeAt(resolution)
	qf, rf := float64(q), float64(r)
	if isFlatTop(resolution) {
		return mathutil.Point2D{
			X: s * 1.5 * qf,
			Y: s * math.Sqrt(3) * (rf + qf/2),
		}
	}
	return mathutil.Point2D{
		X: s * math.Sqrt(3) * (qf + rf/2),
		Y: s * 1.5 * rf,
	}
}

// pixelToAxial converts a planar point to the nearest axial hex
// coordinate at the given resolution, via cube-coordinate rounding.
func pixelToAxial(p mathutil.Point2D, resolution int) (q, r int64) {
	s := sizeAt(resolution)
	var qf, rf float64
	if isFlatTop(resolution) {
		qf = (2.0 / 3.0) * p.X / s
		rf = (-1.0/3.0)*p.X/s + (math.Sqrt(3)/3.0)*p.Y/s
	} else {
		qf = (math.Sqrt(3)/3.0)*p.X/s - (1.0/3.0)*p.Y/s
		rf = (2.0 / 3.0) * p.Y / s
	}
	return roundAxial(qf, rf)
}

// roundAxial rounds fractional axial coordinates to the nearest integer
// hex, via the standard cube-coordinate rounding trick.
func roundAxial(qf, rf float64) (int64, int64) {
	xf, zf := qf, rf
	yf := -xf - zf
	rx, ry, rz := math.Round(xf), math.Round(yf), math.Round(zf)
	dx, dy, dz := math.Abs(rx-xf), math.Abs(ry-yf), math.Abs(rz-zf)

	switch {
	case dx > dy && dx > dz:
		rx = -ry - rz
	case dy > dz:
		ry = -rx - rz
	default:
		rz = -rx - ry
	}
	return int64(rx), int64(rz)
}

// hexVertices returns the 6 boundary vertices of a hex cell centred at c
// with the given circumradius, wound counter-clockwise.
func hexVertices(centre mathutil.Point2D, size float64, flatTop bool) []facecoord.CartesianPoint {
	verts := make([]facecoord.CartesianPoint, 6)
	offsetDeg := 0.0
	if !flatTop {
		offsetDeg = 30.0
	}
	for i := 0; i < 6; i++ {
		angle := mathutil.DegsToRads(60.0*float64(i) + offsetDeg)
		verts[i] = facecoord.CartesianPoint{
			X: centre.X + size*math.Cos(angle),
			Y: centre.Y + size*math.Sin(angle),
		}
	}
	return verts
}

func (g *Grid) buildCell(face, resolution int, q, r int64) (*cell.OffsetCell, error) {
	oc, err := cell.NewOffsetCell(face, resolution, q, r)
	if err != nil {
		return nil, err
	}
	centre := axialToPixel(q, r, resolution)
	oc.SetVertices(hexVertices(centre, sizeAt(resolution), isFlatTop(resolution)))
	tol := triface.ToleranceForResolution(sizeAt(resolution))
	switch triface.Classify(facecoord.CartesianPoint{X: centre.X, Y: centre.Y}, tol) {
	case triface.Vertex:
		oc.SetLocation(cell.VertexLocation)
	case triface.Edge:
		oc.SetLocation(cell.EdgeLocation)
	default:
		oc.SetLocation(cell.FaceLocation)
	}
	return oc, nil
}

// CreateCell parses a cell identifier string.
func (g *Grid) CreateCell(id string) (cell.Cell, error) {
	oc, err := cell.ParseOffsetCell(id)
	if err != nil {
		return nil, err
	}
	centre := axialToPixel(oc.Row(), oc.Col(), oc.Resolution())
	oc.SetVertices(hexVertices(centre, sizeAt(oc.Resolution()), isFlatTop(oc.Resolution())))
	return oc, nil
}

// GetCell locates the cell on fc.FaceIndex containing fc, at the
// resolution implied by fc.Accuracy.
func (g *Grid) GetCell(fc facecoord.FaceCoordinate) (cell.Cell, error) {
	res := mathutil.ResolutionFromAccuracy(projection.FaceAreaNormalized, fc.Accuracy, Aperture, MaxResolution)
	q, r := pixelToAxial(mathutil.Point2D{X: fc.X, Y: fc.Y}, res)
	return g.buildCell(fc.FaceIndex, res, q, r)
}

// GetFaceCoordinate returns c's centre in face-local planar coordinates.
func (g *Grid) GetFaceCoordinate(c cell.Cell) (facecoord.FaceCoordinate, error) {
	oc, ok := c.(*cell.OffsetCell)
	if !ok {
		return facecoord.FaceCoordinate{}, dggserr.New(dggserr.CellKind, "cell %q is not an ISEA3H cell", c.ID())
	}
	centre := axialToPixel(oc.Row(), oc.Col(), oc.Resolution())
	relArea := mathutil.AccuracyFromResolution(projection.FaceAreaNormalized, Aperture, oc.Resolution())
	return facecoord.New(oc.FaceIndex(), centre.X, centre.Y, relArea)
}

// GetVertices returns c's six boundary vertices, counter-clockwise.
func (g *Grid) GetVertices(c cell.Cell) ([]facecoord.CartesianPoint, error) {
	oc, ok := c.(*cell.OffsetCell)
	if !ok {
		return nil, dggserr.New(dggserr.CellKind, "cell %q is not an ISEA3H cell", c.ID())
	}
	centre := axialToPixel(oc.Row(), oc.Col(), oc.Resolution())
	return hexVertices(centre, sizeAt(oc.Resolution()), isFlatTop(oc.Resolution())), nil
}

// axialNeighbourOffsets are the 6 unit steps to a hex's immediate
// neighbours, shared by both the pointy-top and flat-top layouts (only
// the pixel interpretation of (q, r) differs between them).
var axialNeighbourOffsets = [6][2]int64{
	{1, 0}, {1, -1}, {0, -1}, {-1, 0}, {-1, 1}, {0, 1},
}

// GetParents returns the one to three cells at resolution-1 whose centre
// is nearest c's centre, including ties within tieEpsilon.
func (g *Grid) GetParents(c cell.Cell) ([]cell.Cell, error) {
	oc, ok := c.(*cell.OffsetCell)
	if !ok {
		return nil, dggserr.New(dggserr.CellKind, "cell %q is not an ISEA3H cell", c.ID())
	}
	if oc.Resolution() == 0 {
		return nil, dggserr.New(dggserr.RangeOverflow, "cell %q is already at resolution 0; it has no parent", oc.ID())
	}
	parentRes := oc.Resolution() - 1
	centre := axialToPixel(oc.Row(), oc.Col(), oc.Resolution())
	q, r := pixelToAxial(centre, parentRes)

	type candidate struct {
		q, r int64
		dist float64
	}
	candidates := []candidate{{q, r, 0}}
	for _, off := range axialNeighbourOffsets {
		candidates = append(candidates, candidate{q: q + off[0], r: r + off[1]})
	}
	for i := range candidates {
		p := axialToPixel(candidates[i].q, candidates[i].r, parentRes)
		candidates[i].dist = p.Dist(centre)
	}

	best := candidates[0].dist
	for _, cd := range candidates {
		if cd.dist < best {
			best = cd.dist
		}
	}

	seen := map[[2]int64]bool{}
	parents := make([]cell.Cell, 0, 3)
	for _, cd := range candidates {
		if len(parents) >= 3 {
			break
		}
		if cd.dist > best*(1+tieEpsilon)+tieEpsilon {
			continue
		}
		key := [2]int64{cd.q, cd.r}
		if seen[key] {
			continue
		}
		seen[key] = true
		parent, err := g.buildCell(oc.FaceIndex(), parentRes, cd.q, cd.r)
		if err != nil {
			return nil, err
		}
		parents = append(parents, parent)
	}
	return parents, nil
}

// NumChildren is the number of cells GetChildren returns: the one
// concentric child plus a ring of six surrounding children (spec.md
// section 4.6). A parent's area equals the concentric child's area plus
// one third of the sum of the six ring children's areas, which for
// equal-area children reduces to parentArea == 3*childArea, matching the
// grid's aperture of 3 (invariant 6 in spec.md section 3).
const NumChildren = 7

// GetChildren returns the seven resolution+1 cells that tile c: the
// child cell concentric with c, plus the ring of six children surrounding
// it, found as the concentric child's axial neighbours at the child
// resolution.
func (g *Grid) GetChildren(c cell.Cell) ([]cell.Cell, error) {
	oc, ok := c.(*cell.OffsetCell)
	if !ok {
		return nil, dggserr.New(dggserr.CellKind, "cell %q is not an ISEA3H cell", c.ID())
	}
	if oc.Resolution() >= MaxResolution {
		return nil, dggserr.New(dggserr.RangeOverflow, "cell %q is already at the maximum resolution %d", oc.ID(), MaxResolution)
	}
	childRes := oc.Resolution() + 1
	centre := axialToPixel(oc.Row(), oc.Col(), oc.Resolution())
	q, r := pixelToAxial(centre, childRes)

	children := make([]cell.Cell, 0, NumChildren)
	concentric, err := g.buildCell(oc.FaceIndex(), childRes, q, r)
	if err != nil {
		return nil, err
	}
	children = append(children, concentric)

	for _, off := range axialNeighbourOffsets {
		child, err := g.buildCell(oc.FaceIndex(), childRes, q+off[0], r+off[1])
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return children, nil
}
