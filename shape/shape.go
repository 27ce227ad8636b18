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

// Package shape implements the "shape string" wire format (spec.md
// section 6): "<kind>~<body>", where kind is 1 (cell), 2 (linestring) or 3
// (polygon), multiple shapes are "/"-separated, and a body is a bare cell
// id, a ";"-joined sequence of ids, or a ":"-separated sequence of
// ";"-joined rings (outer ring first). This package only rounds cell
// identifiers trip through that grammar - it has no opinion on planar
// geometry, which is the downstream consumer's job (spec.md section 1).
package shape

import (
	"strconv"
	"strings"

	"github.com/riskaware-ltd/open-eaggr-go/cell"
	"github.com/riskaware-ltd/open-eaggr-go/dggserr"
)

// Kind tags which of the three shape varieties a shape string encodes.
type Kind int

const (
	// CellShape: body is a single cell id.
	CellShape Kind = 1
	// LineStringShape: body is a ";"-joined sequence of cell ids.
	LineStringShape Kind = 2
	// PolygonShape: body is a ":"-separated sequence of ";"-joined rings,
	// outer ring first.
	PolygonShape Kind = 3
)

func (k Kind) String() string {
	switch k {
	case CellShape:
		return "cell"
	case LineStringShape:
		return "linestring"
	case PolygonShape:
		return "polygon"
	default:
		return "unknown"
	}
}

// Shape is one decoded "<kind>~<body>" entry.
type Shape struct {
	Kind Kind
	// Cell is set when Kind == CellShape.
	Cell cell.Cell
	// Line is set when Kind == LineStringShape.
	Line []cell.Cell
	// Rings is set when Kind == PolygonShape; Rings[0] is the outer ring,
	// any further entries are inner rings.
	Rings [][]cell.Cell
}

// CellFactory resolves a cell identifier string into the cell it names.
// indexer.Indexer satisfies this, so shape strings are parsed against
// whichever grid produced their ids - typically the grid a DGGS is
// already bound to (spec.md section 4.9's CreateCell).
type CellFactory interface {
	CreateCell(id string) (cell.Cell, error)
}

// EncodeCell renders a single cell as a "1~<id>" shape string.
func EncodeCell(c cell.Cell) string {
	return "1~" + c.ID()
}

// EncodeLineString renders an ordered sequence of cells as a "2~..." shape
// string.
func EncodeLineString(cells []cell.Cell) string {
	return "2~" + joinIDs(cells)
}

// EncodePolygon renders an outer ring followed by zero or more inner rings
// as a "3~..." shape string.
func EncodePolygon(rings [][]cell.Cell) string {
	parts := make([]string, len(rings))
	for i, ring := range rings {
		parts[i] = joinIDs(ring)
	}
	return "3~" + strings.Join(parts, ":")
}

// EncodeMulti joins already-encoded shape strings with "/", the
// multiple-shapes-per-string separator spec.md section 6 defines.
func EncodeMulti(shapes ...string) string {
	return strings.Join(shapes, "/")
}

func joinIDs(cells []cell.Cell) string {
	ids := make([]string, len(cells))
	for i, c := range cells {
		ids[i] = c.ID()
	}
	return strings.Join(ids, ";")
}

// Parse decodes a single "<kind>~<body>" shape string, resolving every
// embedded cell id through factory.
func Parse(s string, factory CellFactory) (*Shape, error) {
	kindStr, body, ok := strings.Cut(s, "~")
	if !ok {
		return nil, dggserr.New(dggserr.InvalidIdentifier, "%q is not a valid shape string", s)
	}
	kindNum, err := strconv.Atoi(kindStr)
	if err != nil {
		return nil, dggserr.New(dggserr.InvalidIdentifier, "%q has a non-numeric shape kind %q", s, kindStr)
	}

	switch Kind(kindNum) {
	case CellShape:
		c, err := factory.CreateCell(body)
		if err != nil {
			return nil, err
		}
		return &Shape{Kind: CellShape, Cell: c}, nil

	case LineStringShape:
		cells, err := parseIDList(body, factory)
		if err != nil {
			return nil, err
		}
		return &Shape{Kind: LineStringShape, Line: cells}, nil

	case PolygonShape:
		ringStrs := strings.Split(body, ":")
		rings := make([][]cell.Cell, len(ringStrs))
		for i, r := range ringStrs {
			cells, err := parseIDList(r, factory)
			if err != nil {
				return nil, err
			}
			rings[i] = cells
		}
		return &Shape{Kind: PolygonShape, Rings: rings}, nil

	default:
		return nil, dggserr.New(dggserr.InvalidIdentifier, "%q has an unrecognized shape kind %d", s, kindNum)
	}
}

// ParseMulti splits a "/"-separated shape string into its individual
// shapes and decodes each with factory.
func ParseMulti(s string, factory CellFactory) ([]*Shape, error) {
	parts := strings.Split(s, "/")
	out := make([]*Shape, 0, len(parts))
	for _, part := range parts {
		sh, err := Parse(part, factory)
		if err != nil {
			return nil, err
		}
		out = append(out, sh)
	}
	return out, nil
}

func parseIDList(s string, factory CellFactory) ([]cell.Cell, error) {
	ids := strings.Split(s, ";")
	cells := make([]cell.Cell, len(ids))
	for i, id := range ids {
		c, err := factory.CreateCell(id)
		if err != nil {
			return nil, err
		}
		cells[i] = c
	}
	return cells, nil
}
