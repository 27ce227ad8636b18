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

// Command eaggrctl is a small command-line front end over the DGGS
// facade (spec.md section 9): point/cell conversions and hierarchy
// queries, one subcommand per operation, against either grid.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	eaggr "github.com/riskaware-ltd/open-eaggr-go"
	"github.com/riskaware-ltd/open-eaggr-go/cell"
	"github.com/riskaware-ltd/open-eaggr-go/latlong"
)

var gridFlag string

func gridKind() (eaggr.GridKind, error) {
	switch gridFlag {
	case "isea4t", "":
		return eaggr.ISEA4T, nil
	case "isea3h":
		return eaggr.ISEA3H, nil
	default:
		return 0, fmt.Errorf("unrecognized grid %q, want isea4t or isea3h", gridFlag)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "eaggrctl",
		Short:         "Query a discrete global grid system from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&gridFlag, "grid", "isea4t", "grid to use: isea4t or isea3h")

	root.AddCommand(
		newPointToCellCmd(),
		newCellToPointCmd(),
		newParentsCmd(),
		newChildrenCmd(),
		newSiblingsCmd(),
		newVerticesCmd(),
	)
	return root
}

func newPointToCellCmd() *cobra.Command {
	var accuracy float64
	cmd := &cobra.Command{
		Use:   "point-to-cell <lat> <lon>",
		Short: "Find the cell containing a WGS84 point",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lat, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("parsing latitude: %w", err)
			}
			lon, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("parsing longitude: %w", err)
			}
			kind, err := gridKind()
			if err != nil {
				return err
			}
			pt, err := latlong.NewWgs84Point(lat, lon, accuracy)
			if err != nil {
				return err
			}
			c, err := eaggr.New(kind).PointToCell(pt)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), c.ID())
			return nil
		},
	}
	cmd.Flags().Float64Var(&accuracy, "accuracy", 1.0, "accuracy, in square metres")
	// Stop flag parsing at the first positional argument so a negative
	// longitude such as -0.1 is read as a value, not a shorthand flag.
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func newCellToPointCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cell-to-point <cell-id>",
		Short: "Find the WGS84 centre of a cell",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := gridKind()
			if err != nil {
				return err
			}
			dggs := eaggr.New(kind)
			c, err := dggs.CreateCell(args[0])
			if err != nil {
				return err
			}
			pt, err := dggs.CellToPoint(c)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%g,%g (accuracy %g m^2)\n", pt.LatDegs, pt.LongDegs, pt.Accuracy)
			return nil
		},
	}
	return cmd
}

func printCells(cmd *cobra.Command, cells []cell.Cell) {
	for _, c := range cells {
		fmt.Fprintln(cmd.OutOrStdout(), c.ID())
	}
}

func newParentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parents <cell-id>",
		Short: "List a cell's parent(s)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := gridKind()
			if err != nil {
				return err
			}
			dggs := eaggr.New(kind)
			c, err := dggs.CreateCell(args[0])
			if err != nil {
				return err
			}
			parents, err := dggs.Parents(c)
			if err != nil {
				return err
			}
			printCells(cmd, parents)
			return nil
		},
	}
}

func newChildrenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "children <cell-id>",
		Short: "List a cell's children",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := gridKind()
			if err != nil {
				return err
			}
			dggs := eaggr.New(kind)
			c, err := dggs.CreateCell(args[0])
			if err != nil {
				return err
			}
			children, err := dggs.Children(c)
			if err != nil {
				return err
			}
			printCells(cmd, children)
			return nil
		},
	}
}

func newSiblingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "siblings <cell-id>",
		Short: "List the cells sharing a parent with a cell",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := gridKind()
			if err != nil {
				return err
			}
			dggs := eaggr.New(kind)
			c, err := dggs.CreateCell(args[0])
			if err != nil {
				return err
			}
			siblings, err := dggs.Siblings(c)
			if err != nil {
				return err
			}
			printCells(cmd, siblings)
			return nil
		},
	}
}

func newVerticesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vertices <cell-id>",
		Short: "List a cell's boundary vertices in WGS84",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := gridKind()
			if err != nil {
				return err
			}
			dggs := eaggr.New(kind)
			c, err := dggs.CreateCell(args[0])
			if err != nil {
				return err
			}
			verts, err := dggs.CellVertices(c)
			if err != nil {
				return err
			}
			for _, v := range verts {
				fmt.Fprintf(cmd.OutOrStdout(), "%g,%g\n", v.LatDegs, v.LongDegs)
			}
			return nil
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
