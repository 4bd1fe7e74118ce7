/*
Copyright (C) 2013-2014 Regents of the University of Minnesota.
This file is part of InMAP.

InMAP is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

InMAP is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with InMAP.  If not, see <http://www.gnu.org/licenses/>.
*/

package coastalwave

import (
	"fmt"

	"github.com/ctessum/sparse"
)

// Grid is the rectangular raster of cells that the wave-field core
// operates on, the equivalent of the source's CRasterGrid.
type Grid struct {
	Geometry GridGeometry
	Cells    [][]*Cell // indexed [x][y], mirroring the source's vector<vector<CCell>>
}

// NewGrid allocates a grid of the given geometry with every cell
// zero-valued (dry, basement at elevation 0).
func NewGrid(geometry GridGeometry) *Grid {
	g := &Grid{Geometry: geometry}
	g.Cells = make([][]*Cell, geometry.NX)
	for x := range g.Cells {
		g.Cells[x] = make([]*Cell, geometry.NY)
		for y := range g.Cells[x] {
			g.Cells[x][y] = &Cell{}
		}
	}
	return g
}

// NewGridFromElevation allocates a grid and seeds every cell's
// BasementElevation from a dense raster, the equivalent of loading the
// source's basement DEM. Loading the raster itself from disk is out of
// scope (spec.md §1 Non-goals); this only consumes an already-decoded
// github.com/ctessum/sparse array, the same raster-backing type the
// teacher's preprocessing pipeline produces.
func NewGridFromElevation(geometry GridGeometry, elevation *sparse.DenseArray) (*Grid, error) {
	shape := elevation.Shape
	if len(shape) != 2 || shape[0] != geometry.NX || shape[1] != geometry.NY {
		return nil, fmt.Errorf("coastalwave: elevation raster shape %v does not match grid geometry %dx%d",
			shape, geometry.NX, geometry.NY)
	}
	g := NewGrid(geometry)
	for x := 0; x < geometry.NX; x++ {
		for y := 0; y < geometry.NY; y++ {
			g.Cells[x][y].BasementElevation = elevation.Get(x, y)
		}
	}
	return g, nil
}

// At returns the cell at grid index p, or nil if p is outside the grid.
func (g *Grid) At(p IPoint) *Cell {
	if !g.Geometry.InGrid(p) {
		return nil
	}
	return g.Cells[p.X][p.Y]
}

// IsSeaAt reports whether the cell at p is a contiguous-sea cell: it
// exists, is below still-water level, and is not itself a coastline
// cell (the source's "contiguous sea" predicate used throughout the
// shadow-zone boundary trace).
func (g *Grid) IsSeaAt(p IPoint, stillWaterLevel float64) bool {
	c := g.At(p)
	if c == nil {
		return false
	}
	return c.IsSea(stillWaterLevel) && !c.IsCoastline
}

// ResetTimestep implements S0 (spec.md §4.1) over every cell in the grid:
// clear per-timestep fields, recompute still-water depth, and assign
// deep-water defaults to every wet cell.
func (g *Grid) ResetTimestep(env Environment) {
	for x := range g.Cells {
		for y := range g.Cells[x] {
			g.Cells[x][y].resetForTimestep(env)
		}
	}
}

// String implements fmt.Stringer for debug logging.
func (g *Grid) String() string {
	return fmt.Sprintf("Grid(%dx%d, cellSide=%g)", g.Geometry.NX, g.Geometry.NY, g.Geometry.CellSide)
}
