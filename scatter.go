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
	"math"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/index/rtree"
)

// VectorSample is a sparse (x, y, Hx, Hy) observation of the wave
// vector at a grid cell, produced by S2 for every cell under a
// profile, and consumed by S5's scattered-to-grid interpolation.
// Hx = H*sin(theta), Hy = H*cos(theta), matching spec.md §4.4/§4.7.
type VectorSample struct {
	Cell   IPoint
	Hx, Hy float64
}

// BoolSample is a sparse (x, y, activeZone) observation, interpolated
// onto the grid by nearest-neighbour per spec.md §4.7.
type BoolSample struct {
	Cell   IPoint
	Active bool
}

// ScatteredInterpolator2D interpolates sparse per-profile samples onto
// every other sea cell of the grid (S5, spec.md §4.7). The source
// delegates this to an external rasteriser process; any in-process
// implementation with the same contract is conformant (spec.md §9).
type ScatteredInterpolator2D interface {
	// InterpolateVectors fills WaveHeight/WaveOrientation on every sea
	// cell of grid from samples, using a linear scattered scheme.
	InterpolateVectors(grid *Grid, env Environment, samples []VectorSample) error
	// InterpolateActiveZone fills ActiveZone on every sea cell of grid
	// from samples, using nearest-neighbour.
	InterpolateActiveZone(grid *Grid, samples []BoolSample) error
}

// rtreeVectorSample and rtreeBoolSample adapt a VectorSample/BoolSample to the rtree.Rtree's
// bounding-box contract (it indexes values via their Bounds() method,
// the same convention the teacher's vargrid.go uses for CTMData.Data).
type rtreeVectorSample struct {
	VectorSample
	bounds *geom.Bounds
}

func (s *rtreeVectorSample) Bounds() *geom.Bounds { return s.bounds }

type rtreeBoolSample struct {
	BoolSample
	bounds *geom.Bounds
}

func (s *rtreeBoolSample) Bounds() *geom.Bounds { return s.bounds }

// pointBounds returns a degenerate (zero-area) bounding box at a grid
// cell's centre, sufficient as an rtree index key for point data.
func pointBounds(g GridGeometry, p IPoint) *geom.Bounds {
	c := g.ToExt(p)
	return &geom.Bounds{Min: geom.Point{X: c.X, Y: c.Y}, Max: geom.Point{X: c.X, Y: c.Y}}
}

// RTreeInterpolator is the default ScatteredInterpolator2D, grounded on
// the teacher's rtree.NewTree/.Insert/.SearchIntersect usage in
// vargrid.go and neighbors.go. Continuous fields use inverse-distance
// weighting over the k nearest samples found by growing a search box;
// they are not interpolated linearly. The boolean field uses the single
// nearest sample, and InterpolateActiveZone assigns it to every
// non-profile cell, dry cells included.
type RTreeInterpolator struct {
	// SearchRadiusCells bounds how far (in cells) the box search grows
	// before giving up; 0 selects a default based on the grid size.
	SearchRadiusCells int
	// MaxNeighbors caps how many samples contribute to one cell's IDW
	// estimate.
	MaxNeighbors int
}

// NewRTreeInterpolator returns an RTreeInterpolator with sensible
// defaults.
func NewRTreeInterpolator() *RTreeInterpolator {
	return &RTreeInterpolator{SearchRadiusCells: 0, MaxNeighbors: 8}
}

func (r *RTreeInterpolator) maxNeighbors() int {
	if r.MaxNeighbors > 0 {
		return r.MaxNeighbors
	}
	return 8
}

func (r *RTreeInterpolator) InterpolateVectors(grid *Grid, env Environment, samples []VectorSample) error {
	if len(samples) == 0 {
		return nil
	}
	tree := rtree.NewTree(25, 50)
	for i := range samples {
		s := samples[i]
		tree.Insert(&rtreeVectorSample{VectorSample: s, bounds: pointBounds(grid.Geometry, s.Cell)})
	}
	radius := r.searchRadius(grid)
	for x := 0; x < grid.Geometry.NX; x++ {
		for y := 0; y < grid.Geometry.NY; y++ {
			p := IPoint{X: x, Y: y}
			c := grid.At(p)
			if c == nil || !c.IsSea(env.StillWaterLevel) || c.IsProfile {
				continue
			}
			hx, hy, ok := r.idwVector(grid, p, tree, radius)
			if !ok {
				continue
			}
			h := math.Hypot(hx, hy)
			theta := KeepWithin360(math.Atan2(hx, hy) * 180 / math.Pi)
			c.WaveHeight = h
			c.WaveOrientation = theta
		}
	}
	return nil
}

func (r *RTreeInterpolator) InterpolateActiveZone(grid *Grid, samples []BoolSample) error {
	if len(samples) == 0 {
		return nil
	}
	tree := rtree.NewTree(25, 50)
	for i := range samples {
		s := samples[i]
		tree.Insert(&rtreeBoolSample{BoolSample: s, bounds: pointBounds(grid.Geometry, s.Cell)})
	}
	radius := r.searchRadius(grid)
	for x := 0; x < grid.Geometry.NX; x++ {
		for y := 0; y < grid.Geometry.NY; y++ {
			p := IPoint{X: x, Y: y}
			c := grid.At(p)
			if c == nil || c.IsProfile {
				continue
			}
			nearest, ok := r.nearestBool(grid, p, tree, radius)
			if !ok {
				continue
			}
			c.ActiveZone = nearest
		}
	}
	return nil
}

func (r *RTreeInterpolator) searchRadius(grid *Grid) int {
	if r.SearchRadiusCells > 0 {
		return r.SearchRadiusCells
	}
	n := grid.Geometry.NX
	if grid.Geometry.NY > n {
		n = grid.Geometry.NY
	}
	return n
}

func (r *RTreeInterpolator) searchBox(grid *Grid, p IPoint, radiusCells int) *geom.Bounds {
	c := grid.Geometry.ToExt(p)
	half := float64(radiusCells) * grid.Geometry.CellSide
	return &geom.Bounds{
		Min: geom.Point{X: c.X - half, Y: c.Y - half},
		Max: geom.Point{X: c.X + half, Y: c.Y + half},
	}
}

func (r *RTreeInterpolator) idwVector(grid *Grid, p IPoint, tree *rtree.Rtree, maxRadius int) (hx, hy float64, ok bool) {
	for radius := 1; radius <= maxRadius; radius *= 2 {
		box := r.searchBox(grid, p, radius)
		hits := tree.SearchIntersect(box)
		if len(hits) == 0 {
			continue
		}
		type weighted struct {
			d      float64
			hx, hy float64
		}
		ws := make([]weighted, 0, len(hits))
		for _, hI := range hits {
			s := hI.(*rtreeVectorSample)
			d := DistanceBetween(p, s.Cell)
			ws = append(ws, weighted{d: d, hx: s.Hx, hy: s.Hy})
		}
		k := r.maxNeighbors()
		if k > len(ws) {
			k = len(ws)
		}
		// Partial selection of the k closest samples (small k, simple
		// selection sort is sufficient and avoids importing sort for
		// a single use).
		for i := 0; i < k; i++ {
			minIdx := i
			for j := i + 1; j < len(ws); j++ {
				if ws[j].d < ws[minIdx].d {
					minIdx = j
				}
			}
			ws[i], ws[minIdx] = ws[minIdx], ws[i]
		}
		var sumW, sumHx, sumHy float64
		for i := 0; i < k; i++ {
			w := ws[i]
			if w.d == 0 {
				return w.hx, w.hy, true
			}
			weight := 1 / (w.d * w.d)
			sumW += weight
			sumHx += weight * w.hx
			sumHy += weight * w.hy
		}
		if sumW == 0 {
			continue
		}
		return sumHx / sumW, sumHy / sumW, true
	}
	return 0, 0, false
}

func (r *RTreeInterpolator) nearestBool(grid *Grid, p IPoint, tree *rtree.Rtree, maxRadius int) (bool, bool) {
	for radius := 1; radius <= maxRadius; radius *= 2 {
		box := r.searchBox(grid, p, radius)
		hits := tree.SearchIntersect(box)
		if len(hits) == 0 {
			continue
		}
		best := hits[0].(*rtreeBoolSample)
		bestD := DistanceBetween(p, best.Cell)
		for _, hI := range hits[1:] {
			s := hI.(*rtreeBoolSample)
			d := DistanceBetween(p, s.Cell)
			if d < bestD {
				bestD = d
				best = s
			}
		}
		return best.Active, true
	}
	return false, false
}
