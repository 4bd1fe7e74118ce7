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
	"github.com/ctessum/geom/proj"
)

// Point is an external-CRS coordinate, matching the source's C2DPoint.
type Point struct {
	X, Y float64
}

// IPoint is a grid-index coordinate, matching the source's C2DIPoint.
type IPoint struct {
	X, Y int
}

// Equals reports whether two grid points refer to the same cell.
func (p IPoint) Equals(o IPoint) bool { return p.X == o.X && p.Y == o.Y }

// GridGeometry describes the raster's dimensions, cell size, and the
// affine transform between grid indices and the external CRS.
type GridGeometry struct {
	NX, NY   int
	CellSide float64
	OriginX  float64 // external-CRS X of grid cell (0,0)'s lower-left corner
	OriginY  float64 // external-CRS Y of grid cell (0,0)'s lower-left corner
	SR       *proj.SR
}

// InGrid reports whether p lies within [0,NX) x [0,NY).
func (g GridGeometry) InGrid(p IPoint) bool {
	return p.X >= 0 && p.X < g.NX && p.Y >= 0 && p.Y < g.NY
}

// ToExt converts a grid cell index to its centre point in the external CRS.
func (g GridGeometry) ToExt(p IPoint) Point {
	return Point{
		X: g.OriginX + (float64(p.X)+0.5)*g.CellSide,
		Y: g.OriginY + (float64(p.Y)+0.5)*g.CellSide,
	}
}

// ToGrid converts an external-CRS point to the grid cell that contains it.
func (g GridGeometry) ToGrid(p Point) IPoint {
	return IPoint{
		X: int(math.Floor((p.X - g.OriginX) / g.CellSide)),
		Y: int(math.Floor((p.Y - g.OriginY) / g.CellSide)),
	}
}

// Bounds returns the cell's bounding box in the external CRS, for use
// as an rtree.Rtree index key (mirrors the teacher's neighbors.go newRect).
func (g GridGeometry) Bounds(p IPoint) *geom.Bounds {
	ext := g.ToExt(p)
	h := g.CellSide / 2
	return &geom.Bounds{
		Min: geom.Point{X: ext.X - h, Y: ext.Y - h},
		Max: geom.Point{X: ext.X + h, Y: ext.Y + h},
	}
}

// DistanceBetween returns the Euclidean distance, in cells, between two
// grid points.
func DistanceBetween(a, b IPoint) float64 {
	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)
	return math.Hypot(dx, dy)
}

// KeepWithin360 normalises an angle in degrees into [0, 360).
func KeepWithin360(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// Round performs round-half-away-from-zero rounding to the nearest int,
// matching the source's dRound.
func Round(f float64) int {
	if f >= 0 {
		return int(f + 0.5)
	}
	return int(f - 0.5)
}

// IsBetween reports whether v lies in the closed interval [lo, hi],
// accepting either ordering of lo and hi.
func IsBetween(v, lo, hi int) bool {
	if lo > hi {
		lo, hi = hi, lo
	}
	return v >= lo && v <= hi
}

// Azimuth computes the clockwise-from-north bearing of the vector
// (dx, dy), with axis-aligned shortcuts to avoid atan2 degeneracies at
// the cardinal directions, matching the source's case analysis in
// CalcCoastTangents.
func Azimuth(dx, dy float64) float64 {
	switch {
	case dx == 0 && dy == 0:
		return DblNoData
	case dx == 0 && dy > 0:
		return 0
	case dx == 0 && dy < 0:
		return 180
	case dy == 0 && dx > 0:
		return 90
	case dy == 0 && dx < 0:
		return 270
	default:
		deg := math.Atan2(dx, dy) * 180 / math.Pi
		return KeepWithin360(deg)
	}
}

// AngleSubtended returns the signed angle, in degrees, swept from ray
// origin->a to ray origin->b, positive clockwise. Used by the
// shadow-zone inside sweep (spec.md §4.8 stage 4.3) to measure how far
// a sweep ray has rotated away from the cape-to-terminal reference ray.
func AngleSubtended(origin, a, b IPoint) float64 {
	angA := Azimuth(float64(a.X-origin.X), float64(a.Y-origin.Y))
	angB := Azimuth(float64(b.X-origin.X), float64(b.Y-origin.Y))
	d := angB - angA
	for d > 180 {
		d -= 360
	}
	for d < -180 {
		d += 360
	}
	return d
}

// DDALine rasterises the line segment from..to using a digital
// differential analyser, which (unlike Bresenham) never skips a
// diagonal step and so never leaves a gap that a connectivity check
// could slip through (spec.md §9 "Rasterisation").
func DDALine(from, to IPoint) []IPoint {
	dx := float64(to.X - from.X)
	dy := float64(to.Y - from.Y)
	steps := int(math.Max(math.Abs(dx), math.Abs(dy)))
	if steps == 0 {
		return []IPoint{from}
	}
	xInc := dx / float64(steps)
	yInc := dy / float64(steps)
	line := make([]IPoint, 0, steps+1)
	x, y := float64(from.X), float64(from.Y)
	for i := 0; i <= steps; i++ {
		p := IPoint{X: Round(x), Y: Round(y)}
		if len(line) == 0 || !line[len(line)-1].Equals(p) {
			line = append(line, p)
		}
		x += xInc
		y += yInc
	}
	return line
}
