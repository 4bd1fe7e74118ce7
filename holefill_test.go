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
	"testing"
)

func seaGrid(nx, ny int) *Grid {
	g := NewGrid(GridGeometry{NX: nx, NY: ny, CellSide: 1})
	for x := 0; x < nx; x++ {
		for y := 0; y < ny; y++ {
			g.Cells[x][y].BasementElevation = -5 // always below sea level 0
		}
	}
	return g
}

// TestFillHolesPromotesActiveZone checks rule 1: a cell surrounded by
// four active-zone neighbours is promoted to active even if it wasn't
// directly classified as such.
func TestFillHolesPromotesActiveZone(t *testing.T) {
	g := seaGrid(3, 3)
	env := Environment{StillWaterLevel: 0, DeepWaterWaveHeight: 1, DeepWaterWaveOrientation: 0}
	center := IPoint{X: 1, Y: 1}
	for _, n := range []IPoint{{X: 0, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 0}, {X: 1, Y: 2}} {
		g.At(n).ActiveZone = true
	}
	FillHoles(g, env)
	if !g.At(center).ActiveZone {
		t.Error("cell with 4 active neighbours should be promoted to active")
	}
}

// TestFillHolesAssignsAverageHeight checks rule 2: a cell still at the
// deep-water default height is assigned its neighbours' average when
// they differ from the default.
func TestFillHolesAssignsAverageHeight(t *testing.T) {
	g := seaGrid(3, 3)
	env := Environment{StillWaterLevel: 0, DeepWaterWaveHeight: 1, DeepWaterWaveOrientation: 0}
	g.ResetTimestep(env)
	center := IPoint{X: 1, Y: 1}
	heights := []float64{2, 4, 2, 4}
	neighbors := []IPoint{{X: 0, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 0}, {X: 1, Y: 2}}
	for i, n := range neighbors {
		g.At(n).WaveHeight = heights[i]
	}
	FillHoles(g, env)
	if got, want := g.At(center).WaveHeight, 3.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("center WaveHeight = %v, want average %v", got, want)
	}
}

// TestFillHolesPromotesShadowZone checks rule 3: an
// IN_SHADOW_ZONE_NOT_YET_DONE cell is always promoted to done and
// assigned the neighbour average, regardless of the other rules.
func TestFillHolesPromotesShadowZone(t *testing.T) {
	g := seaGrid(3, 3)
	env := Environment{StillWaterLevel: 0, DeepWaterWaveHeight: 1, DeepWaterWaveOrientation: 0}
	g.ResetTimestep(env)
	center := IPoint{X: 1, Y: 1}
	g.At(center).ShadowCode = InNotYetDone
	for _, n := range []IPoint{{X: 0, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 0}, {X: 1, Y: 2}} {
		g.At(n).WaveHeight = 5
		g.At(n).WaveOrientation = 45
	}
	FillHoles(g, env)
	c := g.At(center)
	if c.ShadowCode != InDone {
		t.Errorf("ShadowCode = %v, want InDone", c.ShadowCode)
	}
	if c.WaveHeight != 5 || c.WaveOrientation != 45 {
		t.Errorf("shadow cell should adopt neighbour averages, got (%v,%v)", c.WaveHeight, c.WaveOrientation)
	}
}

// TestFillHolesDownDriftSurround checks rule 4: a NOT_IN cell
// surrounded by four downdrift neighbours is itself promoted to
// downdrift.
func TestFillHolesDownDriftSurround(t *testing.T) {
	g := seaGrid(3, 3)
	env := Environment{StillWaterLevel: 0, DeepWaterWaveHeight: 1, DeepWaterWaveOrientation: 0}
	g.ResetTimestep(env)
	center := IPoint{X: 1, Y: 1}
	for _, n := range []IPoint{{X: 0, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 0}, {X: 1, Y: 2}} {
		g.At(n).ShadowCode = Downdrift
		g.At(n).WaveHeight = 3
		g.At(n).WaveOrientation = 15
	}
	FillHoles(g, env)
	c := g.At(center)
	if c.ShadowCode != Downdrift {
		t.Errorf("ShadowCode = %v, want Downdrift", c.ShadowCode)
	}
}

// TestFillHolesIgnoresDryCells checks that FillHoles never touches a
// dry (land) cell, which has no 4-connected "sea neighbour" aggregate
// to apply.
func TestFillHolesIgnoresDryCells(t *testing.T) {
	g := NewGrid(GridGeometry{NX: 1, NY: 1, CellSide: 1})
	g.Cells[0][0].BasementElevation = 10
	env := Environment{StillWaterLevel: 0}
	FillHoles(g, env) // must not panic and must leave the dry cell alone
	if g.Cells[0][0].ActiveZone {
		t.Error("dry cell must never be touched by hole fill")
	}
}
