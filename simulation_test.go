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
	"testing"

	"github.com/sirupsen/logrus"
)

// buildTestGrid lays out a rectangular bay: land in the top rows, sea
// in the bottom rows, with a straight coastline running along y=4.
func buildTestGrid(nx, ny, coastY int) *Grid {
	geom := GridGeometry{NX: nx, NY: ny, CellSide: 10}
	g := NewGrid(geom)
	for x := 0; x < nx; x++ {
		for y := 0; y < ny; y++ {
			c := g.Cells[x][y]
			if y >= coastY {
				c.BasementElevation = -10 // sea
			} else {
				c.BasementElevation = 10 // land
			}
			if y == coastY-1 {
				c.IsCoastline = true
			}
		}
	}
	return g
}

func straightTestCoast(nx, coastY int, handedness Handedness) *Coast {
	n := nx
	polyline := make([]Point, n)
	cells := make([]IPoint, n)
	for i := 0; i < n; i++ {
		polyline[i] = Point{X: float64(i) * 10, Y: float64(coastY-1) * 10}
		cells[i] = IPoint{X: i, Y: coastY - 1}
	}
	coast := NewCoast(handedness, polyline, cells)
	coast.Profiles = make([]*Profile, n)
	for i := 0; i < n; i++ {
		coast.Profiles[i] = &Profile{CoastIndex: i, BreakingIdx: -1}
	}
	return coast
}

// buildStraightProfiles attaches one cross-shore profile per coast
// point, running seaward from the coastline to the far edge of the
// grid.
func buildStraightProfiles(coast *Coast, g *Grid, coastY int) {
	for i, profile := range coast.Profiles {
		var cells []IPoint
		var dist []float64
		for y := coastY - 1; y < g.Geometry.NY; y++ {
			cells = append(cells, IPoint{X: i, Y: y})
			dist = append(dist, float64(y-(coastY-1))*g.Geometry.CellSide)
		}
		profile.Cells = cells
		profile.Distances = dist
		profile.OKIncStartAndEndOfCoast = true
	}
}

// TestSimulationStepFlatSeaStraightCoast is E1 (spec.md §8): a flat sea
// and a straight coast under deep-water waves normal to the shore must
// run S0-S7 without error and leave every sea cell with a defined
// (non-NODATA) wave height afterward.
func TestSimulationStepFlatSeaStraightCoast(t *testing.T) {
	const nx, ny, coastY = 12, 8, 4
	g := buildTestGrid(nx, ny, coastY)
	coast := straightTestCoast(nx, coastY, Left)
	buildStraightProfiles(coast, g, coastY)

	env := Environment{
		StillWaterLevel:          0,
		DeepWaterWaveHeight:      1.5,
		DeepWaterWaveOrientation: 180, // waves propagating due south, straight onshore for this coast's geometry
		WavePeriod:               8,
		TimestepHours:            1,
	}
	sim, err := NewSimulation(g, []*Coast{coast}, env, DefaultConstants(), WithLogger(logrus.New()))
	if err != nil {
		t.Fatalf("NewSimulation: %v", err)
	}
	if err := sim.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}

	for x := 0; x < nx; x++ {
		for y := coastY; y < ny; y++ {
			c := g.At(IPoint{X: x, Y: y})
			if c.WaveHeight == DblNoData {
				t.Fatalf("sea cell (%d,%d) left with undefined wave height after Step", x, y)
			}
		}
	}
}

// TestSimulationStepDeterministic checks that running the same
// timestep twice from the same starting grid produces the same result,
// the determinism spec.md §5 requires of the single-threaded pipeline.
func TestSimulationStepDeterministic(t *testing.T) {
	run := func() float64 {
		const nx, ny, coastY = 10, 6, 3
		g := buildTestGrid(nx, ny, coastY)
		coast := straightTestCoast(nx, coastY, Left)
		buildStraightProfiles(coast, g, coastY)
		env := Environment{
			StillWaterLevel:          0,
			DeepWaterWaveHeight:      1.0,
			DeepWaterWaveOrientation: 45,
			WavePeriod:               6,
			TimestepHours:            1,
		}
		sim, err := NewSimulation(g, []*Coast{coast}, env, DefaultConstants())
		if err != nil {
			t.Fatalf("NewSimulation: %v", err)
		}
		if err := sim.Step(); err != nil {
			t.Fatalf("Step: %v", err)
		}
		return g.At(IPoint{X: 5, Y: 5}).WaveHeight
	}
	a := run()
	b := run()
	if a != b {
		t.Errorf("Step produced non-deterministic results: %v vs %v", a, b)
	}
}

// TestSimulationStepOffshoreWaves is E3 (spec.md §8): waves that the
// angle law classes as offshore (|psi| >= 90) must leave the profile's
// cells at their S0 deep water defaults rather than a solved (and
// meaningless) onshore value.
func TestSimulationStepOffshoreWaves(t *testing.T) {
	const nx, ny, coastY = 6, 6, 3
	g := buildTestGrid(nx, ny, coastY)
	coast := straightTestCoast(nx, coastY, Left)
	buildStraightProfiles(coast, g, coastY)

	env := Environment{
		StillWaterLevel:          0,
		DeepWaterWaveHeight:      1.0,
		DeepWaterWaveOrientation: 270, // shore-parallel (psi = 90) for a Left-handed, x-axis-tangent coast, so treated as offshore
		WavePeriod:               8,
		TimestepHours:            1,
	}
	sim, err := NewSimulation(g, []*Coast{coast}, env, DefaultConstants())
	if err != nil {
		t.Fatalf("NewSimulation: %v", err)
	}
	if err := sim.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}

	c := g.At(IPoint{X: 3, Y: coastY})
	if c.WaveHeight != env.DeepWaterWaveHeight {
		t.Errorf("offshore-wave profile cell WaveHeight = %v, want deep-water default %v", c.WaveHeight, env.DeepWaterWaveHeight)
	}
}
