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

import "testing"

func TestCellTopOfSediment(t *testing.T) {
	c := &Cell{
		BasementElevation: -10,
		Layers: []Layer{
			{Consolidated: 2, Unconsolidated: 1},
			{Consolidated: 0.5},
		},
	}
	if got, want := c.TopOfSediment(), -6.5; got != want {
		t.Errorf("TopOfSediment() = %v, want %v", got, want)
	}
}

func TestCellIsSea(t *testing.T) {
	c := &Cell{BasementElevation: -5}
	if !c.IsSea(0) {
		t.Error("cell at -5m should be sea at still-water level 0")
	}
	if c.IsSea(-10) {
		t.Error("cell at -5m should not be sea at still-water level -10")
	}
}

func TestCellHasTopLayer(t *testing.T) {
	c := &Cell{}
	if c.HasTopLayer() {
		t.Error("cell with no layers should have no top layer")
	}
	c.Layers = []Layer{{Consolidated: 0, Unconsolidated: 0}}
	if c.HasTopLayer() {
		t.Error("cell with a zero-thickness layer should have no top layer")
	}
	c.Layers = append(c.Layers, Layer{Unconsolidated: 0.1})
	if !c.HasTopLayer() {
		t.Error("cell with a non-zero layer should have a top layer")
	}
}

func TestRecalcLayerElevations(t *testing.T) {
	c := &Cell{
		BasementElevation: -10,
		Layers: []Layer{
			{Consolidated: 2, Unconsolidated: 1}, // top at -7
			{Consolidated: 0.5},                  // top at -6.5
		},
	}
	c.recalcLayerElevations()
	want := []float64{-10, -7, -6.5}
	if len(c.HorizonElevations) != len(want) {
		t.Fatalf("HorizonElevations = %v, want %v", c.HorizonElevations, want)
	}
	for i := range want {
		if c.HorizonElevations[i] != want[i] {
			t.Errorf("HorizonElevations[%d] = %v, want %v", i, c.HorizonElevations[i], want[i])
		}
	}
}

// TestResetForTimestepDefaultInvariance is spec.md §8's "default
// invariance" property (S0): every wet cell receives the deep-water
// wave height/orientation, and every dry cell is reset to NODATA,
// regardless of whatever wave fields it carried from the previous
// timestep.
func TestResetForTimestepDefaultInvariance(t *testing.T) {
	env := Environment{StillWaterLevel: 0, DeepWaterWaveHeight: 1.5, DeepWaterWaveOrientation: 30}

	wet := &Cell{BasementElevation: -5, WaveHeight: 999, WaveOrientation: 999, ActiveZone: true, ShadowCode: InDone}
	wet.resetForTimestep(env)
	if wet.WaveHeight != env.DeepWaterWaveHeight || wet.WaveOrientation != env.DeepWaterWaveOrientation {
		t.Errorf("wet cell after reset = (%v,%v), want deep-water defaults (%v,%v)",
			wet.WaveHeight, wet.WaveOrientation, env.DeepWaterWaveHeight, env.DeepWaterWaveOrientation)
	}
	if wet.ActiveZone || wet.ShadowCode != NotIn {
		t.Error("wet cell after reset should have ActiveZone=false and ShadowCode=NotIn")
	}

	dry := &Cell{BasementElevation: 5, WaveHeight: 999, WaveOrientation: 999}
	dry.resetForTimestep(env)
	if dry.WaveHeight != DblNoData || dry.WaveOrientation != DblNoData {
		t.Errorf("dry cell after reset = (%v,%v), want (NODATA,NODATA)", dry.WaveHeight, dry.WaveOrientation)
	}
}
