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

import "sync"

// Layer is one stratigraphic layer of a cell, split into consolidated
// and unconsolidated thickness, matching the source's per-layer
// horizon bookkeeping in cell.cpp.
type Layer struct {
	Consolidated   float64 `desc:"Consolidated sediment thickness" units:"m"`
	Unconsolidated float64 `desc:"Unconsolidated sediment thickness" units:"m"`
}

// Thickness returns the combined consolidated+unconsolidated thickness
// of the layer.
func (l Layer) Thickness() float64 {
	return l.Consolidated + l.Unconsolidated
}

// Cell holds the per-timestep state of a single raster pixel: layered
// stratigraphy, still-water depth, and the wave attributes this
// subsystem computes.
type Cell struct {
	BasementElevation float64 `desc:"Basement (bedrock) elevation" units:"m"`
	Layers            []Layer `desc:"Stratigraphic layers, base to top"`

	HorizonElevations []float64 `desc:"Elevation of the base of layer 0, then the top of each layer in turn" units:"m"`

	StillWaterDepth float64 `desc:"Still-water depth (0 if dry)" units:"m"`
	WaveHeight      float64 `desc:"Wave height, or DblNoData if dry" units:"m"`
	WaveOrientation float64 `desc:"Wave orientation azimuth, or DblNoData if dry" units:"degrees"`
	ActiveZone      bool    `desc:"True if within the wave-breaking active zone"`
	ShadowCode      ShadowZoneCode

	IsCoastline bool // true if this cell is marked as a coastline cell
	IsProfile   bool // true if this cell lies under a shore-normal profile

	sync.RWMutex // available to callers that share a cell across goroutines; nothing in this package locks it
}

// TopOfSediment returns basement elevation plus the sum of all layer
// thicknesses, the invariant named in spec.md §3.
func (c *Cell) TopOfSediment() float64 {
	top := c.BasementElevation
	for _, l := range c.Layers {
		top += l.Thickness()
	}
	return top
}

// recalcLayerElevations rebuilds HorizonElevations base-to-top:
// index 0 is the basement elevation, index n+1 is the elevation of the
// top of layer n, matching the source's CalcAllLayerElevs.
func (c *Cell) recalcLayerElevations() {
	c.HorizonElevations = c.HorizonElevations[:0]
	c.HorizonElevations = append(c.HorizonElevations, c.BasementElevation)
	for _, l := range c.Layers {
		c.HorizonElevations = append(c.HorizonElevations, l.Thickness()+c.HorizonElevations[len(c.HorizonElevations)-1])
	}
}

// IsSea reports whether the cell's top-of-sediment elevation lies
// below the given still-water level.
func (c *Cell) IsSea(stillWaterLevel float64) bool {
	return c.TopOfSediment() < stillWaterLevel
}

// HasTopLayer reports whether the cell has at least one layer with
// non-zero thickness, the condition the wave solver requires before it
// can run a profile point (spec.md §7). RunProfileWaves skips a profile
// that crosses a cell without one.
func (c *Cell) HasTopLayer() bool {
	for _, l := range c.Layers {
		if l.Thickness() > 0 {
			return true
		}
	}
	return false
}

// resetForTimestep clears the per-timestep wave fields and assigns the
// deep-water defaults to sea cells, implementing S0 (spec.md §4.1) for
// one cell. Dry cells receive NODATA wave height/orientation.
func (c *Cell) resetForTimestep(env Environment) {
	c.recalcLayerElevations()
	top := c.TopOfSediment()
	c.StillWaterDepth = maxF(env.StillWaterLevel-top, 0)
	c.ActiveZone = false
	c.ShadowCode = NotIn
	c.IsProfile = false
	if c.StillWaterDepth > 0 {
		c.WaveHeight = env.DeepWaterWaveHeight
		c.WaveOrientation = env.DeepWaterWaveOrientation
	} else {
		c.WaveHeight = DblNoData
		c.WaveOrientation = DblNoData
	}
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
