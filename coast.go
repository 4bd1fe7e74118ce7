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

// CoastLandform is the narrow capability interface exposed by the
// coast's landform slots (spec.md §9 "Polymorphic landforms"). The
// wave-field core only ever needs a landform's identity and its
// accumulated wave energy; the concrete cape/drift-sink/intervention
// variants belong to the erosion subsystem and are out of scope here.
type CoastLandform interface {
	LandformID() int
	WaveEnergy() float64
	AddWaveEnergy(float64)
}

// CapeLandform is the minimal cape landform slot S6 attaches to a
// coast point once a shadow-zone candidate's cape is accepted there
// (see shadow.go's DoShadowZones), giving S4's wave-energy
// accumulation somewhere to route a cape's own running total, for the
// out-of-scope erosion subsystem to read back later.
type CapeLandform struct {
	ID     int
	Energy float64
}

func (l *CapeLandform) LandformID() int        { return l.ID }
func (l *CapeLandform) WaveEnergy() float64     { return l.Energy }
func (l *CapeLandform) AddWaveEnergy(e float64) { l.Energy += e }

// Coast is an ordered polyline of smoothed external-CRS points, with
// the rasterised cells and per-point attribute arrays the wave-field
// core reads and writes, the equivalent of the source's CCoast /
// CRWCoast.
type Coast struct {
	SeaHandedness Handedness

	Polyline               []Point  // smoothed external-CRS points
	CellsMarkedAsCoastline []IPoint // rasterised integer cells, one per polyline point

	// Per-point parallel arrays, each of length len(Polyline).
	Curvature               []float64
	FluxOrientation         []float64
	BreakingWaveHeight      []float64
	BreakingWaveOrientation []float64
	BreakingDepth           []float64
	BreakingDistance        []int
	WaveEnergy              []float64

	Profiles  []*Profile
	Landforms []CoastLandform

	// ShadowBoundaries holds the rasterised boundary polylines of every
	// shadow zone materialised by S6, terminal-first cape-last, appended
	// across timesteps for downstream consumers.
	ShadowBoundaries [][]IPoint

	coastCellIndex map[IPoint]int // built lazily by CoastPointAtCell
}

// Len returns the number of points on the coast polyline.
func (c *Coast) Len() int { return len(c.Polyline) }

// NewCoast allocates a coast with len(polyline) points and every
// parallel array pre-sized to that length, satisfying the length
// invariant of spec.md §3. The breaking-wave arrays are filled with
// NODATA; Curvature, FluxOrientation and WaveEnergy start at zero.
func NewCoast(handedness Handedness, polyline []Point, cells []IPoint) *Coast {
	n := len(polyline)
	co := &Coast{
		SeaHandedness:           handedness,
		Polyline:                polyline,
		CellsMarkedAsCoastline:  cells,
		Curvature:               make([]float64, n),
		FluxOrientation:         make([]float64, n),
		BreakingWaveHeight:      make([]float64, n),
		BreakingWaveOrientation: make([]float64, n),
		BreakingDepth:           make([]float64, n),
		BreakingDistance:        make([]int, n),
		WaveEnergy:              make([]float64, n),
		Landforms:               make([]CoastLandform, n),
	}
	for i := 0; i < n; i++ {
		co.BreakingWaveHeight[i] = DblNoData
		co.BreakingWaveOrientation[i] = DblNoData
		co.BreakingDepth[i] = DblNoData
		co.BreakingDistance[i] = IntNoData
	}
	return co
}

// CoastPointAtCell returns the along-coast index of the coast point
// rasterised at cell p, grounded on the source's
// coast.cpp:nGetCoastPointGivenCell, which shadow-zone stage 2 needs to
// map a struck coast cell back to its along-coast position.
func (c *Coast) CoastPointAtCell(p IPoint) (int, bool) {
	if c.coastCellIndex == nil {
		c.coastCellIndex = make(map[IPoint]int, len(c.CellsMarkedAsCoastline))
		for i, cc := range c.CellsMarkedAsCoastline {
			c.coastCellIndex[cc] = i
		}
	}
	i, ok := c.coastCellIndex[p]
	return i, ok
}

// normalAzimuth returns the flux-orientation-derived outward sea
// normal at coast point i: the tangent azimuth rotated 90 degrees
// toward the sea, consistent with c.SeaHandedness.
func (c *Coast) normalAzimuth(i int) float64 {
	alpha := c.FluxOrientation[i]
	if alpha == DblNoData {
		return DblNoData
	}
	if c.SeaHandedness == Left {
		return KeepWithin360(alpha - 90)
	}
	return KeepWithin360(alpha + 90)
}
