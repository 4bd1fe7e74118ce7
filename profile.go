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

// Profile is a cross-shore polyline anchored at one coast point, the
// equivalent of the source's CProfile. Cells[0] coincides with the
// coast cell; Cells[len-1] is the seaward terminus.
type Profile struct {
	CoastIndex int      // index of the coast point this profile is attached to
	Cells      []IPoint // grid cells "under" the profile, coast to sea
	Distances  []float64 // along-profile distance of each cell from Cells[0], metres

	// OKIncStartOfCoast is true if this profile may be used as an
	// interpolation endpoint including the coast start/end terminus.
	OKIncStartOfCoast bool
	// OKIncStartAndEndOfCoast is true if this profile may be used to
	// run the 1-D wave solver (spec.md §4.4).
	OKIncStartAndEndOfCoast bool

	// Results of S2, populated by RunProfileWaves.
	Heights      []float64 // per-cell wave height along the profile
	Orientations []float64 // per-cell wave orientation along the profile
	BreakingIdx  int       // index into Cells/Heights where breaking was detected, or -1

	// BreakingHeight, BreakingOrientation, BreakingDepth and
	// BreakingDistance are the values recorded at BreakingIdx, or
	// DblNoData/IntNoData if no breaking was detected.
	BreakingHeight      float64
	BreakingOrientation float64
	BreakingDepth       float64
	BreakingDistance    int
}

// resetBreaking initialises a profile's NODATA breaking slots; called
// before each timestep's S2 pass.
func (p *Profile) resetBreaking() {
	p.BreakingIdx = -1
	p.BreakingHeight = DblNoData
	p.BreakingOrientation = DblNoData
	p.BreakingDepth = DblNoData
	p.BreakingDistance = IntNoData
}
