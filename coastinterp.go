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

import "gonum.org/v1/gonum/floats"

// InterpolateCoastBreaking implements S3 (spec.md §4.5): walking the
// coast's profiles in along-coast order, it fills the breaking-wave
// attributes of every coast point strictly between two profiles that
// both produced breaking values, and copies the single defined side's
// values when only one neighbour is valid.
func InterpolateCoastBreaking(coast *Coast) {
	valid := make([]int, 0, len(coast.Profiles))
	for _, p := range coast.Profiles {
		if p.BreakingIdx >= 0 {
			valid = append(valid, p.CoastIndex)
		}
	}
	if len(valid) < 2 {
		return
	}
	for k := 0; k < len(valid)-1; k++ {
		p0 := valid[k]
		p1 := valid[k+1]
		d := p1 - p0
		if d <= 1 {
			continue
		}
		ha, hb := coast.BreakingWaveHeight[p0], coast.BreakingWaveHeight[p1]
		oa, ob := coast.BreakingWaveOrientation[p0], coast.BreakingWaveOrientation[p1]
		da, db := coast.BreakingDepth[p0], coast.BreakingDepth[p1]
		dista, distb := float64(coast.BreakingDistance[p0]), float64(coast.BreakingDistance[p1])

		aOK := ha != DblNoData
		bOK := hb != DblNoData

		for i := 1; i < d; i++ {
			idx := p0 + i
			switch {
			case aOK && bOK:
				w := float64(d-i) / float64(d)
				coast.BreakingWaveHeight[idx] = floats.Dot([]float64{w, 1 - w}, []float64{ha, hb})
				coast.BreakingWaveOrientation[idx] = floats.Dot([]float64{w, 1 - w}, []float64{oa, ob})
				coast.BreakingDepth[idx] = floats.Dot([]float64{w, 1 - w}, []float64{da, db})
				coast.BreakingDistance[idx] = Round(floats.Dot([]float64{w, 1 - w}, []float64{dista, distb}))
			case aOK:
				coast.BreakingWaveHeight[idx] = ha
				coast.BreakingWaveOrientation[idx] = oa
				coast.BreakingDepth[idx] = da
				coast.BreakingDistance[idx] = int(dista)
			case bOK:
				coast.BreakingWaveHeight[idx] = hb
				coast.BreakingWaveOrientation[idx] = ob
				coast.BreakingDepth[idx] = db
				coast.BreakingDistance[idx] = int(distb)
			}
		}
	}
}
