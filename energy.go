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

import "math"

// AccumulateWaveEnergy implements S4 (spec.md §4.6): at every coast
// point with a defined breaking wave height, accumulate wave energy
// using the Walkden-Hall formula E += Hb^p1 * T^p2 * Delta-t-seconds.
func AccumulateWaveEnergy(coast *Coast, env Environment, constants Constants) {
	dtSeconds := env.TimestepHours * 3600
	tp2 := math.Pow(env.WavePeriod, constants.WalkdenHallParam2)
	for i, hb := range coast.BreakingWaveHeight {
		if hb == DblNoData {
			continue
		}
		inc := math.Pow(hb, constants.WalkdenHallParam1) * tp2 * dtSeconds
		coast.WaveEnergy[i] += inc
		if i < len(coast.Landforms) {
			if lf := coast.Landforms[i]; lf != nil {
				lf.AddWaveEnergy(inc)
			}
		}
	}
}
