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

// WaveAngleToCoastNormal computes the angle psi between the deep-water
// wave direction theta0 and the outward coast normal at a point whose
// local tangent azimuth is alpha, given the coast's handedness
// (spec.md §4.3). If the waves are offshore (|psi| >= 90 degrees) it
// returns DblNoData and ok=false, matching the source's
// dCalcWaveAngleToCoastNormal.
func WaveAngleToCoastNormal(theta0, alpha float64, handedness Handedness) (psi float64, ok bool) {
	if alpha == DblNoData {
		return DblNoData, false
	}
	offset := 270.0
	if handedness == Left {
		offset = 90.0
	}
	psi = KeepWithin360(theta0-alpha+360) - offset
	if math.Abs(psi) >= 90 {
		return DblNoData, false
	}
	return psi, true
}
