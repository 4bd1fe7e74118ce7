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

// CalcCoastTangents implements S1 (spec.md §4.2): for every coast
// point, compute a flux-orientation azimuth from the local tangent of
// the smoothed polyline, using a forward difference at the start,
// backward at the end, and a central difference everywhere else,
// grounded on the source's CCoast::CalcCoastTangents.
func CalcCoastTangents(coast *Coast) {
	n := coast.Len()
	if n < 2 {
		for p := 0; p < n; p++ {
			coast.FluxOrientation[p] = DblNoData
		}
		return
	}
	for p := 0; p < n; p++ {
		var dx, dy float64
		switch {
		case p == 0:
			dx = coast.Polyline[1].X - coast.Polyline[0].X
			dy = coast.Polyline[1].Y - coast.Polyline[0].Y
		case p == n-1:
			dx = coast.Polyline[n-1].X - coast.Polyline[n-2].X
			dy = coast.Polyline[n-1].Y - coast.Polyline[n-2].Y
		default:
			dx = coast.Polyline[p+1].X - coast.Polyline[p-1].X
			dy = coast.Polyline[p+1].Y - coast.Polyline[p-1].Y
		}
		coast.FluxOrientation[p] = Azimuth(dx, dy)
	}
}
