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

// TestInterpolateCoastBreakingLinear is spec.md §8's "linear
// interpolation law" property: a gap between two valid profiles must
// be filled by exact linear interpolation weighted by along-coast
// distance, not by any other scheme (nearest-neighbour, etc).
func TestInterpolateCoastBreakingLinear(t *testing.T) {
	coast := straightCoast(5)
	for i := range coast.Profiles {
		_ = i
	}
	coast.Profiles = []*Profile{
		{CoastIndex: 0, BreakingIdx: 0},
		{CoastIndex: 4, BreakingIdx: 0},
	}
	coast.BreakingWaveHeight[0], coast.BreakingWaveHeight[4] = 1.0, 2.0
	coast.BreakingWaveOrientation[0], coast.BreakingWaveOrientation[4] = 10, 20
	coast.BreakingDepth[0], coast.BreakingDepth[4] = 3, 5
	coast.BreakingDistance[0], coast.BreakingDistance[4] = 1, 9

	InterpolateCoastBreaking(coast)

	// Midpoint (index 2) should be the exact average of the two ends.
	if got, want := coast.BreakingWaveHeight[2], 1.5; math.Abs(got-want) > 1e-9 {
		t.Errorf("BreakingWaveHeight[2] = %v, want %v", got, want)
	}
	if got, want := coast.BreakingWaveOrientation[2], 15.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("BreakingWaveOrientation[2] = %v, want %v", got, want)
	}
	if got, want := coast.BreakingDepth[2], 4.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("BreakingDepth[2] = %v, want %v", got, want)
	}

	// Index 1 (1/4 of the way) should be closer to the index-0 value.
	if got := coast.BreakingWaveHeight[1]; got >= 1.5 {
		t.Errorf("BreakingWaveHeight[1] = %v, expected closer to the index-0 side (<1.5)", got)
	}
}

func TestInterpolateCoastBreakingSingleSided(t *testing.T) {
	coast := straightCoast(3)
	coast.Profiles = []*Profile{{CoastIndex: 0, BreakingIdx: 0}}
	coast.BreakingWaveHeight[0] = 2.5

	InterpolateCoastBreaking(coast) // fewer than 2 valid profiles: no-op

	if coast.BreakingWaveHeight[1] != DblNoData {
		t.Errorf("with only one valid profile, neighbours must remain NODATA, got %v", coast.BreakingWaveHeight[1])
	}
}
