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

// TestAiryCOVESolverShoalsIntoShallowWater checks that, for a small
// onshore angle, wave height increases monotonically as depth decreases
// along a profile running seaward-to-shoreward (shoaling dominates
// refraction at small psi).
func TestAiryCOVESolverShoalsIntoShallowWater(t *testing.T) {
	solver := AiryCOVESolver{}
	distances := []float64{0, 10, 20, 30, 40}
	depths := []float64{20, 15, 10, 5, 2}

	heights, _, _, err := solver.Solve(distances, depths, 8, 1.0, 0, 0)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	for i := 1; i < len(heights); i++ {
		if heights[i] < heights[i-1] {
			t.Errorf("height at shallower point %d (%v) should not be less than at %d (%v)", i, heights[i], i-1, heights[i-1])
		}
	}
}

// TestAiryCOVESolverZeroDepthIsDry checks the dry-cell short circuit: a
// non-positive depth (after surge) produces zero height and full
// breaking fraction rather than a NaN from the dispersion solve.
func TestAiryCOVESolverZeroDepthIsDry(t *testing.T) {
	solver := AiryCOVESolver{}
	heights, orientations, breaking, err := solver.Solve([]float64{0}, []float64{-1}, 8, 1.0, 10, 0)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if heights[0] != 0 {
		t.Errorf("dry point height = %v, want 0", heights[0])
	}
	if orientations[0] != 10 {
		t.Errorf("dry point orientation = %v, want psi unchanged (10)", orientations[0])
	}
	if breaking[0] != 1 {
		t.Errorf("dry point breaking fraction = %v, want 1", breaking[0])
	}
}

// TestAiryCOVESolverEmptyProfile checks that an empty profile returns
// empty slices rather than panicking on the first index.
func TestAiryCOVESolverEmptyProfile(t *testing.T) {
	solver := AiryCOVESolver{}
	heights, orientations, breaking, err := solver.Solve(nil, nil, 8, 1.0, 0, 0)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if len(heights) != 0 || len(orientations) != 0 || len(breaking) != 0 {
		t.Error("empty profile should yield empty result slices")
	}
}

// TestAshtonMurrayCorrectClampsHighAngle checks the two symmetric
// clamping branches of the correction (spec.md §4.4).
func TestAshtonMurrayCorrectClampsHighAngle(t *testing.T) {
	if got := ashtonMurrayCorrect(60, 10, true, 0, false); got != 45 {
		t.Errorf("positive psi with positive prevPsi: got %v, want clamp to 45", got)
	}
	if got := ashtonMurrayCorrect(-60, 0, false, -10, true); got != -45 {
		t.Errorf("negative psi with negative nextPsi: got %v, want clamp to -45", got)
	}
}

// TestAshtonMurrayCorrectLeavesOppositeSignUnchanged checks that the
// correction only fires when the neighbour's psi agrees in sign; a
// neighbour with the opposite sign (or no valid neighbour) leaves psi
// untouched.
func TestAshtonMurrayCorrectLeavesOppositeSignUnchanged(t *testing.T) {
	if got := ashtonMurrayCorrect(60, -10, true, 0, false); got != 60 {
		t.Errorf("positive psi with a negative prevPsi should be left alone, got %v", got)
	}
	if got := ashtonMurrayCorrect(30, 0, false, 0, false); got != 30 {
		t.Errorf("psi with no valid neighbours should be left alone, got %v", got)
	}
}
