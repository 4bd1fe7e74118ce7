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

	"github.com/ctessum/unit"
	"github.com/sirupsen/logrus"
)

// standardGravity is 9.81 m/s^2, declared with length/time^2
// dimensions. Only this default carries dimensions: an
// AiryCOVESolver.Gravity override is a plain float64 and is not checked.
var standardGravity = unit.New(9.81, unit.Dimensions{
	unit.LengthDim: 1,
	unit.TimeDim:   -2,
}).Value()

// WaveSolver1D runs the cross-shore 1-D wave transformation along a
// single profile, seaward to shoreward. Its internals are out of scope
// for this subsystem (spec.md §1 Non-goals); only the contract matters:
// given along-profile distances and depths, plus the deep-water wave
// climate and the corrected angle-to-normal psi, it returns per-point
// wave height, orientation (degrees relative to the profile's shore
// normal, positive toward increasing along-coast index), and the
// fraction of waves already breaking at that point.
type WaveSolver1D interface {
	Solve(distances, depths []float64, T, H0, psi, surge float64) (heights, orientations, breakingFraction []float64, err error)
}

// AiryCOVESolver is the default WaveSolver1D: linear (Airy) wave
// shoaling and refraction in the style of Martin Hurst's COVE model,
// the branch of the source's CalcWavePropertiesOnProfile that runs
// in-process (the CShore branch delegates to an external process and
// has no equivalent here).
type AiryCOVESolver struct {
	Gravity float64 // m/s^2; zero selects standard gravity
}

func (s AiryCOVESolver) gravity() float64 {
	if s.Gravity > 0 {
		return s.Gravity
	}
	return standardGravity
}

// localWaveNumber solves the linear dispersion relation
// omega^2 = g*k*tanh(k*d) for k by 20 passes of plain fixed-point
// iteration from the deep-water guess, avoiding a full Newton solver.
func localWaveNumber(omega, depth, g float64) float64 {
	if depth <= 0 {
		return math.Inf(1)
	}
	k := omega * omega / g // deep-water guess
	for i := 0; i < 20; i++ {
		k = omega * omega / (g * math.Tanh(k*depth))
	}
	return k
}

func (s AiryCOVESolver) Solve(distances, depths []float64, T, H0, psi, surge float64) (heights, orientations, breakingFraction []float64, err error) {
	n := len(depths)
	heights = make([]float64, n)
	orientations = make([]float64, n)
	breakingFraction = make([]float64, n)
	if n == 0 {
		return heights, orientations, breakingFraction, nil
	}

	g := s.gravity()
	omega := 2 * math.Pi / T
	deepK := omega * omega / g
	c0 := g * T / (2 * math.Pi)
	cg0 := c0 / 2 // deep-water group velocity = C0/2

	psiRad := psi * math.Pi / 180

	for i, d := range depths {
		depth := d + surge
		if depth <= 0 {
			heights[i] = 0
			orientations[i] = psi
			breakingFraction[i] = 1
			continue
		}
		k := localWaveNumber(omega, depth, g)
		c := omega / k
		kd := k * depth
		n2 := 0.5 * (1 + 2*kd/math.Sinh(2*kd))
		cg := n2 * c

		// Snell's law refraction: sin(local angle)/C = sin(psi)/C0.
		sinLocal := (c / c0) * math.Sin(psiRad)
		sinLocal = math.Max(-1, math.Min(1, sinLocal))
		localAngle := math.Asin(sinLocal)

		ks := math.Sqrt(cg0 / cg) // shoaling coefficient
		var kr float64
		cosPsi := math.Cos(psiRad)
		cosLocal := math.Cos(localAngle)
		if cosLocal <= 0 {
			kr = 0
		} else {
			kr = math.Sqrt(math.Max(0, cosPsi) / cosLocal)
		}

		h := H0 * ks * kr
		heights[i] = h
		orientations[i] = localAngle * 180 / math.Pi

		if depth > 0 {
			breakingFraction[i] = math.Min(1, h/(0.78*depth))
		} else {
			breakingFraction[i] = 1
		}
	}
	_ = deepK
	return heights, orientations, breakingFraction, nil
}

// ashtonMurrayCorrect applies the Ashton-Murray high-angle wave
// correction (spec.md §4.4): if psi and the previous profile's psi are
// both positive, clamp psi toward the flux-maximising 45 degrees; the
// symmetric case uses the next profile's psi for negative angles.
func ashtonMurrayCorrect(psi float64, prevPsi float64, prevOK bool, nextPsi float64, nextOK bool) float64 {
	switch {
	case psi > 0 && prevOK && prevPsi > 0:
		return minF(psi, 45)
	case psi < 0 && nextOK && nextPsi < 0:
		return maxF(psi, -45)
	}
	return psi
}

// RunProfileWaves implements S2 (spec.md §4.4) over every profile of
// coast whose OKIncStartAndEndOfCoast flag is set: it derives the
// angle-to-normal psi with the Ashton-Murray correction, runs solver,
// detects breaking, writes results back to the profile's cells, and
// returns the scattered samples S5 needs to fill the rest of the grid.
func RunProfileWaves(grid *Grid, coast *Coast, env Environment, constants Constants, solver WaveSolver1D, logger logrus.FieldLogger) ([]VectorSample, []BoolSample, error) {
	var vectorSamples []VectorSample
	var boolSamples []BoolSample

	psiAt := func(i int) (float64, bool) {
		if i < 0 || i >= coast.Len() {
			return 0, false
		}
		return WaveAngleToCoastNormal(env.DeepWaterWaveOrientation, coast.FluxOrientation[i], coast.SeaHandedness)
	}

	for idx, profile := range coast.Profiles {
		profile.resetBreaking()
		if !profile.OKIncStartAndEndOfCoast {
			continue
		}
		psiThis, ok := psiAt(profile.CoastIndex)
		if !ok {
			// Offshore waves: not an error, cells keep deep-water defaults.
			continue
		}

		var prevPsi, nextPsi float64
		var prevOK, nextOK bool
		if idx > 0 {
			prevPsi, prevOK = psiAt(coast.Profiles[idx-1].CoastIndex)
		}
		if idx < len(coast.Profiles)-1 {
			nextPsi, nextOK = psiAt(coast.Profiles[idx+1].CoastIndex)
		}
		psi := ashtonMurrayCorrect(psiThis, prevPsi, prevOK, nextPsi, nextOK)

		depths := make([]float64, len(profile.Cells))
		for j, cp := range profile.Cells {
			c := grid.At(cp)
			if c == nil {
				depths[j] = 0
				continue
			}
			if !c.HasTopLayer() {
				if logger != nil {
					logger.WithField("profile", idx).Warn("profile point has no top layer, aborting profile")
				}
				depths = nil
				break
			}
			depths[j] = env.StillWaterLevel - c.TopOfSediment()
		}
		if depths == nil {
			continue
		}

		heights, orientations, breakingFrac, err := solver.Solve(profile.Distances, depths, env.WavePeriod, env.DeepWaterWaveHeight, psi, 0)
		if err != nil {
			if logger != nil {
				logger.WithField("profile", idx).WithError(err).Warn("profile wave solve failed")
			}
			continue
		}

		// Scan seaward-to-shoreward (spec.md §4.2/§4.4), skipping point
		// zero since it coincides with the coast cell itself; breakIdx
		// ends up the shoreward-most point where the breaking condition
		// still holds.
		gamma := constants.WaveHeightOverWaterDepthAtBreak
		breakIdx := -1
		for j := len(heights) - 1; j >= 1; j-- {
			if breakingFrac[j] >= 0.99 || (depths[j] > 0 && heights[j] > gamma*depths[j]) {
				breakIdx = j
			}
		}

		profile.Heights = heights
		profile.Orientations = orientations
		profile.BreakingIdx = breakIdx

		normalAz := coast.normalAzimuth(profile.CoastIndex)
		if breakIdx >= 0 {
			profile.BreakingHeight = heights[breakIdx]
			profile.BreakingOrientation = KeepWithin360(normalAz + orientations[breakIdx])
			profile.BreakingDepth = depths[breakIdx]
			profile.BreakingDistance = Round(profile.Distances[breakIdx])

			coast.BreakingWaveHeight[profile.CoastIndex] = profile.BreakingHeight
			coast.BreakingWaveOrientation[profile.CoastIndex] = profile.BreakingOrientation
			coast.BreakingDepth[profile.CoastIndex] = profile.BreakingDepth
			coast.BreakingDistance[profile.CoastIndex] = profile.BreakingDistance

			// Landward of breaking: orientation held, height decays
			// linearly to zero at the shoreline (Cells[0]).
			nLand := breakIdx
			for j := breakIdx - 1; j >= 0; j-- {
				frac := float64(j) / float64(maxI(nLand, 1))
				heights[j] = profile.BreakingHeight * frac
				orientations[j] = orientations[breakIdx]
			}
		}

		for j, cp := range profile.Cells {
			c := grid.At(cp)
			if c == nil {
				continue
			}
			az := KeepWithin360(normalAz + orientations[j])
			c.WaveHeight = heights[j]
			c.WaveOrientation = az
			c.IsProfile = true
			c.ActiveZone = breakIdx >= 0 && j >= breakIdx

			rad := az * math.Pi / 180
			vectorSamples = append(vectorSamples, VectorSample{
				Cell: cp,
				Hx:   heights[j] * math.Sin(rad),
				Hy:   heights[j] * math.Cos(rad),
			})
			boolSamples = append(boolSamples, BoolSample{Cell: cp, Active: c.ActiveZone})
		}
	}
	return vectorSamples, boolSamples, nil
}

func maxI(a, b int) int {
	if a > b {
		return a
	}
	return b
}
