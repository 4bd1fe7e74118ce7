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

	"github.com/sirupsen/logrus"
)

// applyShadowZone implements stage 4 (spec.md §4.8 stage 4) for one
// surviving candidate: materialise its boundary, flood-fill the
// interior, sweep wave attributes inside the zone, then sweep the
// downdrift attenuation beyond the terminal.
func applyShadowZone(grid *Grid, coast *Coast, cand *shadowCandidate, env Environment, constants Constants, logger logrus.FieldLogger) error {
	// 4.1: materialise the boundary, terminal-first cape-last (the
	// candidate was traced cape-to-terminal, so reverse it).
	reversed := make([]IPoint, len(cand.Boundary))
	for i, p := range cand.Boundary {
		reversed[len(cand.Boundary)-1-i] = p
	}
	coast.ShadowBoundaries = append(coast.ShadowBoundaries, reversed)

	for _, p := range cand.Boundary {
		c := grid.At(p)
		if c == nil {
			return ErrShadowZoneFloodFillNoGrid
		}
		c.ShadowCode = Boundary
		if c.IsSea(env.StillWaterLevel) {
			c.ShadowCode = InNotYetDone
		}
	}

	seed, ok := findFloodFillSeed(grid, coast, cand, env, constants)
	if !ok {
		return ErrShadowZoneFloodStartPoint
	}
	floodFillShadowZone(grid, coast, seed, env)

	lengthOfSweep := sweepShadowZone(grid, coast, cand, env, constants)
	sweepDownDrift(grid, coast, cand, lengthOfSweep, env)

	if logger != nil {
		logger.WithField("cape", cand.CapeIndex).WithField("terminal", cand.TerminalIndex).
			WithField("sweepLength", lengthOfSweep).Debug("shadow zone applied")
	}
	return nil
}

// findFloodFillSeed implements stage 4.2's seed search (spec.md §4.8):
// walk the weighted midpoint between terminal and cape from w=0.05
// upward, offsetting perpendicular to the boundary line into the
// shadow-zone side by a shrinking number of cells, until a sea cell is
// found.
func findFloodFillSeed(grid *Grid, coast *Coast, cand *shadowCandidate, env Environment, constants Constants) (IPoint, bool) {
	terminal := terminalPoint(coast, cand, grid.Geometry)
	cape := cand.CapeCell

	dx := float64(cape.X - terminal.X)
	dy := float64(cape.Y - terminal.Y)
	length := math.Hypot(dx, dy)
	if length == 0 {
		return IPoint{}, false
	}
	// Perpendicular direction into the shadow-zone side: for a
	// down-coast candidate (cape index > terminal index) the zone lies
	// to the coast-normal side matching the handedness; for up-coast it
	// is the opposite side. Using the same left-normal convention as
	// the feasibility filter keeps this consistent with buildCandidateBoundary.
	perpX, perpY := -dy/length, dx/length
	if cand.CapeIndex <= cand.TerminalIndex {
		perpX, perpY = -perpX, -perpY
	}
	if coast.SeaHandedness == Right {
		perpX, perpY = -perpX, -perpY
	}

	for w := 0.05; w < 1.0; w += 0.05 {
		mx := (1-w)*float64(terminal.X) + w*float64(cape.X)
		my := (1-w)*float64(terminal.Y) + w*float64(cape.Y)
		for offset := constants.FloodFillStartOffset; offset >= 1; offset-- {
			p := IPoint{
				X: Round(mx + perpX*float64(offset)),
				Y: Round(my + perpY*float64(offset)),
			}
			if grid.IsSeaAt(p, env.StillWaterLevel) {
				c := grid.At(p)
				if c.ShadowCode == NotIn {
					return p, true
				}
			}
		}
	}
	return IPoint{}, false
}

func terminalPoint(coast *Coast, cand *shadowCandidate, g GridGeometry) IPoint {
	if !cand.Virtual && cand.TerminalIndex >= 0 && cand.TerminalIndex < coast.Len() {
		return coast.CellsMarkedAsCoastline[cand.TerminalIndex]
	}
	if len(cand.Boundary) > 0 {
		return cand.Boundary[len(cand.Boundary)-1]
	}
	return cand.CapeCell
}

// floodFillShadowZone implements stage 4.2's flood fill with an explicit
// stack over 4-connected neighbours: from seed, advance only into
// contiguous-sea cells that are not coast, not
// boundary, and not already shadow-coded, tagging them
// IN_SHADOW_ZONE_NOT_YET_DONE.
func floodFillShadowZone(grid *Grid, coast *Coast, seed IPoint, env Environment) {
	stack := []IPoint{seed}
	visited := make(map[IPoint]bool)
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[p] {
			continue
		}
		c := grid.At(p)
		if c == nil || !c.IsSea(env.StillWaterLevel) || c.IsCoastline || c.ShadowCode != NotIn {
			continue
		}
		visited[p] = true
		c.ShadowCode = InNotYetDone

		neighbors := [4]IPoint{
			{X: p.X - 1, Y: p.Y}, {X: p.X + 1, Y: p.Y},
			{X: p.X, Y: p.Y - 1}, {X: p.X, Y: p.Y + 1},
		}
		for _, n := range neighbors {
			if !visited[n] {
				stack = append(stack, n)
			}
		}
	}
	_ = coast
}

// sweepShadowZone implements stage 4.3: for each coast point between
// the terminal and the cape (walking inward), cast a ray from the cape
// to that coast point and attenuate every unprocessed
// IN_SHADOW_ZONE_NOT_YET_DONE cell it crosses by the angle subtended
// from the cape-to-terminal reference ray. Returns the along-coast
// sweep length (spec.md §9, Open Question 2: nLengthOfSweep, the only
// counter the downdrift sweep actually consumes).
func sweepShadowZone(grid *Grid, coast *Coast, cand *shadowCandidate, env Environment, constants Constants) int {
	terminal := terminalPoint(coast, cand, grid.Geometry)
	cape := cand.CapeCell

	step := 1
	if cand.CapeIndex < cand.TerminalIndex {
		step = -1
	}

	lengthOfSweep := 0
	for idx := cand.TerminalIndex; indexInRange(idx, cand.TerminalIndex, cand.CapeIndex); idx += step {
		if idx < 0 || idx >= coast.Len() {
			lengthOfSweep++
			continue
		}
		endCell := coast.CellsMarkedAsCoastline[idx]
		ray := DDALine(cape, endCell)
		for _, p := range ray {
			c := grid.At(p)
			if c == nil || c.ShadowCode != InNotYetDone {
				continue
			}
			omega := AngleSubtended(cape, terminal, p)
			if math.Abs(omega) >= 90 {
				c.WaveHeight = 0
				c.WaveOrientation = 0
			} else {
				sign := 1.0
				if coast.SeaHandedness == Right {
					sign = -1.0
				}
				c.WaveOrientation = KeepWithin360(c.WaveOrientation + sign*1.5*omega)
				c.WaveHeight = 0.5 * math.Cos(omega*math.Pi/180) * c.WaveHeight
			}
			c.ShadowCode = InDone
		}
		lengthOfSweep++
	}
	return lengthOfSweep
}

func indexInRange(idx, a, b int) bool {
	if a <= b {
		return idx <= b
	}
	return idx >= b
}

// sweepDownDrift implements stage 4.4: continue past the terminal in
// the opposite along-coast direction for lengthOfSweep further coast
// positions, attenuating by a sinusoidal ramp from 0.5 (at the
// terminal) to 1.0 (at the sweep's far end). At each position only the
// coast point's own cell is examined, and it is attenuated only if it
// is contiguous sea (IsSeaAt, so not flagged IsCoastline) and still
// NotIn; no other sea cells are swept.
func sweepDownDrift(grid *Grid, coast *Coast, cand *shadowCandidate, lengthOfSweep int, env Environment) {
	if lengthOfSweep <= 0 {
		return
	}
	// Downdrift continues past the terminal in the direction away from
	// the cape: if the terminal sits at a higher along-coast index than
	// the cape, further positions run higher still, and vice versa.
	step := 1
	if cand.TerminalIndex < cand.CapeIndex {
		step = -1
	}

	cape := cand.CapeCell
	for i := 1; i <= lengthOfSweep; i++ {
		idx := cand.TerminalIndex + step*i
		if idx < 0 || idx >= coast.Len() {
			continue
		}
		p := coast.CellsMarkedAsCoastline[idx]
		if !grid.IsSeaAt(p, env.StillWaterLevel) {
			continue
		}
		c := grid.At(p)
		if c.ShadowCode != NotIn {
			continue
		}
		factor := 0.5 + 0.5*math.Sin(math.Pi*float64(i)/(2*float64(lengthOfSweep)))
		c.WaveHeight *= factor
		c.ShadowCode = Downdrift
	}
	_ = cape
}
