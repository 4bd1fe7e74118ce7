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

// neighborAggregate is the per-cell summary of its 4-connected sea
// neighbours that FillHoles computes, matching the source's
// CalcD50AndFillWaveCalcHoles tally of (nRead, nActive, nShadowOrDownDrift,
// nDownDrift, avgH, avgTheta).
type neighborAggregate struct {
	nRead              int
	nActive            int
	nShadowOrDownDrift int
	nDownDrift         int
	sumH, sumTheta     float64
}

// FillHoles implements S7 (spec.md §4.9): for every sea cell, gather
// its 4-connected sea neighbours' aggregate, then apply the ordered
// imputation rules. Per spec.md §5, all neighbour aggregates are
// computed from a snapshot taken before any cell in this pass is
// mutated, so the result does not depend on iteration order.
func FillHoles(grid *Grid, env Environment) {
	aggs := make(map[IPoint]neighborAggregate)
	for x := 0; x < grid.Geometry.NX; x++ {
		for y := 0; y < grid.Geometry.NY; y++ {
			p := IPoint{X: x, Y: y}
			c := grid.At(p)
			if c == nil || !c.IsSea(env.StillWaterLevel) {
				continue
			}
			aggs[p] = gatherNeighborAggregate(grid, p, env)
		}
	}

	for x := 0; x < grid.Geometry.NX; x++ {
		for y := 0; y < grid.Geometry.NY; y++ {
			p := IPoint{X: x, Y: y}
			c := grid.At(p)
			if c == nil || !c.IsSea(env.StillWaterLevel) {
				continue
			}
			agg, ok := aggs[p]
			if !ok || agg.nRead == 0 {
				continue
			}
			applyHoleFillRules(c, agg, env)
		}
	}
}

func gatherNeighborAggregate(grid *Grid, p IPoint, env Environment) neighborAggregate {
	var agg neighborAggregate
	neighbors := [4]IPoint{
		{X: p.X - 1, Y: p.Y}, {X: p.X + 1, Y: p.Y},
		{X: p.X, Y: p.Y - 1}, {X: p.X, Y: p.Y + 1},
	}
	for _, n := range neighbors {
		c := grid.At(n)
		if c == nil || !c.IsSea(env.StillWaterLevel) {
			continue
		}
		agg.nRead++
		if c.ActiveZone {
			agg.nActive++
		}
		switch c.ShadowCode {
		case InNotYetDone, InDone, Downdrift:
			agg.nShadowOrDownDrift++
		}
		if c.ShadowCode == Downdrift {
			agg.nDownDrift++
		}
		if c.WaveHeight != DblNoData {
			agg.sumH += c.WaveHeight
		}
		if c.WaveOrientation != DblNoData {
			agg.sumTheta += c.WaveOrientation
		}
	}
	return agg
}

func applyHoleFillRules(c *Cell, agg neighborAggregate, env Environment) {
	avgH := agg.sumH / float64(agg.nRead)
	avgTheta := agg.sumTheta / float64(agg.nRead)

	if agg.nActive == 4 && !c.ActiveZone {
		c.ActiveZone = true
	}
	if c.WaveHeight == env.DeepWaterWaveHeight && avgH != c.WaveHeight {
		c.WaveHeight = avgH
	}
	if c.WaveOrientation == env.DeepWaterWaveOrientation && avgTheta != c.WaveOrientation {
		c.WaveOrientation = avgTheta
	}
	switch {
	case c.ShadowCode == InNotYetDone:
		c.ShadowCode = InDone
		c.WaveHeight = avgH
		c.WaveOrientation = avgTheta
	case agg.nDownDrift == 4:
		c.ShadowCode = Downdrift
		c.WaveHeight = avgH
		c.WaveOrientation = avgTheta
	case agg.nShadowOrDownDrift == 4 && c.ShadowCode == NotIn:
		c.ShadowCode = InDone
		c.WaveHeight = avgH
		c.WaveOrientation = avgTheta
	}
}
