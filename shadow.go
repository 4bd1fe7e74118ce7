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
	"sort"

	"github.com/GaryBoone/GoStats/stats"
	"github.com/sirupsen/logrus"
)

// shadowCandidate is the shadow-zone candidate tuple of spec.md §3:
// created in stage 1, pruned through stages 1-3, consumed and
// discarded in stage 4.
type shadowCandidate struct {
	CapeIndex     int    // along-coast index of the cape point
	CapeCell      IPoint // the cape's rasterised cell
	InlandEnd     IPoint // first cell walked that is not land (hit-sea point H)
	Boundary      []IPoint
	TerminalIndex int // along-coast index of the terminal coast point (may be virtual)
	Virtual       bool
}

// DoShadowZones runs all four stages of S6 (spec.md §4.8) against one
// coast and applies surviving zones' effects to the grid.
func DoShadowZones(grid *Grid, coast *Coast, env Environment, constants Constants, logger logrus.FieldLogger) error {
	capeIndices := selectCapeCandidates(coast, constants)
	if len(capeIndices) == 0 {
		return nil
	}

	var candidates []*shadowCandidate
	for _, capeIdx := range capeIndices {
		if len(candidates) >= constants.MaxNumShadowZones {
			break
		}
		cand := buildCandidateBoundary(coast, capeIdx, grid.Geometry, env, constants)
		if cand == nil {
			continue
		}
		traced, err := traceShadowBoundary(grid, coast, cand, env, constants)
		if err != nil {
			if logger != nil {
				logger.WithField("cape", capeIdx).WithError(err).Debug("shadow candidate rejected")
			}
			continue
		}
		if coast.Landforms[traced.CapeIndex] == nil {
			coast.Landforms[traced.CapeIndex] = &CapeLandform{ID: traced.CapeIndex}
		}
		candidates = append(candidates, traced)
	}

	candidates = eliminateNestedZones(candidates)

	for _, cand := range candidates {
		if err := applyShadowZone(grid, coast, cand, env, constants, logger); err != nil {
			if cand.boundaryLength(grid.Geometry) < constants.MaxLenShadowLineToIgnore {
				if logger != nil {
					logger.WithField("cape", cand.CapeIndex).WithError(err).Warn("short shadow zone dropped")
				}
				continue
			}
			return err
		}
	}
	return nil
}

func (c *shadowCandidate) boundaryLength(g GridGeometry) float64 {
	if len(c.Boundary) < 2 {
		return 0
	}
	total := 0.0
	for i := 1; i < len(c.Boundary); i++ {
		total += DistanceBetween(c.Boundary[i-1], c.Boundary[i]) * g.CellSide
	}
	return total
}

// selectCapeCandidates implements stage 1's cape selection (spec.md
// §4.8 stage 1, first part): short-circuit on low curvature variance,
// then greedily pick the most convex points subject to a minimum
// along-coast spacing.
//
// Resolves Open Question 1 (spec.md §9): the source's cape-spacing loop
// condition is an assignment-in-boolean-context that can never test
// spacing; we implement the evidently-intended behaviour of actually
// enforcing CapePointMinSpacing between accepted capes (see DESIGN.md).
func selectCapeCandidates(coast *Coast, constants Constants) []int {
	lo, hi := constants.GridMargin, coast.Len()-constants.GridMargin
	if hi-lo < 1 {
		return nil
	}
	st := new(stats.Stats)
	for i := lo; i < hi; i++ {
		st.Update(coast.Curvature[i])
	}
	if math.Abs(st.PopulationStandardDeviation()) < constants.Tolerance {
		return nil
	}

	type idxCurv struct {
		idx   int
		curve float64
	}
	points := make([]idxCurv, 0, hi-lo)
	for i := lo; i < hi; i++ {
		points = append(points, idxCurv{idx: i, curve: coast.Curvature[i]})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].curve < points[j].curve })

	var accepted []int
	for _, p := range points {
		if len(accepted) >= constants.MaxCapes {
			break
		}
		tooClose := false
		for _, a := range accepted {
			if abs(p.idx-a) < constants.CapePointMinSpacing {
				tooClose = true
				break
			}
		}
		if tooClose {
			continue
		}
		accepted = append(accepted, p.idx)
	}
	return accepted
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

// buildCandidateBoundary implements the second half of stage 1: choose
// the boundary-line orientation phi, extrapolate the far point E, and
// apply the feasibility filter.
func buildCandidateBoundary(coast *Coast, capeIdx int, geometry GridGeometry, env Environment, constants Constants) *shadowCandidate {
	capeCell := coast.CellsMarkedAsCoastline[capeIdx]

	phi := env.DeepWaterWaveOrientation
	if !constants.UseDeepWaterForShadowLine {
		if hb := coast.BreakingWaveOrientation[capeIdx]; hb != DblNoData {
			phi = hb
		}
	}

	// Extrapolate E at distance S = max(nXMax, nYMax) along phi from the
	// cape cell (spec.md §4.8 stage 1), guaranteeing the line reaches
	// the grid edge regardless of orientation.
	s := float64(maxI(geometry.NX, geometry.NY))
	rad := phi * math.Pi / 180
	e := IPoint{
		X: capeCell.X + Round(s*math.Sin(rad)),
		Y: capeCell.Y - Round(s*math.Cos(rad)),
	}

	// Feasibility filter: the shadow line (cape -> E) must point toward
	// the sea side of the coast tangent at the cape, not the land side.
	tangent := coastTangentVector(coast, capeIdx)
	leftNormalX, leftNormalY := -tangent.Y, tangent.X
	dx, dy := float64(e.X-capeCell.X), float64(e.Y-capeCell.Y)
	dot := leftNormalX*dx + leftNormalY*dy
	pointsToSea := (coast.SeaHandedness == Left && dot > 0) || (coast.SeaHandedness == Right && dot < 0)
	if !pointsToSea {
		return nil
	}

	return &shadowCandidate{CapeIndex: capeIdx, CapeCell: capeCell, Boundary: []IPoint{capeCell, e}}
}

// coastTangentVector returns the (dx, dy) tangent vector at coast point
// i, matching the difference scheme CalcCoastTangents uses.
func coastTangentVector(coast *Coast, i int) Point {
	n := coast.Len()
	switch {
	case n < 2:
		return Point{}
	case i == 0:
		return Point{X: coast.Polyline[1].X - coast.Polyline[0].X, Y: coast.Polyline[1].Y - coast.Polyline[0].Y}
	case i == n-1:
		return Point{X: coast.Polyline[n-1].X - coast.Polyline[n-2].X, Y: coast.Polyline[n-1].Y - coast.Polyline[n-2].Y}
	default:
		return Point{X: coast.Polyline[i+1].X - coast.Polyline[i-1].X, Y: coast.Polyline[i+1].Y - coast.Polyline[i-1].Y}
	}
}

// traceShadowBoundary implements stage 2 (spec.md §4.8 stage 2): walk
// the candidate's cape->E line with a DDA rasteriser, find where it
// first enters the sea, and accept/reject based on overland and
// in-sea length, or synthesise a virtual terminal if it leaves the
// grid.
func traceShadowBoundary(grid *Grid, coast *Coast, cand *shadowCandidate, env Environment, constants Constants) (*shadowCandidate, error) {
	from, to := cand.Boundary[0], cand.Boundary[1]
	line := DDALine(from, to)

	hitSeaIdx := -1
	for i, p := range line {
		if !grid.Geometry.InGrid(p) {
			if !constants.CreateShadowZoneIfHitsGridEdge {
				return nil, errShadowCandidateRejected
			}
			if hitSeaIdx < 0 {
				return nil, errShadowCandidateRejected
			}
			seaLen := DistanceBetween(line[hitSeaIdx], line[i-1]) * grid.Geometry.CellSide
			if seaLen < constants.MinSeaLengthOfShadowZoneLine {
				return nil, errShadowCandidateRejected
			}
			virtualIdx := virtualCoastIndex(coast, p, grid.Geometry)
			cand.Boundary = line[:i]
			cand.InlandEnd = line[hitSeaIdx]
			cand.TerminalIndex = virtualIdx
			cand.Virtual = true
			return cand, nil
		}

		isSea := grid.IsSeaAt(p, env.StillWaterLevel)
		if isSea && hitSeaIdx < 0 {
			hitSeaIdx = i
		}

		// A diagonal DDA step can pass between two coast cells without
		// landing on either; also check the south neighbour (spec.md's
		// Rasterisation note) before concluding the line missed the coast.
		coastIdx, onCoast := coast.CoastPointAtCell(p)
		if !onCoast {
			coastIdx, onCoast = coast.CoastPointAtCell(IPoint{X: p.X, Y: p.Y + 1})
		}
		if onCoast {
			sinceHitSea := 0
			if hitSeaIdx >= 0 {
				sinceHitSea = i - hitSeaIdx
			}
			if hitSeaIdx < 0 {
				continue // still walking over land before reaching the sea
			}
			if sinceHitSea <= constants.ShadowLineMinSinceHitSea {
				return nil, errShadowCandidateRejected
			}
			landLen := float64(hitSeaIdx) * grid.Geometry.CellSide
			if landLen > constants.MaxLandLengthOfShadowZoneLine {
				return nil, errShadowCandidateRejected
			}
			seaLen := DistanceBetween(line[hitSeaIdx], p) * grid.Geometry.CellSide
			if seaLen < constants.MinSeaLengthOfShadowZoneLine {
				return nil, errShadowCandidateRejected
			}
			cand.Boundary = line[:i+1]
			cand.InlandEnd = line[hitSeaIdx]
			cand.TerminalIndex = coastIdx
			return cand, nil
		}
	}
	return nil, errShadowCandidateRejected
}

// virtualCoastIndex synthesises an along-coast index for a boundary
// line that leaves the grid before reaching a coast cell (spec.md §4.8
// stage 2.4 / SPEC_FULL.md supplemented feature 4): negative before the
// coast's start, N+offset after its end, preserving along-coast
// ordering for stage 3's interval tests.
func virtualCoastIndex(coast *Coast, edgePoint IPoint, g GridGeometry) int {
	startCell := coast.CellsMarkedAsCoastline[0]
	endCell := coast.CellsMarkedAsCoastline[coast.Len()-1]
	distToStart := DistanceBetween(edgePoint, startCell)
	distToEnd := DistanceBetween(edgePoint, endCell)
	if distToStart <= distToEnd {
		return -Round(distToStart)
	}
	return coast.Len() + Round(distToEnd)
}

var errShadowCandidateRejected = newShadowError("shadow-zone candidate boundary line rejected")

type shadowError string

func newShadowError(s string) error { return shadowError(s) }
func (e shadowError) Error() string { return string(e) }

// eliminateNestedZones implements stage 3 (spec.md §4.8 stage 3): for
// every pair of surviving candidates, drop the one whose
// (capeIndex, terminalIndex) interval lies strictly inside the other's.
func eliminateNestedZones(candidates []*shadowCandidate) []*shadowCandidate {
	dropped := make([]bool, len(candidates))
	for i, z := range candidates {
		if dropped[i] {
			continue
		}
		for j, zp := range candidates {
			if i == j || dropped[j] {
				continue
			}
			if intervalStrictlyInside(zp, z) {
				dropped[j] = true
			}
		}
	}
	out := make([]*shadowCandidate, 0, len(candidates))
	for i, z := range candidates {
		if !dropped[i] {
			out = append(out, z)
		}
	}
	return out
}

// intervalStrictlyInside reports whether candidate's cape and terminal
// indices both lie strictly inside the along-coast interval spanned by
// outer's cape and terminal indices.
func intervalStrictlyInside(candidate, outer *shadowCandidate) bool {
	lo, hi := outer.CapeIndex, outer.TerminalIndex
	if outer.CapeIndex > outer.TerminalIndex {
		lo, hi = outer.TerminalIndex, outer.CapeIndex
	}
	cLo, cHi := candidate.CapeIndex, candidate.TerminalIndex
	if cLo > cHi {
		cLo, cHi = cHi, cLo
	}
	return cLo > lo && cHi < hi
}
