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

import "errors"

// DblNoData and IntNoData are the sentinel values used for undefined
// floating-point and integer attributes, respectively. Consumers must
// check for these explicitly rather than treating them as zero.
const (
	DblNoData = -9999.0
	IntNoData = -9999
)

// ShadowZoneCode classifies a cell's relationship to a shadow zone.
type ShadowZoneCode int

const (
	NotIn ShadowZoneCode = iota
	Boundary
	InNotYetDone
	InDone
	Downdrift
)

func (s ShadowZoneCode) String() string {
	switch s {
	case NotIn:
		return "NOT_IN"
	case Boundary:
		return "BOUNDARY"
	case InNotYetDone:
		return "IN_NOT_YET_DONE"
	case InDone:
		return "IN_DONE"
	case Downdrift:
		return "DOWNDRIFT"
	default:
		return "UNKNOWN"
	}
}

// Handedness records which side of the coastline the sea lies on when
// walking the coast polyline in the direction of increasing indices.
type Handedness int

const (
	Left Handedness = iota
	Right
)

// Constants groups the tunable parameters that govern shadow-zone
// detection and wave breaking, the equivalent of the source's compiled
// cme.h constants.
type Constants struct {
	GridMargin                       int     // coast points within this many cells of either end are never considered as capes
	CapePointMinSpacing              int     // minimum along-coast spacing between accepted capes
	MaxCapes                         int     // maximum number of capes considered per timestep
	MaxNumShadowZones                int     // cap on surviving shadow-zone candidates
	ShadowLineMinSinceHitSea         int     // cells a boundary trace must stay in the sea before a coast re-encounter is accepted
	MinSeaLengthOfShadowZoneLine     float64 // minimum in-sea length of an accepted boundary line, metres
	MaxLandLengthOfShadowZoneLine    float64 // maximum overland length walked before hitting the sea, metres
	FloodFillStartOffset             int     // perpendicular offset (cells) used when searching for a flood-fill seed
	MaxLenShadowLineToIgnore         float64 // boundary lines shorter than this may be silently dropped on flood-fill failure
	CreateShadowZoneIfHitsGridEdge   bool    // whether a boundary line leaving the grid still yields a virtual terminal
	UseDeepWaterForShadowLine        bool    // true: always use theta0 for boundary orientation; false: prefer local breaking orientation
	WaveHeightOverWaterDepthAtBreak  float64 // gamma: breaking criterion H > gamma*depth
	WalkdenHallParam1                float64 // wave-energy exponent applied to breaking height
	WalkdenHallParam2                float64 // wave-energy exponent applied to wave period
	Tolerance                       float64 // generic numerical tolerance, also used for the stddev(curvature) short-circuit
}

// DefaultConstants returns the constants used by the reference
// implementation when no configuration file overrides them.
func DefaultConstants() Constants {
	return Constants{
		GridMargin:                      2,
		CapePointMinSpacing:             10,
		MaxCapes:                        10,
		MaxNumShadowZones:               10,
		ShadowLineMinSinceHitSea:        2,
		MinSeaLengthOfShadowZoneLine:    10,
		MaxLandLengthOfShadowZoneLine:   50,
		FloodFillStartOffset:            3,
		MaxLenShadowLineToIgnore:        5,
		CreateShadowZoneIfHitsGridEdge:  true,
		UseDeepWaterForShadowLine:       false,
		WaveHeightOverWaterDepthAtBreak: 0.78,
		WalkdenHallParam1:               2.5,
		WalkdenHallParam2:               1.0,
		Tolerance:                       1e-6,
	}
}

// Environment groups the per-timestep boundary conditions supplied by
// the surrounding simulation: still-water level, deep-water wave
// climate, timestep length, and gravity.
type Environment struct {
	StillWaterLevel      float64 // metres, same datum as basement elevation
	DeepWaterWaveHeight  float64 // H0, metres
	DeepWaterWaveOrientation float64 // theta0, degrees azimuth
	WavePeriod           float64 // T, seconds
	TimestepHours        float64 // Delta-t, hours
	Gravity              float64 // m/s^2
}

// Sentinel errors for the fatal conditions of spec.md §7. Per-profile
// and per-candidate failures are handled locally: a profile that
// crosses a cell with no top layer is skipped, and ErrNoTopLayer is not
// returned by any code in this package. A shadow zone that fails with
// ErrShadowZoneFloodFillNoGrid or ErrShadowZoneFloodStartPoint aborts
// the timestep unless its boundary is shorter than
// MaxLenShadowLineToIgnore, in which case it is dropped.
var (
	ErrShadowZoneFloodFillNoGrid = errors.New("coastalwave: shadow-zone boundary cell lies outside the grid")
	ErrShadowZoneFloodStartPoint = errors.New("coastalwave: no valid shadow-zone flood-fill seed found")
	ErrNoTopLayer                = errors.New("coastalwave: profile point has no non-zero stratigraphic layer")
)
