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
	"fmt"

	"github.com/sirupsen/logrus"
)

// SimOption configures a Simulation at construction time, in the style
// of the teacher's InitOption functional-options pattern (framework.go).
type SimOption func(*Simulation) error

// Simulation bundles one timestep's inputs and runs the fixed S0-S7
// pipeline (spec.md §2) once per Step call. A Simulation is not safe
// for concurrent use: the pipeline is single-threaded per timestep
// (spec.md §5).
type Simulation struct {
	Grid        *Grid
	Coasts      []*Coast
	Environment Environment
	Constants   Constants
	Solver      WaveSolver1D
	Interp      ScatteredInterpolator2D
	Log         logrus.FieldLogger
}

// NewSimulation builds a Simulation, applying sensible defaults
// (AiryCOVESolver, RTreeInterpolator, a logrus.New() logger) for any
// dependency the caller does not override via options.
func NewSimulation(grid *Grid, coasts []*Coast, env Environment, constants Constants, opts ...SimOption) (*Simulation, error) {
	s := &Simulation{
		Grid:        grid,
		Coasts:      coasts,
		Environment: env,
		Constants:   constants,
		Solver:      AiryCOVESolver{},
		Interp:      NewRTreeInterpolator(),
		Log:         logrus.New(),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, fmt.Errorf("coastalwave: simulation option failed: %w", err)
		}
	}
	if s.Grid == nil {
		return nil, fmt.Errorf("coastalwave: simulation requires a grid")
	}
	return s, nil
}

// WithSolver overrides the default WaveSolver1D.
func WithSolver(solver WaveSolver1D) SimOption {
	return func(s *Simulation) error {
		s.Solver = solver
		return nil
	}
}

// WithInterpolator overrides the default ScatteredInterpolator2D.
func WithInterpolator(interp ScatteredInterpolator2D) SimOption {
	return func(s *Simulation) error {
		s.Interp = interp
		return nil
	}
}

// WithLogger overrides the default logger.
func WithLogger(logger logrus.FieldLogger) SimOption {
	return func(s *Simulation) error {
		s.Log = logger
		return nil
	}
}

// Step runs one timestep of the pipeline (spec.md §2, S0-S7) over every
// coast registered on the simulation, in order: grid reset, per-coast
// tangents/profile-waves/coast-interpolation/energy, grid-wide scattered
// interpolation and shadow zones per coast, then a final grid-wide hole
// fill. The stage order is fixed; callers choose geometry and physics
// via the Grid/Coasts/Solver/Interp fields, not by reordering Step.
func (s *Simulation) Step() error {
	s.Grid.ResetTimestep(s.Environment) // S0

	for _, coast := range s.Coasts {
		CalcCoastTangents(coast) // S1

		vectors, bools, err := RunProfileWaves(s.Grid, coast, s.Environment, s.Constants, s.Solver, s.Log) // S2
		if err != nil {
			return fmt.Errorf("coastalwave: profile wave solve: %w", err)
		}

		InterpolateCoastBreaking(coast)                       // S3
		AccumulateWaveEnergy(coast, s.Environment, s.Constants) // S4

		if err := s.Interp.InterpolateVectors(s.Grid, s.Environment, vectors); err != nil { // S5
			return fmt.Errorf("coastalwave: scattered vector interpolation: %w", err)
		}
		if err := s.Interp.InterpolateActiveZone(s.Grid, bools); err != nil { // S5
			return fmt.Errorf("coastalwave: scattered active-zone interpolation: %w", err)
		}

		if err := DoShadowZones(s.Grid, coast, s.Environment, s.Constants, s.Log); err != nil { // S6
			return fmt.Errorf("coastalwave: shadow zones: %w", err)
		}
	}

	FillHoles(s.Grid, s.Environment) // S7
	return nil
}
