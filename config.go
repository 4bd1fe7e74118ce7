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
	"bufio"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/ctessum/geom/proj"
)

// ConfigData holds everything needed to build a Simulation from a TOML
// configuration file: grid geometry, the per-timestep environment, and
// the tunable shadow-zone/breaking constants. Loading raster/vector
// inputs themselves is out of scope (spec.md §1 Non-goals); ConfigData
// only describes the grid's shape and the physical parameters that run
// against it.
type ConfigData struct {
	// Grid describes the raster's dimensions, cell size, and CRS.
	Grid struct {
		NX, NY   int
		CellSide float64
		OriginX  float64
		OriginY  float64
		// Proj is a PROJ.4 string identifying the grid's CRS.
		Proj string
	}

	// Environment gives the per-timestep boundary conditions.
	Environment Environment

	// Constants overrides DefaultConstants field by field; zero-valued
	// fields fall back to the default.
	Constants Constants

	sr *proj.SR
}

// ReadConfigFile reads and parses a TOML configuration file describing
// a Simulation's grid geometry, environment, and constants.
func ReadConfigFile(filename string) (config *ConfigData, err error) {
	var (
		file  *os.File
		bytes []byte
	)
	file, err = os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("coastalwave: the configuration file you have specified, %v, does not "+
			"appear to exist. Please check the file name and location and try again", filename)
	}
	defer file.Close()
	reader := bufio.NewReader(file)
	bytes, err = ioutil.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("coastalwave: problem reading configuration file: %w", err)
	}

	config = new(ConfigData)
	if _, err = toml.Decode(string(bytes), config); err != nil {
		return nil, fmt.Errorf("coastalwave: there has been an error parsing the configuration file: %w", err)
	}

	if config.Grid.NX <= 0 || config.Grid.NY <= 0 {
		return nil, fmt.Errorf("coastalwave: you need to specify a positive Grid.NX and Grid.NY")
	}
	if config.Grid.CellSide <= 0 {
		return nil, fmt.Errorf("coastalwave: you need to specify a positive Grid.CellSide")
	}
	if config.Grid.Proj == "" {
		return nil, fmt.Errorf("coastalwave: you need to specify the grid projection in the " +
			"'Proj' configuration variable")
	}
	config.sr, err = proj.Parse(config.Grid.Proj)
	if err != nil {
		return nil, fmt.Errorf("coastalwave: the following error occurred while parsing the grid "+
			"projection (the Proj variable): %w", err)
	}

	if config.Environment.WavePeriod <= 0 {
		return nil, fmt.Errorf("coastalwave: you need to specify a positive Environment.WavePeriod")
	}
	if config.Environment.TimestepHours <= 0 {
		return nil, fmt.Errorf("coastalwave: you need to specify a positive Environment.TimestepHours")
	}
	if config.Environment.Gravity == 0 {
		config.Environment.Gravity = 9.81
	}

	config.Constants = mergeConstants(config.Constants)
	return config, nil
}

// mergeConstants fills any zero-valued field of override with the
// corresponding DefaultConstants field, so a configuration file only
// needs to mention the constants it wants to change.
func mergeConstants(override Constants) Constants {
	d := DefaultConstants()
	if override.GridMargin != 0 {
		d.GridMargin = override.GridMargin
	}
	if override.CapePointMinSpacing != 0 {
		d.CapePointMinSpacing = override.CapePointMinSpacing
	}
	if override.MaxCapes != 0 {
		d.MaxCapes = override.MaxCapes
	}
	if override.MaxNumShadowZones != 0 {
		d.MaxNumShadowZones = override.MaxNumShadowZones
	}
	if override.ShadowLineMinSinceHitSea != 0 {
		d.ShadowLineMinSinceHitSea = override.ShadowLineMinSinceHitSea
	}
	if override.MinSeaLengthOfShadowZoneLine != 0 {
		d.MinSeaLengthOfShadowZoneLine = override.MinSeaLengthOfShadowZoneLine
	}
	if override.MaxLandLengthOfShadowZoneLine != 0 {
		d.MaxLandLengthOfShadowZoneLine = override.MaxLandLengthOfShadowZoneLine
	}
	if override.FloodFillStartOffset != 0 {
		d.FloodFillStartOffset = override.FloodFillStartOffset
	}
	if override.MaxLenShadowLineToIgnore != 0 {
		d.MaxLenShadowLineToIgnore = override.MaxLenShadowLineToIgnore
	}
	d.CreateShadowZoneIfHitsGridEdge = override.CreateShadowZoneIfHitsGridEdge || d.CreateShadowZoneIfHitsGridEdge
	d.UseDeepWaterForShadowLine = override.UseDeepWaterForShadowLine
	if override.WaveHeightOverWaterDepthAtBreak != 0 {
		d.WaveHeightOverWaterDepthAtBreak = override.WaveHeightOverWaterDepthAtBreak
	}
	if override.WalkdenHallParam1 != 0 {
		d.WalkdenHallParam1 = override.WalkdenHallParam1
	}
	if override.WalkdenHallParam2 != 0 {
		d.WalkdenHallParam2 = override.WalkdenHallParam2
	}
	if override.Tolerance != 0 {
		d.Tolerance = override.Tolerance
	}
	return d
}

// Geometry builds the GridGeometry described by the configuration.
func (c *ConfigData) Geometry() GridGeometry {
	return GridGeometry{
		NX:       c.Grid.NX,
		NY:       c.Grid.NY,
		CellSide: c.Grid.CellSide,
		OriginX:  c.Grid.OriginX,
		OriginY:  c.Grid.OriginY,
		SR:       c.sr,
	}
}
