/*
 * params.go, part of gopolymer.
 *
 * Copyright 2026 The gopolymer authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package polymer

import (
	"fmt"
	"math"
	"runtime"

	v3 "github.com/rmera/gopolymer/v3"
)

//Default values for the simulation parameters. The defaults model
//polyethylene: a CH2 repeat unit and the C-C bond length.
const (
	DefaultTargetDP      = 1000
	DefaultMolecules     = 50
	DefaultSegmentLength = 0.154e-9 //m
	DefaultMerWeight     = 14.0     //g/mol
	DefaultDPSpread      = 0.1
)

//Params carries everything a simulation needs besides the target degree of
//polymerization and the number of molecules. It replaces any global state:
//physical constants, the random seed and the logger all travel with it.
type Params struct {
	SegmentLength float64      //bond length, in m.
	MerWeight     float64      //mass of a repeat unit, in g/mol (Daltons).
	DPSpread      float64      //relative standard deviation of the degree of polymerization. 0 gives monodisperse ensembles.
	Direction     v3.Direction //method for drawing the bond directions.
	Seed          uint64       //seed for the run. 0 means "seed once from the clock when the run starts".
	Workers       int          //goroutines generating chains. 0 means runtime.GOMAXPROCS(0).
	Logger        Logger       //nil means NoOpLogger.
}

//DefaultParams returns a new Params with the default values.
func DefaultParams() *Params {
	return &Params{
		SegmentLength: DefaultSegmentLength,
		MerWeight:     DefaultMerWeight,
		DPSpread:      DefaultDPSpread,
		Direction:     v3.Gaussian,
	}
}

//Validate returns an InvalidParameters error if p can't be used for a simulation.
func (p *Params) Validate() error {
	switch {
	case p == nil:
		return newCError(InvalidParameters, "nil parameters", "Params.Validate")
	case !(p.SegmentLength > 0) || math.IsInf(p.SegmentLength, 0):
		return newCError(InvalidParameters, fmt.Sprintf("segment length must be positive and finite, got %g", p.SegmentLength), "Params.Validate")
	case !(p.MerWeight > 0) || math.IsInf(p.MerWeight, 0):
		return newCError(InvalidParameters, fmt.Sprintf("mer weight must be positive and finite, got %g", p.MerWeight), "Params.Validate")
	case !(p.DPSpread >= 0) || math.IsInf(p.DPSpread, 0):
		return newCError(InvalidParameters, fmt.Sprintf("DP spread must be non-negative and finite, got %g", p.DPSpread), "Params.Validate")
	case p.Direction != v3.Gaussian && p.Direction != v3.Cube:
		return newCError(InvalidParameters, fmt.Sprintf("unknown direction method %v", p.Direction), "Params.Validate")
	case p.Workers < 0:
		return newCError(InvalidParameters, fmt.Sprintf("negative number of workers %d", p.Workers), "Params.Validate")
	}
	return nil
}

//Copy returns a copy of p.
func (p *Params) Copy() *Params {
	c := *p
	return &c
}

func (p *Params) logger() Logger {
	if p.Logger == nil {
		return NoOpLogger{}
	}
	return p.Logger
}

func (p *Params) workers() int {
	if p.Workers > 0 {
		return p.Workers
	}
	return runtime.GOMAXPROCS(0)
}
