/*
 * chain.go, part of gopolymer.
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

	v3 "github.com/rmera/gopolymer/v3"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

//Chain is one realization of a macromolecule in the freely-jointed chain
//model: a random walk of N segments, each bond of fixed length with an
//independent random direction. Segments can overlap, there is no excluded
//volume.
//
//A chain is generated once. Its descriptors are zero until Generate
//returns successfully, and never change afterwards.
type Chain struct {
	target        int
	n             int
	merWeight     float64
	segmentLength float64
	direction     v3.Direction
	rand          *rand.Rand
	segments      []Segment
	com           v3.Vec
	endToEnd      float64
	rg            float64
	generated     bool
}

//NewChain returns a chain with a degree of polymerization drawn from a normal
//distribution centered at target with a standard deviation of
//p.DPSpread*target. The random generator r is used for that draw and,
//later, by Generate. It must not be used concurrently by anything else.
func NewChain(target int, p *Params, r *rand.Rand) (*Chain, error) {
	if err := p.Validate(); err != nil {
		return nil, errDecorate(err, "NewChain")
	}
	if target < 1 {
		return nil, newCError(InvalidParameters, fmt.Sprintf("target degree of polymerization must be at least 1, got %d", target), "NewChain")
	}
	if r == nil {
		return nil, newCError(InvalidParameters, "nil random generator", "NewChain")
	}
	normal := distuv.Normal{
		Mu:    float64(target),
		Sigma: p.DPSpread * float64(target),
		Src:   r,
	}
	C := &Chain{
		target:        target,
		n:             SampleDP(normal.Rand),
		merWeight:     p.MerWeight,
		segmentLength: p.SegmentLength,
		direction:     p.Direction,
		rand:          r,
	}
	return C, nil
}

//SampleDP obtains a degree of polymerization from the draw function,
//rounding it to the nearest integer. Draws that round to less than 1
//(or are NaN) give 1.
func SampleDP(draw func() float64) int {
	v := math.Round(draw())
	if !(v >= 1) {
		return 1
	}
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(v)
}

//Generate builds the chain as a random walk that starts at the origin, and
//computes its descriptors. It can only be called once per chain.
func (C *Chain) Generate() error {
	if C.generated {
		return newCError(AlreadyGenerated, "", "Chain.Generate")
	}
	C.segments = make([]Segment, 0, C.n)
	var last v3.Vec
	for i := 0; i < C.n; i++ {
		s := NewSegment(C.merWeight)
		s.Position = last.RandOnSphere(C.segmentLength, C.rand, C.direction)
		C.segments = append(C.segments, s)
		last = s.Position
	}
	pos := C.positions()
	mass := C.Masses()
	com, err := CenterOfMass(pos, mass)
	if err != nil {
		C.segments = nil
		return errDecorate(err, "Chain.Generate")
	}
	rg, err := RadiusOfGyration(pos, mass, com)
	if err != nil {
		C.segments = nil
		return errDecorate(err, "Chain.Generate")
	}
	C.com = com
	C.rg = rg
	C.endToEnd = EndToEnd(pos)
	C.generated = true
	C.rand = nil
	return nil
}

//release drops the segments of a generated chain. Its descriptors are kept.
func (C *Chain) release() {
	C.segments = nil
}

func (C *Chain) positions() []v3.Vec {
	ret := make([]v3.Vec, len(C.segments))
	for i, s := range C.segments {
		ret[i] = s.Position
	}
	return ret
}

//Target returns the degree of polymerization the chain was drawn around.
func (C *Chain) Target() int { return C.target }

//N returns the realized degree of polymerization, always at least 1.
func (C *Chain) N() int { return C.n }

//MerWeight returns the mass of each segment, in g/mol.
func (C *Chain) MerWeight() float64 { return C.merWeight }

//SegmentLength returns the bond length, in m.
func (C *Chain) SegmentLength() float64 { return C.segmentLength }

//Generated returns true if the chain has been generated.
func (C *Chain) Generated() bool { return C.generated }

//Mass returns the molecular weight of the chain, in g/mol.
func (C *Chain) Mass() float64 { return float64(C.n) * C.merWeight }

//Segments returns a copy of the segments of the chain, in backbone order.
//Segment i is bonded to i-1 and i+1.
func (C *Chain) Segments() []Segment {
	ret := make([]Segment, len(C.segments))
	copy(ret, C.segments)
	return ret
}

//Masses returns a slice with the mass of each segment.
func (C *Chain) Masses() []float64 {
	ret := make([]float64, len(C.segments))
	for i, s := range C.segments {
		ret[i] = s.Mass
	}
	return ret
}

//Coords returns the positions of the segments as the rows of a new
//v3.Matrix, or nil if the chain has not been generated.
func (C *Chain) Coords() *v3.Matrix {
	if !C.generated || len(C.segments) == 0 {
		return nil
	}
	M, err := v3.FromVecs(C.positions())
	if err != nil {
		panic(err.Error()) //a generated chain has at least one segment
	}
	return M
}

//CenterOfMass returns the mass-weighted center of the chain, in m.
func (C *Chain) CenterOfMass() v3.Vec { return C.com }

//EndToEnd returns the distance between the first and the last segments, in m.
func (C *Chain) EndToEnd() float64 { return C.endToEnd }

//RadiusOfGyration returns the mass-weighted RMS distance of the segments to the
//center of mass, in m.
func (C *Chain) RadiusOfGyration() float64 { return C.rg }

//GyrationTensor returns the gyration tensor of the chain.
func (C *Chain) GyrationTensor() (*mat.SymDense, error) {
	if !C.generated {
		return nil, newCError(InvalidEnsemble, "chain not generated", "Chain.GyrationTensor")
	}
	S, err := GyrationTensor(C.Coords(), C.Masses())
	return S, errDecorate(err, "Chain.GyrationTensor")
}

//Shape returns the shape descriptors of the chain.
func (C *Chain) Shape() (Shape, error) {
	S, err := C.GyrationTensor()
	if err != nil {
		return Shape{}, errDecorate(err, "Chain.Shape")
	}
	sh, err := ShapeIndexes(S)
	return sh, errDecorate(err, "Chain.Shape")
}
