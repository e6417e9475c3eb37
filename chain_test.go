/*
 * chain_test.go, part of gopolymer.
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
	"errors"
	"math"
	"testing"

	v3 "github.com/rmera/gopolymer/v3"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"
)

func newTestChain(Te *testing.T, target int, p *Params, seed uint64) *Chain {
	Te.Helper()
	C, err := NewChain(target, p, rand.New(rand.NewSource(seed)))
	if err != nil {
		Te.Fatal(err)
	}
	if err := C.Generate(); err != nil {
		Te.Fatal(err)
	}
	return C
}

func TestSampleDP(Te *testing.T) {
	cases := []struct {
		draw float64
		want int
	}{
		{1000.4, 1000},
		{999.5, 1000},
		{1.2, 1},
		{0.5, 1},
		{0.49, 1},
		{0, 1},
		{-3.7, 1},
		{-1e9, 1},
		{math.NaN(), 1},
		{math.Inf(-1), 1},
	}
	for _, c := range cases {
		if got := SampleDP(func() float64 { return c.draw }); got != c.want {
			Te.Errorf("SampleDP(%v)=%d, want %d", c.draw, got, c.want)
		}
	}
}

//With a spread this large, most draws around a target of 1 are below 1.
func TestSampledDPAtLeastOne(Te *testing.T) {
	p := DefaultParams()
	p.DPSpread = 3
	r := rand.New(rand.NewSource(11))
	clipped := 0
	for i := 0; i < 10000; i++ {
		C, err := NewChain(1, p, r)
		if err != nil {
			Te.Fatal(err)
		}
		if C.N() < 1 {
			Te.Fatalf("draw %d gave N=%d", i, C.N())
		}
		if C.N() == 1 {
			clipped++
		}
	}
	if clipped < 5000 {
		Te.Errorf("expected most chains to be clipped to 1, got %d", clipped)
	}
}

func TestNoSpread(Te *testing.T) {
	p := DefaultParams()
	p.DPSpread = 0
	r := rand.New(rand.NewSource(5))
	for _, target := range []int{1, 2, 17, 1000} {
		C, err := NewChain(target, p, r)
		if err != nil {
			Te.Fatal(err)
		}
		if C.N() != target || C.Target() != target {
			Te.Errorf("target %d gave N=%d", target, C.N())
		}
	}
}

func TestSingleSegment(Te *testing.T) {
	p := DefaultParams()
	p.DPSpread = 0
	C := newTestChain(Te, 1, p, 9)
	if C.N() != 1 || len(C.Segments()) != 1 {
		Te.Fatalf("expected a single segment, got %d", C.N())
	}
	if C.EndToEnd() != 0 {
		Te.Errorf("end-to-end distance %v", C.EndToEnd())
	}
	if C.RadiusOfGyration() != 0 {
		Te.Errorf("radius of gyration %v", C.RadiusOfGyration())
	}
	s := C.Segments()[0]
	if C.CenterOfMass() != s.Position {
		Te.Errorf("center of mass %v, segment at %v", C.CenterOfMass(), s.Position)
	}
	if d := s.Position.Norm(); math.Abs(d-p.SegmentLength) > 1e-9*p.SegmentLength {
		Te.Errorf("first segment at %v from the origin", d)
	}
	if C.Mass() != p.MerWeight {
		Te.Errorf("mass %v", C.Mass())
	}
}

func TestChainGeometry(Te *testing.T) {
	for _, dir := range []v3.Direction{v3.Gaussian, v3.Cube} {
		p := DefaultParams()
		p.Direction = dir
		C := newTestChain(Te, 500, p, 21)
		segs := C.Segments()
		if len(segs) != C.N() {
			Te.Fatalf("%d segments for N=%d", len(segs), C.N())
		}
		b := p.SegmentLength
		var prev v3.Vec
		for i, s := range segs {
			if s.Mass != p.MerWeight {
				Te.Fatalf("segment %d has mass %v", i, s.Mass)
			}
			if d := s.Position.Distance(prev); math.Abs(d-b) > 1e-9*b {
				Te.Fatalf("%v: bond %d has length %v", dir, i, d)
			}
			prev = s.Position
		}
		want := segs[0].Position.Distance(segs[len(segs)-1].Position)
		if C.EndToEnd() != want {
			Te.Errorf("end-to-end %v, want %v", C.EndToEnd(), want)
		}
		if !(C.RadiusOfGyration() > 0) {
			Te.Errorf("radius of gyration %v", C.RadiusOfGyration())
		}
	}
}

//With equal masses, the mass-weighted center is the plain mean of the positions.
func TestCenterOfMassUniform(Te *testing.T) {
	C := newTestChain(Te, 300, DefaultParams(), 33)
	segs := C.Segments()
	xs := make([]float64, len(segs))
	ys := make([]float64, len(segs))
	zs := make([]float64, len(segs))
	for i, s := range segs {
		xs[i], ys[i], zs[i] = s.Position.X, s.Position.Y, s.Position.Z
	}
	mean := v3.NewVec(stat.Mean(xs, nil), stat.Mean(ys, nil), stat.Mean(zs, nil))
	com := C.CenterOfMass()
	if d := com.Distance(mean); d > 1e-9*C.RadiusOfGyration() {
		Te.Errorf("center of mass %v, plain mean %v", com, mean)
	}
}

func TestGenerateOnce(Te *testing.T) {
	C := newTestChain(Te, 10, DefaultParams(), 1)
	com := C.CenterOfMass()
	err := C.Generate()
	if !errors.Is(err, ErrAlreadyGenerated) {
		Te.Fatalf("expected ErrAlreadyGenerated, got %v", err)
	}
	if C.CenterOfMass() != com {
		Te.Errorf("descriptors changed after a second Generate")
	}
}

func TestNotGenerated(Te *testing.T) {
	C, err := NewChain(10, DefaultParams(), rand.New(rand.NewSource(1)))
	if err != nil {
		Te.Fatal(err)
	}
	if C.Generated() || C.Coords() != nil || C.EndToEnd() != 0 || C.RadiusOfGyration() != 0 || C.CenterOfMass() != (v3.Vec{}) {
		Te.Errorf("descriptors of an ungenerated chain should be zero")
	}
	if _, err := C.Shape(); !errors.Is(err, ErrInvalidEnsemble) {
		Te.Errorf("expected ErrInvalidEnsemble, got %v", err)
	}
}

func TestNewChainErrors(Te *testing.T) {
	r := rand.New(rand.NewSource(1))
	bad := DefaultParams()
	bad.MerWeight = 0
	negspread := DefaultParams()
	negspread.DPSpread = -0.1
	cases := []struct {
		name   string
		target int
		p      *Params
		r      *rand.Rand
	}{
		{"zero target", 0, DefaultParams(), r},
		{"negative target", -5, DefaultParams(), r},
		{"nil params", 10, nil, r},
		{"nil generator", 10, DefaultParams(), nil},
		{"zero mer weight", 10, bad, r},
		{"negative spread", 10, negspread, r},
	}
	for _, c := range cases {
		_, err := NewChain(c.target, c.p, c.r)
		if !errors.Is(err, ErrInvalidParameters) {
			Te.Errorf("%s: expected ErrInvalidParameters, got %v", c.name, err)
		}
	}
}

func TestChainShape(Te *testing.T) {
	C := newTestChain(Te, 400, DefaultParams(), 77)
	sh, err := C.Shape()
	if err != nil {
		Te.Fatal(err)
	}
	rg2 := C.RadiusOfGyration() * C.RadiusOfGyration()
	if math.Abs(sh.Rg2()-rg2) > 1e-9*rg2 {
		Te.Errorf("trace of the gyration tensor %v, Rg^2 %v", sh.Rg2(), rg2)
	}
	if sh.Anisotropy < 0 || sh.Anisotropy > 1 {
		Te.Errorf("anisotropy out of range: %v", sh.Anisotropy)
	}
	if sh.Eigenvalues[0] > sh.Eigenvalues[1] || sh.Eigenvalues[1] > sh.Eigenvalues[2] {
		Te.Errorf("eigenvalues not sorted: %v", sh.Eigenvalues)
	}
	Te.Logf("shape: %+v", sh)
}
