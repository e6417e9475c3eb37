/*
 * geometric.go, part of gopolymer.
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
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

func checkMasses(pos []v3.Vec, mass []float64, caller string) (float64, error) {
	if len(pos) == 0 {
		return 0, newCError(InvalidEnsemble, "no positions given", caller)
	}
	if len(pos) != len(mass) {
		return 0, newCError(InvalidEnsemble, fmt.Sprintf("inconsistent positions(%d)/masses(%d)", len(pos), len(mass)), caller)
	}
	total := floats.Sum(mass)
	if !(total > 0) {
		return 0, newCError(DivideByZero, fmt.Sprintf("total mass %g", total), caller)
	}
	return total, nil
}

//CenterOfMass returns the mass-weighted mean of the positions pos with the
//masses mass, and an error if the total mass is not positive.
func CenterOfMass(pos []v3.Vec, mass []float64) (v3.Vec, error) {
	total, err := checkMasses(pos, mass, "CenterOfMass")
	if err != nil {
		return v3.Vec{}, err
	}
	if len(pos) == 1 {
		return pos[0], nil
	}
	var sum v3.Vec
	for i, p := range pos {
		sum = sum.Add(p.Scale(mass[i]))
	}
	com, err := sum.Div(total)
	if err != nil {
		e := newCError(DivideByZero, "", "CenterOfMass")
		e.cause = err
		return v3.Vec{}, e
	}
	return com, nil
}

//RadiusOfGyration returns the mass-weighted root mean square distance between
//the positions pos and their center of mass com.
func RadiusOfGyration(pos []v3.Vec, mass []float64, com v3.Vec) (float64, error) {
	if _, err := checkMasses(pos, mass, "RadiusOfGyration"); err != nil {
		return 0, err
	}
	if len(pos) == 1 {
		return 0, nil
	}
	d2 := make([]float64, len(pos))
	for i, p := range pos {
		d2[i] = p.Sub(com).Norm2()
	}
	return math.Sqrt(stat.Mean(d2, mass)), nil
}

//EndToEnd returns the distance between the first and the last position,
//0 if there are less than 2.
func EndToEnd(pos []v3.Vec) float64 {
	if len(pos) < 2 {
		return 0
	}
	return pos[0].Distance(pos[len(pos)-1])
}

//GyrationTensor returns the mass-weighted gyration tensor of the positions in
//coords, with masses mass. Its trace is the squared radius of gyration.
func GyrationTensor(coords *v3.Matrix, mass []float64) (*mat.SymDense, error) {
	pos := coords.Vecs()
	total, err := checkMasses(pos, mass, "GyrationTensor")
	if err != nil {
		return nil, err
	}
	com, err := CenterOfMass(pos, mass)
	if err != nil {
		return nil, errDecorate(err, "GyrationTensor")
	}
	sqrmass := make([]float64, len(mass))
	for i, m := range mass {
		sqrmass[i] = math.Sqrt(m / total)
	}
	centered := v3.Zeros(len(pos))
	centered.SubVec(coords, com)
	centered.ScaleByCol(centered, sqrmass)
	S := mat.NewSymDense(3, nil)
	S.SymOuterK(1, centered.T())
	return S, nil
}

//Shape contains shape descriptors derived from the eigenvalues of the
//gyration tensor.
type Shape struct {
	Eigenvalues   [3]float64 //ascending order, m^2
	Asphericity   float64    //l3-(l1+l2)/2, m^2. 0 for spherically symmetric sets.
	Acylindricity float64    //l2-l1, m^2. 0 for cylindrically symmetric sets.
	Anisotropy    float64    //relative shape anisotropy, between 0 (sphere) and 1 (rod).
}

//Rg2 returns the squared radius of gyration, the trace of the gyration tensor.
func (S Shape) Rg2() float64 {
	return S.Eigenvalues[0] + S.Eigenvalues[1] + S.Eigenvalues[2]
}

//ShapeIndexes obtains the Shape of the gyration tensor S.
//Based on the work of Theodorou and Suter (1985), Macromolecules, 18, 1206
func ShapeIndexes(S mat.Symmetric) (Shape, error) {
	var ret Shape
	if r := S.SymmetricDim(); r != 3 {
		return ret, newCError(InvalidEnsemble, fmt.Sprintf("gyration tensor must be 3x3, got %dx%d", r, r), "ShapeIndexes")
	}
	var es mat.EigenSym
	if ok := es.Factorize(S, false); !ok {
		return ret, newCError(InvalidEnsemble, "can't obtain the eigenvalues of the gyration tensor", "ShapeIndexes")
	}
	vals := es.Values(nil)
	for i, v := range vals {
		ret.Eigenvalues[i] = math.Max(v, 0) //rounding errors give tiny negative values for collinear sets
	}
	l := ret.Eigenvalues
	ret.Asphericity = l[2] - 0.5*(l[0]+l[1])
	ret.Acylindricity = l[1] - l[0]
	tr := ret.Rg2()
	if tr > 0 {
		ret.Anisotropy = 1 - 3*(l[0]*l[1]+l[1]*l[2]+l[2]*l[0])/(tr*tr)
	}
	return ret, nil
}
