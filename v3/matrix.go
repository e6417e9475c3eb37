/*
 * matrix.go, part of gopolymer.
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

package v3

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

//Matrix is a set of vectors in 3D space, stored as the rows of a gonum
//Dense with 3 columns. It is the bridge between the Vec values used
//by the chain generator and gonum's linear algebra.
type Matrix struct {
	*mat.Dense
}

//Zeros returns a zero-filled Matrix with vecs vectors.
func Zeros(vecs int) *Matrix {
	const cols int = 3
	f := make([]float64, cols*vecs)
	return &Matrix{mat.NewDense(vecs, cols, f)}
}

//NewMatrix returns a Matrix with 3 columns from data, which is used
//directly, not copied.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	rows := l / cols
	if l%cols != 0 || l == 0 {
		return nil, newError(BadShape, fmt.Sprintf("input slice length %d not a positive multiple of %d", l, cols), "NewMatrix")
	}
	return &Matrix{mat.NewDense(rows, cols, data)}, nil
}

//FromVecs returns a new Matrix with one row per element of vecs.
func FromVecs(vecs []Vec) (*Matrix, error) {
	data := make([]float64, 0, 3*len(vecs))
	for _, v := range vecs {
		data = append(data, v.X, v.Y, v.Z)
	}
	M, err := NewMatrix(data)
	if err != nil {
		return nil, errDecorate(err, "FromVecs")
	}
	return M, nil
}

//NVecs returns the number of vectors in F.
func (F *Matrix) NVecs() int {
	r, c := F.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return r
}

//Vec returns a copy of the ith vector of F.
func (F *Matrix) Vec(i int) Vec {
	if i < 0 || i >= F.NVecs() {
		panic(ErrIndexOutOfRange)
	}
	r := F.RawRowView(i)
	return Vec{r[0], r[1], r[2]}
}

//SetVec sets the ith vector of F to v.
func (F *Matrix) SetVec(i int, v Vec) {
	if i < 0 || i >= F.NVecs() {
		panic(ErrIndexOutOfRange)
	}
	r := F.RawRowView(i)
	r[0], r[1], r[2] = v.X, v.Y, v.Z
}

//VecView returns a view of the ith vector of F. Changes in the view
//are reflected in F and vice-versa.
func (F *Matrix) VecView(i int) *Matrix {
	r := F.Dense.Slice(i, i+1, 0, 3).(*mat.Dense)
	return &Matrix{r}
}

//Vecs returns the vectors in F as a new slice of Vec.
func (F *Matrix) Vecs() []Vec {
	n := F.NVecs()
	ret := make([]Vec, n)
	for i := range ret {
		ret[i] = F.Vec(i)
	}
	return ret
}

//SubVec subtracts the vector v from each vector of A and puts the result
//in F. A and F can be the same matrix.
func (F *Matrix) SubVec(A *Matrix, v Vec) {
	ar, _ := A.Dims()
	if F.NVecs() != ar {
		panic(mat.ErrShape)
	}
	for i := 0; i < ar; i++ {
		F.SetVec(i, A.Vec(i).Sub(v))
	}
}

//ScaleByCol multiplies each vector of A by the corresponding element of
//col and puts the result in F.
func (F *Matrix) ScaleByCol(A *Matrix, col []float64) {
	ar, _ := A.Dims()
	if len(col) != ar || F.NVecs() != ar {
		panic(mat.ErrShape)
	}
	for i := 0; i < ar; i++ {
		F.SetVec(i, A.Vec(i).Scale(col[i]))
	}
}
