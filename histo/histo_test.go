/*
 * histo_test.go, part of gopolymer.
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

package histo

import (
	"encoding/json"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
)

func TestHisto(Te *testing.T) {
	rawdata := []float64{1, 6, 3, 2, 4, 5, 7, 6, 3.5, 3, 5, 1, 1, 0, 0, 5, 8, 1, 2, 3, 44, 3, 7, 3, 1, 3, 5, 32, 1}
	orig := make([]float64, len(rawdata))
	copy(orig, rawdata)
	D := NewData([]float64{0, 1, 2, 3, 4, 8}, rawdata, 3)
	if !floats.Equal(rawdata, orig) {
		Te.Errorf("NewData modified the raw data")
	}
	want := []float64{2, 6, 2, 7, 9}
	if !floats.Equal(D.View(), want) {
		Te.Errorf("got %v, want %v", D.View(), want)
	}
	//8, 32 and 44 are out of range.
	if D.Total() != 26 || D.ID() != 3 {
		Te.Errorf("total %d, id %d", D.Total(), D.ID())
	}
	D.Normalize()
	if math.Abs(D.Sum()-1) > 1e-12 {
		Te.Errorf("normalized sum %v", D.Sum())
	}
	D.Normalize() //normalizing twice changes nothing
	D.AddData(0.5, 8, -1)
	if !D.Normalized() || D.Total() != 27 {
		Te.Errorf("normalized %v, total %d", D.Normalized(), D.Total())
	}
	D.UnNormalize()
	want[0]++
	if !floats.EqualApprox(D.View(), want, 1e-9) {
		Te.Errorf("got %v, want %v", D.View(), want)
	}
	Te.Log(D.String())
}

func TestFromSamples(Te *testing.T) {
	data := []float64{4.1e-9, 5e-9, 3e-9, 7.2e-9, 5.5e-9}
	D := FromSamples(data, 4)
	if D.Total() != len(data) || D.Sum() != float64(len(data)) {
		Te.Errorf("not all the data was counted: %v", D)
	}
	div := D.CopyDividers()
	if div[0] != 3e-9 || div[len(div)-1] <= 7.2e-9 {
		Te.Errorf("dividers %v don't span the data", div)
	}
	same := FromInts([]int{1000, 1000, 1000}, 5)
	if same.Total() != 3 || math.Abs(same.Mode()-1000) > 1e-2 {
		Te.Errorf("constant data: %v, mode %v", same, same.Mode())
	}
	empty := FromSamples(nil, 3)
	if empty.Total() != 0 || len(empty.View()) != 3 || !math.IsNaN(empty.Mean()) {
		Te.Errorf("unexpected empty histogram %v", empty)
	}
}

func TestModeMean(Te *testing.T) {
	D := NewData(Equispaced(0, 10, 5), []float64{1, 3, 3.5, 3.9, 9})
	if D.Mode() != 3 {
		Te.Errorf("mode %v", D.Mode())
	}
	//centers 1,3,3,3,9
	if m := D.Mean(); math.Abs(m-3.8) > 1e-12 {
		Te.Errorf("mean %v", m)
	}
}

func TestHistoJSON(Te *testing.T) {
	D := NewData([]float64{0, 1, 2, 3}, []float64{0.5, 1.5, 1.7, 2.2}, 9)
	j, err := json.Marshal(D)
	if err != nil {
		Te.Fatal(err)
	}
	D2 := new(Data)
	if err := json.Unmarshal(j, D2); err != nil {
		Te.Fatal(err)
	}
	if D2.ID() != 9 || D2.Total() != 4 || !floats.Equal(D2.View(), D.View()) {
		Te.Errorf("got %v from %s", D2, j)
	}
	if err := json.Unmarshal([]byte(`{"dividers":[0,1],"histo":[1,2]}`), D2); err == nil {
		Te.Errorf("inconsistent histogram accepted")
	}
}

func TestReHisto(Te *testing.T) {
	D := NewData([]float64{0, 1, 2}, []float64{0.5, 1.5}, 4)
	D.ReHisto([]float64{0, 1, 2, 3, 4}, []float64{0.5, 1.5, 2.5, 3.5})
	if !floats.Equal(D.CopyDividers(), []float64{0, 1, 2, 3, 4}) {
		Te.Errorf("dividers not replaced: %v", D.CopyDividers())
	}
	if !floats.Equal(D.View(), []float64{1, 1, 1, 1}) || D.Total() != 4 {
		Te.Errorf("got %v, total %d", D.View(), D.Total())
	}
	if c := D.Centers(); !floats.Equal(c, []float64{0.5, 1.5, 2.5, 3.5}) {
		Te.Errorf("centers %v", c)
	}
	Te.Log(D.String())
	//fewer bins than before
	D.ReHisto([]float64{0, 4}, []float64{0.5, 1.5, 2.5})
	if len(D.View()) != 1 || D.View()[0] != 3 || D.Mode() != 2 {
		Te.Errorf("got %v, mode %v", D.View(), D.Mode())
	}
	for _, div := range [][]float64{{1}, {3, 2, 1}, nil} {
		func() {
			defer func() {
				if recover() == nil {
					Te.Errorf("ReHisto accepted dividers %v", div)
				}
			}()
			D.ReHisto(div, []float64{1})
		}()
	}
	if len(D.CopyDividers()) != 2 {
		Te.Errorf("rejected dividers modified the histogram: %v", D.CopyDividers())
	}
}
