/*
 * histo.go, part of gopolymer.
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

//Package histo builds histograms of ensemble samples, such as the end-to-end
//distances or the degrees of polymerization of a set of chains.
package histo

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

type Data struct {
	id         int
	normalized bool
	total      int
	dividers   []float64
	histo      []float64
}

func (D *Data) MarshalJSON() ([]byte, error) {
	j, err := json.Marshal(struct {
		ID         int       `json:"id"`
		Normalized bool      `json:"normalized"`
		Total      int       `json:"total"`
		Dividers   []float64 `json:"dividers"`
		Histo      []float64 `json:"histo"`
	}{
		ID:         D.id,
		Normalized: D.normalized,
		Total:      D.total,
		Dividers:   D.dividers,
		Histo:      D.histo,
	})
	if err != nil {
		return nil, err
	}
	return j, nil
}

func (D *Data) UnmarshalJSON(b []byte) error {
	var a struct {
		ID         int       `json:"id"`
		Normalized bool      `json:"normalized"`
		Total      int       `json:"total"`
		Dividers   []float64 `json:"dividers"`
		Histo      []float64 `json:"histo"`
	}
	err := json.Unmarshal(b, &a)
	if err != nil {
		return err
	}
	if len(a.Dividers) < 2 || len(a.Histo) != len(a.Dividers)-1 {
		return fmt.Errorf("gopolymer/histo: %d dividers for %d bins", len(a.Dividers), len(a.Histo))
	}
	D.id = a.ID
	D.normalized = a.Normalized
	D.total = a.Total
	D.dividers = a.Dividers
	D.histo = a.Histo
	return nil
}

//ID returns the ID of the histogram
func (D *Data) ID() int {
	return D.id
}

//String prints a -hopefully- pretty string representation of
//the histogram. The representation uses 3 lines of text
func (D *Data) String() string {
	ret := fmt.Sprintf("ID: %d, Normalized: %v, TotalData: %d\n", D.id, D.normalized, D.total)
	d := make([]string, 0, len(D.dividers)-1)
	h := make([]string, 0, len(D.dividers)-1)
	for i, v := range D.histo {
		d = append(d, fmt.Sprintf("%.3g-%.3g", D.dividers[i], D.dividers[i+1]))
		h = append(h, fmt.Sprintf("%9.3f", v))
	}
	return ret + fmt.Sprintf("%s\n%s", strings.Join(d, " "), strings.Join(h, " "))
}

//NewData returns a new histogram from the dividers and rawdata given.
//dividers must be sorted and have at least 2 elements, otherwise NewData panics.
//rawdata can be nil. In that case, an empty histogram is created.
//if an ID for the histogram is given, it will be set. If not, the ID will
//be set to -1.
func NewData(dividers []float64, rawdata []float64, ID ...int) *Data {
	checkDividers(dividers, "NewData")
	d := new(Data)
	//I prefer to copy the slice to avoid somebody changing it from outside
	d.dividers = append(d.dividers[:0:0], dividers...)
	d.histo = make([]float64, len(dividers)-1)
	if rawdata != nil {
		d.ReHisto(d.dividers, rawdata)
	}
	d.id = -1
	if len(ID) > 0 {
		d.id = ID[0]
	}
	return d
}

//Equispaced returns bins+1 dividers evenly spanning [min, max]. If max is
//not larger than min, the range is widened so all the values equal to min
//fall in the bins.
func Equispaced(min, max float64, bins int) []float64 {
	if bins < 1 {
		bins = 1
	}
	if !(max > min) {
		w := math.Abs(min) * 1e-6
		if w == 0 {
			w = 1
		}
		min, max = min-w, min+w
	}
	return floats.Span(make([]float64, bins+1), min, max)
}

//FromSamples returns a histogram of rawdata with bins equal bins
//spanning all the data. The last divider is moved slightly up, so
//the largest value is counted.
func FromSamples(rawdata []float64, bins int, ID ...int) *Data {
	if len(rawdata) == 0 {
		return NewData(Equispaced(0, 1, bins), nil, ID...)
	}
	min, max := floats.Min(rawdata), floats.Max(rawdata)
	div := Equispaced(min, max, bins)
	last := len(div) - 1
	div[last] = math.Nextafter(div[last], math.Inf(1))
	return NewData(div, rawdata, ID...)
}

//FromInts is FromSamples for integer data, such as degrees of polymerization.
func FromInts(rawdata []int, bins int, ID ...int) *Data {
	f := make([]float64, len(rawdata))
	for i, v := range rawdata {
		f[i] = float64(v)
	}
	return FromSamples(f, bins, ID...)
}

//Adds the given data point(s) to the histogram
func (D *Data) AddData(point ...float64) {
	var norma bool
	if D.normalized {
		norma = true
		D.UnNormalize()
	}
	for _, v := range point {
		//Values outside the dividers are just omitted.
		i := sort.SearchFloat64s(D.dividers, v)
		if i < len(D.dividers) && D.dividers[i] == v {
			i++
		}
		if i == 0 || i == len(D.dividers) {
			continue
		}
		D.histo[i-1]++
		D.total++
	}
	//if it was normalized, we should return it to that state
	if norma {
		D.Normalize()
	}
}

//Normalized Returns true if the histogram is normalized
func (D *Data) Normalized() bool {
	return D.normalized
}

//Normalize normalizes the histogram
func (D *Data) Normalize() {
	D.normaunnorma(true)
}

//UnNormalize un-normalizes the histogram
func (D *Data) UnNormalize() {
	D.normaunnorma(false)
}

//normalizes or un-normalizes the histogram depending
//on whether normalize is true
func (D *Data) normaunnorma(normalize bool) {
	if D.total <= 0 || D.normalized == normalize {
		return
	}
	n := float64(D.total)
	D.normalized = false
	if normalize {
		n = 1 / float64(D.total)
		D.normalized = true
	}
	floats.Scale(n, D.histo)
}

//Total returns the number of data points counted in the histogram.
func (D *Data) Total() int {
	return D.total
}

//Copies the dividers of the histogram
func (D *Data) CopyDividers(dest ...[]float64) []float64 {
	d := getCopySlice(len(D.dividers), dest...)
	return floats.ScaleTo(d, 1, D.dividers)
}

//Copy copies the counts (or frequencies) of the histogram
func (D *Data) Copy(dest ...[]float64) []float64 {
	d := getCopySlice(len(D.histo), dest...)
	return floats.ScaleTo(d, 1, D.histo)
}

//View returns the counts of the histogram themselves, not a copy.
func (D *Data) View() []float64 {
	return D.histo
}

//Centers returns the center of each bin.
func (D *Data) Centers() []float64 {
	ret := make([]float64, len(D.histo))
	for i := range ret {
		ret[i] = 0.5 * (D.dividers[i] + D.dividers[i+1])
	}
	return ret
}

//Mode returns the center of the bin with the most counts.
func (D *Data) Mode() float64 {
	return D.Centers()[floats.MaxIdx(D.histo)]
}

//Mean returns the mean of the histogrammed data, taking each point at the
//center of its bin. It returns NaN for an empty histogram.
func (D *Data) Mean() float64 {
	if D.Sum() == 0 {
		return math.NaN()
	}
	return stat.Mean(D.Centers(), D.histo)
}

func (D *Data) Sum() float64 {
	return floats.Sum(D.histo)
}

func checkDividers(dividers []float64, caller string) {
	if len(dividers) < 2 || !sort.Float64sAreSorted(dividers) {
		panic("gopolymer/histo." + caller + ": dividers must be sorted and have at least 2 elements")
	}
}

//ReHisto replaces the contents of the histogram with those of rawdata,
//using the given dividers, which replace the current ones. It panics
//under the same conditions as NewData. rawdata is not modified.
func (D *Data) ReHisto(dividers, rawdata []float64) {
	checkDividers(dividers, "ReHisto")
	D.dividers = append(D.dividers[:0:0], dividers...)
	dividers = D.dividers
	data := make([]float64, len(rawdata))
	copy(data, rawdata)
	sort.Float64s(data)
	//stat.Histograms just panics instead of omitting the values that are off limits
	//so we remove them here before the call.
	maxi := sort.SearchFloat64s(data, dividers[len(dividers)-1])
	mini := sort.SearchFloat64s(data, dividers[0])
	data = data[mini:maxi]
	D.normalized = false
	D.total = len(data) //as this could have been modified
	if len(data) == 0 {
		D.histo = make([]float64, len(dividers)-1)
		return
	}
	D.histo = stat.Histogram(nil, dividers, data, nil)
}

func getCopySlice(N int, dest ...[]float64) []float64 {
	var d []float64
	if len(dest) > 0 && len(dest[0]) >= N {
		d = dest[0]
		if len(dest[0]) > N {
			d = dest[0][:N] //floats.ScaleTo wants both slices to _match_
		}
	} else {
		d = make([]float64, N)
	}
	return d
}
