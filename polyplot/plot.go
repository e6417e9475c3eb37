/*
 * plot.go, part of gopolymer.
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

/*Package polyplot draws the distributions of ensemble descriptors (end-to-end
distances, radii of gyration, degrees of polymerization) as PNG
histograms, using gonum/plot.*/
package polyplot

import (
	"fmt"
	"image/color"
	"math"

	"github.com/rmera/gopolymer/histo"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//Size of the saved plots.
var (
	Width  = 5 * vg.Inch
	Height = 4 * vg.Inch
)

//Density returns the bins of D as a probability density: each bin's weight
//is its count divided by the total count and by the bin width.
func Density(D *histo.Data) []plotter.HistogramBin {
	div := D.CopyDividers()
	counts := D.Copy()
	ret := make([]plotter.HistogramBin, len(counts))
	total := float64(D.Total())
	if D.Normalized() {
		total = 1
	}
	for i, c := range counts {
		ret[i].Min = div[i]
		ret[i].Max = div[i+1]
		if total > 0 {
			ret[i].Weight = c / (total * (div[i+1] - div[i]))
		}
	}
	return ret
}

func basicPlot(title, xlabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = "Probability density"
	p.Add(plotter.NewGrid())
	return p
}

//Histogram plots the histogram D as a probability density and saves it as
//filename (the extension selects the format, as in plot.Save). If ref is not
//nil, it is drawn over the histogram, in the same units.
func Histogram(D *histo.Data, title, xlabel, filename string, ref func(float64) float64) error {
	if D == nil || D.Total() == 0 {
		return fmt.Errorf("gopolymer/polyplot: empty histogram for %s", filename)
	}
	p := basicPlot(title, xlabel)
	bins := Density(D)
	h := &plotter.Histogram{
		Bins:      bins,
		Width:     bins[len(bins)-1].Max - bins[0].Min,
		FillColor: color.RGBA{R: 120, G: 160, B: 220, A: 255},
		LineStyle: plotter.DefaultLineStyle,
	}
	p.Add(h)
	if ref != nil {
		f := plotter.NewFunction(ref)
		f.Samples = 200
		f.Color = color.RGBA{R: 200, A: 255}
		f.Width = vg.Points(1.5)
		p.Add(f)
		p.Legend.Add("ideal chain", f)
	}
	if err := p.Save(Width, Height, filename); err != nil {
		return fmt.Errorf("gopolymer/polyplot: saving %s: %w", filename, err)
	}
	return nil
}

//Distribution builds a histogram of values with the given number of bins and
//plots it as Histogram does.
func Distribution(values []float64, bins int, title, xlabel, filename string, ref func(float64) float64) error {
	return Histogram(histo.FromSamples(values, bins), title, xlabel, filename, ref)
}

//GaussianEndToEnd returns the end-to-end distance density of an ideal
//(Gaussian) chain of n segments of length b:
//4πR²(3/(2πnb²))^(3/2) exp(-3R²/(2nb²)). R and b must be in the same units.
func GaussianEndToEnd(n int, b float64) func(float64) float64 {
	nb2 := float64(n) * b * b
	pref := 4 * math.Pi * math.Pow(3/(2*math.Pi*nb2), 1.5)
	return func(r float64) float64 {
		if r < 0 {
			return 0
		}
		return pref * r * r * math.Exp(-3*r*r/(2*nb2))
	}
}
