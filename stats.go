/*
 * stats.go, part of gopolymer.
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
	"gonum.org/v1/gonum/stat"
)

//Samples holds the per-chain descriptors of an ensemble, in chain order.
type Samples struct {
	EndToEnd []float64 `json:"end_to_end"` //m
	Gyration []float64 `json:"gyration"`   //m
	DP       []int     `json:"dp"`
}

//Stats contains the statistics of an ensemble of chains. Standard
//deviations and variances are population ones.
type Stats struct {
	TargetDP  int    `json:"target_dp"`
	Molecules int    `json:"molecules"`
	Seed      uint64 `json:"seed"`

	AvgCenterOfMass     v3.Vec  `json:"avg_center_of_mass"` //m
	AvgEndToEnd         float64 `json:"avg_end_to_end"`     //m
	StdEndToEnd         float64 `json:"std_end_to_end"`     //m
	AvgRadiusOfGyration float64 `json:"avg_rg"`             //m
	StdRadiusOfGyration float64 `json:"std_rg"`             //m
	MeanDP              float64 `json:"mean_dp"`
	//PDI is the variance over the mean of the realized degrees of
	//polymerization. It is 0 when all chains have the same length.
	PDI float64 `json:"pdi"`

	Samples Samples `json:"samples"`
}

//Aggregate computes the statistics of the given generated chains.
func Aggregate(chains []*Chain) (*Stats, error) {
	if len(chains) == 0 {
		return nil, newCError(InvalidEnsemble, "no chains given", "Aggregate")
	}
	n := len(chains)
	ret := &Stats{
		TargetDP:  chains[0].Target(),
		Molecules: n,
		Samples: Samples{
			EndToEnd: make([]float64, n),
			Gyration: make([]float64, n),
			DP:       make([]int, n),
		},
	}
	dp := make([]float64, n)
	var com v3.Vec
	for i, c := range chains {
		if c == nil || !c.Generated() {
			return nil, newCError(InvalidEnsemble, fmt.Sprintf("chain %d has not been generated", i), "Aggregate")
		}
		com = com.Add(c.CenterOfMass())
		ret.Samples.EndToEnd[i] = c.EndToEnd()
		ret.Samples.Gyration[i] = c.RadiusOfGyration()
		ret.Samples.DP[i] = c.N()
		dp[i] = float64(c.N())
	}
	ret.AvgCenterOfMass = com.Scale(1 / float64(n))
	ret.AvgEndToEnd, ret.StdEndToEnd = stat.PopMeanStdDev(ret.Samples.EndToEnd, nil)
	ret.AvgRadiusOfGyration, ret.StdRadiusOfGyration = stat.PopMeanStdDev(ret.Samples.Gyration, nil)
	ret.MeanDP, ret.PDI = pdi(dp)
	return ret, nil
}

//pdi returns the mean and the variance-to-mean ratio of dp.
func pdi(dp []float64) (float64, float64) {
	monodisperse := true
	for _, v := range dp[1:] {
		if v != dp[0] {
			monodisperse = false
			break
		}
	}
	if monodisperse {
		return dp[0], 0
	}
	mean, variance := stat.PopMeanVariance(dp, nil)
	return mean, math.Max(variance, 0) / mean
}

//MeanSquareEndToEnd returns the mean of the squared end-to-end distances, in m^2.
func (S *Stats) MeanSquareEndToEnd() float64 {
	if len(S.Samples.EndToEnd) == 0 {
		return 0
	}
	sq := make([]float64, len(S.Samples.EndToEnd))
	for i, v := range S.Samples.EndToEnd {
		sq[i] = v * v
	}
	return stat.Mean(sq, nil)
}

//CharacteristicRatio returns <R^2>/(<N> b^2), where b is the segment length.
//It is close to 1 for freely-jointed chains.
func (S *Stats) CharacteristicRatio(b float64) float64 {
	if S.MeanDP <= 0 || b <= 0 {
		return 0
	}
	return S.MeanSquareEndToEnd() / (S.MeanDP * b * b)
}

//IdealEndToEnd returns the root mean square end-to-end distance of a
//freely-jointed chain of n segments of length b, sqrt(n)*b.
func IdealEndToEnd(n int, b float64) float64 {
	return math.Sqrt(float64(n)) * b
}

//IdealRadiusOfGyration returns the root mean square radius of gyration of a
//long freely-jointed chain of n segments of length b, b*sqrt(n/6).
func IdealRadiusOfGyration(n int, b float64) float64 {
	return b * math.Sqrt(float64(n)/6)
}
