/*
 * main.go, part of gopolymer.
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

//fjcsim simulates an ensemble of freely-jointed chains and prints its
//statistics. It can also plot the distributions of the chain descriptors
//and write a JSON report.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	polymer "github.com/rmera/gopolymer"
	"github.com/rmera/gopolymer/histo"
	"github.com/rmera/gopolymer/polyplot"
	"github.com/rmera/gopolymer/report"
)

const (
	nm = 1e9 //m to nm
	um = 1e6 //m to μm
)

func main() {
	cfg, err := loadConfig(flag.CommandLine, os.Args[1:], os.Getenv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	logger := NewLogger(os.Stderr, cfg.LogLevel)
	if err := run(cfg, os.Stdout, logger); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}

func run(cfg Config, out io.Writer, logger *Logger) error {
	p := cfg.Params(logger)
	S, err := polymer.NewSimulator(p)
	if err != nil {
		return err
	}
	st, err := S.Simulate(cfg.DP, cfg.Molecules)
	if err != nil {
		return err
	}
	printSummary(out, st, p.SegmentLength)
	if cfg.PlotPrefix != "" {
		if err := plots(cfg.PlotPrefix, cfg.Bins, st, p.SegmentLength); err != nil {
			return err
		}
		logger.Infof("plots written with prefix %s", cfg.PlotPrefix)
	}
	if cfg.ReportFile != "" {
		if err := report.WriteFile(cfg.ReportFile, report.New(p, st, cfg.Bins)); err != nil {
			return err
		}
		logger.Infof("report written to %s", cfg.ReportFile)
	}
	return nil
}

func printSummary(out io.Writer, st *polymer.Stats, b float64) {
	c := st.AvgCenterOfMass.Scale(nm)
	fmt.Fprintf(out, "Metrics for %d molecules of degree of polymerization = %d (seed %d)\n", st.Molecules, st.TargetDP, st.Seed)
	fmt.Fprintf(out, "Avg. Center of Mass (nm) = %.3f, %.3f, %.3f\n", c.X, c.Y, c.Z)
	fmt.Fprintf(out, "End-to-end distance (μm):\n\tAverage = %.6f\n\tStd. Dev. = %.6f\n", st.AvgEndToEnd*um, st.StdEndToEnd*um)
	fmt.Fprintf(out, "Radius of gyration (μm):\n\tAverage = %.6f\n\tStd. Dev. = %.6f\n", st.AvgRadiusOfGyration*um, st.StdRadiusOfGyration*um)
	fmt.Fprintf(out, "Ideal chain (μm): RMS end-to-end = %.6f, RMS radius of gyration = %.6f\n",
		polymer.IdealEndToEnd(int(st.MeanDP+0.5), b)*um, polymer.IdealRadiusOfGyration(int(st.MeanDP+0.5), b)*um)
	fmt.Fprintf(out, "Characteristic ratio = %.3f\n", st.CharacteristicRatio(b))
	fmt.Fprintf(out, "PDI = %.2f\n", st.PDI)
}

func scaled(v []float64, f float64) []float64 {
	ret := make([]float64, len(v))
	for i, x := range v {
		ret[i] = x * f
	}
	return ret
}

func plots(prefix string, bins int, st *polymer.Stats, b float64) error {
	n := int(st.MeanDP + 0.5)
	err := polyplot.Distribution(scaled(st.Samples.EndToEnd, nm), bins, fmt.Sprintf("End-to-end distance, N=%d", st.TargetDP), "R (nm)", prefix+"_ree.png", polyplot.GaussianEndToEnd(n, b*nm))
	if err != nil {
		return err
	}
	err = polyplot.Distribution(scaled(st.Samples.Gyration, nm), bins, fmt.Sprintf("Radius of gyration, N=%d", st.TargetDP), "Rg (nm)", prefix+"_rg.png", nil)
	if err != nil {
		return err
	}
	return polyplot.Histogram(histo.FromInts(st.Samples.DP, bins), "Degree of polymerization", "N", prefix+"_dp.png", nil)
}
