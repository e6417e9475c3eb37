/*
 * config.go, part of gopolymer.
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

package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"strconv"

	"github.com/joho/godotenv"
	polymer "github.com/rmera/gopolymer"
	v3 "github.com/rmera/gopolymer/v3"
)

//Config holds the command configuration
type Config struct {
	DP            int
	Molecules     int
	Seed          uint64
	Workers       int
	Direction     v3.Direction
	Spread        float64
	SegmentLength float64
	MerWeight     float64
	Bins          int
	PlotPrefix    string
	ReportFile    string
	LogLevel      string
}

//Params returns the simulation parameters in c.
func (c Config) Params(logger polymer.Logger) *polymer.Params {
	p := polymer.DefaultParams()
	p.SegmentLength = c.SegmentLength
	p.MerWeight = c.MerWeight
	p.DPSpread = c.Spread
	p.Direction = c.Direction
	p.Seed = c.Seed
	p.Workers = c.Workers
	p.Logger = logger
	return p
}

//configResolver defines how to resolve a single configuration value
type configResolver struct {
	flagName    string
	envVarName  string
	defaultVal  string
	description string
	setter      func(*Config, string) error
}

func intSetter(dst func(*Config) *int) func(*Config, string) error {
	return func(c *Config, v string) error {
		i, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		*dst(c) = i
		return nil
	}
}

func floatSetter(dst func(*Config) *float64) func(*Config, string) error {
	return func(c *Config, v string) error {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return err
		}
		*dst(c) = f
		return nil
	}
}

func resolvers() []configResolver {
	return []configResolver{
		{"dp", "FJC_DP", strconv.Itoa(polymer.DefaultTargetDP), "target degree of polymerization", intSetter(func(c *Config) *int { return &c.DP })},
		{"n", "FJC_MOLECULES", strconv.Itoa(polymer.DefaultMolecules), "number of molecules", intSetter(func(c *Config) *int { return &c.Molecules })},
		{"seed", "FJC_SEED", "0", "random seed (0: seed from the clock)", func(c *Config, v string) error {
			s, err := strconv.ParseUint(v, 10, 64)
			c.Seed = s
			return err
		}},
		{"workers", "FJC_WORKERS", "0", "goroutines generating chains (0: one per CPU)", intSetter(func(c *Config) *int { return &c.Workers })},
		{"direction", "FJC_DIRECTION", "gaussian", "bond direction method: gaussian or cube", func(c *Config, v string) error {
			d, err := v3.ParseDirection(v)
			c.Direction = d
			return err
		}},
		{"spread", "FJC_SPREAD", strconv.FormatFloat(polymer.DefaultDPSpread, 'g', -1, 64), "relative standard deviation of the degree of polymerization", floatSetter(func(c *Config) *float64 { return &c.Spread })},
		{"segment-length", "FJC_SEGMENT_LENGTH", strconv.FormatFloat(polymer.DefaultSegmentLength, 'g', -1, 64), "segment (bond) length in m", floatSetter(func(c *Config) *float64 { return &c.SegmentLength })},
		{"mer-weight", "FJC_MER_WEIGHT", strconv.FormatFloat(polymer.DefaultMerWeight, 'g', -1, 64), "repeat unit mass in g/mol", floatSetter(func(c *Config) *float64 { return &c.MerWeight })},
		{"bins", "FJC_BINS", "20", "histogram bins for plots and reports", intSetter(func(c *Config) *int { return &c.Bins })},
		{"plot", "FJC_PLOT", "", "prefix for PNG distribution plots (empty: no plots)", func(c *Config, v string) error { c.PlotPrefix = v; return nil }},
		{"report", "FJC_REPORT", "", "JSON report file; .zst and .gz are compressed (empty: no report)", func(c *Config, v string) error { c.ReportFile = v; return nil }},
		{"log-level", "FJC_LOG_LEVEL", "info", "log level: debug, info, warn, error", func(c *Config, v string) error { c.LogLevel = v; return nil }},
	}
}

//loadConfig resolves the configuration from the flags in args, then the
//environment (as given by getenv), then the defaults. Before that, it loads
//the variables in the file named by -env-file, if it exists, into the
//process environment, without overriding variables that are already set.
func loadConfig(fl *flag.FlagSet, args []string, getenv func(string) string) (Config, error) {
	var cfg Config
	res := resolvers()
	flagVars := make(map[string]*string)
	for _, r := range res {
		flagVars[r.flagName] = fl.String(r.flagName, "", fmt.Sprintf("%s (env %s, default %q)", r.description, r.envVarName, r.defaultVal))
	}
	envFile := fl.String("env-file", ".env", "file with environment variables to load, if present")
	if err := fl.Parse(args); err != nil {
		return cfg, err
	}
	if *envFile != "" {
		if err := godotenv.Load(*envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("loading %s: %w", *envFile, err)
		}
	}
	for _, r := range res {
		value := r.defaultVal
		if v := *flagVars[r.flagName]; v != "" {
			value = v
		} else if v := getenv(r.envVarName); v != "" {
			value = v
		}
		if err := r.setter(&cfg, value); err != nil {
			return cfg, fmt.Errorf("invalid value %q for %s: %w", value, r.flagName, err)
		}
	}
	return cfg, nil
}
