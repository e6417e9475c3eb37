/*
 * report.go, part of gopolymer.
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

/*Package report exports the statistics of a simulated ensemble, and the
histograms of its per-chain descriptors, as JSON. Files can be compressed
with z-standard or gzip, chosen by extension.

Only ensemble-level data is written. Chain conformations are never stored.
*/
package report

import (
	"bufio"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	polymer "github.com/rmera/gopolymer"
	"github.com/rmera/gopolymer/histo"
)

//Names of the histograms in a report.
const (
	EndToEnd = "end_to_end"
	Gyration = "gyration"
	DP       = "dp"
)

//ParamsInfo is the serializable part of polymer.Params.
type ParamsInfo struct {
	SegmentLength float64 `json:"segment_length"`
	MerWeight     float64 `json:"mer_weight"`
	DPSpread      float64 `json:"dp_spread"`
	Direction     string  `json:"direction"`
}

//Report is a ready-to-serialize container for the results of a simulation.
type Report struct {
	Params     ParamsInfo             `json:"params"`
	Stats      *polymer.Stats         `json:"stats"`
	Histograms map[string]*histo.Data `json:"histograms,omitempty"`
}

//New returns a report for the statistics st obtained with the parameters p.
//If bins is positive, histograms with that many bins are built for the
//end-to-end distances, the radii of gyration and the degrees of polymerization.
func New(p *polymer.Params, st *polymer.Stats, bins int) *Report {
	r := &Report{
		Params: ParamsInfo{
			SegmentLength: p.SegmentLength,
			MerWeight:     p.MerWeight,
			DPSpread:      p.DPSpread,
			Direction:     p.Direction.String(),
		},
		Stats: st,
	}
	if bins > 0 {
		r.Histograms = map[string]*histo.Data{
			EndToEnd: histo.FromSamples(st.Samples.EndToEnd, bins, 0),
			Gyration: histo.FromSamples(st.Samples.Gyration, bins, 1),
			DP:       histo.FromInts(st.Samples.DP, bins, 2),
		}
	}
	return r
}

//Write encodes r as indented JSON into out.
func Write(out io.Writer, r *Report) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("gopolymer/report: encoding: %w", err)
	}
	return nil
}

//Read decodes a report from in.
func Read(in io.Reader) (*Report, error) {
	r := new(Report)
	if err := json.NewDecoder(in).Decode(r); err != nil {
		return nil, fmt.Errorf("gopolymer/report: decoding: %w", err)
	}
	if r.Stats == nil {
		return nil, fmt.Errorf("gopolymer/report: report without statistics")
	}
	return r, nil
}

//Compression returns the compression used for a file name: "zst", "gz" or "" (none).
func Compression(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".zst", ".zstd":
		return "zst"
	case ".gz":
		return "gz"
	default:
		return ""
	}
}

//WriteFile writes r to the file name, compressed according to Compression(name).
func WriteFile(name string, r *Report) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("gopolymer/report: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("gopolymer/report: %w", cerr)
		}
	}()
	buf := bufio.NewWriter(f)
	var w io.WriteCloser
	switch Compression(name) {
	case "zst":
		w, err = zstd.NewWriter(buf)
		if err != nil {
			return fmt.Errorf("gopolymer/report: %w", err)
		}
	case "gz":
		w = gzip.NewWriter(buf)
	default:
		w = nopCloser{buf}
	}
	if err = Write(w, r); err != nil {
		w.Close()
		return err
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("gopolymer/report: %w", err)
	}
	if err = buf.Flush(); err != nil {
		return fmt.Errorf("gopolymer/report: %w", err)
	}
	return nil
}

//ReadFile reads a report written by WriteFile.
func ReadFile(name string) (*Report, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("gopolymer/report: %w", err)
	}
	defer f.Close()
	var in io.Reader = bufio.NewReader(f)
	switch Compression(name) {
	case "zst":
		d, err := zstd.NewReader(in)
		if err != nil {
			return nil, fmt.Errorf("gopolymer/report: %w", err)
		}
		defer d.Close()
		in = d
	case "gz":
		g, err := gzip.NewReader(in)
		if err != nil {
			return nil, fmt.Errorf("gopolymer/report: %w", err)
		}
		defer g.Close()
		in = g
	}
	return Read(in)
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
