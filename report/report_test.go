/*
 * report_test.go, part of gopolymer.
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

package report

import (
	"bytes"
	"path/filepath"
	"reflect"
	"testing"

	polymer "github.com/rmera/gopolymer"
)

func testStats(Te *testing.T) (*polymer.Params, *polymer.Stats) {
	Te.Helper()
	p := polymer.DefaultParams()
	p.Seed = 31
	S, err := polymer.NewSimulator(p)
	if err != nil {
		Te.Fatal(err)
	}
	st, err := S.Simulate(100, 25)
	if err != nil {
		Te.Fatal(err)
	}
	return p, st
}

func TestCompression(Te *testing.T) {
	for name, want := range map[string]string{"a.json": "", "a.json.zst": "zst", "b.ZSTD": "zst", "c.gz": "gz", "noext": ""} {
		if got := Compression(name); got != want {
			Te.Errorf("Compression(%q)=%q, want %q", name, got, want)
		}
	}
}

func TestWriteRead(Te *testing.T) {
	p, st := testStats(Te)
	r := New(p, st, 10)
	if len(r.Histograms) != 3 || r.Histograms[DP].Total() != 25 {
		Te.Fatalf("unexpected histograms %v", r.Histograms)
	}
	var buf bytes.Buffer
	if err := Write(&buf, r); err != nil {
		Te.Fatal(err)
	}
	r2, err := Read(&buf)
	if err != nil {
		Te.Fatal(err)
	}
	if !reflect.DeepEqual(r.Stats, r2.Stats) || r2.Params != r.Params {
		Te.Errorf("report changed when read back")
	}
	if _, err := Read(bytes.NewBufferString("{}")); err == nil {
		Te.Errorf("empty report accepted")
	}
}

func TestFiles(Te *testing.T) {
	p, st := testStats(Te)
	r := New(p, st, 0)
	dir := Te.TempDir()
	for _, name := range []string{"r.json", "r.json.zst", "r.json.gz"} {
		path := filepath.Join(dir, name)
		if err := WriteFile(path, r); err != nil {
			Te.Fatalf("%s: %v", name, err)
		}
		r2, err := ReadFile(path)
		if err != nil {
			Te.Fatalf("%s: %v", name, err)
		}
		if !reflect.DeepEqual(r.Stats, r2.Stats) {
			Te.Errorf("%s: statistics changed when read back", name)
		}
		if r2.Histograms != nil {
			Te.Errorf("%s: unexpected histograms", name)
		}
	}
	if _, err := ReadFile(filepath.Join(dir, "missing.json")); err == nil {
		Te.Errorf("missing file read")
	}
}
