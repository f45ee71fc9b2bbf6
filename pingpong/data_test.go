// Copyright 2024 The DD2356 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pingpong

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestParsePairs(t *testing.T) {
	input := "8 0.0000012\n" +
		"\n" +
		"512\t0.0000034\n" +
		"1024   0.0000051\n"
	pairs, err := ParsePairs(strings.NewReader(input), "ping.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Pair{
		{8, 0.0000012},
		{512, 0.0000034},
		{1024, 0.0000051},
	}
	if !reflect.DeepEqual(pairs, want) {
		t.Errorf("got %v, want %v", pairs, want)
	}
}

func TestParsePairsErrors(t *testing.T) {
	test := func(input, wantMsg string, wantLine int) {
		t.Helper()
		_, err := ParsePairs(strings.NewReader(input), "bad.txt")
		serr, ok := err.(*SyntaxError)
		if !ok {
			t.Errorf("ParsePairs(%q) error = %v, want *SyntaxError", input, err)
			return
		}
		if serr.Line != wantLine {
			t.Errorf("ParsePairs(%q) failed at line %d, want %d", input, serr.Line, wantLine)
		}
		if !strings.Contains(serr.Msg, wantMsg) {
			t.Errorf("ParsePairs(%q) error %q, want substring %q", input, serr.Msg, wantMsg)
		}
	}

	test("512\n", "missing time column", 1)
	test("512 0.001\nxyz 0.002\n", "parsing message size", 2)
	test("512 zzz\n", "parsing time", 1)
	test("0 0.001\n", "must be positive", 1)
	test("-8 0.001\n", "must be positive", 1)
	test("512 -0.001\n", "must be non-negative", 1)
}

func TestReadPairs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "intra.txt")
	if err := os.WriteFile(path, []byte("512 0.001\n1024 0.002\n"), 0666); err != nil {
		t.Fatal(err)
	}
	pairs, err := ReadPairs(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(pairs) != 2 {
		t.Errorf("got %d pairs, want 2", len(pairs))
	}

	if _, err := ReadPairs(filepath.Join(t.TempDir(), "nope.txt")); !os.IsNotExist(err) {
		t.Errorf("got %v, want not-exist error", err)
	}
}

func TestSavePlotZeroTime(t *testing.T) {
	// A zero round-trip time is valid input; it must be skipped on
	// the log scale, not crash the renderer.
	dir := t.TempDir()
	pairs := linearPairs([]int{512, 1024, 2048, 4096}, 2e-9, 1e-6)
	res, err := Fit(pairs, IntraNode)
	if err != nil {
		t.Fatal(err)
	}
	pairs = append(pairs, Pair{Size: 8192, Time: 0})
	if err := SavePlot(pairs, res, IntraNode, dir); err != nil {
		t.Fatalf("SavePlot: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "intra-node_bestfit.png")); err != nil {
		t.Errorf("plot file not written: %v", err)
	}

	// With nothing left to draw, report an error instead.
	allZero := []Pair{{512, 0}, {1024, 0}}
	if err := SavePlot(allZero, res, IntraNode, dir); err == nil {
		t.Error("expected error when every measurement has zero time")
	}
}

func TestSavePlot(t *testing.T) {
	dir := t.TempDir()
	pairs := linearPairs([]int{512, 1024, 2048, 4096}, 2e-9, 1e-6)
	res, err := Fit(pairs, IntraNode)
	if err != nil {
		t.Fatal(err)
	}
	if err := SavePlot(pairs, res, IntraNode, dir); err != nil {
		t.Fatalf("SavePlot: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "intra-node_bestfit.png")); err != nil {
		t.Errorf("plot file not written: %v", err)
	}
}
