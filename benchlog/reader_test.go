// Copyright 2024 The DD2356 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchlog

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestMarkerExtract(t *testing.T) {
	test := func(line string, want float64, wantErr bool) {
		t.Helper()
		got, err := DFTW.Extract(line)
		if wantErr {
			if err == nil {
				t.Errorf("Extract(%q) = %v, want error", line, got)
			}
			return
		}
		if err != nil {
			t.Errorf("Extract(%q): unexpected error %v", line, err)
			return
		}
		if got != want {
			t.Errorf("Extract(%q) = %v, want %v", line, got, want)
		}
	}

	test("DFTW computation in 1.0 seconds", 1.0, false)
	test("DFTW computation in 0.859346 seconds", 0.859346, false)
	test("DFTW computation in   2.5   seconds", 2.5, false)
	test("DFTW computation in abc seconds", 0, true)
	test("DFTW computation in seconds", 0, true)
	test("DFTW computation in 1.0", 0, true)
}

func TestMarkerMatch(t *testing.T) {
	if !DFTW.Match("DFTW computation in 1.0 seconds") {
		t.Error("Match: measurement line not matched")
	}
	if DFTW.Match("starting run 3") {
		t.Error("Match: diagnostic line matched")
	}
}

func TestReader(t *testing.T) {
	input := "DFTW computation in 1.0 seconds\n" +
		"x\n" +
		"DFTW computation in 3.0 seconds\n"
	times, err := readAll(strings.NewReader(input), "test.txt", DFTW)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []float64{1.0, 3.0}; !reflect.DeepEqual(times, want) {
		t.Errorf("got %v, want %v", times, want)
	}
}

func TestReaderSyntaxError(t *testing.T) {
	input := "DFTW computation in 1.0 seconds\n" +
		"DFTW computation in oops seconds\n" +
		"DFTW computation in 3.0 seconds\n"
	r := NewReader(strings.NewReader(input), "bad.txt", DFTW)
	var times []float64
	for r.Scan() {
		times = append(times, r.Value())
	}
	err := r.Err()
	if err == nil {
		t.Fatal("expected error, got none")
	}
	serr, ok := err.(*SyntaxError)
	if !ok {
		t.Fatalf("got %T, want *SyntaxError", err)
	}
	if file, line := serr.Pos(); file != "bad.txt" || line != 2 {
		t.Errorf("Pos() = %s:%d, want bad.txt:2", file, line)
	}
	// The reader stops at the corrupt line.
	if want := []float64{1.0}; !reflect.DeepEqual(times, want) {
		t.Errorf("got %v before error, want %v", times, want)
	}
}

func TestReadFileMissing(t *testing.T) {
	if _, err := ReadFile(filepath.Join(t.TempDir(), "nope.txt"), DFTW); !os.IsNotExist(err) {
		t.Errorf("got %v, want not-exist error", err)
	}
}

func TestReadSeries(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "64.txt")
	content := "DFTW computation in 0.5 seconds\nDFTW computation in 0.7 seconds\n"
	if err := os.WriteFile(path, []byte(content), 0666); err != nil {
		t.Fatal(err)
	}

	series, err := ReadSeries([]string{"64=" + path}, DFTW)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(series) != 1 {
		t.Fatalf("got %d series, want 1", len(series))
	}
	if series[0].Label != "64" {
		t.Errorf("label = %q, want %q", series[0].Label, "64")
	}
	if want := []float64{0.5, 0.7}; !reflect.DeepEqual(series[0].Times, want) {
		t.Errorf("times = %v, want %v", series[0].Times, want)
	}

	// Unlabeled arguments use the path as the label.
	series, err = ReadSeries([]string{path}, DFTW)
	if err != nil {
		t.Fatal(err)
	}
	if series[0].Label != path {
		t.Errorf("label = %q, want %q", series[0].Label, path)
	}
}
