// Copyright 2024 The DD2356 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchlog

import (
	"io"
	"os"
	"strings"
)

// A Series is the ordered timing measurements read from one log file,
// labeled by the run it came from (typically a thread or process
// count).
type Series struct {
	Label string
	Times []float64
}

// ReadFile reads all measurements matching m from the file at path.
func ReadFile(path string, m Marker) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readAll(f, path, m)
}

func readAll(ior io.Reader, fileName string, m Marker) ([]float64, error) {
	var times []float64
	r := NewReader(ior, fileName, m)
	for r.Scan() {
		times = append(times, r.Value())
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return times, nil
}

// ReadSeries reads one Series per argument. Each argument is a path,
// optionally prefixed with a label as in "64=results/64.txt"; without
// a label the path itself is used. The path "-" reads standard input.
//
// This is the desired behavior when the arguments come from a command
// line, as it lets the user name each run by its thread count.
func ReadSeries(args []string, m Marker) ([]Series, error) {
	var series []Series
	for _, arg := range args {
		label, path := arg, arg
		if i := strings.Index(arg, "="); i >= 0 {
			label, path = arg[:i], arg[i+1:]
		}
		var (
			times []float64
			err   error
		)
		if path == "-" {
			times, err = readAll(os.Stdin, "<stdin>", m)
		} else {
			times, err = ReadFile(path, m)
		}
		if err != nil {
			return nil, err
		}
		series = append(series, Series{Label: label, Times: times})
	}
	return series, nil
}
