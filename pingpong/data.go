// Copyright 2024 The DD2356 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pingpong analyzes ping-pong message benchmark results: it
// loads (size, time) measurements and fits the linear model
//
//	time = size/bandwidth + latency
//
// to estimate the link bandwidth and fixed per-message latency.
package pingpong

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// A Pair is one ping-pong measurement: the round-trip time for a
// message of a given size.
type Pair struct {
	Size int     // message size, bytes
	Time float64 // round-trip time, seconds
}

// A SyntaxError represents a malformed record at a particular line of
// a results file.
type SyntaxError struct {
	FileName string
	Line     int
	Msg      string
}

func (e *SyntaxError) Pos() (fileName string, line int) {
	return e.FileName, e.Line
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.FileName, e.Line, e.Msg)
}

// ReadPairs loads measurements from the whitespace-delimited
// two-column file at path: one "size time" record per line.
func ReadPairs(path string) ([]Pair, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParsePairs(f, path)
}

// ParsePairs reads "size time" records from r. Blank lines are
// skipped; anything else that does not parse as a positive integer
// size followed by a non-negative time is a *SyntaxError.
func ParsePairs(r io.Reader, fileName string) ([]Pair, error) {
	if fileName == "" {
		fileName = "<unknown>"
	}
	var pairs []Pair
	s := bufio.NewScanner(r)
	line := 0
	for s.Scan() {
		line++
		f := strings.Fields(s.Text())
		if len(f) == 0 {
			continue
		}
		if len(f) < 2 {
			return nil, &SyntaxError{fileName, line, "missing time column"}
		}
		size, err := strconv.Atoi(f[0])
		if err != nil {
			return nil, &SyntaxError{fileName, line, "parsing message size: " + err.Error()}
		}
		if size <= 0 {
			return nil, &SyntaxError{fileName, line, fmt.Sprintf("message size must be positive, have %d", size)}
		}
		t, err := strconv.ParseFloat(f[1], 64)
		if err != nil {
			return nil, &SyntaxError{fileName, line, "parsing time: " + err.Error()}
		}
		if t < 0 {
			return nil, &SyntaxError{fileName, line, fmt.Sprintf("time must be non-negative, have %v", t)}
		}
		pairs = append(pairs, Pair{Size: size, Time: t})
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("%s:%d: %w", fileName, line, err)
	}
	return pairs, nil
}

// filterMinSize returns the pairs with Size >= min.
func filterMinSize(pairs []Pair, min int) []Pair {
	var out []Pair
	for _, p := range pairs {
		if p.Size >= min {
			out = append(out, p)
		}
	}
	return out
}
