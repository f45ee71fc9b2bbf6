// Copyright 2024 The DD2356 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchlog extracts timing measurements from computation log
// files.
//
// A log file is line-oriented text. Only lines that match a Marker
// carry a measurement; everything else is diagnostic output and is
// skipped. The Reader API is modeled on bufio.Scanner: call Scan until
// it returns false, then check Err.
package benchlog

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// A Marker is the predicate that selects measurement lines and locates
// the numeric field on them. A line matches if it contains Contains;
// the duration in seconds sits between the first occurrence of After
// and the first occurrence of Before.
type Marker struct {
	Contains string
	After    string
	Before   string
}

// DFTW matches the timing lines printed by the distributed Fourier
// transform benchmark, e.g. "DFTW computation in 0.859346 seconds".
var DFTW = Marker{
	Contains: "DFTW computation in",
	After:    "in",
	Before:   "seconds",
}

// Match reports whether line carries a measurement under m.
func (m Marker) Match(line string) bool {
	return strings.Contains(line, m.Contains)
}

// Extract returns the duration on a matching line. It fails if the
// delimiters are missing or out of order, or if the field between them
// is not a number.
func (m Marker) Extract(line string) (float64, error) {
	i := strings.Index(line, m.After)
	j := strings.Index(line, m.Before)
	if i < 0 || j < 0 || j <= i+len(m.After) {
		return 0, fmt.Errorf("no field between %q and %q", m.After, m.Before)
	}
	f := strings.TrimSpace(line[i+len(m.After) : j])
	v, err := strconv.ParseFloat(f, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing duration: %v", err)
	}
	return v, nil
}

// A SyntaxError represents a malformed measurement line at a
// particular position in a log file.
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

// A Reader reads timing measurements from a single log file.
//
// Lines that do not match the marker are skipped. A matching line
// whose field cannot be parsed stops the Reader; the run is considered
// corrupt and Err reports a *SyntaxError with the position.
type Reader struct {
	s        *bufio.Scanner
	marker   Marker
	fileName string
	line     int
	value    float64
	err      error
}

// NewReader constructs a reader that extracts measurements matching m
// from r. fileName is used in error messages; it is purely diagnostic.
func NewReader(r io.Reader, fileName string, m Marker) *Reader {
	if fileName == "" {
		fileName = "<unknown>"
	}
	return &Reader{
		s:        bufio.NewScanner(r),
		marker:   m,
		fileName: fileName,
	}
}

// Scan advances the reader to the next measurement and reports whether
// one was found. When Scan returns false the caller should check Err.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}
	for r.s.Scan() {
		r.line++
		line := r.s.Text()
		if !r.marker.Match(line) {
			continue
		}
		v, err := r.marker.Extract(line)
		if err != nil {
			r.err = &SyntaxError{r.fileName, r.line, err.Error()}
			return false
		}
		r.value = v
		return true
	}
	if err := r.s.Err(); err != nil {
		r.err = fmt.Errorf("%s:%d: %w", r.fileName, r.line, err)
	}
	return false
}

// Value returns the measurement read by the last call to Scan, in
// seconds.
func (r *Reader) Value() float64 {
	return r.value
}

// Err returns the first error encountered by the Reader.
func (r *Reader) Err() error {
	return r.err
}
