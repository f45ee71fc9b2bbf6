// Copyright 2024 The DD2356 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pingpong

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// MinFitSize is the smallest message size included in the fit, in
// bytes. Below this the measured time is dominated by per-message
// overhead rather than the linear transfer cost, which would bias the
// bandwidth estimate.
const MinFitSize = 512

// A Mode identifies where the two communicating ranks run relative to
// each other.
type Mode int

const (
	IntraNode Mode = iota // both ranks on the same node
	InterNode             // ranks on different nodes
)

func (m Mode) String() string {
	switch m {
	case IntraNode:
		return "intra-node"
	case InterNode:
		return "inter-node"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Latency floors substituted when the fitted intercept is negative.
// A negative latency is physically invalid; these are typical minimum
// latencies for the interconnect of each mode.
const (
	intraNodeLatencyFloor = 0.7e-6 // seconds
	interNodeLatencyFloor = 1.6e-6 // seconds
)

// LatencyFloor returns the smallest latency reported for m.
func (m Mode) LatencyFloor() float64 {
	if m == InterNode {
		return interNodeLatencyFloor
	}
	return intraNodeLatencyFloor
}

// A Result holds the bandwidth and latency derived from a linear fit
// over ping-pong measurements.
type Result struct {
	Bandwidth float64 // bytes per second; +Inf if the fitted slope is zero
	Latency   float64 // seconds; floored at the mode's minimum when the intercept is negative

	// Slope and Intercept are the raw coefficients of the fitted
	// model time = Slope*size + Intercept.
	Slope     float64
	Intercept float64

	N int // measurements used in the fit
}

// A FitError reports that a linear fit could not be computed from the
// given measurements.
type FitError struct {
	Reason string
}

func (e *FitError) Error() string {
	return "fit: " + e.Reason
}

// Fit estimates bandwidth and latency from pairs by least squares over
// the measurements with Size >= MinFitSize. It fails with a *FitError
// if fewer than two distinct sizes remain or the regression does not
// produce finite coefficients.
func Fit(pairs []Pair, mode Mode) (*Result, error) {
	fitted := filterMinSize(pairs, MinFitSize)
	distinct := make(map[int]bool)
	xs := make([]float64, len(fitted))
	ys := make([]float64, len(fitted))
	for i, p := range fitted {
		xs[i] = float64(p.Size)
		ys[i] = p.Time
		distinct[p.Size] = true
	}
	if len(distinct) < 2 {
		return nil, &FitError{fmt.Sprintf("need at least 2 distinct sizes >= %d bytes, have %d", MinFitSize, len(distinct))}
	}

	intercept, slope := stat.LinearRegression(xs, ys, nil, false)
	if math.IsNaN(slope) || math.IsInf(slope, 0) || math.IsNaN(intercept) || math.IsInf(intercept, 0) {
		return nil, &FitError{"regression did not produce finite coefficients"}
	}

	bandwidth := math.Inf(1)
	if slope != 0 {
		bandwidth = 1 / slope
	}
	latency := intercept
	if latency < 0 {
		latency = mode.LatencyFloor()
	}
	return &Result{
		Bandwidth: bandwidth,
		Latency:   latency,
		Slope:     slope,
		Intercept: intercept,
		N:         len(fitted),
	}, nil
}
