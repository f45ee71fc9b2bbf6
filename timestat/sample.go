// Copyright 2024 The DD2356 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package timestat computes statistics over distributions of timing
// measurements.
//
// Measurements from a benchmark run are treated as a population, so
// StdDev uses the population convention (divide by n, not n-1).
package timestat

import (
	"errors"

	"github.com/aclements/go-moremath/stats"
	gstat "gonum.org/v1/gonum/stat"
)

// ErrNoSamples is returned when a summary is requested over zero
// measurements.
var ErrNoSamples = errors.New("no samples")

// ErrTooFewSamples is returned when a confidence interval is requested
// over fewer than two measurements; the interval width is undefined
// for a single sample.
var ErrTooFewSamples = errors.New("need at least 2 samples")

// A Summary describes the distribution of a set of timing
// measurements.
type Summary struct {
	N      int     // number of measurements
	Mean   float64 // arithmetic mean, seconds
	StdDev float64 // population standard deviation, seconds
	Min    float64
	Max    float64
}

// Summarize computes a Summary over values. It fails with ErrNoSamples
// if values is empty.
func Summarize(values []float64) (Summary, error) {
	if len(values) == 0 {
		return Summary{}, ErrNoSamples
	}
	min, max := stats.Bounds(values)
	return Summary{
		N:      len(values),
		Mean:   gstat.Mean(values, nil),
		StdDev: gstat.PopStdDev(values, nil),
		Min:    min,
		Max:    max,
	}, nil
}

// Trimmed computes a Summary over values after discarding outliers
// using the interquartile range rule: values outside
// [Q1 - 1.5*IQR, Q3 + 1.5*IQR] are dropped. Cluster runs occasionally
// include a first iteration slowed by cold caches or node contention,
// and Trimmed keeps such runs from skewing the mean.
func Trimmed(values []float64) (Summary, error) {
	if len(values) == 0 {
		return Summary{}, ErrNoSamples
	}
	s := stats.Sample{Xs: values}
	q1, q3 := s.Quantile(0.25), s.Quantile(0.75)
	lo, hi := q1-1.5*(q3-q1), q3+1.5*(q3-q1)
	var kept []float64
	for _, v := range values {
		if lo <= v && v <= hi {
			kept = append(kept, v)
		}
	}
	return Summarize(kept)
}

// MeanCI returns the mean of values and its confidence interval at the
// given level (e.g. 0.95 for 95% confidence). It requires at least two
// measurements and fails with ErrTooFewSamples otherwise.
func MeanCI(values []float64, confidence float64) (mean, lo, hi float64, err error) {
	if len(values) == 0 {
		return 0, 0, 0, ErrNoSamples
	}
	if len(values) < 2 {
		return 0, 0, 0, ErrTooFewSamples
	}
	mean, lo, hi = stats.Sample{Xs: values}.MeanCI(confidence)
	return mean, lo, hi, nil
}
