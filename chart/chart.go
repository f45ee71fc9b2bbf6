// Copyright 2024 The DD2356 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart renders comparison charts from benchmark results.
// It is pure presentation; all analysis lives in timestat and
// pingpong.
package chart

import (
	"bufio"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/robinho46/DD2356-High-Performance-Computing/pingpong"
	"github.com/robinho46/DD2356-High-Performance-Computing/sizeunit"
)

// ReadValues reads one float per line from the file at path. Blank
// lines are skipped.
func ReadValues(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var values []float64
	s := bufio.NewScanner(f)
	line := 0
	for s.Scan() {
		line++
		text := strings.TrimSpace(s.Text())
		if text == "" {
			continue
		}
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: parsing value: %v", path, line, err)
		}
		values = append(values, v)
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("%s:%d: %w", path, line, err)
	}
	return values, nil
}

// Bar renders a bar chart of values, one bar per label, and writes it
// to path. The number of labels must match the number of values.
func Bar(values []float64, labels []string, title, yLabel, path string) error {
	if len(values) != len(labels) {
		return fmt.Errorf("have %d values but %d labels", len(values), len(labels))
	}

	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = yLabel

	bar, err := plotter.NewBarChart(plotter.Values(values), vg.Points(40))
	if err != nil {
		return err
	}
	bar.Color = color.RGBA{R: 135, G: 206, B: 235, A: 255}
	bar.LineStyle.Width = vg.Length(0)
	p.Add(bar)

	ticks := make([]plot.Tick, len(labels))
	for i, l := range labels {
		ticks[i] = plot.Tick{Value: float64(i), Label: l}
	}
	p.X.Tick.Marker = plot.ConstantTicks(ticks)
	p.X.Min = -0.5
	p.X.Max = float64(len(values)) - 0.5

	return p.Save(8*vg.Inch, 5*vg.Inch, path)
}

// Line renders a log-log line chart of ping-pong measurements with
// human-readable size tick labels and writes it to path.
func Line(pairs []pingpong.Pair, mode pingpong.Mode, path string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Ping-pong time vs. message size (%s communication)", mode)
	p.X.Label.Text = "Message size"
	p.Y.Label.Text = "Time (seconds)"
	p.X.Scale = plot.LogScale{}
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{}

	// Zero-time measurements are valid input but cannot sit on a log
	// scale; drop them instead of letting the renderer panic.
	var pts plotter.XYs
	var ticks []plot.Tick
	for _, pr := range pairs {
		if pr.Time <= 0 {
			continue
		}
		pts = append(pts, plotter.XY{X: float64(pr.Size), Y: pr.Time})
		ticks = append(ticks, plot.Tick{Value: float64(pr.Size), Label: sizeunit.Format(float64(pr.Size))})
	}
	if len(pts) == 0 {
		return fmt.Errorf("no measurements with positive time to draw")
	}
	p.X.Tick.Marker = plot.ConstantTicks(ticks)

	line, scatter, err := plotter.NewLinePoints(pts)
	if err != nil {
		return err
	}
	line.Width = vg.Points(1)
	scatter.GlyphStyle.Radius = vg.Points(2)
	p.Add(line, scatter, plotter.NewGrid())

	return p.Save(12*vg.Inch, 6*vg.Inch, path)
}
