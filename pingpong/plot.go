// Copyright 2024 The DD2356 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pingpong

import (
	"fmt"
	"image/color"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/robinho46/DD2356-High-Performance-Computing/sizeunit"
)

// PlotName returns the file name of the best-fit plot for mode, e.g.
// "intra-node_bestfit.png".
func PlotName(mode Mode) string {
	return mode.String() + "_bestfit.png"
}

// LinePlotName returns the file name of the plain measurement plot for
// mode, e.g. "intra_node_communication.png".
func LinePlotName(mode Mode) string {
	return strings.ReplaceAll(mode.String(), "-", "_") + "_communication.png"
}

// SavePlot renders a log-log scatter of the fitted measurements with
// the fit line overlaid and writes it to PlotName(mode) under dir.
// Only the pairs that entered the fit (Size >= MinFitSize) are shown.
func SavePlot(pairs []Pair, res *Result, mode Mode, dir string) error {
	fitted := filterMinSize(pairs, MinFitSize)

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Ping-pong time vs. message size (%s communication)", mode)
	p.X.Label.Text = "Message size (bytes)"
	p.Y.Label.Text = "Ping-pong time (seconds)"
	p.X.Scale = plot.LogScale{}
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{}

	// Zero-time measurements are valid input but cannot sit on a log
	// scale; drop them instead of letting the renderer panic.
	var pts plotter.XYs
	var ticks []plot.Tick
	for _, pr := range fitted {
		if pr.Time <= 0 {
			continue
		}
		pts = append(pts, plotter.XY{X: float64(pr.Size), Y: pr.Time})
		ticks = append(ticks, plot.Tick{Value: float64(pr.Size), Label: sizeunit.Format(float64(pr.Size))})
	}
	if len(pts) == 0 {
		return fmt.Errorf("no measurements with positive time to draw")
	}
	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	scatter.GlyphStyle.Radius = vg.Points(2)

	// The log scale cannot render non-positive predictions, so drop
	// fit points below zero (possible when the raw intercept is
	// negative).
	var fitPts plotter.XYs
	for _, pr := range fitted {
		y := res.Slope*float64(pr.Size) + res.Intercept
		if y > 0 {
			fitPts = append(fitPts, plotter.XY{X: float64(pr.Size), Y: y})
		}
	}
	line, err := plotter.NewLine(fitPts)
	if err != nil {
		return err
	}
	line.Color = color.RGBA{R: 0, G: 160, B: 0, A: 255}
	line.Width = vg.Points(2)

	p.Add(scatter, line, plotter.NewGrid())
	p.Legend.Add("measured", scatter)
	p.Legend.Add(fmt.Sprintf("fit: bandwidth=%.2e B/s, latency=%.2e s", res.Bandwidth, res.Latency), line)
	p.Legend.Top = true
	p.X.Tick.Marker = plot.ConstantTicks(ticks)

	return p.Save(10*vg.Inch, 5*vg.Inch, filepath.Join(dir, PlotName(mode)))
}
