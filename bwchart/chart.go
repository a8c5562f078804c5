// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bwchart renders bandwidth-vs-size charts.
package bwchart

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/perflab/bandwidth/bwtable"
	"github.com/perflab/bandwidth/internal/bwunit"
)

// CacheBoundaries are the sizes, in bytes, at which the chart draws
// a vertical marker: the L1, L2 and L3 capacities.
var CacheBoundaries = []float64{
	float64(bwtable.L1Size),
	float64(bwtable.L2Size),
	float64(bwtable.L3Size),
}

// Options controls optional chart behavior. The zero value draws the
// standard chart.
type Options struct {
	// LogY uses a logarithmic bandwidth axis instead of a linear one.
	LogY bool

	// Warn, if non-nil, is called for each data point that cannot
	// be drawn.
	Warn func(format string, args ...interface{})
}

// A Chart is a rendered bandwidth chart.
type Chart struct {
	Plot *plot.Plot

	// Markers draws the cache boundary lines.
	Markers *Markers
}

const pointRad = 2

// Render builds the chart of d.
//
// Points that cannot be placed on the axes (non-finite bandwidth,
// non-positive size, or non-positive bandwidth with LogY) are left
// out of the drawing. They are reported through opts.Warn, not as
// errors.
func Render(d *bwtable.Derived, opts *Options) (*Chart, error) {
	if opts == nil {
		opts = new(Options)
	}
	warn := opts.Warn
	if warn == nil {
		warn = func(string, ...interface{}) {}
	}

	pl := plot.New()
	pl.Title.Text = "Bandwidth"
	pl.X.Label.Text = "Array Size (Byte)"
	pl.X.Scale = plot.LogScale{}
	pl.X.Tick.Marker = log2Ticks{}
	pl.Y.Label.Text = "Bandwidth (GB/s)"
	if opts.LogY {
		pl.Y.Scale = plot.LogScale{}
		pl.Y.Tick.Marker = plot.LogTicks{}
	}
	pl.Legend.Top = true

	series := []struct {
		name  string
		value func(bwtable.Bandwidth) float64
	}{
		{"Read", func(b bwtable.Bandwidth) float64 { return b.Read }},
		{"Write", func(b bwtable.Bandwidth) float64 { return b.Write }},
	}
	for i, s := range series {
		xys := make(plotter.XYs, 0, len(d.Rows))
		for _, r := range d.Rows {
			v := s.value(r)
			switch {
			case r.Size <= 0:
				warn("skipping %s point at size %d: size must be positive", s.name, r.Size)
				continue
			case math.IsInf(v, 0) || math.IsNaN(v):
				warn("skipping %s point at size %s: bandwidth is %v", s.name, bwunit.Bytes(float64(r.Size)), v)
				continue
			case opts.LogY && v <= 0:
				warn("skipping %s point at size %s: bandwidth %v on log axis", s.name, bwunit.Bytes(float64(r.Size)), v)
				continue
			}
			xys = append(xys, plotter.XY{X: float64(r.Size), Y: v})
		}

		line, points, err := plotter.NewLinePoints(xys)
		if err != nil {
			return nil, err
		}
		clr := plotutil.Color(i)
		line.Color = clr
		points.Color = clr
		points.Shape = draw.CircleGlyph{}
		points.Radius = vg.Points(pointRad)

		// An empty line has nothing to draw, but the legend still
		// names the series.
		if len(xys) > 0 {
			pl.Add(line, points)
		}
		pl.Legend.Add(s.name, line, points)
	}

	if math.IsInf(pl.Y.Min, 0) || math.IsInf(pl.Y.Max, 0) {
		// No drawable points.
		pl.Y.Min, pl.Y.Max = 0, 1
		if opts.LogY {
			pl.Y.Min, pl.Y.Max = 1, 10
		}
	}

	m := NewMarkers(CacheBoundaries...)
	pl.Add(m)
	// Markers report no data range; widen the x axis to show them all.
	lo, hi := m.Range()
	pl.X.Min = math.Min(pl.X.Min, lo)
	pl.X.Max = math.Max(pl.X.Max, hi)

	return &Chart{Plot: pl, Markers: m}, nil
}

// Markers draws vertical reference lines spanning the full height of
// the plot area.
type Markers struct {
	Xs []float64
	draw.LineStyle
}

// NewMarkers returns dotted black markers at xs.
func NewMarkers(xs ...float64) *Markers {
	return &Markers{
		Xs: xs,
		LineStyle: draw.LineStyle{
			Color:  color.Black,
			Width:  vg.Points(1),
			Dashes: []vg.Length{vg.Points(1), vg.Points(2)},
		},
	}
}

// Range returns the smallest and largest marker position.
func (m *Markers) Range() (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, x := range m.Xs {
		lo = math.Min(lo, x)
		hi = math.Max(hi, x)
	}
	return lo, hi
}

// Plot implements the plot.Plotter interface.
func (m *Markers) Plot(c draw.Canvas, plt *plot.Plot) {
	c.StrokeLines(m.LineStyle, m.lines(c, plt)...)
}

// lines returns one vertical segment per marker inside c.
func (m *Markers) lines(c draw.Canvas, plt *plot.Plot) [][]vg.Point {
	trX, _ := plt.Transforms(&c)
	var lines [][]vg.Point
	for _, x := range m.Xs {
		px := trX(x)
		if !c.ContainsX(px) {
			continue
		}
		lines = append(lines, []vg.Point{{X: px, Y: c.Min.Y}, {X: px, Y: c.Max.Y}})
	}
	return lines
}
