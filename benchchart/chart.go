// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchchart renders benchmark sweep comparisons as PNG line
// charts, with optional taper-point annotation.
package benchchart

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/sachin541/Orb-new/benchtab"
	"github.com/sachin541/Orb-new/taper"
)

// Axis labels, fixed across every chart.
const (
	sweepXLabel = "nfeatures (cap)"
	costXLabel  = "avg_ms (detectAndCompute)"
)

// Series colors, Harris first.
var seriesColors = []color.Color{
	color.NRGBA{0x1F, 0x77, 0xB4, 0xFF}, // blue
	color.NRGBA{0xFF, 0x7F, 0x0E, 0xFF}, // orange
}

var ruleColor = color.NRGBA{0x60, 0x60, 0x60, 0xFF}

// A Config carries the output settings shared by every chart in a
// run. The zero value is not useful; fill in Dir at minimum.
type Config struct {
	// Dir is the directory the PNG files are written into. It is
	// created on demand.
	Dir string

	// DPI is the output resolution. 0 means 200.
	DPI int

	// Width and Height give the canvas size. 0 means 16x12 cm.
	Width, Height vg.Length
}

func (c Config) dpi() int {
	if c.DPI == 0 {
		return 200
	}
	return c.DPI
}

func (c Config) size() (w, h vg.Length) {
	w, h = c.Width, c.Height
	if w == 0 {
		w = 16 * vg.Centimeter
	}
	if h == 0 {
		h = 12 * vg.Centimeter
	}
	return
}

// A Chart describes one metric/axis combination to render.
type Chart struct {
	// Metric is the benchtab column plotted on the y-axis.
	Metric string

	// YLabel is the y-axis label, also used in the title.
	YLabel string

	// Filename is the output file name within Config.Dir.
	Filename string

	// UseCostX plots the metric against avg_ms instead of the
	// nfeatures cap.
	UseCostX bool

	// TaperThreshold is the gain-per-cost threshold passed to the
	// taper detector. 0 disables taper detection and annotation.
	TaperThreshold float64

	// TaperMinStep is the detector's run length. 0 means the
	// detector default.
	TaperMinStep int
}

func (ch Chart) xLabel() string {
	if ch.UseCostX {
		return costXLabel
	}
	return sweepXLabel
}

func (ch Chart) title() string {
	if ch.UseCostX {
		return ch.YLabel + " vs compute time"
	}
	return ch.YLabel + " vs nfeatures"
}

// Render draws one comparison chart for the two sweeps and writes it
// as a PNG into cfg.Dir, returning the path written. The legend
// always lists the Harris sweep first.
func Render(cfg Config, harris, fast benchtab.Subset, ch Chart) (string, error) {
	pl := plot.New()
	pl.Title.Text = ch.title()
	pl.X.Label.Text = ch.xLabel()
	pl.Y.Label.Text = ch.YLabel
	pl.Add(plotter.NewGrid())
	pl.Legend.Top = true

	// y-extent of everything plotted, for the taper rules.
	var yLo, yHi float64
	haveY := false
	extend := func(ys []float64) {
		for _, y := range ys {
			if !haveY {
				yLo, yHi = y, y
				haveY = true
				continue
			}
			if y < yLo {
				yLo = y
			}
			if y > yHi {
				yHi = y
			}
		}
	}

	type annotation struct {
		x, y float64
	}
	var rules []annotation

	for i, sub := range []benchtab.Subset{harris, fast} {
		ys, err := sub.Metric(ch.Metric)
		if err != nil {
			return "", err
		}
		var xs []float64
		if ch.UseCostX {
			xs = sub.Costs()
		} else {
			xs = sub.Sweep()
		}
		extend(ys)

		xy := make(plotter.XYs, len(xs))
		for j := range xs {
			xy[j].X, xy[j].Y = xs[j], ys[j]
		}
		line, err := plotter.NewLine(xy)
		if err != nil {
			return "", fmt.Errorf("plotting %s for %s: %w", ch.Metric, sub.Label, err)
		}
		line.LineStyle.Width = vg.Points(1.5)
		line.LineStyle.Color = seriesColors[i]
		points, err := plotter.NewScatter(xy)
		if err != nil {
			return "", fmt.Errorf("plotting %s for %s: %w", ch.Metric, sub.Label, err)
		}
		points.GlyphStyle.Shape = draw.CircleGlyph{}
		points.GlyphStyle.Radius = vg.Points(2.5)
		points.GlyphStyle.Color = seriesColors[i]

		pl.Add(line, points)
		pl.Legend.Add(sub.Label, line, points)

		if ch.TaperThreshold > 0 {
			if idx, ok := taper.Find(ys, sub.Costs(), ch.TaperMinStep, ch.TaperThreshold); ok {
				rules = append(rules, annotation{xs[idx], ys[idx]})
			}
		}
	}

	for _, r := range rules {
		rule, err := plotter.NewLine(plotter.XYs{{X: r.x, Y: yLo}, {X: r.x, Y: yHi}})
		if err != nil {
			return "", err
		}
		rule.LineStyle.Color = ruleColor
		rule.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}
		pl.Add(rule)

		labels, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    plotter.XYs{{X: r.x, Y: r.y}},
			Labels: []string{" taper"},
		})
		if err != nil {
			return "", err
		}
		pl.Add(labels)
	}

	return writePNG(cfg, pl, ch.Filename)
}

func writePNG(cfg Config, pl *plot.Plot, filename string) (string, error) {
	if err := os.MkdirAll(cfg.Dir, 0777); err != nil {
		return "", err
	}
	path := filepath.Join(cfg.Dir, filename)
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}

	w, h := cfg.size()
	can := vgimg.PngCanvas{Canvas: vgimg.NewWith(
		vgimg.UseWH(w, h),
		vgimg.UseDPI(cfg.dpi()),
		vgimg.UseBackgroundColor(color.White))}
	pl.Draw(draw.New(can))
	if _, err := can.WriteTo(f); err != nil {
		f.Close()
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return path, nil
}
