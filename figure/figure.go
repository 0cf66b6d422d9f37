/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package figure composes density histograms into a multi-panel
// figure and renders it onto gonum/plot canvases.
//
// A Figure holds a shared title and three panels laid out in a
// 2x1-over-1 grid: two panels side by side in the top row and one
// panel spanning the bottom row.
package figure

import (
	"image/color"
	"io"

	"github.com/fentec-project/gaussum/histogram"
	"github.com/pkg/errors"
	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Default dimensions of a rendered figure.
const (
	DefaultWidth  = 20 * vg.Centimeter
	DefaultHeight = 16 * vg.Centimeter
)

const (
	titleHeight = 1 * vg.Centimeter
	titleSize   = vg.Length(14)
	// curveSamples is the number of points a Curve is evaluated at.
	curveSamples = 200
)

// Palette holds the colors assigned to the histograms of a panel,
// in order.
var Palette = []color.Color{
	color.NRGBA{R: 31, G: 119, B: 180, A: 255},
	color.NRGBA{R: 44, G: 160, B: 44, A: 255},
	color.NRGBA{R: 214, G: 39, B: 40, A: 255},
	color.NRGBA{A: 255},
}

// Curve is a function, typically a probability density, drawn as a
// dashed line over the histograms of a panel.
type Curve struct {
	Label string
	F     func(x float64) float64
}

// Panel is a single plot of one or more overlaid density histograms.
type Panel struct {
	Title  string
	XLabel string
	Hists  []*histogram.Density
	Curves []Curve
	// Colors overrides Palette for the histograms of the panel.
	Colors []color.Color
}

// Figure is a titled 2x1-over-1 grid of panels.
type Figure struct {
	Title    string
	TopLeft  *Panel
	TopRight *Panel
	Bottom   *Panel
}

// New returns a new Figure instance.
func New(title string, topLeft, topRight, bottom *Panel) *Figure {
	return &Figure{
		Title:    title,
		TopLeft:  topLeft,
		TopRight: topRight,
		Bottom:   bottom,
	}
}

// Panels returns the panels of the figure in reading order.
func (f *Figure) Panels() []*Panel {
	return []*Panel{f.TopLeft, f.TopRight, f.Bottom}
}

// Plot builds the plot of panel p. Each histogram is drawn as an
// outlined step plot; overlays beyond the first histogram are left
// unfilled so that the ones below stay visible. Curves are drawn
// last.
func (f *Figure) Plot(p *Panel) *hplot.Plot {
	plt := hplot.New()
	plt.Title.Text = p.Title
	plt.X.Label.Text = p.XLabel
	plt.Y.Label.Text = "density"
	plt.Add(hplot.NewGrid())

	for i, d := range p.Hists {
		c := p.color(i)
		h := hplot.NewH1D(d.Hist)
		h.LineStyle.Color = c
		h.LineStyle.Width = vg.Points(1)
		if i == 0 {
			h.FillColor = translucent(c)
		}
		plt.Add(h)
		if d.Label != "" {
			plt.Legend.Add(d.Label, h)
		}
	}
	for _, c := range p.Curves {
		fn := plotter.NewFunction(c.F)
		fn.Samples = curveSamples
		fn.Color = color.Gray{Y: 64}
		fn.Width = vg.Points(1.5)
		fn.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		plt.Add(fn)
		if c.Label != "" {
			plt.Legend.Add(c.Label, fn)
		}
	}
	plt.Legend.Top = true

	return plt
}

// Draw draws the figure onto c.
func (f *Figure) Draw(c draw.Canvas) {
	if f.Title != "" {
		c.FillText(titleStyle(), vg.Point{
			X: (c.Min.X + c.Max.X) / 2,
			Y: c.Max.Y,
		}, f.Title)
		c = draw.Crop(c, 0, 0, 0, -titleHeight)
	}

	w := c.Max.X - c.Min.X
	h := c.Max.Y - c.Min.Y
	top := draw.Crop(c, 0, 0, h/2, 0)
	bottom := draw.Crop(c, 0, 0, 0, -h/2)

	cells := []struct {
		panel  *Panel
		canvas draw.Canvas
	}{
		{f.TopLeft, draw.Crop(top, 0, -w/2, 0, 0)},
		{f.TopRight, draw.Crop(top, w/2, 0, 0, 0)},
		{f.Bottom, bottom},
	}
	for _, cell := range cells {
		if cell.panel == nil {
			continue
		}
		f.Plot(cell.panel).Draw(cell.canvas)
	}
}

// WriteTo renders the figure with the given dimensions in the given
// image format (png, svg, pdf, eps, jpg, jpeg, tif, tiff or tex) and
// writes it to w.
func (f *Figure) WriteTo(w io.Writer, width, height vg.Length, format string) (int64, error) {
	if width <= 0 || height <= 0 {
		return 0, errors.Errorf("figure dimensions %vx%v should be positive", width, height)
	}

	c, err := draw.NewFormattedCanvas(width, height, format)
	if err != nil {
		return 0, errors.Wrap(err, "error creating canvas")
	}
	f.Draw(draw.New(c))

	n, err := c.WriteTo(w)
	if err != nil {
		return n, errors.Wrapf(err, "error writing %s figure", format)
	}
	return n, nil
}

func (p *Panel) color(i int) color.Color {
	if i < len(p.Colors) {
		return p.Colors[i]
	}
	return Palette[i%len(Palette)]
}

func translucent(c color.Color) color.Color {
	r, g, b, _ := c.RGBA()
	return color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 96}
}

func titleStyle() draw.TextStyle {
	return draw.TextStyle{
		Color:   color.Black,
		Font:    font.From(plot.DefaultFont, titleSize),
		XAlign:  draw.XCenter,
		YAlign:  draw.YTop,
		Handler: plot.DefaultTextHandler,
	}
}
