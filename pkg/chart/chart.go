// Package chart renders reflection coefficient traces on the unit disk.
package chart

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"math/cmplx"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var ErrEmptyTrace = errors.New("trace has no finite points")

var (
	ImpedanceColor  = color.RGBA{R: 200, A: 255}
	AdmittanceColor = color.RGBA{B: 200, A: 255}
	gridColor       = color.Gray{Y: 180}
)

// Size of saved images.
var Size = 6 * vg.Inch

// Trace is one named Γ sequence.
type Trace struct {
	Name   string
	Points []complex128
	Color  color.Color
}

// New builds a plot with the unit circle, the real axis and the constant
// resistance and conductance circles through the center, then draws each
// trace with a marker on its last point. Non-finite points are skipped.
func New(title string, traces ...Trace) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Re Γ"
	p.Y.Label.Text = "Im Γ"
	p.X.Min, p.X.Max = -1.1, 1.1
	p.Y.Min, p.Y.Max = -1.1, 1.1

	for _, guide := range []plotter.XYs{
		circle(0, 1),
		circle(0.5, 0.5),  // r = 1
		circle(-0.5, 0.5), // g = 1
		{{X: -1, Y: 0}, {X: 1, Y: 0}},
	} {
		line, err := plotter.NewLine(guide)
		if err != nil {
			return nil, err
		}
		line.Color = gridColor
		line.Width = vg.Points(0.5)
		p.Add(line)
	}

	for _, trace := range traces {
		xys := finite(trace.Points)
		if len(xys) == 0 {
			return nil, fmt.Errorf("%s: %w", trace.Name, ErrEmptyTrace)
		}

		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", trace.Name, err)
		}
		line.Width = vg.Points(1.5)
		if trace.Color != nil {
			line.Color = trace.Color
		}

		end, err := plotter.NewScatter(xys[len(xys)-1:])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", trace.Name, err)
		}
		end.Color = line.Color

		p.Add(line, end)
		p.Legend.Add(trace.Name, line)
	}

	return p, nil
}

// Save renders the traces to path. The format follows the file extension
// (png, svg, pdf, ...).
func Save(path, title string, traces ...Trace) error {
	p, err := New(title, traces...)
	if err != nil {
		return err
	}
	if err := p.Save(Size, Size, path); err != nil {
		return fmt.Errorf("saving chart: %w", err)
	}
	return nil
}

func circle(center, radius float64) plotter.XYs {
	const segments = 180
	xys := make(plotter.XYs, segments+1)
	for i := range xys {
		s, c := math.Sincos(2 * math.Pi * float64(i) / segments)
		xys[i].X = center + radius*c
		xys[i].Y = radius * s
	}
	return xys
}

func finite(points []complex128) plotter.XYs {
	xys := make(plotter.XYs, 0, len(points))
	for _, g := range points {
		if cmplx.IsInf(g) || cmplx.IsNaN(g) {
			continue
		}
		xys = append(xys, plotter.XY{X: real(g), Y: imag(g)})
	}
	return xys
}
