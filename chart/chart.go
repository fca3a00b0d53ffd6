package chart

import (
	"bytes"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/moottier/ccrev/batch"
	"github.com/moottier/ccrev/ruleengine"
)

const (
	width  = 10 * vg.Inch
	height = 4 * vg.Inch
)

// ruleColors assigns a distinct highlight color per rule id, cycling
// through plotutil's dark palette for any catalog larger than it.
var ruleColors = plotutil.DarkColors

// Render draws b's series as a line-and-point plot with its center line,
// upper/lower action limits, and the points covered by a Signal
// highlighted in the color assigned to that signal's rule, and returns
// the result encoded as a PNG.
func Render(b batch.Batch, catalog []ruleengine.Rule) ([]byte, error) {
	if len(b.Series) == 0 {
		return nil, ErrEmptyBatch
	}

	p := plot.New()
	p.Title.Text = b.Name
	p.X.Label.Text = "sample"
	p.Y.Label.Text = "value"

	pts := make(plotter.XYs, len(b.Series))
	for i, v := range b.Series {
		pts[i].X = float64(i)
		pts[i].Y = v
	}

	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return nil, err
	}
	line.Color = color.Gray16{Y: 0x4000}
	points.Color = line.Color
	points.Radius = vg.Points(1.5)
	p.Add(line, points)

	lower, upper := b.Mean-3*b.Stdev, b.Mean+3*b.Stdev
	p.Add(
		horizontalLine(b.Mean, len(b.Series), color.Gray16{Y: 0x2000}, vg.Points(1), []vg.Length{vg.Points(4), vg.Points(4)}),
		horizontalLine(lower, len(b.Series), color.RGBA{R: 0xcc, A: 0xff}, vg.Points(1), []vg.Length{vg.Points(1), vg.Points(3)}),
		horizontalLine(upper, len(b.Series), color.RGBA{R: 0xcc, A: 0xff}, vg.Points(1), []vg.Length{vg.Points(1), vg.Points(3)}),
	)

	for _, hl := range highlights(b, catalog) {
		p.Add(hl)
	}

	w, err := p.WriterTo(width, height, "png")
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func horizontalLine(y float64, n int, c color.Color, width vg.Length, dashes []vg.Length) *plotter.Line {
	pts := plotter.XYs{{X: 0, Y: y}, {X: float64(n - 1), Y: y}}
	l, _ := plotter.NewLine(pts)
	l.Color = c
	l.Width = width
	l.Dashes = dashes

	return l
}

// highlights returns a scatter plotter per rule id present in b.Signals,
// each covering that rule's flagged samples in a distinct color.
func highlights(b batch.Batch, catalog []ruleengine.Rule) []*plotter.Scatter {
	byRule := map[int]plotter.XYs{}
	for _, sig := range b.Signals {
		for i := sig.Start; i < sig.End; i++ {
			byRule[sig.RuleId] = append(byRule[sig.RuleId], plotter.XY{X: float64(i), Y: b.Series[i]})
		}
	}

	out := make([]*plotter.Scatter, 0, len(byRule))
	for i, rule := range catalog {
		pts, ok := byRule[rule.Id]
		if !ok {
			continue
		}
		s, err := plotter.NewScatter(pts)
		if err != nil {
			continue
		}
		s.Color = ruleColors[i%len(ruleColors)]
		s.Radius = vg.Points(3)
		out = append(out, s)
	}

	return out
}
