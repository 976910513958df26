// Package draw rasterises chart artifacts to PNG images.
package draw

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/ukaji3/datavis-go/pkg/datavis/models"
)

// maxTextTicks caps the number of labelled ticks on a textual x-axis.
const maxTextTicks = 12

var (
	seriesColor = drawing.ColorFromHex("1f77b4")
	boxColor    = drawing.ColorFromHex("1f77b4")
	medianColor = drawing.ColorFromHex("ff7f0e")
)

// renderable is satisfied by chart.Chart, chart.BarChart and chart.PieChart.
type renderable interface {
	Render(rp chart.RendererProvider, w io.Writer) error
}

// PNGExporter writes artifacts as PNG files of a fixed size.
type PNGExporter struct {
	Width  int
	Height int
}

// NewPNGExporter creates a PNGExporter.
func NewPNGExporter(width, height int) *PNGExporter {
	return &PNGExporter{Width: width, Height: height}
}

// Export renders a and writes it to path. Nothing is written if rendering fails.
func (e *PNGExporter) Export(a *models.Artifact, path string) error {
	var buf bytes.Buffer
	if err := PNG(a, e.Width, e.Height, &buf); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

// PNG renders a as a PNG image of the given size to w.
func PNG(a *models.Artifact, width, height int, w io.Writer) error {
	var r renderable
	switch a.Kind {
	case models.KindLine:
		r = pointChart(a, width, height, false)
	case models.KindScatter:
		r = pointChart(a, width, height, true)
	case models.KindBar:
		r = barChart(a, bars(a.Bars), width, height)
	case models.KindHistogram:
		r = barChart(a, histogramBars(a.Bins), width, height)
	case models.KindBox:
		r = boxChart(a, width, height)
	case models.KindPie:
		r = pieChart(a, width, height)
	default:
		return fmt.Errorf("cannot draw chart kind %q", a.Kind)
	}

	if err := r.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("draw %s: %w", a.Kind.Label(), err)
	}
	return nil
}

func pointChart(a *models.Artifact, width, height int, dotsOnly bool) chart.Chart {
	xs := make([]float64, len(a.Points))
	ys := make([]float64, len(a.Points))
	for i, p := range a.Points {
		xs[i] = p.X
		ys[i] = p.Y
	}

	style := chart.Style{
		StrokeColor: seriesColor,
		StrokeWidth: 2,
	}
	if dotsOnly {
		style = chart.Style{
			StrokeWidth: chart.Disabled,
			DotWidth:    4,
			DotColor:    seriesColor,
		}
	}

	xAxis := chart.XAxis{Name: a.XLabel, Range: span(xs)}
	if a.TextX {
		xAxis.Ticks = textTicks(a.Points)
	}

	return chart.Chart{
		Title:  a.Title,
		Width:  width,
		Height: height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16},
		},
		XAxis: xAxis,
		YAxis: chart.YAxis{Name: a.YLabel, Range: span(ys)},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    a.YLabel,
				Style:   style,
				XValues: xs,
				YValues: ys,
			},
		},
	}
}

func bars(in []models.Bar) []chart.Value {
	out := make([]chart.Value, len(in))
	for i, b := range in {
		out[i] = chart.Value{Label: b.Label, Value: b.Value}
	}
	return out
}

func histogramBars(bins []models.Bin) []chart.Value {
	out := make([]chart.Value, len(bins))
	for i, b := range bins {
		out[i] = chart.Value{
			Label: fmt.Sprintf("%.4g-%.4g", b.Start, b.End),
			Value: float64(b.Count),
		}
	}
	return out
}

func barChart(a *models.Artifact, values []chart.Value, width, height int) chart.BarChart {
	lo, hi := 0.0, 0.0
	for _, v := range values {
		lo = math.Min(lo, v.Value)
		hi = math.Max(hi, v.Value)
	}
	if lo == hi {
		hi = lo + 1
	}

	// Shrink bars so every value fits the canvas.
	slot := (width - 100) / max(len(values), 1)
	barWidth := min(max(slot*4/5, 2), 50)
	spacing := min(max(slot-barWidth, 1), 100)

	return chart.BarChart{
		Title:  a.Title,
		Width:  width,
		Height: height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		BarWidth:   barWidth,
		BarSpacing: spacing,
		YAxis: chart.YAxis{
			Name:  a.YLabel,
			Range: &chart.ContinuousRange{Min: lo, Max: hi},
		},
		Bars: values,
	}
}

// boxChart draws one box per summary at x positions 1..n.
func boxChart(a *models.Artifact, width, height int) chart.Chart {
	const half = 0.25

	var series []chart.Series
	var ticks []chart.Tick
	var all []float64
	line := func(style chart.Style, xs, ys []float64) {
		series = append(series, chart.ContinuousSeries{Style: style, XValues: xs, YValues: ys})
	}
	boxStyle := chart.Style{StrokeColor: boxColor, StrokeWidth: 1.5}
	medianStyle := chart.Style{StrokeColor: medianColor, StrokeWidth: 2}

	for i, b := range a.Boxes {
		p := float64(i + 1)
		line(boxStyle, []float64{p - half, p + half, p + half, p - half, p - half}, []float64{b.Q1, b.Q1, b.Q3, b.Q3, b.Q1})
		line(medianStyle, []float64{p - half, p + half}, []float64{b.Median, b.Median})
		line(boxStyle, []float64{p, p}, []float64{b.Min, b.Q1})
		line(boxStyle, []float64{p, p}, []float64{b.Q3, b.Max})
		line(boxStyle, []float64{p - half/2, p + half/2}, []float64{b.Min, b.Min})
		line(boxStyle, []float64{p - half/2, p + half/2}, []float64{b.Max, b.Max})
		ticks = append(ticks, chart.Tick{Value: p, Label: b.Name})
		all = append(all, b.Min, b.Max)
	}

	return chart.Chart{
		Title:  a.Title,
		Width:  width,
		Height: height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16},
		},
		XAxis: chart.XAxis{
			Name:  a.XLabel,
			Range: &chart.ContinuousRange{Min: 0.5, Max: float64(len(a.Boxes)) + 0.5},
			Ticks: ticks,
		},
		YAxis:  chart.YAxis{Name: a.YLabel, Range: span(all)},
		Series: series,
	}
}

func pieChart(a *models.Artifact, width, height int) chart.PieChart {
	values := make([]chart.Value, len(a.Slices))
	for i, s := range a.Slices {
		values[i] = chart.Value{Label: s.Label, Value: float64(s.Count)}
	}
	return chart.PieChart{
		Title:  a.Title,
		Width:  width,
		Height: height,
		Values: values,
	}
}

// span returns the value range of vs, widened when all values are equal
// so the axis never has zero width.
func span(vs []float64) *chart.ContinuousRange {
	if len(vs) == 0 {
		return &chart.ContinuousRange{Min: 0, Max: 1}
	}
	lo, hi := vs[0], vs[0]
	for _, v := range vs[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo == hi {
		lo, hi = lo-1, hi+1
	}
	return &chart.ContinuousRange{Min: lo, Max: hi}
}

// textTicks labels row positions with their x text, thinned to maxTextTicks.
func textTicks(points []models.Point) []chart.Tick {
	step := (len(points) + maxTextTicks - 1) / maxTextTicks
	step = max(step, 1)
	ticks := make([]chart.Tick, 0, maxTextTicks)
	for i := 0; i < len(points); i += step {
		ticks = append(ticks, chart.Tick{Value: points[i].X, Label: points[i].Label})
	}
	return ticks
}
