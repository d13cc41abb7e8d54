package render

import (
	"bytes"
	"fmt"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/tverdal/edaplot/plotspec"
)

// boxHalfWidth is the half-width of a rendered box glyph in ordinal units.
const boxHalfWidth = 0.3

// Render rasterizes spec into a PNG image.
//
// Errors:
//   - ErrNilSpec   — spec is nil.
//   - ErrEmptySpec — spec carries no scatter points.
//   - otherwise, wrapped go-chart render errors.
func Render(spec *plotspec.PlotSpec, opts Options) ([]byte, error) {
	if spec == nil {
		return nil, ErrNilSpec
	}
	if len(spec.Scatter.Points) == 0 {
		return nil, ErrEmptySpec
	}
	opts = opts.normalize()

	series := []chart.Series{scatterSeries(spec.Scatter)}
	if spec.Trend != nil {
		series = append(series, trendSeries(spec.Trend)...)
	}
	if spec.Box != nil {
		series = append(series, boxSeries(spec.Box)...)
	}

	ch := chart.Chart{
		Title:      fmt.Sprintf("%s vs %s", spec.YLabel, spec.XLabel),
		Width:      opts.Width,
		Height:     opts.Height,
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 24}},
		XAxis:      xAxis(spec),
		YAxis:      chart.YAxis{Name: spec.YLabel},
		Series:     series,
	}
	ch.Elements = []chart.Renderable{captionRenderable(spec.Caption)}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	return buf.Bytes(), nil
}

// xAxis labels the horizontal axis; categorical specs get one tick per level
// and half-a-step padding so edge boxes are not clipped.
func xAxis(spec *plotspec.PlotSpec) chart.XAxis {
	ax := chart.XAxis{Name: spec.XLabel}
	if levels := spec.Scatter.XLevels; levels != nil {
		ticks := make([]chart.Tick, len(levels))
		for i, lvl := range levels {
			ticks[i] = chart.Tick{Value: float64(i), Label: lvl}
		}
		ax.Ticks = ticks
		ax.Range = &chart.ContinuousRange{Min: -0.5, Max: float64(len(levels)) - 0.5}
	}

	return ax
}

// pointStyle returns a style that renders points only (no connecting line).
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: 0,
		DotWidth:    4,
		DotColor:    col,
	}
}

// scatterSeries draws the raw point layer with the spec's opacity.
func scatterSeries(s plotspec.ScatterLayer) chart.Series {
	xs := make([]float64, len(s.Points))
	ys := make([]float64, len(s.Points))
	for i, p := range s.Points {
		xs[i] = p.X
		ys[i] = p.Y
	}

	return chart.ContinuousSeries{
		XValues: xs,
		YValues: ys,
		Style:   pointStyle(chart.ColorBlue.WithAlpha(alphaByte(s.Alpha))),
	}
}

// trendSeries draws the fitted line plus light dashed band edges.
func trendSeries(t *plotspec.TrendLayer) []chart.Series {
	xs := make([]float64, len(t.Band))
	fit := make([]float64, len(t.Band))
	lo := make([]float64, len(t.Band))
	hi := make([]float64, len(t.Band))
	for i, b := range t.Band {
		xs[i], fit[i], lo[i], hi[i] = b.X, b.Fit, b.Lo, b.Hi
	}
	// Pad to at least two X values for go-chart
	if len(xs) == 1 {
		xs = append(xs, xs[0]+1)
		fit = append(fit, fit[0])
		lo = append(lo, lo[0])
		hi = append(hi, hi[0])
	}

	line := chart.Style{StrokeWidth: 2, StrokeColor: chart.ColorRed}
	edge := chart.Style{
		StrokeWidth:     1,
		StrokeColor:     chart.ColorRed.WithAlpha(90),
		StrokeDashArray: []float64{3, 3},
	}

	return []chart.Series{
		chart.ContinuousSeries{XValues: xs, YValues: fit, Style: line},
		chart.ContinuousSeries{XValues: xs, YValues: lo, Style: edge},
		chart.ContinuousSeries{XValues: xs, YValues: hi, Style: edge},
	}
}

// boxSeries draws each level's box, median and whiskers as polyline series
// centered on the level ordinal. Outlier markers are never drawn.
func boxSeries(b *plotspec.BoxLayer) []chart.Series {
	stroke := chart.Style{
		StrokeWidth: 1.5,
		StrokeColor: chart.ColorBlack.WithAlpha(alphaByte(b.Alpha)),
	}

	var series []chart.Series
	for i, g := range b.Groups {
		x := float64(i)
		l, r := x-boxHalfWidth, x+boxHalfWidth

		// closed box outline from Q1 to Q3
		series = append(series, chart.ContinuousSeries{
			XValues: []float64{l, r, r, l, l},
			YValues: []float64{g.Q1, g.Q1, g.Q3, g.Q3, g.Q1},
			Style:   stroke,
		})
		// median bar
		series = append(series, chart.ContinuousSeries{
			XValues: []float64{l, r},
			YValues: []float64{g.Median, g.Median},
			Style:   stroke,
		})
		// whiskers
		series = append(series, chart.ContinuousSeries{
			XValues: []float64{x, x},
			YValues: []float64{g.Q3, g.Upper},
			Style:   stroke,
		})
		series = append(series, chart.ContinuousSeries{
			XValues: []float64{x, x},
			YValues: []float64{g.Lower, g.Q1},
			Style:   stroke,
		})
	}

	return series
}

// captionRenderable draws the source caption in the bottom-right corner.
func captionRenderable(caption string) chart.Renderable {
	return func(r chart.Renderer, box chart.Box, defaults chart.Style) {
		if caption == "" {
			return
		}
		style := chart.Style{
			FontSize:  8,
			FontColor: chart.ColorAlternateGray,
		}.InheritFrom(defaults)

		r.SetFont(style.GetFont())
		r.SetFontSize(style.GetFontSize())
		r.SetFontColor(style.GetFontColor())
		tb := r.MeasureText(caption)
		r.Text(caption, box.Right-tb.Width(), box.Bottom+18)
	}
}

// alphaByte converts an opacity in (0, 1] to the 0–255 channel scale.
func alphaByte(alpha float64) uint8 {
	if alpha <= 0 {
		return 255
	}
	if alpha >= 1 {
		return 255
	}

	return uint8(alpha * 255)
}
