package plotspec

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/tverdal/edaplot/dataset"
)

// Build constructs the PlotSpec for one explanatory column of ds.
//
// Behavior:
//  1. A scatter layer of the response against xVar is always present,
//     rendered with partial opacity and a small deterministic horizontal
//     jitter (spanning Options.JitterWidth of the x resolution) so repeated
//     or discrete values do not overplot.
//  2. The overlay follows the column's kind — a hard binary branch:
//     Categorical → boxplot overlay of the response grouped by level, with
//     outlier markers suppressed (jittered points already show them) and
//     partial opacity; Numeric → OLS trend overlay with a confidence band.
//  3. Axis labels derive from the raw column names via FormatLabel, and the
//     caption from Options is attached.
//
// Errors:
//   - ErrUnknownColumn    — xVar names no column of ds.
//   - ErrResponseColumn   — xVar names the response column itself.
//   - ErrEmptyColumn      — ds has zero rows.
//   - ErrUnsupportedKind  — unreachable when ds was built by dataset.New.
//
// Build is pure: ds is never mutated and no state survives the call.
// Complexity: O(n·log n) time, O(n) memory, n = ds.Rows().
func Build(ds *dataset.Dataset, xVar string, opts Options) (*PlotSpec, error) {
	opts = opts.normalize()

	col, ok := ds.Column(xVar)
	if !ok {
		return nil, fmt.Errorf("column %q: %w", xVar, ErrUnknownColumn)
	}
	if xVar == ds.Response() {
		return nil, fmt.Errorf("column %q: %w", xVar, ErrResponseColumn)
	}
	if ds.Rows() == 0 {
		return nil, fmt.Errorf("column %q: %w", xVar, ErrEmptyColumn)
	}

	y := ds.ResponseValues()
	spec := &PlotSpec{
		XVar:    xVar,
		XLabel:  FormatLabel(xVar),
		YLabel:  FormatLabel(ds.Response()),
		Caption: opts.Caption,
	}

	switch col.Kind {
	case dataset.Numeric:
		spec.Scatter = scatterNumeric(col.Floats, y, opts)
		spec.Trend = buildTrend(col.Floats, y, opts)
	case dataset.Categorical:
		levels, ordinals := encodeLevels(col.Levels)
		spec.Scatter = scatterCategorical(levels, ordinals, y, opts)
		spec.Box = buildBox(col.Levels, levels, y, opts)
	default:
		return nil, fmt.Errorf("column %q kind %v: %w", xVar, col.Kind, ErrUnsupportedKind)
	}

	return spec, nil
}

// scatterNumeric builds the point layer over raw x values. The jitter
// half-width is JitterWidth/2 of the x resolution (the smallest gap between
// distinct values), so jitter never swallows real structure.
func scatterNumeric(x, y []float64, opts Options) ScatterLayer {
	half := opts.JitterWidth * resolution(x) / 2

	return ScatterLayer{
		Points:      jitterPoints(x, y, half, opts.Seed),
		Alpha:       opts.Alpha,
		JitterWidth: half,
	}
}

// scatterCategorical builds the point layer over level ordinals, whose
// natural resolution is 1.
func scatterCategorical(levels []string, ordinals, y []float64, opts Options) ScatterLayer {
	half := opts.JitterWidth / 2

	return ScatterLayer{
		Points:      jitterPoints(ordinals, y, half, opts.Seed),
		Alpha:       opts.Alpha,
		JitterWidth: half,
		XLevels:     levels,
	}
}

// jitterPoints pairs x and y into Points, displacing each x uniformly within
// ±half. The generator is seeded, so identical inputs yield identical points.
func jitterPoints(x, y []float64, half float64, seed uint64) []Point {
	rng := rand.New(rand.NewPCG(seed, seed))
	pts := make([]Point, len(x))
	for i := range x {
		j := 0.0
		if half > 0 {
			j = (rng.Float64()*2 - 1) * half
		}
		pts[i] = Point{X: x[i] + j, Y: y[i]}
	}

	return pts
}

// buildTrend fits y on x and samples the fitted line with its confidence
// band at BandSamples evenly spaced positions over the observed x range.
func buildTrend(x, y []float64, opts Options) *TrendLayer {
	fit := fitOLS(x, y)
	z := normalQuantile(0.5 + opts.ConfidenceLevel/2)

	lo, hi := minMax(x)
	samples := opts.BandSamples
	if lo == hi {
		samples = 1
	}

	band := make([]BandPoint, samples)
	for i := range band {
		x0 := lo
		if samples > 1 {
			x0 = lo + (hi-lo)*float64(i)/float64(samples-1)
		}
		mean := fit.intercept + fit.slope*x0
		margin := z * fit.stderrAt(x0)
		band[i] = BandPoint{X: x0, Fit: mean, Lo: mean - margin, Hi: mean + margin}
	}

	return &TrendLayer{
		Slope:     fit.slope,
		Intercept: fit.intercept,
		Band:      band,
		Level:     opts.ConfidenceLevel,
	}
}

// buildBox summarizes the response per categorical level, keeping the levels'
// first-appearance order. Outlier markers stay suppressed.
func buildBox(rows, levels []string, y []float64, opts Options) *BoxLayer {
	grouped := make(map[string][]float64, len(levels))
	for i, lvl := range rows {
		grouped[lvl] = append(grouped[lvl], y[i])
	}

	groups := make([]BoxGroup, len(levels))
	for i, lvl := range levels {
		vals := grouped[lvl]
		q1, med, q3 := quartiles(vals)
		lower, upper := tukeyWhiskers(vals, q1, q3)
		groups[i] = BoxGroup{Level: lvl, Lower: lower, Q1: q1, Median: med, Q3: q3, Upper: upper}
	}

	return &BoxLayer{Groups: groups, Alpha: opts.OverlayAlpha, ShowOutliers: false}
}

// encodeLevels maps level labels to ordinals in first-appearance order.
func encodeLevels(rows []string) (levels []string, ordinals []float64) {
	seen := make(map[string]int)
	ordinals = make([]float64, len(rows))
	for i, lvl := range rows {
		ord, ok := seen[lvl]
		if !ok {
			ord = len(levels)
			seen[lvl] = ord
			levels = append(levels, lvl)
		}
		ordinals[i] = float64(ord)
	}

	return levels, ordinals
}

// minMax returns the extremes of x; (0, 0) for empty input.
func minMax(x []float64) (lo, hi float64) {
	if len(x) == 0 {
		return 0, 0
	}
	lo, hi = x[0], x[0]
	for _, v := range x[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	return lo, hi
}
