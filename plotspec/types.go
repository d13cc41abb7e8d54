// Package plotspec defines core types, options, and sentinel errors
// for the plotspec subpackage of github.com/tverdal/edaplot.
package plotspec

import (
	"errors"
)

// Sentinel errors for plot construction.
var (
	// ErrUnknownColumn indicates the x variable does not name a dataset column.
	ErrUnknownColumn = errors.New("plotspec: x variable does not name a dataset column")
	// ErrResponseColumn indicates the x variable names the response column itself.
	ErrResponseColumn = errors.New("plotspec: x variable must differ from the response column")
	// ErrUnsupportedKind indicates a column kind outside {Numeric, Categorical}.
	// Unreachable through dataset.New, which validates kinds at construction.
	ErrUnsupportedKind = errors.New("plotspec: column kind must be numeric or categorical")
	// ErrEmptyColumn indicates the dataset has no rows to plot.
	ErrEmptyColumn = errors.New("plotspec: cannot build a plot over zero rows")
)

// DefaultCaption identifies the illustrative data source on every plot.
const DefaultCaption = "Source: Boston Housing dataset (Harrison & Rubinfeld, 1978)"

// Defaults applied by Options.normalize for zero-valued fields.
const (
	// DefaultAlpha is the scatter point opacity (0 transparent … 1 opaque).
	DefaultAlpha = 0.4
	// DefaultOverlayAlpha is the boxplot overlay opacity.
	DefaultOverlayAlpha = 0.55
	// DefaultJitterWidth is the jitter span as a fraction of the x resolution.
	DefaultJitterWidth = 0.4
	// DefaultConfidenceLevel is the trend band coverage probability.
	DefaultConfidenceLevel = 0.95
	// DefaultBandSamples is the number of x positions the band is evaluated at.
	DefaultBandSamples = 40
	// DefaultSeed feeds the jitter generator when Options.Seed is zero.
	DefaultSeed = 1
)

// Point is one scatter mark in x-axis units (jitter already applied).
type Point struct {
	X, Y float64
}

// ScatterLayer is the raw point layer present on every plot.
//
// For a categorical x variable, XLevels holds the level labels in order of
// first appearance and each Point.X is the level ordinal (0-based) plus
// jitter. For a numeric x variable XLevels is nil and Point.X is the value
// plus jitter.
type ScatterLayer struct {
	Points      []Point
	Alpha       float64
	JitterWidth float64 // half-width actually applied, in x-axis units
	XLevels     []string
}

// BandPoint is one sample of the trend line and its confidence interval.
type BandPoint struct {
	X, Fit, Lo, Hi float64
}

// TrendLayer is the ordinary-least-squares overlay for numeric x variables:
// the fitted line y = Intercept + Slope·x and a confidence band sampled over
// the observed x range. The band uses the normal approximation to the
// Student-t multiplier; for the dataset sizes this library targets the
// difference is below rendering resolution.
type TrendLayer struct {
	Slope, Intercept float64
	Band             []BandPoint
	Level            float64 // coverage probability, e.g. 0.95
}

// BoxGroup summarizes the response distribution for one categorical level.
// Lower/Upper are Tukey whiskers: the most extreme observations within
// 1.5·IQR of the quartiles.
type BoxGroup struct {
	Level                        string
	Lower, Q1, Median, Q3, Upper float64
}

// BoxLayer is the grouped-distribution overlay for categorical x variables.
// ShowOutliers is always false: outliers are already visible as jittered
// scatter points, so the overlay suppresses its own markers.
type BoxLayer struct {
	Groups       []BoxGroup
	Alpha        float64
	ShowOutliers bool
}

// PlotSpec is an immutable, renderable description of one visualization.
// Exactly one of Trend/Box is non-nil, matching the x column's kind.
// Constructed fresh by Build on each call; never shared, never mutated.
type PlotSpec struct {
	XVar    string // raw x column name
	XLabel  string
	YLabel  string
	Caption string

	Scatter ScatterLayer
	Trend   *TrendLayer
	Box     *BoxLayer
}

// Options tunes plot construction. The zero value is usable: normalize
// replaces zero fields with the package defaults above.
type Options struct {
	// Alpha is the scatter point opacity in (0, 1].
	Alpha float64
	// OverlayAlpha is the boxplot overlay opacity in (0, 1].
	OverlayAlpha float64
	// JitterWidth is the jitter span as a fraction of the x resolution
	// (the smallest gap between distinct x positions; 1.0 for level ordinals).
	JitterWidth float64
	// Seed feeds the deterministic jitter generator; zero selects DefaultSeed.
	Seed uint64
	// ConfidenceLevel is the trend band coverage probability in (0, 1).
	ConfidenceLevel float64
	// BandSamples is how many x positions the trend band is evaluated at.
	BandSamples int
	// Caption is attached verbatim to every spec; empty selects DefaultCaption.
	Caption string
}

// DefaultOptions returns production-safe defaults: 40% scatter opacity,
// 55% overlay opacity, jitter at 40% of the x resolution, a 95% band over
// 40 samples, seed 1, and the Boston Housing caption.
func DefaultOptions() Options {
	return Options{
		Alpha:           DefaultAlpha,
		OverlayAlpha:    DefaultOverlayAlpha,
		JitterWidth:     DefaultJitterWidth,
		Seed:            DefaultSeed,
		ConfidenceLevel: DefaultConfidenceLevel,
		BandSamples:     DefaultBandSamples,
		Caption:         DefaultCaption,
	}
}

// normalize fills zero-valued fields with defaults, leaving opts usable as a
// plain value type.
func (o Options) normalize() Options {
	if o.Alpha == 0 {
		o.Alpha = DefaultAlpha
	}
	if o.OverlayAlpha == 0 {
		o.OverlayAlpha = DefaultOverlayAlpha
	}
	if o.JitterWidth == 0 {
		o.JitterWidth = DefaultJitterWidth
	}
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	if o.ConfidenceLevel == 0 {
		o.ConfidenceLevel = DefaultConfidenceLevel
	}
	if o.BandSamples == 0 {
		o.BandSamples = DefaultBandSamples
	}
	if o.Caption == "" {
		o.Caption = DefaultCaption
	}

	return o
}
