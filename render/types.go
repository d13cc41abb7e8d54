// Package render defines options and sentinel errors for the render
// subpackage of github.com/tverdal/edaplot.
package render

import (
	"errors"
)

// Sentinel errors for chart rendering.
var (
	// ErrNilSpec indicates Render was called with a nil PlotSpec.
	ErrNilSpec = errors.New("render: plot spec must not be nil")
	// ErrEmptySpec indicates a PlotSpec without any scatter points.
	ErrEmptySpec = errors.New("render: plot spec has no points to draw")
)

// Default chart geometry.
const (
	// DefaultWidth is the rendered chart width in pixels.
	DefaultWidth = 800
	// DefaultHeight is the rendered chart height in pixels.
	DefaultHeight = 500
)

// Options tunes the rendered chart geometry. The zero value is usable:
// zero dimensions select the package defaults.
type Options struct {
	// Width is the chart width in pixels.
	Width int
	// Height is the chart height in pixels.
	Height int
}

// DefaultOptions returns the default 800×500 geometry.
func DefaultOptions() Options {
	return Options{Width: DefaultWidth, Height: DefaultHeight}
}

// normalize fills zero-valued fields with defaults.
func (o Options) normalize() Options {
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}

	return o
}
