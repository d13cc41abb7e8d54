// Package render rasterizes plotspec.PlotSpec values into PNG charts using
// github.com/wcharczuk/go-chart/v2.
//
// The renderer guarantees only the spec's declared content — every scatter
// point, the single overlay, both axis labels and the caption appear in the
// output — not any particular pixel geometry.
//
// Layer mapping:
//   - scatter layer   → dot-only continuous series with the spec's opacity
//   - trend overlay   → solid fitted line plus light dashed band edges
//   - boxplot overlay → per-level box, median and whisker polylines on an
//     ordinal axis labeled with the level names
//   - caption         → small annotation in the bottom-right corner
//
// ⚙️ Usage:
//
//	png, err := render.Render(spec, render.DefaultOptions())
//	if err != nil { ... }
//	os.WriteFile("rooms.png", png, 0o644)
//
// Rendering is pure with respect to the spec: the PlotSpec is never mutated.
package render
