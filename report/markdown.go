package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/nao1215/markdown"

	"github.com/tverdal/edaplot/dataset"
	"github.com/tverdal/edaplot/plotspec"
)

// DefaultTitle heads reports when no WithTitle option is supplied.
const DefaultTitle = "Exploratory Analysis Report"

// Writer produces markdown exploration reports on an io.Writer.
type Writer struct {
	output io.Writer
	title  string
}

// Option configures a Writer.
type Option func(*Writer)

// WithTitle overrides the report's H1 title.
func WithTitle(title string) Option {
	return func(w *Writer) {
		if title != "" {
			w.title = title
		}
	}
}

// NewWriter creates a Writer emitting to output.
func NewWriter(output io.Writer, opts ...Option) *Writer {
	w := &Writer{output: output, title: DefaultTitle}
	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write emits the full report: title, dataset summary table, then one
// section per plot in collection order. images maps a column name to the
// rendered image path referenced from the section; columns absent from the
// map simply omit the image line.
func (w *Writer) Write(ds *dataset.Dataset, coll *plotspec.Collection, images map[string]string) error {
	md := markdown.NewMarkdown(w.output)

	md.H1(w.title)
	md.PlainText("")
	md.PlainTextf("%d rows × %d columns; response: **%s**.",
		ds.Rows(), ds.Columns(), plotspec.FormatLabel(ds.Response()))
	md.PlainText("")

	w.writeSummary(md, ds)

	for _, name := range coll.Names() {
		spec, ok := coll.Get(name)
		if !ok {
			continue
		}
		w.writePlot(md, spec, images[name])
	}

	return md.Build()
}

// writeSummary writes the per-column statistics table.
func (w *Writer) writeSummary(md *markdown.Markdown, ds *dataset.Dataset) {
	md.H2("Column Summary")
	md.PlainText("")

	rows := make([][]string, 0, ds.Columns())
	for _, s := range dataset.Summarize(ds) {
		if s.Kind == dataset.Categorical {
			rows = append(rows, []string{
				s.Name, s.Kind.String(), strconv.Itoa(s.Count),
				"—", "—", levelSummary(s),
			})

			continue
		}
		rows = append(rows, []string{
			s.Name, s.Kind.String(), strconv.Itoa(s.Count),
			formatFloat(s.Mean), formatFloat(s.Median),
			fmt.Sprintf("[%s, %s]", formatFloat(s.Min), formatFloat(s.Max)),
		})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Column", "Kind", "Count", "Mean", "Median", "Range / Levels"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writePlot writes one plot section: image, overlay description, caption.
func (w *Writer) writePlot(md *markdown.Markdown, spec *plotspec.PlotSpec, image string) {
	md.H2(spec.XLabel)
	md.PlainText("")

	if image != "" {
		md.PlainTextf("![%s](%s)", spec.XLabel, image)
		md.PlainText("")
	}

	switch {
	case spec.Trend != nil:
		md.PlainTextf("OLS trend: slope %s, intercept %s (%d%% confidence band).",
			formatFloat(spec.Trend.Slope), formatFloat(spec.Trend.Intercept),
			int(spec.Trend.Level*100))
	case spec.Box != nil:
		rows := make([][]string, 0, len(spec.Box.Groups))
		for _, g := range spec.Box.Groups {
			rows = append(rows, []string{
				g.Level, formatFloat(g.Median),
				fmt.Sprintf("[%s, %s]", formatFloat(g.Q1), formatFloat(g.Q3)),
			})
		}
		md.Table(markdown.TableSet{
			Header: []string{"Level", "Median", "IQR"},
			Rows:   rows,
		})
	}
	md.PlainText("")
	md.PlainTextf("*%s*", spec.Caption)
	md.PlainText("")
}

// levelSummary renders "level (count)" pairs in first-appearance order.
func levelSummary(s dataset.ColumnSummary) string {
	out := ""
	for i, lvl := range s.LevelOrder {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%s (%d)", lvl, s.LevelCounts[lvl])
	}

	return out
}

// formatFloat trims trailing zeros to keep tables readable.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 4, 64)
}
