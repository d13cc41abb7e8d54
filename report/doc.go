// Package report renders a markdown exploration report for a dataset and
// its plot collection.
//
// The report opens with a per-column summary table, then devotes one section
// to every generated plot: the rendered image (when a path is supplied), a
// short description of the overlay — fitted slope and intercept for trend
// overlays, per-level medians for boxplot overlays — and the source caption.
//
// Design decision: we use the nao1215/markdown library for fluent markdown
// generation: type-safe construction of headers and tables beats manual
// string concatenation and keeps the output valid GitHub-flavored markdown.
//
// ⚙️ Usage:
//
//	w := report.NewWriter(f, report.WithTitle("Boston Housing — first look"))
//	err := w.Write(ds, coll, images) // images: column name → rendered PNG path
package report
