// Package edaplot turns tabular datasets into renderable exploratory
// plot specifications — scatter clouds with a distribution or trend
// overlay chosen from the semantic kind of each column.
//
// 🚀 What is edaplot?
//
//	A small, pure library for first-look data exploration that brings together:
//		• Dataset primitives: ordered, immutable columns typed numeric or categorical
//		• Plot building: scatter + jitter, boxplot overlays, OLS trend bands
//		• Label humanization: snake_case identifiers → display titles
//		• Batch driving: one spec per explanatory column, order preserved
//		• Rendering: PNG charts via go-chart
//		• Reporting: a markdown exploration report per dataset
//
// ✨ Why choose edaplot?
//
//   - Semantics-driven – the overlay follows the column kind, never a per-column hardcode
//   - Deterministic – seeded jitter, stable ordering, no hidden state
//   - Pure core – building a spec never mutates the dataset and never touches I/O
//
// Everything is organized under focused subpackages:
//
//	dataset/  — column table, CSV loading, YAML metadata, summaries
//	plotspec/ — PlotSpec construction, label formatting, batch driver
//	render/   — PlotSpec → PNG via go-chart
//	report/   — markdown exploration reports
//	cmd/      — the edaplot command-line front end
//
// Quick sketch of the pipeline:
//
//	CSV + metadata ──▶ dataset.LoadCSV ──▶ plotspec.BuildAll ──▶ render.Render ──▶ report.Writer
//
// Dive into the per-package docs for contracts, complexity notes and examples.
//
//	go get github.com/tverdal/edaplot
package edaplot
