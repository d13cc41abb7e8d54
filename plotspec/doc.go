// Package plotspec builds renderable plot specifications from a dataset,
// choosing the overlay from the semantic kind of the explanatory column.
//
// 🚀 What is a PlotSpec?
//
//	An immutable description of one two-dimensional visualization:
//	a jittered, semi-transparent scatter layer of the response against one
//	explanatory column, plus exactly one overlay —
//	  • Categorical column → boxplot overlay (conditional distribution per level)
//	  • Numeric column     → OLS trend overlay with a confidence band
//	together with humanized axis labels and a fixed source caption.
//
// A trend line over an unordered categorical axis is meaningless; a boxplot
// communicates the conditional distribution instead. The branch is driven by
// dataset.Kind alone — never hardcoded per column.
//
// ✨ Key guarantees:
//   - Pure: Build never mutates the dataset and performs no I/O.
//   - Fresh & immutable: every call constructs a new PlotSpec; successive
//     calls share no mutable state.
//   - Deterministic: jitter derives from Options.Seed; the same inputs always
//     yield the same spec.
//   - Ordered: BuildAll preserves the dataset's native column order.
//
// ⚙️ Usage:
//
//	import "github.com/tverdal/edaplot/plotspec"
//
//	opts := plotspec.DefaultOptions()
//	spec, err := plotspec.Build(ds, "number_of_rooms_per_dwelling", opts)
//	if err != nil {
//	  // handle ErrUnknownColumn / ErrResponseColumn
//	}
//
//	coll, err := plotspec.BuildAll(ds, opts) // one spec per explanatory column
//
// Performance:
//
//   - Build:    O(n·log n) time (quartiles / jitter resolution), O(n) memory.
//   - BuildAll: columns built concurrently (bounded by GOMAXPROCS); output
//     order is the dataset's column order regardless of scheduling.
//
// See example_test.go for end-to-end walkthroughs.
package plotspec
