// Package dataset provides the ordered, immutable column table that every
// other edaplot package consumes.
//
// 🚀 What is a Dataset?
//
//	A fixed collection of equally sized named columns, each typed either
//	Numeric (continuous measurements) or Categorical (a small fixed set of
//	labels), plus one designated numeric response column that all generated
//	plots share on the vertical axis.
//
// ✨ Key guarantees:
//   - Construction-time validation: duplicate names, ragged lengths, unknown
//     kinds and a missing or non-numeric response are all rejected by New —
//     downstream code never re-inspects column kinds.
//   - Immutability: New deep-copies every slice; accessors return copies.
//     A Dataset never changes after construction.
//   - Order preservation: Names and Summarize iterate columns in the order
//     they were supplied (or appeared in the CSV header).
//
// ⚙️ Usage:
//
//	import "github.com/tverdal/edaplot/dataset"
//
//	ds, err := dataset.New("median_value",
//	  dataset.NumericColumn("rooms", rooms),
//	  dataset.CategoricalColumn("river_adjacent", river),
//	  dataset.NumericColumn("median_value", values),
//	)
//	if err != nil {
//	  // handle ErrDuplicateColumn, ErrResponseMissing, ...
//	}
//
// Loading from files:
//
//	meta, _ := dataset.LoadMetadata(metaFile) // YAML: renames, retyping, response
//	ds, err := dataset.LoadCSV(csvFile, meta)
//
// Performance: all constructors are O(rows·columns) time and memory;
// accessors are O(1) except those returning copies, which are O(rows).
package dataset
