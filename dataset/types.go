// Package dataset defines core types, options, and sentinel errors
// for the dataset subpackage of github.com/tverdal/edaplot.
package dataset

import (
	"errors"
)

// Sentinel errors for dataset construction and loading.
var (
	// ErrEmptyDataset indicates New was called without any columns.
	ErrEmptyDataset = errors.New("dataset: at least one column is required")
	// ErrDuplicateColumn indicates two columns share the same name.
	ErrDuplicateColumn = errors.New("dataset: column names must be unique")
	// ErrLengthMismatch indicates columns of differing row counts.
	ErrLengthMismatch = errors.New("dataset: all columns must have the same length")
	// ErrUnknownKind indicates a column kind that is neither Numeric nor Categorical.
	ErrUnknownKind = errors.New("dataset: column kind must be Numeric or Categorical")
	// ErrResponseMissing indicates the designated response column does not exist.
	ErrResponseMissing = errors.New("dataset: response column not found")
	// ErrResponseKind indicates the designated response column is not numeric.
	ErrResponseKind = errors.New("dataset: response column must be numeric")
	// ErrNoHeader indicates a CSV input without a header row.
	ErrNoHeader = errors.New("dataset: csv input must start with a header row")
	// ErrRaggedRow indicates a CSV record whose field count differs from the header.
	ErrRaggedRow = errors.New("dataset: csv record length differs from header")
	// ErrUnknownMetaColumn indicates metadata referencing a column absent from the CSV.
	ErrUnknownMetaColumn = errors.New("dataset: metadata references unknown column")
)

// Kind tags the semantic type of a column. The overlay chosen for a plot is
// driven entirely by this tag, which is computed once at construction.
//
//   - Numeric      — a continuous quantity; plots receive an OLS trend overlay.
//   - Categorical  — a small fixed set of labels; plots receive a boxplot overlay.
type Kind int

const (
	// Numeric marks a column of continuous float64 measurements.
	Numeric Kind = iota
	// Categorical marks a column whose domain is a fixed set of string labels.
	Categorical
)

// String returns the lowercase name of the kind, or "unknown" for invalid tags.
func (k Kind) String() string {
	switch k {
	case Numeric:
		return "numeric"
	case Categorical:
		return "categorical"
	default:
		return "unknown"
	}
}

// valid reports whether k is one of the two supported kinds.
func (k Kind) valid() bool {
	return k == Numeric || k == Categorical
}

// Column is a single named column. Exactly one of Floats/Levels is populated,
// matching Kind: Floats for Numeric, Levels for Categorical.
//
// Columns are plain values; New copies their slices, so a Column may be
// reused or mutated freely after the Dataset is constructed.
type Column struct {
	// Name identifies the column; unique within a Dataset.
	Name string
	// Kind selects the semantic type and thereby the overlay for plots.
	Kind Kind
	// Floats holds the values of a Numeric column, one per row.
	Floats []float64
	// Levels holds the labels of a Categorical column, one per row.
	Levels []string
}

// NumericColumn builds a Numeric Column over vals.
func NumericColumn(name string, vals []float64) Column {
	return Column{Name: name, Kind: Numeric, Floats: vals}
}

// CategoricalColumn builds a Categorical Column over labels.
func CategoricalColumn(name string, labels []string) Column {
	return Column{Name: name, Kind: Categorical, Levels: labels}
}

// rows returns the row count of the column, honoring its kind.
func (c Column) rows() int {
	if c.Kind == Categorical {
		return len(c.Levels)
	}

	return len(c.Floats)
}
