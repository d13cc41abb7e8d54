package dataset

import (
	"fmt"
)

// Dataset is an ordered, immutable table of named columns with one designated
// numeric response column. Construct it with New or LoadCSV; a zero Dataset
// is not usable.
//
// Invariants (enforced by New, relied upon by every consumer):
//   - column names are unique;
//   - all columns have the same row count;
//   - every column kind is Numeric or Categorical;
//   - the response column exists and is Numeric.
type Dataset struct {
	cols     []Column
	index    map[string]int
	response string
	rows     int
}

// New validates and deep-copies cols into an immutable Dataset whose response
// column is named by response.
//
// Errors:
//   - ErrEmptyDataset     — no columns supplied.
//   - ErrDuplicateColumn  — two columns share a name.
//   - ErrLengthMismatch   — differing row counts.
//   - ErrUnknownKind      — a kind outside {Numeric, Categorical}.
//   - ErrResponseMissing  — response names no supplied column.
//   - ErrResponseKind     — response column is not Numeric.
//
// Complexity: O(rows·columns) time and memory (one copy of every value).
func New(response string, cols ...Column) (*Dataset, error) {
	if len(cols) == 0 {
		return nil, ErrEmptyDataset
	}

	index := make(map[string]int, len(cols))
	rows := cols[0].rows()
	copied := make([]Column, len(cols))
	for i, c := range cols {
		if !c.Kind.valid() {
			return nil, fmt.Errorf("column %q: %w", c.Name, ErrUnknownKind)
		}
		if _, dup := index[c.Name]; dup {
			return nil, fmt.Errorf("column %q: %w", c.Name, ErrDuplicateColumn)
		}
		if c.rows() != rows {
			return nil, fmt.Errorf("column %q has %d rows, want %d: %w", c.Name, c.rows(), rows, ErrLengthMismatch)
		}
		index[c.Name] = i
		copied[i] = c.copy()
	}

	ri, ok := index[response]
	if !ok {
		return nil, fmt.Errorf("response %q: %w", response, ErrResponseMissing)
	}
	if copied[ri].Kind != Numeric {
		return nil, fmt.Errorf("response %q is %s: %w", response, copied[ri].Kind, ErrResponseKind)
	}

	return &Dataset{cols: copied, index: index, response: response, rows: rows}, nil
}

// copy returns a deep copy of the column, detaching it from caller slices.
func (c Column) copy() Column {
	out := Column{Name: c.Name, Kind: c.Kind}
	if len(c.Floats) > 0 {
		out.Floats = append([]float64(nil), c.Floats...)
	}
	if len(c.Levels) > 0 {
		out.Levels = append([]string(nil), c.Levels...)
	}

	return out
}

// Names returns all column names in their native (construction) order.
// The returned slice is a fresh copy.
func (d *Dataset) Names() []string {
	names := make([]string, len(d.cols))
	for i, c := range d.cols {
		names[i] = c.Name
	}

	return names
}

// Has reports whether a column with the given name exists.
func (d *Dataset) Has(name string) bool {
	_, ok := d.index[name]

	return ok
}

// Column returns a deep copy of the named column and whether it exists.
// Copying keeps the Dataset immutable under any caller mutation.
func (d *Dataset) Column(name string) (Column, bool) {
	i, ok := d.index[name]
	if !ok {
		return Column{}, false
	}

	return d.cols[i].copy(), true
}

// Kind returns the kind of the named column and whether it exists.
func (d *Dataset) Kind(name string) (Kind, bool) {
	i, ok := d.index[name]
	if !ok {
		return 0, false
	}

	return d.cols[i].Kind, true
}

// Response returns the name of the designated response column.
func (d *Dataset) Response() string { return d.response }

// ResponseValues returns a copy of the response column's values.
func (d *Dataset) ResponseValues() []float64 {
	c := d.cols[d.index[d.response]]

	return append([]float64(nil), c.Floats...)
}

// Rows returns the number of rows shared by all columns.
func (d *Dataset) Rows() int { return d.rows }

// Columns returns the number of columns.
func (d *Dataset) Columns() int { return len(d.cols) }
