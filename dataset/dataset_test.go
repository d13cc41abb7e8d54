package dataset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tverdal/edaplot/dataset"
)

// newHousing builds the small fixture shared across dataset tests:
// two numeric columns, one categorical column and a numeric response.
func newHousing(t *testing.T) *dataset.Dataset {
	t.Helper()

	ds, err := dataset.New("median_value",
		dataset.NumericColumn("rooms", []float64{5, 6, 7, 8}),
		dataset.CategoricalColumn("river_adjacent", []string{"no", "yes", "no", "no"}),
		dataset.NumericColumn("median_value", []float64{20, 25, 30, 35}),
	)
	require.NoError(t, err)

	return ds
}

// TestNew_EmptyDataset verifies that New rejects a call without columns.
func TestNew_EmptyDataset(t *testing.T) {
	_, err := dataset.New("y")
	assert.ErrorIs(t, err, dataset.ErrEmptyDataset, "no columns must error ErrEmptyDataset")
}

// TestNew_DuplicateColumn verifies that duplicate names are rejected.
func TestNew_DuplicateColumn(t *testing.T) {
	_, err := dataset.New("y",
		dataset.NumericColumn("y", []float64{1}),
		dataset.NumericColumn("y", []float64{2}),
	)
	assert.ErrorIs(t, err, dataset.ErrDuplicateColumn, "duplicate names must error ErrDuplicateColumn")
}

// TestNew_LengthMismatch verifies that ragged columns are rejected.
func TestNew_LengthMismatch(t *testing.T) {
	_, err := dataset.New("y",
		dataset.NumericColumn("y", []float64{1, 2}),
		dataset.NumericColumn("x", []float64{1}),
	)
	assert.ErrorIs(t, err, dataset.ErrLengthMismatch, "differing row counts must error ErrLengthMismatch")
}

// TestNew_UnknownKind verifies construction-time kind validation: a kind
// outside {Numeric, Categorical} never reaches plot building.
func TestNew_UnknownKind(t *testing.T) {
	bad := dataset.Column{Name: "x", Kind: dataset.Kind(42), Floats: []float64{1}}
	_, err := dataset.New("y", dataset.NumericColumn("y", []float64{1}), bad)
	assert.ErrorIs(t, err, dataset.ErrUnknownKind, "invalid kind must error ErrUnknownKind")
}

// TestNew_ResponseValidation verifies that the response column must exist
// and must be numeric.
func TestNew_ResponseValidation(t *testing.T) {
	_, err := dataset.New("missing", dataset.NumericColumn("x", []float64{1}))
	assert.ErrorIs(t, err, dataset.ErrResponseMissing, "absent response must error ErrResponseMissing")

	_, err = dataset.New("label",
		dataset.CategoricalColumn("label", []string{"a"}),
		dataset.NumericColumn("x", []float64{1}),
	)
	assert.ErrorIs(t, err, dataset.ErrResponseKind, "categorical response must error ErrResponseKind")
}

// TestDataset_Accessors verifies names, order, kinds and row counts of a
// valid dataset.
func TestDataset_Accessors(t *testing.T) {
	ds := newHousing(t)

	assert.Equal(t, []string{"rooms", "river_adjacent", "median_value"}, ds.Names(),
		"Names must preserve construction order")
	assert.Equal(t, "median_value", ds.Response())
	assert.Equal(t, 4, ds.Rows())
	assert.Equal(t, 3, ds.Columns())
	assert.True(t, ds.Has("rooms"))
	assert.False(t, ds.Has("basements"))

	kind, ok := ds.Kind("river_adjacent")
	require.True(t, ok)
	assert.Equal(t, dataset.Categorical, kind)

	_, ok = ds.Kind("basements")
	assert.False(t, ok, "unknown column must report !ok")
}

// TestDataset_Immutable verifies that neither input slices nor accessor
// results can mutate the dataset after construction.
func TestDataset_Immutable(t *testing.T) {
	rooms := []float64{5, 6, 7, 8}
	ds, err := dataset.New("median_value",
		dataset.NumericColumn("rooms", rooms),
		dataset.NumericColumn("median_value", []float64{20, 25, 30, 35}),
	)
	require.NoError(t, err)

	// mutating the caller's slice must not leak in
	rooms[0] = -1
	col, ok := ds.Column("rooms")
	require.True(t, ok)
	assert.Equal(t, 5.0, col.Floats[0], "New must deep-copy input slices")

	// mutating an accessor result must not leak back
	col.Floats[1] = -1
	again, _ := ds.Column("rooms")
	assert.Equal(t, 6.0, again.Floats[1], "Column must return a fresh copy")

	vals := ds.ResponseValues()
	vals[0] = -1
	assert.Equal(t, 20.0, ds.ResponseValues()[0], "ResponseValues must return a fresh copy")
}

// TestKind_String covers the Kind labels, including the invalid tag.
func TestKind_String(t *testing.T) {
	assert.Equal(t, "numeric", dataset.Numeric.String())
	assert.Equal(t, "categorical", dataset.Categorical.String())
	assert.Equal(t, "unknown", dataset.Kind(7).String())
}
