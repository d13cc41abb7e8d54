package dataset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tverdal/edaplot/dataset"
)

// TestSummarize_Numeric verifies the moments and quartiles of a numeric
// column against hand-computed values (R-7 quantile rule).
func TestSummarize_Numeric(t *testing.T) {
	ds, err := dataset.New("y",
		dataset.NumericColumn("y", []float64{1, 2, 3, 4, 5}),
	)
	require.NoError(t, err)

	sums := dataset.Summarize(ds)
	require.Len(t, sums, 1)

	s := sums[0]
	assert.Equal(t, "y", s.Name)
	assert.Equal(t, dataset.Numeric, s.Kind)
	assert.Equal(t, 5, s.Count)
	assert.InDelta(t, 3.0, s.Mean, 1e-12)
	assert.InDelta(t, 1.4142135624, s.Std, 1e-9, "population std of 1..5")
	assert.InDelta(t, 1.0, s.Min, 1e-12)
	assert.InDelta(t, 2.0, s.Q1, 1e-12)
	assert.InDelta(t, 3.0, s.Median, 1e-12)
	assert.InDelta(t, 4.0, s.Q3, 1e-12)
	assert.InDelta(t, 5.0, s.Max, 1e-12)
}

// TestSummarize_EvenCount verifies interpolated quartiles for an even-sized
// column.
func TestSummarize_EvenCount(t *testing.T) {
	ds, err := dataset.New("y",
		dataset.NumericColumn("y", []float64{4, 1, 3, 2}),
	)
	require.NoError(t, err)

	s := dataset.Summarize(ds)[0]
	assert.InDelta(t, 2.5, s.Median, 1e-12)
	assert.InDelta(t, 1.75, s.Q1, 1e-12)
	assert.InDelta(t, 3.25, s.Q3, 1e-12)
}

// TestSummarize_Categorical verifies level counts and first-appearance order.
func TestSummarize_Categorical(t *testing.T) {
	ds, err := dataset.New("y",
		dataset.CategoricalColumn("grade", []string{"b", "a", "b", "c", "b"}),
		dataset.NumericColumn("y", []float64{1, 2, 3, 4, 5}),
	)
	require.NoError(t, err)

	s := dataset.Summarize(ds)[0]
	assert.Equal(t, dataset.Categorical, s.Kind)
	assert.Equal(t, 5, s.Count)
	assert.Equal(t, []string{"b", "a", "c"}, s.LevelOrder, "levels keep first-appearance order")
	assert.Equal(t, map[string]int{"b": 3, "a": 1, "c": 1}, s.LevelCounts)
}

// TestSummarize_EmptyColumn verifies a zero-row dataset summarizes without
// panicking.
func TestSummarize_EmptyColumn(t *testing.T) {
	ds, err := dataset.New("y", dataset.NumericColumn("y", nil))
	require.NoError(t, err)

	s := dataset.Summarize(ds)[0]
	assert.Equal(t, 0, s.Count)
	assert.Zero(t, s.Mean)
}
