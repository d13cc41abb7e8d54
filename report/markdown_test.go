package report_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tverdal/edaplot/dataset"
	"github.com/tverdal/edaplot/plotspec"
	"github.com/tverdal/edaplot/report"
)

// newFixture builds a dataset and its plot collection for report tests.
func newFixture(t *testing.T) (*dataset.Dataset, *plotspec.Collection) {
	t.Helper()

	ds, err := dataset.New("median_value",
		dataset.NumericColumn("rooms", []float64{5, 6, 7, 8}),
		dataset.CategoricalColumn("river_adjacent", []string{"no", "yes", "no", "no"}),
		dataset.NumericColumn("median_value", []float64{20, 25, 30, 35}),
	)
	require.NoError(t, err)

	coll, err := plotspec.BuildAll(ds, plotspec.DefaultOptions())
	require.NoError(t, err)

	return ds, coll
}

// TestWriter_FullReport verifies the report carries the title, the summary
// table, one section per plot, image references and the caption.
func TestWriter_FullReport(t *testing.T) {
	ds, coll := newFixture(t)
	images := map[string]string{
		"rooms":          "rooms.png",
		"river_adjacent": "river_adjacent.png",
	}

	var buf bytes.Buffer
	err := report.NewWriter(&buf).Write(ds, coll, images)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "# "+report.DefaultTitle)
	assert.Contains(t, out, "## Column Summary")
	assert.Contains(t, out, "## Rooms")
	assert.Contains(t, out, "## River Adjacent")
	assert.Contains(t, out, "![Rooms](rooms.png)")
	assert.Contains(t, out, "![River Adjacent](river_adjacent.png)")
	assert.Contains(t, out, "OLS trend: slope", "numeric sections describe the fit")
	assert.Contains(t, out, "IQR", "categorical sections tabulate level medians")
	assert.Contains(t, out, plotspec.DefaultCaption)

	// plot sections keep the collection order
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("## Rooms")),
		bytes.Index(buf.Bytes(), []byte("## River Adjacent")))
}

// TestWriter_WithTitle verifies the title override option.
func TestWriter_WithTitle(t *testing.T) {
	ds, coll := newFixture(t)

	var buf bytes.Buffer
	err := report.NewWriter(&buf, report.WithTitle("Boston Housing — first look")).
		Write(ds, coll, nil)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "# Boston Housing — first look")
	assert.NotContains(t, buf.String(), report.DefaultTitle)
}

// TestWriter_MissingImages verifies sections simply omit the image line for
// columns absent from the image map.
func TestWriter_MissingImages(t *testing.T) {
	ds, coll := newFixture(t)

	var buf bytes.Buffer
	err := report.NewWriter(&buf).Write(ds, coll, nil)
	require.NoError(t, err)

	assert.NotContains(t, buf.String(), "![", "no image map, no image references")
	assert.Contains(t, buf.String(), "## Rooms", "plot sections still present")
}
