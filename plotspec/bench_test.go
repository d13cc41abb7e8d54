package plotspec_test

import (
	"fmt"
	"testing"

	"github.com/tverdal/edaplot/dataset"
	"github.com/tverdal/edaplot/plotspec"
)

// benchmarkDataset builds a synthetic dataset with the given row count:
// one numeric column, one three-level categorical column, one response.
func benchmarkDataset(b *testing.B, rows int) *dataset.Dataset {
	b.Helper()

	x := make([]float64, rows)
	levels := make([]string, rows)
	y := make([]float64, rows)
	for i := 0; i < rows; i++ {
		x[i] = float64(i % 50)
		levels[i] = fmt.Sprintf("level_%d", i%3)
		y[i] = float64(i%50)*2 + float64(i%7)
	}

	ds, err := dataset.New("response",
		dataset.NumericColumn("feature", x),
		dataset.CategoricalColumn("grade", levels),
		dataset.NumericColumn("response", y),
	)
	if err != nil {
		b.Fatalf("dataset construction failed: %v", err)
	}

	return ds
}

// BenchmarkBuild_Numeric benchmarks trend-overlay construction on 1000 rows.
func BenchmarkBuild_Numeric(b *testing.B) {
	ds := benchmarkDataset(b, 1000)
	opts := plotspec.DefaultOptions()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := plotspec.Build(ds, "feature", opts); err != nil {
			b.Fatalf("Build failed: %v", err)
		}
	}
}

// BenchmarkBuild_Categorical benchmarks boxplot-overlay construction on 1000 rows.
func BenchmarkBuild_Categorical(b *testing.B) {
	ds := benchmarkDataset(b, 1000)
	opts := plotspec.DefaultOptions()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := plotspec.Build(ds, "grade", opts); err != nil {
			b.Fatalf("Build failed: %v", err)
		}
	}
}

// BenchmarkBuildAll benchmarks the concurrent batch driver on 1000 rows.
func BenchmarkBuildAll(b *testing.B) {
	ds := benchmarkDataset(b, 1000)
	opts := plotspec.DefaultOptions()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := plotspec.BuildAll(ds, opts); err != nil {
			b.Fatalf("BuildAll failed: %v", err)
		}
	}
}
