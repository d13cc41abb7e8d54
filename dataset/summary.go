package dataset

import (
	"math"
	"sort"
)

// ColumnSummary captures first-look statistics for one column. Numeric and
// Categorical populate disjoint field sets, mirroring Column itself.
type ColumnSummary struct {
	Name string
	Kind Kind

	// Numeric fields.
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64

	// Categorical fields: level → occurrence count, plus first-appearance order.
	LevelCounts map[string]int
	LevelOrder  []string
}

// Summarize computes a ColumnSummary per column, in native column order.
//
// Complexity: O(rows·columns·log rows) time (numeric columns sort a copy),
// O(rows) scratch memory.
func Summarize(d *Dataset) []ColumnSummary {
	out := make([]ColumnSummary, 0, len(d.cols))
	for _, c := range d.cols {
		if c.Kind == Categorical {
			out = append(out, summarizeLevels(c))

			continue
		}
		out = append(out, summarizeFloats(c))
	}

	return out
}

func summarizeFloats(c Column) ColumnSummary {
	s := ColumnSummary{Name: c.Name, Kind: Numeric, Count: len(c.Floats)}
	if s.Count == 0 {
		return s
	}

	sum, sumSq := 0.0, 0.0
	for _, v := range c.Floats {
		sum += v
		sumSq += v * v
	}
	n := float64(s.Count)
	s.Mean = sum / n
	// single-pass variance; clamp tiny negatives from float cancellation
	variance := (sumSq / n) - (s.Mean * s.Mean)
	if variance > 0 {
		s.Std = math.Sqrt(variance)
	}

	sorted := append([]float64(nil), c.Floats...)
	sort.Float64s(sorted)
	s.Min = sorted[0]
	s.Max = sorted[len(sorted)-1]
	s.Q1 = quantileSorted(sorted, 0.25)
	s.Median = quantileSorted(sorted, 0.5)
	s.Q3 = quantileSorted(sorted, 0.75)

	return s
}

func summarizeLevels(c Column) ColumnSummary {
	s := ColumnSummary{
		Name:        c.Name,
		Kind:        Categorical,
		Count:       len(c.Levels),
		LevelCounts: make(map[string]int),
	}
	for _, lvl := range c.Levels {
		if _, seen := s.LevelCounts[lvl]; !seen {
			s.LevelOrder = append(s.LevelOrder, lvl)
		}
		s.LevelCounts[lvl]++
	}

	return s
}

// quantileSorted returns the p-quantile of an ascending slice using linear
// interpolation between closest ranks (the R-7 rule).
func quantileSorted(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return sorted[0]
	}

	pos := p * float64(n-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}

	frac := pos - float64(lo)

	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
