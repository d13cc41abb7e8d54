package plotspec

import (
	"math"
	"sort"
)

// olsFit is the closed-form ordinary-least-squares fit of y on x, together
// with the quantities needed to evaluate the confidence band:
// residual standard error s, mean of x and the centered sum of squares Sxx.
type olsFit struct {
	slope, intercept float64
	s, xBar, sxx     float64
	n                int
}

// fitOLS computes the closed-form simple regression of y on x.
//
// Degenerate inputs are fitted conservatively rather than rejected: a
// constant x (Sxx = 0) yields a flat line at the mean of y, and n ≤ 2 yields
// a zero residual standard error (the band collapses onto the line).
//
// Complexity: O(n) time, O(1) memory.
func fitOLS(x, y []float64) olsFit {
	n := len(x)
	fit := olsFit{n: n}
	if n == 0 {
		return fit
	}

	var sumX, sumY float64
	for i := range x {
		sumX += x[i]
		sumY += y[i]
	}
	fit.xBar = sumX / float64(n)
	yBar := sumY / float64(n)

	var sxx, sxy float64
	for i := range x {
		dx := x[i] - fit.xBar
		sxx += dx * dx
		sxy += dx * (y[i] - yBar)
	}
	fit.sxx = sxx

	if sxx == 0 {
		fit.intercept = yBar

		return fit
	}
	fit.slope = sxy / sxx
	fit.intercept = yBar - fit.slope*fit.xBar

	if n > 2 {
		var rss float64
		for i := range x {
			r := y[i] - (fit.intercept + fit.slope*x[i])
			rss += r * r
		}
		fit.s = math.Sqrt(rss / float64(n-2))
	}

	return fit
}

// stderrAt returns the standard error of the fitted mean at x0.
func (f olsFit) stderrAt(x0 float64) float64 {
	if f.n == 0 || f.s == 0 {
		return 0
	}
	lever := 1 / float64(f.n)
	if f.sxx > 0 {
		d := x0 - f.xBar
		lever += d * d / f.sxx
	}

	return f.s * math.Sqrt(lever)
}

// quartiles returns (q1, median, q3) of vals using linear interpolation
// between closest ranks. vals is copied, never mutated.
func quartiles(vals []float64) (q1, med, q3 float64) {
	sorted := append([]float64(nil), vals...)
	sort.Float64s(sorted)

	return quantileSorted(sorted, 0.25), quantileSorted(sorted, 0.5), quantileSorted(sorted, 0.75)
}

// quantileSorted returns the p-quantile of an ascending slice (R-7 rule).
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

// tukeyWhiskers returns the most extreme observations of vals that lie
// within 1.5·IQR of the quartiles — the classic boxplot whisker rule.
func tukeyWhiskers(vals []float64, q1, q3 float64) (lower, upper float64) {
	iqr := q3 - q1
	loBound := q1 - 1.5*iqr
	hiBound := q3 + 1.5*iqr

	lower, upper = math.Inf(1), math.Inf(-1)
	for _, v := range vals {
		if v >= loBound && v < lower {
			lower = v
		}
		if v <= hiBound && v > upper {
			upper = v
		}
	}
	// All values outside the fences can only happen for empty input.
	if math.IsInf(lower, 1) {
		lower, upper = q1, q3
	}

	return lower, upper
}

// resolution returns the smallest nonzero gap between distinct values of x,
// the natural unit for jitter amplitude. Zero when x has fewer than two
// distinct values.
func resolution(x []float64) float64 {
	if len(x) < 2 {
		return 0
	}
	sorted := append([]float64(nil), x...)
	sort.Float64s(sorted)

	res := math.Inf(1)
	for i := 1; i < len(sorted); i++ {
		if gap := sorted[i] - sorted[i-1]; gap > 0 && gap < res {
			res = gap
		}
	}
	if math.IsInf(res, 1) {
		return 0
	}

	return res
}

// normalQuantile returns the p-quantile of the standard normal distribution
// via the Beasley–Springer–Moro rational approximation (absolute error below
// 1e-8 — far under rendering resolution). Used for the trend band multiplier.
func normalQuantile(p float64) float64 {
	if p <= 0 {
		return math.Inf(-1)
	}
	if p >= 1 {
		return math.Inf(1)
	}

	a := [6]float64{-3.969683028665376e+01, 2.209460984245205e+02, -2.759285104469687e+02,
		1.383577518672690e+02, -3.066479806614716e+01, 2.506628277459239e+00}
	b := [5]float64{-5.447609879822406e+01, 1.615858368580409e+02, -1.556989798598866e+02,
		6.680131188771972e+01, -1.328068155288572e+01}
	c := [6]float64{-7.784894002430293e-03, -3.223964580411365e-01, -2.400758277161838e+00,
		-2.549732539343734e+00, 4.374664141464968e+00, 2.938163982698783e+00}
	d := [4]float64{7.784695709041462e-03, 3.224671290700398e-01, 2.445134137142996e+00,
		3.754408661907416e+00}

	const pLow = 0.02425
	switch {
	case p < pLow:
		q := math.Sqrt(-2 * math.Log(p))

		return (((((c[0]*q+c[1])*q+c[2])*q+c[3])*q+c[4])*q + c[5]) /
			((((d[0]*q+d[1])*q+d[2])*q+d[3])*q + 1)
	case p > 1-pLow:
		q := math.Sqrt(-2 * math.Log(1-p))

		return -(((((c[0]*q+c[1])*q+c[2])*q+c[3])*q+c[4])*q + c[5]) /
			((((d[0]*q+d[1])*q+d[2])*q+d[3])*q + 1)
	default:
		q := p - 0.5
		r := q * q

		return (((((a[0]*r+a[1])*r+a[2])*r+a[3])*r+a[4])*r + a[5]) * q /
			(((((b[0]*r+b[1])*r+b[2])*r+b[3])*r+b[4])*r + 1)
	}
}
