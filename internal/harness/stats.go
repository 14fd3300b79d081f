package harness

import "math"

// Mean returns the arithmetic mean of xs, or 0 for no samples.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// StdDev returns the sample standard deviation (n-1 denominator).
// Fewer than two samples have no spread and yield 0.
func StdDev(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	mean := Mean(xs)
	var sq float64
	for _, x := range xs {
		d := x - mean
		sq += d * d
	}
	return math.Sqrt(sq / float64(len(xs)-1))
}

// LinearFit returns the least-squares line y = slope*x + intercept through
// the points and its coefficient of determination. r2 is 0 when fewer than
// two points are given or either axis has no spread.
func LinearFit(xs, ys []float64) (slope, intercept, r2 float64) {
	n := min(len(xs), len(ys))
	if n < 2 {
		return 0, 0, 0
	}
	mx, my := Mean(xs[:n]), Mean(ys[:n])
	var sxx, syy, sxy float64
	for i := 0; i < n; i++ {
		dx, dy := xs[i]-mx, ys[i]-my
		sxx += dx * dx
		syy += dy * dy
		sxy += dx * dy
	}
	if sxx == 0 {
		return 0, my, 0
	}
	slope = sxy / sxx
	intercept = my - slope*mx
	if syy == 0 {
		return slope, intercept, 0
	}
	return slope, intercept, sxy * sxy / (sxx * syy)
}
