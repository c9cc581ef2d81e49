// Package f64 holds the raw float64 compute kernels behind pkg/vec.
//
// Kernels do no validation; callers guarantee equal slice lengths. The loops
// are kept simple so the compiler can auto-vectorize them.
package f64

import "math"

// Dot returns the dot product of a and b.
func Dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// SquaredNorm returns the sum of squares of v's components.
func SquaredNorm(v []float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return sum
}

// SquaredDistance returns the squared Euclidean distance between a and b.
func SquaredDistance(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// AbsSum returns the sum of absolute component differences (L1 distance).
func AbsSum(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += math.Abs(a[i] - b[i])
	}
	return sum
}

// Chebyshev returns the largest absolute component difference.
func Chebyshev(a, b []float64) float64 {
	var m float64
	for i := range a {
		if d := math.Abs(a[i] - b[i]); d > m {
			m = d
		}
	}
	return m
}

// PowSum returns the sum of |a[i]-b[i]|^p.
func PowSum(a, b []float64, p float64) float64 {
	var sum float64
	for i := range a {
		sum += math.Pow(math.Abs(a[i]-b[i]), p)
	}
	return sum
}

// PeriodicSquaredDistance returns the squared Euclidean distance with every
// component difference wrapped to its nearest periodic image.
func PeriodicSquaredDistance(a, b, period []float64) float64 {
	var sum float64
	for i := range a {
		d := wrap(a[i]-b[i], period[i])
		sum += d * d
	}
	return sum
}

// PeriodicAbsSum returns the L1 distance with every component difference
// wrapped to its nearest periodic image.
func PeriodicAbsSum(a, b, period []float64) float64 {
	var sum float64
	for i := range a {
		sum += math.Abs(wrap(a[i]-b[i], period[i]))
	}
	return sum
}

// wrap reduces delta to the nearest periodic image, so |result| <= p/2.
// Coordinates outside [0, p) wrap as many times as needed.
func wrap(delta, p float64) float64 {
	return delta - p*math.Round(delta/p)
}
