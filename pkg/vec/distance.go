package vec

import (
	"fmt"
	"math"

	"github.com/sandeep89846/vecdist/internal/f64"
)

// Euclidean calculates the L2 distance between two vectors.
func Euclidean(v1, v2 Vector) (float64, error) {
	if err := checkPair(v1, v2); err != nil {
		return 0, err
	}
	return math.Sqrt(f64.SquaredDistance(v1, v2)), nil
}

// SquaredEuclidean calculates the squared L2 distance, skipping the square
// root for callers that only rank.
func SquaredEuclidean(v1, v2 Vector) (float64, error) {
	if err := checkPair(v1, v2); err != nil {
		return 0, err
	}
	return f64.SquaredDistance(v1, v2), nil
}

// Manhattan calculates the L1 distance: the sum of absolute component
// differences.
func Manhattan(v1, v2 Vector) (float64, error) {
	if err := checkPair(v1, v2); err != nil {
		return 0, err
	}
	return f64.AbsSum(v1, v2), nil
}

// Chebyshev calculates the L-infinity distance: the largest absolute
// component difference.
func Chebyshev(v1, v2 Vector) (float64, error) {
	if err := checkPair(v1, v2); err != nil {
		return 0, err
	}
	return f64.Chebyshev(v1, v2), nil
}

// Minkowski calculates the order-p Minkowski distance. p must be >= 1;
// p = math.Inf(1) gives the Chebyshev limit. Orders 1 and 2 take the cheaper
// Manhattan and Euclidean paths.
func Minkowski(v1, v2 Vector, p float64) (float64, error) {
	if math.IsNaN(p) || p < 1 {
		return 0, fmt.Errorf("%w: minkowski order p=%v, want p >= 1", ErrDomain, p)
	}
	if err := checkPair(v1, v2); err != nil {
		return 0, err
	}

	switch {
	case p == 1:
		return f64.AbsSum(v1, v2), nil
	case p == 2:
		return math.Sqrt(f64.SquaredDistance(v1, v2)), nil
	case math.IsInf(p, 1):
		return f64.Chebyshev(v1, v2), nil
	}
	return math.Pow(f64.PowSum(v1, v2, p), 1/p), nil
}

// PeriodicEuclidean calculates the L2 distance under periodic boundary
// conditions: each component difference is wrapped to its nearest periodic
// image before squaring. period holds the box length per dimension and must
// match the input dimension with strictly positive, finite components.
// Coordinates need not lie inside [0, period).
func PeriodicEuclidean(v1, v2, period Vector) (float64, error) {
	if err := checkPair(v1, v2); err != nil {
		return 0, err
	}
	if err := checkPeriod(period, len(v1)); err != nil {
		return 0, err
	}
	sum := f64.PeriodicSquaredDistance(v1, v2, period)
	// A component delta past float64 range comes back from the wrap as NaN.
	if math.IsNaN(sum) || math.IsInf(sum, 0) {
		return 0, fmt.Errorf("%w: coordinate delta overflows", ErrDomain)
	}
	return math.Sqrt(sum), nil
}

// PeriodicManhattan calculates the L1 distance under periodic boundary
// conditions, wrapping component differences the same way PeriodicEuclidean
// does.
func PeriodicManhattan(v1, v2, period Vector) (float64, error) {
	if err := checkPair(v1, v2); err != nil {
		return 0, err
	}
	if err := checkPeriod(period, len(v1)); err != nil {
		return 0, err
	}
	sum := f64.PeriodicAbsSum(v1, v2, period)
	if math.IsNaN(sum) || math.IsInf(sum, 0) {
		return 0, fmt.Errorf("%w: coordinate delta overflows", ErrDomain)
	}
	return sum, nil
}

func checkPeriod(period Vector, dim int) error {
	if len(period) != dim {
		return fmt.Errorf("%w: period length %d vs vector length %d", ErrDimensionMismatch, len(period), dim)
	}
	for i, p := range period {
		if math.IsNaN(p) || math.IsInf(p, 0) || p <= 0 {
			return fmt.Errorf("%w: period must be positive and finite, got %v at index %d", ErrDomain, p, i)
		}
	}
	return nil
}
