package vec

import (
	"errors"
	"fmt"
	"math"

	"github.com/sandeep89846/vecdist/internal/f64"
)

// Vector is an ordered sequence of float64 components: one point in
// n-dimensional space. Operations never mutate their inputs.
type Vector []float64

// The two error categories every operation reports. errors.Is against these
// tells a malformed shape apart from degenerate content.
var (
	// ErrDimensionMismatch flags inputs whose lengths disagree, or an empty
	// input.
	ErrDimensionMismatch = errors.New("vector dimensions don't match")

	// ErrDomain flags content the requested computation is undefined for.
	ErrDomain = errors.New("input outside metric domain")
)

// Common ErrDomain causes, matchable directly.
var (
	ErrZeroNorm  = fmt.Errorf("%w: zero-norm vector", ErrDomain)
	ErrNonFinite = fmt.Errorf("%w: non-finite component", ErrDomain)
)

// FromFloat32 widens a float32 embedding to a Vector.
func FromFloat32(v []float32) Vector {
	out := make(Vector, len(v))
	for i, x := range v {
		out[i] = float64(x)
	}
	return out
}

// Validate returns nil when every component of v is a finite number, or an
// ErrNonFinite error naming the first offending index.
func (v Vector) Validate() error {
	for i, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("%w at index %d", ErrNonFinite, i)
		}
	}
	return nil
}

// Normalize returns a unit-norm copy of v. The input is left untouched.
func Normalize(v Vector) (Vector, error) {
	if len(v) == 0 {
		return nil, fmt.Errorf("%w: empty vector", ErrDimensionMismatch)
	}
	if err := v.Validate(); err != nil {
		return nil, err
	}

	norm := math.Sqrt(f64.SquaredNorm(v))
	if norm == 0 {
		return nil, ErrZeroNorm
	}
	if math.IsInf(norm, 0) {
		return nil, fmt.Errorf("%w: vector norm overflows", ErrDomain)
	}

	out := make(Vector, len(v))
	for i, x := range v {
		out[i] = x / norm
	}
	return out, nil
}

// checkPair validates the shared preconditions of every pairwise operation:
// equal non-zero lengths and finite components, checked before any
// arithmetic.
func checkPair(v1, v2 Vector) error {
	if len(v1) != len(v2) {
		return fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, len(v1), len(v2))
	}
	if len(v1) == 0 {
		return fmt.Errorf("%w: empty vector", ErrDimensionMismatch)
	}
	if err := v1.Validate(); err != nil {
		return err
	}
	return v2.Validate()
}
