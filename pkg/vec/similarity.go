package vec

import (
	"fmt"
	"math"

	"github.com/sandeep89846/vecdist/internal/f64"
)

// DotProduct calculates the dot product of two vectors.
func DotProduct(v1, v2 Vector) (float64, error) {
	if err := checkPair(v1, v2); err != nil {
		return 0, err
	}
	return f64.Dot(v1, v2), nil
}

// Magnitude calculates the Euclidean length (L2 norm) of the vector.
// The magnitude of an empty vector is 0.
func Magnitude(v Vector) float64 {
	return math.Sqrt(f64.SquaredNorm(v))
}

// CosineSimilarity calculates the cosine of the angle between two vectors,
// clamped into [-1, 1]: 1 for identical direction, 0 for orthogonal, -1 for
// opposite. The raw quotient can drift a few ulps past the bounds on
// near-parallel inputs; clamping keeps downstream arccos out of NaN.
func CosineSimilarity(v1, v2 Vector) (float64, error) {
	if err := checkPair(v1, v2); err != nil {
		return 0, err
	}

	dot := f64.Dot(v1, v2)
	mag1, mag2 := Magnitude(v1), Magnitude(v2)
	if mag1 == 0 || mag2 == 0 {
		return 0, ErrZeroNorm
	}
	// Finite components can still overflow a norm or the norm product. The
	// zero test runs first so 0 * Inf cannot reach the division as NaN.
	normProduct := mag1 * mag2
	if math.IsInf(normProduct, 0) {
		return 0, fmt.Errorf("%w: vector norm overflows", ErrDomain)
	}

	return clampUnit(dot / normProduct), nil
}

// CosineDistance calculates 1 minus the cosine similarity, in [0, 2]:
// 0 for identical direction, 2 for opposite. Lower is closer.
func CosineDistance(v1, v2 Vector) (float64, error) {
	cos, err := CosineSimilarity(v1, v2)
	if err != nil {
		return 0, err
	}
	return 1 - cos, nil
}

// AngularDistance calculates the angle between two vectors normalized by pi,
// in [0, 1]: 0 for identical direction, 0.5 for orthogonal, 1 for opposite.
// Unlike raw cosine similarity it is a proper metric over directions, which
// makes it the better choice for threshold-based dedup and clustering.
func AngularDistance(v1, v2 Vector) (float64, error) {
	cos, err := CosineSimilarity(v1, v2)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(cos) || cos < -1 || cos > 1 {
		// CosineSimilarity clamps into [-1, 1]; landing here means the
		// library itself is broken, not the input.
		panic(fmt.Sprintf("vec: clamped cosine similarity %v out of range", cos))
	}
	return math.Acos(cos) / math.Pi, nil
}

// AngularSimilarity calculates 1 minus the angular distance, in [0, 1]:
// 1 for identical direction, 0 for opposite. Higher is closer.
func AngularSimilarity(v1, v2 Vector) (float64, error) {
	d, err := AngularDistance(v1, v2)
	if err != nil {
		return 0, err
	}
	return 1 - d, nil
}

// clampUnit forces x into [-1, 1]. An overflowed dot product (±Inf over a
// finite norm product) clamps to the matching bound.
func clampUnit(x float64) float64 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}
