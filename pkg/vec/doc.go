// Package vec computes pairwise distances and similarities between
// real-valued vectors, the way embedding pipelines consume them.
//
// The central operation is AngularDistance: the angle between two vectors
// normalized by pi into [0, 1] (0 identical direction, 0.5 orthogonal,
// 1 opposite). It is derived from CosineSimilarity, whose raw quotient is
// clamped into [-1, 1] before arccos so floating-point drift on
// near-parallel inputs can never surface as NaN.
//
// Every operation validates its inputs before computing and reports one of
// two error categories: ErrDimensionMismatch for unequal or empty vectors,
// ErrDomain for content the computation is undefined on (zero norms,
// non-finite components, overflowing accumulators). Match them with
// errors.Is.
//
// All functions are pure: inputs are never mutated, no state is kept, and
// concurrent calls from any number of goroutines are safe.
//
// Computation is float64 throughout. FromFloat32 widens the []float32
// embeddings model runtimes typically return.
package vec
