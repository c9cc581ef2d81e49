package vec

import (
	"errors"
	"fmt"
	"strings"
)

// DistanceFunc is any pairwise distance over two equal-length vectors.
// Callers that take the metric as a parameter accept this type.
type DistanceFunc func(v1, v2 Vector) (float64, error)

// Metric names a built-in distance function, for callers that select the
// metric from configuration or request input.
type Metric string

// Built-in metrics. Minkowski is deliberately absent: its order parameter
// makes it a plain function call rather than a named metric.
const (
	MetricAngular          Metric = "angular"
	MetricCosine           Metric = "cosine"
	MetricEuclidean        Metric = "euclidean"
	MetricSquaredEuclidean Metric = "sqeuclidean"
	MetricManhattan        Metric = "manhattan"
	MetricChebyshev        Metric = "chebyshev"
)

// ErrUnknownMetric is returned for names outside the built-in set.
var ErrUnknownMetric = errors.New("unknown metric")

var distanceFuncs = map[Metric]DistanceFunc{
	MetricAngular:          AngularDistance,
	MetricCosine:           CosineDistance,
	MetricEuclidean:        Euclidean,
	MetricSquaredEuclidean: SquaredEuclidean,
	MetricManhattan:        Manhattan,
	MetricChebyshev:        Chebyshev,
}

// ParseMetric maps a metric name to its Metric, ignoring case and
// surrounding whitespace.
func ParseMetric(s string) (Metric, error) {
	m := Metric(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := distanceFuncs[m]; !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownMetric, s)
	}
	return m, nil
}

// Func returns the distance function behind m.
func (m Metric) Func() (DistanceFunc, error) {
	fn, ok := distanceFuncs[m]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownMetric, string(m))
	}
	return fn, nil
}

// Distance applies m to the pair.
func (m Metric) Distance(v1, v2 Vector) (float64, error) {
	fn, err := m.Func()
	if err != nil {
		return 0, err
	}
	return fn(v1, v2)
}
