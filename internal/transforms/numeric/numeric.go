// Package numeric provides scaling and conversion transforms for
// numeric sequences.
package numeric

import (
	"fmt"
	"math"

	"github.com/halden-labs/prepkit-cli/internal/core/domain"
)

// Normalize rescales values linearly so the input minimum maps to newMin
// and the input maximum to newMax. An empty input yields an empty output.
// Returns domain.ErrDegenerateRange when all values are equal, since the
// rescale is undefined there; the caller chooses the fallback.
func Normalize(values []float64, newMin, newMax float64) ([]float64, error) {
	if len(values) == 0 {
		return []float64{}, nil
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if hi == lo {
		return nil, fmt.Errorf("normalize: all values equal %g: %w", lo, domain.ErrDegenerateRange)
	}

	result := make([]float64, len(values))
	for i, v := range values {
		result[i] = (v-lo)/(hi-lo)*(newMax-newMin) + newMin
	}
	return result, nil
}

// Standardize applies the z-score transform using the population standard
// deviation, producing a sequence with mean 0 and unit variance. An empty
// input yields an empty output. Returns domain.ErrDegenerateRange when the
// standard deviation is zero.
func Standardize(values []float64) ([]float64, error) {
	if len(values) == 0 {
		return []float64{}, nil
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	var variance float64
	for _, v := range values {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(len(values))

	std := math.Sqrt(variance)
	if std == 0 {
		return nil, fmt.Errorf("standardize: zero variance: %w", domain.ErrDegenerateRange)
	}

	result := make([]float64, len(values))
	for i, v := range values {
		result[i] = (v - mean) / std
	}
	return result, nil
}

// Clip clamps every value into [minValue, maxValue]. Values already within
// bounds are unchanged. Returns domain.ErrInvalidRange when the bounds are
// inverted.
func Clip(values []float64, minValue, maxValue float64) ([]float64, error) {
	if minValue > maxValue {
		return nil, fmt.Errorf("clip: min %g > max %g: %w", minValue, maxValue, domain.ErrInvalidRange)
	}

	result := make([]float64, len(values))
	for i, v := range values {
		result[i] = math.Min(math.Max(v, minValue), maxValue)
	}
	return result, nil
}

// LogTransform applies the natural logarithm element-wise. Any value <= 0
// rejects the whole batch with domain.ErrInvalidDomain; elements are never
// silently dropped or coerced.
func LogTransform(values []float64) ([]float64, error) {
	for i, v := range values {
		if v <= 0 {
			return nil, fmt.Errorf("log transform: value %g at index %d: %w", v, i, domain.ErrInvalidDomain)
		}
	}

	result := make([]float64, len(values))
	for i, v := range values {
		result[i] = math.Log(v)
	}
	return result, nil
}
