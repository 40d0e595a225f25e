package common

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Small numeric helpers shared by the scoring code, backed by gonum

// Clamp limits value to the closed range [min, max]
func Clamp(value, min, max float64) float64 {
	return math.Max(min, math.Min(max, value))
}

// Percentage maps value/maximum onto 0-100, clamped
func Percentage(value, maximum float64) float64 {
	if maximum <= 0 {
		return 0.0
	}
	return Clamp(value/maximum*100.0, 0, 100)
}

// EnergyNormalize scales data so its L2 norm is 1. A zero vector is returned
// unchanged
func EnergyNormalize(data []float64) []float64 {
	normalized := make([]float64, len(data))
	copy(normalized, data)

	norm := floats.Norm(normalized, 2)
	if norm < 1e-10 {
		return normalized
	}
	floats.Scale(1/norm, normalized)
	return normalized
}

// Round rounds value to the given number of decimal places
func Round(value float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(value*scale) / scale
}
