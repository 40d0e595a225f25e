package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ToProbabilities keeps the positive entries of scores and rescales them to
// sum to 1. All-non-positive input yields a zero vector
func ToProbabilities(scores []float64) []float64 {
	probabilities := make([]float64, len(scores))
	for i, s := range scores {
		if s > 0 {
			probabilities[i] = s
		}
	}

	sum := floats.Sum(probabilities)
	if sum == 0 {
		return probabilities
	}
	floats.Scale(1/sum, probabilities)
	return probabilities
}

// NormalizedEntropy is the Shannon entropy of the positive part of scores
// divided by its maximum (log n), in [0, 1]. 1 means every entry is equally
// likely
func NormalizedEntropy(scores []float64) float64 {
	if len(scores) < 2 {
		return 0.0
	}

	probabilities := ToProbabilities(scores)
	if floats.Sum(probabilities) == 0 {
		return 0.0
	}

	return stat.Entropy(probabilities) / math.Log(float64(len(scores)))
}

// Clarity is (best - second) / best over the scores, 0 when undefined
func Clarity(scores []float64) float64 {
	if len(scores) < 2 {
		return 0.0
	}

	sorted := make([]float64, len(scores))
	copy(sorted, scores)
	sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))

	if sorted[0] <= 0 {
		return 0.0
	}
	return (sorted[0] - sorted[1]) / sorted[0]
}
