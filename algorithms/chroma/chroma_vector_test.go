package chroma

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromPitchSets(t *testing.T) {
	sets := []PitchSet{
		{Tones: []PitchClass{0, 4, 7}, Bass: -1},  // C
		{Tones: []PitchClass{7, 11, 2}, Bass: -1}, // G
		{Tones: []PitchClass{9, 0, 4}, Bass: 7},   // Am/G
	}

	cv := FromPitchSets(sets)
	require.Len(t, cv.Values, NumPitchClasses)

	assert.Equal(t, RootWeight+ChordToneWeight, cv.Values[0])
	assert.Equal(t, 2*ChordToneWeight, cv.Values[4])
	assert.Equal(t, ChordToneWeight+RootWeight+BassWeight, cv.Values[7])
	assert.Equal(t, RootWeight, cv.Values[9])
	assert.Zero(t, cv.Values[1])
	assert.InDelta(t, 12.5, cv.Energy, 1e-9)

	pc, value := cv.Dominant()
	assert.Equal(t, PitchClass(7), pc)
	assert.InDelta(t, 3.5, value, 1e-9)
}

func TestChromaVector_Normalize(t *testing.T) {
	cv := NewChromaVector([]float64{3, 0, 0, 0, 4, 0, 0, 0, 0, 0, 0, 0})
	normalized := cv.Normalize()

	assert.True(t, normalized.Normalized)
	assert.InDelta(t, 0.6, normalized.Values[0], 1e-9)
	assert.InDelta(t, 0.8, normalized.Values[4], 1e-9)

	var sumSquares float64
	for _, v := range normalized.Values {
		sumSquares += v * v
	}
	assert.InDelta(t, 1.0, math.Sqrt(sumSquares), 1e-9)

	// The input is left untouched
	assert.Equal(t, 3.0, cv.Values[0])
}

func TestChromaVector_Rotate(t *testing.T) {
	cv := NewChromaVector([]float64{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 2})
	rotated := cv.Rotate(2)

	assert.Equal(t, 1.0, rotated.Values[2])
	assert.Equal(t, 2.0, rotated.Values[1])
	assert.Zero(t, rotated.Values[0])
	assert.Equal(t, cv.Energy, rotated.Energy)
}

func TestChromaVector_Silent(t *testing.T) {
	silent := FromPitchSets(nil)
	assert.True(t, silent.IsSilent())
	assert.Zero(t, silent.Entropy)

	normalized := silent.Normalize()
	assert.Equal(t, make([]float64, NumPitchClasses), normalized.Values)
}

func TestChromaVector_Entropy(t *testing.T) {
	flat := make([]float64, NumPitchClasses)
	for i := range flat {
		flat[i] = 1
	}
	assert.InDelta(t, 1.0, NewChromaVector(flat).Entropy, 1e-9)

	single := make([]float64, NumPitchClasses)
	single[5] = 1
	assert.InDelta(t, 0.0, NewChromaVector(single).Entropy, 1e-9)
}
