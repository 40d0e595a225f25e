package chroma

import (
	"gonum.org/v1/gonum/floats"

	"github.com/RyanBlaney/sonido-harmony/algorithms/common"
	"github.com/RyanBlaney/sonido-harmony/algorithms/stats"
)

// Chord-tone weights used when folding symbolic chords into a chroma vector.
// The root is weighted above the other chord tones so that two chords
// sharing notes still pull toward their own roots
const (
	RootWeight      = 2.0
	ChordToneWeight = 1.0
	BassWeight      = 0.5
)

// ChromaVector is a 12-bin pitch-class distribution
type ChromaVector struct {
	Values     []float64 `json:"values"`     // Chroma values (12 elements)
	Size       int       `json:"size"`       // Vector size
	Normalized bool      `json:"normalized"` // Whether vector is energy normalized
	Energy     float64   `json:"energy"`     // Sum of all bins
	Entropy    float64   `json:"entropy"`    // Normalized entropy of the distribution (0-1)
}

// PitchSet is the set of pitch classes sounding in one chord, root first.
// Bass is the slash-chord bass, or -1
type PitchSet struct {
	Tones []PitchClass
	Bass  PitchClass
}

// NewChromaVector wraps values in a ChromaVector with derived measures
func NewChromaVector(values []float64) ChromaVector {
	cv := ChromaVector{
		Values: make([]float64, len(values)),
		Size:   len(values),
	}
	copy(cv.Values, values)
	cv.Energy = floats.Sum(cv.Values)
	cv.Entropy = stats.NormalizedEntropy(cv.Values)
	return cv
}

// FromPitchSets accumulates chord tones into a chroma vector
func FromPitchSets(sets []PitchSet) ChromaVector {
	values := make([]float64, NumPitchClasses)

	for _, set := range sets {
		for i, tone := range set.Tones {
			if i == 0 {
				values[Wrap(int(tone))] += RootWeight
			} else {
				values[Wrap(int(tone))] += ChordToneWeight
			}
		}
		if set.Bass >= 0 {
			values[Wrap(int(set.Bass))] += BassWeight
		}
	}

	return NewChromaVector(values)
}

// Normalize returns an energy (L2) normalized copy
func (cv ChromaVector) Normalize() ChromaVector {
	normalized := NewChromaVector(common.EnergyNormalize(cv.Values))
	normalized.Normalized = true
	return normalized
}

// Rotate shifts the vector so that bin i moves to bin i+semitones
func (cv ChromaVector) Rotate(semitones int) ChromaVector {
	rotated := NewChromaVector(stats.Rotate(cv.Values, semitones))
	rotated.Normalized = cv.Normalized
	return rotated
}

// Dominant returns the strongest pitch class and its value
func (cv ChromaVector) Dominant() (PitchClass, float64) {
	if len(cv.Values) == 0 {
		return 0, 0
	}
	idx := floats.MaxIdx(cv.Values)
	return PitchClass(idx), cv.Values[idx]
}

// IsSilent reports whether no pitch class carries any weight
func (cv ChromaVector) IsSilent() bool {
	return cv.Energy == 0
}
