package tonal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectCadences(t *testing.T) {
	tests := []struct {
		name     string
		numerals []string
		expected []string
	}{
		{"authentic", []string{"V", "I"}, []string{"Authentic Cadence"}},
		{"plagal", []string{"IV", "I"}, []string{"Plagal Cadence"}},
		{"half cadence is not detected", []string{"ii", "V"}, []string{}},
		{"minor authentic", []string{"v", "i"}, []string{"Authentic Cadence"}},
		{"major dominant in minor", []string{"V7", "i"}, []string{"Authentic Cadence"}},
		{"minor plagal", []string{"iv", "i"}, []string{"Plagal Cadence"}},
		{"markers ignored", []string{"V7", "Imaj7"}, []string{"Authentic Cadence"}},
		{"deceptive is not detected", []string{"V", "vi"}, []string{}},
		{"several", []string{"I", "IV", "I", "V", "I"}, []string{"Plagal Cadence", "Authentic Cadence"}},
		{"unparseable skipped", []string{"V", "?", "I"}, []string{}},
		{"empty", nil, []string{}},
		{"single", []string{"I"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CadenceNames(DetectCadences(tt.numerals)))
		})
	}
}

func TestDetectCadences_Positions(t *testing.T) {
	cadences := DetectCadences([]string{"I", "IV", "V7", "I"})
	require.Len(t, cadences, 1)
	assert.Equal(t, CadenceAuthentic, cadences[0].Type)
	assert.Equal(t, 2, cadences[0].Position)
	assert.Equal(t, "V7", cadences[0].From)
	assert.Equal(t, "I", cadences[0].To)
}

func TestDetectModulations(t *testing.T) {
	symbols := []string{"C", "Bb", "F", "F#m", "C#7", "Em", "Eb"}

	coarse := DetectModulations(symbols, 1)
	assert.Equal(t, []string{
		"potential modulation at position 1",
		"potential modulation at position 3",
		"potential modulation at position 4",
		"potential modulation at position 6",
	}, ModulationDescriptions(coarse))
	assert.Equal(t, "Bb", coarse[0].Chord)

	runs := DetectModulations(symbols, 2)
	assert.Equal(t, []string{"potential modulation at position 3"}, ModulationDescriptions(runs))

	assert.Len(t, DetectModulations(symbols, 3), 0)
	assert.Equal(t, coarse, DetectModulations(symbols, 0))
	assert.Empty(t, DetectModulations([]string{"C", "Am", "F", "G"}, 1))
}

func TestFunctionOf(t *testing.T) {
	tests := map[string]string{
		"I":     "Tonic",
		"vi":    "Tonic",
		"i":     "Tonic",
		"ii":    "Subdominant",
		"IV":    "Subdominant",
		"iv":    "Subdominant",
		"V":     "Dominant",
		"V7":    "Dominant",
		"vii°":  "Dominant",
		"iii":   "Other",
		"III":   "Other",
		"bVII":  "Other",
		"nope":  "Other",
		"viiø7": "Dominant",
	}

	for numeral, expected := range tests {
		assert.Equal(t, expected, FunctionOf(numeral).String(), numeral)
	}

	assert.Equal(t, []string{"Tonic", "Tonic", "Subdominant", "Dominant"}, FunctionLabels([]string{"I", "vi", "IV", "V"}))
}
