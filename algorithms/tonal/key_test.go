package tonal

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyanBlaney/sonido-harmony/algorithms/chroma"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		input     string
		tonic     chroma.PitchClass
		mode      KeyMode
		signature int
		symbol    string
	}{
		{"C", 0, KeyModeMajor, 0, "C"},
		{"Am", 9, KeyModeMinor, 0, "Am"},
		{"G", 7, KeyModeMajor, 1, "G"},
		{"F", 5, KeyModeMajor, -1, "F"},
		{"Em", 4, KeyModeMinor, 1, "Em"},
		{"Dm", 2, KeyModeMinor, -1, "Dm"},
		{"F#", 6, KeyModeMajor, 6, "F#"},
		{"Gb", 6, KeyModeMajor, 6, "Gb"},
		{"Db", 1, KeyModeMajor, -5, "Db"},
		{"Bbm", 10, KeyModeMinor, -5, "Bbm"},
		{"A minor", 9, KeyModeMinor, 0, "Am"},
		{"Bb major", 10, KeyModeMajor, -2, "Bb"},
		{"Ebmaj", 3, KeyModeMajor, -3, "Eb"},
		{"C#min", 1, KeyModeMinor, 4, "C#m"},
		{" e minor ", 4, KeyModeMinor, 1, "Em"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			key, err := ParseKey(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.tonic, key.Tonic)
			assert.Equal(t, tt.mode, key.Mode)
			assert.Equal(t, tt.signature, key.Signature())
			assert.Equal(t, tt.symbol, key.Symbol())
		})
	}
}

func TestParseKey_Errors(t *testing.T) {
	_, err := ParseKey("H")
	var invalid *chroma.InvalidTonicError
	assert.True(t, errors.As(err, &invalid))

	_, err = ParseKey("C dorian")
	assert.Error(t, err)

	_, err = ParseKey("")
	assert.Error(t, err)
}

func TestKey_Spelling(t *testing.T) {
	assert.Equal(t, []string{"F", "G", "A", "Bb", "C", "D", "E"}, MustParseKey("F").Scale().Notes)
	assert.Equal(t, []string{"E", "F#", "G", "A", "B", "C", "D"}, MustParseKey("Em").Scale().Notes)
	assert.Equal(t, []string{"D", "E", "F", "G", "A", "Bb", "C"}, MustParseKey("Dm").Scale().Notes)
	assert.Equal(t, "C# minor", MustParseKey("C#m").String())
	assert.Equal(t, "Db major", MustParseKey("Db").String())
}

func TestKey_Related(t *testing.T) {
	c := MustParseKey("C")

	assert.Equal(t, "Am", c.Relative().Symbol())
	assert.Equal(t, "C", c.Relative().Relative().Symbol())
	assert.Equal(t, "Cm", c.Parallel().Symbol())
	assert.Equal(t, "G", c.Dominant().Symbol())
	assert.Equal(t, "F", c.Subdominant().Symbol())

	assert.True(t, c.IsCompatible(MustParseKey("Am")))
	assert.True(t, c.IsCompatible(MustParseKey("G")))
	assert.True(t, c.IsCompatible(MustParseKey("Cm")))
	assert.False(t, c.IsCompatible(MustParseKey("F#")))
}

func TestAllKeys(t *testing.T) {
	keys := AllKeys()
	require.Len(t, keys, 24)
	assert.Equal(t, "C major", keys[0].String())
	assert.Equal(t, "C minor", keys[12].String())
	assert.Equal(t, "Bb major", keys[10].String())
}
