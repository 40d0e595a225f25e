package scales

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyanBlaney/sonido-harmony/algorithms/chroma"
)

var allTonics = []string{"C", "C#", "D", "Eb", "E", "F", "F#", "G", "Ab", "A", "Bb", "B"}

func TestByName_SevenDistinctNotesStartingOnTonic(t *testing.T) {
	for _, tonic := range allTonics {
		for _, name := range []string{"major", "minor"} {
			t.Run(tonic+" "+name, func(t *testing.T) {
				scale, err := ByName(tonic, name)
				require.NoError(t, err)

				require.Len(t, scale.Notes, 7)
				assert.Equal(t, tonic, scale.Notes[0])

				seen := map[chroma.PitchClass]bool{}
				for _, pc := range scale.PitchClasses {
					seen[pc] = true
				}
				assert.Len(t, seen, 7)
			})
		}
	}
}

func TestByName_Notes(t *testing.T) {
	tests := []struct {
		name      string
		tonic     string
		scaleName string
		expected  []string
	}{
		{"E minor", "E", "minor", []string{"E", "F#", "G", "A", "B", "C", "D"}},
		{"C major", "C", "major", []string{"C", "D", "E", "F", "G", "A", "B"}},
		{"F major spells with flats", "F", "major", []string{"F", "G", "A", "Bb", "C", "D", "E"}},
		{"D dorian", "D", "dorian", []string{"D", "E", "F", "G", "A", "B", "C"}},
		{"A harmonic minor", "A", "harmonic minor", []string{"A", "B", "C", "D", "E", "F", "G#"}},
		{"A minor pentatonic", "A", "minor_pentatonic", []string{"A", "C", "D", "E", "G"}},
		{"G mixolydian", "G", "Mixolydian", []string{"G", "A", "B", "C", "D", "E", "F"}},
		{"aeolian alias", "A", "aeolian", []string{"A", "B", "C", "D", "E", "F", "G"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scale, err := ByName(tt.tonic, tt.scaleName)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, scale.Notes)
		})
	}
}

func TestByName_DiatonicChords(t *testing.T) {
	scale, err := ByName("C", "major")
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "Dm", "Em", "F", "G", "Am", "Bdim"}, scale.ChordSymbols())

	minor, err := ByName("A", "minor")
	require.NoError(t, err)
	assert.Equal(t, []string{"Am", "Bdim", "C", "Dm", "Em", "F", "G"}, minor.ChordSymbols())

	harmonic, err := ByName("A", "harmonic_minor")
	require.NoError(t, err)
	assert.Equal(t, "Caug", harmonic.Chords[2].String())
	assert.Equal(t, "E", harmonic.Chords[4].String())
}

func TestByName_DiatonicSevenths(t *testing.T) {
	scale, err := ByName("C", "major")
	require.NoError(t, err)

	expected := []string{"Cmaj7", "Dm7", "Em7", "Fmaj7", "G7", "Am7", "Bm7b5"}
	for i, chord := range scale.Sevenths {
		assert.Equal(t, expected[i], chord.String())
	}
}

func TestByName_Modes(t *testing.T) {
	scale, err := ByName("C", "major")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"C Ionian", "D Dorian", "E Phrygian", "F Lydian", "G Mixolydian", "A Aeolian", "B Locrian",
	}, scale.Modes)

	pentatonic, err := ByName("C", "major_pentatonic")
	require.NoError(t, err)
	assert.Nil(t, pentatonic.Modes)
	assert.Nil(t, pentatonic.Chords)
}

func TestByName_Errors(t *testing.T) {
	_, err := ByName("C", "hyperlydian")
	var unknown *UnknownScaleError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "hyperlydian", unknown.Name)

	_, err = ByName("H", "major")
	var invalid *chroma.InvalidTonicError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "H", invalid.Tonic)
}

func TestByName_Idempotent(t *testing.T) {
	first, err := ByName("Bb", "dorian")
	require.NoError(t, err)
	second, err := ByName("Bb", "dorian")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDegree(t *testing.T) {
	scale, err := ByName("G", "major")
	require.NoError(t, err)

	assert.Equal(t, 1, scale.Degree(chroma.PitchClass(7)))
	assert.Equal(t, 7, scale.Degree(chroma.PitchClass(6)))
	assert.Equal(t, 0, scale.Degree(chroma.PitchClass(5)))
	assert.True(t, scale.Contains(chroma.PitchClass(0)))
}
