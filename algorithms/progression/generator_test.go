package progression

import (
	"bytes"
	"testing"

	"github.com/RyanBlaney/sonido-harmony/algorithms/tonal"
	"github.com/RyanBlaney/sonido-harmony/logging"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedSource always picks the same template index
type fixedSource int

func (f fixedSource) IntN(n int) int {
	return int(f) % n
}

func newTestGenerator(source RandomSource) *Generator {
	return NewGenerator(source, "", &logging.NoOpLogger{})
}

func TestGenerate_ExactLength(t *testing.T) {
	gen := newTestGenerator(NewSeededSource(7))

	for _, key := range tonal.AllKeys() {
		for _, genre := range GenreNames() {
			for _, length := range []int{1, 3, 4, 8, 13, 20} {
				p, err := gen.Generate(key, genre, length)
				require.NoError(t, err)
				assert.Len(t, p.Numerals, length, "%s %s %d", key, genre, length)
				assert.Len(t, p.Chords, length, "%s %s %d", key, genre, length)
			}
		}
	}
}

func TestGenerate_InvalidLength(t *testing.T) {
	gen := newTestGenerator(fixedSource(0))

	for _, length := range []int{0, -3} {
		_, err := gen.Generate(tonal.MustParseKey("C"), "pop", length)
		assert.ErrorIs(t, err, ErrInvalidLength)
	}
	assert.Zero(t, gen.Generated())
}

func TestGenerate_ExtendsWithTransitions(t *testing.T) {
	gen := newTestGenerator(fixedSource(0))

	tests := []struct {
		name     string
		key      string
		genre    string
		length   int
		numerals []string
		chords   []string
		emotion  Emotion
	}{
		{
			name:     "pop template extended",
			key:      "C",
			genre:    "pop",
			length:   6,
			numerals: []string{"I", "V", "vi", "IV", "V", "I"},
			chords:   []string{"C", "G", "Am", "F", "G", "C"},
			emotion:  EmotionResolved,
		},
		{
			name:     "pop template truncated",
			key:      "G",
			genre:    "pop",
			length:   2,
			numerals: []string{"I", "V"},
			chords:   []string{"G", "D"},
			emotion:  EmotionResolved,
		},
		{
			name:     "minor template extended",
			key:      "Am",
			genre:    "pop",
			length:   5,
			numerals: []string{"i", "VI", "III", "VII", "III"},
			chords:   []string{"Am", "F", "C", "G", "C"},
			emotion:  EmotionMysterious,
		},
		{
			name:     "twelve bar blues",
			key:      "A",
			genre:    "blues",
			length:   12,
			numerals: []string{"I7", "I7", "I7", "I7", "IV7", "IV7", "I7", "I7", "V7", "IV7", "I7", "V7"},
			chords:   []string{"A7", "A7", "A7", "A7", "D7", "D7", "A7", "A7", "E7", "D7", "A7", "E7"},
			emotion:  EmotionResolved,
		},
		{
			name:     "borrowed degrees",
			key:      "E",
			genre:    "metal",
			length:   4,
			numerals: []string{"I", "bVI", "bVII", "I"},
			chords:   []string{"E", "C", "D", "E"},
			emotion:  EmotionPowerful,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := gen.Generate(tonal.MustParseKey(tt.key), tt.genre, tt.length)
			require.NoError(t, err)
			assert.Equal(t, tt.numerals, p.Numerals)
			assert.Equal(t, tt.chords, p.Chords)
			assert.Equal(t, tt.emotion, p.Emotion)
			assert.Equal(t, tt.genre, p.Genre)
		})
	}
}

func TestGenerate_SeededReproducibility(t *testing.T) {
	first := newTestGenerator(NewSeededSource(42))
	second := newTestGenerator(NewSeededSource(42))
	key := tonal.MustParseKey("D")

	for i := 0; i < 10; i++ {
		a, err := first.Generate(key, "jazz", 8)
		require.NoError(t, err)
		b, err := second.Generate(key, "jazz", 8)
		require.NoError(t, err)

		assert.Equal(t, a.Numerals, b.Numerals)
		assert.Equal(t, a.Chords, b.Chords)
		assert.NotEqual(t, a.ID, b.ID)
	}
}

func TestSeededSource_Reset(t *testing.T) {
	source := NewSeededSource(99)
	var before []int
	for i := 0; i < 20; i++ {
		before = append(before, source.IntN(5))
	}

	source.Reset()
	var after []int
	for i := 0; i < 20; i++ {
		after = append(after, source.IntN(5))
	}

	assert.Equal(t, before, after)
	assert.Equal(t, uint64(99), source.Seed())
}

func TestGenerate_Traceability(t *testing.T) {
	gen := newTestGenerator(fixedSource(1))
	key := tonal.MustParseKey("F")

	for i := 1; i <= 3; i++ {
		p, err := gen.Generate(key, "folk", 4)
		require.NoError(t, err)
		assert.Equal(t, uint64(i), p.Sequence)
		_, err = uuid.Parse(p.ID)
		assert.NoError(t, err)
		assert.Equal(t, "F major", p.KeyName)
	}
	assert.Equal(t, uint64(3), gen.Generated())
}

func TestGenerate_UnknownGenreFallsBack(t *testing.T) {
	var out bytes.Buffer
	logger := logging.NewWriterLogger(&out, &out, logging.InfoLevel)
	gen := NewGenerator(fixedSource(0), "", logger)

	p, err := gen.Generate(tonal.MustParseKey("C"), "polka", 4)
	require.NoError(t, err)
	assert.Equal(t, "pop", p.Genre)
	assert.Equal(t, []string{"I", "V", "vi", "IV"}, p.Numerals)
	assert.Contains(t, out.String(), "[WARN] Unknown genre, using default")
	assert.Contains(t, out.String(), "genre=polka")
}

func TestGenerate_DefaultGenre(t *testing.T) {
	gen := NewGenerator(fixedSource(0), "blues", &logging.NoOpLogger{})

	p, err := gen.Generate(tonal.MustParseKey("C"), "", 4)
	require.NoError(t, err)
	assert.Equal(t, "blues", p.Genre)

	fallback := NewGenerator(fixedSource(0), "polka", &logging.NoOpLogger{})
	p, err = fallback.Generate(tonal.MustParseKey("C"), "", 4)
	require.NoError(t, err)
	assert.Equal(t, DefaultGenre, p.Genre)
}

func TestGenerate_PadsWithLastNumeral(t *testing.T) {
	// #iv° has no transitions and the genre has no favorites to fall back on
	drone := Genre{
		MajorTemplates: [][]string{{"I", "#iv°"}},
		MinorTemplates: [][]string{{"i", "#iv°"}},
	}
	gen := NewGenerator(fixedSource(0), "", &logging.NoOpLogger{}, WithGenres(map[string]Genre{"Drone": drone}))

	p, err := gen.Generate(tonal.MustParseKey("C"), "drone", 6)
	require.NoError(t, err)
	assert.Equal(t, "drone", p.Genre)
	assert.Equal(t, []string{"I", "#iv°", "#iv°", "#iv°", "#iv°", "#iv°"}, p.Numerals)
	assert.Equal(t, []string{"C", "F#dim", "F#dim", "F#dim", "F#dim", "F#dim"}, p.Chords)

	p, err = gen.Generate(tonal.MustParseKey("Am"), "drone", 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"i", "#iv°", "#iv°"}, p.Numerals)
}

func TestWithGenres(t *testing.T) {
	sparse := Genre{MajorTemplates: [][]string{{"I", "IV"}}}
	gen := NewGenerator(fixedSource(0), "sparse", &logging.NoOpLogger{}, WithGenres(map[string]Genre{"sparse": sparse}))

	p, err := gen.Generate(tonal.MustParseKey("C"), "", 2)
	require.NoError(t, err)
	assert.Equal(t, "sparse", p.Genre)
	assert.Equal(t, []string{"I", "IV"}, p.Numerals)

	// No minor templates: the progression starts on the tonic
	p, err = gen.Generate(tonal.MustParseKey("Am"), "sparse", 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"i", "iv", "V"}, p.Numerals)

	// Built-in genres stay available and the package registry is untouched
	p, err = gen.Generate(tonal.MustParseKey("C"), "pop", 4)
	require.NoError(t, err)
	assert.Equal(t, []string{"I", "V", "vi", "IV"}, p.Numerals)
	_, ok := LookupGenre("sparse")
	assert.False(t, ok)
}

func TestSuggest(t *testing.T) {
	gen := newTestGenerator(fixedSource(0))

	assert.Equal(t, []string{"C", "G", "Am", "F"}, gen.Suggest(tonal.MustParseKey("C"), "pop"))
	assert.Equal(t, []string{"Am", "F", "C", "G", "Dm"}, gen.Suggest(tonal.MustParseKey("Am"), "pop"))
	assert.Equal(t, gen.Suggest(tonal.MustParseKey("C"), "pop"), gen.Suggest(tonal.MustParseKey("C"), "unknown"))
}

func TestLogicalNext(t *testing.T) {
	tests := []struct {
		numeral  string
		mode     tonal.KeyMode
		expected []string
	}{
		{"I", tonal.KeyModeMajor, []string{"V", "vi", "IV", "ii", "iii"}},
		{"V7", tonal.KeyModeMajor, []string{"I", "vi", "IV"}},
		{"V", tonal.KeyModeMinor, []string{"i", "VI", "iv"}},
		{"v", tonal.KeyModeMinor, []string{"i", "VI", "iv"}},
		{"i", tonal.KeyModeMinor, []string{"iv", "v", "VI", "VII", "III"}},
		{"bVII", tonal.KeyModeMajor, []string{"IV", "I"}},
		{"#iv°", tonal.KeyModeMajor, []string{}},
		{"nonsense", tonal.KeyModeMajor, nil},
	}

	for _, tt := range tests {
		t.Run(tt.numeral+" "+tt.mode.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, LogicalNext(tt.numeral, tt.mode))
		})
	}
}

func TestLogicalNext_ReturnsCopy(t *testing.T) {
	next := LogicalNext("I", tonal.KeyModeMajor)
	next[0] = "changed"
	assert.Equal(t, "V", LogicalNext("I", tonal.KeyModeMajor)[0])
}

func TestSuggestions_Deduplicated(t *testing.T) {
	got := suggestions("IV", tonal.KeyModeMajor, []string{"IV", "V", "vi"})
	assert.Equal(t, []string{"V", "I", "ii", "vii°", "IV"}, got)
}
