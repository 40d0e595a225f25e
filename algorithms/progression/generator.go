package progression

import (
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/RyanBlaney/sonido-harmony/algorithms/tonal"
	"github.com/RyanBlaney/sonido-harmony/logging"
	"github.com/google/uuid"
)

// ErrInvalidLength is returned when a progression of fewer than one chord is
// requested
var ErrInvalidLength = errors.New("progression length must be at least 1")

// ChordProgression is a generated sequence of numerals and the chords they
// map to in Key
type ChordProgression struct {
	ID          string    `json:"id"`
	Sequence    uint64    `json:"sequence"`
	GeneratedAt time.Time `json:"generated_at"`

	Key      tonal.Key `json:"-"`
	KeyName  string    `json:"key"`
	Genre    string    `json:"genre"`
	Numerals []string  `json:"numerals"`
	Chords   []string  `json:"chords"`
	Emotion  Emotion   `json:"emotion"`
}

// Len returns the number of chords in the progression
func (p ChordProgression) Len() int {
	return len(p.Chords)
}

// Generator draws genre templates and extends them with the transition table
type Generator struct {
	source       RandomSource
	genres       map[string]Genre
	defaultGenre string
	logger       logging.Logger
	sequence     atomic.Uint64
}

// GeneratorOption configures a Generator
type GeneratorOption func(*Generator)

// WithGenres registers extra genres, replacing built-in genres of the same
// name. A genre without a Name takes its map key
func WithGenres(extra map[string]Genre) GeneratorOption {
	return func(g *Generator) {
		for name, genre := range extra {
			name = strings.ToLower(strings.TrimSpace(name))
			if genre.Name == "" {
				genre.Name = name
			}
			g.genres[name] = genre
		}
	}
}

// NewGenerator creates a generator. A nil source draws from the process
// random generator, an unknown defaultGenre falls back to pop and a nil
// logger uses the global one
func NewGenerator(source RandomSource, defaultGenre string, logger logging.Logger, opts ...GeneratorOption) *Generator {
	if source == nil {
		source = NewLiveSource()
	}

	g := &Generator{
		source: source,
		genres: make(map[string]Genre, len(genres)),
		logger: logging.OrGlobal(logger).WithFields(logging.Fields{
			"component": "progression_generator",
		}),
	}
	for name, genre := range genres {
		g.genres[name] = genre
	}
	for _, opt := range opts {
		opt(g)
	}

	if _, ok := g.lookup(defaultGenre); ok {
		g.defaultGenre = strings.ToLower(strings.TrimSpace(defaultGenre))
	} else {
		g.defaultGenre = DefaultGenre
	}
	return g
}

// Generate builds a progression of exactly length chords in key
func (g *Generator) Generate(key tonal.Key, genreName string, length int) (ChordProgression, error) {
	if length < 1 {
		return ChordProgression{}, fmt.Errorf("generate %d chords: %w", length, ErrInvalidLength)
	}

	genre := g.resolveGenre(genreName)
	var template []string
	if templates := genre.Templates(key.Mode); len(templates) > 0 {
		template = templates[g.source.IntN(len(templates))]
	}
	if len(template) == 0 {
		template = []string{tonal.TonicNumeral(key)}
	}

	numerals := make([]string, 0, length)
	numerals = append(numerals, template[:min(length, len(template))]...)

	favorites := genre.Favorites(key.Mode)
	for len(numerals) < length {
		next := suggestions(numerals[len(numerals)-1], key.Mode, favorites)
		if len(next) == 0 {
			break
		}
		numerals = append(numerals, next[0])
	}
	for len(numerals) < length {
		numerals = append(numerals, numerals[len(numerals)-1])
	}

	chordSymbols := make([]string, len(numerals))
	for i, n := range numerals {
		chordSymbols[i] = tonal.NumeralToChord(n, key)
	}

	progression := ChordProgression{
		ID:          uuid.New().String(),
		Sequence:    g.sequence.Add(1),
		GeneratedAt: time.Now(),
		Key:         key,
		KeyName:     key.String(),
		Genre:       genre.Name,
		Numerals:    numerals,
		Chords:      chordSymbols,
		Emotion:     ClassifyEmotion(numerals),
	}

	g.logger.Debug("Generated progression", logging.Fields{
		"id":       progression.ID,
		"sequence": progression.Sequence,
		"key":      progression.KeyName,
		"genre":    progression.Genre,
		"length":   length,
		"emotion":  progression.Emotion.String(),
	})

	return progression, nil
}

// Suggest returns the distinct chords used by the genre's templates for the
// key's mode, in order of first appearance
func (g *Generator) Suggest(key tonal.Key, genreName string) []string {
	genre := g.resolveGenre(genreName)

	seen := make(map[string]bool)
	var out []string
	for _, template := range genre.Templates(key.Mode) {
		for _, n := range template {
			chord := tonal.NumeralToChord(n, key)
			if seen[chord] {
				continue
			}
			seen[chord] = true
			out = append(out, chord)
		}
	}
	return out
}

// Generated returns how many progressions this generator has produced
func (g *Generator) Generated() uint64 {
	return g.sequence.Load()
}

func (g *Generator) lookup(name string) (Genre, bool) {
	genre, ok := g.genres[strings.ToLower(strings.TrimSpace(name))]
	return genre, ok
}

func (g *Generator) resolveGenre(name string) Genre {
	if name == "" {
		genre, _ := g.lookup(g.defaultGenre)
		return genre
	}

	genre, ok := g.lookup(name)
	if !ok {
		g.logger.Warn("Unknown genre, using default", logging.Fields{
			"genre":   name,
			"default": g.defaultGenre,
		})
		genre, _ = g.lookup(g.defaultGenre)
	}
	return genre
}
