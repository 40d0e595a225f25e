package chords

import (
	"fmt"
	"strings"

	"github.com/RyanBlaney/sonido-harmony/algorithms/chroma"
)

// Chord is a parsed or synthesized chord symbol
type Chord struct {
	Root       chroma.PitchClass `json:"root"`                 // Root pitch class
	Quality    Quality           `json:"quality"`              // Chord quality
	Extensions []string          `json:"extensions,omitempty"` // Added tones / alterations as written ("9", "add9", "b13")
	Bass       chroma.PitchClass `json:"bass"`                 // Slash-chord bass, valid when HasBass
	HasBass    bool              `json:"has_bass"`
	Symbol     string            `json:"symbol"` // Symbol as written or rendered
}

// qualityToken maps a written suffix prefix to a quality. A non-empty
// extension is recorded ahead of anything written after the token ("m9" is a
// minor seventh with a ninth)
type qualityToken struct {
	token     string
	quality   Quality
	extension string
}

// Longest and most specific tokens first; matching is case-sensitive so
// "M7" (major seventh) and "m7" (minor seventh) stay distinct
var qualityTokens = []qualityToken{
	{"m7b5", HalfDiminished7, ""},
	{"m7(b5)", HalfDiminished7, ""},
	{"min7b5", HalfDiminished7, ""},
	{"ø7", HalfDiminished7, ""},
	{"ø", HalfDiminished7, ""},
	{"m(maj7)", MinorMajor7, ""},
	{"mMaj7", MinorMajor7, ""},
	{"mmaj7", MinorMajor7, ""},
	{"minMaj7", MinorMajor7, ""},
	{"mM7", MinorMajor7, ""},
	{"dim7", Diminished7, ""},
	{"°7", Diminished7, ""},
	{"o7", Diminished7, ""},
	{"maj7", Major7, ""},
	{"Maj7", Major7, ""},
	{"M7", Major7, ""},
	{"Δ7", Major7, ""},
	{"^7", Major7, ""},
	{"Δ", Major7, ""},
	{"min7", Minor7, ""},
	{"m7", Minor7, ""},
	{"-7", Minor7, ""},
	{"m13", Minor7, "13"},
	{"m11", Minor7, "11"},
	{"m9", Minor7, "9"},
	{"min9", Minor7, "9"},
	{"maj13", Major7, "13"},
	{"maj9", Major7, "9"},
	{"Maj9", Major7, "9"},
	{"M9", Major7, "9"},
	{"dim", Diminished, ""},
	{"°", Diminished, ""},
	{"o", Diminished, ""},
	{"aug7", Augmented7, ""},
	{"+7", Augmented7, ""},
	{"aug", Augmented, ""},
	{"+", Augmented, ""},
	{"sus2", Sus2, ""},
	{"sus4", Sus4, ""},
	{"sus", Sus4, ""},
	{"maj", Major, ""},
	{"M", Major, ""},
	{"min", Minor, ""},
	{"m", Minor, ""},
	{"-", Minor, ""},
	{"13", Dominant7, "13"},
	{"11", Dominant7, "11"},
	{"9", Dominant7, "9"},
	{"7", Dominant7, ""},
	{"5", Power, ""},
}

// Parse parses a chord symbol such as "C", "Am7", "F#°", "Bbmaj7" or "Em/G"
func Parse(symbol string) (Chord, error) {
	written := strings.TrimSpace(symbol)
	if written == "" {
		return Chord{}, fmt.Errorf("empty chord symbol")
	}

	body := written
	chord := Chord{Symbol: written}

	// Parse bass note if present (e.g., "Em/G" -> chord="Em", bass="G")
	if idx := strings.LastIndex(written, "/"); idx > 0 {
		bass, err := chroma.ParsePitchClass(written[idx+1:])
		if err == nil {
			chord.Bass = bass
			chord.HasBass = true
			body = written[:idx]
		}
	}

	root, suffix, err := chroma.ParseLeadingPitchClass(body)
	if err != nil {
		return Chord{}, fmt.Errorf("invalid chord root in %q: %w", symbol, err)
	}
	chord.Root = root

	chord.Quality, chord.Extensions = parseSuffix(suffix)
	return chord, nil
}

// MustParse is Parse for literals known to be valid
func MustParse(symbol string) Chord {
	chord, err := Parse(symbol)
	if err != nil {
		panic(err)
	}
	return chord
}

func parseSuffix(suffix string) (Quality, []string) {
	suffix = strings.TrimSpace(suffix)
	if suffix == "" {
		return Major, nil
	}

	quality := Unknown
	rest := suffix
	for _, t := range qualityTokens {
		if strings.HasPrefix(suffix, t.token) {
			quality = t.quality
			rest = suffix[len(t.token):]
			if t.extension != "" {
				rest = t.extension + rest
			}
			break
		}
	}

	// Bare additions such as "6", "add9" or "(add9)" keep a major triad
	if quality == Unknown && startsWithAddition(suffix) {
		quality = Major
	}

	return quality, parseExtensions(rest)
}

func startsWithAddition(suffix string) bool {
	trimmed := strings.TrimLeft(suffix, "(")
	return strings.HasPrefix(trimmed, "add") || strings.HasPrefix(trimmed, "6") || strings.HasPrefix(trimmed, "2")
}

func parseExtensions(rest string) []string {
	cleaned := strings.NewReplacer("(", ",", ")", ",", " ", ",").Replace(rest)
	var extensions []string
	for _, part := range strings.Split(cleaned, ",") {
		if part = strings.TrimSpace(part); part != "" {
			extensions = append(extensions, part)
		}
	}
	return extensions
}

// New synthesizes a chord from a root and quality, spelling the root as asked
func New(root chroma.PitchClass, quality Quality, spelling chroma.Spelling) Chord {
	return Chord{
		Root:    root,
		Quality: quality,
		Symbol:  root.Name(spelling) + quality.Suffix(),
	}
}

// String returns the chord symbol
func (c Chord) String() string {
	if c.Symbol != "" {
		return c.Symbol
	}
	return c.Root.String() + c.Quality.Suffix()
}

// Family is shorthand for c.Quality.Family()
func (c Chord) Family() Family {
	return c.Quality.Family()
}

// Tones returns the chord's pitch classes, root first
func (c Chord) Tones() []chroma.PitchClass {
	intervals := c.Quality.Intervals()
	tones := make([]chroma.PitchClass, len(intervals))
	for i, interval := range intervals {
		tones[i] = c.Root.Transpose(interval)
	}
	return tones
}

// PitchSet folds the chord into the form used for chroma accumulation
func (c Chord) PitchSet() chroma.PitchSet {
	set := chroma.PitchSet{Tones: c.Tones(), Bass: -1}
	if c.HasBass {
		set.Bass = c.Bass
	}
	return set
}

// RootHasAccidental reports whether the root was written with a sharp or flat
func (c Chord) RootHasAccidental() bool {
	return chroma.HasAccidental(c.Symbol)
}

// ParseAll parses every symbol, dropping the ones with a non-chromatic root.
// The second return value lists the rejected symbols
func ParseAll(symbols []string) ([]Chord, []string) {
	parsed := make([]Chord, 0, len(symbols))
	var rejected []string
	for _, symbol := range symbols {
		chord, err := Parse(symbol)
		if err != nil {
			rejected = append(rejected, symbol)
			continue
		}
		parsed = append(parsed, chord)
	}
	return parsed, rejected
}
