package tonal

import (
	"fmt"
	"strings"

	"github.com/RyanBlaney/sonido-harmony/algorithms/chords"
	"github.com/RyanBlaney/sonido-harmony/algorithms/chroma"
	"github.com/RyanBlaney/sonido-harmony/algorithms/scales"
)

// KeyMode represents major or minor mode
type KeyMode int

const (
	KeyModeMajor KeyMode = iota
	KeyModeMinor
)

func (m KeyMode) String() string {
	if m == KeyModeMinor {
		return "minor"
	}
	return "major"
}

// Pattern returns the scale pattern of the mode (natural minor for minor keys)
func (m KeyMode) Pattern() scales.Pattern {
	if m == KeyModeMinor {
		return minorPattern
	}
	return majorPattern
}

var (
	majorPattern = scales.MustLookup("major")
	minorPattern = scales.MustLookup("minor")
)

// Key is a tonic and a mode. The signature is always derived, never stored
type Key struct {
	Tonic    chroma.PitchClass `json:"tonic"`
	Mode     KeyMode           `json:"mode"`
	Spelling chroma.Spelling   `json:"spelling"`
}

// NewKey builds a key spelled after its signature
func NewKey(tonic chroma.PitchClass, mode KeyMode) Key {
	k := Key{Tonic: chroma.Wrap(int(tonic)), Mode: mode}
	if k.Signature() < 0 {
		k.Spelling = chroma.SpellFlats
	}
	return k
}

// ParseKey parses "C", "Am", "F#m", "Bb major", "A minor", "Amin" or "Ebmaj".
// An accidental written in the tonic decides the spelling
func ParseKey(s string) (Key, error) {
	written := strings.TrimSpace(s)
	tonic, rest, err := chroma.ParseLeadingPitchClass(written)
	if err != nil {
		return Key{}, fmt.Errorf("invalid key %q: %w", s, err)
	}

	mode, ok := parseMode(rest)
	if !ok {
		return Key{}, fmt.Errorf("invalid key %q: unrecognized mode %q", s, strings.TrimSpace(rest))
	}

	k := Key{Tonic: tonic, Mode: mode}
	k.Spelling = chroma.SpellingFor(written, k.Signature())
	return k, nil
}

// MustParseKey is ParseKey for literals known to be valid
func MustParseKey(s string) Key {
	k, err := ParseKey(s)
	if err != nil {
		panic(err)
	}
	return k
}

func parseMode(suffix string) (KeyMode, bool) {
	trimmed := strings.TrimSpace(suffix)
	switch trimmed {
	case "", "M":
		return KeyModeMajor, true
	case "m", "-":
		return KeyModeMinor, true
	}

	switch strings.ToLower(trimmed) {
	case "maj", "major", "ionian":
		return KeyModeMajor, true
	case "min", "minor", "aeolian":
		return KeyModeMinor, true
	}
	return KeyModeMajor, false
}

// Signature is the number of sharps (positive) or flats (negative). Minor keys
// share the signature of their relative major
func (k Key) Signature() int {
	if k.Mode == KeyModeMinor {
		return chroma.CircleOfFifthsPosition(k.Tonic.Transpose(3))
	}
	return chroma.CircleOfFifthsPosition(k.Tonic)
}

// TonicName spells the tonic in the key's spelling
func (k Key) TonicName() string {
	return k.Tonic.Name(k.Spelling)
}

// String returns the human-readable name (e.g. "C major")
func (k Key) String() string {
	return k.TonicName() + " " + k.Mode.String()
}

// Symbol returns the compact "<Tonic>[m]" form
func (k Key) Symbol() string {
	if k.Mode == KeyModeMinor {
		return k.TonicName() + "m"
	}
	return k.TonicName()
}

// Scale builds the key's major or natural minor scale
func (k Key) Scale() scales.Scale {
	return scales.Build(k.Tonic, k.Mode.Pattern(), k.Spelling)
}

// PitchClasses returns the seven scale pitch classes without building the
// diatonic chords
func (k Key) PitchClasses() []chroma.PitchClass {
	return scales.PitchClasses(k.Tonic, k.Mode.Pattern().Intervals)
}

// TonicChord is the major or minor triad on the tonic
func (k Key) TonicChord() chords.Chord {
	quality := chords.Major
	if k.Mode == KeyModeMinor {
		quality = chords.Minor
	}
	return chords.New(k.Tonic, quality, k.Spelling)
}

// Relative returns the relative major/minor key
func (k Key) Relative() Key {
	if k.Mode == KeyModeMajor {
		// Relative minor is 3 semitones down
		return Key{Tonic: k.Tonic.Transpose(-3), Mode: KeyModeMinor, Spelling: k.Spelling}
	}
	// Relative major is 3 semitones up
	return Key{Tonic: k.Tonic.Transpose(3), Mode: KeyModeMajor, Spelling: k.Spelling}
}

// Parallel returns the parallel major/minor key
func (k Key) Parallel() Key {
	if k.Mode == KeyModeMajor {
		return NewKey(k.Tonic, KeyModeMinor)
	}
	return NewKey(k.Tonic, KeyModeMajor)
}

// Dominant returns the key a fifth above in the same mode
func (k Key) Dominant() Key {
	return NewKey(k.Tonic.Transpose(7), k.Mode)
}

// Subdominant returns the key a fifth below in the same mode
func (k Key) Subdominant() Key {
	return NewKey(k.Tonic.Transpose(-7), k.Mode)
}

// Equal compares tonic and mode, ignoring spelling
func (k Key) Equal(other Key) bool {
	return k.Tonic == other.Tonic && k.Mode == other.Mode
}

// IsCompatible checks if two keys are the same, relative, parallel, or a
// fifth apart
func (k Key) IsCompatible(other Key) bool {
	for _, related := range []Key{k, k.Relative(), k.Parallel(), k.Dominant(), k.Subdominant()} {
		if related.Equal(other) {
			return true
		}
	}
	return false
}

// AllKeys lists the 24 major and minor keys, majors first, in chromatic order
func AllKeys() []Key {
	keys := make([]Key, 0, 2*chroma.NumPitchClasses)
	for _, mode := range []KeyMode{KeyModeMajor, KeyModeMinor} {
		for _, pc := range chroma.AllPitchClasses() {
			keys = append(keys, NewKey(pc, mode))
		}
	}
	return keys
}
