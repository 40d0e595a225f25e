package chroma

import (
	"fmt"
	"strings"
)

// PitchClass is one of the 12 chromatic steps (0=C, 1=C#, ..., 11=B)
type PitchClass int

// NumPitchClasses is the size of the chromatic index
const NumPitchClasses = 12

// Spelling selects how black-key pitch classes are named
type Spelling int

const (
	SpellSharps Spelling = iota
	SpellFlats
)

var (
	sharpNames = [NumPitchClasses]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
	flatNames  = [NumPitchClasses]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}

	letterOffsets = map[byte]int{
		'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
	}
)

// InvalidTonicError reports a note name outside the 12 chromatic pitch classes
type InvalidTonicError struct {
	Tonic string
}

func (e *InvalidTonicError) Error() string {
	return fmt.Sprintf("invalid tonic %q: not one of the 12 chromatic pitch classes", e.Tonic)
}

// Wrap reduces any integer to its pitch class
func Wrap(n int) PitchClass {
	return PitchClass(((n % NumPitchClasses) + NumPitchClasses) % NumPitchClasses)
}

// Transpose moves the pitch class by the given number of semitones
func (pc PitchClass) Transpose(semitones int) PitchClass {
	return Wrap(int(pc) + semitones)
}

// IntervalTo returns the ascending semitone distance from pc to other (0-11)
func (pc PitchClass) IntervalTo(other PitchClass) int {
	return int(Wrap(int(other) - int(pc)))
}

// Name returns the pitch class name in the requested spelling
func (pc PitchClass) Name(spelling Spelling) string {
	if spelling == SpellFlats {
		return flatNames[Wrap(int(pc))]
	}
	return sharpNames[Wrap(int(pc))]
}

// String uses sharp spelling
func (pc PitchClass) String() string {
	return pc.Name(SpellSharps)
}

// IsNatural reports whether the pitch class is a white key
func (pc PitchClass) IsNatural() bool {
	return !strings.ContainsAny(sharpNames[Wrap(int(pc))], "#")
}

// ParsePitchClass parses a note name such as "C", "f#", "Bb", "E♭" or "Cbb"
func ParsePitchClass(name string) (PitchClass, error) {
	pc, rest, err := ParseLeadingPitchClass(name)
	if err != nil {
		return 0, err
	}
	if rest != "" {
		return 0, &InvalidTonicError{Tonic: name}
	}
	return pc, nil
}

// ParseLeadingPitchClass parses the note name at the start of s and returns
// the unconsumed remainder (e.g. "F#m7" -> F#, "m7")
func ParseLeadingPitchClass(s string) (PitchClass, string, error) {
	pc, _, rest, ok := splitNote(s)
	if !ok {
		return 0, "", &InvalidTonicError{Tonic: s}
	}
	return pc, rest, nil
}

// splitNote separates a leading note name into its pitch class, the written
// accidental and the remainder
func splitNote(s string) (PitchClass, string, string, bool) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, "", "", false
	}

	letter := trimmed[0]
	if letter >= 'a' && letter <= 'g' {
		letter -= 'a' - 'A'
	}
	offset, ok := letterOffsets[letter]
	if !ok {
		return 0, "", "", false
	}

	rest := trimmed[1:]
	for {
		switch {
		case strings.HasPrefix(rest, "#"):
			offset++
			rest = rest[1:]
		case strings.HasPrefix(rest, "♯"):
			offset++
			rest = rest[len("♯"):]
		case strings.HasPrefix(rest, "b"):
			offset--
			rest = rest[1:]
		case strings.HasPrefix(rest, "♭"):
			offset--
			rest = rest[len("♭"):]
		default:
			accidental := trimmed[1 : len(trimmed)-len(rest)]
			return Wrap(offset), accidental, rest, true
		}
	}
}

// HasAccidental reports whether a note or chord name starts with a root
// carrying a sharp or flat sign
func HasAccidental(name string) bool {
	_, accidental, _, ok := splitNote(name)
	return ok && accidental != ""
}

// SpellingFor picks a spelling for a key: an explicit accidental in the
// written tonic wins, otherwise flat key signatures spell with flats
func SpellingFor(tonicName string, signature int) Spelling {
	if _, accidental, _, ok := splitNote(tonicName); ok {
		switch {
		case strings.ContainsAny(accidental, "#♯"):
			return SpellSharps
		case accidental != "":
			return SpellFlats
		}
	}
	if signature < 0 {
		return SpellFlats
	}
	return SpellSharps
}

// CircleOfFifthsPosition returns the number of sharps (positive) or flats
// (negative) of the major key on pc, in the range -5..+6
func CircleOfFifthsPosition(pc PitchClass) int {
	position := int(Wrap(int(pc) * 7))
	if position > 6 {
		position -= NumPitchClasses
	}
	return position
}

// AllPitchClasses returns the chromatic index in ascending order from C
func AllPitchClasses() []PitchClass {
	pcs := make([]PitchClass, NumPitchClasses)
	for i := range pcs {
		pcs[i] = PitchClass(i)
	}
	return pcs
}
