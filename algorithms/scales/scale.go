package scales

import (
	"fmt"

	"github.com/RyanBlaney/sonido-harmony/algorithms/chords"
	"github.com/RyanBlaney/sonido-harmony/algorithms/chroma"
)

// Scale is an immutable scale built from a tonic and a pattern
type Scale struct {
	Name         string              `json:"name"`
	Tonic        chroma.PitchClass   `json:"tonic"`
	TonicName    string              `json:"tonic_name"`
	Intervals    []int               `json:"intervals"`
	PitchClasses []chroma.PitchClass `json:"pitch_classes"`
	Notes        []string            `json:"notes"`
	Chords       []chords.Chord      `json:"chords,omitempty"`   // Diatonic triads, one per degree
	Sevenths     []chords.Chord      `json:"sevenths,omitempty"` // Diatonic seventh chords, one per degree
	Modes        []string            `json:"modes,omitempty"`    // "<note> <Mode>" for each degree of a church mode
}

// Build applies pattern to tonic. Each note is (tonic + offset) mod 12
func Build(tonic chroma.PitchClass, pattern Pattern, spelling chroma.Spelling) Scale {
	pcs := PitchClasses(tonic, pattern.Intervals)

	notes := make([]string, len(pcs))
	for i, pc := range pcs {
		notes[i] = pc.Name(spelling)
	}

	intervals := make([]int, len(pattern.Intervals))
	copy(intervals, pattern.Intervals)

	scale := Scale{
		Name:         pattern.Name,
		Tonic:        tonic,
		TonicName:    tonic.Name(spelling),
		Intervals:    intervals,
		PitchClasses: pcs,
		Notes:        notes,
	}

	if pattern.IsHeptatonic() {
		scale.Chords = DiatonicChords(pcs, spelling)
		scale.Sevenths = DiatonicSevenths(pcs, spelling)
	}
	if pattern.ModeIndex >= 0 {
		scale.Modes = modeNames(notes, pattern.ModeIndex)
	}

	return scale
}

// ByName builds a scale from a written tonic ("F#", "Bb") and a scale name.
// The spelling follows the written accidental, or the signature of the
// scale's parent major key
func ByName(tonicName, scaleName string) (Scale, error) {
	tonic, err := chroma.ParsePitchClass(tonicName)
	if err != nil {
		return Scale{}, err
	}

	pattern, err := Lookup(scaleName)
	if err != nil {
		return Scale{}, err
	}

	return Build(tonic, pattern, SpellingFor(tonicName, tonic, pattern)), nil
}

// SpellingFor picks sharps or flats for a scale from the written tonic and the
// signature of its parent major key
func SpellingFor(tonicName string, tonic chroma.PitchClass, pattern Pattern) chroma.Spelling {
	parent := tonic.Transpose(-pattern.ParentOffset)
	return chroma.SpellingFor(tonicName, chroma.CircleOfFifthsPosition(parent))
}

// PitchClasses computes the scale's pitch classes without building the full
// value
func PitchClasses(tonic chroma.PitchClass, intervals []int) []chroma.PitchClass {
	pcs := make([]chroma.PitchClass, len(intervals))
	for i, offset := range intervals {
		pcs[i] = tonic.Transpose(offset)
	}
	return pcs
}

// DiatonicChords stacks a triad on every degree (root, root+2 steps, root+4
// steps) and classifies it from its semitone intervals
func DiatonicChords(pcs []chroma.PitchClass, spelling chroma.Spelling) []chords.Chord {
	n := len(pcs)
	triads := make([]chords.Chord, n)
	for i, root := range pcs {
		third := root.IntervalTo(pcs[(i+2)%n])
		fifth := root.IntervalTo(pcs[(i+4)%n])
		triads[i] = chords.New(root, chords.QualityFromTriad(third, fifth), spelling)
	}
	return triads
}

// DiatonicSevenths stacks a seventh chord on every degree
func DiatonicSevenths(pcs []chroma.PitchClass, spelling chroma.Spelling) []chords.Chord {
	n := len(pcs)
	sevenths := make([]chords.Chord, n)
	for i, root := range pcs {
		third := root.IntervalTo(pcs[(i+2)%n])
		fifth := root.IntervalTo(pcs[(i+4)%n])
		seventh := root.IntervalTo(pcs[(i+6)%n])
		sevenths[i] = chords.New(root, chords.QualityFromSeventh(third, fifth, seventh), spelling)
	}
	return sevenths
}

func modeNames(notes []string, modeIndex int) []string {
	modes := make([]string, len(notes))
	for i, note := range notes {
		modes[i] = fmt.Sprintf("%s %s", note, ModeNames[(modeIndex+i)%len(ModeNames)])
	}
	return modes
}

// Degree returns the 1-based scale degree of pc, or 0 when pc is not in the scale
func (s Scale) Degree(pc chroma.PitchClass) int {
	for i, candidate := range s.PitchClasses {
		if candidate == pc {
			return i + 1
		}
	}
	return 0
}

// Contains reports whether pc belongs to the scale
func (s Scale) Contains(pc chroma.PitchClass) bool {
	return s.Degree(pc) > 0
}

// ChordSymbols returns the diatonic triads as strings
func (s Scale) ChordSymbols() []string {
	symbols := make([]string, len(s.Chords))
	for i, chord := range s.Chords {
		symbols[i] = chord.String()
	}
	return symbols
}
