package tonal

import (
	"github.com/RyanBlaney/sonido-harmony/algorithms/chords"
	"github.com/RyanBlaney/sonido-harmony/algorithms/chroma"
)

// Numeral casing of the diatonic triads, per mode (I ii iii IV V vi vii°
// and i ii° III iv v VI VII)
var modeCasing = map[KeyMode][7]bool{
	KeyModeMajor: {true, false, false, true, true, false, false},
	KeyModeMinor: {false, false, true, false, false, true, true},
}

type degreeAlteration struct {
	degree     int
	alteration int
}

// Chromatic roots, keyed by semitones above the tonic, and how they are
// written relative to the nearest scale degree
var chromaticDegrees = map[KeyMode]map[int]degreeAlteration{
	KeyModeMajor: {
		1:  {2, -1}, // bII
		3:  {3, -1}, // bIII
		6:  {4, +1}, // #IV
		8:  {6, -1}, // bVI
		10: {7, -1}, // bVII
	},
	KeyModeMinor: {
		1:  {2, -1}, // bII
		4:  {3, +1}, // #III
		6:  {4, +1}, // #IV
		9:  {6, +1}, // #VI
		10: {7, -1}, // bvii, natural seventh under a lower-case numeral
		11: {7, +1}, // #VII, leading tone under an upper-case numeral
	},
}

// degreeRoot is the pitch class a numeral of the given degree and case stands
// on before alteration. In minor keys a lower-case vii sits on the raised
// leading tone, everything else on the natural minor scale
func degreeRoot(key Key, degree int, upper bool) chroma.PitchClass {
	if key.Mode == KeyModeMinor && degree == 7 && !upper {
		return key.Tonic.Transpose(11)
	}
	return key.PitchClasses()[degree-1]
}

// locate finds the degree and alteration of root under a numeral of the given
// case
func locate(key Key, root chroma.PitchClass, upper bool) (int, int) {
	for degree := 1; degree <= 7; degree++ {
		if degreeRoot(key, degree, upper) == root {
			return degree, 0
		}
	}
	if da, ok := chromaticDegrees[key.Mode][key.Tonic.IntervalTo(root)]; ok {
		return da.degree, da.alteration
	}
	return 1, 0
}

// NumeralFor computes the Roman numeral of a chord in key
func NumeralFor(chord chords.Chord, key Key) Numeral {
	var n Numeral

	if chord.Quality.HasSeventh() {
		n.Seventh = Seventh
	}
	switch chord.Quality {
	case chords.Diminished, chords.Diminished7:
		n.Quality = NumeralDiminished
	case chords.HalfDiminished7:
		n.Quality = NumeralHalfDiminished
	case chords.Augmented, chords.Augmented7:
		n.Quality = NumeralAugmented
		n.Upper = true
	case chords.Major7, chords.MinorMajor7:
		n.Seventh = MajorSeventh
	}

	switch chord.Family() {
	case chords.FamilyMajor:
		n.Upper = true
	case chords.FamilyMinor:
		n.Upper = false
	default:
		if n.Quality == NumeralPlain {
			// Third-less chords take the casing of the diatonic triad, or
			// upper case on a chromatic root
			degree, alteration := locate(key, chord.Root, true)
			n.Upper = alteration != 0 || modeCasing[key.Mode][degree-1]
		}
	}

	n.Degree, n.Alteration = locate(key, chord.Root, n.Upper)
	return n
}

// ChordToNumeral converts a chord to its Roman numeral in key
func ChordToNumeral(chord chords.Chord, key Key) string {
	return NumeralFor(chord, key).String()
}

// ChordSymbolToNumeral converts a chord symbol to its Roman numeral in key.
// A symbol that does not parse silently maps to the tonic numeral
func ChordSymbolToNumeral(symbol string, key Key) string {
	chord, err := chords.Parse(symbol)
	if err != nil {
		return TonicNumeral(key)
	}
	return ChordToNumeral(chord, key)
}

// TonicNumeral is "I" in major keys and "i" in minor keys
func TonicNumeral(key Key) string {
	if key.Mode == KeyModeMinor {
		return "i"
	}
	return "I"
}

// ChordFor resolves a numeral to a chord in key
func ChordFor(n Numeral, key Key) chords.Chord {
	root := degreeRoot(key, n.Degree, n.Upper).Transpose(n.Alteration)

	spelling := key.Spelling
	switch {
	case n.Alteration < 0:
		spelling = chroma.SpellFlats
	case n.Alteration > 0:
		spelling = chroma.SpellSharps
	case key.Mode == KeyModeMinor && n.Degree == 7 && !n.Upper:
		// Raised leading tone
		spelling = chroma.SpellSharps
	}

	return chords.New(root, numeralQuality(n), spelling)
}

func numeralQuality(n Numeral) chords.Quality {
	switch n.Quality {
	case NumeralDiminished:
		if n.Seventh != NoSeventh {
			return chords.Diminished7
		}
		return chords.Diminished
	case NumeralHalfDiminished:
		return chords.HalfDiminished7
	case NumeralAugmented:
		if n.Seventh != NoSeventh {
			return chords.Augmented7
		}
		return chords.Augmented
	}

	switch {
	case n.Seventh == MajorSeventh && n.Upper:
		return chords.Major7
	case n.Seventh == MajorSeventh:
		return chords.MinorMajor7
	case n.Seventh == Seventh && n.Upper:
		return chords.Dominant7
	case n.Seventh == Seventh:
		return chords.Minor7
	case n.Upper:
		return chords.Major
	default:
		return chords.Minor
	}
}

// NumeralToChord converts a Roman numeral to a chord symbol in key. A numeral
// that does not parse silently maps to the tonic chord
func NumeralToChord(numeral string, key Key) string {
	n, err := ParseNumeral(numeral)
	if err != nil {
		return key.TonicChord().String()
	}
	return ChordFor(n, key).String()
}
