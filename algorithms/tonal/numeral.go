package tonal

import (
	"fmt"
	"strings"
)

// NumeralQuality is the quality marker written after a Roman numeral
type NumeralQuality int

const (
	NumeralPlain NumeralQuality = iota
	NumeralDiminished
	NumeralHalfDiminished
	NumeralAugmented
)

// NumeralSeventh is the seventh marker written after a Roman numeral
type NumeralSeventh int

const (
	NoSeventh NumeralSeventh = iota
	Seventh
	MajorSeventh
)

// Numeral is a scale-degree chord in Roman-numeral notation (I, ii, V7,
// vii°, bVII). Upper case numerals have a major third, lower case a minor one
type Numeral struct {
	Degree     int            `json:"degree"`     // 1-7
	Alteration int            `json:"alteration"` // -1 flat, +1 sharp, relative to the degree
	Upper      bool           `json:"upper"`
	Quality    NumeralQuality `json:"quality"`
	Seventh    NumeralSeventh `json:"seventh"`
}

var romanDegrees = []string{"I", "II", "III", "IV", "V", "VI", "VII"}

// ParseNumeral parses a Roman numeral with an optional b/# prefix and
// optional °, ø, + and 7/maj7 markers
func ParseNumeral(s string) (Numeral, error) {
	rest := strings.TrimSpace(s)
	var n Numeral

	for {
		switch {
		case strings.HasPrefix(rest, "b"):
			n.Alteration--
			rest = rest[1:]
			continue
		case strings.HasPrefix(rest, "♭"):
			n.Alteration--
			rest = rest[len("♭"):]
			continue
		case strings.HasPrefix(rest, "#"):
			n.Alteration++
			rest = rest[1:]
			continue
		case strings.HasPrefix(rest, "♯"):
			n.Alteration++
			rest = rest[len("♯"):]
			continue
		}
		break
	}

	roman := leadingRoman(rest)
	if roman == "" {
		return Numeral{}, fmt.Errorf("invalid roman numeral %q", s)
	}
	upper := strings.ToUpper(roman)
	if roman != upper && roman != strings.ToLower(roman) {
		return Numeral{}, fmt.Errorf("invalid roman numeral %q: mixed case", s)
	}
	for i, candidate := range romanDegrees {
		if candidate == upper {
			n.Degree = i + 1
		}
	}
	if n.Degree == 0 {
		return Numeral{}, fmt.Errorf("invalid roman numeral %q", s)
	}
	n.Upper = roman == upper

	if err := n.parseMarkers(rest[len(roman):]); err != nil {
		return Numeral{}, fmt.Errorf("invalid roman numeral %q: %w", s, err)
	}
	return n, nil
}

// MustParseNumeral is ParseNumeral for literals known to be valid
func MustParseNumeral(s string) Numeral {
	n, err := ParseNumeral(s)
	if err != nil {
		panic(err)
	}
	return n
}

func leadingRoman(s string) string {
	end := 0
	for end < len(s) && strings.IndexByte("IViv", s[end]) >= 0 {
		end++
	}
	return s[:end]
}

func (n *Numeral) parseMarkers(markers string) error {
	rest := markers
	for rest != "" {
		switch {
		case strings.HasPrefix(rest, "°"):
			n.Quality = NumeralDiminished
			rest = rest[len("°"):]
		case strings.HasPrefix(rest, "o"):
			n.Quality = NumeralDiminished
			rest = rest[1:]
		case strings.HasPrefix(rest, "ø"):
			n.Quality = NumeralHalfDiminished
			n.Seventh = Seventh
			rest = rest[len("ø"):]
		case strings.HasPrefix(rest, "+"):
			n.Quality = NumeralAugmented
			rest = rest[1:]
		case strings.HasPrefix(rest, "maj7"), strings.HasPrefix(rest, "Maj7"):
			n.Seventh = MajorSeventh
			rest = rest[len("maj7"):]
		case strings.HasPrefix(rest, "M7"):
			n.Seventh = MajorSeventh
			rest = rest[len("M7"):]
		case strings.HasPrefix(rest, "7"):
			if n.Seventh == NoSeventh {
				n.Seventh = Seventh
			}
			rest = rest[1:]
		default:
			return fmt.Errorf("unknown marker %q", rest)
		}
	}
	if n.Quality == NumeralAugmented && n.Seventh == MajorSeventh {
		return fmt.Errorf("augmented major seventh is not supported")
	}
	return nil
}

// String renders the numeral in canonical form
func (n Numeral) String() string {
	var b strings.Builder

	switch {
	case n.Alteration < 0:
		b.WriteString(strings.Repeat("b", -n.Alteration))
	case n.Alteration > 0:
		b.WriteString(strings.Repeat("#", n.Alteration))
	}

	roman := romanDegrees[(n.Degree-1+7)%7]
	if !n.Upper {
		roman = strings.ToLower(roman)
	}
	b.WriteString(roman)

	switch n.Quality {
	case NumeralDiminished:
		b.WriteString("°")
	case NumeralHalfDiminished:
		b.WriteString("ø")
	case NumeralAugmented:
		b.WriteString("+")
	}

	switch {
	case n.Quality == NumeralHalfDiminished:
		b.WriteString("7")
	case n.Seventh == Seventh:
		b.WriteString("7")
	case n.Seventh == MajorSeventh:
		b.WriteString("maj7")
	}

	return b.String()
}

// Core renders the numeral without quality and seventh markers ("V7" -> "V")
func (n Numeral) Core() string {
	return Numeral{Degree: n.Degree, Alteration: n.Alteration, Upper: n.Upper}.String()
}

// IsDiatonic reports whether the numeral has no chromatic alteration
func (n Numeral) IsDiatonic() bool {
	return n.Alteration == 0
}
