package tonal

import (
	"fmt"

	"github.com/RyanBlaney/sonido-harmony/algorithms/chroma"
)

// CadenceType identifies a harmonic resolution pattern
type CadenceType int

const (
	CadenceAuthentic CadenceType = iota
	CadencePlagal
)

func (c CadenceType) String() string {
	switch c {
	case CadenceAuthentic:
		return "Authentic Cadence"
	case CadencePlagal:
		return "Plagal Cadence"
	default:
		return "Unknown Cadence"
	}
}

// Cadence is a resolution found between two adjacent numerals
type Cadence struct {
	Type     CadenceType `json:"type"`
	Name     string      `json:"name"`
	Position int         `json:"position"` // Index of the first numeral of the pair
	From     string      `json:"from"`
	To       string      `json:"to"`
}

type numeralPair struct {
	from, to string
}

// Matched on numerals with their quality and seventh markers removed
var cadencePatterns = map[numeralPair]CadenceType{
	{"V", "I"}:  CadenceAuthentic,
	{"v", "i"}:  CadenceAuthentic,
	{"V", "i"}:  CadenceAuthentic,
	{"IV", "I"}: CadencePlagal,
	{"iv", "i"}: CadencePlagal,
}

// DetectCadences slides a two-numeral window over the sequence and reports
// every authentic and plagal cadence. Numerals that do not parse never match
func DetectCadences(numerals []string) []Cadence {
	cadences := make([]Cadence, 0)
	for i := 1; i < len(numerals); i++ {
		from, err := ParseNumeral(numerals[i-1])
		if err != nil {
			continue
		}
		to, err := ParseNumeral(numerals[i])
		if err != nil {
			continue
		}

		if cadenceType, ok := cadencePatterns[numeralPair{from.Core(), to.Core()}]; ok {
			cadences = append(cadences, Cadence{
				Type:     cadenceType,
				Name:     cadenceType.String(),
				Position: i - 1,
				From:     numerals[i-1],
				To:       numerals[i],
			})
		}
	}
	return cadences
}

// CadenceNames lists the cadence names in order of appearance
func CadenceNames(cadences []Cadence) []string {
	names := make([]string, len(cadences))
	for i, c := range cadences {
		names[i] = c.Name
	}
	return names
}

// Modulation flags a chord that may start a new key
type Modulation struct {
	Position    int    `json:"position"`
	Chord       string `json:"chord"`
	Description string `json:"description"`
}

// DetectModulations flags chords whose root carries a sharp or flat. With
// minRun above 1 only runs of at least minRun consecutive accidental roots are
// flagged, at the position of the run's first chord
func DetectModulations(symbols []string, minRun int) []Modulation {
	if minRun < 1 {
		minRun = 1
	}

	modulations := make([]Modulation, 0)
	runStart, runLength := -1, 0

	flush := func() {
		if runLength >= minRun {
			if minRun == 1 {
				for p := runStart; p < runStart+runLength; p++ {
					modulations = append(modulations, newModulation(p, symbols[p]))
				}
			} else {
				modulations = append(modulations, newModulation(runStart, symbols[runStart]))
			}
		}
		runStart, runLength = -1, 0
	}

	for i, symbol := range symbols {
		if chroma.HasAccidental(symbol) {
			if runLength == 0 {
				runStart = i
			}
			runLength++
			continue
		}
		flush()
	}
	flush()

	return modulations
}

func newModulation(position int, chord string) Modulation {
	return Modulation{
		Position:    position,
		Chord:       chord,
		Description: fmt.Sprintf("potential modulation at position %d", position),
	}
}

// ModulationDescriptions lists the modulation descriptions in order
func ModulationDescriptions(modulations []Modulation) []string {
	descriptions := make([]string, len(modulations))
	for i, m := range modulations {
		descriptions[i] = m.Description
	}
	return descriptions
}
