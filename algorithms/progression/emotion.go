package progression

import (
	"github.com/RyanBlaney/sonido-harmony/algorithms/tonal"
)

// Emotion is a coarse mood label derived from a numeral sequence
type Emotion int

const (
	EmotionHappy Emotion = iota
	EmotionSad
	EmotionTense
	EmotionResolved
	EmotionMysterious
	EmotionPowerful
)

func (e Emotion) String() string {
	switch e {
	case EmotionHappy:
		return "happy"
	case EmotionSad:
		return "sad"
	case EmotionTense:
		return "tense"
	case EmotionResolved:
		return "resolved"
	case EmotionMysterious:
		return "mysterious"
	case EmotionPowerful:
		return "powerful"
	default:
		return "unknown"
	}
}

func (e Emotion) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// ClassifyEmotion labels a numeral sequence. Rules are checked in order and
// the first match wins:
//   - more than half the numerals lower case: sad
//   - tonic and dominant both present: resolved
//   - dominant without tonic: tense
//   - a sixth degree present: mysterious
//   - all upper case with a flattened degree: powerful
//   - anything else: happy
func ClassifyEmotion(numerals []string) Emotion {
	if len(numerals) == 0 {
		return EmotionHappy
	}

	var lower, parsed int
	var hasTonic, hasDominant, hasSixth, hasFlat bool
	for _, s := range numerals {
		n, err := tonal.ParseNumeral(s)
		if err != nil {
			continue
		}
		parsed++
		if !n.Upper {
			lower++
		}
		if n.Alteration < 0 {
			hasFlat = true
			continue
		}
		if n.Alteration > 0 {
			continue
		}
		switch n.Degree {
		case 1:
			hasTonic = true
		case 5:
			hasDominant = true
		case 6:
			hasSixth = true
		}
	}

	switch {
	case lower*2 > len(numerals):
		return EmotionSad
	case hasTonic && hasDominant:
		return EmotionResolved
	case hasDominant:
		return EmotionTense
	case hasSixth:
		return EmotionMysterious
	case parsed > 0 && lower == 0 && hasFlat:
		return EmotionPowerful
	default:
		return EmotionHappy
	}
}
