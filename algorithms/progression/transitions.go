package progression

import (
	"github.com/RyanBlaney/sonido-harmony/algorithms/tonal"
)

// transitionKey tags a numeral by scale degree, chromatic alteration and mode
// so that V in major and V in minor are separate entries
type transitionKey struct {
	degree     int
	alteration int
	mode       tonal.KeyMode
}

var transitions = map[transitionKey][]string{
	// Major
	{1, 0, tonal.KeyModeMajor}:  {"V", "vi", "IV", "ii", "iii"},
	{2, 0, tonal.KeyModeMajor}:  {"V", "vii°", "IV"},
	{3, 0, tonal.KeyModeMajor}:  {"vi", "IV", "ii"},
	{4, 0, tonal.KeyModeMajor}:  {"V", "I", "ii", "vii°"},
	{5, 0, tonal.KeyModeMajor}:  {"I", "vi", "IV"},
	{6, 0, tonal.KeyModeMajor}:  {"ii", "IV", "V", "iii"},
	{7, 0, tonal.KeyModeMajor}:  {"I", "iii"},
	{7, -1, tonal.KeyModeMajor}: {"IV", "I"},
	{6, -1, tonal.KeyModeMajor}: {"bVII", "V"},
	{3, -1, tonal.KeyModeMajor}: {"IV", "bVII"},
	{2, -1, tonal.KeyModeMajor}: {"I", "V"},

	// Minor
	{1, 0, tonal.KeyModeMinor}:  {"iv", "v", "VI", "VII", "III"},
	{2, 0, tonal.KeyModeMinor}:  {"V", "v", "VII"},
	{3, 0, tonal.KeyModeMinor}:  {"VI", "iv", "VII"},
	{4, 0, tonal.KeyModeMinor}:  {"V", "i", "VII"},
	{5, 0, tonal.KeyModeMinor}:  {"i", "VI", "iv"},
	{6, 0, tonal.KeyModeMinor}:  {"VII", "iv", "ii°", "III"},
	{7, 0, tonal.KeyModeMinor}:  {"III", "i", "VI"},
	{2, -1, tonal.KeyModeMinor}: {"i", "VII"},
}

// LogicalNext returns the numerals that usually follow numeral in a key of
// the given mode. Unknown or unparseable numerals have no suggestions
func LogicalNext(numeral string, mode tonal.KeyMode) []string {
	n, err := tonal.ParseNumeral(numeral)
	if err != nil {
		return nil
	}

	next := transitions[transitionKey{degree: n.Degree, alteration: n.Alteration, mode: mode}]
	out := make([]string, len(next))
	copy(out, next)
	return out
}

// suggestions merges the transition entries for last with the first two
// genre favorites, dropping duplicates
func suggestions(last string, mode tonal.KeyMode, favorites []string) []string {
	candidates := LogicalNext(last, mode)
	if len(favorites) > 2 {
		favorites = favorites[:2]
	}
	candidates = append(candidates, favorites...)

	seen := make(map[string]bool, len(candidates))
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}
