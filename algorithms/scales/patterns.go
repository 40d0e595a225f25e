package scales

import (
	"fmt"
	"sort"
	"strings"
)

// Pattern is a named set of tonic-relative semitone offsets
type Pattern struct {
	Name      string `json:"name"`
	Intervals []int  `json:"intervals"` // Offsets from the tonic, ascending, first is 0

	// ParentOffset is the distance from the tonic of the major key whose
	// signature spells this scale (D dorian -> C major: 2)
	ParentOffset int `json:"parent_offset"`

	// ModeIndex is the rotation of the major scale this pattern represents,
	// or -1 when it is not a church mode
	ModeIndex int `json:"mode_index"`
}

// IsHeptatonic reports whether the pattern has seven degrees (and therefore
// diatonic triads)
func (p Pattern) IsHeptatonic() bool {
	return len(p.Intervals) == 7
}

// UnknownScaleError reports a scale or mode name that is not registered
type UnknownScaleError struct {
	Name string
}

func (e *UnknownScaleError) Error() string {
	return fmt.Sprintf("unknown scale %q (known: %s)", e.Name, strings.Join(Names(), ", "))
}

// Church mode names, indexed by rotation of the major scale
var ModeNames = []string{"Ionian", "Dorian", "Phrygian", "Lydian", "Mixolydian", "Aeolian", "Locrian"}

var majorIntervals = []int{0, 2, 4, 5, 7, 9, 11}

var patterns = map[string]Pattern{
	"major":            rotation("major", 0),
	"minor":            rotation("minor", 5),
	"dorian":           rotation("dorian", 1),
	"phrygian":         rotation("phrygian", 2),
	"lydian":           rotation("lydian", 3),
	"mixolydian":       rotation("mixolydian", 4),
	"locrian":          rotation("locrian", 6),
	"harmonic_minor":   {Name: "harmonic_minor", Intervals: []int{0, 2, 3, 5, 7, 8, 11}, ParentOffset: 9, ModeIndex: -1},
	"melodic_minor":    {Name: "melodic_minor", Intervals: []int{0, 2, 3, 5, 7, 9, 11}, ParentOffset: 9, ModeIndex: -1},
	"major_pentatonic": {Name: "major_pentatonic", Intervals: []int{0, 2, 4, 7, 9}, ParentOffset: 0, ModeIndex: -1},
	"minor_pentatonic": {Name: "minor_pentatonic", Intervals: []int{0, 3, 5, 7, 10}, ParentOffset: 9, ModeIndex: -1},
	"blues":            {Name: "blues", Intervals: []int{0, 3, 5, 6, 7, 10}, ParentOffset: 9, ModeIndex: -1},
}

var aliases = map[string]string{
	"ionian":        "major",
	"aeolian":       "minor",
	"natural_minor": "minor",
	"pentatonic":    "major_pentatonic",
}

// rotation builds the church mode starting on the given degree of the major scale
func rotation(name string, degree int) Pattern {
	intervals := make([]int, 7)
	base := majorIntervals[degree]
	for i := range intervals {
		intervals[i] = (majorIntervals[(degree+i)%7] - base + 12) % 12
	}
	return Pattern{
		Name:         name,
		Intervals:    intervals,
		ParentOffset: base,
		ModeIndex:    degree,
	}
}

func normalizeName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.NewReplacer(" ", "_", "-", "_").Replace(n)
	if canonical, ok := aliases[n]; ok {
		return canonical
	}
	return n
}

// Lookup returns the registered pattern for a scale name. Names are case
// insensitive and spaces or hyphens may stand in for underscores
func Lookup(name string) (Pattern, error) {
	pattern, ok := patterns[normalizeName(name)]
	if !ok {
		return Pattern{}, &UnknownScaleError{Name: name}
	}
	return pattern, nil
}

// MustLookup is Lookup for names registered in this package
func MustLookup(name string) Pattern {
	pattern, err := Lookup(name)
	if err != nil {
		panic(err)
	}
	return pattern
}

// Names lists the registered scale names
func Names() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
