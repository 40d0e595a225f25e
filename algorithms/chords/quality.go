package chords

// Quality represents the quality/type of a chord
type Quality int

const (
	Major Quality = iota
	Minor
	Diminished
	Augmented
	Dominant7
	Major7
	Minor7
	HalfDiminished7
	Diminished7
	MinorMajor7
	Sus2
	Sus4
	Power
	Augmented7
	Unknown
)

// Family groups qualities by the character of their third
type Family int

const (
	FamilyNeutral Family = iota
	FamilyMajor
	FamilyMinor
)

type qualityInfo struct {
	name      string
	suffix    string
	intervals []int
	family    Family
}

var qualities = map[Quality]qualityInfo{
	Major:           {"major", "", []int{0, 4, 7}, FamilyMajor},
	Minor:           {"minor", "m", []int{0, 3, 7}, FamilyMinor},
	Diminished:      {"diminished", "dim", []int{0, 3, 6}, FamilyNeutral},
	Augmented:       {"augmented", "aug", []int{0, 4, 8}, FamilyNeutral},
	Dominant7:       {"dominant7", "7", []int{0, 4, 7, 10}, FamilyMajor},
	Major7:          {"major7", "maj7", []int{0, 4, 7, 11}, FamilyMajor},
	Minor7:          {"minor7", "m7", []int{0, 3, 7, 10}, FamilyMinor},
	HalfDiminished7: {"half-diminished7", "m7b5", []int{0, 3, 6, 10}, FamilyNeutral},
	Diminished7:     {"diminished7", "dim7", []int{0, 3, 6, 9}, FamilyNeutral},
	MinorMajor7:     {"minor-major7", "mMaj7", []int{0, 3, 7, 11}, FamilyMinor},
	Sus2:            {"sus2", "sus2", []int{0, 2, 7}, FamilyNeutral},
	Sus4:            {"sus4", "sus4", []int{0, 5, 7}, FamilyNeutral},
	Power:           {"power", "5", []int{0, 7}, FamilyNeutral},
	Augmented7:      {"augmented7", "aug7", []int{0, 4, 8, 10}, FamilyNeutral},
	Unknown:         {"unknown", "", []int{0}, FamilyNeutral},
}

// String returns the human-readable name for a chord quality
func (q Quality) String() string {
	if info, ok := qualities[q]; ok {
		return info.name
	}
	return "unknown"
}

// Suffix is the canonical chord-symbol suffix ("" for major, "m", "dim", "7", ...)
func (q Quality) Suffix() string {
	return qualities[q].suffix
}

// Intervals returns the chord tones in semitones above the root
func (q Quality) Intervals() []int {
	intervals := qualities[q].intervals
	out := make([]int, len(intervals))
	copy(out, intervals)
	return out
}

// Family reports whether the quality has a major third, a minor third, or
// neither (diminished, augmented, suspended and power chords are mode-neutral)
func (q Quality) Family() Family {
	return qualities[q].family
}

// HasSeventh reports whether the quality is a four-note seventh chord
func (q Quality) HasSeventh() bool {
	return len(qualities[q].intervals) == 4
}

// QualityFromTriad classifies a stacked triad from its third and fifth above
// the root. Unmatched shapes default to major
func QualityFromTriad(third, fifth int) Quality {
	switch {
	case third == 4 && fifth == 7:
		return Major
	case third == 3 && fifth == 7:
		return Minor
	case fifth == 6:
		return Diminished
	case fifth == 8:
		return Augmented
	default:
		return Major
	}
}

// QualityFromSeventh classifies a stacked seventh chord, falling back to the
// triad quality for shapes without a named seventh chord
func QualityFromSeventh(third, fifth, seventh int) Quality {
	switch {
	case third == 4 && fifth == 7 && seventh == 11:
		return Major7
	case third == 4 && fifth == 7 && seventh == 10:
		return Dominant7
	case third == 3 && fifth == 7 && seventh == 10:
		return Minor7
	case third == 3 && fifth == 6 && seventh == 10:
		return HalfDiminished7
	case third == 3 && fifth == 6 && seventh == 9:
		return Diminished7
	case third == 3 && fifth == 7 && seventh == 11:
		return MinorMajor7
	case third == 4 && fifth == 8 && seventh == 10:
		return Augmented7
	default:
		return QualityFromTriad(third, fifth)
	}
}

// SupportedQualities returns the names of all parseable chord qualities
func SupportedQualities() []string {
	names := make([]string, 0, len(qualities))
	for q := Major; q < Unknown; q++ {
		names = append(names, q.String())
	}
	return names
}
