package tonal

// HarmonicFunction is the role a chord plays in its key
type HarmonicFunction int

const (
	FunctionTonic HarmonicFunction = iota
	FunctionSubdominant
	FunctionDominant
	FunctionOther
)

func (f HarmonicFunction) String() string {
	switch f {
	case FunctionTonic:
		return "Tonic"
	case FunctionSubdominant:
		return "Subdominant"
	case FunctionDominant:
		return "Dominant"
	default:
		return "Other"
	}
}

var degreeFunctions = map[int]HarmonicFunction{
	1: FunctionTonic,
	6: FunctionTonic,
	2: FunctionSubdominant,
	4: FunctionSubdominant,
	5: FunctionDominant,
	7: FunctionDominant,
}

// FunctionOf labels a numeral. The mediant, chromatic numerals and anything
// that does not parse are Other
func FunctionOf(numeral string) HarmonicFunction {
	n, err := ParseNumeral(numeral)
	if err != nil || !n.IsDiatonic() {
		return FunctionOther
	}
	if f, ok := degreeFunctions[n.Degree]; ok {
		return f
	}
	return FunctionOther
}

// FunctionLabels labels every numeral
func FunctionLabels(numerals []string) []string {
	labels := make([]string, len(numerals))
	for i, numeral := range numerals {
		labels[i] = FunctionOf(numeral).String()
	}
	return labels
}
