package tonal

import (
	"github.com/RyanBlaney/sonido-harmony/algorithms/chords"
	"github.com/RyanBlaney/sonido-harmony/algorithms/chroma"
	"github.com/RyanBlaney/sonido-harmony/algorithms/common"
)

// Per-chord scoring weights of the greedy key scorer
const (
	TonicScore    = 5
	DominantScore = 3
	ScaleScore    = 1
	ModeBonus     = 2

	// MaxChordScore is the most a single chord can contribute
	MaxChordScore = TonicScore + ModeBonus

	// MaxConfidence caps KeyEstimate.Confidence
	MaxConfidence = 100.0
)

// KeyEstimate is the result of scoring every key against a chord list
type KeyEstimate struct {
	Key        Key     `json:"key"`
	KeyName    string  `json:"key_name"`   // Human-readable name (e.g., "C major")
	Score      int     `json:"score"`      // Winning score
	Confidence float64 `json:"confidence"` // Average per-chord score as a percentage (0-100)

	BestMajor  Key `json:"best_major"`
	BestMinor  Key `json:"best_minor"`
	MajorScore int `json:"major_score"`
	MinorScore int `json:"minor_score"`

	// Ambiguous is set when the best major and best minor keys score the
	// same. Key then holds the major candidate
	Ambiguous bool `json:"ambiguous"`

	// Profile ranking of the same chords, advisory only
	Candidates []KeyCandidate `json:"candidates,omitempty"`
	Clarity    float64        `json:"clarity"`
	Ambiguity  float64        `json:"ambiguity"`

	NumChords int      `json:"num_chords"`
	Rejected  []string `json:"rejected,omitempty"` // Symbols dropped for a non-chromatic root
}

// KeyScorer picks the most probable key for a chord list with a single
// greedy pass over the 24 major and minor keys
type KeyScorer struct {
	ranker *ProfileRanker
}

// NewKeyScorer creates a key scorer. ranker may be nil to skip profile ranking
func NewKeyScorer(ranker *ProfileRanker) *KeyScorer {
	return &KeyScorer{ranker: ranker}
}

// DetectSymbols parses the symbols, drops the malformed ones and scores the rest
func (ks *KeyScorer) DetectSymbols(symbols []string) KeyEstimate {
	parsed, rejected := chords.ParseAll(symbols)
	estimate := ks.Detect(parsed)
	estimate.Rejected = rejected
	return estimate
}

// Detect scores every key against the chords. Ties within a mode go to the
// first tonic in chromatic order; ties between modes go to major. An empty
// list yields C major with a zero score
func (ks *KeyScorer) Detect(progression []chords.Chord) KeyEstimate {
	bestMajor, majorScore := bestKeyForMode(progression, KeyModeMajor)
	bestMinor, minorScore := bestKeyForMode(progression, KeyModeMinor)

	estimate := KeyEstimate{
		Key:        bestMajor,
		Score:      majorScore,
		BestMajor:  bestMajor,
		BestMinor:  bestMinor,
		MajorScore: majorScore,
		MinorScore: minorScore,
		Ambiguous:  len(progression) > 0 && majorScore == minorScore,
		NumChords:  len(progression),
	}
	if minorScore > majorScore {
		estimate.Key = bestMinor
		estimate.Score = minorScore
	}
	estimate.KeyName = estimate.Key.String()
	estimate.Confidence = Confidence(estimate.Score, len(progression))

	if ks.ranker != nil && len(progression) > 0 {
		ranking := ks.ranker.Rank(progression)
		estimate.Candidates = ranking.Candidates
		estimate.Clarity = ranking.Clarity
		estimate.Ambiguity = ranking.Ambiguity
	}

	return estimate
}

func bestKeyForMode(progression []chords.Chord, mode KeyMode) (Key, int) {
	best := NewKey(0, mode)
	bestScore := -1
	for _, tonic := range chroma.AllPitchClasses() {
		candidate := NewKey(tonic, mode)
		if score := ScoreKey(candidate, progression); score > bestScore {
			best = candidate
			bestScore = score
		}
	}
	return best, bestScore
}

// ScoreKey adds up the per-chord evidence for key: +5 for a root on the
// tonic, else +3 on the fifth degree, else +1 anywhere in the scale, and +2
// when the chord's third agrees with the mode
func ScoreKey(key Key, progression []chords.Chord) int {
	pcs := key.PitchClasses()
	dominant := pcs[4]

	wanted := chords.FamilyMajor
	if key.Mode == KeyModeMinor {
		wanted = chords.FamilyMinor
	}

	score := 0
	for _, chord := range progression {
		switch {
		case chord.Root == key.Tonic:
			score += TonicScore
		case chord.Root == dominant:
			score += DominantScore
		case containsPitchClass(pcs, chord.Root):
			score += ScaleScore
		}

		if chord.Family() == wanted {
			score += ModeBonus
		}
	}
	return score
}

// Confidence maps the average per-chord score onto 0-100
func Confidence(score, numChords int) float64 {
	if numChords == 0 {
		return 0.0
	}
	perChord := float64(score) / float64(numChords)
	return common.Clamp(common.Percentage(perChord, MaxChordScore), 0, MaxConfidence)
}

func containsPitchClass(pcs []chroma.PitchClass, pc chroma.PitchClass) bool {
	for _, candidate := range pcs {
		if candidate == pc {
			return true
		}
	}
	return false
}
