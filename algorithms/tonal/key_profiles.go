package tonal

import (
	"fmt"
	"sort"
	"strings"

	"github.com/RyanBlaney/sonido-harmony/algorithms/chords"
	"github.com/RyanBlaney/sonido-harmony/algorithms/chroma"
	"github.com/RyanBlaney/sonido-harmony/algorithms/common"
	"github.com/RyanBlaney/sonido-harmony/algorithms/stats"
)

// KeyProfile represents different key detection profiles
type KeyProfile int

const (
	KeyProfileKrumhansl KeyProfile = iota
	KeyProfileTemperley
	KeyProfileShaath
	KeyProfileEDMA
	KeyProfileBgate
	KeyProfileDiatonic
	KeyProfileTonicTriad
)

// KeyProfileTemplate contains template for key profile. Index 0 is the tonic
type KeyProfileTemplate struct {
	MajorProfile []float64 `json:"major_profile"`
	MinorProfile []float64 `json:"minor_profile"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
}

var keyProfiles = map[KeyProfile]KeyProfileTemplate{
	// Krumhansl-Schmuckler profiles (empirically derived)
	KeyProfileKrumhansl: {
		MajorProfile: []float64{6.35, 2.23, 3.48, 2.33, 4.38, 4.09, 2.52, 5.19, 2.39, 3.66, 2.29, 2.88},
		MinorProfile: []float64{6.33, 2.68, 3.52, 5.38, 2.60, 3.53, 2.54, 4.75, 3.98, 2.69, 3.34, 3.17},
		Name:         "Krumhansl-Schmuckler",
		Description:  "Empirical profiles based on listener ratings",
	},
	// Temperley profiles (corpus-based)
	KeyProfileTemperley: {
		MajorProfile: []float64{5.0, 2.0, 3.5, 2.0, 4.5, 4.0, 2.0, 4.5, 2.0, 3.5, 1.5, 4.0},
		MinorProfile: []float64{5.0, 2.0, 3.5, 4.5, 2.0, 4.0, 2.0, 4.5, 3.5, 2.0, 1.5, 4.0},
		Name:         "Temperley",
		Description:  "Statistical profiles from musical corpora",
	},
	KeyProfileShaath: {
		MajorProfile: []float64{6.6, 2.0, 3.5, 2.3, 4.6, 4.0, 2.5, 5.2, 2.4, 3.7, 2.3, 3.4},
		MinorProfile: []float64{6.5, 2.7, 3.5, 5.4, 2.6, 3.5, 2.5, 4.7, 4.0, 2.7, 3.4, 3.2},
		Name:         "Shaath",
		Description:  "Optimized for electronic dance music",
	},
	KeyProfileEDMA: {
		MajorProfile: []float64{17.7661, 0.145624, 14.9265, 0.160186, 19.8049, 11.3587, 0.291248, 22.062, 0.145624, 8.15494, 0.232998, 4.95122},
		MinorProfile: []float64{18.2648, 0.737619, 14.0499, 16.8599, 0.702494, 14.4362, 0.702494, 18.6161, 4.56621, 1.93186, 7.37619, 1.75623},
		Name:         "EDMA",
		Description:  "Electronic Dance Music Analysis profiles",
	},
	KeyProfileBgate: {
		MajorProfile: []float64{16.8, 0.86, 12.95, 1.41, 13.49, 11.93, 1.25, 20.28, 1.80, 8.04, 0.62, 10.57},
		MinorProfile: []float64{18.16, 0.69, 12.99, 13.34, 1.07, 11.15, 1.38, 21.07, 7.49, 1.53, 6.24, 1.61},
		Name:         "Bgate",
		Description:  "Balanced gate profiles for modern music",
	},
	// Simple diatonic weights
	KeyProfileDiatonic: {
		MajorProfile: []float64{5.0, 0.0, 3.0, 0.0, 4.0, 3.5, 0.0, 4.5, 0.0, 3.0, 0.0, 2.0},
		MinorProfile: []float64{5.0, 0.0, 3.0, 3.5, 0.0, 3.5, 0.0, 4.5, 3.0, 0.0, 2.0, 0.0},
		Name:         "Diatonic",
		Description:  "Simple diatonic scale weights",
	},
	KeyProfileTonicTriad: {
		MajorProfile: []float64{5.0, 0.0, 0.0, 0.0, 3.0, 0.0, 0.0, 4.0, 0.0, 0.0, 0.0, 0.0},
		MinorProfile: []float64{5.0, 0.0, 0.0, 3.0, 0.0, 0.0, 0.0, 4.0, 0.0, 0.0, 0.0, 0.0},
		Name:         "Tonic Triad",
		Description:  "Emphasizes tonic triad notes only",
	},
}

var profileAliases = map[string]KeyProfile{
	"krumhansl":            KeyProfileKrumhansl,
	"krumhansl-schmuckler": KeyProfileKrumhansl,
	"temperley":            KeyProfileTemperley,
	"shaath":               KeyProfileShaath,
	"edma":                 KeyProfileEDMA,
	"bgate":                KeyProfileBgate,
	"diatonic":             KeyProfileDiatonic,
	"tonic triad":          KeyProfileTonicTriad,
	"tonic_triad":          KeyProfileTonicTriad,
}

func (p KeyProfile) String() string {
	if template, ok := keyProfiles[p]; ok {
		return template.Name
	}
	return "Unknown"
}

// Template returns the profile's major and minor weights
func (p KeyProfile) Template() KeyProfileTemplate {
	if template, ok := keyProfiles[p]; ok {
		return template
	}
	return keyProfiles[KeyProfileKrumhansl]
}

// ParseKeyProfile resolves a profile by name, case-insensitively
func ParseKeyProfile(name string) (KeyProfile, error) {
	if profile, ok := profileAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return profile, nil
	}
	return KeyProfileKrumhansl, fmt.Errorf("unknown key profile %q (supported: %s)", name, strings.Join(GetSupportedProfiles(), ", "))
}

// GetSupportedProfiles returns list of supported key profiles
func GetSupportedProfiles() []string {
	names := make([]string, 0, len(keyProfiles))
	for p := KeyProfileKrumhansl; p <= KeyProfileTonicTriad; p++ {
		names = append(names, p.String())
	}
	return names
}

// KeyCandidate represents a potential key with confidence
type KeyCandidate struct {
	Key        Key     `json:"key"`
	KeyName    string  `json:"key_name"`   // Human-readable key name
	Confidence float64 `json:"confidence"` // Profile correlation (-1 to 1)
	Profile    string  `json:"profile"`    // Profile used for detection
}

// ProfileRanking is the correlation of a chord list's chroma against every key
type ProfileRanking struct {
	Candidates []KeyCandidate      `json:"candidates"`
	Scores     []float64           `json:"scores"` // 12 major keys from C, then 12 minor keys
	Chroma     chroma.ChromaVector `json:"chroma"`
	Clarity    float64             `json:"clarity"`   // (best - second) / best
	Ambiguity  float64             `json:"ambiguity"` // Normalized entropy of the scores
	Profile    string              `json:"profile"`
}

// ProfileRanker ranks all 24 keys by correlating the chord tones of a
// progression with a key profile
type ProfileRanker struct {
	profile       KeyProfile
	maxCandidates int
}

// NewProfileRanker creates a ranker returning at most maxCandidates keys
func NewProfileRanker(profile KeyProfile, maxCandidates int) *ProfileRanker {
	if maxCandidates <= 0 {
		maxCandidates = 5
	}
	return &ProfileRanker{profile: profile, maxCandidates: maxCandidates}
}

// Rank correlates the progression's chroma against every rotation of the
// profile. An empty progression yields an empty ranking
func (pr *ProfileRanker) Rank(progression []chords.Chord) ProfileRanking {
	template := pr.profile.Template()
	ranking := ProfileRanking{Profile: template.Name}

	sets := make([]chroma.PitchSet, len(progression))
	for i, chord := range progression {
		sets[i] = chord.PitchSet()
	}
	cv := chroma.FromPitchSets(sets)
	if cv.IsSilent() {
		return ranking
	}
	ranking.Chroma = cv.Normalize()

	majorScores := stats.CircularPearson(ranking.Chroma.Values, template.MajorProfile)
	minorScores := stats.CircularPearson(ranking.Chroma.Values, template.MinorProfile)
	ranking.Scores = append(append([]float64{}, majorScores...), minorScores...)

	keys := AllKeys()
	candidates := make([]KeyCandidate, len(keys))
	for i, key := range keys {
		candidates[i] = KeyCandidate{
			Key:        key,
			KeyName:    key.String(),
			Confidence: common.Round(ranking.Scores[i], 4),
			Profile:    template.Name,
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Confidence > candidates[j].Confidence
	})
	if len(candidates) > pr.maxCandidates {
		candidates = candidates[:pr.maxCandidates]
	}

	ranking.Candidates = candidates
	ranking.Clarity = stats.Clarity(ranking.Scores)
	ranking.Ambiguity = stats.NormalizedEntropy(ranking.Scores)
	return ranking
}
