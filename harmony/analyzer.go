package harmony

import (
	"fmt"

	"github.com/RyanBlaney/sonido-harmony/algorithms/chords"
	"github.com/RyanBlaney/sonido-harmony/algorithms/common"
	"github.com/RyanBlaney/sonido-harmony/algorithms/progression"
	"github.com/RyanBlaney/sonido-harmony/algorithms/scales"
	"github.com/RyanBlaney/sonido-harmony/algorithms/tonal"
	"github.com/RyanBlaney/sonido-harmony/harmony/config"
	"github.com/RyanBlaney/sonido-harmony/logging"
)

// Weights of the analysis confidence score
const (
	DiatonicWeight = 0.6
	KeyWeight      = 0.4
	CadenceBonus   = 5.0
)

// Analysis is the harmonic reading of a chord list in one key
type Analysis struct {
	Key         tonal.Key          `json:"-"`
	KeyName     string             `json:"key"`
	Chords      []string           `json:"chords"`
	Numerals    []string           `json:"numerals"`
	Functions   []string           `json:"functions"`
	Cadences    []tonal.Cadence    `json:"cadences"`
	Modulations []tonal.Modulation `json:"modulations"`

	// DiatonicRatio is the share of chords whose numeral is diatonic to Key
	DiatonicRatio float64 `json:"diatonic_ratio"`
	Confidence    float64 `json:"confidence"` // 0-100

	// KeyEstimate is set when the key was detected rather than given
	KeyEstimate *tonal.KeyEstimate `json:"key_estimate,omitempty"`
}

// Analyzer exposes key detection, numeral conversion, scale building,
// progression generation and cadence scanning behind string inputs
type Analyzer struct {
	config    *config.AnalyzerConfig
	scorer    *tonal.KeyScorer
	generator *progression.Generator
	source    progression.RandomSource
	logger    logging.Logger
}

// Option customizes an Analyzer
type Option func(*Analyzer)

// WithLogger sets the logger used by the analyzer and its generator
func WithLogger(logger logging.Logger) Option {
	return func(a *Analyzer) {
		a.logger = logger
	}
}

// WithRandomSource overrides the template picker, including any seed in the
// config
func WithRandomSource(source progression.RandomSource) Option {
	return func(a *Analyzer) {
		a.source = source
	}
}

// New creates an analyzer. A nil config uses DefaultAnalyzerConfig
func New(cfg *config.AnalyzerConfig, opts ...Option) (*Analyzer, error) {
	if cfg == nil {
		cfg = config.DefaultAnalyzerConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid analyzer config: %w", err)
	}

	a := &Analyzer{config: cfg}
	for _, opt := range opts {
		opt(a)
	}

	a.logger = logging.OrGlobal(a.logger).WithFields(logging.Fields{
		"component": "harmony_analyzer",
	})

	if a.source == nil {
		if cfg.Seed != nil {
			a.source = progression.NewSeededSource(*cfg.Seed)
		} else {
			a.source = progression.NewLiveSource()
		}
	}

	var ranker *tonal.ProfileRanker
	if cfg.EnableProfileRanking {
		profile, err := tonal.ParseKeyProfile(cfg.KeyProfile)
		if err != nil {
			return nil, fmt.Errorf("invalid analyzer config: %w", err)
		}
		ranker = tonal.NewProfileRanker(profile, cfg.MaxCandidates)
	}

	a.scorer = tonal.NewKeyScorer(ranker)
	a.generator = progression.NewGenerator(a.source, cfg.DefaultGenre, a.logger)

	return a, nil
}

// AnalyzeHarmony maps every chord to a numeral and function in key and scans
// for cadences and modulations. An empty key is detected from the chords
func (a *Analyzer) AnalyzeHarmony(chordSymbols []string, key string) (*Analysis, error) {
	analysis := &Analysis{
		Chords: append([]string(nil), chordSymbols...),
	}

	parsed, _ := chords.ParseAll(chordSymbols)

	var keyConfidence float64
	if key == "" {
		estimate := a.scorer.DetectSymbols(chordSymbols)
		analysis.Key = estimate.Key
		analysis.KeyEstimate = &estimate
		keyConfidence = estimate.Confidence
	} else {
		k, err := tonal.ParseKey(key)
		if err != nil {
			return nil, fmt.Errorf("analyze harmony: %w", err)
		}
		analysis.Key = k
		keyConfidence = tonal.Confidence(tonal.ScoreKey(k, parsed), len(parsed))
	}
	analysis.KeyName = analysis.Key.String()

	analysis.Numerals = make([]string, len(chordSymbols))
	diatonic := 0
	for i, symbol := range chordSymbols {
		chord, err := chords.Parse(symbol)
		if err != nil {
			a.logger.Debug("Unparseable chord mapped to tonic", logging.Fields{
				"chord":    symbol,
				"position": i,
			})
			analysis.Numerals[i] = tonal.TonicNumeral(analysis.Key)
			continue
		}

		numeral := tonal.NumeralFor(chord, analysis.Key)
		analysis.Numerals[i] = numeral.String()
		if numeral.IsDiatonic() {
			diatonic++
		}
	}

	analysis.Functions = tonal.FunctionLabels(analysis.Numerals)
	analysis.Cadences = tonal.DetectCadences(analysis.Numerals)
	analysis.Modulations = tonal.DetectModulations(chordSymbols, a.config.ModulationMinRun)

	if len(chordSymbols) > 0 {
		analysis.DiatonicRatio = float64(diatonic) / float64(len(chordSymbols))
	}
	analysis.Confidence = analysisConfidence(analysis.DiatonicRatio, keyConfidence, len(analysis.Cadences), len(chordSymbols))

	a.logger.Debug("Harmony analyzed", logging.Fields{
		"key":         analysis.KeyName,
		"chords":      len(chordSymbols),
		"cadences":    len(analysis.Cadences),
		"modulations": len(analysis.Modulations),
		"confidence":  analysis.Confidence,
	})

	return analysis, nil
}

func analysisConfidence(diatonicRatio, keyConfidence float64, cadences, numChords int) float64 {
	if numChords == 0 {
		return 0.0
	}
	score := DiatonicWeight*diatonicRatio*100 + KeyWeight*keyConfidence + CadenceBonus*float64(cadences)
	return common.Clamp(score, 0, 100)
}

// DetectKey picks the most probable key. Malformed chords are ignored
func (a *Analyzer) DetectKey(chordSymbols []string) tonal.KeyEstimate {
	estimate := a.scorer.DetectSymbols(chordSymbols)

	if len(estimate.Rejected) > 0 {
		a.logger.Warn("Ignored malformed chords", logging.Fields{
			"rejected": estimate.Rejected,
		})
	}
	a.logger.Debug("Key detected", logging.Fields{
		"key":        estimate.KeyName,
		"score":      estimate.Score,
		"confidence": estimate.Confidence,
		"ambiguous":  estimate.Ambiguous,
	})

	return estimate
}

// ChordToRomanNumeral converts a chord symbol to a numeral in key. Only an
// invalid key is an error; an unparseable chord maps to the tonic numeral
func (a *Analyzer) ChordToRomanNumeral(chord, key string) (string, error) {
	k, err := tonal.ParseKey(key)
	if err != nil {
		return "", fmt.Errorf("chord to numeral: %w", err)
	}
	return tonal.ChordSymbolToNumeral(chord, k), nil
}

// RomanNumeralToChord converts a numeral to a chord symbol in key. Only an
// invalid key is an error; an unparseable numeral maps to the tonic chord
func (a *Analyzer) RomanNumeralToChord(numeral, key string) (string, error) {
	k, err := tonal.ParseKey(key)
	if err != nil {
		return "", fmt.Errorf("numeral to chord: %w", err)
	}
	return tonal.NumeralToChord(numeral, k), nil
}

// GetScale builds a named scale on tonic
func (a *Analyzer) GetScale(tonic, scaleName string) (scales.Scale, error) {
	return scales.ByName(tonic, scaleName)
}

// GenerateChordProgression generates length chords in key. An empty genre
// uses the configured default and an unknown one falls back to pop
func (a *Analyzer) GenerateChordProgression(key, genre string, length int) (progression.ChordProgression, error) {
	k, err := tonal.ParseKey(key)
	if err != nil {
		return progression.ChordProgression{}, fmt.Errorf("generate progression: %w", err)
	}
	return a.generator.Generate(k, genre, length)
}

// SuggestChords lists the distinct chords the genre uses in key
func (a *Analyzer) SuggestChords(key, genre string) ([]string, error) {
	k, err := tonal.ParseKey(key)
	if err != nil {
		return nil, fmt.Errorf("suggest chords: %w", err)
	}
	return a.generator.Suggest(k, genre), nil
}

// GetLogicalNextChords returns the numerals that usually follow the last of
// numerals in key, or follow the tonic when numerals is empty
func (a *Analyzer) GetLogicalNextChords(numerals []string, key string) ([]string, error) {
	k, err := tonal.ParseKey(key)
	if err != nil {
		return nil, fmt.Errorf("logical next chords: %w", err)
	}

	last := tonal.TonicNumeral(k)
	if len(numerals) > 0 {
		last = numerals[len(numerals)-1]
	}
	return progression.LogicalNext(last, k.Mode), nil
}

// Config returns the analyzer configuration
func (a *Analyzer) Config() config.AnalyzerConfig {
	return *a.config
}
