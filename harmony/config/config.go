package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Environment variables read by LoadFromEnv
const (
	EnvDefaultGenre     = "HARMONY_DEFAULT_GENRE"
	EnvSeed             = "HARMONY_SEED"
	EnvLogLevel         = "HARMONY_LOG_LEVEL"
	EnvMaxCandidates    = "HARMONY_MAX_CANDIDATES"
	EnvKeyProfile       = "HARMONY_KEY_PROFILE"
	EnvModulationMinRun = "HARMONY_MODULATION_MIN_RUN"
	EnvProfileRanking   = "HARMONY_PROFILE_RANKING"
)

// AnalyzerConfig configures a harmony analyzer
type AnalyzerConfig struct {
	// Generation
	DefaultGenre string  `json:"default_genre"`
	Seed         *uint64 `json:"seed,omitempty"` // nil draws from the process random generator

	// Key detection
	EnableProfileRanking bool   `json:"enable_profile_ranking"`
	KeyProfile           string `json:"key_profile"` // "krumhansl", "temperley", "shaath", ...
	MaxCandidates        int    `json:"max_candidates"`

	// Scanning
	ModulationMinRun int `json:"modulation_min_run"` // 1 flags every accidental root

	LogLevel string `json:"log_level"` // "debug", "info", "warn", "error"
}

// DefaultAnalyzerConfig returns sensible defaults for analysis
func DefaultAnalyzerConfig() *AnalyzerConfig {
	return &AnalyzerConfig{
		DefaultGenre:         "pop",
		EnableProfileRanking: true,
		KeyProfile:           "krumhansl",
		MaxCandidates:        5,
		ModulationMinRun:     1,
		LogLevel:             "info",
	}
}

// LoadFromEnv overlays the HARMONY_* environment variables on the defaults.
// Unset or empty variables keep their default
func LoadFromEnv() (*AnalyzerConfig, error) {
	cfg := DefaultAnalyzerConfig()

	cfg.DefaultGenre = getEnv(EnvDefaultGenre, cfg.DefaultGenre)
	cfg.KeyProfile = getEnv(EnvKeyProfile, cfg.KeyProfile)
	cfg.LogLevel = getEnv(EnvLogLevel, cfg.LogLevel)

	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", EnvSeed, err)
		}
		cfg.Seed = &seed
	}

	var err error
	if cfg.MaxCandidates, err = getEnvInt(EnvMaxCandidates, cfg.MaxCandidates); err != nil {
		return nil, err
	}
	if cfg.ModulationMinRun, err = getEnvInt(EnvModulationMinRun, cfg.ModulationMinRun); err != nil {
		return nil, err
	}

	if v := os.Getenv(EnvProfileRanking); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", EnvProfileRanking, err)
		}
		cfg.EnableProfileRanking = enabled
	}

	return cfg, cfg.Validate()
}

// Validate reports settings that cannot be used
func (c *AnalyzerConfig) Validate() error {
	if c.MaxCandidates < 1 {
		return fmt.Errorf("max candidates must be positive, got %d", c.MaxCandidates)
	}
	if c.ModulationMinRun < 1 {
		return fmt.Errorf("modulation min run must be positive, got %d", c.ModulationMinRun)
	}
	return nil
}

// WithSeed returns a copy of the config using a deterministic seed
func (c AnalyzerConfig) WithSeed(seed uint64) *AnalyzerConfig {
	c.Seed = &seed
	return &c
}

func getEnv(key, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return n, nil
}
