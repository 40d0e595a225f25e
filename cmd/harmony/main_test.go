package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/RyanBlaney/sonido-harmony/harmony/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := run(args, &out)
	return out.String(), err
}

func TestRun_Usage(t *testing.T) {
	_, err := runCommand(t)
	assert.Error(t, err)

	_, err = runCommand(t, "transpose")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown cmd")
}

func TestRun_KeyJSON(t *testing.T) {
	out, err := runCommand(t, "key", "-json", "C", "Dm", "G", "Am")
	require.NoError(t, err)

	var estimate map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &estimate))
	assert.Equal(t, "C major", estimate["key_name"])
	assert.Equal(t, true, estimate["ambiguous"])
}

func TestRun_Analyze(t *testing.T) {
	out, err := runCommand(t, "analyze", "-key", "C", "-json", "C", "Am", "F", "G")
	require.NoError(t, err)

	var analysis struct {
		Key       string   `json:"key"`
		Numerals  []string `json:"numerals"`
		Functions []string `json:"functions"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &analysis))
	assert.Equal(t, "C major", analysis.Key)
	assert.Equal(t, []string{"I", "vi", "IV", "V"}, analysis.Numerals)
	assert.Equal(t, []string{"Tonic", "Tonic", "Subdominant", "Dominant"}, analysis.Functions)

	_, err = runCommand(t, "analyze")
	assert.Error(t, err)
}

func TestRun_Conversions(t *testing.T) {
	out, err := runCommand(t, "numeral", "-key", "G", "Em", "D7")
	require.NoError(t, err)
	assert.Contains(t, out, "vi")
	assert.Contains(t, out, "V7")

	out, err = runCommand(t, "chord", "-key", "Am", "V", "iv")
	require.NoError(t, err)
	assert.Contains(t, out, "E")
	assert.Contains(t, out, "Dm")

	_, err = runCommand(t, "chord", "-key", "Q", "I")
	assert.Error(t, err)
}

func TestRun_Scale(t *testing.T) {
	out, err := runCommand(t, "scale", "-json", "E", "minor")
	require.NoError(t, err)

	var s struct {
		Notes []string `json:"notes"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	assert.Equal(t, []string{"E", "F#", "G", "A", "B", "C", "D"}, s.Notes)

	_, err = runCommand(t, "scale", "C", "imaginary")
	assert.Error(t, err)
}

func TestRun_GenerateSeeded(t *testing.T) {
	type generated struct {
		Numerals []string `json:"numerals"`
		Chords   []string `json:"chords"`
		Genre    string   `json:"genre"`
	}

	decode := func() generated {
		out, err := runCommand(t, "generate", "-key", "Am", "-genre", "electronic", "-length", "6", "-seed", "5", "-json")
		require.NoError(t, err)
		var g generated
		require.NoError(t, json.Unmarshal([]byte(out), &g))
		return g
	}

	first, second := decode(), decode()
	assert.Len(t, first.Chords, 6)
	assert.Equal(t, "electronic", first.Genre)
	assert.Equal(t, first, second)

	_, err := runCommand(t, "generate", "-length", "0")
	assert.Error(t, err)
}

func TestRun_SuggestAndNext(t *testing.T) {
	out, err := runCommand(t, "suggest", "-key", "C", "-genre", "pop")
	require.NoError(t, err)
	assert.Contains(t, out, "C G Am F")

	out, err = runCommand(t, "next", "-key", "C", "ii", "V")
	require.NoError(t, err)
	assert.Contains(t, out, "I vi IV")
}

func TestRun_Genres(t *testing.T) {
	out, err := runCommand(t, "genres", "-json")
	require.NoError(t, err)

	var all []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &all))
	assert.Len(t, all, 10)
}

func TestRun_BadEnvironment(t *testing.T) {
	t.Setenv(config.EnvMaxCandidates, "0")
	_, err := runCommand(t, "key", "C")
	assert.Error(t, err)
}
