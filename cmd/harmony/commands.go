package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/RyanBlaney/sonido-harmony/algorithms/progression"
	"github.com/RyanBlaney/sonido-harmony/algorithms/tonal"
	"github.com/RyanBlaney/sonido-harmony/harmony/config"
)

func newFlagSet(name, argUsage, doc string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "\n%s\n\n", doc)
		fmt.Fprintf(os.Stderr, "  harmony %s [flags] %s\n\n", name, argUsage)
		fmt.Fprintf(os.Stderr, "flags:\n")
		fs.PrintDefaults()
	}
	return fs
}

func analyze(cfg *config.AnalyzerConfig, args []string, out io.Writer) error {
	fs := newFlagSet("analyze", "<chord>...", "Analyze a chord list: key, numerals, functions, cadences and modulations.")
	key := fs.String("key", "", "key to analyze in (detected when empty)")
	asJSON := fs.Bool("json", false, "print JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return errors.New("analyze: no chords given")
	}

	a, err := newAnalyzer(cfg)
	if err != nil {
		return err
	}
	analysis, err := a.AnalyzeHarmony(fs.Args(), *key)
	if err != nil {
		return err
	}
	if *asJSON {
		return writeJSON(out, analysis)
	}

	writeTitle(out, "Harmony analysis")
	writeField(out, "Key", analysis.KeyName)
	writeList(out, "Chords", analysis.Chords)
	writeList(out, "Numerals", analysis.Numerals)
	writeList(out, "Functions", analysis.Functions)
	writeList(out, "Cadences", tonal.CadenceNames(analysis.Cadences))
	writeList(out, "Modulations", tonal.ModulationDescriptions(analysis.Modulations))
	writeField(out, "Confidence", fmt.Sprintf("%.1f", analysis.Confidence))
	return nil
}

func detectKey(cfg *config.AnalyzerConfig, args []string, out io.Writer) error {
	fs := newFlagSet("key", "<chord>...", "Detect the most probable key of a chord list.")
	asJSON := fs.Bool("json", false, "print JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	a, err := newAnalyzer(cfg)
	if err != nil {
		return err
	}
	estimate := a.DetectKey(fs.Args())
	if *asJSON {
		return writeJSON(out, estimate)
	}

	writeTitle(out, "Key detection")
	writeField(out, "Key", estimate.KeyName)
	writeField(out, "Score", estimate.Score)
	writeField(out, "Confidence", fmt.Sprintf("%.1f", estimate.Confidence))
	if estimate.Ambiguous {
		writeField(out, "Ambiguous", warnStyle.Render(fmt.Sprintf("%s / %s", estimate.BestMajor, estimate.BestMinor)))
	}
	for i, c := range estimate.Candidates {
		writeField(out, fmt.Sprintf("Candidate %d", i+1), fmt.Sprintf("%s (%.4f)", c.KeyName, c.Confidence))
	}
	writeList(out, "Ignored", estimate.Rejected)
	return nil
}

func numeral(cfg *config.AnalyzerConfig, args []string, out io.Writer) error {
	fs := newFlagSet("numeral", "<chord>...", "Convert chord symbols to Roman numerals.")
	key := fs.String("key", "C", "key")
	if err := fs.Parse(args); err != nil {
		return err
	}

	a, err := newAnalyzer(cfg)
	if err != nil {
		return err
	}
	for _, symbol := range fs.Args() {
		n, err := a.ChordToRomanNumeral(symbol, *key)
		if err != nil {
			return err
		}
		writeField(out, symbol, n)
	}
	return nil
}

func chord(cfg *config.AnalyzerConfig, args []string, out io.Writer) error {
	fs := newFlagSet("chord", "<numeral>...", "Convert Roman numerals to chord symbols.")
	key := fs.String("key", "C", "key")
	if err := fs.Parse(args); err != nil {
		return err
	}

	a, err := newAnalyzer(cfg)
	if err != nil {
		return err
	}
	for _, n := range fs.Args() {
		symbol, err := a.RomanNumeralToChord(n, *key)
		if err != nil {
			return err
		}
		writeField(out, n, symbol)
	}
	return nil
}

func scale(cfg *config.AnalyzerConfig, args []string, out io.Writer) error {
	fs := newFlagSet("scale", "<tonic> [scale]", "Build a scale and its diatonic chords.")
	asJSON := fs.Bool("json", false, "print JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return errors.New("scale: no tonic given")
	}
	name := "major"
	if fs.NArg() > 1 {
		name = strings.Join(fs.Args()[1:], " ")
	}

	a, err := newAnalyzer(cfg)
	if err != nil {
		return err
	}
	s, err := a.GetScale(fs.Arg(0), name)
	if err != nil {
		return err
	}
	if *asJSON {
		return writeJSON(out, s)
	}

	writeTitle(out, fmt.Sprintf("%s %s", s.TonicName, s.Name))
	writeList(out, "Notes", s.Notes)
	writeList(out, "Chords", s.ChordSymbols())
	writeList(out, "Modes", s.Modes)
	return nil
}

func generate(cfg *config.AnalyzerConfig, args []string, out io.Writer) error {
	fs := newFlagSet("generate", "", "Generate a chord progression.")
	key := fs.String("key", "C", "key")
	genre := fs.String("genre", "", "genre (defaults to HARMONY_DEFAULT_GENRE)")
	length := fs.Int("length", 4, "number of chords")
	seed := fs.Uint64("seed", 0, "seed for reproducible output")
	asJSON := fs.Bool("json", false, "print JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			cfg = cfg.WithSeed(*seed)
		}
	})

	a, err := newAnalyzer(cfg)
	if err != nil {
		return err
	}
	p, err := a.GenerateChordProgression(*key, *genre, *length)
	if err != nil {
		return err
	}
	if *asJSON {
		return writeJSON(out, p)
	}

	writeTitle(out, fmt.Sprintf("%s progression in %s", p.Genre, p.KeyName))
	writeList(out, "Numerals", p.Numerals)
	writeList(out, "Chords", p.Chords)
	writeField(out, "Emotion", p.Emotion)
	writeField(out, "ID", p.ID)
	return nil
}

func suggest(cfg *config.AnalyzerConfig, args []string, out io.Writer) error {
	fs := newFlagSet("suggest", "", "List the chords a genre uses in a key.")
	key := fs.String("key", "C", "key")
	genre := fs.String("genre", "", "genre (defaults to HARMONY_DEFAULT_GENRE)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	a, err := newAnalyzer(cfg)
	if err != nil {
		return err
	}
	chords, err := a.SuggestChords(*key, *genre)
	if err != nil {
		return err
	}
	writeList(out, "Suggestions", chords)
	return nil
}

func next(cfg *config.AnalyzerConfig, args []string, out io.Writer) error {
	fs := newFlagSet("next", "[numeral]...", "Suggest numerals that follow the last one given.")
	key := fs.String("key", "C", "key")
	if err := fs.Parse(args); err != nil {
		return err
	}

	a, err := newAnalyzer(cfg)
	if err != nil {
		return err
	}
	numerals, err := a.GetLogicalNextChords(fs.Args(), *key)
	if err != nil {
		return err
	}
	writeList(out, "Next", numerals)
	return nil
}

func genres(args []string, out io.Writer) error {
	fs := newFlagSet("genres", "", "List the registered genres.")
	asJSON := fs.Bool("json", false, "print JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var all []progression.Genre
	for _, name := range progression.GenreNames() {
		g, _ := progression.LookupGenre(name)
		all = append(all, g)
	}
	if *asJSON {
		return writeJSON(out, all)
	}

	for _, g := range all {
		writeField(out, g.Name, g.Description)
	}
	return nil
}
