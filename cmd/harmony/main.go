// harmony is a command-line front end to the harmony analyzer: key
// detection, numeral conversion, scales and progression generation.
//
// Settings come from HARMONY_* environment variables, optionally loaded from
// a .env file in the working directory.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/RyanBlaney/sonido-harmony/harmony"
	"github.com/RyanBlaney/sonido-harmony/harmony/config"
	"github.com/RyanBlaney/sonido-harmony/logging"
	"github.com/joho/godotenv"
)

var usage = strings.TrimSpace(`
usage: harmony $cmd [flags] [args]
valid $cmd are 'analyze', 'key', 'numeral', 'chord', 'scale',
'generate', 'suggest', 'next', 'genres'
for help: harmony $cmd -help
`)

func main() {
	if err := godotenv.Load(); err != nil {
		logging.Debug("No .env file found, using environment variables")
	}

	if err := run(os.Args[1:], os.Stdout); err != nil && !errors.Is(err, flag.ErrHelp) {
		fmt.Fprintln(os.Stderr, errorStyle.Render("error: ")+err.Error())
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	if len(args) < 1 {
		return errors.New(usage)
	}
	cmd, args := args[0], args[1:]

	cfg, err := config.LoadFromEnv()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logging.SetLevel(level)

	switch cmd {
	case "analyze":
		return analyze(cfg, args, out)
	case "key":
		return detectKey(cfg, args, out)
	case "numeral":
		return numeral(cfg, args, out)
	case "chord":
		return chord(cfg, args, out)
	case "scale":
		return scale(cfg, args, out)
	case "generate":
		return generate(cfg, args, out)
	case "suggest":
		return suggest(cfg, args, out)
	case "next":
		return next(cfg, args, out)
	case "genres":
		return genres(args, out)
	default:
		return fmt.Errorf("unknown cmd: '%s'\n%s", cmd, usage)
	}
}

func newAnalyzer(cfg *config.AnalyzerConfig) (*harmony.Analyzer, error) {
	return harmony.New(cfg, harmony.WithLogger(logging.GetGlobalLogger()))
}
