package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/phyten/hlgrep/internal/config"
	"github.com/phyten/hlgrep/internal/highlight"
	"github.com/phyten/hlgrep/internal/termcolor"
)

// Following the grep tool convention.
const (
	exitMatched    = 0
	exitNotMatched = 1
	exitError      = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, os.Environ()))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer, environ []string) int {
	env := termcolor.EnvMap(environ)

	cli, err := parseArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "hlgrep: %v\n", err)
		fmt.Fprintln(stderr, "Try 'hlgrep --help' for more information.")
		return exitError
	}
	if cli.showHelp {
		printHelp(stdout)
		return exitMatched
	}

	envCfg, err := config.FromEnv(func(k string) string { return env[k] })
	if err != nil {
		fmt.Fprintf(stderr, "hlgrep: %v\n", err)
		return exitError
	}
	settings, err := config.Validate(config.Merge(config.Defaults(), envCfg, cli.flags))
	if err != nil {
		fmt.Fprintf(stderr, "hlgrep: %v\n", err)
		return exitError
	}

	logger := newLogger(stderr, settings.Verbose)
	defer func() { _ = logger.Sync() }()

	input, source, err := readInput(cli.path, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "hlgrep: %v\n", err)
		return exitError
	}
	logger.Debug("input loaded", zap.String("source", source), zap.Int("bytes", len(input)))

	hl := highlight.Highlighter{
		Style:   termcolor.MatchStyle(termcolor.DetectScheme(env), termcolor.DetectProfile(env)),
		Enabled: termcolor.Enabled(settings.ColorMode, stdout, env),
	}
	total, err := searchAndRender(logger, input, cli.pattern, settings, hl, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "hlgrep: %v\n", err)
		return exitError
	}
	if total == 0 {
		return exitNotMatched
	}
	return exitMatched
}

// readInput reads the whole source at once; path "" or "-" means stdin.
func readInput(path string, stdin io.Reader) (string, string, error) {
	var (
		data   []byte
		err    error
		source = path
	)
	if path == "" || path == "-" {
		source = "(standard input)"
		if stdin == nil {
			return "", source, errors.New("no standard input")
		}
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", source, fmt.Errorf("read %s: %w", source, err)
	}
	if !utf8.Valid(data) {
		return "", source, fmt.Errorf("%s: stream did not contain valid UTF-8", source)
	}
	return string(data), source, nil
}
