package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/phyten/hlgrep/internal/config"
)

type cliConfig struct {
	flags    config.Config
	pattern  string
	path     string
	showHelp bool
}

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("hlgrep", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false
	fs.BoolP("regex", "r", false, "treat PATTERN as a regular expression")
	fs.BoolP("ignore-case", "i", false, "case-insensitive search")
	fs.String("color", "auto", "colorize matches: auto|always|never")
	fs.StringP("output", "o", "text", "report format: text|json|ndjson|csv|markdown|yaml")
	fs.IntP("max-columns", "M", 0, "truncate displayed lines to N columns (0 = unlimited)")
	fs.BoolP("count", "c", false, "print only the number of matching lines")
	fs.BoolP("verbose", "v", false, "debug logging to stderr")
	fs.BoolP("help", "h", false, "show this help")
	return fs
}

func parseArgs(args []string) (*cliConfig, error) {
	fs := newFlagSet()
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	cfg := &cliConfig{}
	if help, _ := fs.GetBool("help"); help {
		cfg.showHelp = true
		return cfg, nil
	}

	// only flags given on the command line override the environment layer
	if fs.Changed("regex") {
		v, _ := fs.GetBool("regex")
		cfg.flags.Regex = &v
	}
	if fs.Changed("ignore-case") {
		v, _ := fs.GetBool("ignore-case")
		cfg.flags.IgnoreCase = &v
	}
	if fs.Changed("color") {
		v, _ := fs.GetString("color")
		cfg.flags.Color = &v
	}
	if fs.Changed("output") {
		v, _ := fs.GetString("output")
		cfg.flags.Output = &v
	}
	if fs.Changed("max-columns") {
		v, _ := fs.GetInt("max-columns")
		cfg.flags.MaxColumns = &v
	}
	if fs.Changed("count") {
		v, _ := fs.GetBool("count")
		cfg.flags.Count = &v
	}
	if fs.Changed("verbose") {
		v, _ := fs.GetBool("verbose")
		cfg.flags.Verbose = &v
	}

	rest := fs.Args()
	switch len(rest) {
	case 0:
		return nil, errors.New("missing PATTERN")
	case 1:
		cfg.pattern = rest[0]
	case 2:
		cfg.pattern, cfg.path = rest[0], rest[1]
	default:
		return nil, fmt.Errorf("too many arguments: %q", rest[2:])
	}
	return cfg, nil
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, "hlgrep: search a file or standard input and highlight matches")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage: hlgrep [flags] PATTERN [PATH]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Reads standard input when PATH is omitted or \"-\".")
	fmt.Fprintln(w, "Exit status is 0 if a line matched, 1 if none did, 2 on error.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprint(w, newFlagSet().FlagUsages())
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment: HLGREP_REGEX, HLGREP_IGNORE_CASE, HLGREP_COLOR, HLGREP_OUTPUT,")
	fmt.Fprintln(w, "HLGREP_MAX_COLUMNS. NO_COLOR, CLICOLOR and FORCE_COLOR affect --color=auto.")
}

// newLogger returns a no-op logger unless verbose; debug output goes to w.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), zapcore.DebugLevel)
	return zap.New(core)
}
