package main

import (
	"io"

	"go.uber.org/zap"

	"github.com/phyten/hlgrep/internal/config"
	"github.com/phyten/hlgrep/internal/engine"
	"github.com/phyten/hlgrep/internal/highlight"
	"github.com/phyten/hlgrep/internal/output"
)

// searchAndRender runs one search over input and writes the report to out.
// It returns the number of matching lines.
func searchAndRender(logger *zap.Logger, input, pattern string, s config.Resolved, hl highlight.Highlighter, out io.Writer) (int, error) {
	opts := engine.Options{
		Pattern:    pattern,
		Regex:      s.Regex,
		IgnoreCase: s.IgnoreCase,
	}
	logger.Debug("searching",
		zap.String("pattern", pattern),
		zap.Bool("regex", opts.Regex),
		zap.Bool("ignore_case", opts.IgnoreCase),
		zap.String("output", string(s.Format)),
	)

	res, err := engine.Run(input, opts)
	if err != nil {
		return 0, err
	}
	logger.Debug("search finished", zap.Int("matches", res.Total))

	if s.Count {
		return res.Total, output.WriteCount(out, res.Matches)
	}
	textOpts := output.TextOptions{Highlighter: hl, MaxColumns: s.MaxColumns}
	if err := output.Write(out, s.Format, res.Matches, textOpts); err != nil {
		return res.Total, err
	}
	return res.Total, nil
}
