package engine

import (
	"strings"

	"github.com/phyten/hlgrep/internal/model"
)

// Run は opts に従ってマッチャーを選び、input 全体を走査します。
//
// パターンが空なら model.ErrEmptyPattern、正規表現が不正なら *model.RegexError を返します。
func Run(input string, opts Options) (*Result, error) {
	m, err := NewMatcher(opts)
	if err != nil {
		return nil, err
	}
	matches := Scan(input, m)
	return &Result{Matches: matches, Total: len(matches)}, nil
}

// SearchLiteral finds every case-sensitive occurrence of pattern.
func SearchLiteral(input, pattern string) ([]model.MatchLine, error) {
	m, err := NewLiteral(pattern)
	if err != nil {
		return nil, err
	}
	return Scan(input, m), nil
}

// SearchLiteralFold is SearchLiteral with simple Unicode case folding.
func SearchLiteralFold(input, pattern string) ([]model.MatchLine, error) {
	m, err := NewFold(pattern)
	if err != nil {
		return nil, err
	}
	return Scan(input, m), nil
}

// SearchRegex finds every leftmost non-overlapping match of pattern.
func SearchRegex(input, pattern string, ignoreCase bool) ([]model.MatchLine, error) {
	m, err := NewPattern(pattern, ignoreCase)
	if err != nil {
		return nil, err
	}
	return Scan(input, m), nil
}

// Scan splits input into lines and keeps those where m reports at least one span.
//
// Lines end at "\n" and a "\r" right before it is dropped. A trailing newline
// does not open an extra empty line.
func Scan(input string, m Matcher) []model.MatchLine {
	var out []model.MatchLine
	lineNo := 0
	for rest := input; rest != ""; {
		var line string
		line, rest, _ = strings.Cut(rest, "\n")
		lineNo++
		line = strings.TrimSuffix(line, "\r")
		spans := m.FindAll(line)
		if len(spans) == 0 {
			continue
		}
		out = append(out, model.MatchLine{
			LineNumber: lineNo,
			Line:       line,
			Spans:      spans,
		})
	}
	return out
}
