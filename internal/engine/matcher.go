package engine

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/phyten/hlgrep/internal/model"
)

// Matcher は 1 行の中の全マッチ位置を左から順に重なりなく返します。
type Matcher interface {
	FindAll(line string) []model.Span
}

// Literal matches an exact, case-sensitive substring.
type Literal struct {
	pattern string
}

// NewLiteral returns a Literal matcher. An empty pattern is rejected.
func NewLiteral(pattern string) (*Literal, error) {
	if pattern == "" {
		return nil, model.ErrEmptyPattern
	}
	return &Literal{pattern: pattern}, nil
}

// FindAll repeats a forward search from a cursor that jumps to the end of
// each hit, so "aa" in "aaaa" yields [0,2) and [2,4).
func (l *Literal) FindAll(line string) []model.Span {
	if !strings.Contains(line, l.pattern) {
		return nil
	}
	var spans []model.Span
	offset := 0
	for {
		found := strings.Index(line[offset:], l.pattern)
		if found < 0 {
			break
		}
		start := offset + found
		end := start + len(l.pattern)
		spans = append(spans, model.Span{Start: start, End: end})
		offset = end
		if offset >= len(line) {
			break
		}
	}
	return spans
}

// Fold は大文字小文字を区別しないリテラル検索です。正規表現エンジンは使いません。
// スパンは元の行に対するバイトオフセットのままです。
type Fold struct {
	pattern []rune
}

// NewFold returns a case-insensitive literal matcher.
func NewFold(pattern string) (*Fold, error) {
	if pattern == "" {
		return nil, model.ErrEmptyPattern
	}
	return &Fold{pattern: []rune(pattern)}, nil
}

func (f *Fold) FindAll(line string) []model.Span {
	var spans []model.Span
	pos := 0
	for pos < len(line) {
		if end, ok := f.matchAt(line, pos); ok {
			spans = append(spans, model.Span{Start: pos, End: end})
			pos = end
			continue
		}
		_, size := utf8.DecodeRuneInString(line[pos:])
		pos += size
	}
	return spans
}

func (f *Fold) matchAt(line string, pos int) (int, bool) {
	for _, want := range f.pattern {
		if pos >= len(line) {
			return 0, false
		}
		got, size := utf8.DecodeRuneInString(line[pos:])
		if !equalFoldRune(got, want) {
			return 0, false
		}
		pos += size
	}
	return pos, true
}

// equalFoldRune walks the simple-fold orbit of a, as strings.EqualFold does.
func equalFoldRune(a, b rune) bool {
	if a == b {
		return true
	}
	for r := unicode.SimpleFold(a); r != a; r = unicode.SimpleFold(r) {
		if r == b {
			return true
		}
	}
	return false
}

// Pattern delegates to a compiled regular expression.
type Pattern struct {
	re *regexp.Regexp
}

// NewPattern compiles pattern; ignoreCase is applied as the (?i) flag at
// compile time rather than by rewriting the input.
func NewPattern(pattern string, ignoreCase bool) (*Pattern, error) {
	if pattern == "" {
		return nil, model.ErrEmptyPattern
	}
	expr := pattern
	if ignoreCase {
		expr = "(?i)" + pattern
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, &model.RegexError{Pattern: pattern, Err: err}
	}
	return &Pattern{re: re}, nil
}

func (p *Pattern) FindAll(line string) []model.Span {
	locs := p.re.FindAllStringIndex(line, -1)
	if len(locs) == 0 {
		return nil
	}
	spans := make([]model.Span, len(locs))
	for i, loc := range locs {
		spans[i] = model.Span{Start: loc[0], End: loc[1]}
	}
	return spans
}

// NewMatcher selects the matcher variant for opts once, before scanning.
func NewMatcher(opts Options) (Matcher, error) {
	var (
		m   Matcher
		err error
	)
	switch {
	case opts.Regex:
		m, err = NewPattern(opts.Pattern, opts.IgnoreCase)
	case opts.IgnoreCase:
		m, err = NewFold(opts.Pattern)
	default:
		m, err = NewLiteral(opts.Pattern)
	}
	if err != nil {
		// avoid handing back a typed nil inside the interface
		return nil, err
	}
	return m, nil
}
