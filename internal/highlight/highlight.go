// Package highlight renders matched spans of a line.
//
// Segments produces pure data; Highlighter turns segments into terminal
// output. Spans are always validated here, whoever produced them.
package highlight

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/phyten/hlgrep/internal/model"
	"github.com/phyten/hlgrep/internal/termcolor"
)

// Segments splits line into unmatched and emphasized pieces.
//
// Every span must satisfy 0 <= Start <= End <= len(line), start at or after
// the previous span's End and sit on UTF-8 boundaries; otherwise the whole
// line fails with model.ErrInvalidSpan. Zero-width spans yield no segment.
func Segments(line string, spans []model.Span) ([]model.Segment, error) {
	if len(spans) == 0 {
		if line == "" {
			return nil, nil
		}
		return []model.Segment{{Text: line}}, nil
	}
	segs := make([]model.Segment, 0, 2*len(spans)+1)
	cursor := 0
	for _, sp := range spans {
		if err := checkSpan(line, sp, cursor); err != nil {
			return nil, err
		}
		if cursor < sp.Start {
			segs = append(segs, model.Segment{Text: line[cursor:sp.Start]})
		}
		if sp.Len() > 0 {
			segs = append(segs, model.Segment{Text: line[sp.Start:sp.End], Emphasized: true})
		}
		cursor = sp.End
	}
	if cursor < len(line) {
		segs = append(segs, model.Segment{Text: line[cursor:]})
	}
	return segs, nil
}

func checkSpan(line string, sp model.Span, prevEnd int) error {
	var reason string
	switch {
	case sp.Start < 0:
		reason = "negative start"
	case sp.Start > sp.End:
		reason = "start after end"
	case sp.End > len(line):
		reason = "end beyond line"
	case sp.Start < prevEnd:
		reason = "overlaps previous span"
	case !onBoundary(line, sp.Start) || !onBoundary(line, sp.End):
		reason = "not on a character boundary"
	default:
		return nil
	}
	return fmt.Errorf("%w: %v %s (line is %d bytes)", model.ErrInvalidSpan, sp, reason, len(line))
}

func onBoundary(s string, i int) bool {
	return i == len(s) || utf8.RuneStart(s[i])
}

// Highlighter wraps emphasized segments in Style when Enabled.
type Highlighter struct {
	Style   termcolor.Style
	Enabled bool
}

// Default is bold yellow ANSI emphasis.
func Default() Highlighter {
	return Highlighter{
		Style:   termcolor.MatchStyle(termcolor.SchemeDark, termcolor.ProfileBasic8),
		Enabled: true,
	}
}

// Line renders line with its spans emphasized. With no spans line is returned as is.
func (h Highlighter) Line(line string, spans []model.Span) (string, error) {
	if len(spans) == 0 {
		return line, nil
	}
	segs, err := Segments(line, spans)
	if err != nil {
		return "", err
	}
	return h.Render(segs), nil
}

// Render joins segments, styling the emphasized ones.
func (h Highlighter) Render(segs []model.Segment) string {
	styled := h.Enabled && !h.Style.IsZero()
	var b strings.Builder
	for _, seg := range segs {
		if styled && seg.Emphasized {
			b.WriteString(termcolor.Apply(h.Style, seg.Text, true))
			continue
		}
		b.WriteString(seg.Text)
	}
	return b.String()
}

// HighlightLine renders line with the default ANSI emphasis.
func HighlightLine(line string, spans []model.Span) (string, error) {
	return Default().Line(line, spans)
}
