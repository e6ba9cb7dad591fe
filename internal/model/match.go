package model

import "fmt"

// Span は 1 件のマッチを行内の半開区間 [Start, End) のバイトオフセットで表します。
type Span struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// Len はスパンのバイト長を返します。
func (s Span) Len() int { return s.End - s.Start }

func (s Span) String() string {
	return fmt.Sprintf("[%d,%d)", s.Start, s.End)
}

// MatchLine は少なくとも 1 件のマッチを含む入力行を表します。
// エンジンだけが生成し、生成後に変更されることはありません。
type MatchLine struct {
	LineNumber int    `json:"line_number" yaml:"line_number"`
	Line       string `json:"line" yaml:"line"`
	Spans      []Span `json:"spans" yaml:"spans"`
}

// Matched returns the matched substrings of the line in span order.
func (m MatchLine) Matched() []string {
	out := make([]string, 0, len(m.Spans))
	for _, sp := range m.Spans {
		out = append(out, m.Line[sp.Start:sp.End])
	}
	return out
}

// Segment はハイライト済み行の一片です。
type Segment struct {
	Text       string
	Emphasized bool
}
