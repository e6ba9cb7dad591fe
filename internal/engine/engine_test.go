package engine

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/phyten/hlgrep/internal/model"
)

type fixtureFile struct {
	Cases []fixtureCase `toml:"case"`
}

type fixtureCase struct {
	Name       string        `toml:"name"`
	Mode       string        `toml:"mode"`
	IgnoreCase bool          `toml:"ignore_case"`
	Input      string        `toml:"input"`
	Pattern    string        `toml:"pattern"`
	Want       []fixtureLine `toml:"want"`
}

type fixtureLine struct {
	LineNumber int     `toml:"line_number"`
	Line       string  `toml:"line"`
	Spans      [][]int `toml:"spans"`
}

func loadFixtures(t *testing.T) []fixtureCase {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "cases.toml"))
	if err != nil {
		t.Fatalf("read fixtures: %v", err)
	}
	var f fixtureFile
	if err := toml.Unmarshal(data, &f); err != nil {
		t.Fatalf("decode fixtures: %v", err)
	}
	if len(f.Cases) == 0 {
		t.Fatal("no fixture cases decoded")
	}
	return f.Cases
}

func (c fixtureCase) wantLines() []model.MatchLine {
	var out []model.MatchLine
	for _, w := range c.Want {
		ml := model.MatchLine{LineNumber: w.LineNumber, Line: w.Line}
		for _, sp := range w.Spans {
			ml.Spans = append(ml.Spans, model.Span{Start: sp[0], End: sp[1]})
		}
		out = append(out, ml)
	}
	return out
}

func TestSearchFixtures(t *testing.T) {
	for _, tc := range loadFixtures(t) {
		tc := tc
		t.Run(tc.Name, func(t *testing.T) {
			var (
				got []model.MatchLine
				err error
			)
			switch tc.Mode {
			case "literal":
				got, err = SearchLiteral(tc.Input, tc.Pattern)
			case "fold":
				got, err = SearchLiteralFold(tc.Input, tc.Pattern)
			case "regex":
				got, err = SearchRegex(tc.Input, tc.Pattern, tc.IgnoreCase)
			default:
				t.Fatalf("unknown mode %q", tc.Mode)
			}
			if err != nil {
				t.Fatalf("search failed: %v", err)
			}
			if diff := cmp.Diff(tc.wantLines(), got); diff != "" {
				t.Fatalf("matches mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEmptyPatternIsAnError(t *testing.T) {
	calls := map[string]func() ([]model.MatchLine, error){
		"literal":     func() ([]model.MatchLine, error) { return SearchLiteral("abc", "") },
		"fold":        func() ([]model.MatchLine, error) { return SearchLiteralFold("abc", "") },
		"regex":       func() ([]model.MatchLine, error) { return SearchRegex("abc", "", false) },
		"regex-icase": func() ([]model.MatchLine, error) { return SearchRegex("abc", "", true) },
	}
	for name, call := range calls {
		got, err := call()
		if !errors.Is(err, model.ErrEmptyPattern) {
			t.Fatalf("%s: expected ErrEmptyPattern, got %v", name, err)
		}
		if got != nil {
			t.Fatalf("%s: expected nil result, got %v", name, got)
		}
	}
}

func TestSearchRegexInvalidPattern(t *testing.T) {
	for _, pat := range []string{"(", "[a-", "a{2,1}", "*"} {
		got, err := SearchRegex("anything", pat, false)
		if got != nil {
			t.Fatalf("%q: expected no partial result, got %v", pat, got)
		}
		var re *model.RegexError
		if !errors.As(err, &re) {
			t.Fatalf("%q: expected RegexError, got %v", pat, err)
		}
		if re.Pattern != pat {
			t.Fatalf("%q: pattern not recorded: %q", pat, re.Pattern)
		}
		if !strings.Contains(err.Error(), "regex error") {
			t.Fatalf("%q: diagnostic missing: %v", pat, err)
		}
	}
}

func TestLiteralSpansMatchPattern(t *testing.T) {
	input := "abcabcab\nxx abab abab\n\nab\nnothing here\nbabababa"
	for _, pat := range []string{"ab", "aba", "abab", "b", "x", "nothing"} {
		got, err := SearchLiteral(input, pat)
		if err != nil {
			t.Fatalf("%q: %v", pat, err)
		}
		for _, ml := range got {
			if len(ml.Spans) == 0 {
				t.Fatalf("%q: line %d built with zero spans", pat, ml.LineNumber)
			}
			prevEnd := 0
			for i, sp := range ml.Spans {
				if ml.Line[sp.Start:sp.End] != pat {
					t.Fatalf("%q: span %v covers %q", pat, sp, ml.Line[sp.Start:sp.End])
				}
				if i > 0 && sp.Start < prevEnd {
					t.Fatalf("%q: spans overlap on line %d: %v", pat, ml.LineNumber, ml.Spans)
				}
				prevEnd = sp.End
			}
		}
	}
}

func TestScanLineNumbering(t *testing.T) {
	lit, err := NewLiteral("x")
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		name  string
		input string
		want  []int
	}{
		{"empty input", "", nil},
		{"trailing newline adds no line", "x\n", []int{1}},
		{"unterminated last line", "a\nx", []int{2}},
		{"blank lines count", "\n\nx\n\n", []int{3}},
		{"every line", "x\nx\nx", []int{1, 2, 3}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got []int
			for _, ml := range Scan(tc.input, lit) {
				got = append(got, ml.LineNumber)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("line numbers (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFoldMatchesAcrossCaseOnly(t *testing.T) {
	got, err := SearchLiteralFold("Alpha ALPHA alpha beta", "alpha")
	if err != nil {
		t.Fatal(err)
	}
	want := []model.MatchLine{{
		LineNumber: 1,
		Line:       "Alpha ALPHA alpha beta",
		Spans:      []model.Span{{Start: 0, End: 5}, {Start: 6, End: 11}, {Start: 12, End: 17}},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
	// Kelvin sign folds to k but is three bytes wide.
	got, err = SearchLiteralFold("\u212a", "k")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Spans[0] != (model.Span{Start: 0, End: 3}) {
		t.Fatalf("kelvin fold mismatch: %+v", got)
	}
}

func TestRunSelectsMatcher(t *testing.T) {
	input := "Alpha\nalpha\na.pha"
	cases := []struct {
		name string
		opts Options
		want []int
	}{
		{"literal", Options{Pattern: "alpha"}, []int{2}},
		{"literal fold", Options{Pattern: "alpha", IgnoreCase: true}, []int{1, 2}},
		{"literal dot", Options{Pattern: "a.pha"}, []int{3}},
		{"regex dot", Options{Pattern: "a.pha", Regex: true}, []int{2, 3}},
		{"regex icase", Options{Pattern: "^a", Regex: true, IgnoreCase: true}, []int{1, 2, 3}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := Run(input, tc.opts)
			if err != nil {
				t.Fatalf("Run: %v", err)
			}
			if res.Total != len(res.Matches) {
				t.Fatalf("Total %d != len(Matches) %d", res.Total, len(res.Matches))
			}
			var got []int
			for _, ml := range res.Matches {
				got = append(got, ml.LineNumber)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("(-want +got):\n%s", diff)
			}
		})
	}
	if _, err := Run(input, Options{}); !errors.Is(err, model.ErrEmptyPattern) {
		t.Fatalf("expected ErrEmptyPattern, got %v", err)
	}
}

func TestNewMatcherVariants(t *testing.T) {
	cases := []struct {
		opts Options
		want string
	}{
		{Options{Pattern: "a"}, "*engine.Literal"},
		{Options{Pattern: "a", IgnoreCase: true}, "*engine.Fold"},
		{Options{Pattern: "a", Regex: true}, "*engine.Pattern"},
		{Options{Pattern: "a", Regex: true, IgnoreCase: true}, "*engine.Pattern"},
	}
	for _, tc := range cases {
		m, err := NewMatcher(tc.opts)
		if err != nil {
			t.Fatalf("%+v: %v", tc.opts, err)
		}
		var got string
		switch m.(type) {
		case *Literal:
			got = "*engine.Literal"
		case *Fold:
			got = "*engine.Fold"
		case *Pattern:
			got = "*engine.Pattern"
		}
		if got != tc.want {
			t.Fatalf("%+v: got %s want %s", tc.opts, got, tc.want)
		}
	}
}
