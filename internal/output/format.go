package output

import (
	"fmt"
	"strings"

	"github.com/phyten/hlgrep/internal/model"
)

type Format string

const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatNDJSON   Format = "ndjson"
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "markdown"
	FormatYAML     Format = "yaml"
)

// ParseFormat canonicalizes a user supplied format name.
func ParseFormat(raw string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "text", "plain":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "ndjson", "jsonl":
		return FormatNDJSON, nil
	case "csv":
		return FormatCSV, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown output format: %s", raw)
	}
}

// Record は構造化出力での 1 件分です。
type Record struct {
	LineNumber int          `json:"line_number" yaml:"line_number"`
	Line       string       `json:"line" yaml:"line"`
	Spans      []model.Span `json:"spans" yaml:"spans"`
	Matched    []string     `json:"matched" yaml:"matched"`
}

func Records(matches []model.MatchLine) []Record {
	out := make([]Record, 0, len(matches))
	for _, m := range matches {
		out = append(out, Record{
			LineNumber: m.LineNumber,
			Line:       m.Line,
			Spans:      m.Spans,
			Matched:    m.Matched(),
		})
	}
	return out
}
