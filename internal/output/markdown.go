package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/phyten/hlgrep/internal/highlight"
	"github.com/phyten/hlgrep/internal/model"
)

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"|", `\|`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
)

// WriteMarkdownTable renders matches as a GitHub Flavored Markdown table with
// matched text in bold.
func WriteMarkdownTable(w io.Writer, matches []model.MatchLine) error {
	if _, err := io.WriteString(w, "| LINE | TEXT |\n| ---: | --- |\n"); err != nil {
		return err
	}
	for _, m := range matches {
		segs, err := highlight.Segments(m.Line, m.Spans)
		if err != nil {
			return fmt.Errorf("line %d: %w", m.LineNumber, err)
		}
		if _, err := fmt.Fprintf(w, "| %d | %s |\n", m.LineNumber, markdownCell(segs)); err != nil {
			return err
		}
	}
	return nil
}

func markdownCell(segs []model.Segment) string {
	var b strings.Builder
	for _, seg := range segs {
		text := markdownEscaper.Replace(seg.Text)
		if seg.Emphasized {
			b.WriteString("**" + text + "**")
			continue
		}
		b.WriteString(text)
	}
	return b.String()
}
