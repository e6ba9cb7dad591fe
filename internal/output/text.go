package output

import (
	"bytes"
	"fmt"
	"io"

	"github.com/phyten/hlgrep/internal/highlight"
	"github.com/phyten/hlgrep/internal/model"
)

// TextOptions controls the human readable report.
type TextOptions struct {
	Highlighter highlight.Highlighter
	MaxColumns  int // 0 = unlimited
}

// WriteText writes "<line_number>:<rendered_line>\n" for every match.
// The report is rendered in full before anything reaches w; the first invalid
// span aborts it with nothing written.
func WriteText(w io.Writer, matches []model.MatchLine, opts TextOptions) error {
	var buf bytes.Buffer
	for _, m := range matches {
		segs, err := highlight.Segments(m.Line, m.Spans)
		if err != nil {
			return fmt.Errorf("line %d: %w", m.LineNumber, err)
		}
		segs = highlight.Truncate(segs, opts.MaxColumns, "…")
		fmt.Fprintf(&buf, "%d:%s\n", m.LineNumber, opts.Highlighter.Render(segs))
	}
	_, err := buf.WriteTo(w)
	return err
}

// WriteCount writes the number of matching lines.
func WriteCount(w io.Writer, matches []model.MatchLine) error {
	_, err := fmt.Fprintf(w, "%d\n", len(matches))
	return err
}
