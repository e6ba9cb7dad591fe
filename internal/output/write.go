package output

import (
	"fmt"
	"io"

	"github.com/phyten/hlgrep/internal/model"
)

// Write dispatches to the writer for format. text uses opts; the structured
// formats never carry escape sequences.
func Write(w io.Writer, format Format, matches []model.MatchLine, opts TextOptions) error {
	switch format {
	case FormatText:
		return WriteText(w, matches, opts)
	case FormatJSON:
		return WriteJSON(w, matches)
	case FormatNDJSON:
		return WriteNDJSON(w, matches)
	case FormatCSV:
		return WriteCSV(w, matches)
	case FormatMarkdown:
		return WriteMarkdownTable(w, matches)
	case FormatYAML:
		return WriteYAML(w, matches)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}
