package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/phyten/hlgrep/internal/model"
)

// WriteCSV renders matches as RFC 4180 compliant CSV (including CRLF endings).
// Spans are encoded as "start-end" pairs joined by ";".
func WriteCSV(w io.Writer, matches []model.MatchLine) error {
	writer := csv.NewWriter(w)
	writer.UseCRLF = true
	if err := writer.Write([]string{"line_number", "line", "spans"}); err != nil {
		return err
	}
	for _, m := range matches {
		row := []string{strconv.Itoa(m.LineNumber), m.Line, formatSpans(m.Spans)}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func formatSpans(spans []model.Span) string {
	parts := make([]string, len(spans))
	for i, sp := range spans {
		parts[i] = fmt.Sprintf("%d-%d", sp.Start, sp.End)
	}
	return strings.Join(parts, ";")
}
