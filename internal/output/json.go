package output

import (
	"encoding/json"
	"io"

	"github.com/phyten/hlgrep/internal/model"
)

type jsonReport struct {
	Matches []Record `json:"matches"`
	Total   int      `json:"total"`
}

// WriteJSON renders all matches as one indented JSON document.
func WriteJSON(w io.Writer, matches []model.MatchLine) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonReport{Matches: Records(matches), Total: len(matches)})
}

// WriteNDJSON streams matches as newline-delimited JSON objects.
func WriteNDJSON(w io.Writer, matches []model.MatchLine) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, rec := range Records(matches) {
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}
	return nil
}
