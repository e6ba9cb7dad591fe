package output

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/phyten/hlgrep/internal/model"
)

// WriteYAML renders matches as a YAML sequence of records.
func WriteYAML(w io.Writer, matches []model.MatchLine) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Records(matches)); err != nil {
		_ = enc.Close()
		return err
	}
	return enc.Close()
}
