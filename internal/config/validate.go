package config

import (
	"fmt"

	"github.com/phyten/hlgrep/internal/output"
	"github.com/phyten/hlgrep/internal/termcolor"
)

// Resolved carries Settings with the enumerated values parsed.
type Resolved struct {
	Settings
	ColorMode termcolor.ColorMode
	Format    output.Format
}

func Validate(s Settings) (Resolved, error) {
	r := Resolved{Settings: s}
	mode, err := termcolor.ParseMode(s.Color)
	if err != nil {
		return r, err
	}
	format, err := output.ParseFormat(s.Output)
	if err != nil {
		return r, err
	}
	if s.MaxColumns < 0 {
		return r, fmt.Errorf("max-columns must be >= 0")
	}
	r.ColorMode = mode
	r.Format = format
	return r, nil
}
