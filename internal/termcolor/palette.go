package termcolor

import (
	"strconv"
	"strings"
)

type Scheme int

const (
	SchemeUnknown Scheme = iota
	SchemeDark
	SchemeLight
)

// DetectScheme guesses the terminal background from COLORFGBG ("fg;bg" or
// "fg;default;bg"), then from a TERM name containing "light".
func DetectScheme(env map[string]string) Scheme {
	if raw := strings.TrimSpace(env["COLORFGBG"]); raw != "" {
		parts := strings.Split(raw, ";")
		bgRaw := strings.TrimSpace(parts[len(parts)-1])
		if bg, err := strconv.Atoi(bgRaw); err == nil && bg >= 0 {
			if bg >= 7 && bg != 8 {
				return SchemeLight
			}
			return SchemeDark
		}
	}
	if strings.Contains(strings.ToLower(env["TERM"]), "light") {
		return SchemeLight
	}
	return SchemeDark
}

// MatchStyle is the emphasis used for matched text: bold yellow on dark
// backgrounds, bold dark orange on light ones where yellow is unreadable.
func MatchStyle(scheme Scheme, profile Profile) Style {
	light := scheme == SchemeLight
	switch profile {
	case ProfileTrueColor:
		c := Readable(Background(scheme), RGB{255, 215, 0}, RGB{175, 95, 0})
		rgb := [3]uint8{c.R, c.G, c.B}
		return Style{Bold: true, FGTrue: &rgb}
	case ProfileANSI256:
		idx := 220
		if light {
			idx = 130
		}
		return Style{Bold: true, FG256: &idx}
	default:
		color := 3
		if light {
			color = 1
		}
		return Style{Bold: true, FGBasic: &color}
	}
}
