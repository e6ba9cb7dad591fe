package termcolor

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

type ColorMode int

const (
	ModeAuto ColorMode = iota
	ModeAlways
	ModeNever
)

func (m ColorMode) String() string {
	switch m {
	case ModeAlways:
		return "always"
	case ModeNever:
		return "never"
	default:
		return "auto"
	}
}

func ParseMode(v string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "auto":
		return ModeAuto, nil
	case "always", "yes", "force":
		return ModeAlways, nil
	case "never", "no", "none":
		return ModeNever, nil
	default:
		return ModeAuto, fmt.Errorf("unknown color mode: %s", v)
	}
}

type Profile int

const (
	ProfileBasic8 Profile = iota
	ProfileANSI256
	ProfileTrueColor
)

func EnvMap(values []string) map[string]string {
	env := make(map[string]string, len(values))
	for _, entry := range values {
		if entry == "" {
			continue
		}
		key, value, _ := strings.Cut(entry, "=")
		env[key] = value
	}
	return env
}

// DetectMode resolves ModeAuto into ModeAlways or ModeNever for out.
//
// Priority order (first match wins):
//  1. TERM=dumb suppresses colors entirely.
//  2. NO_COLOR disables colors.
//  3. CLICOLOR=0 disables colors.
//  4. CLICOLOR_FORCE / FORCE_COLOR with any non-zero value force-enable colors.
//  5. Otherwise colors are emitted only when out is a terminal.
func DetectMode(out io.Writer, env map[string]string) ColorMode {
	if out == nil {
		return ModeNever
	}
	if v := strings.ToLower(strings.TrimSpace(env["TERM"])); v == "dumb" {
		return ModeNever
	}
	if v := strings.TrimSpace(env["NO_COLOR"]); v != "" {
		return ModeNever
	}
	if v := strings.TrimSpace(env["CLICOLOR"]); v == "0" {
		return ModeNever
	}
	if forceColor(env["CLICOLOR_FORCE"]) || forceColor(env["FORCE_COLOR"]) {
		return ModeAlways
	}
	if isTerminal(out) {
		return ModeAlways
	}
	return ModeNever
}

// Enabled reports whether colors should be emitted. An explicit mode wins;
// ModeAuto falls back to DetectMode.
func Enabled(mode ColorMode, out io.Writer, env map[string]string) bool {
	switch mode {
	case ModeAlways:
		return true
	case ModeNever:
		return false
	default:
		return DetectMode(out, env) == ModeAlways
	}
}

// DetectProfile inspects COLORTERM/TERM to determine the best-fit color profile.
func DetectProfile(env map[string]string) Profile {
	if v := strings.ToLower(strings.TrimSpace(env["COLORTERM"])); v != "" {
		if strings.Contains(v, "truecolor") || strings.Contains(v, "24bit") || strings.Contains(v, "24-bit") {
			return ProfileTrueColor
		}
	}
	if v := strings.ToLower(strings.TrimSpace(env["TERM"])); strings.Contains(v, "256color") {
		return ProfileANSI256
	}
	return ProfileBasic8
}

// only *os.File can be a terminal; buffers and pipes in tests never are.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func forceColor(v string) bool {
	v = strings.TrimSpace(v)
	return v != "" && v != "0"
}
