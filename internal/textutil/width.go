package textutil

import (
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// ANSI escape sequences (covers common CSI and OSC forms).
var ansiRe = regexp.MustCompile(`\x1b\[[0-?]*[ -/]*[@-~]|\x1b\][^\x07\x1b]*(?:\x07|\x1b\\)`)

// StripANSI removes terminal escape sequences from s.
func StripANSI(s string) string {
	if s == "" {
		return ""
	}
	if !strings.ContainsRune(s, 0x1b) {
		return s
	}
	return ansiRe.ReplaceAllString(s, "")
}

// VisibleWidth returns terminal display width (wcwidth-based).
func VisibleWidth(s string) int {
	if s == "" {
		return 0
	}
	g := uniseg.NewGraphemes(StripANSI(s))
	width := 0
	for g.Next() {
		width += runewidth.StringWidth(g.Str())
	}
	return width
}

// TakeWidth returns the longest prefix of s whose display width does not
// exceed w, never splitting a grapheme cluster, together with that width.
// Escape sequences count as zero columns, the same as in VisibleWidth.
func TakeWidth(s string, w int) (string, int) {
	if s == "" || w <= 0 {
		return "", 0
	}
	var escapes [][]int
	if strings.ContainsRune(s, 0x1b) {
		escapes = ansiRe.FindAllStringIndex(s, -1)
	}
	escapes = append(escapes, []int{len(s), len(s)})

	used, pos := 0, 0
	for _, loc := range escapes {
		n, cw, whole := takeGraphemes(s[pos:loc[0]], w-used)
		used += cw
		if !whole {
			return s[:pos+n], used
		}
		pos = loc[1]
	}
	return s, used
}

// takeGraphemes reports the byte length and width of the prefix of s that
// fits in w columns, and whether that prefix is all of s.
func takeGraphemes(s string, w int) (int, int, bool) {
	g := uniseg.NewGraphemes(s)
	used, end := 0, 0
	for g.Next() {
		segW := runewidth.StringWidth(g.Str())
		if used+segW > w {
			return end, used, false
		}
		used += segW
		_, end = g.Positions()
	}
	return end, used, true
}
