package termcolor

import "math"

type RGB struct {
	R uint8
	G uint8
	B uint8
}

// MinContrast is the WCAG AA ratio for normal text.
const MinContrast = 4.5

var (
	darkBackground  = RGB{0, 0, 0}
	lightBackground = RGB{255, 255, 255}
)

// Background is the assumed terminal background for a scheme.
func Background(s Scheme) RGB {
	if s == SchemeLight {
		return lightBackground
	}
	return darkBackground
}

func srgbToLinear(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

func luminance(c RGB) float64 {
	r := srgbToLinear(float64(c.R) / 255.0)
	g := srgbToLinear(float64(c.G) / 255.0)
	b := srgbToLinear(float64(c.B) / 255.0)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// ContrastRatio は WCAG 2.x のコントラスト比 (1〜21) を返します。
func ContrastRatio(fg, bg RGB) float64 {
	l1 := luminance(fg)
	l2 := luminance(bg)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// Readable returns the first candidate reaching MinContrast against bg,
// or the one with the highest ratio when none does.
func Readable(bg RGB, candidates ...RGB) RGB {
	var best RGB
	bestRatio := -1.0
	for _, c := range candidates {
		ratio := ContrastRatio(c, bg)
		if ratio >= MinContrast {
			return c
		}
		if ratio > bestRatio {
			best, bestRatio = c, ratio
		}
	}
	return best
}
