package plot

import (
	"math/rand/v2"
	"regexp"
)

const hexDigits = "0123456789ABCDEF"

var colorRe = regexp.MustCompile(`^#[0-9A-F]{6}$`)

// RandomColor returns a color of the form #RRGGBB with uppercase hex digits.
func RandomColor(rng *rand.Rand) string {
	b := make([]byte, 7)
	b[0] = '#'
	for i := 1; i < len(b); i++ {
		b[i] = hexDigits[rng.IntN(len(hexDigits))]
	}
	return string(b)
}

// RandomColors returns n independent random colors.
func RandomColors(rng *rand.Rand, n int) []string {
	colors := make([]string, n)
	for i := range colors {
		colors[i] = RandomColor(rng)
	}
	return colors
}

// IsColor reports whether s is an uppercase #RRGGBB color.
func IsColor(s string) bool { return colorRe.MatchString(s) }
