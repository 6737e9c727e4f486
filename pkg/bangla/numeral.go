package bangla

import (
	"strconv"
	"strings"
)

var digits = [10]rune{'০', '১', '২', '৩', '৪', '৫', '৬', '৭', '৮', '৯'}

// Digits replaces every ASCII decimal digit in s with its Bengali glyph.
// Everything else (sign, decimal point, letters) passes through unchanged.
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 3)
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(digits[r-'0'])
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Itoa formats n in Bengali digits, e.g. 110 -> "১১০".
func Itoa(n int64) string {
	return Digits(strconv.FormatInt(n, 10))
}

// FormatFloat formats a quantity with the shortest representation, so 2 is "২"
// and 2.5 is "২.৫".
func FormatFloat(f float64) string {
	return Digits(strconv.FormatFloat(f, 'f', -1, 64))
}

// ToASCII maps Bengali digit glyphs back to ASCII digits.
func ToASCII(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '০' && r <= '৯' {
			b.WriteRune('0' + (r - '০'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
