// Package normalize provides the name normalizer applied to decoded qualifiers
// Pipeline order
// 1 drop invalid UTF-8 bytes and control runes
// 2 title case every word (Unicode aware or legacy ASCII only)
// 3 collapse whitespace runs to single spaces and trim
package normalize

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Casing selects how letters are re-cased
type Casing uint8

const (
	// Unicode title cases every letter class through x/text (Ñ, É, Ø behave)
	Unicode Casing = iota

	// ASCII only re-cases ASCII letters and passes every other rune through untouched,
	// so "PEÑA" becomes "PeÑa" as in the legacy output. Words are split on whitespace
	// alone: "DELA-CRUZ" becomes "Dela-cruz", where the legacy tool gave "Dela Cruz".
	ASCII
)

// String returns the config spelling of the casing
func (c Casing) String() string {
	if c == ASCII {
		return "ascii"
	}
	return "unicode"
}

// ParseCasing maps a config value to a Casing, defaulting to Unicode
func ParseCasing(s string) Casing {
	if strings.EqualFold(strings.TrimSpace(s), "ascii") {
		return ASCII
	}
	return Unicode
}

// cases.Caser keeps state between calls, so each goroutine borrows its own
var titlePool = sync.Pool{
	New: func() any {
		c := cases.Title(language.Und)
		return &c
	},
}

// TitleCase returns s with each word capitalized and the rest lowercased
// the result is stable: TitleCase(TitleCase(s)) == TitleCase(s)
func TitleCase(s string, mode Casing) string {
	if s == "" {
		return ""
	}
	s = stripControls(s)

	switch mode {
	case ASCII:
		s = asciiTitle(s)
	default:
		c := titlePool.Get().(*cases.Caser)
		s = c.String(s)
		titlePool.Put(c)
	}
	return collapseSpaces(s)
}

// asciiTitle upper cases the first ASCII letter of each whitespace separated word
// and lower cases the remaining ASCII letters
func asciiTitle(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	start := true
	for _, r := range s {
		if unicode.IsSpace(r) {
			start = true
			b.WriteRune(r)
			continue
		}
		switch {
		case start && r >= 'a' && r <= 'z':
			r -= 'a' - 'A'
		case !start && r >= 'A' && r <= 'Z':
			r += 'a' - 'A'
		}
		start = false
		b.WriteRune(r)
	}
	return b.String()
}

// stripControls drops invalid UTF-8 bytes, C0/C1 controls and DEL
// tabs and newlines become spaces so word boundaries survive
func stripControls(s string) string {
	clean := true
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if (r == utf8.RuneError && size == 1) || unicode.IsControl(r) {
			clean = false
			break
		}
		i += size
	}
	if clean {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size
		switch {
		case r == utf8.RuneError && size == 1:
		case r == '\t' || r == '\n' || r == '\r':
			b.WriteByte(' ')
		case unicode.IsControl(r):
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// collapseSpaces converts whitespace runs to a single ASCII space and trims the edges
func collapseSpaces(s string) string {
	if s == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	inWS := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			inWS = true
			continue
		}
		if inWS && b.Len() > 0 {
			b.WriteByte(' ')
		}
		inWS = false
		b.WriteRune(r)
	}
	return b.String()
}
