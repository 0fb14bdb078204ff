package report

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultLocale is the locale used when none is configured.
var DefaultLocale = language.Swedish

// Collator orders two strings: negative if a sorts before b, zero if they are
// equivalent, positive otherwise.
type Collator interface {
	Compare(a, b string) int
}

// Lowercaser maps a string to lowercase.
type Lowercaser func(string) string

// textCollator adapts *collate.Collator to Collator.
type textCollator struct {
	c *collate.Collator
}

func (t *textCollator) Compare(a, b string) int {
	return t.c.CompareString(a, b)
}

// NewCollator returns a case-insensitive collator for tag.
func NewCollator(tag language.Tag) Collator {
	return &textCollator{c: collate.New(tag, collate.IgnoreCase)}
}

// NewLowercaser returns the lowercase mapping for tag.
func NewLowercaser(tag language.Tag) Lowercaser {
	caser := cases.Lower(tag)
	return func(s string) string {
		return caser.String(s)
	}
}

// ParseLocale parses a BCP 47 tag such as "sv-SE"; "" yields DefaultLocale.
func ParseLocale(s string) (language.Tag, error) {
	if s == "" {
		return DefaultLocale, nil
	}
	return language.Parse(s)
}
