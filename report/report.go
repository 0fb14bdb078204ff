package report

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/duke-git/lancet/v2/slice"
	"golang.org/x/text/language"

	"github.com/katalvlaran/wordgrid/dictionary"
)

// Reporter filters and orders candidates using an injected collation policy.
type Reporter struct {
	Collator Collator
	Lower    Lowercaser
}

// New returns a Reporter that lowercases and collates for tag.
func New(tag language.Tag) *Reporter {
	return &Reporter{
		Collator: NewCollator(tag),
		Lower:    NewLowercaser(tag),
	}
}

// Dedupe returns the distinct entries of words, first occurrence kept.
func Dedupe(words []string) []string {
	return slice.Unique(words)
}

// DropBlank returns words without empty or whitespace-only entries.
func DropBlank(words []string) []string {
	return slice.Filter(words, func(_ int, w string) bool {
		return strings.TrimSpace(w) != ""
	})
}

// Intersect returns the words contained in dict, preserving order.
func Intersect(words []string, dict dictionary.Set) []string {
	return slice.Filter(words, func(_ int, w string) bool {
		return dict.Contains(w)
	})
}

// Lowercase maps every word through rp.Lower into a new slice.
func (rp *Reporter) Lowercase(words []string) []string {
	return slice.Map(words, func(_ int, w string) string {
		return rp.Lower(w)
	})
}

// Candidates returns the distinct, non-blank, lowercased candidates: the full
// set of strings the grid can spell.
func (rp *Reporter) Candidates(raw []string) []string {
	// Dedupe before lowercasing to shrink the work, and again after because
	// "AB" and "ab" collapse.
	return Dedupe(rp.Lowercase(DropBlank(Dedupe(raw))))
}

// Report returns the dictionary words found among raw, ordered. The result is
// empty, never nil, when nothing matches.
func (rp *Reporter) Report(raw []string, dict dictionary.Set) []string {
	matches := Intersect(rp.Candidates(raw), dict)
	if matches == nil {
		matches = []string{}
	}
	return rp.Order(matches)
}

// Order returns a sorted copy of words: shorter words first, equal lengths
// by collation, then by bytes so the order is total.
func (rp *Reporter) Order(words []string) []string {
	out := slices.Clone(words)
	if out == nil {
		out = []string{}
	}
	slices.SortStableFunc(out, func(a, b string) int {
		if la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b); la != lb {
			return la - lb
		}
		if c := rp.Collator.Compare(a, b); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
	return out
}
