package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/katalvlaran/wordgrid/dfs"
	"github.com/katalvlaran/wordgrid/dictionary"
	"github.com/katalvlaran/wordgrid/gridgraph"
	"github.com/katalvlaran/wordgrid/report"
)

func TestDedupe(t *testing.T) {
	assert.Equal(t, []string{"ABC", "ACB"}, report.Dedupe([]string{"ABC", "ACB", "ABC", "ABC"}))
	assert.Empty(t, report.Dedupe(nil))
}

func TestDropBlank(t *testing.T) {
	assert.Equal(t, []string{"abc", " x "}, report.DropBlank([]string{"", "abc", "   ", "\t\n", " x ", " "}))
}

func TestLowercase_ExtendedLatin(t *testing.T) {
	rp := report.New(language.Swedish)
	assert.Equal(t, []string{"åäö", "säl", "cab"}, rp.Lowercase([]string{"ÅÄÖ", "SÄL", "CAB"}))
}

func TestIntersect_ExactMatch(t *testing.T) {
	dict := dictionary.NewSet("säl", "cab")
	assert.Equal(t, []string{"säl"}, report.Intersect([]string{"säl", "SÄL", "sal"}, dict))
	assert.Empty(t, report.Intersect([]string{"säl"}, dictionary.NewSet()))
}

func TestCandidates_FoldsCase(t *testing.T) {
	rp := report.New(language.Swedish)
	got := rp.Candidates([]string{"CAB", "cab", "CAB", " ", "ÖL"})
	assert.Equal(t, []string{"cab", "öl"}, got)
}

func TestReport_SingleMatchFromDuplicates(t *testing.T) {
	rp := report.New(language.Swedish)
	got := rp.Report([]string{"CAB", "ABC", "CAB", "BAC", "CAB"}, dictionary.NewSet("cab"))
	assert.Equal(t, []string{"cab"}, got)
}

func TestReport_EmptyInputs(t *testing.T) {
	rp := report.New(language.Swedish)

	got := rp.Report(nil, dictionary.NewSet("cab"))
	assert.NotNil(t, got)
	assert.Empty(t, got)

	got = rp.Report([]string{"CAB"}, dictionary.NewSet())
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestOrder_LengthThenSwedishCollation(t *testing.T) {
	rp := report.New(language.Swedish)
	got := rp.Order([]string{"ö", "öl", "ä", "a", "å", "z", "abc", "al"})
	assert.Equal(t, []string{"a", "z", "å", "ä", "ö", "al", "öl", "abc"}, got)
}

func TestOrder_LengthCountsLetters(t *testing.T) {
	rp := report.New(language.Swedish)
	// "åå" is 4 bytes but 2 letters; it must precede the 3-letter word.
	assert.Equal(t, []string{"åå", "abc"}, rp.Order([]string{"abc", "åå"}))
}

func TestOrder_DoesNotMutateInput(t *testing.T) {
	rp := report.New(language.Swedish)
	in := []string{"b", "a"}
	_ = rp.Order(in)
	assert.Equal(t, []string{"b", "a"}, in)
}

// reverseCollator sorts in reverse byte order to show the comparator is injected.
type reverseCollator struct{}

func (reverseCollator) Compare(a, b string) int {
	switch {
	case a > b:
		return -1
	case a < b:
		return 1
	}
	return 0
}

func TestOrder_InjectedCollator(t *testing.T) {
	rp := &report.Reporter{Collator: reverseCollator{}, Lower: report.NewLowercaser(language.Und)}
	assert.Equal(t, []string{"c", "b", "a", "ab"}, rp.Order([]string{"a", "ab", "b", "c"}))
}

func TestReport_EndToEndOnGrid(t *testing.T) {
	g, err := gridgraph.FromStrings([]string{"CA", "XB"}, gridgraph.Conn8)
	require.NoError(t, err)
	raw, err := dfs.Enumerate(g)
	require.NoError(t, err)

	rp := report.New(language.Swedish)
	got := rp.Report(raw, dictionary.NewSet("cab", "abc", "bax", "cabx", "xyz"))
	assert.Equal(t, []string{"abc", "bax", "cab", "cabx"}, got)
}

func TestParseLocale(t *testing.T) {
	tag, err := report.ParseLocale("")
	require.NoError(t, err)
	assert.Equal(t, report.DefaultLocale, tag)

	tag, err = report.ParseLocale("sv-SE")
	require.NoError(t, err)
	base, _ := tag.Base()
	assert.Equal(t, "sv", base.String())

	_, err = report.ParseLocale("not a tag!")
	assert.Error(t, err)
}
