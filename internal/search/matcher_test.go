package search

import (
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fruitNames = []string{"Apple", "banana", "Avocado"}

func TestRecomputeEmptyQuery(t *testing.T) {
	assert.Nil(t, Recompute(fruitNames, "", SmartCase, GapFromStart))
}

func TestSmartCaseLowercaseQueryIsInsensitive(t *testing.T) {
	matches := Recompute(fruitNames, "a", SmartCase, GapFromStart)
	// "banana" is out: gap-from-start anchors the first query character
	// to the first character of the name.
	require.Len(t, matches, 2)
	assert.Equal(t, []int{0, 2}, Indices(matches))
	for _, m := range matches {
		assert.Equal(t, []Span{{Start: 0, End: 1}}, m.Spans)
	}
}

func TestSmartCaseUppercaseQueryIsSensitive(t *testing.T) {
	matches := Recompute(fruitNames, "Av", SmartCase, GapFromStart)
	require.Len(t, matches, 1)
	assert.Equal(t, 2, matches[0].Index)
	assert.Equal(t, []Span{{Start: 0, End: 2}}, matches[0].Spans)
}

func TestSmartCaseEquivalence(t *testing.T) {
	names := []string{"Documents", "downloads", "Desktop", "dotfiles"}
	for _, query := range []string{"do", "Do", "DESK", "desk", "D"} {
		smart := Recompute(names, query, SmartCase, GapAnywhere)
		var want []Match
		if strings.ContainsFunc(query, unicode.IsUpper) {
			want = Recompute(names, query, CaseSensitive, GapAnywhere)
		} else {
			want = Recompute(names, query, IgnoreCase, GapAnywhere)
		}
		assert.Equal(t, want, smart, "query %q", query)
	}
}

func TestGapModeMonotonicRelaxation(t *testing.T) {
	names := []string{
		"abc", "axbxc", "xabc", "xaxbxc", "ABC", "cab",
		"a b c", "abcabc", "bca", "aabbcc",
	}
	queries := []string{"abc", "ab", "c", "ac", "b"}

	subset := func(inner, outer []int) bool {
		set := map[int]bool{}
		for _, i := range outer {
			set[i] = true
		}
		for _, i := range inner {
			if !set[i] {
				return false
			}
		}
		return true
	}

	for _, q := range queries {
		noGap := Indices(Recompute(names, q, IgnoreCase, NoGap))
		fromStart := Indices(Recompute(names, q, IgnoreCase, GapFromStart))
		anywhere := Indices(Recompute(names, q, IgnoreCase, GapAnywhere))
		assert.True(t, subset(noGap, fromStart), "NoGap ⊄ GapFromStart for %q", q)
		assert.True(t, subset(fromStart, anywhere), "GapFromStart ⊄ GapAnywhere for %q", q)
	}
}

func TestMatchesAreSubsequences(t *testing.T) {
	names := []string{"projects", "Pictures", "public_html", "tmp", ".config"}
	for _, q := range []string{"pr", "pub", "cfg", "ts", "p"} {
		for _, m := range Recompute(names, q, IgnoreCase, GapAnywhere) {
			name := strings.ToLower(names[m.Index])
			qi := 0
			for _, r := range name {
				if qi < len(q) && r == rune(q[qi]) {
					qi++
				}
			}
			assert.Equal(t, len(q), qi, "%q is not a subsequence of %q", q, names[m.Index])
		}
	}
}

func TestNoGapRequiresContiguousPrefix(t *testing.T) {
	names := []string{"abcdef", "abxcdef", "xabc"}
	matches := Recompute(names, "abc", IgnoreCase, NoGap)
	assert.Equal(t, []int{0}, Indices(matches))
	assert.Equal(t, []Span{{Start: 0, End: 3}}, matches[0].Spans)
}

func TestGapFromStartAnchorsFirstCharacter(t *testing.T) {
	names := []string{"main.go", "domain.go", "Makefile"}
	matches := Recompute(names, "mg", IgnoreCase, GapFromStart)
	// "domain.go" contains m...g but does not start with m.
	assert.Equal(t, []int{0}, Indices(matches))
	assert.Equal(t, []Span{{Start: 0, End: 1}, {Start: 5, End: 6}}, matches[0].Spans)
}

func TestGapAnywhereLeftmostAssignment(t *testing.T) {
	matches := Recompute([]string{"banana"}, "na", IgnoreCase, GapAnywhere)
	require.Len(t, matches, 1)
	// Greedy leftmost: 'n' at byte 2, 'a' at byte 3, merged into one run.
	assert.Equal(t, []Span{{Start: 2, End: 4}}, matches[0].Spans)
}

func TestSpansOnMultibyteNames(t *testing.T) {
	matches := Recompute([]string{"héllo"}, "ho", IgnoreCase, GapAnywhere)
	require.Len(t, matches, 1)
	// 'h' = byte 0, 'é' occupies bytes 1-2, 'o' sits at byte 5.
	assert.Equal(t, []Span{{Start: 0, End: 1}, {Start: 5, End: 6}}, matches[0].Spans)
}

func TestCaseSensitiveExactCompare(t *testing.T) {
	matches := Recompute(fruitNames, "a", CaseSensitive, GapAnywhere)
	// "Apple" has no lowercase 'a'.
	assert.Equal(t, []int{1, 2}, Indices(matches))
}

func TestEffectiveCase(t *testing.T) {
	assert.Equal(t, CaseSensitive, EffectiveCase(SmartCase, "Av"))
	assert.Equal(t, IgnoreCase, EffectiveCase(SmartCase, "av"))
	assert.Equal(t, IgnoreCase, EffectiveCase(SmartCase, ""))
	assert.Equal(t, CaseSensitive, EffectiveCase(CaseSensitive, "av"))
	assert.Equal(t, IgnoreCase, EffectiveCase(IgnoreCase, "AV"))
}

func TestModeCycling(t *testing.T) {
	assert.Equal(t, CaseSensitive, IgnoreCase.Next())
	assert.Equal(t, SmartCase, CaseSensitive.Next())
	assert.Equal(t, IgnoreCase, SmartCase.Next())

	assert.Equal(t, NoGap, GapFromStart.Next())
	assert.Equal(t, GapAnywhere, NoGap.Next())
	assert.Equal(t, GapFromStart, GapAnywhere.Next())
}

func TestModeLabels(t *testing.T) {
	assert.Equal(t, "smart case", SmartCase.String())
	assert.Equal(t, "case sensitive", CaseSensitive.String())
	assert.Equal(t, "ignore case", IgnoreCase.String())
	assert.Equal(t, "gap search from start", GapFromStart.String())
	assert.Equal(t, "normal search", NoGap.String())
	assert.Equal(t, "gap search anywhere", GapAnywhere.String())
}
