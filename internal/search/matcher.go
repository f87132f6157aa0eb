package search

import (
	"unicode"
	"unicode/utf8"
)

// Span is a half-open [Start, End) byte range into the raw entry name,
// marking characters consumed by the match. Byte offsets keep the core
// free of rendering concerns; the UI maps them to grapheme clusters.
type Span struct {
	Start int
	End   int
}

// Match ties a listing index to the byte ranges to highlight in its name.
type Match struct {
	Index int
	Spans []Span
}

// Recompute runs the matcher over every name and returns matches in
// listing order. It is a pure function of its inputs; the empty query
// yields nil (not searching).
func Recompute(names []string, query string, cm CaseMode, gm GapMode) []Match {
	if query == "" {
		return nil
	}
	sensitive := EffectiveCase(cm, query) == CaseSensitive

	var matches []Match
	for i, name := range names {
		if spans, ok := matchName(name, query, sensitive, gm); ok {
			matches = append(matches, Match{Index: i, Spans: spans})
		}
	}
	return matches
}

// matchName reports whether query matches name under the given rules and
// returns the merged highlight spans of the greedy leftmost assignment.
func matchName(name, query string, sensitive bool, gm GapMode) ([]Span, bool) {
	var spans []Span

	pos := 0
	first := true

	for _, q := range query {
		found := false
		off := pos
		for off < len(name) {
			r, size := utf8.DecodeRuneInString(name[off:])
			if runesEqual(q, r, sensitive) {
				spans = append(spans, Span{Start: off, End: off + size})
				pos = off + size
				found = true
				break
			}
			// The first character is anchored to the start of the name
			// unless gaps may appear anywhere; NoGap forbids gaps at
			// every position.
			if first && gm != GapAnywhere {
				return nil, false
			}
			if gm == NoGap {
				return nil, false
			}
			off += size
		}
		if !found {
			return nil, false
		}
		first = false
	}

	return mergeSpans(spans), true
}

func runesEqual(a, b rune, sensitive bool) bool {
	if sensitive {
		return a == b
	}
	return unicode.ToLower(a) == unicode.ToLower(b)
}

// mergeSpans collapses adjacent or overlapping spans so the renderer
// sees one range per contiguous highlighted run.
func mergeSpans(spans []Span) []Span {
	if len(spans) == 0 {
		return nil
	}
	merged := spans[:1]
	for _, next := range spans[1:] {
		last := &merged[len(merged)-1]
		if next.Start <= last.End {
			if next.End > last.End {
				last.End = next.End
			}
			continue
		}
		merged = append(merged, next)
	}
	return merged
}

// Indices returns just the listing indices of a match set.
func Indices(matches []Match) []int {
	out := make([]int, len(matches))
	for i, m := range matches {
		out[i] = m.Index
	}
	return out
}
