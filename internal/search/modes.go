// Package search implements incremental gap/case matching over entry names.
package search

import "unicode"

// CaseMode controls how query characters are compared against entry names.
type CaseMode int

// Case modes. SmartCase is the default: case-sensitive only while the
// query contains an uppercase rune.
const (
	SmartCase CaseMode = iota
	CaseSensitive
	IgnoreCase
)

// Next cycles to the following case mode.
func (m CaseMode) Next() CaseMode {
	switch m {
	case IgnoreCase:
		return CaseSensitive
	case CaseSensitive:
		return SmartCase
	default:
		return IgnoreCase
	}
}

func (m CaseMode) String() string {
	switch m {
	case CaseSensitive:
		return "case sensitive"
	case IgnoreCase:
		return "ignore case"
	default:
		return "smart case"
	}
}

// GapMode controls where gaps between matched characters are permitted.
type GapMode int

// Gap modes. GapFromStart is the default.
const (
	// GapFromStart anchors the first query character to the first
	// character of the name; gaps are allowed after that.
	GapFromStart GapMode = iota
	// NoGap requires the query to match contiguously from the start of
	// the name. Anchoring at the start keeps NoGap matches a subset of
	// GapFromStart matches.
	NoGap
	// GapAnywhere allows an order-preserving subsequence match anywhere.
	GapAnywhere
)

// Next cycles to the following gap mode.
func (m GapMode) Next() GapMode {
	switch m {
	case GapFromStart:
		return NoGap
	case NoGap:
		return GapAnywhere
	default:
		return GapFromStart
	}
}

func (m GapMode) String() string {
	switch m {
	case NoGap:
		return "normal search"
	case GapAnywhere:
		return "gap search anywhere"
	default:
		return "gap search from start"
	}
}

// EffectiveCase resolves SmartCase against the current query: sensitive
// only if the query contains an uppercase rune. Re-evaluated on every
// query change, not fixed at search start.
func EffectiveCase(m CaseMode, query string) CaseMode {
	if m != SmartCase {
		return m
	}
	for _, r := range query {
		if unicode.IsUpper(r) {
			return CaseSensitive
		}
	}
	return IgnoreCase
}
