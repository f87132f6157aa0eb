package nav

import "github.com/chmouel/lazycd/internal/search"

// Row is one renderable line of the main window.
type Row struct {
	Name          string
	IsDir         bool
	SymlinkTarget string
	Spans         []search.Span
	IsMatch       bool
	IsCursor      bool
}

// Snapshot is the read-only view the renderer consumes after every
// intent. Rows covers only the viewport window.
type Snapshot struct {
	Path      string
	Query     string
	Searching bool
	Filtering bool

	CaseLabel string
	GapLabel  string

	Cursor int
	Scroll int

	Total    int
	Matching int
	Visible  int
	// MatchPos is the 1-based position of the cursor within the match
	// set, or 0 when not on a match.
	MatchPos int

	Status string
	Rows   []Row
}

// Snapshot assembles the renderer view for the current viewport.
func (n *Navigator) Snapshot() Snapshot {
	count := n.visibleCount()
	height := n.cs.height
	if height < 1 {
		height = 1
	}

	rows := make([]Row, 0, height)
	for vi := n.cs.scroll; vi < count && vi < n.cs.scroll+height; vi++ {
		li := n.visibleToListing(vi)
		entry := n.listing[li]
		spans, isMatch := n.matchFor(li)
		rows = append(rows, Row{
			Name:          entry.Name,
			IsDir:         entry.IsDir,
			SymlinkTarget: entry.SymlinkTarget,
			Spans:         spans,
			IsMatch:       isMatch,
			IsCursor:      vi == n.cs.index(),
		})
	}

	return Snapshot{
		Path:      n.path,
		Query:     n.query,
		Searching: n.Searching(),
		Filtering: n.filterSearch,
		CaseLabel: n.caseMode.String(),
		GapLabel:  n.gapMode.String(),
		Cursor:    n.cs.cursor,
		Scroll:    n.cs.scroll,
		Total:     len(n.listing),
		Matching:  len(n.matches),
		Visible:   count,
		MatchPos:  n.MatchPosition(),
		Status:    n.status,
		Rows:      rows,
	}
}
