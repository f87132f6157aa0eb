// Package nav owns the navigation and search state of the browser: the
// current listing, the incremental matcher state, cursor and scroll
// position, and the per-directory cursor history. It knows nothing about
// terminals; the UI layer consumes snapshots and feeds intents back in.
package nav

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/chmouel/lazycd/internal/fsdir"
	"github.com/chmouel/lazycd/internal/history"
	"github.com/chmouel/lazycd/internal/search"
)

// NoMatchesMsg is shown while a search has no matching entries.
const NoMatchesMsg = "No matches"

// Options configures a Navigator for one session.
type Options struct {
	FoldersOnly  bool
	FilterSearch bool
	CaseMode     search.CaseMode
	GapMode      search.GapMode
	History      *history.Store
}

// Navigator is the single entry point for navigation intents. All state
// mutation happens here, one intent at a time; the bubbletea runtime
// serializes calls so no locking is needed.
type Navigator struct {
	path    string
	listing fsdir.Listing

	query   string
	matches []search.Match

	cs    cursorScroll
	store *history.Store

	foldersOnly  bool
	filterSearch bool
	caseMode     search.CaseMode
	gapMode      search.GapMode

	status        string
	historyWarned bool
}

// New resolves startPath, loads the history store and reads the initial
// listing. A failure here is fatal to the caller; once running, listing
// errors degrade to status messages instead.
func New(startPath string, opts Options) (*Navigator, error) {
	abs, err := filepath.Abs(startPath)
	if err != nil {
		return nil, fmt.Errorf("resolving %q: %w", startPath, err)
	}

	store := opts.History
	if store == nil {
		store = history.NewStore("")
	}
	store.Load()

	listing, err := fsdir.List(abs, opts.FoldersOnly)
	if err != nil {
		return nil, fmt.Errorf("listing %q: %w", abs, err)
	}

	n := &Navigator{
		path:         abs,
		listing:      listing,
		store:        store,
		foldersOnly:  opts.FoldersOnly,
		filterSearch: opts.FilterSearch,
		caseMode:     opts.CaseMode,
		gapMode:      opts.GapMode,
		cs:           cursorScroll{height: 1},
	}
	n.restoreCursor()
	return n, nil
}

// Path returns the current resolved absolute directory.
func (n *Navigator) Path() string { return n.path }

// Query returns the current search string.
func (n *Navigator) Query() string { return n.query }

// Searching reports whether a search is in progress (non-empty query).
func (n *Navigator) Searching() bool { return n.query != "" }

// MatchCount returns the number of entries matching the current query.
func (n *Navigator) MatchCount() int { return len(n.matches) }

// TotalCount returns the size of the current listing.
func (n *Navigator) TotalCount() int { return len(n.listing) }

// CaseMode returns the active case sensitivity mode.
func (n *Navigator) CaseMode() search.CaseMode { return n.caseMode }

// GapMode returns the active gap search mode.
func (n *Navigator) GapMode() search.GapMode { return n.gapMode }

// Status returns and clears the transient status message.
func (n *Navigator) Status() string { return n.status }

// SetStatus overrides the transient status message.
func (n *Navigator) SetStatus(msg string) { n.status = msg }

// visibleCount is the number of items the cursor can reach: the whole
// listing, or only the matches when filtering is active.
func (n *Navigator) visibleCount() int {
	if n.filterSearch && n.Searching() {
		return len(n.matches)
	}
	return len(n.listing)
}

// visibleToListing maps a visible-item index to a listing index.
func (n *Navigator) visibleToListing(i int) int {
	if n.filterSearch && n.Searching() {
		if i < 0 || i >= len(n.matches) {
			return 0
		}
		return n.matches[i].Index
	}
	return i
}

// VisibleIndex returns the visible-item index under the cursor.
func (n *Navigator) VisibleIndex() int { return n.cs.index() }

// CurrentEntry returns the entry under the cursor, if any.
func (n *Navigator) CurrentEntry() (fsdir.Entry, bool) {
	if n.visibleCount() == 0 {
		return fsdir.Entry{}, false
	}
	idx := n.visibleToListing(n.cs.index())
	if idx < 0 || idx >= len(n.listing) {
		return fsdir.Entry{}, false
	}
	return n.listing[idx], true
}

// ChangeDir resolves token and switches directories. Tokens: "" enters
// the entry under the cursor, ".." goes to the parent, "." refreshes,
// anything else is a literal path. On failure the navigator state is
// left untouched and the error doubles as the status message.
func (n *Navigator) ChangeDir(token string) error {
	target, err := n.resolveTarget(token)
	if err != nil {
		n.status = err.Error()
		return err
	}

	listing, err := fsdir.List(target, n.foldersOnly)
	if err != nil {
		err = describeListError(target, err)
		n.status = err.Error()
		return err
	}

	// Record the position being left before the listing is replaced.
	n.rememberCursor()
	n.persistHistory()

	n.path = target
	n.listing = listing
	n.query = ""
	n.matches = nil
	n.status = ""
	n.restoreCursor()
	return nil
}

func (n *Navigator) resolveTarget(token string) (string, error) {
	switch token {
	case "":
		entry, ok := n.CurrentEntry()
		if !ok {
			return "", errors.New("nothing to enter")
		}
		if !entry.IsDir {
			return "", fmt.Errorf("%q is not a directory", entry.Name)
		}
		return filepath.Join(n.path, entry.Name), nil
	case ".":
		return n.path, nil
	case "..":
		return filepath.Dir(n.path), nil
	default:
		if filepath.IsAbs(token) {
			return filepath.Clean(token), nil
		}
		return filepath.Join(n.path, token), nil
	}
}

func describeListError(target string, err error) error {
	switch {
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("cannot open %q: permission denied", filepath.Base(target))
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%q no longer exists", filepath.Base(target))
	default:
		return fmt.Errorf("cannot list %q: %v", filepath.Base(target), err)
	}
}

// rememberCursor stores the current visible index for the current path.
func (n *Navigator) rememberCursor() {
	n.store.Set(n.path, n.cs.index())
}

// persistHistory flushes the store, surfacing a write failure once.
func (n *Navigator) persistHistory() {
	if err := n.store.Save(); err != nil && !n.historyWarned {
		n.historyWarned = true
		n.status = fmt.Sprintf("history not saved: %v", err)
	}
}

// restoreCursor seeds the cursor from history for the current path,
// clamping a remembered index that exceeds the (possibly shrunk)
// listing, and defaulting to the top.
func (n *Navigator) restoreCursor() {
	idx := 0
	if remembered, ok := n.store.Get(n.path); ok {
		idx = remembered
	}
	count := n.visibleCount()
	if idx >= count {
		idx = count - 1
	}
	if idx < 0 {
		idx = 0
	}
	n.cs.moveTo(idx, count)
}

// AdvanceSearch appends text to the query and recomputes the matches.
func (n *Navigator) AdvanceSearch(text string) {
	n.mutateSearch(n.query + text)
}

// EraseSearchChar removes the last query character, leaving search mode
// when the query becomes empty.
func (n *Navigator) EraseSearchChar() {
	if n.query == "" {
		return
	}
	runes := []rune(n.query)
	n.mutateSearch(string(runes[:len(runes)-1]))
}

// ClearSearch abandons the search and returns to browsing, keeping the
// cursor on the entry it was on.
func (n *Navigator) ClearSearch() {
	n.mutateSearch("")
}

// mutateSearch swaps in a new query, recomputes matches from scratch and
// keeps the cursor on a sensible entry across the visibility change.
func (n *Navigator) mutateSearch(query string) {
	current := n.visibleToListing(n.cs.index())

	n.query = query
	n.matches = search.Recompute(n.names(), n.query, n.caseMode, n.gapMode)

	if !n.Searching() {
		n.status = ""
		n.cs.moveTo(current, n.visibleCount())
		return
	}

	if len(n.matches) == 0 {
		n.status = NoMatchesMsg
		n.cs.clamp(n.visibleCount())
		return
	}
	n.status = ""
	n.snapToMatch(current)
}

// names returns the listing names in index order for the matcher.
func (n *Navigator) names() []string {
	out := make([]string, len(n.listing))
	for i, e := range n.listing {
		out[i] = e.Name
	}
	return out
}

// snapToMatch puts the cursor on the first match at or after the given
// listing index, wrapping to the first match overall.
func (n *Navigator) snapToMatch(listingIdx int) {
	pos := 0
	for i, m := range n.matches {
		if m.Index >= listingIdx {
			pos = i
			break
		}
	}
	if n.filterSearch {
		n.cs.moveTo(pos, n.visibleCount())
		return
	}
	n.cs.moveTo(n.matches[pos].Index, n.visibleCount())
}

// CycleCaseMode advances the case mode and re-runs the search.
func (n *Navigator) CycleCaseMode() {
	n.caseMode = n.caseMode.Next()
	n.mutateSearch(n.query)
}

// CycleGapMode advances the gap mode and re-runs the search.
func (n *Navigator) CycleGapMode() {
	n.gapMode = n.gapMode.Next()
	n.mutateSearch(n.query)
}

// MoveCursor shifts the cursor by delta visible items.
func (n *Navigator) MoveCursor(delta int, wrap bool) {
	n.cs.move(delta, wrap, n.visibleCount())
}

// MoveCursorTo jumps to an absolute visible index (Home/End, mouse).
func (n *Navigator) MoveCursorTo(index int) {
	n.cs.moveTo(index, n.visibleCount())
}

// MoveToAdjacentMatch jumps to the next or previous matching entry,
// wrapping across the match set. No-op unless searching with matches.
func (n *Navigator) MoveToAdjacentMatch(direction int) {
	if !n.Searching() || len(n.matches) == 0 {
		return
	}
	if n.filterSearch {
		n.cs.move(direction, true, n.visibleCount())
		return
	}

	current := n.cs.index()
	pos := -1
	for i, m := range n.matches {
		if m.Index == current {
			pos = i
			break
		}
	}
	if pos < 0 {
		// Cursor is off the match set; snap instead of stepping.
		n.snapToMatch(current)
		return
	}
	count := len(n.matches)
	pos = ((pos+direction)%count + count) % count
	n.cs.moveTo(n.matches[pos].Index, n.visibleCount())
}

// MoveCursorToName positions the cursor on the visible entry with the
// given name, if present.
func (n *Navigator) MoveCursorToName(name string) {
	for vi := 0; vi < n.visibleCount(); vi++ {
		if n.listing[n.visibleToListing(vi)].Name == name {
			n.cs.moveTo(vi, n.visibleCount())
			return
		}
	}
}

// UpdateViewport adjusts to a new main-window size, keeping the cursor
// invariants intact.
func (n *Navigator) UpdateViewport(height int) {
	n.cs.setHeight(height, n.visibleCount())
}

// Refresh re-lists the current directory, preserving the cursor by
// entry name when possible. Used by the filesystem watcher.
func (n *Navigator) Refresh() error {
	name := ""
	if entry, ok := n.CurrentEntry(); ok {
		name = entry.Name
	}
	listing, err := fsdir.List(n.path, n.foldersOnly)
	if err != nil {
		err = describeListError(n.path, err)
		n.status = err.Error()
		return err
	}
	n.listing = listing
	n.matches = search.Recompute(n.names(), n.query, n.caseMode, n.gapMode)
	n.cs.clamp(n.visibleCount())
	if name != "" {
		n.MoveCursorToName(name)
	}
	return nil
}

// OnExit records the final cursor position and flushes the history
// store. The error is reported but never blocks termination.
func (n *Navigator) OnExit() error {
	n.rememberCursor()
	return n.store.Save()
}

// matchFor returns the highlight spans for a listing index, if the
// entry is part of the current match set.
func (n *Navigator) matchFor(listingIdx int) ([]search.Span, bool) {
	for _, m := range n.matches {
		if m.Index == listingIdx {
			return m.Spans, true
		}
		if m.Index > listingIdx {
			break
		}
	}
	return nil, false
}

// MatchPosition returns the 1-based position of the cursor within the
// match set, for the footer counters. Zero when not on a match.
func (n *Navigator) MatchPosition() int {
	current := n.visibleToListing(n.cs.index())
	for i, m := range n.matches {
		if m.Index == current {
			return i + 1
		}
	}
	return 0
}

// HomePath changes to the user home directory.
func (n *Navigator) HomePath(home string) error {
	if home == "" {
		return errors.New("home directory unknown")
	}
	return n.ChangeDir(home)
}
