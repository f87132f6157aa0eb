package nav

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chmouel/lazycd/internal/history"
	"github.com/chmouel/lazycd/internal/search"
)

// makeTree builds <root>/a/b with a few sibling folders inside each level.
func makeTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	for _, p := range []string{
		"a/b/deep",
		"a/other",
		"Apple", "banana", "Avocado",
	} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, p), 0o755))
	}
	return root
}

func newNav(t *testing.T, start string, opts Options) *Navigator {
	t.Helper()
	n, err := New(start, opts)
	require.NoError(t, err)
	n.UpdateViewport(10)
	return n
}

func TestNewListsStartingDirectory(t *testing.T) {
	root := makeTree(t)
	n := newNav(t, root, Options{})

	assert.Equal(t, root, n.Path())
	assert.Equal(t, 4, n.TotalCount())
	assert.False(t, n.Searching())
	assert.Equal(t, 0, n.VisibleIndex())
}

func TestNewFailsOnMissingStartDirectory(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "gone"), Options{})
	require.Error(t, err)
}

func TestSearchScenarioLowercase(t *testing.T) {
	root := makeTree(t)
	n := newNav(t, root, Options{CaseMode: search.SmartCase, GapMode: search.GapFromStart})

	n.AdvanceSearch("a")

	// "a" has no uppercase, so SmartCase folds: "a", "Apple" and
	// "Avocado" match, each highlighted at offset 0.
	assert.Equal(t, 3, n.MatchCount())
	snap := n.Snapshot()
	for _, row := range snap.Rows {
		if row.IsMatch {
			assert.Equal(t, []search.Span{{Start: 0, End: 1}}, row.Spans)
		}
	}
}

func TestSearchScenarioSmartCaseUppercase(t *testing.T) {
	root := makeTree(t)
	n := newNav(t, root, Options{CaseMode: search.SmartCase, GapMode: search.GapFromStart})

	n.AdvanceSearch("A")
	n.AdvanceSearch("v")

	require.Equal(t, 1, n.MatchCount())
	entry, ok := n.CurrentEntry()
	require.True(t, ok)
	assert.Equal(t, "Avocado", entry.Name)
}

func TestAdvanceEraseRoundTrip(t *testing.T) {
	root := makeTree(t)
	n := newNav(t, root, Options{})

	n.AdvanceSearch("a")
	before := n.Snapshot()

	n.AdvanceSearch("v")
	n.EraseSearchChar()
	after := n.Snapshot()

	assert.Equal(t, before.Query, after.Query)
	assert.Equal(t, before.Matching, after.Matching)
	assert.Equal(t, before.Searching, after.Searching)
}

func TestEraseToEmptyLeavesSearchMode(t *testing.T) {
	root := makeTree(t)
	n := newNav(t, root, Options{})

	n.AdvanceSearch("b")
	require.True(t, n.Searching())
	n.EraseSearchChar()
	assert.False(t, n.Searching())
	assert.Equal(t, 0, n.MatchCount())

	// Erasing while browsing is a no-op.
	n.EraseSearchChar()
	assert.False(t, n.Searching())
}

func TestClearSearchKeepsCursorEntry(t *testing.T) {
	root := makeTree(t)
	n := newNav(t, root, Options{FilterSearch: true})

	n.AdvanceSearch("ban")
	require.Equal(t, 1, n.MatchCount())
	entry, _ := n.CurrentEntry()
	require.Equal(t, "banana", entry.Name)

	n.ClearSearch()
	assert.False(t, n.Searching())
	entry, _ = n.CurrentEntry()
	assert.Equal(t, "banana", entry.Name)
}

func TestNoMatchesStatus(t *testing.T) {
	root := makeTree(t)
	n := newNav(t, root, Options{})

	n.AdvanceSearch("zzz")
	assert.Equal(t, 0, n.MatchCount())
	assert.Equal(t, NoMatchesMsg, n.Snapshot().Status)
}

func TestFilterSearchHidesNonMatches(t *testing.T) {
	root := makeTree(t)
	n := newNav(t, root, Options{FilterSearch: true})

	n.AdvanceSearch("a")
	snap := n.Snapshot()
	assert.Equal(t, snap.Matching, snap.Visible)
	for _, row := range snap.Rows {
		assert.True(t, row.IsMatch)
	}
}

func TestChangeDirIntoEntryUnderCursor(t *testing.T) {
	root := makeTree(t)
	n := newNav(t, root, Options{})

	n.AdvanceSearch("a")
	// cursor snapped to the first match; enter it
	entry, _ := n.CurrentEntry()
	require.NoError(t, n.ChangeDir(""))
	assert.Equal(t, filepath.Join(root, entry.Name), n.Path())
	assert.False(t, n.Searching(), "search resets on directory change")
}

func TestChangeDirNotADirectory(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "file.txt"), []byte("x"), 0o600))
	n := newNav(t, root, Options{})

	err := n.ChangeDir("")
	require.Error(t, err)
	assert.Contains(t, n.Snapshot().Status, "not a directory")
	assert.Equal(t, root, n.Path(), "state unchanged on failure")
}

func TestChangeDirVanishedTarget(t *testing.T) {
	root := makeTree(t)
	n := newNav(t, root, Options{})

	err := n.ChangeDir(filepath.Join(root, "nope"))
	require.Error(t, err)
	assert.Contains(t, n.Snapshot().Status, "no longer exists")
	assert.Equal(t, root, n.Path())
}

func TestChangeDirParentPersistsAndRestoresHistory(t *testing.T) {
	root := makeTree(t)
	histFile := filepath.Join(t.TempDir(), "history.json")

	store := history.NewStore(histFile)
	store.Load()
	ab := filepath.Join(root, "a", "b")
	n := newNav(t, ab, Options{History: store})

	n.MoveCursorTo(0)
	require.NoError(t, n.ChangeDir("..")) // to root/a

	assert.Equal(t, filepath.Join(root, "a"), n.Path())
	idx, ok := store.Get(ab)
	require.True(t, ok)
	assert.Equal(t, 0, idx)

	// The persisted file reflects the change immediately.
	onDisk := history.NewStore(histFile)
	onDisk.Load()
	_, ok = onDisk.Get(ab)
	assert.True(t, ok)
}

func TestHistoryRestoreClampsToShrunkListing(t *testing.T) {
	root := makeTree(t)
	store := history.NewStore("")
	store.Set(root, 99)

	n := newNav(t, root, Options{History: store})
	assert.Equal(t, n.TotalCount()-1, n.VisibleIndex())
}

func TestChangeDirDotRefreshKeepsPosition(t *testing.T) {
	root := makeTree(t)
	n := newNav(t, root, Options{})

	n.MoveCursorTo(2)
	require.NoError(t, n.ChangeDir("."))
	assert.Equal(t, root, n.Path())
	assert.Equal(t, 2, n.VisibleIndex())
}

func TestMoveCursorWrapAndClamp(t *testing.T) {
	root := makeTree(t)
	n := newNav(t, root, Options{})
	count := n.TotalCount()

	n.MoveCursor(-1, true)
	assert.Equal(t, count-1, n.VisibleIndex())

	n.MoveCursor(1, true)
	assert.Equal(t, 0, n.VisibleIndex())

	n.MoveCursor(-5, false)
	assert.Equal(t, 0, n.VisibleIndex())

	n.MoveCursor(100, false)
	assert.Equal(t, count-1, n.VisibleIndex())
}

func TestCursorInvariantsUnderViewportChanges(t *testing.T) {
	root := makeTree(t)
	n := newNav(t, root, Options{})
	count := n.TotalCount()

	for _, step := range []func(){
		func() { n.UpdateViewport(2) },
		func() { n.MoveCursor(3, false) },
		func() { n.UpdateViewport(1) },
		func() { n.MoveCursor(-10, true) },
		func() { n.MoveCursorTo(1000) },
		func() { n.UpdateViewport(50) },
		func() { n.MoveCursor(1, true) },
	} {
		step()
		idx := n.VisibleIndex()
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, count)
	}
}

func TestEmptyListingIsTotal(t *testing.T) {
	empty := t.TempDir()
	n := newNav(t, empty, Options{})

	n.MoveCursor(1, true)
	n.MoveCursor(-1, false)
	n.MoveCursorTo(5)
	n.MoveToAdjacentMatch(1)
	assert.Equal(t, 0, n.VisibleIndex())

	_, ok := n.CurrentEntry()
	assert.False(t, ok)

	err := n.ChangeDir("")
	require.Error(t, err)
}

func TestMoveToAdjacentMatchWraps(t *testing.T) {
	root := makeTree(t)
	n := newNav(t, root, Options{})

	n.AdvanceSearch("a")
	require.Equal(t, 3, n.MatchCount())

	first, _ := n.CurrentEntry()
	n.MoveToAdjacentMatch(1)
	second, _ := n.CurrentEntry()
	assert.NotEqual(t, first.Name, second.Name)

	n.MoveToAdjacentMatch(1)
	n.MoveToAdjacentMatch(1)
	wrapped, _ := n.CurrentEntry()
	assert.Equal(t, first.Name, wrapped.Name)

	n.MoveToAdjacentMatch(-1)
	back, _ := n.CurrentEntry()
	assert.NotEqual(t, first.Name, back.Name)
}

func TestCycleGapModeRecomputes(t *testing.T) {
	root := t.TempDir()
	for _, p := range []string{"xabc", "abc"} {
		require.NoError(t, os.Mkdir(filepath.Join(root, p), 0o755))
	}
	n := newNav(t, root, Options{GapMode: search.GapAnywhere})

	n.AdvanceSearch("abc")
	assert.Equal(t, 2, n.MatchCount())

	n.CycleGapMode() // GapAnywhere -> GapFromStart
	assert.Equal(t, search.GapFromStart, n.GapMode())
	assert.Equal(t, 1, n.MatchCount())
}

func TestCycleCaseModeRecomputes(t *testing.T) {
	root := makeTree(t)
	n := newNav(t, root, Options{CaseMode: search.IgnoreCase})

	n.AdvanceSearch("a")
	require.Equal(t, 3, n.MatchCount())

	n.CycleCaseMode() // IgnoreCase -> CaseSensitive
	assert.Equal(t, search.CaseSensitive, n.CaseMode())
	assert.Equal(t, 1, n.MatchCount())
}

func TestOnExitPersistsFinalPosition(t *testing.T) {
	root := makeTree(t)
	histFile := filepath.Join(t.TempDir(), "history.json")
	store := history.NewStore(histFile)
	store.Load()

	n := newNav(t, root, Options{History: store})
	n.MoveCursorTo(3)
	require.NoError(t, n.OnExit())

	reloaded := history.NewStore(histFile)
	reloaded.Load()
	idx, ok := reloaded.Get(root)
	require.True(t, ok)
	assert.Equal(t, 3, idx)
}

func TestMoveCursorToName(t *testing.T) {
	root := makeTree(t)
	n := newNav(t, root, Options{})

	n.MoveCursorToName("banana")
	entry, _ := n.CurrentEntry()
	assert.Equal(t, "banana", entry.Name)

	n.MoveCursorToName("zzz")
	entry, _ = n.CurrentEntry()
	assert.Equal(t, "banana", entry.Name)
}

func TestRefreshPreservesCursorByName(t *testing.T) {
	root := makeTree(t)
	n := newNav(t, root, Options{})

	n.MoveCursorToName("banana")
	require.NoError(t, os.Mkdir(filepath.Join(root, "aaa-new"), 0o755))
	require.NoError(t, n.Refresh())

	entry, _ := n.CurrentEntry()
	assert.Equal(t, "banana", entry.Name)
	assert.Equal(t, 5, n.TotalCount())
}

func TestSnapshotViewportWindow(t *testing.T) {
	root := makeTree(t)
	n := newNav(t, root, Options{})
	n.UpdateViewport(2)

	n.MoveCursorTo(10)
	snap := n.Snapshot()
	assert.Len(t, snap.Rows, 2)
	assert.Equal(t, 2, snap.Scroll)
	assert.Equal(t, 1, snap.Cursor)
	assert.True(t, snap.Rows[1].IsCursor)
	assert.Equal(t, 4, snap.Total)
}

func TestStatusSurvivesIntoSnapshotOnly(t *testing.T) {
	root := makeTree(t)
	n := newNav(t, root, Options{})

	n.SetStatus("hello")
	assert.Equal(t, "hello", n.Snapshot().Status)

	n.AdvanceSearch("a")
	assert.Empty(t, n.Snapshot().Status)
}
