package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/chmouel/lazycd/internal/nav"
	"github.com/chmouel/lazycd/internal/search"
)

// View renders the whole screen
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	// Wait for window size before rendering full UI
	if m.windowWidth == 0 || m.windowHeight == 0 {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	snap := m.nav.Snapshot()
	sections := []string{
		m.renderHeader(snap),
		m.renderBody(snap),
		m.renderInfo(snap),
		m.renderFooter(snap),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) renderHeader(snap nav.Snapshot) string {
	style := lipgloss.NewStyle().
		Bold(true).
		Underline(true).
		Foreground(m.thm.DirFg)
	return style.Render(truncateLeft(snap.Path, m.windowWidth))
}

func (m *Model) renderBody(snap nav.Snapshot) string {
	height := m.listHeight()
	lines := make([]string, 0, height)

	if snap.Total == 0 {
		empty := lipgloss.NewStyle().
			Foreground(m.thm.MutedFg).
			Render("<empty directory>")
		lines = append(lines, empty)
	}

	for _, row := range snap.Rows {
		lines = append(lines, m.renderRow(row, snap.Searching))
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines[:height], "\n")
}

func (m *Model) renderRow(row nav.Row, searching bool) string {
	base := lipgloss.NewStyle().Foreground(m.thm.FileFg)
	switch {
	case row.IsCursor:
		base = lipgloss.NewStyle().
			Background(m.thm.Accent).
			Foreground(m.thm.AccentFg).
			Bold(true)
	case row.SymlinkTarget != "":
		base = lipgloss.NewStyle().Foreground(m.thm.SymlinkFg)
	case searching && !row.IsMatch:
		base = lipgloss.NewStyle().Foreground(m.thm.MutedFg)
	case row.IsDir:
		base = lipgloss.NewStyle().Foreground(m.thm.DirFg).Bold(true)
	}

	prefix := ""
	if m.cfg.ShowIcons {
		prefix = deviconForName(row.Name, row.IsDir) + " "
	}

	suffix := ""
	if row.SymlinkTarget != "" {
		suffix = " -> " + row.SymlinkTarget
	} else if row.IsDir {
		suffix = "/"
	}

	avail := m.windowWidth - runewidth.StringWidth(prefix) - runewidth.StringWidth(suffix)
	if avail < 1 {
		avail = 1
	}
	name, spans := truncateName(row.Name, row.Spans, avail)

	var b strings.Builder
	b.WriteString(base.Render(prefix))
	b.WriteString(m.renderSpans(name, spans, base))
	b.WriteString(base.Render(suffix))
	out := b.String()

	if row.IsCursor {
		if pad := m.windowWidth - lipgloss.Width(out); pad > 0 {
			out += base.Render(strings.Repeat(" ", pad))
		}
	}
	return out
}

// renderSpans styles the matched byte ranges of a name on top of the
// row's base style.
func (m *Model) renderSpans(name string, spans []search.Span, base lipgloss.Style) string {
	if len(spans) == 0 {
		return base.Render(name)
	}
	match := base.Background(m.thm.MatchBg).Underline(true)

	var b strings.Builder
	pos := 0
	for _, span := range spans {
		if span.Start > pos {
			b.WriteString(base.Render(name[pos:span.Start]))
		}
		b.WriteString(match.Render(name[span.Start:span.End]))
		pos = span.End
	}
	if pos < len(name) {
		b.WriteString(base.Render(name[pos:]))
	}
	return b.String()
}

func (m *Model) renderInfo(snap nav.Snapshot) string {
	if snap.Status == "" {
		return ""
	}
	return lipgloss.NewStyle().
		Foreground(m.thm.StatusFg).
		Render(runewidth.Truncate(snap.Status, m.windowWidth, "…"))
}

func (m *Model) renderFooter(snap nav.Snapshot) string {
	left := ""
	if snap.Searching {
		label := "search: "
		if snap.Filtering {
			label = "filter: "
		}
		left = label + snap.Query
	}

	var counters string
	if snap.Searching {
		counters = fmt.Sprintf("%d / %d / %d", snap.MatchPos, snap.Matching, snap.Total)
	} else {
		pos := 0
		if snap.Visible > 0 {
			pos = snap.Scroll + snap.Cursor + 1
		}
		counters = fmt.Sprintf("%d / %d", pos, snap.Total)
	}
	right := fmt.Sprintf("%s  %s  %s", snap.CaseLabel, snap.GapLabel, counters)

	style := lipgloss.NewStyle().Foreground(m.thm.FooterFg)
	return padBetween(style.Render(left), style.Render(right), m.windowWidth)
}

// padBetween joins left and right with spaces so right ends at width.
func padBetween(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// truncateLeft keeps the tail of s within width, which suits paths
// where the deepest components matter most.
func truncateLeft(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	const ellipsis = "…"
	avail := width - runewidth.StringWidth(ellipsis)
	runes := []rune(s)
	total := 0
	start := len(runes)
	for i := len(runes) - 1; i >= 0; i-- {
		w := runewidth.RuneWidth(runes[i])
		if total+w > avail {
			break
		}
		total += w
		start = i
	}
	return ellipsis + string(runes[start:])
}

// truncateName shortens a display name, dropping highlight spans that
// fall past the cut.
func truncateName(name string, spans []search.Span, width int) (string, []search.Span) {
	out := runewidth.Truncate(name, width, "…")
	if out == name {
		return name, spans
	}
	limit := len(out) - len("…")
	kept := make([]search.Span, 0, len(spans))
	for _, span := range spans {
		if span.Start >= limit {
			break
		}
		if span.End > limit {
			span.End = limit
		}
		kept = append(kept, span)
	}
	return out, kept
}
