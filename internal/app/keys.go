package app

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m.exit(true)

	case "esc":
		if m.nav.Searching() {
			m.nav.ClearSearch()
			return m, nil
		}
		if m.cfg.EscCancel {
			return m.exit(true)
		}
		return m.exit(false)

	case "enter":
		return m.enterCursor(m.cfg.EnterCdExit)

	case "right", "alt+l":
		return m.enterCursor(false)

	case "left", "alt+h":
		return m.changeDir("..")

	case "backspace":
		if m.nav.Searching() {
			m.nav.EraseSearchChar()
			return m, m.maybeAutocd()
		}
		return m.changeDir("..")

	case "up", "alt+k":
		m.moveCursor(-1)
		return m, nil

	case "down", "alt+j":
		m.moveCursor(1)
		return m, nil

	case "pgup", "alt+u":
		m.nav.MoveCursor(-m.listHeight(), false)
		return m, nil

	case "pgdown", "alt+d":
		m.nav.MoveCursor(m.listHeight(), false)
		return m, nil

	case "home", "alt+g":
		m.nav.MoveCursorTo(0)
		return m, nil

	case "end", "alt+G":
		m.nav.MoveCursorTo(m.nav.TotalCount())
		return m, nil

	case "ctrl+home":
		return m.gotoHome()

	case "/":
		return m.changeDir("/")

	case "?":
		m.openHelp()
		return m, nil

	case "alt+c":
		m.nav.CycleCaseMode()
		m.nav.SetStatus(m.nav.CaseMode().String())
		return m, nil

	case "ctrl+f":
		m.nav.CycleGapMode()
		m.nav.SetStatus(m.nav.GapMode().String())
		return m, nil

	case "ctrl+r":
		if err := m.nav.Refresh(); err == nil {
			m.nav.SetStatus("refreshed")
		}
		return m, nil
	}

	// Printable input feeds the search; a handful of characters keep a
	// navigation meaning while no search is active.
	if msg.Type == tea.KeyRunes && !msg.Alt || msg.Type == tea.KeySpace {
		text := string(msg.Runes)
		if msg.Type == tea.KeySpace {
			text = " "
		}
		if !m.nav.Searching() {
			switch text {
			case "-":
				return m.changeDir("..")
			case "~":
				return m.gotoHome()
			case " ":
				return m.enterCursor(false)
			}
		}
		m.nav.AdvanceSearch(text)
		return m, m.maybeAutocd()
	}

	return m, nil
}

func (m *Model) moveCursor(direction int) {
	if m.nav.Searching() && m.nav.MatchCount() > 0 {
		m.nav.MoveToAdjacentMatch(direction)
		return
	}
	m.nav.MoveCursor(direction, false)
}

func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.nav.MoveCursor(-1, false)

	case msg.Button == tea.MouseButtonWheelDown:
		m.nav.MoveCursor(1, false)

	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
		snap := m.nav.Snapshot()
		row := msg.Y - 1 // header occupies the first line
		target := snap.Scroll + row
		if row < 0 || target >= snap.Visible {
			return m, nil
		}
		if row == snap.Cursor {
			return m.enterCursor(false)
		}
		m.nav.MoveCursorTo(target)

	case msg.Button == tea.MouseButtonRight && msg.Action == tea.MouseActionPress:
		return m.changeDir("..")
	}
	return m, nil
}
