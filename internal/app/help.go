package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

const helpText = `Type to search. Matching characters are highlighted; the cursor
snaps to the closest match. With a single match left, Enter (or the
auto-cd timeout, when enabled) takes you there.

Navigation

  Down / Up, Alt-j / Alt-k   move the cursor (between matches while searching)
  Enter / Right / Alt-l      enter the directory under the cursor
  Left / Backspace / Alt-h   go to the parent directory
  PageDown / PageUp          move a window at a time
  Home / End                 jump to the first / last entry
  ~                          go to your home directory
  Ctrl-Home                  go to your home directory (also while searching)
  /                          go to the root directory
  Ctrl-r                     re-read the current directory

Searching

  any printable character    extend the search
  Backspace                  erase the last search character
  Esc                        stop searching
  Alt-c                      cycle case sensitivity (smart / sensitive / ignore)
  Ctrl-f                     cycle gap search (from start / normal / anywhere)

Exiting

  Esc (outside a search)     exit and change to the current directory
  Ctrl-c                     exit without changing directory

Press Esc, q or ? to close this help.`

func (m *Model) openHelp() {
	m.showHelp = true
	m.help = viewport.New(m.helpWidth(), m.helpHeight())
	m.help.SetContent(m.helpContent())
}

func (m *Model) resizeHelp() {
	if !m.showHelp {
		return
	}
	m.help.Width = m.helpWidth()
	m.help.Height = m.helpHeight()
	m.help.SetContent(m.helpContent())
}

func (m *Model) helpWidth() int {
	w := m.windowWidth - 4
	if w < 20 {
		w = 20
	}
	return w
}

func (m *Model) helpHeight() int {
	h := m.windowHeight - 4
	if h < 3 {
		h = 3
	}
	return h
}

func (m *Model) helpContent() string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(m.thm.HelpTitleFg).
		Render("lazycd keys")
	body := wordwrap.String(helpText, m.helpWidth()-2)
	return title + "\n\n" + body
}

func (m *Model) handleHelpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "?", "ctrl+c", "enter":
		m.showHelp = false
		return m, nil
	}
	var cmd tea.Cmd
	m.help, cmd = m.help.Update(msg)
	return m, cmd
}

func (m *Model) handleHelpMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.help, cmd = m.help.Update(msg)
	return m, cmd
}

func (m *Model) renderHelp() string {
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.thm.Accent).
		Padding(0, 1)
	content := m.help.View()
	scroll := ""
	if !m.help.AtBottom() {
		scroll = lipgloss.NewStyle().
			Foreground(m.thm.MutedFg).
			Render(strings.Repeat(" ", 2) + "(j/k to scroll)")
	}
	return frame.Render(content + "\n" + scroll)
}
