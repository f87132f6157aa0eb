package app

import (
	"os"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/chmouel/lazycd/internal/buildinfo"
	"github.com/chmouel/lazycd/internal/config"
	"github.com/chmouel/lazycd/internal/log"
	"github.com/chmouel/lazycd/internal/nav"
	"github.com/chmouel/lazycd/internal/theme"
)

// chrome rows around the main window: header, info line, footer.
const chromeHeight = 3

// Model is the Bubble Tea model driving the browser. All navigation
// state lives in the Navigator; the model owns the terminal concerns
// (sizing, help overlay, watcher plumbing, auto-cd timing).
type Model struct {
	nav *nav.Navigator
	cfg *config.Settings
	thm *theme.Theme

	watcher *dirWatcher

	windowWidth  int
	windowHeight int

	showHelp bool
	help     viewport.Model

	// autocdGen identifies the pending auto-cd tick; every intent
	// bumps it so a stale tick becomes a no-op.
	autocdGen int

	canceled bool
	quitting bool
}

// NewModel wires a navigator and session settings into a runnable
// model.
func NewModel(navigator *nav.Navigator, cfg *config.Settings) *Model {
	m := &Model{
		nav: navigator,
		cfg: cfg,
		thm: theme.Get(cfg.Theme),
	}

	watcher, err := newDirWatcher(navigator.Path())
	if err != nil {
		log.Printf("watcher unavailable: %v", err)
	} else {
		m.watcher = watcher
	}

	navigator.SetStatus("lazycd " + buildinfo.Version() + " (press ? for help)")
	return m
}

// Init starts the watcher receive loop.
func (m *Model) Init() tea.Cmd {
	return m.waitWatch()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setWindowSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		m.autocdGen++
		if m.showHelp {
			return m.handleHelpKey(msg)
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.autocdGen++
		if m.showHelp {
			return m.handleHelpMouse(msg)
		}
		return m.handleMouse(msg)

	case autocdMsg:
		return m.handleAutocd(msg)

	case watchEventMsg:
		if m.watcher != nil {
			m.watcher.ResetWaiting()
			if m.watcher.ShouldRefresh(time.Now()) {
				if err := m.nav.Refresh(); err != nil {
					log.Printf("auto refresh: %v", err)
				}
			}
		}
		return m, m.waitWatch()
	}
	return m, nil
}

func (m *Model) setWindowSize(width, height int) {
	m.windowWidth = width
	m.windowHeight = height
	m.nav.UpdateViewport(m.listHeight())
	m.resizeHelp()
}

func (m *Model) listHeight() int {
	h := m.windowHeight - chromeHeight
	if h < 1 {
		h = 1
	}
	return h
}

// waitWatch blocks on the watcher channel, turning filesystem activity
// into a message. Returns nil when a receive is already pending.
func (m *Model) waitWatch() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	ch := m.watcher.NextEvent()
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return watchEventMsg{}
	}
}

// maybeAutocd schedules the auto-cd tick after a search edit left
// exactly one match.
func (m *Model) maybeAutocd() tea.Cmd {
	if m.cfg.AutocdTimeout == nil {
		return nil
	}
	if !m.nav.Searching() || m.nav.MatchCount() != 1 {
		return nil
	}
	generation := m.autocdGen
	return tea.Tick(*m.cfg.AutocdTimeout, func(time.Time) tea.Msg {
		return autocdMsg{generation: generation}
	})
}

func (m *Model) handleAutocd(msg autocdMsg) (tea.Model, tea.Cmd) {
	if msg.generation != m.autocdGen {
		return m, nil
	}
	if !m.nav.Searching() || m.nav.MatchCount() != 1 {
		return m, nil
	}
	entry, ok := m.nav.CurrentEntry()
	if !ok || !entry.IsDir {
		return m, nil
	}
	m.nav.ClearSearch()
	return m.enterCursor(false)
}

func (m *Model) enterCursor(exitAfter bool) (tea.Model, tea.Cmd) {
	if err := m.nav.ChangeDir(""); err != nil {
		return m, nil
	}
	m.dirChanged()
	if exitAfter {
		return m.exit(false)
	}
	return m, nil
}

func (m *Model) changeDir(token string) (tea.Model, tea.Cmd) {
	if err := m.nav.ChangeDir(token); err != nil {
		return m, nil
	}
	m.dirChanged()
	return m, nil
}

func (m *Model) gotoHome() (tea.Model, tea.Cmd) {
	home, err := os.UserHomeDir()
	if err != nil {
		m.nav.SetStatus("home directory unknown")
		return m, nil
	}
	if err := m.nav.HomePath(home); err != nil {
		return m, nil
	}
	m.dirChanged()
	return m, nil
}

func (m *Model) dirChanged() {
	if m.watcher != nil {
		m.watcher.SetDir(m.nav.Path())
	}
}

// exit ends the session. A canceled exit keeps the caller in its
// current directory; either way the cursor history is flushed.
func (m *Model) exit(canceled bool) (tea.Model, tea.Cmd) {
	m.canceled = canceled
	m.quitting = true
	if err := m.nav.OnExit(); err != nil {
		log.Printf("history save on exit: %v", err)
	}
	if m.watcher != nil {
		m.watcher.Stop()
	}
	return m, tea.Quit
}

// Result returns the directory to change into and whether the session
// ended with a cd at all.
func (m *Model) Result() (string, bool) {
	return m.nav.Path(), !m.canceled
}
