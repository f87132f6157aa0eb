// Package theme provides color palettes for the TUI.
package theme

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colors used by the renderer.
type Theme struct {
	Accent      lipgloss.Color // header and cursor row background
	AccentFg    lipgloss.Color // text on Accent
	MatchBg     lipgloss.Color // background for matched characters
	SymlinkFg   lipgloss.Color
	DirFg       lipgloss.Color
	FileFg      lipgloss.Color
	MutedFg     lipgloss.Color
	ErrorFg     lipgloss.Color
	StatusFg    lipgloss.Color
	FooterFg    lipgloss.Color
	HelpTitleFg lipgloss.Color
}

// Theme names.
const (
	DefaultName = "default"
	DraculaName = "dracula"
	NordName    = "nord"
	GruvboxName = "gruvbox-dark"
	LightName   = "clean-light"
	MonoName    = "mono"
)

// Default returns the terminal-friendly default palette built from the
// 256-color cube so it adapts to the user's terminal theme.
func Default() *Theme {
	return &Theme{
		Accent:      lipgloss.Color("250"),
		AccentFg:    lipgloss.Color("235"),
		MatchBg:     lipgloss.Color("240"),
		SymlinkFg:   lipgloss.Color("45"),
		DirFg:       lipgloss.Color("255"),
		FileFg:      lipgloss.Color("250"),
		MutedFg:     lipgloss.Color("244"),
		ErrorFg:     lipgloss.Color("196"),
		StatusFg:    lipgloss.Color("255"),
		FooterFg:    lipgloss.Color("250"),
		HelpTitleFg: lipgloss.Color("141"),
	}
}

// Dracula returns the Dracula palette.
func Dracula() *Theme {
	return &Theme{
		Accent:      lipgloss.Color("#BD93F9"),
		AccentFg:    lipgloss.Color("#282A36"),
		MatchBg:     lipgloss.Color("#44475A"),
		SymlinkFg:   lipgloss.Color("#8BE9FD"),
		DirFg:       lipgloss.Color("#F8F8F2"),
		FileFg:      lipgloss.Color("#BFBFBF"),
		MutedFg:     lipgloss.Color("#6272A4"),
		ErrorFg:     lipgloss.Color("#FF5555"),
		StatusFg:    lipgloss.Color("#F8F8F2"),
		FooterFg:    lipgloss.Color("#F8F8F2"),
		HelpTitleFg: lipgloss.Color("#FF79C6"),
	}
}

// Nord returns the Nord palette.
func Nord() *Theme {
	return &Theme{
		Accent:      lipgloss.Color("#88C0D0"),
		AccentFg:    lipgloss.Color("#2E3440"),
		MatchBg:     lipgloss.Color("#434C5E"),
		SymlinkFg:   lipgloss.Color("#8FBCBB"),
		DirFg:       lipgloss.Color("#ECEFF4"),
		FileFg:      lipgloss.Color("#D8DEE9"),
		MutedFg:     lipgloss.Color("#4C566A"),
		ErrorFg:     lipgloss.Color("#BF616A"),
		StatusFg:    lipgloss.Color("#ECEFF4"),
		FooterFg:    lipgloss.Color("#E5E9F0"),
		HelpTitleFg: lipgloss.Color("#81A1C1"),
	}
}

// GruvboxDark returns the gruvbox dark palette.
func GruvboxDark() *Theme {
	return &Theme{
		Accent:      lipgloss.Color("#D79921"),
		AccentFg:    lipgloss.Color("#282828"),
		MatchBg:     lipgloss.Color("#504945"),
		SymlinkFg:   lipgloss.Color("#83A598"),
		DirFg:       lipgloss.Color("#EBDBB2"),
		FileFg:      lipgloss.Color("#BDAE93"),
		MutedFg:     lipgloss.Color("#928374"),
		ErrorFg:     lipgloss.Color("#FB4934"),
		StatusFg:    lipgloss.Color("#EBDBB2"),
		FooterFg:    lipgloss.Color("#D5C4A1"),
		HelpTitleFg: lipgloss.Color("#FABD2F"),
	}
}

// CleanLight returns a palette for light terminal backgrounds.
func CleanLight() *Theme {
	return &Theme{
		Accent:      lipgloss.Color("#0969DA"),
		AccentFg:    lipgloss.Color("#FFFFFF"),
		MatchBg:     lipgloss.Color("#DDF4FF"),
		SymlinkFg:   lipgloss.Color("#0891B2"),
		DirFg:       lipgloss.Color("#24292F"),
		FileFg:      lipgloss.Color("#57606A"),
		MutedFg:     lipgloss.Color("#6E7781"),
		ErrorFg:     lipgloss.Color("#DC2626"),
		StatusFg:    lipgloss.Color("#24292F"),
		FooterFg:    lipgloss.Color("#424A53"),
		HelpTitleFg: lipgloss.Color("#8250DF"),
	}
}

// Mono returns a colorless palette for minimal terminals.
func Mono() *Theme {
	return &Theme{
		Accent:      lipgloss.Color("7"),
		AccentFg:    lipgloss.Color("0"),
		MatchBg:     lipgloss.Color("8"),
		SymlinkFg:   lipgloss.Color("7"),
		DirFg:       lipgloss.Color("15"),
		FileFg:      lipgloss.Color("7"),
		MutedFg:     lipgloss.Color("8"),
		ErrorFg:     lipgloss.Color("15"),
		StatusFg:    lipgloss.Color("15"),
		FooterFg:    lipgloss.Color("7"),
		HelpTitleFg: lipgloss.Color("15"),
	}
}

var themes = map[string]func() *Theme{
	DefaultName: Default,
	DraculaName: Dracula,
	NordName:    Nord,
	GruvboxName: GruvboxDark,
	LightName:   CleanLight,
	MonoName:    Mono,
}

// Get returns the theme with the given name, falling back to the
// default palette for unknown names.
func Get(name string) *Theme {
	if builder, ok := themes[name]; ok {
		return builder()
	}
	return Default()
}

// Known reports whether name is a valid theme name.
func Known(name string) bool {
	_, ok := themes[name]
	return ok
}

// Available returns the sorted list of theme names.
func Available() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
