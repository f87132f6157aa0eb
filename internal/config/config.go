// Package config loads the session settings from YAML and CLI flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/chmouel/lazycd/internal/search"
	"github.com/chmouel/lazycd/internal/theme"
)

// DefaultAutocdTimeout is used when autocd is enabled without a value.
const DefaultAutocdTimeout = 200 * time.Millisecond

// Settings holds the immutable configuration for one session. The CLI
// layer fills it from the config file and flags before the UI starts;
// the core only ever reads it.
type Settings struct {
	// FoldersOnly hides non-directories from the listing.
	FoldersOnly bool
	// FilterSearch hides non-matching entries while searching instead
	// of highlighting them in place.
	FilterSearch bool

	CaseMode search.CaseMode
	GapMode  search.GapMode

	// AutocdTimeout is the delay before a sole remaining match is
	// entered automatically; nil disables the feature.
	AutocdTimeout *time.Duration

	// HistoryFile is the cursor history location. Empty selects the
	// default under the user cache dir; "-" disables persistence.
	HistoryFile string

	MouseEnabled bool

	// EnterCdExit makes Enter change into the entry and exit.
	EnterCdExit bool
	// EscCancel makes Esc exit without changing directory.
	EscCancel bool

	ShowIcons bool
	Theme     string
	DebugLog  string
}

// Default returns the built-in settings, matching the documented
// defaults: smart case, gap search from start, autocd off.
func Default() *Settings {
	return &Settings{
		CaseMode:  search.SmartCase,
		GapMode:   search.GapFromStart,
		ShowIcons: true,
		Theme:     theme.DefaultName,
	}
}

func coerceBool(value any, defaultVal bool) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "yes", "on", "1":
			return true
		case "false", "no", "off", "0":
			return false
		}
	case int:
		return v != 0
	}
	return defaultVal
}

func coerceString(value any) string {
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

func parseCaseMode(value string) (search.CaseMode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "smart-case", "smart_case", "smart":
		return search.SmartCase, nil
	case "case-sensitive", "case_sensitive", "sensitive":
		return search.CaseSensitive, nil
	case "ignore-case", "ignore_case", "ignore":
		return search.IgnoreCase, nil
	}
	return search.SmartCase, fmt.Errorf("unknown case mode %q", value)
}

func parseGapMode(value string) (search.GapMode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "gap-search", "gap_search", "from-start":
		return search.GapFromStart, nil
	case "gap-search-anywhere", "gap_search_anywhere", "anywhere":
		return search.GapAnywhere, nil
	case "no-gap-search", "no_gap_search", "normal":
		return search.NoGap, nil
	}
	return search.GapFromStart, fmt.Errorf("unknown gap mode %q", value)
}

// ParseAutocdTimeout interprets an autocd-timeout value: a millisecond
// count, or "off" to disable.
func ParseAutocdTimeout(value string) (*time.Duration, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	switch value {
	case "", "off", "none":
		return nil, nil
	}
	ms, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid autocd-timeout %q", value)
	}
	d := time.Duration(ms) * time.Millisecond
	return &d, nil
}

func applyYAML(s *Settings, data map[string]any) error {
	s.FoldersOnly = coerceBool(data["folders_only"], s.FoldersOnly)
	s.FilterSearch = coerceBool(data["filter_search"], s.FilterSearch)
	s.MouseEnabled = coerceBool(data["mouse"], s.MouseEnabled)
	s.EnterCdExit = coerceBool(data["enter_cd_exit"], s.EnterCdExit)
	s.EscCancel = coerceBool(data["esc_cancel"], s.EscCancel)
	s.ShowIcons = coerceBool(data["show_icons"], s.ShowIcons)

	if v, ok := data["case_mode"]; ok {
		mode, err := parseCaseMode(coerceString(v))
		if err != nil {
			return err
		}
		s.CaseMode = mode
	}
	if v, ok := data["gap_mode"]; ok {
		mode, err := parseGapMode(coerceString(v))
		if err != nil {
			return err
		}
		s.GapMode = mode
	}
	if v, ok := data["autocd_timeout"]; ok {
		raw := ""
		switch t := v.(type) {
		case int:
			raw = strconv.Itoa(t)
		default:
			raw = coerceString(v)
		}
		timeout, err := ParseAutocdTimeout(raw)
		if err != nil {
			return err
		}
		s.AutocdTimeout = timeout
	}
	if v := coerceString(data["history_file"]); v != "" {
		s.HistoryFile = v
	}
	if v := coerceString(data["theme"]); v != "" {
		s.Theme = v
	}
	if v := coerceString(data["debug_log"]); v != "" {
		s.DebugLog = v
	}
	return nil
}

func configDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return xdg
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config")
}

// DefaultConfigPath returns the standard config file location.
func DefaultConfigPath() string {
	return filepath.Join(configDir(), "lazycd", "config.yaml")
}

// Load reads the configuration file at path, or the default location
// when path is empty. A missing file yields the defaults; a malformed
// file is an error so bad settings are caught at startup.
func Load(path string) (*Settings, error) {
	s := Default()

	if path == "" {
		path = DefaultConfigPath()
	} else {
		expanded, err := ExpandPath(path)
		if err != nil {
			return s, err
		}
		path = expanded
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, err
	}

	var yamlData map[string]any
	if err := yaml.Unmarshal(data, &yamlData); err != nil {
		return s, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := applyYAML(s, yamlData); err != nil {
		return s, fmt.Errorf("parsing %s: %w", path, err)
	}
	return s, nil
}

// ExpandPath resolves a leading ~ to the user home directory.
func ExpandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
	}
	return path, nil
}
