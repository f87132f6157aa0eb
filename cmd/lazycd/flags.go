package main

import (
	"fmt"

	"github.com/chmouel/lazycd/internal/config"
	"github.com/chmouel/lazycd/internal/search"
	"github.com/chmouel/lazycd/internal/theme"
	urfavecli "github.com/urfave/cli/v2"
)

func globalFlags() []urfavecli.Flag {
	return []urfavecli.Flag{
		&urfavecli.BoolFlag{
			Name:    "folders-only",
			Aliases: []string{"f"},
			Usage:   "Show only folders in the listing",
		},
		&urfavecli.BoolFlag{
			Name:  "filter-search",
			Usage: "Hide non-matching entries while searching instead of highlighting them",
		},
		&urfavecli.BoolFlag{
			Name:    "case-sensitive",
			Aliases: []string{"s"},
			Usage:   "Case sensitive search",
		},
		&urfavecli.BoolFlag{
			Name:    "ignore-case",
			Aliases: []string{"i"},
			Usage:   "Case insensitive search",
		},
		&urfavecli.BoolFlag{
			Name:    "smart-case",
			Aliases: []string{"S"},
			Usage:   "Case sensitive search only when the query has uppercase letters (default)",
		},
		&urfavecli.BoolFlag{
			Name:  "gap-search",
			Usage: "Match entries with gaps after the first query character (default)",
		},
		&urfavecli.BoolFlag{
			Name:  "gap-search-anywhere",
			Usage: "Match entries with gaps anywhere, including before the first query character",
		},
		&urfavecli.BoolFlag{
			Name:    "no-gap-search",
			Aliases: []string{"n"},
			Usage:   "Match only consecutive characters at the start of an entry",
		},
		&urfavecli.StringFlag{
			Name:  "autocd-timeout",
			Usage: "Milliseconds before a sole match is entered automatically, or \"off\"",
		},
		&urfavecli.StringFlag{
			Name:  "history-file",
			Usage: "Cursor history location, or \"-\" to disable persistence",
		},
		&urfavecli.StringFlag{
			Name:  "mouse",
			Usage: "Enable mouse navigation (\"on\" or \"off\")",
		},
		&urfavecli.BoolFlag{
			Name:  "enter-cd-exit",
			Usage: "Enter changes into the selected directory and exits",
		},
		&urfavecli.BoolFlag{
			Name:  "esc-cancel",
			Usage: "Esc exits without changing directory",
		},
		&urfavecli.BoolFlag{
			Name:  "no-icons",
			Usage: "Disable file type icons",
		},
		&urfavecli.StringFlag{
			Name:  "theme",
			Usage: "Color theme name",
		},
		&urfavecli.StringFlag{
			Name:  "config-file",
			Usage: "Path to the config file",
		},
		&urfavecli.StringFlag{
			Name:  "debug-log",
			Usage: "Write debug output to this file",
		},
	}
}

// applyFlags layers command line options over the file settings. A
// flag left at its zero value keeps whatever the file chose.
func applyFlags(cfg *config.Settings, c *urfavecli.Context) error {
	if c.Bool("folders-only") {
		cfg.FoldersOnly = true
	}
	if c.Bool("filter-search") {
		cfg.FilterSearch = true
	}

	switch {
	case c.Bool("case-sensitive"):
		cfg.CaseMode = search.CaseSensitive
	case c.Bool("ignore-case"):
		cfg.CaseMode = search.IgnoreCase
	case c.Bool("smart-case"):
		cfg.CaseMode = search.SmartCase
	}

	switch {
	case c.Bool("no-gap-search"):
		cfg.GapMode = search.NoGap
	case c.Bool("gap-search-anywhere"):
		cfg.GapMode = search.GapAnywhere
	case c.Bool("gap-search"):
		cfg.GapMode = search.GapFromStart
	}

	if c.IsSet("autocd-timeout") {
		timeout, err := config.ParseAutocdTimeout(c.String("autocd-timeout"))
		if err != nil {
			return err
		}
		cfg.AutocdTimeout = timeout
	}
	if c.IsSet("history-file") {
		cfg.HistoryFile = c.String("history-file")
	}
	if c.IsSet("mouse") {
		switch c.String("mouse") {
		case "on":
			cfg.MouseEnabled = true
		case "off":
			cfg.MouseEnabled = false
		default:
			return fmt.Errorf("invalid --mouse value %q: want on or off", c.String("mouse"))
		}
	}
	if c.Bool("enter-cd-exit") {
		cfg.EnterCdExit = true
	}
	if c.Bool("esc-cancel") {
		cfg.EscCancel = true
	}
	if c.Bool("no-icons") {
		cfg.ShowIcons = false
	}
	if name := c.String("theme"); name != "" {
		if !theme.Known(name) {
			return fmt.Errorf("unknown theme %q", name)
		}
		cfg.Theme = name
	}
	if debugLog := c.String("debug-log"); debugLog != "" {
		cfg.DebugLog = debugLog
	}
	return nil
}
