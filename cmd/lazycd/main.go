// Package main is the entry point for the lazycd browser.
package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/chmouel/lazycd/internal/app"
	"github.com/chmouel/lazycd/internal/buildinfo"
	"github.com/chmouel/lazycd/internal/config"
	"github.com/chmouel/lazycd/internal/history"
	"github.com/chmouel/lazycd/internal/log"
	"github.com/chmouel/lazycd/internal/nav"
	"github.com/chmouel/lazycd/internal/shellinit"
	urfavecli "github.com/urfave/cli/v2"
	"golang.org/x/term"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

func main() {
	buildinfo.Set(version, commit, date, builtBy)
	urfavecli.VersionPrinter = func(*urfavecli.Context) {
		fmt.Println(buildinfo.String())
	}

	cliApp := &urfavecli.App{
		Name:                 "lazycd",
		Usage:                "An interactive cd: browse and search directories, land where you meant to",
		ArgsUsage:            "[directory]",
		Version:              version,
		EnableBashCompletion: true,

		Flags: globalFlags(),

		Commands: []*urfavecli.Command{
			shellInitCommand(),
		},

		Action: runTUI,
	}

	if err := cliApp.Run(os.Args); err != nil {
		if msg := err.Error(); msg != "" {
			fmt.Fprintf(os.Stderr, "%v\n", msg)
		}
		code := 1
		var coder urfavecli.ExitCoder
		if errors.As(err, &coder) {
			code = coder.ExitCode()
		}
		os.Exit(code)
	}
}

// runTUI is the default action that launches the browser when no
// subcommand is given.
func runTUI(c *urfavecli.Context) error {
	// Set up debug logging before loading config
	if debugLog := c.String("debug-log"); debugLog != "" {
		path := debugLog
		if expanded, err := config.ExpandPath(debugLog); err == nil {
			path = expanded
		}
		if err := log.SetFile(path); err != nil {
			fmt.Fprintf(os.Stderr, "Error opening debug log file %q: %v\n", path, err)
		}
	}

	cfg, err := config.Load(c.String("config-file"))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := applyFlags(cfg, c); err != nil {
		return err
	}

	// If debug log wasn't set via flag, check if it's in the config
	if c.String("debug-log") == "" {
		if cfg.DebugLog != "" {
			path := cfg.DebugLog
			if expanded, err := config.ExpandPath(cfg.DebugLog); err == nil {
				path = expanded
			}
			if err := log.SetFile(path); err != nil {
				fmt.Fprintf(os.Stderr, "Error opening debug log file from config %q: %v\n", path, err)
			}
		} else {
			// No debug log configured, discard any buffered logs
			_ = log.SetFile("")
		}
	}

	// The UI draws on stderr so stdout stays clean for the final path.
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return errors.New("lazycd needs a terminal on stderr; run it through the shell-init wrapper")
	}

	startDir := c.Args().First()
	if startDir == "" {
		startDir = "."
	}

	store, err := historyStore(cfg)
	if err != nil {
		return err
	}
	navigator, err := nav.New(startDir, nav.Options{
		FoldersOnly:  cfg.FoldersOnly,
		FilterSearch: cfg.FilterSearch,
		CaseMode:     cfg.CaseMode,
		GapMode:      cfg.GapMode,
		History:      store,
	})
	if err != nil {
		return err
	}

	model := app.NewModel(navigator, cfg)
	opts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithOutput(os.Stderr),
	}
	if cfg.MouseEnabled {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	final, err := tea.NewProgram(model, opts...).Run()
	if err != nil {
		_ = log.Close()
		return fmt.Errorf("running ui: %w", err)
	}
	if err := log.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error closing debug log: %v\n", err)
	}

	finalModel, ok := final.(*app.Model)
	if !ok {
		return errors.New("unexpected final model")
	}
	path, cd := finalModel.Result()
	if !cd {
		// Exit without cd: no output, distinct exit code for the
		// wrapper to leave the caller where they are.
		return urfavecli.Exit("", 1)
	}
	fmt.Println(path)
	return nil
}

// historyStore builds the cursor history store from the settings.
// Empty means the default location, "-" disables persistence.
func historyStore(cfg *config.Settings) (*history.Store, error) {
	switch cfg.HistoryFile {
	case "-":
		return history.NewStore(""), nil
	case "":
		return history.NewStore(history.DefaultPath()), nil
	default:
		expanded, err := config.ExpandPath(cfg.HistoryFile)
		if err != nil {
			return nil, fmt.Errorf("expanding history file: %w", err)
		}
		return history.NewStore(expanded), nil
	}
}

func shellInitCommand() *urfavecli.Command {
	return &urfavecli.Command{
		Name:      "shell-init",
		Usage:     "Print the shell function that makes lazycd change your directory",
		ArgsUsage: "[shell]",
		Description: "Add to your shell startup file, for example:\n" +
			"   eval \"$(lazycd shell-init)\"          # bash, zsh\n" +
			"   lazycd shell-init fish | source      # fish",
		Action: func(c *urfavecli.Context) error {
			fmt.Print(shellinit.Script(c.Args().First()))
			return nil
		},
	}
}
