// Package shellinit emits the shell function that makes lazycd change
// the caller's directory. The binary itself prints the destination on
// stdout; the wrapper captures it and runs the cd.
package shellinit

import (
	"fmt"
	"os"
	"path"
	"strconv"
	"strings"
)

// Script returns the wrapper for the named shell. An empty name falls
// back to detection from the environment, and unknown shells get the
// POSIX wrapper.
func Script(shell string) string {
	return scriptFor(shell, executable(), os.Getenv)
}

func scriptFor(shell, exe string, getenv func(string) string) string {
	if shell == "" {
		shell = detectShell(getenv)
	}
	quoted := strconv.Quote(exe)

	switch normalizeShellName(shell) {
	case "fish":
		return fmt.Sprintf(`function lazycd
    set -l dest (command %s $argv)
    and test -n "$dest"
    and builtin cd "$dest"
end
`, quoted)
	case "pwsh", "powershell":
		return fmt.Sprintf(`function lazycd {
    $dest = & %s @Args
    if ($LASTEXITCODE -eq 0 -and $dest) {
        Set-Location $dest
    }
}
`, quoted)
	default:
		// bash, zsh, sh, ksh and anything POSIX enough.
		return fmt.Sprintf(`lazycd() {
    dest=$(command %s "$@") || return $?
    if [ -n "$dest" ]; then
        cd "$dest" || return $?
    fi
}
`, quoted)
	}
}

func executable() string {
	exe, err := os.Executable()
	if err != nil {
		return "lazycd"
	}
	return exe
}

func detectShell(getenv func(string) string) string {
	if shell := normalizeShellName(getenv("SHELL")); shell != "" {
		return shell
	}
	return "bash"
}

func normalizeShellName(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	value = strings.Trim(value, `"'`)
	value = strings.ReplaceAll(value, "\\", "/")
	base := strings.ToLower(path.Base(value))
	return strings.TrimSuffix(base, ".exe")
}
