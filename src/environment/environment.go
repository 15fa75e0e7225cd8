package environment

import (
	"os"

	"github.com/mattn/go-isatty"
)

var interactiveOverride *bool

// ForceSetIsInteractive allows overriding the interactive check, used by
// tests and by the -color flag of the CLI.
func ForceSetIsInteractive(value bool) {
	interactiveOverride = &value
}

// ResetIsInteractive removes any override set with ForceSetIsInteractive.
func ResetIsInteractive() {
	interactiveOverride = nil
}

// IsInteractive returns true if the code is run by a user with an interactive shell, false otherwise
func IsInteractive() bool {
	if interactiveOverride != nil {
		return *interactiveOverride
	}
	return isTerminal(os.Stdout) && isTerminal(os.Stdin)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// UseColor decides whether terminal output should be coloured. An explicit
// preference wins, then NO_COLOR, then whether stdout is a terminal.
func UseColor(preference *bool) bool {
	if preference != nil {
		return *preference
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if interactiveOverride != nil {
		return *interactiveOverride
	}
	return isTerminal(os.Stdout)
}
