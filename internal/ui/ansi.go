package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

var (
	reset = "\033[0m"
	bold  = "\033[1m"

	fgGray   = "\033[90m"
	fgGreen  = "\033[32m"
	fgYellow = "\033[33m"
	fgBlue   = "\033[34m"
	fgRed    = "\033[31m"

	symCheck = "✔"
	symCross = "✖"
)

// Dim is the faint SGR code used for row numbers.
const Dim = "\033[2m"

var (
	forceColor   bool
	disableColor bool
	// plainTheme is set by the mono theme, independently of forcing.
	plainTheme   bool
)

// SetColorForcing overrides TTY detection: force colors even when piped, or
// disable them everywhere. Disable wins.
func SetColorForcing(force, disable bool) {
	forceColor = force
	disableColor = disable
}

// SetColorMode maps the --color flag (auto, always, never) to SetColorForcing.
func SetColorMode(mode string) error {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto":
		SetColorForcing(false, false)
	case "always":
		SetColorForcing(true, false)
	case "never":
		SetColorForcing(false, true)
	default:
		return fmt.Errorf("color: want auto, always or never, got %q", mode)
	}
	return nil
}

func isTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

func C(color, s string) string {
	switch {
	case disableColor || plainTheme || color == "":
		return s
	case forceColor:
		return color + s + reset
	case os.Getenv("NO_COLOR") != "" || !isTTY():
		return s
	}
	return color + s + reset
}

func OK(w io.Writer, msg string)   { fmt.Fprintln(w, C(fgGreen, symCheck+" "+msg)) }
func Fail(w io.Writer, msg string) { fmt.Fprintln(w, C(fgRed, symCross+" "+msg)) }
