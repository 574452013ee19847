package ui

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

var ansiRegexp = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string { return ansiRegexp.ReplaceAllString(s, "") }

func visibleWidth(s string) int { return runewidth.StringWidth(stripANSI(s)) }

// Panel draws a framed box using the current theme.
func Panel(w io.Writer, lines []string) {
	t := Current()
	// compute visible width
	maxw := 0
	for _, ln := range lines {
		if vw := visibleWidth(ln); vw > maxw {
			maxw = vw
		}
	}
	pad := func(s string) string {
		if vis := visibleWidth(s); vis < maxw {
			s = s + strings.Repeat(" ", maxw-vis)
		}
		return s
	}
	fmt.Fprintln(w, t.CornerTL+strings.Repeat(t.H, maxw+2)+t.CornerTR)
	for _, ln := range lines {
		fmt.Fprintln(w, t.V+" "+pad(ln)+" "+t.V)
	}
	fmt.Fprintln(w, t.CornerBL+strings.Repeat(t.H, maxw+2)+t.CornerBR)
}

// Ratio renders a bar of how much of total is n, e.g. the to-buy share.
func Ratio(n, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width < 5 {
		width = 5
	}
	filled := int(float64(n) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	pct := int(float64(n) / float64(total) * 100)
	return fmt.Sprintf("%s %3d%%", bar, pct)
}

// Width is the terminal width clamped to [minw, maxw]; maxw when stdout is
// not a terminal.
func Width(minw, maxw int) int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	switch {
	case err != nil:
		return maxw
	case width < minw:
		return minw
	case width > maxw:
		return maxw
	}
	return width
}

// Truncate shortens s to n cells, ending in "...".
func Truncate(s string, n int) string {
	if n < 4 || runewidth.StringWidth(s) <= n {
		return s
	}
	return runewidth.Truncate(s, n, "...")
}
