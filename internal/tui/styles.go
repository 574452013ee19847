package tui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ------- minimal styling helpers (Lip Gloss) -------
var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	mutedStyle   = lipgloss.NewStyle().Faint(true)

	selectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)

	// Section headers keep the shared list's colors: green for the to-buy
	// side, red for the in-stock side.
	toBuyHeader = lipgloss.NewStyle().Bold(true).Padding(0, 1).
			Foreground(lipgloss.Color("#1f2937")).Background(lipgloss.Color("#d1fae5"))
	inStockHeader = lipgloss.NewStyle().Bold(true).Padding(0, 1).
			Foreground(lipgloss.Color("#1f2937")).Background(lipgloss.Color("#fecaca"))
	othersHeader = lipgloss.NewStyle().Bold(true).Padding(0, 1).Reverse(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
	focusedPanelStyle = panelStyle.BorderForeground(lipgloss.Color("12"))

	arrowRight = "→"
	arrowLeft  = "←"
)

// applyColorProfile picks Lip Gloss's profile for the view. NO_COLOR and the
// mono theme force plain output; otherwise trust the terminal, upgrading to
// 256 colors when TERM says so.
func applyColorProfile(theme string) {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" || strings.EqualFold(strings.TrimSpace(theme), "mono") {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	profile := termenv.ColorProfile()
	if profile == termenv.ANSI && strings.Contains(os.Getenv("TERM"), "256color") {
		profile = termenv.ANSI256
	}
	lipgloss.SetColorProfile(profile)
}
