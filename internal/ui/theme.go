package ui

import "strings"

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Title, Muted, Accent, Success, Error, Pending string
	ArrowRight, ArrowLeft                         string
	CornerTL, CornerTR, CornerBL, CornerBR        string
	H, V                                          string
}

var current = classic()

// SetTheme picks classic, neon or mono; unknown names fall back to classic.
func SetTheme(name string) {
	plainTheme = false
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "neon":
		current = Theme{
			Title: "\033[95m", // bright magenta
			Muted: fgGray, Accent: "\033[96m",
			Success: fgGreen, Error: fgRed, Pending: "\033[93m",
			ArrowRight: "⇨", ArrowLeft: "⇦",
			CornerTL: "╭", CornerTR: "╮", CornerBL: "╰", CornerBR: "╯",
			H: "─", V: "│",
		}
	case "mono":
		plainTheme = true
		current = Theme{
			ArrowRight: "->", ArrowLeft: "<-",
			CornerTL: "+", CornerTR: "+", CornerBL: "+", CornerBR: "+",
			H: "-", V: "|",
		}
	default:
		current = classic()
	}
}

func classic() Theme {
	return Theme{
		Title: bold, Muted: fgGray, Accent: fgBlue,
		Success: fgGreen, Error: fgRed, Pending: fgYellow,
		ArrowRight: "→", ArrowLeft: "←",
		CornerTL: "┌", CornerTR: "┐", CornerBL: "└", CornerBR: "┘",
		H: "─", V: "│",
	}
}

// Expose what renderers need
func Current() Theme { return current }
