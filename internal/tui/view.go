package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/idilsaglam/grocery/internal/model"
)

const (
	appTitle       = "Grocery Tracker"
	loadingText    = "Loading..."
	emptyText      = "No items here."
	toBuyTitle     = "To Buy"
	inStockTitle   = "In stock"
	othersTitle    = "Others"
	othersSubtitle = "Shared note. Auto-saves everywhere."
)

func (m Model) View() string {
	var parts []string
	parts = append(parts, titleStyle.Render(appTitle))

	if m.st.Loading {
		parts = append(parts, m.spin.View()+" "+mutedStyle.Render(loadingText))
		parts = append(parts, helpStyle.Render("q: quit"))
		return strings.Join(parts, "\n\n")
	}

	toBuy, inStock := model.Partition(m.st.Items)
	parts = append(parts,
		summary(m.st.Items),
		m.panel(sectionToBuy, renderSection(toBuyHeader.Render(toBuyTitle), toBuy, arrowRight, m.cursor[sectionToBuy], m.focus == sectionToBuy)),
		m.panel(sectionInStock, renderSection(inStockHeader.Render(inStockTitle), inStock, arrowLeft, m.cursor[sectionInStock], m.focus == sectionInStock)),
		m.panel(sectionNote, m.renderNote()),
	)

	k := m.keys
	k.editing = m.focus == sectionNote
	parts = append(parts, m.help.View(k))
	return strings.Join(parts, "\n")
}

func (m Model) panel(s section, inner string) string {
	st := panelStyle
	if m.focus == s {
		st = focusedPanelStyle
	}
	return st.Width(max(30, m.width-2)).Render(inner)
}

// renderSection draws a header plus one numbered row per item, or the empty
// placeholder. Only the focused section marks its cursor row.
func renderSection(header string, items []model.Item, arrow string, cursor int, focused bool) string {
	lines := []string{header}
	if len(items) == 0 {
		lines = append(lines, mutedStyle.Render(emptyText))
		return strings.Join(lines, "\n")
	}
	for i, it := range items {
		prefix := "  "
		text := rowText(i+1, it, arrow)
		if focused && i == cursor {
			prefix = selectedStyle.Render("> ")
			text = selectedStyle.Render(text)
		}
		lines = append(lines, prefix+text)
	}
	return strings.Join(lines, "\n")
}

// rowText is one row: 1-based position, name, and the direction it moves.
func rowText(pos int, it model.Item, arrow string) string {
	name := runewidth.Truncate(it.Name, 60, "...")
	return fmt.Sprintf("%2d. %s  %s", pos, name, arrow)
}

func (m Model) renderNote() string {
	lines := []string{
		othersHeader.Render(othersTitle),
		mutedStyle.Render(othersSubtitle),
		m.note.View(),
	}
	if m.st.SaveStatus != "" {
		lines = append(lines, successStyle.Render(m.st.SaveStatus))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// summary counts both sides of the list.
func summary(items []model.Item) string {
	b, s := model.Stats(items)
	return mutedStyle.Render(fmt.Sprintf("%s · %s", accentStyle.Render(fmt.Sprintf("%d to buy", b)), fmt.Sprintf("%d in stock", s)))
}
