package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/idilsaglam/grocery/internal/model"
	"github.com/idilsaglam/grocery/internal/notesaver"
	"github.com/idilsaglam/grocery/internal/remote"
	"github.com/idilsaglam/grocery/internal/state"
)

type section int

const (
	sectionToBuy section = iota
	sectionInStock
	sectionNote
	sectionCount
)

// Messages. Every result of I/O comes back as one of these and is folded
// into state inside Update.
type (
	itemsLoadedMsg    struct{ items []model.Item }
	noteLoadedMsg     struct{ text string }
	saveDueMsg        struct{ seq uint64 }
	noteSavedMsg      struct{}
	confirmExpiredMsg struct{ seq uint64 }
)

// Model is the grocery view.
type Model struct {
	ctx        context.Context
	store      remote.Store
	log        *logrus.Entry
	confirmFor time.Duration

	st    state.State
	saver notesaver.Saver

	focus  section
	cursor [2]int

	note textarea.Model
	spin spinner.Model
	help help.Model
	keys keyMap

	width  int
	height int

	unsaved    string
	hasUnsaved bool
}

// New builds the view. ctx bounds every request the view issues.
func New(ctx context.Context, store remote.Store, opts Options) Model {
	opts = opts.withDefaults()

	ta := textarea.New()
	ta.Placeholder = "Write something..."
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	ta.CharLimit = 0
	ta.SetHeight(4)
	ta.SetWidth(60)
	ta.Blur()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = mutedStyle

	h := help.New()
	h.Styles.ShortKey = helpStyle
	h.Styles.ShortDesc = helpStyle

	return Model{
		ctx:        ctx,
		store:      store,
		log:        opts.Log.WithField("component", "view"),
		confirmFor: opts.ConfirmFor,
		st:         state.Initial(),
		saver:      notesaver.New(opts.SaveDebounce),
		focus:      sectionToBuy,
		note:       ta,
		spin:       sp,
		help:       h,
		keys:       newKeyMap(),
		width:      80,
		height:     24,
	}
}

// State exposes the current view state (read-only copy).
func (m Model) State() state.State { return m.st }

// Unsaved returns a note edit whose save was still pending when the view
// stopped. The pending deadline is cancelled either way.
func (m Model) Unsaved() (string, bool) {
	if m.hasUnsaved {
		return m.unsaved, true
	}
	s := m.saver
	return s.Cancel()
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadNoteCmd(), m.spin.Tick)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.note.SetWidth(max(20, m.width-6))
		return m, nil

	case itemsLoadedMsg:
		m.st = state.Reduce(m.st, state.ItemsLoaded{Items: msg.items})
		m.clampCursors()
		return m, nil

	case noteLoadedMsg:
		m.st = state.Reduce(m.st, state.NoteLoaded{Text: editorText(msg.text)})
		if m.note.Value() != m.st.Note {
			m.note.SetValue(m.st.Note)
		}
		return m, nil

	case saveDueMsg:
		text, ok := m.saver.Expire(msg.seq)
		if !ok {
			return m, nil
		}
		return m, m.saveNoteCmd(text)

	case noteSavedMsg:
		m.st = state.Reduce(m.st, state.NoteSaved{})
		seq := m.st.ConfirmSeq()
		return m, tea.Tick(m.confirmFor, func(time.Time) tea.Msg { return confirmExpiredMsg{seq: seq} })

	case confirmExpiredMsg:
		m.st = state.Reduce(m.st, state.ConfirmExpired{Seq: msg.seq})
		return m, nil

	case spinner.TickMsg:
		if !m.st.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQ) {
			return m.quit()
		}
		if m.focus == sectionNote {
			return m.updateNote(msg)
		}
		return m.updateLists(msg)
	}

	// Anything else (cursor blink and friends) belongs to the editor.
	if m.focus == sectionNote {
		var cmd tea.Cmd
		m.note, cmd = m.note.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateLists(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case m.st.Loading:
		return m, nil
	case key.Matches(msg, m.keys.Next):
		return m.setFocus((m.focus + 1) % sectionCount)
	case key.Matches(msg, m.keys.Prev):
		return m.setFocus((m.focus + sectionCount - 1) % sectionCount)
	case key.Matches(msg, m.keys.EditNote):
		return m.setFocus(sectionNote)
	case key.Matches(msg, m.keys.Refresh):
		return m, m.refreshCmd()
	case key.Matches(msg, m.keys.Up):
		if m.cursor[m.focus] > 0 {
			m.cursor[m.focus]--
		}
		return m, nil
	case key.Matches(msg, m.keys.Down):
		if m.cursor[m.focus] < len(m.sectionItems(m.focus))-1 {
			m.cursor[m.focus]++
		}
		return m, nil
	case key.Matches(msg, m.keys.Toggle),
		m.focus == sectionToBuy && key.Matches(msg, m.keys.MoveOut),
		m.focus == sectionInStock && key.Matches(msg, m.keys.MoveIn):
		it, ok := m.selected()
		if !ok {
			return m, nil
		}
		return m, m.toggleCmd(it.ID)
	}
	return m, nil
}

func (m Model) updateNote(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Leave):
		return m.setFocus(sectionToBuy)
	case key.Matches(msg, m.keys.Next):
		return m.setFocus(sectionToBuy)
	case key.Matches(msg, m.keys.Prev):
		return m.setFocus(sectionInStock)
	}

	before := m.note.Value()
	var cmd tea.Cmd
	m.note, cmd = m.note.Update(msg)
	after := m.note.Value()
	if after == before {
		return m, cmd
	}

	// The editor already shows the new text; only the write waits.
	m.st = state.Reduce(m.st, state.NoteEdited{Text: after})
	d := m.saver.Edit(after)
	due := tea.Tick(d.Delay, func(time.Time) tea.Msg { return saveDueMsg{seq: d.Seq} })
	return m, tea.Batch(cmd, due)
}

// editorText is s the way the textarea holds it: line breaks as "\n" and
// tabs expanded to four spaces. Loading the note through it keeps the working
// copy equal to what a later save writes back.
func editorText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.ReplaceAll(s, "\t", "    ")
}

func (m Model) setFocus(s section) (tea.Model, tea.Cmd) {
	m.focus = s
	if s == sectionNote {
		m.note.Focus()
		return m, textarea.Blink
	}
	m.note.Blur()
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.unsaved, m.hasUnsaved = m.saver.Cancel()
	m.note.Blur()
	return m, tea.Quit
}

func (m Model) sectionItems(s section) []model.Item {
	switch s {
	case sectionToBuy:
		return m.st.ToBuy()
	case sectionInStock:
		return m.st.InStock()
	}
	return nil
}

func (m Model) selected() (model.Item, bool) {
	if m.focus != sectionToBuy && m.focus != sectionInStock {
		return model.Item{}, false
	}
	items := m.sectionItems(m.focus)
	i := m.cursor[m.focus]
	if i < 0 || i >= len(items) {
		return model.Item{}, false
	}
	return items[i], true
}

func (m *Model) clampCursors() {
	for _, s := range []section{sectionToBuy, sectionInStock} {
		n := len(m.sectionItems(s))
		if m.cursor[s] >= n {
			m.cursor[s] = n - 1
		}
		if m.cursor[s] < 0 {
			m.cursor[s] = 0
		}
	}
}

// ---- commands: I/O off the update loop, failures logged and dropped ----

func (m Model) refreshCmd() tea.Cmd {
	ctx, store, log := m.ctx, m.store, m.log
	return func() tea.Msg {
		items, err := store.Items(ctx)
		if err != nil {
			log.WithError(err).Debug("refresh failed")
			return nil
		}
		return itemsLoadedMsg{items: items}
	}
}

// toggleCmd flips one item and only then re-reads the list.
func (m Model) toggleCmd(id model.ID) tea.Cmd {
	ctx, store, log := m.ctx, m.store, m.log
	return func() tea.Msg {
		if err := store.Toggle(ctx, id); err != nil {
			log.WithError(err).WithField("id", id.String()).Debug("toggle failed")
			if ctx.Err() != nil {
				return nil
			}
		}
		items, err := store.Items(ctx)
		if err != nil {
			log.WithError(err).Debug("refresh after toggle failed")
			return nil
		}
		return itemsLoadedMsg{items: items}
	}
}

func (m Model) loadNoteCmd() tea.Cmd {
	ctx, store, log := m.ctx, m.store, m.log
	return func() tea.Msg {
		n, err := store.Note(ctx)
		if err != nil {
			log.WithError(err).Debug("note load failed")
			return nil
		}
		return noteLoadedMsg{text: n.Text}
	}
}

func (m Model) saveNoteCmd(text string) tea.Cmd {
	ctx, store, log := m.ctx, m.store, m.log
	return func() tea.Msg {
		if err := store.SaveNote(ctx, text); err != nil {
			log.WithError(err).Debug("note save failed")
			return nil
		}
		return noteSavedMsg{}
	}
}
