// Package state holds everything the grocery view displays and the only
// function allowed to change it.
package state

import "github.com/idilsaglam/grocery/internal/model"

// SavedMessage is shown after a note write succeeds.
const SavedMessage = "Saved ✓"

// State is the view's whole world. Treat it as a value: Reduce returns a new one.
type State struct {
	// Items is the last list fetched from the store, replaced wholesale.
	Items []model.Item
	// Loading is true until the first successful fetch and never again after.
	Loading bool

	// Note is the working copy shown in the editor.
	Note string
	// NoteEdited is set by the first local keystroke; a late startup load
	// must not overwrite what the user typed.
	NoteEdited bool

	// SaveStatus is the transient confirmation; empty hides it.
	SaveStatus string
	// confirmSeq tags the visible confirmation so only its own timer clears it.
	confirmSeq uint64
}

// Initial is the state before anything was fetched.
func Initial() State {
	return State{Loading: true}
}

// Action is anything Reduce understands.
type Action interface{ action() }

type (
	// ItemsLoaded carries a full successful item fetch.
	ItemsLoaded struct{ Items []model.Item }
	// NoteLoaded carries the startup note fetch.
	NoteLoaded struct{ Text string }
	// NoteEdited is one local keystroke's resulting text.
	NoteEdited struct{ Text string }
	// NoteSaved marks a successful write.
	NoteSaved struct{}
	// ConfirmExpired asks to hide the confirmation tagged Seq.
	ConfirmExpired struct{ Seq uint64 }
)

func (ItemsLoaded) action()    {}
func (NoteLoaded) action()     {}
func (NoteEdited) action()     {}
func (NoteSaved) action()      {}
func (ConfirmExpired) action() {}

// Reduce applies a to s.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case ItemsLoaded:
		items := make([]model.Item, len(a.Items))
		copy(items, a.Items)
		s.Items = items
		s.Loading = false
	case NoteLoaded:
		if !s.NoteEdited {
			s.Note = a.Text
		}
	case NoteEdited:
		s.Note = a.Text
		s.NoteEdited = true
	case NoteSaved:
		s.confirmSeq++
		s.SaveStatus = SavedMessage
	case ConfirmExpired:
		if a.Seq == s.confirmSeq {
			s.SaveStatus = ""
		}
	}
	return s
}

// ConfirmSeq is the tag a ConfirmExpired must carry to clear the current
// confirmation.
func (s State) ConfirmSeq() uint64 { return s.confirmSeq }

// ToBuy and InStock are the two displayed lists; together they always
// partition Items.
func (s State) ToBuy() []model.Item {
	toBuy, _ := model.Partition(s.Items)
	return toBuy
}

func (s State) InStock() []model.Item {
	_, inStock := model.Partition(s.Items)
	return inStock
}
