package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/grocery/internal/model"
)

func milkEggs() []model.Item {
	return []model.Item{
		{ID: model.NumberID(1), Name: "Milk", InStock: true},
		{ID: model.NumberID(2), Name: "Eggs", InStock: false},
	}
}

func TestLoadingClearsOnceAndStaysCleared(t *testing.T) {
	s := Initial()
	assert.True(t, s.Loading)

	s = Reduce(s, ItemsLoaded{Items: milkEggs()})
	assert.False(t, s.Loading)

	for i := 0; i < 3; i++ {
		s = Reduce(s, ItemsLoaded{Items: nil})
		assert.False(t, s.Loading)
	}
}

func TestItemsLoadedReplacesWholeCache(t *testing.T) {
	s := Reduce(Initial(), ItemsLoaded{Items: milkEggs()})
	s = Reduce(s, ItemsLoaded{Items: []model.Item{{ID: model.NumberID(3), Name: "Tea"}}})
	require.Len(t, s.Items, 1)
	assert.Equal(t, "Tea", s.Items[0].Name)
}

func TestItemsLoadedCopies(t *testing.T) {
	items := milkEggs()
	s := Reduce(Initial(), ItemsLoaded{Items: items})
	items[0].Name = "changed"
	assert.Equal(t, "Milk", s.Items[0].Name)
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	before := Reduce(Initial(), ItemsLoaded{Items: milkEggs()})
	_ = Reduce(before, NoteEdited{Text: "x"})
	assert.Equal(t, "", before.Note)
	assert.False(t, before.NoteEdited)
}

func TestMilkEggsScenario(t *testing.T) {
	s := Reduce(Initial(), ItemsLoaded{Items: milkEggs()})
	require.Len(t, s.ToBuy(), 1)
	require.Len(t, s.InStock(), 1)
	assert.Equal(t, "Milk", s.ToBuy()[0].Name)
	assert.Equal(t, "Eggs", s.InStock()[0].Name)
}

func TestToggleRefreshScenario(t *testing.T) {
	s := Reduce(Initial(), ItemsLoaded{Items: milkEggs()})
	s = Reduce(s, ItemsLoaded{Items: []model.Item{
		{ID: model.NumberID(1), Name: "Milk", InStock: true},
		{ID: model.NumberID(2), Name: "Eggs", InStock: true},
	}})
	assert.Len(t, s.ToBuy(), 2)
	assert.Empty(t, s.InStock())
}

func TestNoteLoadDoesNotClobberEdits(t *testing.T) {
	s := Reduce(Initial(), NoteLoaded{Text: "server"})
	assert.Equal(t, "server", s.Note)

	s = Reduce(Initial(), NoteEdited{Text: "mine"})
	s = Reduce(s, NoteLoaded{Text: "server"})
	assert.Equal(t, "mine", s.Note)
}

func TestConfirmationLifecycle(t *testing.T) {
	s := Initial()
	assert.Empty(t, s.SaveStatus)

	s = Reduce(s, NoteSaved{})
	assert.Equal(t, SavedMessage, s.SaveStatus)
	first := s.ConfirmSeq()

	s = Reduce(s, ConfirmExpired{Seq: first})
	assert.Empty(t, s.SaveStatus)
}

func TestOlderConfirmTimerDoesNotHideNewerConfirmation(t *testing.T) {
	s := Reduce(Initial(), NoteSaved{})
	first := s.ConfirmSeq()
	s = Reduce(s, NoteSaved{})
	second := s.ConfirmSeq()
	require.NotEqual(t, first, second)

	s = Reduce(s, ConfirmExpired{Seq: first})
	assert.Equal(t, SavedMessage, s.SaveStatus)

	s = Reduce(s, ConfirmExpired{Seq: second})
	assert.Empty(t, s.SaveStatus)
}
