package notesaver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// timeline drives a Saver against a fake clock: armed deadlines fire in
// order once the clock passes them.
type timeline struct {
	now    time.Duration
	armed  []armed
	writes []string
	saver  Saver
}

type armed struct {
	at  time.Duration
	seq uint64
}

func (tl *timeline) edit(at time.Duration, text string) {
	tl.advance(at)
	d := tl.saver.Edit(text)
	tl.armed = append(tl.armed, armed{at: at + d.Delay, seq: d.Seq})
}

func (tl *timeline) advance(to time.Duration) {
	rest := tl.armed[:0]
	for _, a := range tl.armed {
		if a.at <= to {
			if text, ok := tl.saver.Expire(a.seq); ok {
				tl.writes = append(tl.writes, text)
			}
			continue
		}
		rest = append(rest, a)
	}
	tl.armed = rest
	tl.now = to
}

func TestRapidEditsCoalesceIntoOneWrite(t *testing.T) {
	tl := &timeline{saver: New(500 * time.Millisecond)}
	tl.edit(0, "a")
	tl.edit(100*time.Millisecond, "ab")
	tl.edit(200*time.Millisecond, "abc")
	tl.advance(2 * time.Second)

	assert.Equal(t, []string{"abc"}, tl.writes)
	assert.Equal(t, Idle, tl.saver.Phase())
}

func TestNoWriteBeforeQuietPeriod(t *testing.T) {
	tl := &timeline{saver: New(500 * time.Millisecond)}
	tl.edit(0, "a")
	tl.edit(300*time.Millisecond, "ab")

	tl.advance(799 * time.Millisecond)
	assert.Empty(t, tl.writes, "last edit at 300ms must not be written before 800ms")
	assert.Equal(t, PendingSave, tl.saver.Phase())

	tl.advance(800 * time.Millisecond)
	assert.Equal(t, []string{"ab"}, tl.writes)
}

func TestSeparateBurstsWriteSeparately(t *testing.T) {
	tl := &timeline{saver: New(500 * time.Millisecond)}
	tl.edit(0, "a")
	tl.edit(time.Second, "ab")
	tl.advance(3 * time.Second)
	assert.Equal(t, []string{"a", "ab"}, tl.writes)
}

func TestEditReturnsConfiguredDelay(t *testing.T) {
	s := New(500 * time.Millisecond)
	d := s.Edit("x")
	assert.Equal(t, 500*time.Millisecond, d.Delay)
	assert.Equal(t, PendingSave, s.Phase())
}

func TestDefaultDelay(t *testing.T) {
	assert.Equal(t, DefaultDelay, New(0).Delay())
}

func TestStaleExpireIsIgnored(t *testing.T) {
	s := New(time.Second)
	first := s.Edit("a")
	second := s.Edit("ab")

	_, ok := s.Expire(first.Seq)
	assert.False(t, ok)
	assert.Equal(t, PendingSave, s.Phase())

	text, ok := s.Expire(second.Seq)
	require.True(t, ok)
	assert.Equal(t, "ab", text)

	_, ok = s.Expire(second.Seq)
	assert.False(t, ok, "a deadline fires at most once")
}

func TestCancel(t *testing.T) {
	s := New(time.Second)
	_, pending := s.Cancel()
	assert.False(t, pending)

	d := s.Edit("draft")
	text, pending := s.Cancel()
	assert.True(t, pending)
	assert.Equal(t, "draft", text)
	assert.Equal(t, Idle, s.Phase())

	_, ok := s.Expire(d.Seq)
	assert.False(t, ok, "cancelled deadline must not write")
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "pending-save", PendingSave.String())
}
