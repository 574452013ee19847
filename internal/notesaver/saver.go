// Package notesaver coalesces bursts of note edits into a single write.
//
// A Saver never touches a clock or the network itself. Edit hands back a
// Deadline the caller arms as a timer; when that timer fires the caller passes
// its Seq to Expire, which says whether (and what) to write. Every Edit bumps
// the sequence, so a timer armed for an earlier edit is simply stale.
package notesaver

import "time"

// DefaultDelay is the quiet period after the last edit before a write.
const DefaultDelay = 500 * time.Millisecond

type Phase int

const (
	Idle Phase = iota
	PendingSave
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case PendingSave:
		return "pending-save"
	}
	return "unknown"
}

// Deadline is a request to call Expire(Seq) after Delay.
type Deadline struct {
	Seq   uint64
	Delay time.Duration
}

// Saver is the Idle/PendingSave state machine. The zero value is not usable;
// call New.
type Saver struct {
	delay time.Duration
	phase Phase
	text  string
	seq   uint64
}

func New(delay time.Duration) Saver {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return Saver{delay: delay}
}

// Edit moves to PendingSave(text) and supersedes any earlier deadline.
func (s *Saver) Edit(text string) Deadline {
	s.seq++
	s.phase = PendingSave
	s.text = text
	return Deadline{Seq: s.seq, Delay: s.delay}
}

// Expire reports the text to write when seq is the live deadline, moving to
// Idle. Stale or cancelled deadlines return ok=false.
func (s *Saver) Expire(seq uint64) (text string, ok bool) {
	if s.phase != PendingSave || seq != s.seq {
		return "", false
	}
	s.phase = Idle
	text = s.text
	s.text = ""
	return text, true
}

// Cancel drops a pending save, returning the text that would have been
// written. Any armed deadline becomes stale.
func (s *Saver) Cancel() (text string, pending bool) {
	if s.phase != PendingSave {
		return "", false
	}
	s.seq++
	s.phase = Idle
	text = s.text
	s.text = ""
	return text, true
}

func (s Saver) Phase() Phase         { return s.phase }
func (s Saver) Delay() time.Duration { return s.delay }
