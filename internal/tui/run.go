package tui

import (
	"context"
	"errors"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/idilsaglam/grocery/internal/logging"
	"github.com/idilsaglam/grocery/internal/model"
	"github.com/idilsaglam/grocery/internal/notesaver"
	"github.com/idilsaglam/grocery/internal/poller"
	"github.com/idilsaglam/grocery/internal/remote"
)

// Options tune timers and wiring; zero values get the shared list's defaults.
type Options struct {
	PollInterval time.Duration
	SaveDebounce time.Duration
	ConfirmFor   time.Duration
	// FlushTimeout bounds the final write of a note edit still pending at quit.
	FlushTimeout time.Duration
	// Theme "mono" renders without color.
	Theme        string
	Log          *logrus.Entry

	// ProgramOptions are appended to the defaults (tests pass their own
	// input/output).
	ProgramOptions []tea.ProgramOption
}

func (o Options) withDefaults() Options {
	if o.PollInterval <= 0 {
		o.PollInterval = poller.DefaultInterval
	}
	if o.SaveDebounce <= 0 {
		o.SaveDebounce = notesaver.DefaultDelay
	}
	if o.ConfirmFor <= 0 {
		o.ConfirmFor = 1500 * time.Millisecond
	}
	if o.FlushTimeout <= 0 {
		o.FlushTimeout = 5 * time.Second
	}
	if o.Log == nil {
		o.Log = logging.Discard()
	}
	return o
}

// Run shows the view until the user quits or ctx ends. The poller lives
// exactly as long as the view: it starts with it and is cancelled (along
// with any request in flight) before Run returns.
func Run(ctx context.Context, store remote.Store, opts Options) error {
	opts = opts.withDefaults()
	log := opts.Log.WithField("component", "tui")
	applyColorProfile(opts.Theme)

	viewCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	popts := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(viewCtx)}, opts.ProgramOptions...)
	p := tea.NewProgram(New(viewCtx, store, opts), popts...)

	pl := poller.New(store.Items, opts.PollInterval, opts.Log)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		pl.Run(viewCtx, func(items []model.Item) { p.Send(itemsLoadedMsg{items: items}) })
	}()

	final, err := p.Run()
	cancel()
	wg.Wait()

	if fm, ok := final.(Model); ok {
		if text, pending := fm.Unsaved(); pending {
			flushNote(store, text, opts.FlushTimeout, log)
		}
	}

	if ctx.Err() != nil && (errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, context.Canceled)) {
		return nil
	}
	return err
}

// flushNote writes a note edit the view never got to save. The view is gone,
// so this runs on its own short-lived context.
func flushNote(store remote.Store, text string, timeout time.Duration, log *logrus.Entry) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := store.SaveNote(ctx, text); err != nil {
		log.WithError(err).Warn("pending note was not saved")
		return
	}
	log.Debug("pending note flushed")
}
