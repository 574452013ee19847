// Package poller keeps the local item list in step with the remote store by
// re-fetching it on a fixed interval.
package poller

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/idilsaglam/grocery/internal/model"
)

// DefaultInterval matches the cross-device sync period of the shared list.
const DefaultInterval = 3 * time.Second

// FetchFunc loads the full item list.
type FetchFunc func(ctx context.Context) ([]model.Item, error)

type Poller struct {
	fetch    FetchFunc
	interval time.Duration
	log      *logrus.Entry
}

func New(fetch FetchFunc, interval time.Duration, log *logrus.Entry) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Poller{fetch: fetch, interval: interval, log: log.WithField("component", "poller")}
}

// Refresh performs one fetch and hands a successful result to emit.
// Failures are logged and otherwise ignored; the caller keeps what it had.
func (p *Poller) Refresh(ctx context.Context, emit func([]model.Item)) bool {
	items, err := p.fetch(ctx)
	if err != nil {
		if ctx.Err() == nil {
			p.log.WithError(err).Debug("refresh failed")
		}
		return false
	}
	emit(items)
	return true
}

// Run refreshes once immediately and then every interval until ctx is done.
// The ticker is released on return and cancelling ctx also aborts the fetch
// in flight.
func (p *Poller) Run(ctx context.Context, emit func([]model.Item)) {
	t := time.NewTicker(p.interval)
	defer t.Stop()

	p.log.WithField("interval", p.interval).Debug("polling started")
	defer p.log.Debug("polling stopped")

	p.Refresh(ctx, emit)
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			p.Refresh(ctx, emit)
		}
	}
}
