package app

import (
	"context"
	"os"
	"time"

	"github.com/apex/log"

	"github.com/periscope-dev/periscope/internal/logtail"
	"github.com/periscope-dev/periscope/internal/shepherd"
	"github.com/periscope-dev/periscope/internal/state"
)

const defaultPollInterval = 2 * time.Second

// poller follows the agent log file and feeds parsed entries to the store.
type poller struct {
	store    *state.Store
	path     string
	backfill int
	offset   int64
	primed   bool
}

func newPoller(store *state.Store, path string, backfill int) *poller {
	return &poller{store: store, path: path, backfill: backfill}
}

// start launches a background goroutine that refreshes the store at a fixed
// cadence. It returns immediately.
func (p *poller) start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
			p.refresh()
		}
	}()
}

// refresh reads whatever the agent appended since the last call. The first
// call backfills the tail of the file instead of replaying it whole.
func (p *poller) refresh() {
	if !p.primed {
		lines, err := logtail.Read(p.path, p.backfill)
		if err != nil {
			p.store.Update(nil, err)
			log.WithError(err).WithField("path", p.path).Warn("agent log backfill failed")
			return
		}
		if info, err := os.Stat(p.path); err == nil {
			p.offset = info.Size()
		}
		p.primed = true
		p.store.Update(shepherd.ParseLines(lines), nil)
		return
	}

	lines, next, err := logtail.ReadFrom(p.path, p.offset)
	if err != nil {
		p.store.Update(nil, err)
		log.WithError(err).WithField("path", p.path).Warn("agent log poll failed")
		return
	}
	if next < p.offset {
		log.WithField("path", p.path).Info("agent log rotated")
	}
	p.offset = next
	p.store.Update(shepherd.ParseLines(lines), nil)
}
