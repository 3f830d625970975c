package services

import (
	"context"
	"time"

	"github.com/raihalea/esp-idf-docs/internal/core/domain"
	"github.com/raihalea/esp-idf-docs/internal/core/ports/driven"
	"github.com/raihalea/esp-idf-docs/internal/logger"
)

// rebuildDebounce batches bursts of change events into one rebuild.
const rebuildDebounce = 2 * time.Second

// Watcher keeps the index in step with a changing corpus. It consumes
// change events from a watchable source and schedules a full rebuild
// after each quiet period.
type Watcher struct {
	source driven.WatchableSource
	index  *Indexer
}

// NewWatcher creates a watcher that rebuilds the given index.
func NewWatcher(source driven.WatchableSource, index *Indexer) *Watcher {
	return &Watcher{source: source, index: index}
}

// Run blocks consuming change events until ctx is cancelled or the
// event stream closes. Rebuild failures are logged; watching continues
// so a later change can recover.
func (w *Watcher) Run(ctx context.Context) error {
	events, err := w.source.Watch(ctx)
	if err != nil {
		return err
	}

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			logger.Debug("Corpus change: %s (%s)", ev.ID, changeName(ev.Type))
			if timer == nil {
				timer = time.NewTimer(rebuildDebounce)
				fire = timer.C
			} else {
				if !timer.Stop() {
					<-timer.C
				}
				timer.Reset(rebuildDebounce)
			}
		case <-fire:
			timer = nil
			fire = nil
			logger.Info("Rebuilding index after corpus change")
			if err := w.index.Rebuild(ctx); err != nil {
				logger.Warn("Index rebuild failed: %v", err)
			}
		}
	}
}

func changeName(t domain.ChangeType) string {
	switch t {
	case domain.ChangeCreated:
		return "created"
	case domain.ChangeUpdated:
		return "updated"
	case domain.ChangeDeleted:
		return "deleted"
	default:
		return "unknown"
	}
}
