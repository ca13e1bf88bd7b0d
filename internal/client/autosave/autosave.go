// Package autosave writes the resume document behind the user's edits.
//
// Each change schedules a save after a quiet interval; a change inside the
// interval pushes the save back, so a burst of edits produces one write of
// the final state. A document still in its untouched default state is never
// written.
package autosave

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/jobtracker/internal/client/models"
	"github.com/dmitrijs2005/jobtracker/internal/logging"
)

const DefaultInterval = 2000 * time.Millisecond

// SaveFunc persists a resume.
type SaveFunc func(ctx context.Context, r models.Resume) error

type Autosaver struct {
	mu       sync.Mutex
	save     SaveFunc
	interval time.Duration
	log      logging.Logger

	timer   *time.Timer
	pending *models.Resume
	closed  bool
	// saving serializes writes so a flush never overlaps a timer save.
	saving sync.Mutex
}

func New(save SaveFunc, interval time.Duration, log logging.Logger) *Autosaver {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Autosaver{
		save:     save,
		interval: interval,
		log:      log.With("module", "autosave"),
	}
}

// Changed records the latest document and (re)starts the quiet interval.
func (a *Autosaver) Changed(r models.Resume) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return
	}
	if r.IsDefault() {
		// nothing worth saving; drop any earlier state of this burst too
		a.pending = nil
		a.stopLocked()
		return
	}

	doc := r.Clone()
	a.pending = &doc
	if a.timer != nil {
		a.timer.Reset(a.interval)
		return
	}
	a.timer = time.AfterFunc(a.interval, a.fire)
}

// Pending reports whether a save is scheduled.
func (a *Autosaver) Pending() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.pending != nil
}

// Flush saves a scheduled document immediately.
func (a *Autosaver) Flush(ctx context.Context) error {
	a.mu.Lock()
	a.stopLocked()
	a.mu.Unlock()
	return a.persist(ctx)
}

// Close stops the timer. A scheduled document is discarded; call Flush first
// to keep it.
func (a *Autosaver) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.closed = true
	a.pending = nil
	a.stopLocked()
}

func (a *Autosaver) fire() {
	_ = a.persist(context.Background())
}

func (a *Autosaver) persist(ctx context.Context) error {
	a.saving.Lock()
	defer a.saving.Unlock()

	a.mu.Lock()
	doc := a.pending
	a.pending = nil
	a.mu.Unlock()

	if doc == nil {
		return nil
	}

	err := a.save(ctx, *doc)
	if err != nil {
		a.log.Error(ctx, "resume autosave failed", "error", err)
		// keep it for the next flush unless a newer edit arrived
		a.mu.Lock()
		if a.pending == nil && !a.closed {
			a.pending = doc
		}
		a.mu.Unlock()
	} else {
		a.log.Debug(ctx, "resume saved")
	}
	return err
}

func (a *Autosaver) stopLocked() {
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
}
