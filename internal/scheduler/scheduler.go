// Package scheduler promotes due reminders into delivered notifications.
// A single goroutine polls the store on a fixed interval; each due
// reminder is handled independently so one bad delivery cannot block the
// rest of the batch.
package scheduler

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/camontes/resinabot/internal/models"
	"github.com/camontes/resinabot/internal/notifier"
	"github.com/camontes/resinabot/internal/storage"
)

const deliveryPrefix = "It's time! Your resin is ready:\n"

type Scheduler struct {
	store    storage.Provider
	notifier notifier.Notifier
	interval time.Duration
	log      *log.Logger

	// now is swappable for tests
	now func() time.Time
}

func New(store storage.Provider, n notifier.Notifier, interval time.Duration, logger *log.Logger) *Scheduler {
	return &Scheduler{
		store:    store,
		notifier: n,
		interval: interval,
		log:      logger,
		now:      time.Now,
	}
}

// Run polls until ctx is cancelled. An in-flight tick always finishes
// before Run returns; ticks never overlap because they all run here.
func (s *Scheduler) Run(ctx context.Context) {
	s.log.Info("scheduler started", "interval", s.interval)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.Tick()
		}
	}
}

// Tick runs one poll-deliver-delete pass. Failures are logged and left
// for the next tick; nothing here may take the process down.
func (s *Scheduler) Tick() {
	now := s.now()

	due, err := s.store.FindDue(now)
	if err != nil {
		s.log.Error("failed to query due reminders", "error", err)
		return
	}
	if len(due) == 0 {
		return
	}

	s.log.Debug("delivering due reminders", "count", len(due))
	for _, r := range due {
		s.deliver(r)
	}
}

func (s *Scheduler) deliver(r models.Reminder) {
	if err := s.notifier.Send(r.Owner, deliveryPrefix+r.Description); err != nil {
		// Keep the row; the reminder stays due and is retried next
		// tick. A later duplicate is accepted over a lost delivery.
		s.log.Warn("delivery failed, will retry", "id", r.ID, "owner", r.Owner, "error", err)
		return
	}

	deleted, err := s.store.DeleteReminder(r.ID)
	if err != nil {
		s.log.Error("failed to delete delivered reminder", "id", r.ID, "error", err)
		return
	}
	if !deleted {
		// The owner cancelled while we were sending. Benign.
		s.log.Debug("reminder already gone after delivery", "id", r.ID)
		return
	}
	s.log.Info("reminder delivered", "id", r.ID, "owner", r.Owner)
}
