package scheduler

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/camontes/resinabot/internal/models"
)

type fakeStore struct {
	due       []models.Reminder
	findErr   error
	deleteErr error
	missing   map[string]bool

	deleted []string
}

func (f *fakeStore) Init() error  { return nil }
func (f *fakeStore) Load() error  { return nil }
func (f *fakeStore) Close() error { return nil }

func (f *fakeStore) Migrate(logFn func(string)) (int, error) { return 0, nil }
func (f *fakeStore) GetConfigPath() string                   { return "" }

func (f *fakeStore) CreateReminder(r models.Reminder) (string, error) { return r.ID, nil }

func (f *fakeStore) ListByOwner(owner string) ([]models.Reminder, error) { return nil, nil }

func (f *fakeStore) FindDue(now time.Time) ([]models.Reminder, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.due, nil
}

func (f *fakeStore) DeleteReminder(id string) (bool, error) {
	if f.deleteErr != nil {
		return false, f.deleteErr
	}
	if f.missing[id] {
		return false, nil
	}
	f.deleted = append(f.deleted, id)
	return true, nil
}

type fakeNotifier struct {
	failFor map[string]bool
	sent    []string
}

func (f *fakeNotifier) Send(owner, text string) error {
	if f.failFor[owner] {
		return errors.New("gateway unreachable")
	}
	f.sent = append(f.sent, owner+": "+text)
	return nil
}

func testScheduler(store *fakeStore, n *fakeNotifier) *Scheduler {
	s := New(store, n, time.Minute, log.New(io.Discard))
	s.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	return s
}

func reminder(id, owner string) models.Reminder {
	return models.Reminder{
		ID:          id,
		Owner:       owner,
		Target:      models.TargetDomain,
		RepeatCount: 1,
		Description: "1x Domain ready in 160 min",
	}
}

func TestTick_DeliversAndDeletes(t *testing.T) {
	store := &fakeStore{due: []models.Reminder{reminder("r1", "user-1")}}
	n := &fakeNotifier{}

	testScheduler(store, n).Tick()

	if len(n.sent) != 1 {
		t.Fatalf("sent %d notifications, want 1", len(n.sent))
	}
	want := "user-1: It's time! Your resin is ready:\n1x Domain ready in 160 min"
	if n.sent[0] != want {
		t.Errorf("sent = %q, want %q", n.sent[0], want)
	}
	if len(store.deleted) != 1 || store.deleted[0] != "r1" {
		t.Errorf("deleted = %v, want [r1]", store.deleted)
	}
}

func TestTick_FailedSendKeepsReminder(t *testing.T) {
	store := &fakeStore{due: []models.Reminder{reminder("r1", "user-1")}}
	n := &fakeNotifier{failFor: map[string]bool{"user-1": true}}

	testScheduler(store, n).Tick()

	if len(store.deleted) != 0 {
		t.Errorf("deleted = %v, want none after failed send", store.deleted)
	}
}

func TestTick_OneFailureDoesNotBlockOthers(t *testing.T) {
	store := &fakeStore{due: []models.Reminder{
		reminder("r1", "user-1"),
		reminder("r2", "user-2"),
		reminder("r3", "user-3"),
	}}
	n := &fakeNotifier{failFor: map[string]bool{"user-2": true}}

	testScheduler(store, n).Tick()

	if len(n.sent) != 2 {
		t.Fatalf("sent %d notifications, want 2", len(n.sent))
	}
	if len(store.deleted) != 2 {
		t.Fatalf("deleted = %v, want r1 and r3", store.deleted)
	}
}

func TestTick_FindDueErrorIsSwallowed(t *testing.T) {
	store := &fakeStore{findErr: errors.New("database locked")}
	n := &fakeNotifier{}

	// Must not panic and must not send anything.
	testScheduler(store, n).Tick()

	if len(n.sent) != 0 {
		t.Errorf("sent %d notifications, want 0", len(n.sent))
	}
}

func TestTick_CancelledDuringDeliveryIsBenign(t *testing.T) {
	store := &fakeStore{
		due:     []models.Reminder{reminder("r1", "user-1")},
		missing: map[string]bool{"r1": true},
	}
	n := &fakeNotifier{}

	testScheduler(store, n).Tick()

	if len(n.sent) != 1 {
		t.Errorf("sent %d notifications, want 1", len(n.sent))
	}
	if len(store.deleted) != 0 {
		t.Errorf("deleted = %v, want none", store.deleted)
	}
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	store := &fakeStore{}
	s := New(store, &fakeNotifier{}, time.Millisecond, log.New(io.Discard))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop after context cancel")
	}
}
