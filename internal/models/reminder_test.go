package models

import (
	"testing"
	"time"
)

func validReminder() Reminder {
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return Reminder{
		ID:            "r1",
		Owner:         "user-1",
		CurrentAmount: 80,
		Target:        TargetFullResin,
		RepeatCount:   1,
		Description:   "Full resin in 960 min (~16.00 h)",
		CreatedAt:     created,
		DueAt:         created.Add(960 * time.Minute),
	}
}

func TestReminderValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Reminder)
		wantErr bool
	}{
		{"valid", func(r *Reminder) {}, false},
		{"missing owner", func(r *Reminder) { r.Owner = "" }, true},
		{"unknown target", func(r *Reminder) { r.Target = "Q" }, true},
		{"zero repeats", func(r *Reminder) { r.RepeatCount = 0 }, true},
		{"negative amount", func(r *Reminder) { r.CurrentAmount = -1 }, true},
		{"empty description", func(r *Reminder) { r.Description = "" }, true},
		{"due before created", func(r *Reminder) { r.DueAt = r.CreatedAt.Add(-time.Minute) }, true},
		{"due equals created", func(r *Reminder) { r.DueAt = r.CreatedAt }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validReminder()
			tt.mutate(&r)
			err := r.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRemainingMinutes(t *testing.T) {
	r := validReminder()

	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{"at creation", r.CreatedAt, 960},
		{"halfway", r.CreatedAt.Add(480 * time.Minute), 480},
		{"partial minute rounds up", r.DueAt.Add(-90 * time.Second), 2},
		{"exactly due", r.DueAt, 0},
		{"overdue", r.DueAt.Add(time.Hour), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.RemainingMinutes(tt.now); got != tt.want {
				t.Errorf("RemainingMinutes = %d, want %d", got, tt.want)
			}
		})
	}
}
