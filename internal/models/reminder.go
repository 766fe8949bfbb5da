package models

import (
	"fmt"
	"math"
	"time"
)

// Reminder is a persisted promise to notify an owner once their resin
// target becomes affordable. Reminders are immutable after creation;
// the only mutation is deletion, by delivery or by explicit cancel.
type Reminder struct {
	ID            string    `json:"id"`
	Owner         string    `json:"owner"`
	CurrentAmount int       `json:"current_amount"` // resin snapshot at creation
	Target        Target    `json:"target"`
	RepeatCount   int       `json:"repeat_count"`
	Description   string    `json:"description"`
	CreatedAt     time.Time `json:"created_at"`
	DueAt         time.Time `json:"due_at"`
}

func (r *Reminder) Validate() error {
	if r.Owner == "" {
		return fmt.Errorf("reminder owner cannot be empty")
	}
	if _, err := ParseTarget(string(r.Target)); err != nil {
		return err
	}
	if r.RepeatCount < 1 {
		return fmt.Errorf("repeat count must be at least 1")
	}
	if r.CurrentAmount < 0 {
		return fmt.Errorf("resin amount cannot be negative")
	}
	if r.Description == "" {
		return fmt.Errorf("reminder description cannot be empty")
	}
	if r.DueAt.Before(r.CreatedAt) {
		return fmt.Errorf("due time cannot precede creation time")
	}
	return nil
}

// RemainingMinutes returns the minutes left until the reminder fires,
// rounded up the way the listing surfaces show it. Overdue reminders
// report 0.
func (r *Reminder) RemainingMinutes(now time.Time) int {
	left := r.DueAt.Sub(now)
	if left <= 0 {
		return 0
	}
	return int(math.Ceil(left.Minutes()))
}
