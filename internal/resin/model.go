// Package resin implements the linear resin-regeneration model: given a
// current amount and a target action, it computes how long the owner has
// to wait before the action is affordable.
package resin

import (
	"time"

	"github.com/camontes/resinabot/internal/models"
)

// Outcome classifies the result of a wait computation.
type Outcome int

const (
	// OutcomeWait means the owner has to wait; Plan.WaitMinutes is set.
	OutcomeWait Outcome = iota
	// OutcomeFull means the owner is already at (or over) the cap.
	OutcomeFull
	// OutcomeSatisfied means the current amount already covers the goal.
	OutcomeSatisfied
)

// Plan is the outcome of a single wait computation.
type Plan struct {
	Outcome        Outcome
	Repeats        int     // requested repeats clamped to what the cap allows
	RequiredAmount int     // cost of the target times Repeats
	WaitMinutes    float64 // zero unless Outcome == OutcomeWait
}

// Wait converts the real-valued minute count into a duration without
// truncating, so due times do not drift early or late across reminders.
func (p Plan) Wait() time.Duration {
	return time.Duration(p.WaitMinutes * float64(time.Minute))
}

// ComputeWait runs the regeneration model. Oversized repeat requests are
// clamped down to the maximum the cap allows rather than rejected, so
// asking for 100 cheap runs yields the feasible maximum. Inputs are
// assumed validated by the caller: current in [0, capacity], a known
// target, ratePerMinute > 0.
func ComputeWait(current int, target models.Target, repeats, capacity int, ratePerMinute float64) Plan {
	maxRepeats := capacity / target.Cost()
	if maxRepeats < 1 {
		maxRepeats = 1
	}
	if repeats < 1 {
		repeats = 1
	}
	if repeats > maxRepeats {
		repeats = maxRepeats
	}
	plan := Plan{
		Repeats:        repeats,
		RequiredAmount: target.Cost() * repeats,
	}
	// A goal can never exceed what the tank holds; a shrunken capacity
	// turns an oversized target into "wait for full".
	if plan.RequiredAmount > capacity {
		plan.RequiredAmount = capacity
	}

	if current >= capacity {
		plan.Outcome = OutcomeFull
		return plan
	}
	if current >= plan.RequiredAmount {
		plan.Outcome = OutcomeSatisfied
		return plan
	}

	plan.Outcome = OutcomeWait
	plan.WaitMinutes = float64(plan.RequiredAmount-current) / ratePerMinute
	return plan
}
