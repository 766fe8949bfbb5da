package resin

import (
	"testing"
	"time"

	"github.com/camontes/resinabot/internal/models"
)

const (
	testCap  = 200
	testRate = 0.125 // 1 resin every 8 minutes
)

func TestComputeWait_FullResinFromEighty(t *testing.T) {
	plan := ComputeWait(80, models.TargetFullResin, 1, testCap, testRate)

	if plan.Outcome != OutcomeWait {
		t.Fatalf("Outcome = %v, want OutcomeWait", plan.Outcome)
	}
	if plan.RequiredAmount != 200 {
		t.Errorf("RequiredAmount = %d, want 200", plan.RequiredAmount)
	}
	// (200-80)/0.125 = 960 minutes
	if plan.WaitMinutes != 960 {
		t.Errorf("WaitMinutes = %v, want 960", plan.WaitMinutes)
	}
	if plan.Wait() != 960*time.Minute {
		t.Errorf("Wait() = %v, want %v", plan.Wait(), 960*time.Minute)
	}
}

func TestComputeWait_AlreadyEnoughForGoal(t *testing.T) {
	// Two domains cost 40; holding 60 already covers it.
	plan := ComputeWait(60, models.TargetDomain, 2, testCap, testRate)

	if plan.Outcome != OutcomeSatisfied {
		t.Fatalf("Outcome = %v, want OutcomeSatisfied", plan.Outcome)
	}
	if plan.RequiredAmount != 40 {
		t.Errorf("RequiredAmount = %d, want 40", plan.RequiredAmount)
	}
	if plan.WaitMinutes != 0 {
		t.Errorf("WaitMinutes = %v, want 0", plan.WaitMinutes)
	}
}

func TestComputeWait_AtCapacity(t *testing.T) {
	plan := ComputeWait(200, models.TargetDomain, 1, testCap, testRate)

	if plan.Outcome != OutcomeFull {
		t.Fatalf("Outcome = %v, want OutcomeFull", plan.Outcome)
	}
}

func TestComputeWait_ClampsRepeats(t *testing.T) {
	tests := []struct {
		name         string
		target       models.Target
		repeats      int
		wantRepeats  int
		wantRequired int
	}{
		{"ten bosses clamp to five", models.TargetNormalBoss, 10, 5, 200},
		{"zero repeats clamp up to one", models.TargetDomain, 0, 1, 20},
		{"negative repeats clamp up to one", models.TargetDomain, -3, 1, 20},
		{"huge ley line request clamps to ten", models.TargetLeyLine, 100, 10, 200},
		{"full resin never repeats", models.TargetFullResin, 4, 1, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := ComputeWait(0, tt.target, tt.repeats, testCap, testRate)
			if plan.Repeats != tt.wantRepeats {
				t.Errorf("Repeats = %d, want %d", plan.Repeats, tt.wantRepeats)
			}
			if plan.RequiredAmount != tt.wantRequired {
				t.Errorf("RequiredAmount = %d, want %d", plan.RequiredAmount, tt.wantRequired)
			}
		})
	}
}

func TestComputeWait_SatisfiedBoundary(t *testing.T) {
	// AlreadySatisfied iff current >= min(cap, cost*clamped repeats).
	for current := 0; current < testCap; current++ {
		plan := ComputeWait(current, models.TargetWeeklyBoss, 1, testCap, testRate)
		satisfied := plan.Outcome != OutcomeWait
		want := current >= 60
		if satisfied != want {
			t.Fatalf("current=%d: satisfied=%v, want %v", current, satisfied, want)
		}
	}
}

func TestComputeWait_MonotonicInCurrentAmount(t *testing.T) {
	prev := ComputeWait(0, models.TargetFullResin, 1, testCap, testRate).WaitMinutes
	for current := 1; current < testCap; current++ {
		wait := ComputeWait(current, models.TargetFullResin, 1, testCap, testRate).WaitMinutes
		if wait > prev {
			t.Fatalf("wait increased from %v to %v at current=%d", prev, wait, current)
		}
		prev = wait
	}
}

func TestComputeWait_FractionalMinutes(t *testing.T) {
	// 1 missing resin at 0.125/min is exactly 8 minutes; 3 missing is 24.
	plan := ComputeWait(17, models.TargetLeyLine, 1, testCap, testRate)
	if plan.WaitMinutes != 24 {
		t.Errorf("WaitMinutes = %v, want 24", plan.WaitMinutes)
	}

	// A non-integral rate must not truncate.
	plan = ComputeWait(10, models.TargetLeyLine, 1, testCap, 0.3)
	want := 10.0 / 0.3
	if plan.WaitMinutes != want {
		t.Errorf("WaitMinutes = %v, want %v", plan.WaitMinutes, want)
	}
}
