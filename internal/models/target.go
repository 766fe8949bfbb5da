package models

import (
	"fmt"
	"math"
	"strings"
)

// Target identifies one of the fixed resin-gated actions a reminder can
// be set for. The single-letter codes are the ones users type in chat.
type Target string

const (
	TargetFullResin  Target = "R" // wait for the cap itself
	TargetLeyLine    Target = "L"
	TargetDomain     Target = "D"
	TargetNormalBoss Target = "J"
	TargetWeeklyBoss Target = "S"
)

var targetCosts = map[Target]int{
	TargetFullResin:  200,
	TargetLeyLine:    20,
	TargetDomain:     20,
	TargetNormalBoss: 40,
	TargetWeeklyBoss: 60,
}

var targetNames = map[Target]string{
	TargetFullResin:  "Full resin",
	TargetLeyLine:    "Ley Line Outcrop",
	TargetDomain:     "Domain",
	TargetNormalBoss: "Normal Boss",
	TargetWeeklyBoss: "Weekly Boss",
}

// ParseTarget validates a user-supplied target code.
func ParseTarget(s string) (Target, error) {
	t := Target(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := targetCosts[t]; !ok {
		return "", fmt.Errorf("unknown target: %q (expected R, L, D, J, or S)", s)
	}
	return t, nil
}

// Cost returns the resin cost of a single run of the target. Unknown
// targets cost 0; callers are expected to validate with ParseTarget first.
func (t Target) Cost() int {
	return targetCosts[t]
}

// Name returns the human-readable name of the target.
func (t Target) Name() string {
	return targetNames[t]
}

// Describe renders the reminder description delivered at due time, e.g.
// "2x Domain ready in 320 min". Minutes are rounded for display only;
// due-time math keeps the real value.
func (t Target) Describe(repeats int, waitMinutes float64) string {
	mins := int(math.Round(waitMinutes))
	if t == TargetFullResin {
		hours := waitMinutes / 60
		return fmt.Sprintf("Full resin in %d min (~%.2f h)", mins, hours)
	}
	return fmt.Sprintf("%dx %s ready in %d min", repeats, t.Name(), mins)
}
