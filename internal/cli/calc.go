package cli

import (
	"fmt"

	"github.com/camontes/resinabot/internal/models"
	"github.com/camontes/resinabot/internal/resin"
)

// CalcCmd runs the regeneration computation without persisting anything.
type CalcCmd struct {
	Amount  int     `arg:"" help:"Current resin amount."`
	Target  string  `arg:"" help:"Target code (R, L, D, J, S)."`
	Repeats int     `short:"n" help:"How many runs of the target." default:"1"`
	Cap     int     `help:"Resin cap." default:"200"`
	Rate    float64 `help:"Regeneration rate per minute." default:"0.125"`
}

func (c *CalcCmd) Validate() error {
	if c.Amount < 0 || c.Amount > c.Cap {
		return fmt.Errorf("amount must be between 0 and %d", c.Cap)
	}
	if _, err := models.ParseTarget(c.Target); err != nil {
		return err
	}
	if c.Rate <= 0 {
		return fmt.Errorf("rate must be positive")
	}
	return nil
}

func (c *CalcCmd) Run(ctx *Context) error {
	target, err := models.ParseTarget(c.Target)
	if err != nil {
		return err
	}

	plan := resin.ComputeWait(c.Amount, target, c.Repeats, c.Cap, c.Rate)
	switch plan.Outcome {
	case resin.OutcomeFull:
		fmt.Println("Resin is already full.")
	case resin.OutcomeSatisfied:
		fmt.Printf("Already enough resin for %dx %s (%d needed, %d held).\n",
			plan.Repeats, target.Name(), plan.RequiredAmount, c.Amount)
	default:
		fmt.Println(target.Describe(plan.Repeats, plan.WaitMinutes))
	}

	if plan.Repeats != c.Repeats && c.Repeats > 1 {
		fmt.Printf("(requested %d runs, cap allows %d)\n", c.Repeats, plan.Repeats)
	}
	return nil
}
