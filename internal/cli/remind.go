package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/camontes/resinabot/internal/models"
	"github.com/camontes/resinabot/internal/resin"
)

// RemindAddCmd creates a reminder from the terminal, the same way the
// chat command does. Useful for testing the pipeline without a gateway.
type RemindAddCmd struct {
	Owner       string  `help:"Owner identity the reminder belongs to." required:""`
	Amount      int     `short:"a" help:"Current resin amount." default:"-1"`
	Target      string  `short:"t" help:"Target code (R, L, D, J, S)."`
	Repeats     int     `short:"n" help:"How many runs of the target." default:"1"`
	Cap         int     `help:"Resin cap." default:"200"`
	Rate        float64 `help:"Regeneration rate per minute." default:"0.125"`
	Interactive bool    `short:"i" help:"Prompt for the values instead of reading flags."`
}

func (c *RemindAddCmd) Run(ctx *Context) error {
	if c.Interactive {
		if err := c.prompt(); err != nil {
			return err
		}
	}

	if c.Amount < 0 || c.Amount > c.Cap {
		return fmt.Errorf("amount must be between 0 and %d", c.Cap)
	}
	target, err := models.ParseTarget(c.Target)
	if err != nil {
		return err
	}

	plan := resin.ComputeWait(c.Amount, target, c.Repeats, c.Cap, c.Rate)
	switch plan.Outcome {
	case resin.OutcomeFull:
		fmt.Println("Resin is already full; no reminder needed.")
		return nil
	case resin.OutcomeSatisfied:
		fmt.Println("Already enough resin for that; no reminder needed.")
		return nil
	}

	now := time.Now()
	id, err := ctx.Store.CreateReminder(models.Reminder{
		Owner:         c.Owner,
		CurrentAmount: c.Amount,
		Target:        target,
		RepeatCount:   plan.Repeats,
		Description:   target.Describe(plan.Repeats, plan.WaitMinutes),
		CreatedAt:     now,
		DueAt:         now.Add(plan.Wait()),
	})
	if err != nil {
		return err
	}

	fmt.Printf("Added reminder %s, due %s\n", id, now.Add(plan.Wait()).Format(time.RFC3339))
	return nil
}

func (c *RemindAddCmd) prompt() error {
	var amount, repeats string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Current resin").
				Validate(func(s string) error {
					n, err := strconv.Atoi(s)
					if err != nil || n < 0 || n > c.Cap {
						return fmt.Errorf("enter a number between 0 and %d", c.Cap)
					}
					return nil
				}).
				Value(&amount),
			huh.NewSelect[string]().
				Title("Target").
				Options(
					huh.NewOption("Full resin (200)", "R"),
					huh.NewOption("Ley Line Outcrop (20)", "L"),
					huh.NewOption("Domain (20)", "D"),
					huh.NewOption("Normal Boss (40)", "J"),
					huh.NewOption("Weekly Boss (60)", "S"),
				).
				Value(&c.Target),
			huh.NewInput().
				Title("Runs").
				Placeholder("1").
				Value(&repeats),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	c.Amount, _ = strconv.Atoi(amount)
	if n, err := strconv.Atoi(strings.TrimSpace(repeats)); err == nil && n >= 1 {
		c.Repeats = n
	}
	return nil
}

type RemindListCmd struct {
	Owner string `help:"Owner identity to list reminders for." required:""`
}

func (c *RemindListCmd) Run(ctx *Context) error {
	reminders, err := ctx.Store.ListByOwner(c.Owner)
	if err != nil {
		return err
	}
	if len(reminders) == 0 {
		fmt.Println("No active reminders.")
		return nil
	}

	now := time.Now()
	for i, r := range reminders {
		fmt.Printf("%d. %s (in %d min, due %s)\n",
			i+1, r.Description, r.RemainingMinutes(now), r.DueAt.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

type RemindCancelCmd struct {
	Owner  string `help:"Owner identity the reminder belongs to." required:""`
	Number int    `arg:"" help:"Reminder number from 'remind list'."`
}

func (c *RemindCancelCmd) Run(ctx *Context) error {
	reminders, err := ctx.Store.ListByOwner(c.Owner)
	if err != nil {
		return err
	}
	if c.Number < 1 || c.Number > len(reminders) {
		return fmt.Errorf("invalid reminder number: %d", c.Number)
	}

	target := reminders[c.Number-1]
	deleted, err := ctx.Store.DeleteReminder(target.ID)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("reminder already delivered or cancelled")
	}
	fmt.Printf("Cancelled reminder: %q\n", target.Description)
	return nil
}
