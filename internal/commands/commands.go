// Package commands implements the bot's chat commands. The transport is
// external; whatever receives a chat message hands it here and sends the
// returned reply back to the channel.
package commands

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/camontes/resinabot/internal/models"
	"github.com/camontes/resinabot/internal/resin"
	"github.com/camontes/resinabot/internal/storage"
)

const helpText = `📖 Resin bot commands:

- ` + "`!resina n_resina=<amount> objetivo=<R/L/D/J/S> [n_veces=<count>]`" + `
  Computes when you'll have enough resin and saves a DM reminder.
- ` + "`!listar`" + `
  Shows your active reminders.
- ` + "`!cancelar <number>`" + `
  Cancels a reminder (use the number from !listar).

Examples:
- !resina n_resina=80 objetivo=R
- !resina n_resina=60 objetivo=D n_veces=2

Targets:
- R: Full resin (200)
- L: Ley Line Outcrop (20)
- D: Domain (20)
- J: Normal Boss (40)
- S: Weekly Boss (60)`

// Handler turns inbound chat messages into store operations and reply
// text. It is stateless between calls; concurrency is delegated to the
// store.
type Handler struct {
	store    storage.Provider
	capacity int
	rate     float64

	// now is swappable for tests
	now func() time.Time
}

func NewHandler(store storage.Provider, capacity int, ratePerMinute float64) *Handler {
	return &Handler{
		store:    store,
		capacity: capacity,
		rate:     ratePerMinute,
		now:      time.Now,
	}
}

// Handle dispatches one chat message. The returned reply is always safe
// to show the user; a non-nil error carries the internal cause for the
// caller to log. Messages that are not bot commands yield an empty
// reply.
func (h *Handler) Handle(owner, content string) (string, error) {
	content = strings.TrimSpace(content)
	switch {
	case strings.HasPrefix(content, "!help"), strings.HasPrefix(content, "!ayuda"):
		return helpText, nil
	case strings.HasPrefix(content, "!resina"):
		return h.handleResina(owner, strings.TrimPrefix(content, "!resina"))
	case strings.HasPrefix(content, "!listar"):
		return h.handleList(owner)
	case strings.HasPrefix(content, "!cancelar"):
		return h.handleCancel(owner, content)
	default:
		return "", nil
	}
}

func (h *Handler) handleResina(owner, args string) (string, error) {
	params := parseParams(args)

	amount, amountErr := strconv.Atoi(params["n_resina"])
	target, targetErr := models.ParseTarget(params["objetivo"])
	if amountErr != nil || targetErr != nil || amount < 0 || amount > h.capacity {
		return "❌ Specify a valid resin amount and a valid target (R, L, D, J, S).", nil
	}

	// Malformed or missing repeat counts fall back to 1, matching the
	// forgiving parsing users are used to.
	repeats, err := strconv.Atoi(params["n_veces"])
	if err != nil || repeats < 1 {
		repeats = 1
	}

	plan := resin.ComputeWait(amount, target, repeats, h.capacity, h.rate)
	switch plan.Outcome {
	case resin.OutcomeFull:
		return "✅ Your resin is already full.", nil
	case resin.OutcomeSatisfied:
		return "✅ You already have enough resin for that.", nil
	}

	now := h.now()
	description := target.Describe(plan.Repeats, plan.WaitMinutes)
	_, err = h.store.CreateReminder(models.Reminder{
		Owner:         owner,
		CurrentAmount: amount,
		Target:        target,
		RepeatCount:   plan.Repeats,
		Description:   description,
		CreatedAt:     now,
		DueAt:         now.Add(plan.Wait()),
	})
	if err != nil {
		return "❌ Failed to save the reminder.", fmt.Errorf("create reminder: %w", err)
	}

	return description + "\n🔔 Reminder saved! I'll DM you when it's time.", nil
}

func (h *Handler) handleList(owner string) (string, error) {
	reminders, err := h.store.ListByOwner(owner)
	if err != nil {
		return "❌ Failed to fetch your reminders.", fmt.Errorf("list reminders: %w", err)
	}
	if len(reminders) == 0 {
		return "📭 You have no active reminders.", nil
	}

	now := h.now()
	var b strings.Builder
	b.WriteString("📋 Your active reminders:")
	for i, r := range reminders {
		fmt.Fprintf(&b, "\n%d. %s (in %d min)", i+1, r.Description, r.RemainingMinutes(now))
	}
	return b.String(), nil
}

func (h *Handler) handleCancel(owner, content string) (string, error) {
	fields := strings.Fields(content)
	if len(fields) < 2 {
		return "❌ Usage: `!cancelar <number>` (see the numbers with `!listar`)", nil
	}
	index, err := strconv.Atoi(fields[1])
	if err != nil {
		return "❌ Usage: `!cancelar <number>` (see the numbers with `!listar`)", nil
	}

	reminders, err := h.store.ListByOwner(owner)
	if err != nil {
		return "❌ Failed to cancel the reminder.", fmt.Errorf("list reminders: %w", err)
	}
	if index < 1 || index > len(reminders) {
		return "❌ Invalid number.", nil
	}

	target := reminders[index-1]
	deleted, err := h.store.DeleteReminder(target.ID)
	if err != nil {
		return "❌ Failed to cancel the reminder.", fmt.Errorf("delete reminder: %w", err)
	}
	if !deleted {
		// The listing went stale between !listar and !cancelar; the
		// scheduler delivered it first.
		return "❌ Invalid number.", nil
	}
	return fmt.Sprintf("✅ Reminder cancelled: %q", target.Description), nil
}

// parseParams splits "k=v k=v" argument strings the way the bot always
// has: unknown keys are ignored, later duplicates win.
func parseParams(args string) map[string]string {
	params := make(map[string]string)
	for _, field := range strings.Fields(args) {
		kv := strings.SplitN(field, "=", 2)
		if len(kv) == 2 {
			params[kv[0]] = kv[1]
		}
	}
	return params
}
