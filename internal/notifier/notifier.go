// Package notifier delivers reminder messages to owners. The chat
// transport itself (the gateway process that holds the bot session)
// stays external; delivery is a webhook POST to it.
package notifier

import (
	"fmt"
)

// Notifier sends a message to an owner identity. Implementations may
// fail per call; callers treat any failure as retryable.
type Notifier interface {
	Send(owner, text string) error
}

// Console prints messages to stdout instead of delivering them. Used by
// `serve --dry-run` and in tests.
type Console struct{}

func (Console) Send(owner, text string) error {
	fmt.Printf("[dry-run] to %s: %s\n", owner, text)
	return nil
}
