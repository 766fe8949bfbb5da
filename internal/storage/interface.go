package storage

import (
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/camontes/resinabot/internal/models"
)

// ErrUnavailable wraps backend failures; callers log and move on
// rather than crash the surrounding loop or command.
var ErrUnavailable = errors.New("storage unavailable")

// Provider is the reminder store. ListByOwner ordering is the contract
// the cancel-by-index flow depends on: ascending due time, with creation
// time and id as tiebreaks, so a listing and the cancel that follows it
// index the same sequence.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error
	// Migrate applies pending schema migrations, opening the backend if
	// needed, and returns how many were applied. logFn receives progress
	// lines; nil means silent.
	Migrate(logFn func(string)) (int, error)

	// Reminders
	CreateReminder(models.Reminder) (string, error)
	ListByOwner(owner string) ([]models.Reminder, error)
	// DeleteReminder reports whether a row was removed. Deleting an
	// already-deleted reminder returns false, not an error, so delivery
	// and cancellation can race benignly.
	DeleteReminder(id string) (bool, error)
	FindDue(now time.Time) ([]models.Reminder, error)

	// Utils
	GetConfigPath() string
}

// HasEmbeddedCredentials reports whether a PostgreSQL connection string
// carries a password inline. Those are rejected; credentials belong in
// the environment, .pgpass, or the OS keyring.
func HasEmbeddedCredentials(connStr string) bool {
	if strings.HasPrefix(connStr, "postgres://") || strings.HasPrefix(connStr, "postgresql://") {
		u, err := url.Parse(connStr)
		if err != nil {
			return false
		}
		if u.User != nil {
			if _, set := u.User.Password(); set {
				return true
			}
		}
		return false
	}
	// DSN format: space-separated key=value pairs
	for _, part := range strings.Fields(connStr) {
		kv := strings.SplitN(part, "=", 2)
		if len(kv) == 2 && strings.EqualFold(kv[0], "password") && kv[1] != "" {
			return true
		}
	}
	return false
}
