package cli

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/camontes/resinabot/internal/models"
	"github.com/camontes/resinabot/internal/storage/sqlite"
)

func TestMigrateCmd(t *testing.T) {
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "resinabot.db"))
	t.Cleanup(func() { store.Close() })
	ctx := &Context{Store: store}

	// First run brings a fresh database up to the current schema.
	if err := (&MigrateCmd{}).Run(ctx); err != nil {
		t.Fatalf("MigrateCmd failed: %v", err)
	}

	// The migrated schema must be usable without a separate init.
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	if _, err := store.CreateReminder(models.Reminder{
		Owner:       "user-1",
		Target:      models.TargetDomain,
		RepeatCount: 1,
		Description: "1x Domain ready in 160 min",
		CreatedAt:   now,
		DueAt:       now.Add(160 * time.Minute),
	}); err != nil {
		t.Fatalf("schema unusable after migrate: %v", err)
	}

	// Re-running against an up-to-date database is a no-op, not an error.
	if err := (&MigrateCmd{}).Run(ctx); err != nil {
		t.Fatalf("second MigrateCmd failed: %v", err)
	}
}
