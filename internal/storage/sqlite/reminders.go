package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/camontes/resinabot/internal/constants"
	"github.com/camontes/resinabot/internal/models"
	"github.com/camontes/resinabot/internal/storage"
)

// Timestamps are stored as RFC3339 UTC text, which keeps lexicographic
// and chronological order identical for the due_at range scans.
func formatTime(t time.Time) string {
	return t.UTC().Truncate(time.Second).Format(constants.DateTimeFormat)
}

func (s *Store) CreateReminder(r models.Reminder) (string, error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	if err := r.Validate(); err != nil {
		return "", err
	}

	_, err := s.db.Exec(`
		INSERT INTO reminders (
			id, owner, current_amount, target, repeat_count,
			description, created_at, due_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		r.ID, r.Owner, r.CurrentAmount, string(r.Target), r.RepeatCount,
		r.Description, formatTime(r.CreatedAt), formatTime(r.DueAt),
	)
	if err != nil {
		return "", fmt.Errorf("%w: failed to insert reminder: %v", storage.ErrUnavailable, err)
	}
	return r.ID, nil
}

func (s *Store) ListByOwner(owner string) ([]models.Reminder, error) {
	rows, err := s.db.Query(`
		SELECT id, owner, current_amount, target, repeat_count,
			description, created_at, due_at
		FROM reminders
		WHERE owner = ?
		ORDER BY due_at ASC, created_at ASC, id ASC
	`, owner)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query reminders: %v", storage.ErrUnavailable, err)
	}
	defer rows.Close()
	return scanReminders(rows)
}

func (s *Store) DeleteReminder(id string) (bool, error) {
	res, err := s.db.Exec("DELETE FROM reminders WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("%w: failed to delete reminder: %v", storage.ErrUnavailable, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: failed to read delete result: %v", storage.ErrUnavailable, err)
	}
	return affected > 0, nil
}

func (s *Store) FindDue(now time.Time) ([]models.Reminder, error) {
	rows, err := s.db.Query(`
		SELECT id, owner, current_amount, target, repeat_count,
			description, created_at, due_at
		FROM reminders
		WHERE due_at <= ?
	`, formatTime(now))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query due reminders: %v", storage.ErrUnavailable, err)
	}
	defer rows.Close()
	return scanReminders(rows)
}

func scanReminder(scan func(dest ...any) error) (models.Reminder, error) {
	var r models.Reminder
	var target, createdAt, dueAt string
	if err := scan(
		&r.ID, &r.Owner, &r.CurrentAmount, &target, &r.RepeatCount,
		&r.Description, &createdAt, &dueAt,
	); err != nil {
		return models.Reminder{}, err
	}

	r.Target = models.Target(target)
	created, err := time.Parse(constants.DateTimeFormat, createdAt)
	if err != nil {
		return models.Reminder{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	due, err := time.Parse(constants.DateTimeFormat, dueAt)
	if err != nil {
		return models.Reminder{}, fmt.Errorf("failed to parse due_at: %w", err)
	}
	r.CreatedAt = created
	r.DueAt = due
	return r, nil
}

func scanReminders(rows *sql.Rows) ([]models.Reminder, error) {
	var reminders []models.Reminder
	for rows.Next() {
		r, err := scanReminder(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to scan reminder: %v", storage.ErrUnavailable, err)
		}
		reminders = append(reminders, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to iterate reminders: %v", storage.ErrUnavailable, err)
	}
	return reminders, nil
}
