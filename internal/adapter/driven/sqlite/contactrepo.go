package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/victorcollective/showcase/internal/domain/model"
	"github.com/victorcollective/showcase/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.ContactStore = (*ContactRepo)(nil)

// ContactRepo is the SQLite implementation of the ContactStore port interface.
type ContactRepo struct {
	db *DB
}

// NewContactRepo creates a new ContactRepo backed by the given DB.
func NewContactRepo(db *DB) *ContactRepo {
	return &ContactRepo{db: db}
}

// Save inserts msg and returns it with its ID and CreatedAt populated.
// A zero CreatedAt is set to the current UTC time.
func (r *ContactRepo) Save(ctx context.Context, msg model.ContactMessage) (model.ContactMessage, error) {
	const query = `INSERT INTO contact_messages (name, email, subject, message, created_at) VALUES (?, ?, ?, ?, ?)`

	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now().UTC()
	}

	result, err := r.db.Writer.ExecContext(ctx, query,
		msg.Name, msg.Email, msg.Subject, msg.Message, formatTime(msg.CreatedAt),
	)
	if err != nil {
		return model.ContactMessage{}, fmt.Errorf("insert contact message: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return model.ContactMessage{}, fmt.Errorf("contact message id: %w", err)
	}
	msg.ID = id

	return msg, nil
}

// ListRecent returns up to limit messages, newest first.
func (r *ContactRepo) ListRecent(ctx context.Context, limit int) ([]model.ContactMessage, error) {
	const query = `SELECT id, name, email, subject, message, created_at
		FROM contact_messages ORDER BY created_at DESC, id DESC LIMIT ?`

	rows, err := r.db.Reader.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	defer rows.Close()

	var msgs []model.ContactMessage
	for rows.Next() {
		var msg model.ContactMessage
		var createdAt string
		if err := rows.Scan(&msg.ID, &msg.Name, &msg.Email, &msg.Subject, &msg.Message, &createdAt); err != nil {
			return nil, fmt.Errorf("scan contact message: %w", err)
		}
		msg.CreatedAt, err = parseTime(createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		msgs = append(msgs, msg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contact messages: %w", err)
	}

	return msgs, nil
}

// timeLayout is fixed-width so stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// parseTime tries multiple SQLite datetime formats.
func parseTime(s string) (time.Time, error) {
	formats := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05",
	}

	for _, format := range formats {
		if t, err := time.Parse(format, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized time format: %s", s)
}
