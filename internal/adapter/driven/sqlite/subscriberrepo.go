package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/victorcollective/showcase/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.SubscriberStore = (*SubscriberRepo)(nil)

// SubscriberRepo is the SQLite implementation of the SubscriberStore port interface.
type SubscriberRepo struct {
	db *DB
}

// NewSubscriberRepo creates a new SubscriberRepo backed by the given DB.
func NewSubscriberRepo(db *DB) *SubscriberRepo {
	return &SubscriberRepo{db: db}
}

// Add inserts email unless it is already subscribed. created reports whether
// a row was inserted.
func (r *SubscriberRepo) Add(ctx context.Context, email string) (bool, error) {
	const query = `INSERT INTO newsletter_subscribers (email, subscribed_at) VALUES (?, ?)
		ON CONFLICT(email) DO NOTHING`

	result, err := r.db.Writer.ExecContext(ctx, query, email, formatTime(time.Now()))
	if err != nil {
		return false, fmt.Errorf("add subscriber: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("check rows affected: %w", err)
	}

	return rows > 0, nil
}

// Count returns the number of subscribers.
func (r *SubscriberRepo) Count(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM newsletter_subscribers`

	var n int
	if err := r.db.Reader.QueryRowContext(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("count subscribers: %w", err)
	}
	return n, nil
}
