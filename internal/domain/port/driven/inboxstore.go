package driven

import (
	"context"

	"github.com/victorcollective/showcase/internal/domain/model"
)

// ContactStore defines the driven port for contact form persistence.
type ContactStore interface {
	// Save stores msg and returns it with ID and CreatedAt assigned.
	Save(ctx context.Context, msg model.ContactMessage) (model.ContactMessage, error)
	ListRecent(ctx context.Context, limit int) ([]model.ContactMessage, error)
}

// SubscriberStore defines the driven port for newsletter sign-ups.
// Add is idempotent: adding an existing email returns created=false and no error.
type SubscriberStore interface {
	Add(ctx context.Context, email string) (created bool, err error)
	Count(ctx context.Context) (int, error)
}
