package application

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"

	"github.com/victorcollective/showcase/internal/domain/model"
	"github.com/victorcollective/showcase/internal/domain/port/driven"
)

// Field length limits for contact submissions.
const (
	maxNameLen    = 200
	maxSubjectLen = 300
	maxMessageLen = 10000

	defaultRecentLimit = 20
)

// InboxService validates and records contact messages and newsletter sign-ups.
type InboxService struct {
	contacts    driven.ContactStore
	subscribers driven.SubscriberStore
}

// NewInboxService creates a new InboxService.
func NewInboxService(contacts driven.ContactStore, subscribers driven.SubscriberStore) *InboxService {
	return &InboxService{
		contacts:    contacts,
		subscribers: subscribers,
	}
}

// SubmitContact validates and stores a contact form message.
func (s *InboxService) SubmitContact(ctx context.Context, name, email, subject, message string) (model.ContactMessage, error) {
	name = strings.TrimSpace(name)
	subject = strings.TrimSpace(subject)
	message = strings.TrimSpace(message)

	if err := requireField("name", name, maxNameLen); err != nil {
		return model.ContactMessage{}, err
	}
	addr, err := normalizeEmail(email)
	if err != nil {
		return model.ContactMessage{}, err
	}
	if err := requireField("subject", subject, maxSubjectLen); err != nil {
		return model.ContactMessage{}, err
	}
	if err := requireField("message", message, maxMessageLen); err != nil {
		return model.ContactMessage{}, err
	}

	saved, err := s.contacts.Save(ctx, model.ContactMessage{
		Name:    name,
		Email:   addr,
		Subject: subject,
		Message: message,
	})
	if err != nil {
		return model.ContactMessage{}, fmt.Errorf("save contact message: %w", err)
	}

	slog.Info("contact message received", "id", saved.ID)
	return saved, nil
}

// Subscribe adds email to the newsletter. Subscribing twice is not an error;
// the returned bool reports whether a new subscriber was created.
func (s *InboxService) Subscribe(ctx context.Context, email string) (bool, error) {
	addr, err := normalizeEmail(email)
	if err != nil {
		return false, err
	}

	created, err := s.subscribers.Add(ctx, addr)
	if err != nil {
		return false, fmt.Errorf("add subscriber: %w", err)
	}

	if created {
		slog.Info("newsletter subscriber added")
	}
	return created, nil
}

// RecentMessages returns up to limit contact messages, newest first.
// A non-positive limit falls back to the default page size.
func (s *InboxService) RecentMessages(ctx context.Context, limit int) ([]model.ContactMessage, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}

	msgs, err := s.contacts.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent messages: %w", err)
	}
	return msgs, nil
}

// SubscriberCount returns the number of newsletter subscribers.
func (s *InboxService) SubscriberCount(ctx context.Context) (int, error) {
	n, err := s.subscribers.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count subscribers: %w", err)
	}
	return n, nil
}

// normalizeEmail validates a bare email address and lower-cases it.
func normalizeEmail(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("email is required: %w", model.ErrInvalidSubmission)
	}

	addr, err := mail.ParseAddress(raw)
	if err != nil || addr.Name != "" || addr.Address != raw {
		return "", fmt.Errorf("email %q is not a valid address: %w", raw, model.ErrInvalidSubmission)
	}

	return strings.ToLower(addr.Address), nil
}

func requireField(field, value string, maxLen int) error {
	if value == "" {
		return fmt.Errorf("%s is required: %w", field, model.ErrInvalidSubmission)
	}
	if len(value) > maxLen {
		return fmt.Errorf("%s exceeds %d characters: %w", field, maxLen, model.ErrInvalidSubmission)
	}
	return nil
}
