package application_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/victorcollective/showcase/internal/application"
	"github.com/victorcollective/showcase/internal/domain/model"
)

type mockContactStore struct {
	saved     []model.ContactMessage
	err       error
	lastLimit int
}

func (m *mockContactStore) Save(_ context.Context, msg model.ContactMessage) (model.ContactMessage, error) {
	if m.err != nil {
		return model.ContactMessage{}, m.err
	}
	msg.ID = int64(len(m.saved) + 1)
	msg.CreatedAt = time.Now().UTC()
	m.saved = append(m.saved, msg)
	return msg, nil
}

func (m *mockContactStore) ListRecent(_ context.Context, limit int) ([]model.ContactMessage, error) {
	m.lastLimit = limit
	if m.err != nil {
		return nil, m.err
	}
	if len(m.saved) > limit {
		return m.saved[:limit], nil
	}
	return m.saved, nil
}

type mockSubscriberStore struct {
	emails map[string]bool
}

func (m *mockSubscriberStore) Add(_ context.Context, email string) (bool, error) {
	if m.emails == nil {
		m.emails = map[string]bool{}
	}
	if m.emails[email] {
		return false, nil
	}
	m.emails[email] = true
	return true, nil
}

func (m *mockSubscriberStore) Count(_ context.Context) (int, error) {
	return len(m.emails), nil
}

func TestSubmitContact_Valid(t *testing.T) {
	contacts := &mockContactStore{}
	svc := application.NewInboxService(contacts, &mockSubscriberStore{})

	msg, err := svc.SubmitContact(context.Background(), "  Ada ", "Ada@Example.com", "Hello", "  Nice site  ")

	require.NoError(t, err)
	assert.Equal(t, int64(1), msg.ID)
	require.Len(t, contacts.saved, 1)
	assert.Equal(t, "Ada", contacts.saved[0].Name)
	assert.Equal(t, "ada@example.com", contacts.saved[0].Email)
	assert.Equal(t, "Nice site", contacts.saved[0].Message)
}

func TestSubmitContact_Invalid(t *testing.T) {
	tests := []struct {
		name                          string
		from, email, subject, message string
	}{
		{"missing name", " ", "a@b.co", "s", "m"},
		{"missing email", "n", "", "s", "m"},
		{"bad email", "n", "not-an-email", "s", "m"},
		{"display name email", "n", "Ada <a@b.co>", "s", "m"},
		{"missing subject", "n", "a@b.co", "", "m"},
		{"missing message", "n", "a@b.co", "s", "\n"},
		{"long message", "n", "a@b.co", "s", strings.Repeat("x", 10001)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contacts := &mockContactStore{}
			svc := application.NewInboxService(contacts, &mockSubscriberStore{})

			_, err := svc.SubmitContact(context.Background(), tt.from, tt.email, tt.subject, tt.message)

			require.Error(t, err)
			assert.True(t, errors.Is(err, model.ErrInvalidSubmission))
			assert.Empty(t, contacts.saved)
		})
	}
}

func TestSubmitContact_StoreError(t *testing.T) {
	svc := application.NewInboxService(&mockContactStore{err: errors.New("disk full")}, &mockSubscriberStore{})

	_, err := svc.SubmitContact(context.Background(), "n", "a@b.co", "s", "m")

	require.Error(t, err)
	assert.False(t, errors.Is(err, model.ErrInvalidSubmission))
}

func TestSubscribe_Idempotent(t *testing.T) {
	subs := &mockSubscriberStore{}
	svc := application.NewInboxService(&mockContactStore{}, subs)

	created, err := svc.Subscribe(context.Background(), "Reader@Example.com")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = svc.Subscribe(context.Background(), "reader@example.com")
	require.NoError(t, err)
	assert.False(t, created)

	n, _ := subs.Count(context.Background())
	assert.Equal(t, 1, n)
}

func TestSubscribe_InvalidEmail(t *testing.T) {
	svc := application.NewInboxService(&mockContactStore{}, &mockSubscriberStore{})

	_, err := svc.Subscribe(context.Background(), "nope")

	assert.True(t, errors.Is(err, model.ErrInvalidSubmission))
}

func TestRecentMessages(t *testing.T) {
	contacts := &mockContactStore{}
	svc := application.NewInboxService(contacts, &mockSubscriberStore{})
	ctx := context.Background()

	for _, subject := range []string{"one", "two", "three"} {
		_, err := svc.SubmitContact(ctx, "Ada", "ada@example.com", subject, "body")
		require.NoError(t, err)
	}

	msgs, err := svc.RecentMessages(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, msgs, 2)
	assert.Equal(t, 2, contacts.lastLimit)

	_, err = svc.RecentMessages(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 20, contacts.lastLimit)
}

func TestRecentMessages_StoreError(t *testing.T) {
	svc := application.NewInboxService(&mockContactStore{err: errors.New("disk full")}, &mockSubscriberStore{})

	_, err := svc.RecentMessages(context.Background(), 5)

	assert.ErrorContains(t, err, "list recent messages")
}

func TestSubscriberCount(t *testing.T) {
	svc := application.NewInboxService(&mockContactStore{}, &mockSubscriberStore{})
	ctx := context.Background()

	for _, email := range []string{"a@example.com", "b@example.com", "A@example.com"} {
		_, err := svc.Subscribe(ctx, email)
		require.NoError(t, err)
	}

	n, err := svc.SubscriberCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
