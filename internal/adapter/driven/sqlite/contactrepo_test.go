package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/victorcollective/showcase/internal/domain/model"
)

func TestContactRepo_SaveAssignsIDAndTime(t *testing.T) {
	db := setupTestDB(t)
	repo := NewContactRepo(db)
	ctx := context.Background()

	saved, err := repo.Save(ctx, model.ContactMessage{
		Name:    "Ada",
		Email:   "ada@example.com",
		Subject: "Hello",
		Message: "Nice site",
	})

	require.NoError(t, err)
	assert.Positive(t, saved.ID)
	assert.False(t, saved.CreatedAt.IsZero())
}

func TestContactRepo_ListRecentNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewContactRepo(db)
	ctx := context.Background()

	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	for i, subject := range []string{"first", "second", "third"} {
		_, err := repo.Save(ctx, model.ContactMessage{
			Name:      "n",
			Email:     "n@example.com",
			Subject:   subject,
			Message:   "m",
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
		require.NoError(t, err)
	}

	msgs, err := repo.ListRecent(ctx, 2)

	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "third", msgs[0].Subject)
	assert.Equal(t, "second", msgs[1].Subject)
	assert.True(t, msgs[0].CreatedAt.Equal(base.Add(2*time.Hour)))
}

func TestContactRepo_ListRecentEmpty(t *testing.T) {
	db := setupTestDB(t)
	repo := NewContactRepo(db)

	msgs, err := repo.ListRecent(context.Background(), 10)

	require.NoError(t, err)
	assert.Empty(t, msgs)
}
