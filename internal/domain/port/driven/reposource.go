package driven

import (
	"context"

	"github.com/victorcollective/showcase/internal/domain/model"
)

// RepoSource defines the driven port for reading repository metadata from the
// source-control host.
type RepoSource interface {
	// ListRepositories returns up to one page (100) of the owner's
	// repositories, most recently updated first. Topics and Category are left
	// empty; the caller enriches them.
	ListRepositories(ctx context.Context, owner string) ([]model.Repository, error)
	// ListTopics returns the topic tags of owner/repo.
	ListTopics(ctx context.Context, owner, repo string) ([]string, error)
}
