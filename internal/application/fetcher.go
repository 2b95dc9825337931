package application

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/victorcollective/showcase/internal/domain/model"
	"github.com/victorcollective/showcase/internal/domain/port/driven"
)

// DefaultTopicConcurrency bounds in-flight topic requests when no limit is configured.
const DefaultTopicConcurrency = 4

// RepositoryFetcher lists a user's repositories and enriches each with its
// topics and category.
type RepositoryFetcher struct {
	source      driven.RepoSource
	recorder    driven.PipelineRecorder
	concurrency int
}

// NewRepositoryFetcher creates a fetcher. A concurrency below 1 falls back to
// DefaultTopicConcurrency; a nil recorder discards observations.
func NewRepositoryFetcher(source driven.RepoSource, recorder driven.PipelineRecorder, concurrency int) *RepositoryFetcher {
	if concurrency < 1 {
		concurrency = DefaultTopicConcurrency
	}
	if recorder == nil {
		recorder = driven.NopRecorder{}
	}
	return &RepositoryFetcher{
		source:      source,
		recorder:    recorder,
		concurrency: concurrency,
	}
}

// Fetch lists owner's repositories and fetches topics for each one with at
// most f.concurrency requests in flight. A failed listing is returned as an
// error. A failed topic request leaves that repository with no topics.
// The returned slice keeps the listing order.
func (f *RepositoryFetcher) Fetch(ctx context.Context, owner string) ([]model.Repository, error) {
	repos, err := f.source.ListRepositories(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("list repositories for %s: %w", owner, err)
	}

	enriched := make([]model.Repository, len(repos))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(f.concurrency)

	for i, repo := range repos {
		g.Go(func() error {
			topics, err := f.source.ListTopics(gctx, owner, repo.Name)
			if err != nil {
				slog.Warn("topic fetch failed", "repo", repo.Name, "error", err)
				f.recorder.RecordTopicFailure()
				topics = []string{}
			}

			repo.Topics = topics
			repo.Category = Classify(topics, repo.Language)
			enriched[i] = repo
			return nil
		})
	}

	// Workers never return errors; Wait only joins them.
	_ = g.Wait()

	return enriched, nil
}
