package application

import (
	"context"
	"log/slog"
	"time"

	"github.com/victorcollective/showcase/internal/domain/model"
	"github.com/victorcollective/showcase/internal/domain/port/driven"
)

// DefaultFetchTimeout bounds one live pipeline run when no timeout is configured.
const DefaultFetchTimeout = 10 * time.Second

// ProjectService assembles the ranked project list shown on the site.
type ProjectService struct {
	fetcher  *RepositoryFetcher
	merger   *Merger
	recorder driven.PipelineRecorder
	owner    string
	limit    int
	timeout  time.Duration
}

// ProjectServiceOptions tunes a ProjectService. Zero values select defaults.
type ProjectServiceOptions struct {
	Limit   int
	Timeout time.Duration
}

// NewProjectService creates a ProjectService for owner's repositories.
func NewProjectService(
	fetcher *RepositoryFetcher,
	merger *Merger,
	recorder driven.PipelineRecorder,
	owner string,
	opts ProjectServiceOptions,
) *ProjectService {
	if opts.Limit <= 0 {
		opts.Limit = DefaultDisplayLimit
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultFetchTimeout
	}
	if recorder == nil {
		recorder = driven.NopRecorder{}
	}
	return &ProjectService{
		fetcher:  fetcher,
		merger:   merger,
		recorder: recorder,
		owner:    owner,
		limit:    opts.Limit,
		timeout:  opts.Timeout,
	}
}

// RankedProjects runs the pipeline once. When the repository listing fails
// it returns the static fallback built from the override tables alone, so
// the result is never empty unless the tables are. It does not retry.
func (s *ProjectService) RankedProjects(ctx context.Context) model.ProjectList {
	start := time.Now()

	fetchCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	repos, err := s.fetcher.Fetch(fetchCtx, s.owner)
	if err != nil {
		slog.Error("repository fetch failed, using static projects", "owner", s.owner, "error", err)
		list := s.Fallback()
		s.recorder.RecordRun(list.Source, time.Since(start))
		return list
	}

	projects := Rank(s.merger.MergeFetched(repos), s.limit)

	slog.Info("projects assembled",
		"owner", s.owner,
		"repos", len(repos),
		"shown", len(projects),
		"duration", time.Since(start).Round(time.Millisecond),
	)
	s.recorder.RecordRun(model.SourceLive, time.Since(start))

	return model.ProjectList{Projects: projects, Source: model.SourceLive}
}

// Fallback builds the ranked list from the override tables without touching
// the network.
func (s *ProjectService) Fallback() model.ProjectList {
	return model.ProjectList{
		Projects: Rank(s.merger.StaticProjects(), s.limit),
		Source:   model.SourceFallback,
	}
}
