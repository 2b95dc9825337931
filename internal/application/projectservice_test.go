package application_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/victorcollective/showcase/internal/application"
	"github.com/victorcollective/showcase/internal/domain/model"
)

func newProjectService(t *testing.T, source *mockRepoSource, config, manual model.OverrideTable, rec *mockRecorder) *application.ProjectService {
	t.Helper()

	fetcher := application.NewRepositoryFetcher(source, rec, 4)
	merger := application.NewMerger(config, manual, "octo", stubImage)

	return application.NewProjectService(fetcher, merger, rec, "octo", application.ProjectServiceOptions{
		Limit:   3,
		Timeout: time.Second,
	})
}

func TestRankedProjects_UnmatchedPythonRepo(t *testing.T) {
	source := &mockRepoSource{
		repos: []model.Repository{{Name: "foo", Language: "Python", HTMLURL: "https://github.com/octo/foo"}},
	}
	rec := &mockRecorder{}
	svc := newProjectService(t, source, model.OverrideTable{}, model.OverrideTable{}, rec)

	list := svc.RankedProjects(context.Background())

	assert.Equal(t, model.SourceLive, list.Source)
	require.Len(t, list.Projects, 1)
	p := list.Projects[0]
	assert.Equal(t, "Foo", p.Title)
	assert.Equal(t, model.CategoryPython, p.Category)
	assert.False(t, p.Featured)
	assert.Equal(t, 99, p.Order)
	assert.Equal(t, []model.ProjectSource{model.SourceLive}, rec.runs)
}

func TestRankedProjects_ManualOnlyFeaturedProject(t *testing.T) {
	source := &mockRepoSource{
		repos: []model.Repository{
			{Name: "alpha", Language: "Go"},
			{Name: "beta", Language: "Go"},
			{Name: "gamma", Language: "Go"},
		},
	}
	manual := model.NewOverrideTable([]model.Override{
		{ID: "bar", Featured: boolPtr(true), Order: intPtr(1)},
	})
	svc := newProjectService(t, source, model.OverrideTable{}, manual, &mockRecorder{})

	list := svc.RankedProjects(context.Background())

	require.Len(t, list.Projects, 3)
	assert.Equal(t, "bar", list.Projects[0].ID)
	assert.Equal(t, "https://github.com/octo/bar", list.Projects[0].SourceURL)
	assert.Equal(t, []string{"bar", "alpha", "beta"}, ids(list.Projects))
}

func TestRankedProjects_ListingFailureUsesFallback(t *testing.T) {
	source := &mockRepoSource{listErr: errors.New("boom")}
	config := model.NewOverrideTable([]model.Override{
		{ID: "metacraft", Title: "MetaCraft AI", Featured: boolPtr(true), Order: intPtr(1)},
		{ID: "fleet-dashboard", Featured: boolPtr(true), Order: intPtr(3)},
		{ID: "ai-showcase", Featured: boolPtr(true), Order: intPtr(2)},
	})
	manual := model.NewOverrideTable([]model.Override{
		{ID: "cascade", Featured: boolPtr(true), Order: intPtr(2)},
		{ID: "metacraft", Description: "manual description"},
	})
	rec := &mockRecorder{}
	svc := newProjectService(t, source, config, manual, rec)

	list := svc.RankedProjects(context.Background())

	assert.Equal(t, model.SourceFallback, list.Source)
	assert.Equal(t, svc.Fallback(), list)
	assert.Equal(t, []string{"metacraft", "ai-showcase", "cascade"}, ids(list.Projects))
	assert.Equal(t, "manual description", list.Projects[0].Description)
	assert.Equal(t, int32(1), source.listCalls.Load(), "no retry after failure")
	assert.Equal(t, []model.ProjectSource{model.SourceFallback}, rec.runs)
}

func TestRankedProjects_NoDuplicateIDs(t *testing.T) {
	source := &mockRepoSource{
		repos: []model.Repository{{Name: "metacraft", Language: "TypeScript"}},
	}
	config := model.NewOverrideTable([]model.Override{{ID: "metacraft", Featured: boolPtr(true)}})
	manual := model.NewOverrideTable([]model.Override{{ID: "metacraft", Title: "MetaCraft AI"}})
	svc := newProjectService(t, source, config, manual, &mockRecorder{})

	list := svc.RankedProjects(context.Background())

	require.Len(t, list.Projects, 1)
	assert.Equal(t, "MetaCraft AI", list.Projects[0].Title)
	assert.True(t, list.Projects[0].Featured)
}

func TestNewProjectService_Defaults(t *testing.T) {
	var repos []model.Repository
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		repos = append(repos, model.Repository{Name: name})
	}
	source := &mockRepoSource{repos: repos}
	fetcher := application.NewRepositoryFetcher(source, nil, 0)
	merger := application.NewMerger(model.OverrideTable{}, model.OverrideTable{}, "octo", nil)

	svc := application.NewProjectService(fetcher, merger, nil, "octo", application.ProjectServiceOptions{})
	list := svc.RankedProjects(context.Background())

	assert.Len(t, list.Projects, application.DefaultDisplayLimit)
	for _, p := range list.Projects {
		assert.Contains(t, application.CategoryImages(p.Category), p.Image)
	}
}
