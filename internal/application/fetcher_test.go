package application_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/victorcollective/showcase/internal/application"
	"github.com/victorcollective/showcase/internal/domain/model"
)

// --- Mock implementations ---

type mockRepoSource struct {
	repos     []model.Repository
	listErr   error
	topics    map[string][]string
	topicErrs map[string]error

	mu          sync.Mutex
	topicCalls  []string
	inFlight    atomic.Int32
	maxInFlight atomic.Int32
	topicDelay  time.Duration
	listCalls   atomic.Int32
}

func (m *mockRepoSource) ListRepositories(_ context.Context, _ string) ([]model.Repository, error) {
	m.listCalls.Add(1)
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.repos, nil
}

func (m *mockRepoSource) ListTopics(_ context.Context, _ string, repo string) ([]string, error) {
	n := m.inFlight.Add(1)
	defer m.inFlight.Add(-1)
	for {
		cur := m.maxInFlight.Load()
		if n <= cur || m.maxInFlight.CompareAndSwap(cur, n) {
			break
		}
	}
	if m.topicDelay > 0 {
		time.Sleep(m.topicDelay)
	}

	m.mu.Lock()
	m.topicCalls = append(m.topicCalls, repo)
	m.mu.Unlock()

	if err := m.topicErrs[repo]; err != nil {
		return nil, err
	}
	return m.topics[repo], nil
}

type mockRecorder struct {
	mu            sync.Mutex
	runs          []model.ProjectSource
	topicFailures int
}

func (r *mockRecorder) RecordRun(source model.ProjectSource, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runs = append(r.runs, source)
}

func (r *mockRecorder) RecordTopicFailure() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.topicFailures++
}

// --- Tests ---

func TestFetch_EnrichesTopicsAndCategory(t *testing.T) {
	source := &mockRepoSource{
		repos: []model.Repository{
			{Name: "chatbot", Language: "TypeScript"},
			{Name: "site", Language: "TypeScript"},
			{Name: "scripts", Language: "Python"},
		},
		topics: map[string][]string{
			"chatbot": {"gpt", "react"},
			"site":    {"nextjs"},
		},
	}

	f := application.NewRepositoryFetcher(source, nil, 2)
	repos, err := f.Fetch(context.Background(), "octo")

	require.NoError(t, err)
	require.Len(t, repos, 3)
	assert.Equal(t, "chatbot", repos[0].Name)
	assert.Equal(t, model.CategoryAIML, repos[0].Category)
	assert.Equal(t, []string{"gpt", "react"}, repos[0].Topics)
	assert.Equal(t, "site", repos[1].Name)
	assert.Equal(t, model.CategoryReact, repos[1].Category)
	assert.Equal(t, "scripts", repos[2].Name)
	assert.Equal(t, model.CategoryPython, repos[2].Category)
}

func TestFetch_TopicFailureDegradesToEmpty(t *testing.T) {
	source := &mockRepoSource{
		repos: []model.Repository{
			{Name: "ok", Language: "Go"},
			{Name: "broken", Language: "Python"},
		},
		topics:    map[string][]string{"ok": {"ml"}},
		topicErrs: map[string]error{"broken": errors.New("502 bad gateway")},
	}
	rec := &mockRecorder{}

	f := application.NewRepositoryFetcher(source, rec, 4)
	repos, err := f.Fetch(context.Background(), "octo")

	require.NoError(t, err)
	require.Len(t, repos, 2)
	assert.Equal(t, model.CategoryAIML, repos[0].Category)
	assert.Equal(t, []string{}, repos[1].Topics)
	assert.Equal(t, model.CategoryPython, repos[1].Category)
	assert.Equal(t, 1, rec.topicFailures)
}

func TestFetch_ListFailureIsReturned(t *testing.T) {
	source := &mockRepoSource{listErr: errors.New("403 rate limited")}

	f := application.NewRepositoryFetcher(source, nil, 4)
	repos, err := f.Fetch(context.Background(), "octo")

	require.Error(t, err)
	assert.Nil(t, repos)
	assert.Empty(t, source.topicCalls)
}

func TestFetch_BoundsConcurrency(t *testing.T) {
	var repos []model.Repository
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		repos = append(repos, model.Repository{Name: name})
	}
	source := &mockRepoSource{repos: repos, topicDelay: 10 * time.Millisecond}

	f := application.NewRepositoryFetcher(source, nil, 2)
	got, err := f.Fetch(context.Background(), "octo")

	require.NoError(t, err)
	assert.Len(t, got, 8)
	assert.Len(t, source.topicCalls, 8)
	assert.LessOrEqual(t, source.maxInFlight.Load(), int32(2))
}
