package github_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ghAdapter "github.com/victorcollective/showcase/internal/adapter/driven/github"
)

// newTestClient creates a Client backed by the given httptest handler.
func newTestClient(t *testing.T, handler http.Handler, token string) *ghAdapter.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := ghAdapter.NewClientWithHTTPClient(server.Client(), server.URL+"/", token)
	require.NoError(t, err)

	return client
}

// repoJSON is a helper struct for building GitHub API repository responses.
type repoJSON struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	HTMLURL     string  `json:"html_url"`
	Language    *string `json:"language"`
	Homepage    *string `json:"homepage"`
}

func strPtr(s string) *string { return &s }

func TestListRepositories_MapsFields(t *testing.T) {
	var gotQuery, gotPath, gotAccept string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]repoJSON{
			{
				Name:        "metacraft",
				Description: strPtr("AI content analyzer"),
				HTMLURL:     "https://github.com/octo/metacraft",
				Language:    strPtr("TypeScript"),
				Homepage:    strPtr("https://metacraft.example"),
			},
			{
				Name:    "dotfiles",
				HTMLURL: "https://github.com/octo/dotfiles",
			},
		})
	})

	client := newTestClient(t, handler, "")
	repos, err := client.ListRepositories(context.Background(), "octo")

	require.NoError(t, err)
	assert.Equal(t, "/users/octo/repos", gotPath)
	assert.Contains(t, gotQuery, "per_page=100")
	assert.Contains(t, gotQuery, "sort=updated")
	assert.Equal(t, "application/vnd.github.v3+json", gotAccept)

	require.Len(t, repos, 2)
	assert.Equal(t, "metacraft", repos[0].Name)
	assert.Equal(t, "AI content analyzer", repos[0].Description)
	assert.Equal(t, "https://github.com/octo/metacraft", repos[0].HTMLURL)
	assert.Equal(t, "TypeScript", repos[0].Language)
	assert.Equal(t, "https://metacraft.example", repos[0].Homepage)

	// Null fields map to empty strings.
	assert.Equal(t, "dotfiles", repos[1].Name)
	assert.Equal(t, "", repos[1].Description)
	assert.Equal(t, "", repos[1].Language)
	assert.Equal(t, "", repos[1].Homepage)
}

func TestListRepositories_Non2xxIsError(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Not Found"}`))
	})

	client := newTestClient(t, handler, "")
	repos, err := client.ListRepositories(context.Background(), "ghost")

	require.Error(t, err)
	assert.Nil(t, repos)
}

func TestListTopics(t *testing.T) {
	var gotPath, gotAccept string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"names":["react","gpt"]}`))
	})

	client := newTestClient(t, handler, "")
	topics, err := client.ListTopics(context.Background(), "octo", "metacraft")

	require.NoError(t, err)
	assert.Equal(t, "/repos/octo/metacraft/topics", gotPath)
	assert.Equal(t, "application/vnd.github.mercy-preview+json", gotAccept)
	assert.Equal(t, []string{"react", "gpt"}, topics)
}

func TestListTopics_EmptyIsNonNil(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"names":[]}`))
	})

	client := newTestClient(t, handler, "")
	topics, err := client.ListTopics(context.Background(), "octo", "bare")

	require.NoError(t, err)
	assert.NotNil(t, topics)
	assert.Empty(t, topics)
}

func TestListTopics_NullNamesIsNonNil(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	})

	client := newTestClient(t, handler, "")
	topics, err := client.ListTopics(context.Background(), "octo", "bare")

	require.NoError(t, err)
	assert.Equal(t, []string{}, topics)
}

func TestListTopics_ServerError(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	client := newTestClient(t, handler, "")
	_, err := client.ListTopics(context.Background(), "octo", "metacraft")

	require.Error(t, err)
}

func TestAuthorizationHeader(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  string
	}{
		{"with token", "ghp_secret", "Bearer ghp_secret"},
		{"without token", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotAuth string
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotAuth = r.Header.Get("Authorization")
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`[]`))
			})

			client := newTestClient(t, handler, tt.token)
			_, err := client.ListRepositories(context.Background(), "octo")

			require.NoError(t, err)
			assert.Equal(t, tt.want, gotAuth)
		})
	}
}
