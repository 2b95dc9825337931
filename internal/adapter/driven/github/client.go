// Package github implements the RepoSource port using the go-github library.
package github

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	gh "github.com/google/go-github/v82/github"
	"github.com/gregjones/httpcache"

	"github.com/gofri/go-github-ratelimit/v2/github_ratelimit"

	"github.com/victorcollective/showcase/internal/domain/model"
	"github.com/victorcollective/showcase/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.RepoSource = (*Client)(nil)

// reposPerPage is the single page size requested when listing repositories.
const reposPerPage = 100

// Media types sent in the Accept header. Topics are only returned under the
// mercy preview type.
const (
	mediaTypeV3            = "application/vnd.github.v3+json"
	mediaTypeTopicsPreview = "application/vnd.github.mercy-preview+json"
)

// Client implements the driven.RepoSource port using the go-github library.
type Client struct {
	gh *gh.Client
}

// NewClient creates a new GitHub API client with the following transport stack:
//  1. httpcache (ETag-based conditional request caching)
//  2. go-github-ratelimit (secondary rate limit middleware, sleeps on 429)
//  3. go-github (GitHub REST API client, PAT auth when token is non-empty)
//
// An empty token issues unauthenticated requests with the lower rate limit.
func NewClient(token string) *Client {
	cacheTransport := httpcache.NewMemoryCacheTransport()
	rateLimitClient := github_ratelimit.NewClient(cacheTransport)
	client := gh.NewClient(rateLimitClient)
	if token != "" {
		client = client.WithAuthToken(token)
	}

	return &Client{gh: client}
}

// NewClientWithHTTPClient creates a Client with a custom http.Client and base URL.
// This constructor is intended for testing, allowing injection of an httptest server.
func NewClientWithHTTPClient(httpClient *http.Client, baseURL, token string) (*Client, error) {
	client := gh.NewClient(httpClient)
	if token != "" {
		client = client.WithAuthToken(token)
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}
	client.BaseURL = u

	return &Client{gh: client}, nil
}

// ListRepositories returns the first page of up to 100 public repositories
// owned by owner, most recently updated first. Any non-2xx response is
// returned as an error.
func (c *Client) ListRepositories(ctx context.Context, owner string) ([]model.Repository, error) {
	u := fmt.Sprintf("users/%s/repos?sort=updated&per_page=%d", url.PathEscape(owner), reposPerPage)

	var repos []*gh.Repository
	resp, err := c.get(ctx, u, mediaTypeV3, &repos)
	if err != nil {
		return nil, fmt.Errorf("listing repositories for %s: %w", owner, err)
	}

	logRateLimit(resp, owner+"/repos", len(repos))

	result := make([]model.Repository, 0, len(repos))
	for _, r := range repos {
		result = append(result, mapRepository(r))
	}

	return result, nil
}

// ListTopics returns the topic tags of owner/repo. A repository without
// topics yields an empty, non-nil slice.
func (c *Client) ListTopics(ctx context.Context, owner, repo string) ([]string, error) {
	u := fmt.Sprintf("repos/%s/%s/topics", url.PathEscape(owner), url.PathEscape(repo))

	var body struct {
		Names []string `json:"names"`
	}
	resp, err := c.get(ctx, u, mediaTypeTopicsPreview, &body)
	if err != nil {
		return nil, fmt.Errorf("listing topics for %s/%s: %w", owner, repo, err)
	}

	logRateLimit(resp, owner+"/"+repo+"/topics", len(body.Names))

	if body.Names == nil {
		return []string{}, nil
	}
	return body.Names, nil
}

// get issues a GET for the API path u with the given Accept media type and
// decodes the JSON body into v. Non-2xx responses are returned as
// *gh.ErrorResponse by go-github.
func (c *Client) get(ctx context.Context, u, accept string, v any) (*gh.Response, error) {
	req, err := c.gh.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", accept)

	return c.gh.Do(ctx, req, v)
}

// mapRepository converts a go-github Repository to a domain model Repository.
// It uses GetXxx() helper methods exclusively to avoid nil pointer panics.
// Topics and Category are filled in by the fetcher.
func mapRepository(r *gh.Repository) model.Repository {
	return model.Repository{
		Name:        r.GetName(),
		Description: r.GetDescription(),
		HTMLURL:     r.GetHTMLURL(),
		Language:    r.GetLanguage(),
		Homepage:    r.GetHomepage(),
	}
}

// logRateLimit logs the GitHub API rate limit status after each call.
func logRateLimit(resp *gh.Response, endpoint string, count int) {
	if resp == nil {
		return
	}

	slog.Debug("github api call",
		"endpoint", endpoint,
		"count", count,
		"rate_remaining", resp.Rate.Remaining,
		"rate_limit", resp.Rate.Limit,
	)

	if resp.Rate.Limit > 0 && resp.Rate.Remaining < 10 {
		slog.Warn("github rate limit low",
			"remaining", resp.Rate.Remaining,
			"reset_in", time.Until(resp.Rate.Reset.Time).Round(time.Second),
		)
	}
}
