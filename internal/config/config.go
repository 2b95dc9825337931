// Package config loads application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	GitHubUsername   string
	GitHubToken      string
	ProjectLimit     int
	TopicConcurrency int
	FetchTimeout     time.Duration
	OverridesDir     string
	ListenAddr       string
	DBPath           string
}

// HasGitHubToken reports whether requests to GitHub will be authenticated.
// Without a token the pipeline still runs, against the lower anonymous rate limit.
func (c *Config) HasGitHubToken() bool {
	return c.GitHubToken != ""
}

// Load reads configuration from environment variables and returns a validated Config.
// SHOWCASE_GITHUB_USERNAME is required. SHOWCASE_GITHUB_TOKEN and
// SHOWCASE_OVERRIDES_DIR are optional. Optional variables with defaults:
// SHOWCASE_PROJECT_LIMIT (3), SHOWCASE_TOPIC_CONCURRENCY (4),
// SHOWCASE_FETCH_TIMEOUT (10s), SHOWCASE_LISTEN_ADDR (127.0.0.1:8080),
// SHOWCASE_DB_PATH (showcase.db).
func Load() (*Config, error) {
	username := os.Getenv("SHOWCASE_GITHUB_USERNAME")
	if username == "" {
		return nil, errors.New("SHOWCASE_GITHUB_USERNAME is required")
	}

	projectLimit, err := positiveInt("SHOWCASE_PROJECT_LIMIT", 3)
	if err != nil {
		return nil, err
	}

	topicConcurrency, err := positiveInt("SHOWCASE_TOPIC_CONCURRENCY", 4)
	if err != nil {
		return nil, err
	}

	fetchTimeout := 10 * time.Second
	if v, ok := os.LookupEnv("SHOWCASE_FETCH_TIMEOUT"); ok {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("SHOWCASE_FETCH_TIMEOUT has invalid duration %q: %w", v, err)
		}
		if parsed <= 0 {
			return nil, fmt.Errorf("SHOWCASE_FETCH_TIMEOUT must be positive, got %s", parsed)
		}
		fetchTimeout = parsed
	}

	listenAddr := "127.0.0.1:8080"
	if v, ok := os.LookupEnv("SHOWCASE_LISTEN_ADDR"); ok {
		listenAddr = v
	}

	return &Config{
		GitHubUsername:   username,
		GitHubToken:      os.Getenv("SHOWCASE_GITHUB_TOKEN"),
		ProjectLimit:     projectLimit,
		TopicConcurrency: topicConcurrency,
		FetchTimeout:     fetchTimeout,
		OverridesDir:     os.Getenv("SHOWCASE_OVERRIDES_DIR"),
		ListenAddr:       listenAddr,
		DBPath:           DBPath(),
	}, nil
}

// DBPath returns SHOWCASE_DB_PATH, or showcase.db when it is unset. It needs
// none of the GitHub settings Load requires.
func DBPath() string {
	if v, ok := os.LookupEnv("SHOWCASE_DB_PATH"); ok {
		return v
	}
	return "showcase.db"
}

func positiveInt(key string, def int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s has invalid integer %q: %w", key, v, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %d", key, n)
	}
	return n, nil
}
