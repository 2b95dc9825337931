package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allConfigKeys lists every SHOWCASE_ env var that Load() reads.
var allConfigKeys = []string{
	"SHOWCASE_GITHUB_USERNAME",
	"SHOWCASE_GITHUB_TOKEN",
	"SHOWCASE_PROJECT_LIMIT",
	"SHOWCASE_TOPIC_CONCURRENCY",
	"SHOWCASE_FETCH_TIMEOUT",
	"SHOWCASE_OVERRIDES_DIR",
	"SHOWCASE_LISTEN_ADDR",
	"SHOWCASE_DB_PATH",
}

// isolateConfigEnv saves and unsets all SHOWCASE_ env vars so tests don't
// inherit values from the host environment.
// t.Cleanup restores original values after the test.
func isolateConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range allConfigKeys {
		if orig, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, orig) })
		} else {
			t.Cleanup(func() { os.Unsetenv(key) })
		}
		os.Unsetenv(key)
	}
}

func TestLoad_Success(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("SHOWCASE_GITHUB_USERNAME", "octo")
	t.Setenv("SHOWCASE_GITHUB_TOKEN", "ghp_test123")
	t.Setenv("SHOWCASE_PROJECT_LIMIT", "6")
	t.Setenv("SHOWCASE_TOPIC_CONCURRENCY", "2")
	t.Setenv("SHOWCASE_FETCH_TIMEOUT", "3s")
	t.Setenv("SHOWCASE_OVERRIDES_DIR", "/etc/showcase")
	t.Setenv("SHOWCASE_LISTEN_ADDR", "0.0.0.0:9090")
	t.Setenv("SHOWCASE_DB_PATH", "/tmp/test.db")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "octo", cfg.GitHubUsername)
	assert.Equal(t, "ghp_test123", cfg.GitHubToken)
	assert.True(t, cfg.HasGitHubToken())
	assert.Equal(t, 6, cfg.ProjectLimit)
	assert.Equal(t, 2, cfg.TopicConcurrency)
	assert.Equal(t, 3*time.Second, cfg.FetchTimeout)
	assert.Equal(t, "/etc/showcase", cfg.OverridesDir)
	assert.Equal(t, "0.0.0.0:9090", cfg.ListenAddr)
	assert.Equal(t, "/tmp/test.db", cfg.DBPath)
}

func TestLoad_Defaults(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("SHOWCASE_GITHUB_USERNAME", "octo")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "", cfg.GitHubToken)
	assert.False(t, cfg.HasGitHubToken())
	assert.Equal(t, 3, cfg.ProjectLimit)
	assert.Equal(t, 4, cfg.TopicConcurrency)
	assert.Equal(t, 10*time.Second, cfg.FetchTimeout)
	assert.Equal(t, "", cfg.OverridesDir)
	assert.Equal(t, "127.0.0.1:8080", cfg.ListenAddr)
	assert.Equal(t, "showcase.db", cfg.DBPath)
}

func TestDBPath_WithoutUsername(t *testing.T) {
	isolateConfigEnv(t)
	assert.Equal(t, "showcase.db", DBPath())

	t.Setenv("SHOWCASE_DB_PATH", "/var/lib/showcase/inbox.db")
	assert.Equal(t, "/var/lib/showcase/inbox.db", DBPath())
}

func TestLoad_MissingUsername(t *testing.T) {
	isolateConfigEnv(t)

	_, err := Load()

	assert.ErrorContains(t, err, "SHOWCASE_GITHUB_USERNAME")
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"SHOWCASE_PROJECT_LIMIT", "three"},
		{"SHOWCASE_PROJECT_LIMIT", "0"},
		{"SHOWCASE_TOPIC_CONCURRENCY", "-1"},
		{"SHOWCASE_FETCH_TIMEOUT", "soon"},
		{"SHOWCASE_FETCH_TIMEOUT", "0s"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			isolateConfigEnv(t)
			t.Setenv("SHOWCASE_GITHUB_USERNAME", "octo")
			t.Setenv(tt.key, tt.value)

			_, err := Load()

			assert.ErrorContains(t, err, tt.key)
		})
	}
}
