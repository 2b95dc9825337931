package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAddr(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"", "127.0.0.1:8080"},
		{"0.0.0.0:9000", "127.0.0.1:9000"},
		{":9000", "127.0.0.1:9000"},
		{"10.0.0.5:8081", "10.0.0.5:8081"},
		{"not-an-addr", "127.0.0.1:8080"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeAddr(tt.raw), tt.raw)
	}
}

func serve(t *testing.T, status int, body string) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/health" {
			http.NotFound(w, r)
			return
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return strings.TrimPrefix(srv.URL, "http://")
}

func TestCheck(t *testing.T) {
	assert.NoError(t, check(serve(t, http.StatusOK, `{"status":"ok","time":"2026-01-01T00:00:00Z"}`)))
	assert.Error(t, check(serve(t, http.StatusOK, `{"status":"degraded"}`)))
	assert.Error(t, check(serve(t, http.StatusServiceUnavailable, `{"status":"ok"}`)))
	assert.Error(t, check(serve(t, http.StatusOK, `not json`)))
}
