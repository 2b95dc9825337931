// Command healthcheck queries a running showcase server's liveness endpoint.
// It exits 0 when the server answers {"status":"ok"} and 1 otherwise, which
// makes it usable as a container HEALTHCHECK in images without a shell.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"

	httphandler "github.com/victorcollective/showcase/internal/adapter/driving/http"
)

const (
	defaultAddr  = "127.0.0.1:8080"
	checkTimeout = 2 * time.Second
)

func main() {
	if err := check(normalizeAddr(os.Getenv("SHOWCASE_LISTEN_ADDR"))); err != nil {
		fmt.Fprintln(os.Stderr, "healthcheck:", err)
		os.Exit(1)
	}
}

func check(addr string) error {
	client := &http.Client{Timeout: checkTimeout}

	ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
	defer cancel()

	url := "http://" + addr + httphandler.HealthPath
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s returned %d", url, resp.StatusCode)
	}

	var health httphandler.HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return fmt.Errorf("decode health response: %w", err)
	}
	if health.Status != "ok" {
		return fmt.Errorf("server reports status %q", health.Status)
	}

	return nil
}

// normalizeAddr ensures the healthcheck connects to loopback rather than the
// bind-all address. Containers bind 0.0.0.0 but the healthcheck runs
// inside the same container, so loopback is reachable and more correct.
func normalizeAddr(raw string) string {
	if raw == "" {
		return defaultAddr
	}

	host, port, err := net.SplitHostPort(raw)
	if err != nil {
		return defaultAddr
	}

	if host == "" || host == "0.0.0.0" {
		host = "127.0.0.1"
	}

	return net.JoinHostPort(host, port)
}
