package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	_ "golang.org/x/crypto/x509roots/fallback" // Embed CA certs for scratch container

	"github.com/victorcollective/showcase/internal/adapter/driven/catalog"
	"github.com/victorcollective/showcase/internal/adapter/driven/content"
	githubadapter "github.com/victorcollective/showcase/internal/adapter/driven/github"
	"github.com/victorcollective/showcase/internal/adapter/driven/metrics"
	sqliteadapter "github.com/victorcollective/showcase/internal/adapter/driven/sqlite"
	httphandler "github.com/victorcollective/showcase/internal/adapter/driving/http"
	webhandler "github.com/victorcollective/showcase/internal/adapter/driving/web"
	"github.com/victorcollective/showcase/internal/application"
	"github.com/victorcollective/showcase/internal/config"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load configuration (fail fast on missing required env vars).
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	slog.Info("config loaded",
		"listen_addr", cfg.ListenAddr,
		"db_path", cfg.DBPath,
		"github_username", cfg.GitHubUsername,
		"github_token", cfg.HasGitHubToken(),
		"project_limit", cfg.ProjectLimit,
	)

	// 2. Setup signal-based context (SIGINT, SIGTERM).
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Open database (dual reader/writer with WAL mode).
	db, err := sqliteadapter.NewDB(ctx, cfg.DBPath)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()
	slog.Info("database opened", "path", db.Path())

	// 4. Run migrations on writer connection.
	schemaVersion, err := sqliteadapter.RunMigrations(db.Writer)
	if err != nil {
		return err
	}
	slog.Info("migrations complete", "schema_version", schemaVersion)

	// 5. Load static catalogs: overrides, privacy policies, blog posts.
	overridesFS := catalog.Embedded()
	if cfg.OverridesDir != "" {
		overridesFS = os.DirFS(cfg.OverridesDir)
	}
	overrides, err := catalog.LoadOverrides(overridesFS)
	if err != nil {
		return err
	}
	policies, err := catalog.LoadPolicies(catalog.Embedded())
	if err != nil {
		return err
	}
	blog, err := content.LoadBlog(content.EmbeddedPosts())
	if err != nil {
		return err
	}
	slog.Info("catalogs loaded",
		"config_overrides", overrides.Config.Len(),
		"manual_overrides", overrides.Manual.Len(),
		"policies", len(policies.Policies()),
		"posts", len(blog.Posts()),
	)

	// 6. Wire adapters.
	ghClient := githubadapter.NewClient(cfg.GitHubToken)
	contactStore := sqliteadapter.NewContactRepo(db)
	subscriberStore := sqliteadapter.NewSubscriberRepo(db)

	recorder, err := metrics.NewRecorder(prometheus.DefaultRegisterer)
	if err != nil {
		return err
	}

	// 7. Create application services.
	fetcher := application.NewRepositoryFetcher(ghClient, recorder, cfg.TopicConcurrency)
	merger := application.NewMerger(overrides.Config, overrides.Manual, cfg.GitHubUsername, application.RandomImage)
	projectSvc := application.NewProjectService(fetcher, merger, recorder, cfg.GitHubUsername, application.ProjectServiceOptions{
		Limit:   cfg.ProjectLimit,
		Timeout: cfg.FetchTimeout,
	})
	blogSvc := application.NewBlogService(blog)
	privacySvc := application.NewPrivacyService(policies)
	inboxSvc := application.NewInboxService(contactStore, subscriberStore)

	// 7.5. Create HTTP handler and register API routes.
	apiHandler := httphandler.NewHandler(projectSvc, blogSvc, privacySvc, inboxSvc, slog.Default())
	mux := http.NewServeMux()
	httphandler.RegisterAPIRoutes(mux, apiHandler)
	mux.Handle("GET /metrics", promhttp.Handler())

	// 7.6. Create web handler and register GUI routes.
	webHandler := webhandler.NewHandler(projectSvc, blogSvc, privacySvc, inboxSvc, slog.Default())
	webhandler.RegisterRoutes(mux, webHandler)

	// Apply middleware.
	handler := httphandler.ApplyMiddleware(mux, slog.Default())

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.Info("http server starting", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server error", "error", err)
		}
	}()

	// 8. Log startup complete.
	slog.Info("showcase started",
		"listen_addr", cfg.ListenAddr,
		"owner", cfg.GitHubUsername,
	)

	// 9. Wait for shutdown signal.
	<-ctx.Done()
	slog.Info("shutting down")

	// 10. Graceful shutdown with 10s timeout for in-flight requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("http server shutdown error", "error", err)
	}

	// 11. Log shutdown complete.
	slog.Info("shutdown complete")
	return nil
}
