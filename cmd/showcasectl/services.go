package main

import (
	"context"
	"os"

	"github.com/victorcollective/showcase/internal/adapter/driven/catalog"
	"github.com/victorcollective/showcase/internal/adapter/driven/content"
	githubadapter "github.com/victorcollective/showcase/internal/adapter/driven/github"
	sqliteadapter "github.com/victorcollective/showcase/internal/adapter/driven/sqlite"
	"github.com/victorcollective/showcase/internal/application"
	"github.com/victorcollective/showcase/internal/config"
)

// services builds the application services a command needs. Construction is
// deferred so commands that do not touch GitHub need no configuration.
type services struct {
	projects func() (*application.ProjectService, error)
	blog     func() (*application.BlogService, error)
	inbox    func(ctx context.Context, dbPath string) (*application.InboxService, func() error, error)
}

func defaultServices() services {
	return services{
		projects: buildProjectService,
		blog:     buildBlogService,
		inbox:    buildInboxService,
	}
}

func buildProjectService() (*application.ProjectService, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	overridesFS := catalog.Embedded()
	if cfg.OverridesDir != "" {
		overridesFS = os.DirFS(cfg.OverridesDir)
	}
	overrides, err := catalog.LoadOverrides(overridesFS)
	if err != nil {
		return nil, err
	}

	fetcher := application.NewRepositoryFetcher(githubadapter.NewClient(cfg.GitHubToken), nil, cfg.TopicConcurrency)
	merger := application.NewMerger(overrides.Config, overrides.Manual, cfg.GitHubUsername, application.RandomImage)
	return application.NewProjectService(fetcher, merger, nil, cfg.GitHubUsername, application.ProjectServiceOptions{
		Limit:   cfg.ProjectLimit,
		Timeout: cfg.FetchTimeout,
	}), nil
}

func buildBlogService() (*application.BlogService, error) {
	blog, err := content.LoadBlog(content.EmbeddedPosts())
	if err != nil {
		return nil, err
	}
	return application.NewBlogService(blog), nil
}

// buildInboxService opens and migrates the inbox database at dbPath. The
// returned func closes the database.
func buildInboxService(ctx context.Context, dbPath string) (*application.InboxService, func() error, error) {
	db, err := sqliteadapter.NewDB(ctx, dbPath)
	if err != nil {
		return nil, nil, err
	}
	if _, err := sqliteadapter.RunMigrations(db.Writer); err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	svc := application.NewInboxService(sqliteadapter.NewContactRepo(db), sqliteadapter.NewSubscriberRepo(db))
	return svc, db.Close, nil
}
