// Package content loads the blog posts bundled with the application.
package content

import (
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/victorcollective/showcase/internal/domain/model"
	"github.com/victorcollective/showcase/internal/domain/port/driven"
)

// Placeholder metadata for posts whose front matter cannot be parsed.
const (
	brokenTitle       = "Error loading post"
	brokenDescription = "This post could not be loaded"
)

//go:embed posts/*.md
var postsFS embed.FS

// EmbeddedPosts returns the posts compiled into the binary.
func EmbeddedPosts() fs.FS {
	sub, err := fs.Sub(postsFS, "posts")
	if err != nil {
		panic(err)
	}
	return sub
}

// Compile-time interface satisfaction check.
var _ driven.PostSource = (*Blog)(nil)

// Blog holds parsed posts. It implements driven.PostSource.
type Blog struct {
	posts []model.Post
}

// LoadBlog parses every *.md file at the root of fsys. The slug is the file
// name without extension. A post with unreadable front matter is kept with
// placeholder metadata so one bad file never hides the rest.
func LoadBlog(fsys fs.FS) (*Blog, error) {
	return loadBlog(fsys, time.Now())
}

func loadBlog(fsys fs.FS, now time.Time) (*Blog, error) {
	names, err := fs.Glob(fsys, "*.md")
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	posts := make([]model.Post, 0, len(names))
	for _, name := range names {
		slug := strings.TrimSuffix(path.Base(name), ".md")

		raw, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read post %s: %w", name, err)
		}

		post, err := parsePost(slug, raw, now)
		if err != nil {
			slog.Error("blog post unreadable", "slug", slug, "error", err)
			post = brokenPost(slug, now)
		}
		posts = append(posts, post)
	}

	return &Blog{posts: posts}, nil
}

// Posts returns the loaded posts in file-name order.
func (b *Blog) Posts() []model.Post {
	return b.posts
}

// parsePost builds a post from its raw file. Missing fields default to empty
// values and a missing date to now.
func parsePost(slug string, raw []byte, now time.Time) (model.Post, error) {
	fm, body, err := splitFrontMatter(raw)
	if err != nil {
		return model.Post{}, err
	}

	date := now
	if fm.Date != "" {
		date, err = parseDate(fm.Date)
		if err != nil {
			return model.Post{}, err
		}
	}

	tags := fm.Tags
	if tags == nil {
		tags = []string{}
	}

	return model.Post{
		PostMeta: model.PostMeta{
			Slug:        slug,
			Title:       fm.Title,
			Date:        date,
			Tags:        tags,
			Description: fm.Description,
			CoverImage:  fm.CoverImage,
		},
		Content: body,
	}, nil
}

func brokenPost(slug string, now time.Time) model.Post {
	return model.Post{
		PostMeta: model.PostMeta{
			Slug:        slug,
			Title:       brokenTitle,
			Date:        now,
			Tags:        []string{},
			Description: brokenDescription,
		},
	}
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
