package application_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/victorcollective/showcase/internal/application"
	"github.com/victorcollective/showcase/internal/domain/model"
	"github.com/victorcollective/showcase/internal/domain/port/driven"
)

type staticPosts []model.Post

func (s staticPosts) Posts() []model.Post { return s }

func post(slug, date string, tags ...string) model.Post {
	d, _ := time.Parse("2006-01-02", date)
	return model.Post{
		PostMeta: model.PostMeta{Slug: slug, Title: slug, Date: d, Tags: tags},
		Content:  "# " + slug,
	}
}

func newBlog() *application.BlogService {
	return application.NewBlogService(staticPosts{
		post("older", "2023-01-10", "Go"),
		post("newest", "2024-03-01", "AI", "Go"),
		post("middle", "2023-12-20", "React"),
	})
}

func TestBlogService_ListPostsNewestFirst(t *testing.T) {
	metas := newBlog().ListPosts()

	require.Len(t, metas, 3)
	assert.Equal(t, "newest", metas[0].Slug)
	assert.Equal(t, "middle", metas[1].Slug)
	assert.Equal(t, "older", metas[2].Slug)
}

func TestBlogService_LatestPosts(t *testing.T) {
	metas := newBlog().LatestPosts(2)

	require.Len(t, metas, 2)
	assert.Equal(t, "newest", metas[0].Slug)
}

func TestBlogService_GetPost(t *testing.T) {
	blog := newBlog()

	p, err := blog.GetPost("middle")
	require.NoError(t, err)
	assert.Equal(t, "# middle", p.Content)

	_, err = blog.GetPost("missing")
	assert.True(t, errors.Is(err, driven.ErrPostNotFound))
}

func TestBlogService_PostsByTag(t *testing.T) {
	blog := newBlog()

	got := blog.PostsByTag("Go")
	require.Len(t, got, 2)
	assert.Equal(t, "newest", got[0].Slug)
	assert.Equal(t, "older", got[1].Slug)

	assert.Empty(t, blog.PostsByTag("go"), "tags match exactly")
}

func TestBlogService_Tags(t *testing.T) {
	assert.Equal(t, []string{"AI", "Go", "React"}, newBlog().Tags())
}
