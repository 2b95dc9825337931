package application

import (
	"fmt"
	"slices"
	"strings"

	"github.com/victorcollective/showcase/internal/domain/model"
	"github.com/victorcollective/showcase/internal/domain/port/driven"
)

// BlogService answers blog listing and lookup queries over the bundled posts.
type BlogService struct {
	posts []model.Post // Newest first.
}

// NewBlogService snapshots source's posts ordered newest first. Posts with
// equal dates are ordered by slug.
func NewBlogService(source driven.PostSource) *BlogService {
	posts := slices.Clone(source.Posts())
	slices.SortStableFunc(posts, func(a, b model.Post) int {
		if c := b.Date.Compare(a.Date); c != 0 {
			return c
		}
		return strings.Compare(a.Slug, b.Slug)
	})
	return &BlogService{posts: posts}
}

// ListPosts returns metadata for every post, newest first.
func (s *BlogService) ListPosts() []model.PostMeta {
	metas := make([]model.PostMeta, 0, len(s.posts))
	for _, p := range s.posts {
		metas = append(metas, p.PostMeta)
	}
	return metas
}

// LatestPosts returns at most n posts, newest first.
func (s *BlogService) LatestPosts(n int) []model.PostMeta {
	metas := s.ListPosts()
	if n >= 0 && len(metas) > n {
		metas = metas[:n]
	}
	return metas
}

// GetPost returns the post with the given slug or driven.ErrPostNotFound.
func (s *BlogService) GetPost(slug string) (model.Post, error) {
	for _, p := range s.posts {
		if p.Slug == slug {
			return p, nil
		}
	}
	return model.Post{}, fmt.Errorf("get post %q: %w", slug, driven.ErrPostNotFound)
}

// PostsByTag returns posts carrying tag exactly, newest first.
func (s *BlogService) PostsByTag(tag string) []model.PostMeta {
	metas := []model.PostMeta{}
	for _, p := range s.posts {
		if p.HasTag(tag) {
			metas = append(metas, p.PostMeta)
		}
	}
	return metas
}

// Tags returns the sorted set of tags used by any post.
func (s *BlogService) Tags() []string {
	set := make(map[string]bool)
	for _, p := range s.posts {
		for _, t := range p.Tags {
			set[t] = true
		}
	}
	tags := make([]string, 0, len(set))
	for t := range set {
		tags = append(tags, t)
	}
	slices.Sort(tags)
	return tags
}
