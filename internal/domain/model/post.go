package model

import "time"

// PostMeta is the front-matter view of a blog post used for listings.
type PostMeta struct {
	Slug        string
	Title       string
	Date        time.Time
	Tags        []string
	Description string
	CoverImage  string
}

// HasTag reports whether the post carries tag exactly.
func (m PostMeta) HasTag(tag string) bool {
	for _, t := range m.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Post is a blog post with its markdown body.
type Post struct {
	PostMeta
	Content string
}
