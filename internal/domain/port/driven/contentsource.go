package driven

import (
	"errors"

	"github.com/victorcollective/showcase/internal/domain/model"
)

// Sentinel errors returned when static content is looked up by slug.
var (
	// ErrPostNotFound indicates no blog post has the requested slug.
	ErrPostNotFound = errors.New("post not found")

	// ErrPolicyNotFound indicates no privacy policy has the requested slug.
	ErrPolicyNotFound = errors.New("privacy policy not found")
)

// PostSource provides the blog posts bundled with the application.
// Order is unspecified; callers sort.
type PostSource interface {
	Posts() []model.Post
}

// PolicySource provides the bundled privacy policies.
type PolicySource interface {
	Policies() []model.PrivacyPolicy
}
