// Package viewmodel defines presentation-ready structs for templ components.
// View models decouple template rendering from domain model types.
package viewmodel

// ProjectCardViewModel holds presentation-ready data for a project card.
type ProjectCardViewModel struct {
	ID           string
	Title        string
	Description  string
	Category     string
	Image        string
	SourceURL    string
	LiveURL      string
	Technologies []string
	Featured     bool
}

// PostCardViewModel holds presentation-ready data for a blog post teaser.
type PostCardViewModel struct {
	Slug        string
	Title       string
	Date        string // "January 2, 2006"
	DateISO     string
	Description string
	CoverImage  string
	Tags        []TagViewModel
	Path        string
}

// TagViewModel is a tag link.
type TagViewModel struct {
	Name string
	Path string
}

// PostDetailViewModel holds a rendered blog post.
type PostDetailViewModel struct {
	PostCardViewModel
	BodyHTML string // sanitized
}

// BlogIndexViewModel holds the blog listing, optionally filtered by tag.
type BlogIndexViewModel struct {
	Tag   string
	Posts []PostCardViewModel
	Tags  []TagViewModel
}

// FormViewModel carries the CSRF token and the flash state of the contact
// and newsletter forms.
type FormViewModel struct {
	CSRFToken string
	Flash     string
	Error     string
}

// HomeViewModel holds everything rendered on the landing page.
type HomeViewModel struct {
	Projects    []ProjectCardViewModel
	FromCache   bool // true when the projects came from the static fallback
	LatestPosts []PostCardViewModel
	Form        FormViewModel
}

// PolicySummaryViewModel is one entry of the privacy policy index.
type PolicySummaryViewModel struct {
	AppName     string
	LastUpdated string
	Path        string
}

// PolicyViewModel holds a full privacy policy.
type PolicyViewModel struct {
	AppName            string
	AppStoreURL        string
	PlayStoreURL       string
	LastUpdated        string
	EffectiveDate      string
	ContactEmail       string
	Overview           string
	DataCollected      []DataCollectedViewModel
	DataUsage          []string
	ThirdPartyServices []ThirdPartyServiceViewModel
	DataRetention      string
	UserRights         []string
	ChildrenPrivacy    string
	Changes            string
}

// DataCollectedViewModel is one row of a policy's collected-data table.
type DataCollectedViewModel struct {
	Type        string
	Description string
	Purpose     string
}

// ThirdPartyServiceViewModel is one third-party service of a policy.
type ThirdPartyServiceViewModel struct {
	Name       string
	Purpose    string
	PrivacyURL string
}
