package model

// Repository is the read-only view of one hosted repository as returned by
// the source-control host, enriched with its topics and derived category.
type Repository struct {
	Name        string
	Description string // Empty when the host returns null.
	HTMLURL     string
	Topics      []string
	Language    string // Empty when the host returns null.
	Homepage    string // Empty when the host returns null.
	Category    Category
}
