package model

// DefaultOrder is the display order given to projects no override ranks.
const DefaultOrder = 99

// Project is the display-ready record produced by the aggregation pipeline.
// It is rebuilt on every run and never persisted.
type Project struct {
	ID           string
	Title        string
	Description  string
	Category     Category
	Image        string
	SourceURL    string
	LiveURL      string
	Technologies []string
	Featured     bool
	Order        int
}

// ProjectSource records where a ranked list came from.
type ProjectSource string

const (
	SourceLive     ProjectSource = "live"
	SourceFallback ProjectSource = "fallback"
)

// ProjectList is the ranked, capped output of one pipeline run.
type ProjectList struct {
	Projects []Project
	Source   ProjectSource
}
