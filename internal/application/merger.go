package application

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/victorcollective/showcase/internal/domain/model"
)

// sourceURLTemplate is used for override-only projects with no explicit
// source URL. Arguments are the owner and the project ID.
const sourceURLTemplate = "https://github.com/%s/%s"

// Merger combines fetched repositories with the config and manual override
// tables. For every field the manual table wins over the config table, which
// wins over the repository-derived default.
type Merger struct {
	config model.OverrideTable
	manual model.OverrideTable
	owner  string
	pick   ImagePicker
}

// NewMerger creates a Merger. owner is used to synthesize source URLs for
// projects that only exist in the override tables. A nil pick uses RandomImage.
func NewMerger(config, manual model.OverrideTable, owner string, pick ImagePicker) *Merger {
	if pick == nil {
		pick = RandomImage
	}
	return &Merger{
		config: config,
		manual: manual,
		owner:  owner,
		pick:   pick,
	}
}

// MergeRepository builds the project for one fetched repository.
func (m *Merger) MergeRepository(repo model.Repository) model.Project {
	defaults := model.Project{
		ID:           repo.Name,
		Title:        FormatTitle(repo.Name),
		Description:  repo.Description,
		Category:     repo.Category,
		SourceURL:    repo.HTMLURL,
		LiveURL:      repo.Homepage,
		Technologies: repo.Topics,
		Order:        model.DefaultOrder,
	}
	return m.resolve(defaults)
}

// MergeFetched builds projects for every fetched repository followed by the
// override-only projects, in that order.
func (m *Merger) MergeFetched(repos []model.Repository) []model.Project {
	fetched := make(map[string]bool, len(repos))
	projects := make([]model.Project, 0, len(repos)+m.config.Len()+m.manual.Len())

	for _, repo := range repos {
		fetched[repo.Name] = true
		projects = append(projects, m.MergeRepository(repo))
	}

	for _, id := range m.overrideIDs() {
		if fetched[id] {
			continue
		}
		projects = append(projects, m.mergeOverrideOnly(id))
	}

	return projects
}

// StaticProjects builds projects purely from the override tables: config
// entries first, then manual entries not already in the config table.
func (m *Merger) StaticProjects() []model.Project {
	ids := m.overrideIDs()
	projects := make([]model.Project, 0, len(ids))
	for _, id := range ids {
		projects = append(projects, m.mergeOverrideOnly(id))
	}
	return projects
}

// overrideIDs returns the union of config and manual IDs, config order first.
func (m *Merger) overrideIDs() []string {
	seen := make(map[string]bool, m.config.Len()+m.manual.Len())
	var ids []string
	for _, id := range append(m.config.IDs(), m.manual.IDs()...) {
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}

func (m *Merger) mergeOverrideOnly(id string) model.Project {
	defaults := model.Project{
		ID:           id,
		Title:        FormatTitle(id),
		Category:     model.CategoryFullStack,
		SourceURL:    sourceURL(m.owner, id),
		Technologies: []string{},
		Order:        model.DefaultOrder,
	}
	return m.resolve(defaults)
}

// resolve layers the config override, then the manual override, over p and
// assigns an image for the resolved category when no override supplies one.
func (m *Merger) resolve(p model.Project) model.Project {
	if o, ok := m.config.Lookup(p.ID); ok {
		p = apply(p, o)
	}
	if o, ok := m.manual.Lookup(p.ID); ok {
		p = apply(p, o)
	}
	if p.Image == "" {
		p.Image = m.pick(p.Category)
	}
	if p.Technologies == nil {
		p.Technologies = []string{}
	}
	return p
}

// apply overwrites the fields of p that o sets.
func apply(p model.Project, o model.Override) model.Project {
	if o.Title != "" {
		p.Title = o.Title
	}
	if o.Description != "" {
		p.Description = o.Description
	}
	if o.Category != "" {
		p.Category = o.Category
	}
	if o.Image != "" {
		p.Image = o.Image
	}
	if o.LiveURL != "" {
		p.LiveURL = o.LiveURL
	}
	if o.SourceURL != "" {
		p.SourceURL = o.SourceURL
	}
	if len(o.Technologies) > 0 {
		p.Technologies = o.Technologies
	}
	if o.Featured != nil {
		p.Featured = *o.Featured
	}
	if o.Order != nil {
		p.Order = *o.Order
	}
	return p
}

// FormatTitle turns a repository identifier into a display title by
// splitting on '-' and '_' and capitalising each word: "my-cool_app"
// becomes "My Cool App". Runs of separators collapse to a single space, so
// "my--cool__app" also becomes "My Cool App". A word that does not start
// with valid UTF-8 is left as is.
func FormatTitle(id string) string {
	words := strings.FieldsFunc(id, func(r rune) bool {
		return r == '-' || r == '_' || unicode.IsSpace(r)
	})
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		if r == utf8.RuneError && size <= 1 {
			continue
		}
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

func sourceURL(owner, id string) string {
	return fmt.Sprintf(sourceURLTemplate, owner, id)
}
