package application_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/victorcollective/showcase/internal/application"
	"github.com/victorcollective/showcase/internal/domain/model"
)

func boolPtr(b bool) *bool { return &b }
func intPtr(i int) *int    { return &i }

// stubImage makes image assignment deterministic.
func stubImage(c model.Category) string { return "img:" + string(c) }

func TestFormatTitle(t *testing.T) {
	tests := map[string]string{
		"foo":           "Foo",
		"my-cool_app":   "My Cool App",
		"ai-showcase":   "Ai Showcase",
		"already Title": "Already Title",
		"double--dash":  "Double Dash",
		"my--cool__app": "My Cool App",
		"-leading_":     "Leading",
		"\xffbad":       "\xffbad",
		"ok-\xffbad":    "Ok \xffbad",
		"élan-vital":    "Élan Vital",
		"":              "",
	}
	for in, want := range tests {
		assert.Equal(t, want, application.FormatTitle(in), "input %q", in)
	}
}

func TestMergeRepository_Defaults(t *testing.T) {
	m := application.NewMerger(model.OverrideTable{}, model.OverrideTable{}, "owner", stubImage)

	repo := model.Repository{
		Name:        "foo",
		Description: "",
		HTMLURL:     "https://github.com/owner/foo",
		Topics:      []string{"cli"},
		Language:    "Python",
		Category:    application.Classify([]string{"cli"}, "Python"),
	}

	p := m.MergeRepository(repo)

	assert.Equal(t, "foo", p.ID)
	assert.Equal(t, "Foo", p.Title)
	assert.Equal(t, "", p.Description)
	assert.Equal(t, model.CategoryPython, p.Category)
	assert.Equal(t, "https://github.com/owner/foo", p.SourceURL)
	assert.Equal(t, "", p.LiveURL)
	assert.Equal(t, []string{"cli"}, p.Technologies)
	assert.False(t, p.Featured)
	assert.Equal(t, model.DefaultOrder, p.Order)
	assert.Equal(t, "img:Python", p.Image)
}

func TestMergeRepository_ManualBeatsConfigBeatsRepo(t *testing.T) {
	config := model.NewOverrideTable([]model.Override{{
		ID:          "metacraft",
		Title:       "Config Title",
		Description: "config description",
		Category:    model.CategoryReact,
		LiveURL:     "https://config.example",
		Image:       "/config.jpg",
		Featured:    boolPtr(true),
		Order:       intPtr(1),
	}})
	manual := model.NewOverrideTable([]model.Override{{
		ID:           "metacraft",
		Title:        "Manual Title",
		Category:     model.CategoryAIML,
		Technologies: []string{"Go"},
		Order:        intPtr(5),
	}})
	m := application.NewMerger(config, manual, "owner", stubImage)

	p := m.MergeRepository(model.Repository{
		Name:        "metacraft",
		Description: "repo description",
		HTMLURL:     "https://github.com/owner/metacraft",
		Homepage:    "https://repo.example",
		Topics:      []string{"react"},
		Category:    model.CategoryFullStack,
	})

	assert.Equal(t, "Manual Title", p.Title)
	assert.Equal(t, "config description", p.Description, "manual leaves description unset")
	assert.Equal(t, model.CategoryAIML, p.Category)
	assert.Equal(t, "https://config.example", p.LiveURL)
	assert.Equal(t, "https://github.com/owner/metacraft", p.SourceURL)
	assert.Equal(t, []string{"Go"}, p.Technologies)
	assert.Equal(t, "/config.jpg", p.Image)
	assert.True(t, p.Featured, "manual leaves featured unset")
	assert.Equal(t, 5, p.Order)
}

func TestMergeRepository_ExplicitFalseFeaturedOverrides(t *testing.T) {
	config := model.NewOverrideTable([]model.Override{{ID: "x", Featured: boolPtr(true)}})
	manual := model.NewOverrideTable([]model.Override{{ID: "x", Featured: boolPtr(false), Order: intPtr(0)}})
	m := application.NewMerger(config, manual, "owner", stubImage)

	p := m.MergeRepository(model.Repository{Name: "x"})

	assert.False(t, p.Featured)
	assert.Equal(t, 0, p.Order)
}

func TestMergeRepository_ImageFollowsResolvedCategory(t *testing.T) {
	manual := model.NewOverrideTable([]model.Override{{ID: "x", Category: model.CategoryReact}})
	m := application.NewMerger(model.OverrideTable{}, manual, "owner", stubImage)

	p := m.MergeRepository(model.Repository{Name: "x", Category: model.CategoryPython})

	assert.Equal(t, "img:React", p.Image)
}

func TestMergeFetched_AddsOverrideOnlyProjects(t *testing.T) {
	config := model.NewOverrideTable([]model.Override{
		{ID: "fetched", Title: "Fetched"},
		{ID: "config-only", Title: "Config Only"},
	})
	manual := model.NewOverrideTable([]model.Override{
		{ID: "bar", Featured: boolPtr(true), Order: intPtr(1)},
		{ID: "config-only", SourceURL: "https://gitlab.com/me/config-only"},
	})
	m := application.NewMerger(config, manual, "octo", stubImage)

	got := m.MergeFetched([]model.Repository{{Name: "fetched", HTMLURL: "https://github.com/octo/fetched"}})

	require.Equal(t, []string{"fetched", "config-only", "bar"}, ids(got))

	assert.Equal(t, "Config Only", got[1].Title)
	assert.Equal(t, "https://gitlab.com/me/config-only", got[1].SourceURL)

	bar := got[2]
	assert.Equal(t, "Bar", bar.Title)
	assert.Equal(t, "https://github.com/octo/bar", bar.SourceURL)
	assert.Equal(t, model.CategoryFullStack, bar.Category)
	assert.True(t, bar.Featured)
	assert.Equal(t, 1, bar.Order)
	assert.Equal(t, []string{}, bar.Technologies)
}

func TestStaticProjects_ConfigThenManual(t *testing.T) {
	config := model.NewOverrideTable([]model.Override{{ID: "a"}, {ID: "b"}})
	manual := model.NewOverrideTable([]model.Override{{ID: "c"}, {ID: "a", Title: "Manual A"}})
	m := application.NewMerger(config, manual, "octo", stubImage)

	got := m.StaticProjects()

	require.Equal(t, []string{"a", "b", "c"}, ids(got))
	assert.Equal(t, "Manual A", got[0].Title)
	for _, p := range got {
		assert.Equal(t, "https://github.com/octo/"+p.ID, p.SourceURL)
	}
}
