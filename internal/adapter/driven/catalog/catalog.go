// Package catalog loads the static override tables and privacy policies that
// are compiled into the binary as YAML.
package catalog

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"gopkg.in/yaml.v3"

	"github.com/victorcollective/showcase/internal/domain/model"
	"github.com/victorcollective/showcase/internal/domain/port/driven"
)

// File names looked up in a catalog filesystem.
const (
	ConfigFile  = "projects.yaml"
	ManualFile  = "manual.yaml"
	PrivacyFile = "privacy.yaml"
)

//go:embed data/*.yaml
var dataFS embed.FS

// Embedded returns the catalog files compiled into the binary.
func Embedded() fs.FS {
	sub, err := fs.Sub(dataFS, "data")
	if err != nil {
		// The embed pattern guarantees the directory exists.
		panic(err)
	}
	return sub
}

// Overrides holds the two override tables.
type Overrides struct {
	Config model.OverrideTable
	Manual model.OverrideTable
}

type overrideFile struct {
	Projects []overrideEntry `yaml:"projects"`
}

type overrideEntry struct {
	ID           string   `yaml:"id"`
	Title        string   `yaml:"title"`
	Description  string   `yaml:"description"`
	Category     string   `yaml:"category"`
	Image        string   `yaml:"image"`
	LiveURL      string   `yaml:"live_url"`
	SourceURL    string   `yaml:"source_url"`
	Technologies []string `yaml:"technologies"`
	Featured     *bool    `yaml:"featured"`
	Order        *int     `yaml:"order"`
}

// LoadOverrides reads ConfigFile and ManualFile from fsys.
func LoadOverrides(fsys fs.FS) (Overrides, error) {
	config, err := loadTable(fsys, ConfigFile)
	if err != nil {
		return Overrides{}, err
	}
	manual, err := loadTable(fsys, ManualFile)
	if err != nil {
		return Overrides{}, err
	}
	return Overrides{Config: config, Manual: manual}, nil
}

func loadTable(fsys fs.FS, name string) (model.OverrideTable, error) {
	var doc overrideFile
	if err := decodeFile(fsys, name, &doc); err != nil {
		return model.OverrideTable{}, err
	}

	entries := make([]model.Override, 0, len(doc.Projects))
	for i, e := range doc.Projects {
		if e.ID == "" {
			return model.OverrideTable{}, fmt.Errorf("%s: project %d has no id", name, i)
		}
		category := model.Category(e.Category)
		if category != "" && !category.Valid() {
			return model.OverrideTable{}, fmt.Errorf("%s: project %q has unknown category %q (want one of %q)", name, e.ID, e.Category, model.Categories())
		}
		entries = append(entries, model.Override{
			ID:           e.ID,
			Title:        e.Title,
			Description:  e.Description,
			Category:     category,
			Image:        e.Image,
			LiveURL:      e.LiveURL,
			SourceURL:    e.SourceURL,
			Technologies: e.Technologies,
			Featured:     e.Featured,
			Order:        e.Order,
		})
	}

	return model.NewOverrideTable(entries), nil
}

// Compile-time interface satisfaction check.
var _ driven.PolicySource = (*Policies)(nil)

// Policies is the set of privacy policies read from PrivacyFile.
type Policies struct {
	policies []model.PrivacyPolicy
}

type privacyFile struct {
	Policies []policyEntry `yaml:"policies"`
}

type policyEntry struct {
	AppName       string `yaml:"app_name"`
	Slug          string `yaml:"slug"`
	AppStoreURL   string `yaml:"app_store_url"`
	PlayStoreURL  string `yaml:"play_store_url"`
	LastUpdated   string `yaml:"last_updated"`
	EffectiveDate string `yaml:"effective_date"`
	ContactEmail  string `yaml:"contact_email"`
	Overview      string `yaml:"overview"`
	DataCollected []struct {
		Type        string `yaml:"type"`
		Description string `yaml:"description"`
		Purpose     string `yaml:"purpose"`
	} `yaml:"data_collected"`
	DataUsage          []string `yaml:"data_usage"`
	ThirdPartyServices []struct {
		Name       string `yaml:"name"`
		Purpose    string `yaml:"purpose"`
		PrivacyURL string `yaml:"privacy_url"`
	} `yaml:"third_party_services"`
	DataRetention   string   `yaml:"data_retention"`
	UserRights      []string `yaml:"user_rights"`
	ChildrenPrivacy string   `yaml:"children_privacy"`
	Changes         string   `yaml:"changes"`
}

// LoadPolicies reads PrivacyFile from fsys. Slugs must be present and unique.
func LoadPolicies(fsys fs.FS) (*Policies, error) {
	var doc privacyFile
	if err := decodeFile(fsys, PrivacyFile, &doc); err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(doc.Policies))
	policies := make([]model.PrivacyPolicy, 0, len(doc.Policies))
	for i, e := range doc.Policies {
		if e.Slug == "" {
			return nil, fmt.Errorf("%s: policy %d has no slug", PrivacyFile, i)
		}
		if seen[e.Slug] {
			return nil, fmt.Errorf("%s: duplicate policy slug %q", PrivacyFile, e.Slug)
		}
		seen[e.Slug] = true

		p := model.PrivacyPolicy{
			AppName:         e.AppName,
			Slug:            e.Slug,
			AppStoreURL:     e.AppStoreURL,
			PlayStoreURL:    e.PlayStoreURL,
			LastUpdated:     e.LastUpdated,
			EffectiveDate:   e.EffectiveDate,
			ContactEmail:    e.ContactEmail,
			Overview:        e.Overview,
			DataUsage:       e.DataUsage,
			DataRetention:   e.DataRetention,
			UserRights:      e.UserRights,
			ChildrenPrivacy: e.ChildrenPrivacy,
			Changes:         e.Changes,
		}
		for _, d := range e.DataCollected {
			p.DataCollected = append(p.DataCollected, model.DataCollected{
				Type:        d.Type,
				Description: d.Description,
				Purpose:     d.Purpose,
			})
		}
		for _, s := range e.ThirdPartyServices {
			p.ThirdPartyServices = append(p.ThirdPartyServices, model.ThirdPartyService{
				Name:       s.Name,
				Purpose:    s.Purpose,
				PrivacyURL: s.PrivacyURL,
			})
		}
		policies = append(policies, p)
	}

	return &Policies{policies: policies}, nil
}

// Policies returns the loaded policies in file order.
func (p *Policies) Policies() []model.PrivacyPolicy {
	return p.policies
}

// decodeFile strictly decodes a YAML file; unknown keys are errors. An empty
// file decodes to the zero value.
func decodeFile(fsys fs.FS, name string, out any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}
