package application

import (
	"fmt"
	"slices"
	"strings"

	"github.com/victorcollective/showcase/internal/domain/model"
	"github.com/victorcollective/showcase/internal/domain/port/driven"
)

// PrivacyService serves the bundled per-app privacy policies.
type PrivacyService struct {
	policies []model.PrivacyPolicy
}

// NewPrivacyService snapshots source's policies sorted by app name.
func NewPrivacyService(source driven.PolicySource) *PrivacyService {
	policies := slices.Clone(source.Policies())
	slices.SortFunc(policies, func(a, b model.PrivacyPolicy) int {
		return strings.Compare(strings.ToLower(a.AppName), strings.ToLower(b.AppName))
	})
	return &PrivacyService{policies: policies}
}

// ListPolicies returns every policy sorted by app name.
func (s *PrivacyService) ListPolicies() []model.PrivacyPolicy {
	return slices.Clone(s.policies)
}

// GetPolicy returns the policy with the given slug or driven.ErrPolicyNotFound.
func (s *PrivacyService) GetPolicy(slug string) (model.PrivacyPolicy, error) {
	for _, p := range s.policies {
		if p.Slug == slug {
			return p, nil
		}
	}
	return model.PrivacyPolicy{}, fmt.Errorf("get privacy policy %q: %w", slug, driven.ErrPolicyNotFound)
}
