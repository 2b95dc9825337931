package web

import (
	"net/url"
	"time"

	vm "github.com/victorcollective/showcase/internal/adapter/driving/web/viewmodel"
	"github.com/victorcollective/showcase/internal/domain/model"
)

const displayDateLayout = "January 2, 2006"

// toProjectCardViewModels converts ranked domain Projects to card view models.
func toProjectCardViewModels(projects []model.Project) []vm.ProjectCardViewModel {
	vms := make([]vm.ProjectCardViewModel, 0, len(projects))
	for _, p := range projects {
		tech := p.Technologies
		if tech == nil {
			tech = []string{}
		}
		vms = append(vms, vm.ProjectCardViewModel{
			ID:           p.ID,
			Title:        p.Title,
			Description:  p.Description,
			Category:     string(p.Category),
			Image:        p.Image,
			SourceURL:    p.SourceURL,
			LiveURL:      p.LiveURL,
			Technologies: tech,
			Featured:     p.Featured,
		})
	}
	return vms
}

// toPostCardViewModel converts post metadata to a teaser view model.
func toPostCardViewModel(m model.PostMeta) vm.PostCardViewModel {
	return vm.PostCardViewModel{
		Slug:        m.Slug,
		Title:       m.Title,
		Date:        m.Date.UTC().Format(displayDateLayout),
		DateISO:     m.Date.UTC().Format(time.RFC3339),
		Description: m.Description,
		CoverImage:  m.CoverImage,
		Tags:        toTagViewModels(m.Tags),
		Path:        "/blog/" + url.PathEscape(m.Slug),
	}
}

func toPostCardViewModels(metas []model.PostMeta) []vm.PostCardViewModel {
	vms := make([]vm.PostCardViewModel, 0, len(metas))
	for _, m := range metas {
		vms = append(vms, toPostCardViewModel(m))
	}
	return vms
}

// toPostDetailViewModel renders the post body to sanitized HTML.
func toPostDetailViewModel(p model.Post) vm.PostDetailViewModel {
	return vm.PostDetailViewModel{
		PostCardViewModel: toPostCardViewModel(p.PostMeta),
		BodyHTML:          RenderMarkdown(p.Content),
	}
}

func toTagViewModels(tags []string) []vm.TagViewModel {
	vms := make([]vm.TagViewModel, 0, len(tags))
	for _, t := range tags {
		vms = append(vms, vm.TagViewModel{
			Name: t,
			Path: "/blog/tag/" + url.PathEscape(t),
		})
	}
	return vms
}

func toPolicySummaryViewModels(policies []model.PrivacyPolicy) []vm.PolicySummaryViewModel {
	vms := make([]vm.PolicySummaryViewModel, 0, len(policies))
	for _, p := range policies {
		vms = append(vms, vm.PolicySummaryViewModel{
			AppName:     p.AppName,
			LastUpdated: p.LastUpdated,
			Path:        "/privacy/" + url.PathEscape(p.Slug),
		})
	}
	return vms
}

// toPolicyViewModel converts a domain PrivacyPolicy to its view model.
func toPolicyViewModel(p model.PrivacyPolicy) vm.PolicyViewModel {
	collected := make([]vm.DataCollectedViewModel, 0, len(p.DataCollected))
	for _, d := range p.DataCollected {
		collected = append(collected, vm.DataCollectedViewModel{
			Type:        d.Type,
			Description: d.Description,
			Purpose:     d.Purpose,
		})
	}

	services := make([]vm.ThirdPartyServiceViewModel, 0, len(p.ThirdPartyServices))
	for _, s := range p.ThirdPartyServices {
		services = append(services, vm.ThirdPartyServiceViewModel{
			Name:       s.Name,
			Purpose:    s.Purpose,
			PrivacyURL: s.PrivacyURL,
		})
	}

	return vm.PolicyViewModel{
		AppName:            p.AppName,
		AppStoreURL:        p.AppStoreURL,
		PlayStoreURL:       p.PlayStoreURL,
		LastUpdated:        p.LastUpdated,
		EffectiveDate:      p.EffectiveDate,
		ContactEmail:       p.ContactEmail,
		Overview:           p.Overview,
		DataCollected:      collected,
		DataUsage:          p.DataUsage,
		ThirdPartyServices: services,
		DataRetention:      p.DataRetention,
		UserRights:         p.UserRights,
		ChildrenPrivacy:    p.ChildrenPrivacy,
		Changes:            p.Changes,
	}
}
