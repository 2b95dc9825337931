package httphandler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/victorcollective/showcase/internal/domain/model"
)

// writeJSON marshals v to JSON and writes it to the response with the given
// status code. If marshaling fails, a 500 error is written instead.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// writeError writes a JSON error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// errorResponse is the standard error response body.
type errorResponse struct {
	Error string `json:"error"`
}

// ProjectListResponse is the JSON representation of the ranked project list.
type ProjectListResponse struct {
	Source   string            `json:"source"`
	Projects []ProjectResponse `json:"projects"`
}

// ProjectResponse is the JSON representation of a display-ready project.
type ProjectResponse struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Category     string   `json:"category"`
	Image        string   `json:"image"`
	SourceURL    string   `json:"github_url"`
	LiveURL      string   `json:"live_url,omitempty"`
	Technologies []string `json:"technologies"`
	Featured     bool     `json:"featured"`
	Order        int      `json:"order"`
}

// PostMetaResponse is the JSON representation of a blog post listing entry.
type PostMetaResponse struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Date        string   `json:"date"`
	Tags        []string `json:"tags"`
	Description string   `json:"description"`
	CoverImage  string   `json:"cover_image"`
}

// PostResponse is a blog post with its markdown body.
type PostResponse struct {
	PostMetaResponse
	Content string `json:"content"`
}

// PolicySummaryResponse lists a privacy policy without its sections.
type PolicySummaryResponse struct {
	AppName     string `json:"app_name"`
	Slug        string `json:"slug"`
	LastUpdated string `json:"last_updated"`
}

// PolicyResponse is the full JSON representation of a privacy policy.
type PolicyResponse struct {
	AppName            string                      `json:"app_name"`
	Slug               string                      `json:"slug"`
	AppStoreURL        string                      `json:"app_store_url,omitempty"`
	PlayStoreURL       string                      `json:"play_store_url,omitempty"`
	LastUpdated        string                      `json:"last_updated"`
	EffectiveDate      string                      `json:"effective_date"`
	ContactEmail       string                      `json:"contact_email"`
	Overview           string                      `json:"overview"`
	DataCollected      []DataCollectedResponse     `json:"data_collected"`
	DataUsage          []string                    `json:"data_usage"`
	ThirdPartyServices []ThirdPartyServiceResponse `json:"third_party_services"`
	DataRetention      string                      `json:"data_retention"`
	UserRights         []string                    `json:"user_rights"`
	ChildrenPrivacy    string                      `json:"children_privacy"`
	Changes            string                      `json:"changes"`
}

// DataCollectedResponse describes one kind of collected data.
type DataCollectedResponse struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Purpose     string `json:"purpose"`
}

// ThirdPartyServiceResponse describes one third-party service.
type ThirdPartyServiceResponse struct {
	Name       string `json:"name"`
	Purpose    string `json:"purpose"`
	PrivacyURL string `json:"privacy_url,omitempty"`
}

// ContactRequest is the JSON body for the contact endpoint.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ContactResponse acknowledges a stored contact message.
type ContactResponse struct {
	ID        int64  `json:"id"`
	CreatedAt string `json:"created_at"`
}

// SubscribeRequest is the JSON body for the newsletter endpoint.
type SubscribeRequest struct {
	Email string `json:"email"`
}

// SubscribeResponse reports whether the address was newly subscribed.
type SubscribeResponse struct {
	Subscribed bool `json:"subscribed"`
	Created    bool `json:"created"`
}

// HealthResponse is the JSON representation of the health check endpoint.
type HealthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

// ToProjectListResponse converts a ranked ProjectList to its JSON representation.
func ToProjectListResponse(list model.ProjectList) ProjectListResponse {
	projects := make([]ProjectResponse, 0, len(list.Projects))
	for _, p := range list.Projects {
		projects = append(projects, toProjectResponse(p))
	}
	return ProjectListResponse{
		Source:   string(list.Source),
		Projects: projects,
	}
}

// toProjectResponse converts a domain Project to its JSON representation.
func toProjectResponse(p model.Project) ProjectResponse {
	tech := p.Technologies
	if tech == nil {
		tech = []string{}
	}
	return ProjectResponse{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		Category:     string(p.Category),
		Image:        p.Image,
		SourceURL:    p.SourceURL,
		LiveURL:      p.LiveURL,
		Technologies: tech,
		Featured:     p.Featured,
		Order:        p.Order,
	}
}

// toPostMetaResponse converts domain post metadata to its JSON representation.
func toPostMetaResponse(m model.PostMeta) PostMetaResponse {
	tags := m.Tags
	if tags == nil {
		tags = []string{}
	}
	return PostMetaResponse{
		Slug:        m.Slug,
		Title:       m.Title,
		Date:        m.Date.UTC().Format(time.RFC3339),
		Tags:        tags,
		Description: m.Description,
		CoverImage:  m.CoverImage,
	}
}

func toPostMetaResponses(metas []model.PostMeta) []PostMetaResponse {
	resp := make([]PostMetaResponse, 0, len(metas))
	for _, m := range metas {
		resp = append(resp, toPostMetaResponse(m))
	}
	return resp
}

// toPolicyResponse converts a domain PrivacyPolicy to its JSON representation.
func toPolicyResponse(p model.PrivacyPolicy) PolicyResponse {
	collected := make([]DataCollectedResponse, 0, len(p.DataCollected))
	for _, d := range p.DataCollected {
		collected = append(collected, DataCollectedResponse{
			Type:        d.Type,
			Description: d.Description,
			Purpose:     d.Purpose,
		})
	}

	services := make([]ThirdPartyServiceResponse, 0, len(p.ThirdPartyServices))
	for _, s := range p.ThirdPartyServices {
		services = append(services, ThirdPartyServiceResponse{
			Name:       s.Name,
			Purpose:    s.Purpose,
			PrivacyURL: s.PrivacyURL,
		})
	}

	return PolicyResponse{
		AppName:            p.AppName,
		Slug:               p.Slug,
		AppStoreURL:        p.AppStoreURL,
		PlayStoreURL:       p.PlayStoreURL,
		LastUpdated:        p.LastUpdated,
		EffectiveDate:      p.EffectiveDate,
		ContactEmail:       p.ContactEmail,
		Overview:           p.Overview,
		DataCollected:      collected,
		DataUsage:          nonNil(p.DataUsage),
		ThirdPartyServices: services,
		DataRetention:      p.DataRetention,
		UserRights:         nonNil(p.UserRights),
		ChildrenPrivacy:    p.ChildrenPrivacy,
		Changes:            p.Changes,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
