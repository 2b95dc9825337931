// Package httphandler implements the JSON API driving adapter.
package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/victorcollective/showcase/internal/application"
	"github.com/victorcollective/showcase/internal/domain/model"
	"github.com/victorcollective/showcase/internal/domain/port/driven"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 64 << 10

// HealthPath is the liveness endpoint polled by the container healthcheck.
const HealthPath = "/api/v1/health"

// Handler is the HTTP driving adapter that serves the REST API.
type Handler struct {
	projectSvc *application.ProjectService
	blogSvc    *application.BlogService
	privacySvc *application.PrivacyService
	inboxSvc   *application.InboxService
	logger     *slog.Logger
}

// NewHandler creates a Handler with all required dependencies.
func NewHandler(
	projectSvc *application.ProjectService,
	blogSvc *application.BlogService,
	privacySvc *application.PrivacyService,
	inboxSvc *application.InboxService,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		projectSvc: projectSvc,
		blogSvc:    blogSvc,
		privacySvc: privacySvc,
		inboxSvc:   inboxSvc,
		logger:     logger,
	}
}

// RegisterAPIRoutes registers all JSON API routes on the provided mux.
func RegisterAPIRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("GET /api/v1/projects", h.ListProjects)
	mux.HandleFunc("GET /api/v1/posts", h.ListPosts)
	mux.HandleFunc("GET /api/v1/posts/{slug}", h.GetPost)
	mux.HandleFunc("GET /api/v1/tags", h.ListTags)
	mux.HandleFunc("GET /api/v1/tags/{tag}/posts", h.ListPostsByTag)
	mux.HandleFunc("GET /api/v1/privacy", h.ListPolicies)
	mux.HandleFunc("GET /api/v1/privacy/{slug}", h.GetPolicy)
	mux.HandleFunc("POST /api/v1/contact", h.SubmitContact)
	mux.HandleFunc("POST /api/v1/newsletter", h.Subscribe)
	mux.HandleFunc("GET "+HealthPath, h.Health)
}

// ListProjects returns the ranked project list. It always succeeds; the
// source field tells live data from the static fallback.
func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	list := h.projectSvc.RankedProjects(r.Context())
	writeJSON(w, http.StatusOK, ToProjectListResponse(list))
}

// ListPosts returns all blog posts, newest first.
func (h *Handler) ListPosts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toPostMetaResponses(h.blogSvc.ListPosts()))
}

// GetPost returns a single blog post by slug.
func (h *Handler) GetPost(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	post, err := h.blogSvc.GetPost(slug)
	if errors.Is(err, driven.ErrPostNotFound) {
		writeError(w, http.StatusNotFound, "post not found")
		return
	}
	if err != nil {
		h.logger.Error("failed to get post", "slug", slug, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, PostResponse{
		PostMetaResponse: toPostMetaResponse(post.PostMeta),
		Content:          post.Content,
	})
}

// ListTags returns the sorted set of blog tags.
func (h *Handler) ListTags(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.blogSvc.Tags())
}

// ListPostsByTag returns the posts carrying the tag in the path.
func (h *Handler) ListPostsByTag(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toPostMetaResponses(h.blogSvc.PostsByTag(r.PathValue("tag"))))
}

// ListPolicies returns a summary of every privacy policy.
func (h *Handler) ListPolicies(w http.ResponseWriter, r *http.Request) {
	policies := h.privacySvc.ListPolicies()

	resp := make([]PolicySummaryResponse, 0, len(policies))
	for _, p := range policies {
		resp = append(resp, PolicySummaryResponse{
			AppName:     p.AppName,
			Slug:        p.Slug,
			LastUpdated: p.LastUpdated,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

// GetPolicy returns one privacy policy by slug.
func (h *Handler) GetPolicy(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	policy, err := h.privacySvc.GetPolicy(slug)
	if errors.Is(err, driven.ErrPolicyNotFound) {
		writeError(w, http.StatusNotFound, "privacy policy not found")
		return
	}
	if err != nil {
		h.logger.Error("failed to get privacy policy", "slug", slug, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, toPolicyResponse(policy))
}

// SubmitContact stores a contact form message.
func (h *Handler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	msg, err := h.inboxSvc.SubmitContact(r.Context(), req.Name, req.Email, req.Subject, req.Message)
	if errors.Is(err, model.ErrInvalidSubmission) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		h.logger.Error("failed to submit contact message", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, ContactResponse{
		ID:        msg.ID,
		CreatedAt: msg.CreatedAt.UTC().Format(time.RFC3339),
	})
}

// Subscribe adds an address to the newsletter. Repeat sign-ups return 200,
// new ones 201.
func (h *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req SubscribeRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	created, err := h.inboxSvc.Subscribe(r.Context(), req.Email)
	if errors.Is(err, model.ErrInvalidSubmission) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		h.logger.Error("failed to subscribe", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, SubscribeResponse{Subscribed: true, Created: created})
}

// Health returns a simple liveness response.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
		Time:   time.Now().UTC().Format(time.RFC3339),
	})
}

// decodeBody decodes a size-limited JSON body into v. On failure it writes a
// 400 response and returns false.
func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
