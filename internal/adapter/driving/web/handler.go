// Package web implements the HTML GUI driving adapter using templ components.
package web

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/a-h/templ"

	"github.com/victorcollective/showcase/internal/adapter/driving/web/templates"
	"github.com/victorcollective/showcase/internal/adapter/driving/web/templates/pages"
	vm "github.com/victorcollective/showcase/internal/adapter/driving/web/viewmodel"
	"github.com/victorcollective/showcase/internal/application"
	"github.com/victorcollective/showcase/internal/domain/model"
	"github.com/victorcollective/showcase/internal/domain/port/driven"
)

const (
	siteTitle       = "Portfolio"
	latestPostCount = 3
	maxFormBytes    = 64 << 10
)

// Flash messages selected by the "sent" query parameter after a form post.
var flashMessages = map[string]string{
	"contact":    "Thanks, your message has been sent.",
	"subscribed": "Thanks for subscribing!",
	"already":    "You are already subscribed.",
}

// Handler is the web GUI driving adapter that serves HTML via templ components.
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

// Home renders the landing page with the ranked projects and latest posts.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	list := h.projectSvc.RankedProjects(r.Context())

	form := vm.FormViewModel{
		CSRFToken: csrfToken(w, r),
		Flash:     flashMessages[r.URL.Query().Get("sent")],
	}
	if r.URL.Query().Get("error") != "" {
		form.Error = "Please check the form and try again."
	}

	data := vm.HomeViewModel{
		Projects:    toProjectCardViewModels(list.Projects),
		FromCache:   list.Source == model.SourceFallback,
		LatestPosts: toPostCardViewModels(h.blogSvc.LatestPosts(latestPostCount)),
		Form:        form,
	}

	h.render(w, r, http.StatusOK, siteTitle, pages.Home(data))
}

// Blog renders the full post listing.
func (h *Handler) Blog(w http.ResponseWriter, r *http.Request) {
	data := vm.BlogIndexViewModel{
		Posts: toPostCardViewModels(h.blogSvc.ListPosts()),
		Tags:  toTagViewModels(h.blogSvc.Tags()),
	}
	h.render(w, r, http.StatusOK, "Blog | "+siteTitle, pages.BlogIndex(data))
}

// BlogTag renders the posts carrying one tag.
func (h *Handler) BlogTag(w http.ResponseWriter, r *http.Request) {
	tag := r.PathValue("tag")
	data := vm.BlogIndexViewModel{
		Tag:   tag,
		Posts: toPostCardViewModels(h.blogSvc.PostsByTag(tag)),
		Tags:  toTagViewModels(h.blogSvc.Tags()),
	}
	h.render(w, r, http.StatusOK, tag+" | Blog | "+siteTitle, pages.BlogIndex(data))
}

// BlogPost renders a single post with its markdown body converted to HTML.
func (h *Handler) BlogPost(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	post, err := h.blogSvc.GetPost(slug)
	if errors.Is(err, driven.ErrPostNotFound) {
		h.render(w, r, http.StatusNotFound, "Not found | "+siteTitle, pages.NotFound("That post does not exist."))
		return
	}
	if err != nil {
		h.logger.Error("failed to get post", "slug", slug, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.render(w, r, http.StatusOK, post.Title+" | "+siteTitle, pages.BlogPost(toPostDetailViewModel(post)))
}

// Privacy renders the index of privacy policies.
func (h *Handler) Privacy(w http.ResponseWriter, r *http.Request) {
	policies := toPolicySummaryViewModels(h.privacySvc.ListPolicies())
	h.render(w, r, http.StatusOK, "Privacy | "+siteTitle, pages.PrivacyIndex(policies))
}

// PrivacyPolicy renders one app's privacy policy.
func (h *Handler) PrivacyPolicy(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	policy, err := h.privacySvc.GetPolicy(slug)
	if errors.Is(err, driven.ErrPolicyNotFound) {
		h.render(w, r, http.StatusNotFound, "Not found | "+siteTitle, pages.NotFound("No privacy policy for that app."))
		return
	}
	if err != nil {
		h.logger.Error("failed to get privacy policy", "slug", slug, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.render(w, r, http.StatusOK, policy.AppName+" Privacy Policy", pages.PrivacyPolicy(toPolicyViewModel(policy)))
}

// SubmitContact handles the contact form and redirects back to the home page.
func (h *Handler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	if !h.parseForm(w, r) {
		return
	}

	_, err := h.inboxSvc.SubmitContact(r.Context(),
		r.PostFormValue("name"),
		r.PostFormValue("email"),
		r.PostFormValue("subject"),
		r.PostFormValue("message"),
	)
	if errors.Is(err, model.ErrInvalidSubmission) {
		redirectHome(w, r, "error", "contact")
		return
	}
	if err != nil {
		h.logger.Error("failed to submit contact message", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	redirectHome(w, r, "sent", "contact")
}

// Subscribe handles the newsletter form and redirects back to the home page.
func (h *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	if !h.parseForm(w, r) {
		return
	}

	created, err := h.inboxSvc.Subscribe(r.Context(), r.PostFormValue("email"))
	if errors.Is(err, model.ErrInvalidSubmission) {
		redirectHome(w, r, "error", "newsletter")
		return
	}
	if err != nil {
		h.logger.Error("failed to subscribe", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if created {
		redirectHome(w, r, "sent", "subscribed")
		return
	}
	redirectHome(w, r, "sent", "already")
}

// parseForm parses a size-limited form body and checks its CSRF token. On
// failure it writes the error response and returns false.
func (h *Handler) parseForm(w http.ResponseWriter, r *http.Request) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return false
	}
	if !validateCSRF(r) {
		h.logger.Warn("rejected form post with invalid csrf token", "path", r.URL.Path)
		http.Error(w, "invalid csrf token", http.StatusForbidden)
		return false
	}
	return true
}

func redirectHome(w http.ResponseWriter, r *http.Request, key, value string) {
	http.Redirect(w, r, "/?"+url.Values{key: {value}}.Encode()+"#contact", http.StatusSeeOther)
}

// render writes component inside the site layout with the given status.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, title string, component templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	if err := templates.Layout(title, component).Render(r.Context(), w); err != nil {
		h.logger.Error("failed to render page", "path", r.URL.Path, "error", err)
	}
}
