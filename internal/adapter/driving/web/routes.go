package web

import (
	"io/fs"
	"net/http"
)

// RegisterRoutes registers all web GUI routes on the provided mux.
// Static assets are served from the embedded filesystem at /static/*.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Static assets (embedded via go:embed).
	staticFS, _ := fs.Sub(StaticFS, "static")
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(staticFS)))

	// Page routes.
	mux.HandleFunc("GET /{$}", h.Home)
	mux.HandleFunc("GET /blog", h.Blog)
	mux.HandleFunc("GET /blog/{slug}", h.BlogPost)
	mux.HandleFunc("GET /blog/tag/{tag}", h.BlogTag)
	mux.HandleFunc("GET /privacy", h.Privacy)
	mux.HandleFunc("GET /privacy/{slug}", h.PrivacyPolicy)

	// Form posts.
	mux.HandleFunc("POST /contact", h.SubmitContact)
	mux.HandleFunc("POST /newsletter", h.Subscribe)
}
