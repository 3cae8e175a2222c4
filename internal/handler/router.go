package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// NewRouter builds the full HTTP surface: the activity API, the health check,
// the root redirect, and the static assets under /static/ served from webDir.
func NewRouter(h *ActivityHandler, log *slog.Logger, webDir string) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer) // recover from panics, return 500
	r.Use(chimiddleware.RequestID) // attach request IDs
	r.Use(chimiddleware.RealIP)    // trust X-Forwarded-For
	r.Use(Logger(log))             // structured access log
	r.Use(CORS)

	r.Get("/health", HealthCheck)

	// The root path redirects to the index page regardless of method.
	r.Handle("/", http.HandlerFunc(RootRedirect))

	r.Route("/activities", func(r chi.Router) {
		r.Get("/", h.ListActivities)
		r.Post("/{activity}/signup", h.SignUp)
		r.Delete("/{activity}/unregister", h.Unregister)
	})

	// index.html, app.js, styles.css under webDir/static
	r.Handle("/static/*", http.FileServer(http.Dir(webDir)))

	return r
}
