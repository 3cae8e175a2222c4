// Package handler contains chi HTTP handlers that translate HTTP
// requests/responses to and from the service layer.
package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/mergington/activities/internal/model"
	"github.com/mergington/activities/internal/service"
	"github.com/mergington/activities/internal/store"
)

// indexPath is where the root path redirects; the assets under /static/ are
// served separately from the web directory.
const indexPath = "/static/index.html"

// ActivityHandler holds all HTTP handlers for the activity signup API.
type ActivityHandler struct {
	svc *service.DirectoryService
}

// NewActivityHandler constructs an ActivityHandler.
func NewActivityHandler(svc *service.DirectoryService) *ActivityHandler {
	return &ActivityHandler{svc: svc}
}

// ─── Helper utilities ─────────────────────────────────────────────────────────

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, model.ErrorResponse{Detail: detail})
}

// activityParam extracts the {activity} path segment. chi matches against the
// raw path when one is present, so the segment may still be percent-encoded
// ("Chess%20Club"); decode it before using it as a directory key.
func activityParam(r *http.Request) string {
	raw := chi.URLParam(r, "activity")
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}

// ─── Handlers ─────────────────────────────────────────────────────────────────

// RootRedirect handles any method on / with a 307 to the static index page.
func RootRedirect(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, indexPath, http.StatusTemporaryRedirect)
}

// ListActivities handles GET /activities
// Returns the full directory as a JSON mapping from name to record.
func (h *ActivityHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := h.svc.ListActivities(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list activities")
		return
	}
	writeJSON(w, http.StatusOK, activities)
}

// SignUp handles POST /activities/{activity}/signup?email=...
func (h *ActivityHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	activity := activityParam(r)
	email := r.URL.Query().Get("email")

	msg, err := h.svc.SignUp(r.Context(), activity, email)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailRequired):
			writeError(w, http.StatusUnprocessableEntity, "email query parameter is required")
		case errors.Is(err, store.ErrActivityNotFound):
			writeError(w, http.StatusNotFound, "Activity not found")
		case errors.Is(err, store.ErrAlreadyRegistered):
			writeError(w, http.StatusBadRequest, fmt.Sprintf("%s is already signed up for this activity", email))
		default:
			writeError(w, http.StatusInternalServerError, "failed to sign up")
		}
		return
	}
	writeJSON(w, http.StatusOK, model.MessageResponse{Message: msg})
}

// Unregister handles DELETE /activities/{activity}/unregister?email=...
func (h *ActivityHandler) Unregister(w http.ResponseWriter, r *http.Request) {
	activity := activityParam(r)
	email := r.URL.Query().Get("email")

	msg, err := h.svc.Unregister(r.Context(), activity, email)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailRequired):
			writeError(w, http.StatusUnprocessableEntity, "email query parameter is required")
		case errors.Is(err, store.ErrActivityNotFound):
			writeError(w, http.StatusNotFound, "Activity not found")
		case errors.Is(err, store.ErrNotRegistered):
			writeError(w, http.StatusBadRequest, fmt.Sprintf("%s is not registered for this activity", email))
		default:
			writeError(w, http.StatusInternalServerError, "failed to unregister")
		}
		return
	}
	writeJSON(w, http.StatusOK, model.MessageResponse{Message: msg})
}

// ─── Health check ─────────────────────────────────────────────────────────────

// HealthCheck handles GET /health
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
