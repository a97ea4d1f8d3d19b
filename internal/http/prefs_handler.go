package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"contenthub/internal/httpx"
	"contenthub/internal/prefs"
)

// ThemeService reads and writes the display theme.
type ThemeService interface {
	Theme(ctx context.Context) prefs.Theme
	SetTheme(ctx context.Context, t prefs.Theme) error
}

type PrefsHandler struct {
	svc ThemeService
}

func NewPrefsHandler(svc ThemeService) *PrefsHandler {
	return &PrefsHandler{svc: svc}
}

type themePayload struct {
	Theme prefs.Theme `json:"theme"`
}

// GetTheme handles GET /v1/preferences/theme.
func (h *PrefsHandler) GetTheme(w http.ResponseWriter, r *http.Request) {
	httpx.JSONSuccess(w, r, themePayload{Theme: h.svc.Theme(r.Context())}, nil)
}

// SetTheme handles PUT /v1/preferences/theme.
func (h *PrefsHandler) SetTheme(w http.ResponseWriter, r *http.Request) {
	var payload themePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "bad_request", "Malformed JSON body")
		return
	}

	err := h.svc.SetTheme(r.Context(), payload.Theme)
	switch {
	case errors.Is(err, prefs.ErrInvalidTheme):
		httpx.JSONError(w, r, http.StatusBadRequest, "bad_request", "Theme must be light or dark")
		return
	case err != nil:
		httpx.JSONError(w, r, http.StatusInternalServerError, "internal_error", "Internal server error")
		return
	}

	httpx.JSONSuccess(w, r, themePayload{Theme: payload.Theme}, nil)
}
