package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"campaign-dash/internal/core/domain"
	"campaign-dash/internal/core/port"
)

type themeRequest struct {
	Theme string `json:"theme"`
}

// handleGetPreferences returns the accent colour and theme of {owner}.
func (h *Handler) handleGetPreferences(w http.ResponseWriter, r *http.Request) {
	prefs, err := h.svc.Preferences(r.Context(), chi.URLParam(r, "owner"))
	h.writePreferences(w, prefs, err)
}

// handleNextAccent cycles {owner} to the next accent colour.
func (h *Handler) handleNextAccent(w http.ResponseWriter, r *http.Request) {
	prefs, err := h.svc.CycleAccent(r.Context(), chi.URLParam(r, "owner"))
	h.writePreferences(w, prefs, err)
}

// handleSetTheme sets the theme of {owner}. The body is a JSON object with a
// theme field of light, dark or system. Parsing errors produce HTTP 400.
func (h *Handler) handleSetTheme(w http.ResponseWriter, r *http.Request) {
	var req themeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	theme, err := domain.ParseTheme(req.Theme)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	prefs, err := h.svc.SetTheme(r.Context(), chi.URLParam(r, "owner"), theme)
	h.writePreferences(w, prefs, err)
}

func (h *Handler) writePreferences(w http.ResponseWriter, prefs domain.Preferences, err error) {
	if errors.Is(err, port.ErrEmptyOwner) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		h.logger.Error("preferences error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, prefs)
}
