package httpadapter

import "net/http"

// handleDashboard returns the metric cards and chart series.
func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.svc.Widgets(r.Context()))
}

// handleRefresh regenerates the chart series and returns the new widgets.
func (h *Handler) handleRefresh(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.svc.RefreshWidgets(r.Context()))
}
