package httpadapter

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"campaign-dash/internal/core/export"
)

// handleExport streams the whole filtered table as a file download. The
// format query parameter selects csv (default) or pdf; the remaining
// parameters are those of the table query, pagination excluded. An empty
// result is answered with HTTP 404 "nothing to export" rather than a file
// without rows.
func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	q, err := h.parseQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var (
		buf         bytes.Buffer
		contentType string
		filename    string
	)
	switch format := r.URL.Query().Get("format"); format {
	case "", "csv":
		contentType, filename = "text/csv; charset=utf-8", "campaign-data.csv"
		err = h.svc.ExportCSV(r.Context(), q, &buf)
	case "pdf":
		contentType, filename = "application/pdf", "campaign-data.pdf"
		err = h.svc.ExportPDF(r.Context(), q, &buf)
	default:
		http.Error(w, "invalid format, must be csv or pdf", http.StatusBadRequest)
		return
	}
	if errors.Is(err, export.ErrEmptyExport) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.Error("export error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	if _, err = buf.WriteTo(w); err != nil {
		h.logger.Error("write export error", slog.Any("error", err))
	}
}
