package httpadapter

import (
	"log/slog"
	"net/http"

	"campaign-dash/internal/core/domain"
	"campaign-dash/internal/core/query"
)

// pagination is the metadata block of a table response.
type pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
	From       int `json:"from"`
	To         int `json:"to"`
}

type campaignsResponse struct {
	Data       []domain.CampaignRecord `json:"data"`
	Pagination pagination              `json:"pagination"`
}

// parseQuery reads the table query from the URL. Recognised parameters are
// search, status, sort, dir, page, page_size, from and to (YYYY-MM-DD).
func (h *Handler) parseQuery(r *http.Request) (query.Query, error) {
	v := r.URL.Query()
	return query.Params{
		Search:   v.Get("search"),
		Status:   v.Get("status"),
		Sort:     v.Get("sort"),
		Dir:      v.Get("dir"),
		Page:     v.Get("page"),
		PageSize: v.Get("page_size"),
		From:     v.Get("from"),
		To:       v.Get("to"),
	}.Query(h.pageSize)
}

// handleListCampaigns returns one page of the campaign table. Invalid
// parameters result in HTTP 400 and internal errors in HTTP 500. A page past
// the end is answered with the last page; the page actually served is
// reported in the pagination block.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	q, err := h.parseQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	page, err := h.svc.QueryCampaigns(r.Context(), q)
	if err != nil {
		h.logger.Error("query campaigns error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, campaignsResponse{
		Data: page.Rows,
		Pagination: pagination{
			Page:       page.Page,
			PageSize:   page.PageSize,
			Total:      page.TotalCount,
			TotalPages: page.TotalPages,
			From:       page.From,
			To:         page.To,
		},
	})
}
