package query

import (
	"slices"
	"strings"

	"campaign-dash/internal/core/domain"
)

// Filtered applies the date, text and status filters and the sort of q to
// records and returns the full ordered result without paginating it. The
// input slice is never modified.
func Filtered(records []domain.CampaignRecord, q Query) []domain.CampaignRecord {
	term := strings.ToLower(q.Search)
	out := make([]domain.CampaignRecord, 0, len(records))
	for _, r := range records {
		if q.Interval != nil && !q.Interval.Contains(r.Date) {
			continue
		}
		if !strings.Contains(strings.ToLower(r.Campaign), term) {
			continue
		}
		if !q.Status.Matches(r.Status) {
			continue
		}
		out = append(out, r)
	}
	if cmpFn := comparator(q.SortField, q.SortDir); cmpFn != nil {
		slices.SortStableFunc(out, cmpFn)
	}
	return out
}

// Evaluate runs the whole pipeline and returns the requested page. A page
// outside [1, TotalPages] yields no rows; callers correct it with
// ClampPage. Degenerate input never fails, it produces an empty page.
func Evaluate(records []domain.CampaignRecord, q Query) Page {
	size := q.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}
	filtered := Filtered(records, q)

	p := Page{
		Rows:       []domain.CampaignRecord{},
		Page:       q.Page,
		PageSize:   size,
		TotalCount: len(filtered),
		TotalPages: TotalPages(len(filtered), size),
	}
	// Checked against TotalPages first so the offsets below cannot overflow.
	if q.Page < 1 || q.Page > p.TotalPages {
		return p
	}
	start := (q.Page - 1) * size
	end := start + min(size, len(filtered)-start)
	p.Rows = filtered[start:end]
	p.From = start + 1
	p.To = end
	return p
}

// TotalPages returns ceil(total/size), 0 when total is 0.
func TotalPages(total, size int) int {
	if total <= 0 || size <= 0 {
		return 0
	}
	pages := total / size
	if total%size != 0 {
		pages++
	}
	return pages
}

// ClampPage moves page into [1, totalPages]. With no pages it returns 1.
func ClampPage(page, totalPages int) int {
	if totalPages < 1 || page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}
