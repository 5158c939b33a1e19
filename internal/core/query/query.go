// Package query implements the campaign table pipeline: date filter, text
// and status filter, stable sort and pagination over an in-memory record
// set.
package query

import "campaign-dash/internal/core/domain"

const (
	// DefaultPageSize is the number of rows per table page.
	DefaultPageSize = 5
	// MaxPageSize is the largest page size a caller may request.
	MaxPageSize = 100
)

// StatusFilter restricts rows to one status, or passes all of them.
type StatusFilter string

// StatusAll disables status filtering.
const StatusAll StatusFilter = "all"

// Matches reports whether a record with status s passes the filter.
func (f StatusFilter) Matches(s domain.Status) bool {
	return f == StatusAll || f == "" || domain.Status(f) == s
}

// SortField is a table column that rows can be ordered by.
type SortField string

const (
	SortByCampaign    SortField = "campaign"
	SortByRevenue     SortField = "revenue"
	SortByUsers       SortField = "users"
	SortByConversions SortField = "conversions"
)

// SortDirection is the sort order.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// Reverse returns the opposite direction.
func (d SortDirection) Reverse() SortDirection {
	if d == SortDesc {
		return SortAsc
	}
	return SortDesc
}

// DateInterval bounds record dates inclusively. A zero bound is open.
type DateInterval struct {
	Start domain.Date
	End   domain.Date
}

// Contains reports whether d lies within the interval, bounds included.
func (i DateInterval) Contains(d domain.Date) bool {
	if !i.Start.IsZero() && d.Before(i.Start.Time) {
		return false
	}
	if !i.End.IsZero() && d.After(i.End.Time) {
		return false
	}
	return true
}

// Query describes one evaluation of the table. It is rebuilt on every
// input change and holds no state between evaluations.
type Query struct {
	Search    string
	Status    StatusFilter
	Interval  *DateInterval
	SortField SortField
	SortDir   SortDirection
	Page      int
	PageSize  int
}

// Default returns the initial table state: every status, highest revenue
// first, first page.
func Default() Query {
	return Query{
		Status:    StatusAll,
		SortField: SortByRevenue,
		SortDir:   SortDesc,
		Page:      1,
		PageSize:  DefaultPageSize,
	}
}

// ToggleSort mirrors a click on a column header: clicking the active column
// flips the direction, clicking another column sorts it descending.
func (q Query) ToggleSort(field SortField) Query {
	if q.SortField == field {
		q.SortDir = q.SortDir.Reverse()
	} else {
		q.SortField = field
		q.SortDir = SortDesc
	}
	return q
}

// Page is the visible slice of the table plus pagination metadata. From and
// To are the 1-based positions of the first and last visible row, both 0
// when the page is empty.
type Page struct {
	Rows       []domain.CampaignRecord
	Page       int
	PageSize   int
	TotalCount int
	TotalPages int
	From       int
	To         int
}
