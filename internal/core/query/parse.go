package query

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"campaign-dash/internal/core/domain"
)

// ErrInvalidQuery is returned when textual query parameters are malformed.
var ErrInvalidQuery = errors.New("invalid query")

// Params is the textual form of a Query as it arrives from a URL query
// string or command-line flags. Empty fields take their defaults.
type Params struct {
	Search   string
	Status   string
	Sort     string
	Dir      string
	Page     string
	PageSize string
	From     string
	To       string
}

// Query validates p and converts it into a Query. defaultPageSize is used
// when PageSize is empty; a non-positive value falls back to
// DefaultPageSize. Page sizes above MaxPageSize are rejected; any positive
// page is accepted and left for Evaluate to answer.
func (p Params) Query(defaultPageSize int) (Query, error) {
	q := Default()
	if defaultPageSize > 0 {
		q.PageSize = defaultPageSize
	}
	q.Search = p.Search

	if s := strings.ToLower(strings.TrimSpace(p.Status)); s != "" && s != string(StatusAll) {
		st, err := domain.ParseStatus(s)
		if err != nil {
			return Query{}, fmt.Errorf("%w: %v", ErrInvalidQuery, err)
		}
		q.Status = StatusFilter(st)
	}

	if s := strings.ToLower(strings.TrimSpace(p.Sort)); s != "" {
		f := SortField(s)
		switch f {
		case SortByCampaign, SortByRevenue, SortByUsers, SortByConversions:
			q.SortField = f
		default:
			return Query{}, fmt.Errorf("%w: unknown sort field %q", ErrInvalidQuery, p.Sort)
		}
	}

	if s := strings.ToLower(strings.TrimSpace(p.Dir)); s != "" {
		d := SortDirection(s)
		if d != SortAsc && d != SortDesc {
			return Query{}, fmt.Errorf("%w: unknown sort direction %q", ErrInvalidQuery, p.Dir)
		}
		q.SortDir = d
	}

	var err error
	if q.Page, err = positive("page", p.Page, q.Page); err != nil {
		return Query{}, err
	}
	if q.PageSize, err = positive("page_size", p.PageSize, q.PageSize); err != nil {
		return Query{}, err
	}
	if q.PageSize > MaxPageSize {
		return Query{}, fmt.Errorf("%w: page_size must be at most %d, got %d", ErrInvalidQuery, MaxPageSize, q.PageSize)
	}

	if p.From != "" || p.To != "" {
		var iv DateInterval
		if p.From != "" {
			if iv.Start, err = domain.ParseDate(p.From); err != nil {
				return Query{}, fmt.Errorf("%w: from: %v", ErrInvalidQuery, err)
			}
		}
		if p.To != "" {
			if iv.End, err = domain.ParseDate(p.To); err != nil {
				return Query{}, fmt.Errorf("%w: to: %v", ErrInvalidQuery, err)
			}
		}
		if !iv.Start.IsZero() && !iv.End.IsZero() && iv.Start.After(iv.End.Time) {
			return Query{}, fmt.Errorf("%w: from %s is after to %s", ErrInvalidQuery, iv.Start, iv.End)
		}
		q.Interval = &iv
	}
	return q, nil
}

func positive(name, raw string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: %s must be a positive integer, got %q", ErrInvalidQuery, name, raw)
	}
	return n, nil
}
