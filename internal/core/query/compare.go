package query

import (
	"cmp"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"campaign-dash/internal/core/domain"
)

type compareFunc func(a, b domain.CampaignRecord) int

// comparator resolves the ordering for a sort field and direction. The
// returned function is used for a single evaluation only: collators keep
// internal buffers and are not safe for concurrent use.
func comparator(field SortField, dir SortDirection) compareFunc {
	var fn compareFunc
	switch field {
	case SortByCampaign:
		c := collate.New(language.English)
		fn = func(a, b domain.CampaignRecord) int {
			return c.CompareString(a.Campaign, b.Campaign)
		}
	case SortByRevenue:
		fn = func(a, b domain.CampaignRecord) int { return cmp.Compare(a.Revenue, b.Revenue) }
	case SortByUsers:
		fn = func(a, b domain.CampaignRecord) int { return cmp.Compare(a.Users, b.Users) }
	case SortByConversions:
		fn = func(a, b domain.CampaignRecord) int { return cmp.Compare(a.Conversions, b.Conversions) }
	default:
		return nil
	}
	if dir == SortDesc {
		asc := fn
		fn = func(a, b domain.CampaignRecord) int { return asc(b, a) }
	}
	return fn
}
