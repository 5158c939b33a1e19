// Package dataset provides campaign record sources that do not need a
// database: the built-in reference table and JSON or YAML files.
package dataset

import (
	"context"
	"slices"
	"time"

	"campaign-dash/internal/core/domain"
)

// Reference returns the 15-row demo table shown by a fresh dashboard.
func Reference() []domain.CampaignRecord {
	return []domain.CampaignRecord{
		{ID: "1", Campaign: "Summer Sale 2024", Revenue: 15420, Users: 2847, Conversions: 124, CTR: 3.2, Status: domain.StatusActive, Date: domain.NewDate(2019, time.June, 1)},
		{ID: "2", Campaign: "Brand Awareness Q1", Revenue: 8930, Users: 1596, Conversions: 89, CTR: 2.8, Status: domain.StatusActive, Date: domain.NewDate(2020, time.July, 2)},
		{ID: "3", Campaign: "Product Launch", Revenue: 22150, Users: 3241, Conversions: 187, CTR: 4.1, Status: domain.StatusCompleted, Date: domain.NewDate(2021, time.August, 3)},
		{ID: "4", Campaign: "Holiday Special", Revenue: 12680, Users: 2104, Conversions: 156, CTR: 3.7, Status: domain.StatusPaused, Date: domain.NewDate(2022, time.September, 4)},
		{ID: "5", Campaign: "Back to School", Revenue: 9870, Users: 1789, Conversions: 98, CTR: 2.9, Status: domain.StatusActive, Date: domain.NewDate(2023, time.October, 5)},
		{ID: "6", Campaign: "Spring Promo", Revenue: 11200, Users: 2000, Conversions: 110, CTR: 3.5, Status: domain.StatusActive, Date: domain.NewDate(2024, time.November, 6)},
		{ID: "7", Campaign: "Winter Clearance", Revenue: 13400, Users: 2200, Conversions: 120, CTR: 3.1, Status: domain.StatusCompleted, Date: domain.NewDate(2025, time.December, 7)},
		{ID: "8", Campaign: "Flash Sale", Revenue: 14500, Users: 2500, Conversions: 130, CTR: 3.8, Status: domain.StatusPaused, Date: domain.NewDate(2026, time.January, 8)},
		{ID: "9", Campaign: "Referral Boost", Revenue: 12000, Users: 2100, Conversions: 105, CTR: 2.7, Status: domain.StatusActive, Date: domain.NewDate(2027, time.February, 9)},
		{ID: "10", Campaign: "Black Friday", Revenue: 25000, Users: 4000, Conversions: 200, CTR: 5.0, Status: domain.StatusCompleted, Date: domain.NewDate(2028, time.March, 10)},
		{ID: "11", Campaign: "Cyber Monday", Revenue: 18000, Users: 3500, Conversions: 170, CTR: 4.5, Status: domain.StatusActive, Date: domain.NewDate(2029, time.April, 11)},
		{ID: "12", Campaign: "New Year Blast", Revenue: 16000, Users: 3000, Conversions: 140, CTR: 3.9, Status: domain.StatusPaused, Date: domain.NewDate(2030, time.May, 12)},
		{ID: "13", Campaign: "Customer Appreciation", Revenue: 10500, Users: 1800, Conversions: 90, CTR: 2.5, Status: domain.StatusActive, Date: domain.NewDate(2031, time.June, 13)},
		{ID: "14", Campaign: "VIP Exclusive", Revenue: 19500, Users: 3200, Conversions: 160, CTR: 4.2, Status: domain.StatusCompleted, Date: domain.NewDate(2032, time.July, 14)},
		{ID: "15", Campaign: "Anniversary Event", Revenue: 17000, Users: 2900, Conversions: 150, CTR: 3.6, Status: domain.StatusActive, Date: domain.NewDate(2033, time.August, 15)},
	}
}

// StaticRepository serves a fixed record set from memory.
type StaticRepository struct {
	records []domain.CampaignRecord
}

// NewStaticRepository returns a repository over records. The slice is
// copied.
func NewStaticRepository(records []domain.CampaignRecord) *StaticRepository {
	return &StaticRepository{records: slices.Clone(records)}
}

// ListCampaigns returns a copy of the stored records.
func (r *StaticRepository) ListCampaigns(_ context.Context) ([]domain.CampaignRecord, error) {
	return slices.Clone(r.records), nil
}
