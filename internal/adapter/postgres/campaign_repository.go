package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"campaign-dash/internal/core/domain"
)

// CampaignRepository implements port.CampaignRepository using pgxpool for
// PostgreSQL.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// ListCampaigns returns every campaign record in insertion order.
func (r *CampaignRepository) ListCampaigns(ctx context.Context) ([]domain.CampaignRecord, error) {
	query := `
        SELECT
            id,
            campaign,
            revenue,
            users,
            conversions,
            ctr,
            status,
            event_date
        FROM campaign_records
        ORDER BY seq`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CampaignRecord, error) {
		var (
			rec    domain.CampaignRecord
			status string
			date   time.Time
		)
		err := row.Scan(
			&rec.ID,
			&rec.Campaign,
			&rec.Revenue,
			&rec.Users,
			&rec.Conversions,
			&rec.CTR,
			&status,
			&date,
		)
		rec.Status = domain.Status(status)
		rec.Date = domain.DateOf(date)
		return rec, err
	})
}
