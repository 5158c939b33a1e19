package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"campaign-dash/internal/core/domain"
)

// Seed inserts records into campaign_records in the given order. Ids that
// already exist are left untouched, so seeding twice is harmless.
func Seed(ctx context.Context, db *pgxpool.Pool, records []domain.CampaignRecord) (err error) {
	if err = domain.ValidateSet(records); err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	batch := &pgx.Batch{}
	for _, r := range records {
		batch.Queue(`INSERT INTO campaign_records
    (id, campaign, revenue, users, conversions, ctr, status, event_date)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8) ON CONFLICT (id) DO NOTHING`,
			r.ID, r.Campaign, r.Revenue, r.Users, r.Conversions, r.CTR, string(r.Status), r.Date.Time)
	}
	return tx.SendBatch(ctx, batch).Close()
}
