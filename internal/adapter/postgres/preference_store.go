package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"campaign-dash/internal/core/domain"
	"campaign-dash/internal/core/port"
)

// PreferenceStore implements port.PreferenceStore on the
// dashboard_preferences table.
type PreferenceStore struct {
	pool *pgxpool.Pool
}

// NewPreferenceStore returns a new store instance.
func NewPreferenceStore(pool *pgxpool.Pool) *PreferenceStore {
	return &PreferenceStore{pool: pool}
}

// Load returns the preferences saved for owner.
func (s *PreferenceStore) Load(ctx context.Context, owner string) (domain.Preferences, error) {
	var (
		prefs domain.Preferences
		theme string
	)
	err := s.pool.QueryRow(ctx, `SELECT accent_hsl, theme FROM dashboard_preferences WHERE owner = $1`, owner).
		Scan(&prefs.Accent.HSL, &theme)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Preferences{}, port.ErrNotFound
	}
	if err != nil {
		return domain.Preferences{}, err
	}
	prefs.Theme = domain.Theme(theme)
	return prefs.Normalize(), nil
}

// Save upserts the preferences of owner.
func (s *PreferenceStore) Save(ctx context.Context, owner string, prefs domain.Preferences) error {
	_, err := s.pool.Exec(ctx, `INSERT INTO dashboard_preferences (owner, accent_hsl, theme, updated_at)
VALUES ($1, $2, $3, now())
ON CONFLICT (owner) DO UPDATE SET accent_hsl = EXCLUDED.accent_hsl, theme = EXCLUDED.theme, updated_at = now()`,
		owner, prefs.Accent.HSL, string(prefs.Theme))
	return err
}
