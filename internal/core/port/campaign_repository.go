package port

import (
	"context"
	"errors"

	"campaign-dash/internal/core/domain"
)

var (
	// ErrNotFound is returned by stores when nothing is saved under a key.
	ErrNotFound = errors.New("not found")
	// ErrEmptyOwner is returned by preference operations without an owner.
	ErrEmptyOwner = errors.New("empty owner")
)

// CampaignRepository is the outbound port supplying the campaign record set.
// The dashboard loads the set once and treats it as read-only; the
// repository knows nothing about queries.
type CampaignRepository interface {
	// ListCampaigns returns every campaign record in its natural order.
	// That order is the tie-breaker of the table's stable sort.
	ListCampaigns(ctx context.Context) ([]domain.CampaignRecord, error)
}

// PreferenceStore persists per-user presentation settings.
type PreferenceStore interface {
	// Load returns the saved preferences of owner, or ErrNotFound.
	Load(ctx context.Context, owner string) (domain.Preferences, error)
	// Save stores prefs for owner, replacing any previous value.
	Save(ctx context.Context, owner string, prefs domain.Preferences) error
}
