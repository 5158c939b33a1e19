package port

import (
	"context"
	"io"

	"campaign-dash/internal/core/domain"
	"campaign-dash/internal/core/query"
	"campaign-dash/internal/core/widget"
)

// DashboardUseCase defines the operations behind the dashboard. This
// interface is the primary port into the application; the HTTP adapter
// depends on it only.
type DashboardUseCase interface {
	// QueryCampaigns evaluates q against the record set. A page past the
	// end is clamped to the last page and evaluated again, so the caller
	// never receives a stuck blank page while rows exist.
	QueryCampaigns(ctx context.Context, q query.Query) (query.Page, error)

	// ExportCSV writes every row matching q, ignoring pagination, as CSV.
	// It returns export.ErrEmptyExport when nothing matches.
	ExportCSV(ctx context.Context, q query.Query, w io.Writer) error

	// ExportPDF writes every row matching q as a PDF table. It returns
	// export.ErrEmptyExport when nothing matches.
	ExportPDF(ctx context.Context, q query.Query, w io.Writer) error

	// Reload discards the cached record set and loads it again.
	Reload(ctx context.Context) error

	// Widgets returns the current metric cards and chart series.
	Widgets(ctx context.Context) widget.Snapshot

	// RefreshWidgets regenerates the chart series.
	RefreshWidgets(ctx context.Context) widget.Snapshot

	// Preferences returns the settings of owner, defaults when none are
	// stored.
	Preferences(ctx context.Context, owner string) (domain.Preferences, error)

	// CycleAccent moves owner to the next accent colour and saves it.
	CycleAccent(ctx context.Context, owner string) (domain.Preferences, error)

	// SetTheme saves the theme of owner.
	SetTheme(ctx context.Context, owner string, theme domain.Theme) (domain.Preferences, error)
}
