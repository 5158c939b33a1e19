package configs

import (
	"fmt"
	"time"

	"campaign-dash/internal/core/query"
)

// Campaign record sources.
const (
	SourceBuiltin  = "builtin"
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

// Dashboard configures where campaign records come from and how the table
// and widgets behave.
type Dashboard struct {
	// Source selects the campaign repository: builtin, file or postgres.
	Source string `env:"SOURCE" envDefault:"builtin"`
	// Dataset is the JSON or YAML file read when Source is file.
	Dataset string `env:"DATASET"`
	// PageSize is the default number of table rows per page.
	PageSize int `env:"PAGE_SIZE" envDefault:"5"`
	// RefreshInterval is the period of the live widget update.
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL" envDefault:"30s"`
}

// Validate checks option combinations env tags cannot express.
func (c Dashboard) Validate() error {
	switch c.Source {
	case SourceBuiltin, SourcePostgres:
	case SourceFile:
		if c.Dataset == "" {
			return fmt.Errorf("DASH_DATASET is required when DASH_SOURCE=%s", SourceFile)
		}
	default:
		return fmt.Errorf("unknown DASH_SOURCE %q", c.Source)
	}
	if c.PageSize < 1 || c.PageSize > query.MaxPageSize {
		return fmt.Errorf("DASH_PAGE_SIZE must be between 1 and %d, got %d", query.MaxPageSize, c.PageSize)
	}
	if c.RefreshInterval <= 0 {
		return fmt.Errorf("DASH_REFRESH_INTERVAL must be positive, got %s", c.RefreshInterval)
	}
	return nil
}
