package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"campaign-dash/internal/core/domain"
)

// Format is the encoding of a dataset file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatOf picks the format from a file extension. Anything other than
// .yaml or .yml is treated as JSON.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// recordDTO is the on-disk shape of a campaign record.
type recordDTO struct {
	ID          string        `json:"id" yaml:"id"`
	Campaign    string        `json:"campaign" yaml:"campaign"`
	Revenue     float64       `json:"revenue" yaml:"revenue"`
	Users       int64         `json:"users" yaml:"users"`
	Conversions int64         `json:"conversions" yaml:"conversions"`
	CTR         float64       `json:"ctr" yaml:"ctr"`
	Status      domain.Status `json:"status" yaml:"status"`
	Date        domain.Date   `json:"date" yaml:"date"`
}

// Decode reads a list of campaign records. Records without an id get a
// random UUID. A malformed date aborts decoding.
func Decode(r io.Reader, format Format) ([]domain.CampaignRecord, error) {
	var dtos []recordDTO
	switch format {
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&dtos); err != nil && err != io.EOF {
			return nil, fmt.Errorf("decode yaml dataset: %w", err)
		}
	default:
		if err := json.NewDecoder(r).Decode(&dtos); err != nil {
			return nil, fmt.Errorf("decode json dataset: %w", err)
		}
	}

	records := make([]domain.CampaignRecord, 0, len(dtos))
	for _, d := range dtos {
		id := strings.TrimSpace(d.ID)
		if id == "" {
			id = uuid.NewString()
		}
		records = append(records, domain.CampaignRecord{
			ID:          id,
			Campaign:    d.Campaign,
			Revenue:     d.Revenue,
			Users:       d.Users,
			Conversions: d.Conversions,
			CTR:         d.CTR,
			Status:      domain.Status(strings.ToLower(string(d.Status))),
			Date:        d.Date,
		})
	}
	return records, nil
}

// FileRepository reads campaign records from a JSON or YAML file on every
// call.
type FileRepository struct {
	path string
}

// NewFileRepository returns a repository reading path.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

// ListCampaigns opens and decodes the dataset file.
func (r *FileRepository) ListCampaigns(_ context.Context) ([]domain.CampaignRecord, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	records, err := Decode(f, FormatOf(r.path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r.path, err)
	}
	return records, nil
}
