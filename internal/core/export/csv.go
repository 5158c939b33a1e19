package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"campaign-dash/internal/core/domain"
)

// CSVColumns is the header line and field order of CSV exports.
var CSVColumns = []string{"id", "campaign", "revenue", "users", "conversions", "ctr", "status", "date"}

func csvRow(r domain.CampaignRecord) []string {
	return []string{
		r.ID,
		r.Campaign,
		strconv.FormatFloat(r.Revenue, 'f', -1, 64),
		strconv.FormatInt(r.Users, 10),
		strconv.FormatInt(r.Conversions, 10),
		strconv.FormatFloat(r.CTR, 'f', -1, 64),
		string(r.Status),
		r.Date.String(),
	}
}

// WriteCSV writes rows as RFC 4180 CSV with a header line. Fields holding
// commas, quotes or newlines are quoted. An empty row set returns
// ErrEmptyExport without writing anything.
func WriteCSV(w io.Writer, rows []domain.CampaignRecord) error {
	if len(rows) == 0 {
		return ErrEmptyExport
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVColumns); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write(csvRow(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ToCSV returns the CSV export of rows as a string.
func ToCSV(rows []domain.CampaignRecord) (string, error) {
	builder := &strings.Builder{}
	if err := WriteCSV(builder, rows); err != nil {
		return "", err
	}
	return builder.String(), nil
}
