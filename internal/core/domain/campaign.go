package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the ISO-8601 calendar date layout used by campaign records.
const DateLayout = "2006-01-02"

var (
	// ErrInvalidRecord is returned when a campaign record fails validation.
	ErrInvalidRecord = errors.New("invalid campaign record")
	// ErrDuplicateID is returned when two records in a set share an id.
	ErrDuplicateID = errors.New("duplicate campaign id")
)

// Status is the lifecycle state of a campaign.
type Status string

const (
	StatusActive    Status = "active"
	StatusPaused    Status = "paused"
	StatusCompleted Status = "completed"
)

// Statuses lists every known status in display order.
var Statuses = []Status{StatusActive, StatusPaused, StatusCompleted}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusPaused, StatusCompleted:
		return true
	}
	return false
}

// ParseStatus converts free text into a Status. Matching ignores case and
// surrounding whitespace.
func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	if !st.Valid() {
		return "", fmt.Errorf("unknown status %q", s)
	}
	return st, nil
}

// Date is a calendar date without a time of day. It is stored as UTC
// midnight and encodes as "YYYY-MM-DD" in JSON, YAML and CSV.
type Date struct {
	time.Time
}

// NewDate returns the date for the given year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar date in t's location.
func DateOf(t time.Time) Date {
	return NewDate(t.Date())
}

// ParseDate parses an ISO-8601 calendar date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return Date{t}, nil
}

// String formats d as "YYYY-MM-DD".
func (d Date) String() string {
	return d.Format(DateLayout)
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Malformed input is an
// error so that a bad dataset is rejected while it is being decoded.
func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalJSON encodes d as a JSON string. It overrides the RFC 3339
// encoding promoted from time.Time.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON decodes a "YYYY-MM-DD" JSON string.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("parse date %s: not a JSON string", s)
	}
	return d.UnmarshalText([]byte(s[1 : len(s)-1]))
}

// CampaignRecord is one row of the campaign performance table. Records are
// immutable once loaded.
type CampaignRecord struct {
	ID          string  `json:"id"`
	Campaign    string  `json:"campaign"`
	Revenue     float64 `json:"revenue"`
	Users       int64   `json:"users"`
	Conversions int64   `json:"conversions"`
	CTR         float64 `json:"ctr"` // percentage, 3.2 means 3.2%
	Status      Status  `json:"status"`
	Date        Date    `json:"date"`
}

// Validate checks the field constraints of a single record.
func (r CampaignRecord) Validate() error {
	switch {
	case strings.TrimSpace(r.ID) == "":
		return fmt.Errorf("%w: empty id", ErrInvalidRecord)
	case strings.TrimSpace(r.Campaign) == "":
		return fmt.Errorf("%w %q: empty campaign name", ErrInvalidRecord, r.ID)
	case r.Revenue < 0 || r.Users < 0 || r.Conversions < 0:
		return fmt.Errorf("%w %q: negative measure", ErrInvalidRecord, r.ID)
	case !r.Status.Valid():
		return fmt.Errorf("%w %q: unknown status %q", ErrInvalidRecord, r.ID, r.Status)
	case r.Date.IsZero():
		return fmt.Errorf("%w %q: missing date", ErrInvalidRecord, r.ID)
	}
	return nil
}

// ValidateSet validates every record and the uniqueness of ids across the
// set. The first failure is returned.
func ValidateSet(records []CampaignRecord) error {
	seen := make(map[string]struct{}, len(records))
	for _, r := range records {
		if err := r.Validate(); err != nil {
			return err
		}
		if _, ok := seen[r.ID]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateID, r.ID)
		}
		seen[r.ID] = struct{}{}
	}
	return nil
}
