package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRecord() CampaignRecord {
	return CampaignRecord{
		ID:          "1",
		Campaign:    "Summer Sale 2024",
		Revenue:     15420,
		Users:       2847,
		Conversions: 124,
		CTR:         3.2,
		Status:      StatusActive,
		Date:        NewDate(2019, time.June, 1),
	}
}

func TestDateJSON(t *testing.T) {
	d := NewDate(2024, time.January, 31)

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-01-31"`, string(b))

	var back Date
	require.NoError(t, json.Unmarshal(b, &back))
	assert.True(t, back.Equal(d.Time))

	assert.Error(t, json.Unmarshal([]byte(`"2024-13-01"`), &back))
	assert.Error(t, json.Unmarshal([]byte(`20240101`), &back))
}

func TestParseStatus(t *testing.T) {
	st, err := ParseStatus(" Paused ")
	require.NoError(t, err)
	assert.Equal(t, StatusPaused, st)

	_, err = ParseStatus("archived")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *CampaignRecord)
	}{
		{"empty id", func(r *CampaignRecord) { r.ID = "" }},
		{"empty name", func(r *CampaignRecord) { r.Campaign = "  " }},
		{"negative revenue", func(r *CampaignRecord) { r.Revenue = -1 }},
		{"negative users", func(r *CampaignRecord) { r.Users = -1 }},
		{"unknown status", func(r *CampaignRecord) { r.Status = "archived" }},
		{"missing date", func(r *CampaignRecord) { r.Date = Date{} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRecord()
			tt.mutate(&r)
			assert.ErrorIs(t, r.Validate(), ErrInvalidRecord)
		})
	}

	assert.NoError(t, validRecord().Validate())
}

func TestValidateSetRejectsDuplicateIDs(t *testing.T) {
	a, b := validRecord(), validRecord()
	b.Campaign = "Other"

	assert.ErrorIs(t, ValidateSet([]CampaignRecord{a, b}), ErrDuplicateID)

	b.ID = "2"
	assert.NoError(t, ValidateSet([]CampaignRecord{a, b}))
	assert.NoError(t, ValidateSet(nil))
}

func TestPreferencesNextAccentWraps(t *testing.T) {
	p := DefaultPreferences()
	for i := 1; i < len(AccentPalette); i++ {
		p = p.NextAccent()
		assert.Equal(t, AccentPalette[i], p.Accent)
	}
	p = p.NextAccent()
	assert.Equal(t, AccentPalette[0], p.Accent)
}

func TestPreferencesNormalize(t *testing.T) {
	p := Preferences{Accent: AccentColor{HSL: "1 2% 3%"}, Theme: "sepia"}.Normalize()
	assert.Equal(t, DefaultPreferences(), p)

	dark := Preferences{Accent: AccentPalette[2], Theme: ThemeDark}
	assert.Equal(t, dark, dark.Normalize())
}
