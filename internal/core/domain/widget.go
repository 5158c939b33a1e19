package domain

// ChangeType tells whether a metric moved up or down since the last period.
type ChangeType string

const (
	ChangeIncrease ChangeType = "increase"
	ChangeDecrease ChangeType = "decrease"
)

// MetricCard is a headline number shown at the top of the dashboard. Color
// is the hex colour of the card's icon.
type MetricCard struct {
	Title      string     `json:"title"`
	Value      string     `json:"value"`
	Change     float64    `json:"change"`
	ChangeType ChangeType `json:"changeType"`
	Icon       string     `json:"icon"`
	Color      string     `json:"color"`
}

// SeriesPoint is one point of a chart series. Line charts use Revenue,
// Users and Conversions; bar and donut charts use Value.
type SeriesPoint struct {
	Name        string  `json:"name"`
	Value       float64 `json:"value,omitempty"`
	Revenue     float64 `json:"revenue,omitempty"`
	Users       float64 `json:"users,omitempty"`
	Conversions float64 `json:"conversions,omitempty"`
}
