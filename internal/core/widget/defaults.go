// Package widget holds the dashboard's metric cards and chart series and
// the randomised perturbation that simulates live data.
package widget

import "campaign-dash/internal/core/domain"

// DefaultMetrics returns the headline cards of a fresh dashboard.
func DefaultMetrics() []domain.MetricCard {
	return []domain.MetricCard{
		{Title: "Total Revenue", Value: "$124,563", Change: 12.5, ChangeType: domain.ChangeIncrease, Icon: "DollarSign", Color: "#F64C67"},
		{Title: "Active Users", Value: "8,549", Change: 8.2, ChangeType: domain.ChangeIncrease, Icon: "Users", Color: "#9333ea"},
		{Title: "Conversions", Value: "1,247", Change: -2.1, ChangeType: domain.ChangeDecrease, Icon: "Target", Color: "#0891b2"},
		{Title: "Growth Rate", Value: "15.3%", Change: 5.7, ChangeType: domain.ChangeIncrease, Icon: "Zap", Color: "#ea580c"},
	}
}

// DefaultLine returns the monthly performance trend series.
func DefaultLine() []domain.SeriesPoint {
	return []domain.SeriesPoint{
		{Name: "Jan", Revenue: 4000, Users: 2400, Conversions: 240},
		{Name: "Feb", Revenue: 3000, Users: 1398, Conversions: 221},
		{Name: "Mar", Revenue: 2000, Users: 9800, Conversions: 229},
		{Name: "Apr", Revenue: 2780, Users: 3908, Conversions: 200},
		{Name: "May", Revenue: 1890, Users: 4800, Conversions: 218},
		{Name: "Jun", Revenue: 2390, Users: 3800, Conversions: 250},
		{Name: "Jul", Revenue: 3490, Users: 4300, Conversions: 210},
	}
}

// DefaultBar returns revenue per marketing channel.
func DefaultBar() []domain.SeriesPoint {
	return []domain.SeriesPoint{
		{Name: "Google Ads", Value: 4000},
		{Name: "Facebook", Value: 3000},
		{Name: "Instagram", Value: 2000},
		{Name: "LinkedIn", Value: 2780},
		{Name: "Twitter", Value: 1890},
		{Name: "TikTok", Value: 2390},
	}
}

// DefaultDonut returns the traffic share per device type.
func DefaultDonut() []domain.SeriesPoint {
	return []domain.SeriesPoint{
		{Name: "Desktop", Value: 45},
		{Name: "Mobile", Value: 35},
		{Name: "Tablet", Value: 20},
	}
}
