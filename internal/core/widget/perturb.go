package widget

import (
	"math"
	"math/rand/v2"

	"campaign-dash/internal/core/domain"
)

// Perturb returns a copy of points with Value, Revenue and Users each
// scaled by an independent factor in [1-variance/2, 1+variance/2) and
// rounded. Zero fields stay zero; Conversions is left untouched.
func Perturb(points []domain.SeriesPoint, variance float64, rng *rand.Rand) []domain.SeriesPoint {
	out := make([]domain.SeriesPoint, len(points))
	for i, p := range points {
		p.Value = jitter(p.Value, variance, rng)
		p.Revenue = jitter(p.Revenue, variance, rng)
		p.Users = jitter(p.Users, variance, rng)
		out[i] = p
	}
	return out
}

func jitter(v, variance float64, rng *rand.Rand) float64 {
	if v == 0 {
		return 0
	}
	return math.Round(v * (1 + (rng.Float64()-0.5)*variance))
}

// RandomizeChanges returns a copy of cards with fresh change figures: half
// the time a rise in [0,10), otherwise a drop in [0,5), rounded to one
// decimal. The change type is drawn separately and reads "increase" 70% of
// the time.
func RandomizeChanges(cards []domain.MetricCard, rng *rand.Rand) []domain.MetricCard {
	out := make([]domain.MetricCard, len(cards))
	for i, c := range cards {
		if rng.Float64() > 0.5 {
			c.Change = round1(rng.Float64() * 10)
		} else {
			c.Change = -round1(rng.Float64() * 5)
		}
		if rng.Float64() > 0.3 {
			c.ChangeType = domain.ChangeIncrease
		} else {
			c.ChangeType = domain.ChangeDecrease
		}
		out[i] = c
	}
	return out
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
