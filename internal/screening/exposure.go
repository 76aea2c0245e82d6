// Package screening implements the decision core: the eligibility gate, the
// weighted exposure aggregator, the dual-axis risk scoring engine and the
// action/clause generator. Everything in this package is a pure function over
// in-memory arguments.
package screening

import "github.com/alterra-fm/screening-cli/internal/model"

// NeutralCountryRisk is the fallback when no country data is usable.
const NeutralCountryRisk = 3.0

// Weighted is anything carrying a revenue percentage.
type Weighted interface {
	Percent() float64
}

// WeightedLocation adapts model.ProjectLocation to Weighted.
type WeightedLocation model.ProjectLocation

func (l WeightedLocation) Percent() float64 { return l.RevenuePercentage }

// WeightedActivity adapts model.ProjectActivity to Weighted.
type WeightedActivity model.ProjectActivity

func (a WeightedActivity) Percent() float64 { return a.RevenuePercentage }

// WeightedPrimary returns the item with the strictly greatest revenue
// percentage. Ties resolve to the first-encountered item. The second return
// is false for an empty list.
func WeightedPrimary[T Weighted](items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	best := items[0]
	for _, it := range items[1:] {
		if it.Percent() > best.Percent() {
			best = it
		}
	}
	return best, true
}

// WeightedCountryRisk computes the percentage-weighted average country risk
// over the given locations. Entries with 0% contribute nothing to either the
// numerator or the denominator; when the denominator is zero (empty list or
// all-zero percentages) the fallback country's risk applies, or the neutral
// default when the fallback is nil.
func WeightedCountryRisk(locations []model.ProjectLocation, fallback *model.Country) float64 {
	var weightedSum, totalPercent float64
	for _, loc := range locations {
		weightedSum += float64(loc.Country.RiskScore) * loc.RevenuePercentage
		totalPercent += loc.RevenuePercentage
	}
	if totalPercent > 0 {
		return weightedSum / totalPercent
	}
	if fallback != nil {
		return float64(fallback.RiskScore)
	}
	return NeutralCountryRisk
}

// TotalPercent sums the revenue percentages of a weighted list.
func TotalPercent[T Weighted](items []T) float64 {
	var sum float64
	for _, it := range items {
		sum += it.Percent()
	}
	return sum
}

// SumWithinTolerance reports whether a percentage sum is acceptably close to
// 100 given a symmetric tolerance band (tolerance 1 accepts 99-101).
func SumWithinTolerance(sum, tolerance float64) bool {
	return sum >= 100-tolerance && sum <= 100+tolerance
}

// Locations wraps a location slice for the generic helpers.
func Locations(locs []model.ProjectLocation) []WeightedLocation {
	out := make([]WeightedLocation, len(locs))
	for i, l := range locs {
		out[i] = WeightedLocation(l)
	}
	return out
}

// Activities wraps an activity slice for the generic helpers.
func Activities(acts []model.ProjectActivity) []WeightedActivity {
	out := make([]WeightedActivity, len(acts))
	for i, a := range acts {
		out[i] = WeightedActivity(a)
	}
	return out
}
