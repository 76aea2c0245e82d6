package screening

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alterra-fm/screening-cli/internal/model"
)

func loc(code string, risk int, pct float64) model.ProjectLocation {
	return model.ProjectLocation{
		Country:           model.Country{Code: code, Name: code, RiskScore: risk},
		RevenuePercentage: pct,
	}
}

func act(name string, pct float64) model.ProjectActivity {
	return model.ProjectActivity{Name: name, RevenuePercentage: pct}
}

func TestWeightedPrimary(t *testing.T) {
	tests := []struct {
		name     string
		acts     []model.ProjectActivity
		want     string
		wantNone bool
	}{
		{"empty", nil, "", true},
		{"single", []model.ProjectActivity{act("a", 100)}, "a", false},
		{"strict max", []model.ProjectActivity{act("a", 30), act("b", 70)}, "b", false},
		{"tie keeps first", []model.ProjectActivity{act("a", 50), act("b", 50)}, "a", false},
		{"all zero keeps first", []model.ProjectActivity{act("a", 0), act("b", 0)}, "a", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := WeightedPrimary(Activities(tt.acts))
			if tt.wantNone {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			assert.Equal(t, tt.want, got.Name)
		})
	}
}

func TestWeightedCountryRisk(t *testing.T) {
	spain := &model.Country{Code: "ES", Name: "España", RiskScore: 1}

	tests := []struct {
		name      string
		locations []model.ProjectLocation
		fallback  *model.Country
		want      float64
	}{
		{"weighted average", []model.ProjectLocation{loc("ES", 1, 70), loc("CD", 5, 30)}, nil, 2.2},
		{"single location", []model.ProjectLocation{loc("BR", 3, 100)}, nil, 3.0},
		{"normalizes partial sums", []model.ProjectLocation{loc("ES", 1, 25), loc("CD", 5, 25)}, nil, 3.0},
		{"all zero falls back to country", []model.ProjectLocation{loc("CD", 5, 0)}, spain, 1.0},
		{"empty falls back to country", nil, spain, 1.0},
		{"empty no fallback is neutral", nil, nil, 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WeightedCountryRisk(tt.locations, tt.fallback)
			assert.InDelta(t, tt.want, got, 0.0001)
		})
	}
}

func TestSumWithinTolerance(t *testing.T) {
	assert.True(t, SumWithinTolerance(100, 0))
	assert.True(t, SumWithinTolerance(99, 1))
	assert.True(t, SumWithinTolerance(101, 1))
	assert.False(t, SumWithinTolerance(98.9, 1))
	assert.False(t, SumWithinTolerance(101.1, 1))
}

func TestTotalPercent(t *testing.T) {
	assert.InDelta(t, 0.0, TotalPercent(Activities(nil)), 0.0001)
	assert.InDelta(t, 95.0, TotalPercent(Activities([]model.ProjectActivity{act("a", 60), act("b", 35)})), 0.0001)
}
