package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alterra-fm/screening-cli/internal/catalog"
	"github.com/alterra-fm/screening-cli/internal/model"
)

func TestLoadFile(t *testing.T) {
	cat := catalog.Default()
	path := filepath.Join(t.TempDir(), "project.yaml")
	data := `
fund: FOCO
sector: ENERGY_FOSSIL
locations:
  - country: ES
    revenue_percentage: 70
  - country: CD
    revenue_percentage: 30
activities:
  - name: Generación Térmica (Carbón)
    revenue_percentage: 10
  - name: Ciclo Combinado (Gas)
    revenue_percentage: 90
answers:
  dnsh_water_management: true
  dnsh_circular_waste: false
social_challenge: Transición energética justa
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	s, err := LoadFile(path, cat)
	require.NoError(t, err)

	assert.Equal(t, model.FundFOCO, s.Fund)
	require.NotNil(t, s.Sector)
	assert.Equal(t, "ENERGY_FOSSIL", s.Sector.ID)

	// The cached primaries come out of the resolved decomposition.
	require.NotNil(t, s.Country)
	assert.Equal(t, "ES", s.Country.Code)
	assert.Equal(t, "Ciclo Combinado (Gas)", s.Activity)

	assert.True(t, s.Answers["dnsh_water_management"])
	assert.False(t, s.Answers["dnsh_circular_waste"])
	assert.Equal(t, "Transición energética justa", s.SocialChallenge)
}

func TestResolveUnknownReferences(t *testing.T) {
	cat := catalog.Default()

	tests := []struct {
		name string
		file File
		want string
	}{
		{"unknown fund", File{Fund: "NOPE"}, "unknown fund"},
		{"unknown sector", File{Fund: "FOCO", Sector: "NOPE"}, "unknown sector"},
		{
			"unknown country",
			File{Fund: "FOCO", Sector: "SOFTWARE", Locations: []FileLocation{{Country: "XX", RevenuePercentage: 100}}},
			"unknown country",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.file, cat)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"), catalog.Default())
	assert.Error(t, err)
}
