package screening

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alterra-fm/screening-cli/internal/model"
)

func testQuestions() []model.Question {
	return []model.Question{
		{ID: "q1", Text: "¿Dispone de una Política Ambiental formalizada?", RiskFactor: "Política Ambiental"},
		{ID: "q2", Text: "¿Dispone de un Sistema de Gestión Ambiental?", RiskFactor: "Sistema de Gestión Ambiental y Social (SGAS)"},
		{ID: "q3", Text: "¿Cuenta con un canal de denuncias?", RiskFactor: "Canal de Denuncias"},
	}
}

func testClauses() map[string]string {
	return map[string]string{
		"Política Ambiental": "Cláusula: política ambiental.",
		"Sistema de Gestión Ambiental y Social (SGAS)": "Cláusula: SGAS.",
		"Canal de Denuncias": "Cláusula: canal de denuncias.",
		GeneralClauseKey:     "Cláusula general E&S.",
	}
}

func softwareProject(answers map[string]bool) *model.ProjectState {
	return &model.ProjectState{
		Fund:    model.FundFIEXFonpyme,
		Sector:  &model.Sector{ID: "SOFTWARE", Name: "Software", InherentRisk: 2},
		Country: &model.Country{Code: "ES", Name: "España", RiskScore: 1},
		Answers: answers,
	}
}

func TestCalculateRiskIncompleteData(t *testing.T) {
	tests := []struct {
		name    string
		project *model.ProjectState
	}{
		{"nil project", nil},
		{"no sector", &model.ProjectState{Country: &model.Country{Code: "ES", RiskScore: 1}}},
		{"no country nor locations", &model.ProjectState{Sector: &model.Sector{ID: "SOFTWARE", InherentRisk: 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CalculateRisk(tt.project, testQuestions(), testClauses(), DefaultWeights())
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrIncompleteData)
		})
	}
}

func TestCalculateRiskFullCompliance(t *testing.T) {
	p := softwareProject(map[string]bool{"q1": true, "q2": true, "q3": true})

	result, err := CalculateRisk(p, testQuestions(), testClauses(), DefaultWeights())
	require.NoError(t, err)

	// sector 2 * 0.6 + country 1 * 0.4
	assert.InDelta(t, 1.6, result.InherentRisk, 0.0001)
	assert.InDelta(t, 1.0, result.ManagementQuality, 0.0001)
	assert.InDelta(t, 1.3, result.FinalScore, 0.0001)
	assert.Equal(t, model.RiskBajo, result.FinalRiskRating)
	assert.Empty(t, result.RequiredActions)
	assert.Empty(t, result.SuggestedClauses)
	assert.NotEmpty(t, result.ID)
}

func TestCalculateRiskZeroCompliance(t *testing.T) {
	p := softwareProject(map[string]bool{"q1": false, "q2": false, "q3": false})

	result, err := CalculateRisk(p, testQuestions(), testClauses(), DefaultWeights())
	require.NoError(t, err)

	assert.InDelta(t, 5.0, result.ManagementQuality, 0.0001)
	assert.Len(t, result.RequiredActions, 3)
	assert.Len(t, result.SuggestedClauses, 3)
	// Question marks are stripped from the action templates.
	for _, action := range result.RequiredActions {
		assert.NotContains(t, action, "¿")
		assert.NotContains(t, action, "?")
	}
}

func TestCalculateRiskUnansweredIsWorstCase(t *testing.T) {
	// No recorded answers at all: zero total points must yield zero
	// compliance, never a division by zero or a perfect score.
	p := softwareProject(nil)

	result, err := CalculateRisk(p, testQuestions(), testClauses(), DefaultWeights())
	require.NoError(t, err)

	assert.InDelta(t, 5.0, result.ManagementQuality, 0.0001)
	assert.Empty(t, result.RequiredActions)
}

func TestCalculateRiskPartialAnswersSkipUnanswered(t *testing.T) {
	// One yes, one no, one unanswered: ratio is 1/2, not 1/3.
	p := softwareProject(map[string]bool{"q1": true, "q2": false})

	result, err := CalculateRisk(p, testQuestions(), testClauses(), DefaultWeights())
	require.NoError(t, err)

	assert.InDelta(t, 3.0, result.ManagementQuality, 0.0001)
	assert.Len(t, result.RequiredActions, 1)
}

func TestCalculateRiskMonotonicInAnswers(t *testing.T) {
	worse, err := CalculateRisk(softwareProject(map[string]bool{"q1": false, "q2": false, "q3": false}), testQuestions(), testClauses(), DefaultWeights())
	require.NoError(t, err)
	mid, err := CalculateRisk(softwareProject(map[string]bool{"q1": true, "q2": false, "q3": false}), testQuestions(), testClauses(), DefaultWeights())
	require.NoError(t, err)
	best, err := CalculateRisk(softwareProject(map[string]bool{"q1": true, "q2": true, "q3": true}), testQuestions(), testClauses(), DefaultWeights())
	require.NoError(t, err)

	assert.Greater(t, worse.FinalScore, mid.FinalScore)
	assert.Greater(t, mid.FinalScore, best.FinalScore)
}

func TestCalculateRiskUsesWeightedLocations(t *testing.T) {
	p := &model.ProjectState{
		Sector: &model.Sector{ID: "MANUFACTURING", Name: "Manufactura", InherentRisk: 5},
		Locations: []model.ProjectLocation{
			loc("ES", 1, 70),
			loc("CD", 5, 30),
		},
		Answers: map[string]bool{"q1": true, "q2": true, "q3": true},
	}

	result, err := CalculateRisk(p, testQuestions(), testClauses(), DefaultWeights())
	require.NoError(t, err)

	// sector 5 * 0.6 + weighted country 2.2 * 0.4
	assert.InDelta(t, 3.88, result.InherentRisk, 0.0001)
	// Inherent above the floor forces the General clause even at full
	// compliance.
	require.Len(t, result.SuggestedClauses, 1)
	assert.Equal(t, "Cláusula general E&S.", result.SuggestedClauses[0])
}

func TestCalculateRiskLegacyCountryFallback(t *testing.T) {
	// Zero-percent locations defer to the cached primary country instead of
	// skewing the average toward the worst score.
	p := &model.ProjectState{
		Sector:  &model.Sector{ID: "SOFTWARE", InherentRisk: 2},
		Country: &model.Country{Code: "ES", RiskScore: 1},
		Locations: []model.ProjectLocation{
			loc("CD", 5, 0),
		},
		Answers: map[string]bool{"q1": true},
	}

	result, err := CalculateRisk(p, testQuestions(), testClauses(), DefaultWeights())
	require.NoError(t, err)
	assert.InDelta(t, 1.6, result.InherentRisk, 0.0001)
}

func TestRate(t *testing.T) {
	tests := []struct {
		score float64
		want  model.RiskLevel
	}{
		{1.0, model.RiskBajo},
		{1.99, model.RiskBajo},
		{2.0, model.RiskMedio},
		{2.99, model.RiskMedio},
		{3.0, model.RiskAlto},
		{3.99, model.RiskAlto},
		{4.0, model.RiskCritico},
		{5.0, model.RiskCritico},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Rate(tt.score), "score %.2f", tt.score)
	}
}

func TestWeightsValidate(t *testing.T) {
	assert.NoError(t, DefaultWeights().Validate())
	assert.NoError(t, Weights{Sector: 0.5, Country: 0.5, GeneralClauseFloor: 3.5}.Validate())
	assert.Error(t, Weights{Sector: 0.9, Country: 0.4, GeneralClauseFloor: 3.5}.Validate())
	assert.Error(t, Weights{Sector: -0.2, Country: 1.2, GeneralClauseFloor: 3.5}.Validate())
	assert.Error(t, Weights{Sector: 0.6, Country: 0.4, GeneralClauseFloor: 0.5}.Validate())
}
