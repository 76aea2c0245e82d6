package screening

import (
	"strings"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/alterra-fm/screening-cli/internal/model"
)

// ErrIncompleteData is returned when a project lacks the triage data needed
// to compute a rating. Callers should translate it into a "finish step 1
// first" prompt rather than surface it raw.
var ErrIncompleteData = eris.New("screening: datos incompletos para el cálculo")

// Weights holds the configurable scoring constants. Sector dominates the
// inherent blend; the final score averages the two axes unweighted.
type Weights struct {
	Sector  float64 // inherent blend weight for sector risk
	Country float64 // inherent blend weight for weighted country risk
	// GeneralClauseFloor is the inherent score above which the General
	// clause is always suggested.
	GeneralClauseFloor float64
}

// DefaultWeights returns the reference 60/40 blend.
func DefaultWeights() Weights {
	return Weights{Sector: 0.6, Country: 0.4, GeneralClauseFloor: 3.5}
}

// Validate checks that a weight set is internally consistent.
func (w Weights) Validate() error {
	var errs []string
	if w.Sector < 0 || w.Country < 0 {
		errs = append(errs, "weights must be >= 0")
	}
	if sum := w.Sector + w.Country; sum < 0.999 || sum > 1.001 {
		errs = append(errs, "sector and country weights must sum to 1")
	}
	if w.GeneralClauseFloor < 1 || w.GeneralClauseFloor > 5 {
		errs = append(errs, "general clause floor must be within 1-5")
	}
	if len(errs) > 0 {
		return eris.Errorf("screening: weight validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// complianceState carries the intermediate questionnaire tally feeding the
// action and clause generators.
type complianceState struct {
	totalPoints     int
	earnedPoints    int
	missingPolicies []string
	// riskFactors preserves first-insertion order; seen backs set semantics.
	riskFactors []string
	seen        map[string]struct{}
}

// CalculateRisk converts the project triage data and questionnaire answers
// into the dual rating and its derived outputs. Questions without a recorded
// answer are skipped entirely; an all-unanswered questionnaire counts as zero
// compliance, not as a perfect score.
func CalculateRisk(p *model.ProjectState, questions []model.Question, clauses map[string]string, w Weights) (*model.AssessmentResult, error) {
	if p == nil || p.Sector == nil || (p.Country == nil && len(p.Locations) == 0) {
		return nil, ErrIncompleteData
	}

	countryRisk := WeightedCountryRisk(p.Locations, p.Country)
	inherentScore := float64(p.Sector.InherentRisk)*w.Sector + countryRisk*w.Country

	cs := tallyAnswers(questions, p.Answers)

	complianceRatio := 0.0
	if cs.totalPoints > 0 {
		complianceRatio = float64(cs.earnedPoints) / float64(cs.totalPoints)
	}
	// 0% compliance maps to 5, 100% to 1.
	managementScore := 5 - complianceRatio*4

	finalScore := (inherentScore + managementScore) / 2

	result := &model.AssessmentResult{
		ID:                uuid.NewString(),
		InherentRisk:      inherentScore,
		ManagementQuality: managementScore,
		FinalScore:        finalScore,
		FinalRiskRating:   Rate(finalScore),
		RequiredActions:   RequiredActions(cs.missingPolicies),
		SuggestedClauses:  SuggestedClauses(cs.riskFactors, inherentScore, clauses, w.GeneralClauseFloor),
	}

	zap.L().Debug("screening: risk calculated",
		zap.String("assessment_id", result.ID),
		zap.String("sector", p.Sector.ID),
		zap.Float64("country_risk", countryRisk),
		zap.Float64("inherent", inherentScore),
		zap.Float64("management", managementScore),
		zap.Float64("final", finalScore),
		zap.String("rating", string(result.FinalRiskRating)),
	)

	return result, nil
}

// tallyAnswers counts answered questions and collects the negative ones.
func tallyAnswers(questions []model.Question, answers map[string]bool) complianceState {
	cs := complianceState{seen: make(map[string]struct{})}
	for _, q := range questions {
		answer, ok := answers[q.ID]
		if !ok {
			continue
		}
		cs.totalPoints++
		if answer {
			cs.earnedPoints++
			continue
		}
		cs.missingPolicies = append(cs.missingPolicies, stripQuestionMarks(q.Text))
		if _, dup := cs.seen[q.RiskFactor]; !dup {
			cs.seen[q.RiskFactor] = struct{}{}
			cs.riskFactors = append(cs.riskFactors, q.RiskFactor)
		}
	}
	return cs
}

func stripQuestionMarks(text string) string {
	text = strings.ReplaceAll(text, "¿", "")
	return strings.ReplaceAll(text, "?", "")
}

// Rate maps a final score to its categorical rating. Lower bounds are
// inclusive; the scale runs 1.0 (best) to 5.0 (worst).
func Rate(finalScore float64) model.RiskLevel {
	switch {
	case finalScore >= 4:
		return model.RiskCritico
	case finalScore >= 3:
		return model.RiskAlto
	case finalScore >= 2:
		return model.RiskMedio
	default:
		return model.RiskBajo
	}
}
