package screening

import (
	"fmt"
	"strings"

	"github.com/alterra-fm/screening-cli/internal/model"
)

// FeedbackType distinguishes pass from gap feedback.
type FeedbackType string

const (
	FeedbackSuccess FeedbackType = "success"
	FeedbackWarning FeedbackType = "warning"
)

// FeedbackMessage is the copilot commentary shown next to an answered
// question. It is a deterministic template substitution over the question's
// risk factor and the project context; there is no inference involved.
type FeedbackMessage struct {
	Type    FeedbackType `json:"type"`
	Title   string       `json:"title"`
	Message string       `json:"message"`
}

// Feedback builds the copilot message for an answered question. Country risk
// at 4 or above raises the gap severity and turns the proposed remedy into a
// condition precedent to disbursement.
func Feedback(q model.Question, answer bool, p *model.ProjectState) FeedbackMessage {
	countryName := "el país local"
	riskLevel := int(NeutralCountryRisk)
	if p != nil && p.Country != nil {
		countryName = p.Country.Name
		riskLevel = p.Country.RiskScore
	}
	sectorName := "el sector"
	if p != nil && p.Sector != nil {
		sectorName = p.Sector.Name
	}
	fund := model.FundType("")
	if p != nil {
		fund = p.Fund
	}

	if answer {
		return FeedbackMessage{
			Type:  FeedbackSuccess,
			Title: "PASS: Alineación Verificada",
			Message: fmt.Sprintf(
				"El cumplimiento de %s mitiga el riesgo inherente en %s. Al disponer de este mecanismo, el proyecto se alinea con los estándares de %s para %s, reduciendo la necesidad de covenants adicionales en el contrato.",
				q.RiskFactor, countryName, fund, sectorName,
			),
		}
	}

	severity := "moderada"
	resolution := "Compromiso Post-Cierre (Datado a 6 meses)"
	if riskLevel >= 4 {
		severity = "crítica"
		resolution = "Condición Precedente al Desembolso (CP)"
	}

	return FeedbackMessage{
		Type:  FeedbackWarning,
		Title: fmt.Sprintf("GAP DETECTADO: %s", q.RiskFactor),
		Message: fmt.Sprintf(
			"Dada la materialidad %s en %s, la ausencia de este control representa un riesgo operativo significativo. Resolución propuesta: Se incluirá una cláusula de %q obligando a la implementación de %s según mejores prácticas internacionales.",
			severity, countryName, resolution, strings.ToLower(q.RiskFactor),
		),
	}
}
