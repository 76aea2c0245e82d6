package screening

import "fmt"

// GeneralClauseKey is the mandatory fallback entry of the clause table.
// Mirrors catalog.GeneralClauseKey; this package never imports the catalog.
const GeneralClauseKey = "General"

// RequiredActions formats one remediation action per negatively answered
// question, preserving question iteration order.
func RequiredActions(missingPolicies []string) []string {
	actions := make([]string, 0, len(missingPolicies))
	for _, policy := range missingPolicies {
		actions = append(actions, fmt.Sprintf(
			"Acción Requerida: Implementar/Formalizar %q antes del primer desembolso.", policy,
		))
	}
	return actions
}

// SuggestedClauses resolves each triggered risk factor to its clause
// template, falling back to the General entry, and unconditionally adds the
// General clause when the inherent score exceeds the floor. The result is
// deduplicated keeping first-insertion order, so identical inputs always
// produce identical output.
func SuggestedClauses(riskFactors []string, inherentScore float64, clauses map[string]string, generalFloor float64) []string {
	var out []string
	seen := make(map[string]struct{})

	add := func(text string) {
		if text == "" {
			return
		}
		if _, dup := seen[text]; dup {
			return
		}
		seen[text] = struct{}{}
		out = append(out, text)
	}

	for _, factor := range riskFactors {
		text, ok := clauses[factor]
		if !ok {
			text = clauses[GeneralClauseKey]
		}
		add(text)
	}

	if inherentScore > generalFloor {
		add(clauses[GeneralClauseKey])
	}

	return out
}
