package screening

import (
	"fmt"

	"github.com/alterra-fm/screening-cli/internal/model"
)

// DecisionKind is the outcome of the eligibility gate.
type DecisionKind string

const (
	// DecisionInsufficientData means no sector has been selected yet.
	DecisionInsufficientData DecisionKind = "INSUFFICIENT_DATA"
	// DecisionHardBlocked means the operation cannot proceed; no remedy exists.
	DecisionHardBlocked DecisionKind = "HARD_BLOCKED"
	// DecisionBlockedWithRemedy means the operation may proceed only with a
	// transition plan.
	DecisionBlockedWithRemedy DecisionKind = "BLOCKED_WITH_REMEDY"
	// DecisionRestricted means the operation proceeds under Enhanced Due
	// Diligence.
	DecisionRestricted DecisionKind = "RESTRICTED"
	// DecisionClear means no policy restriction applies.
	DecisionClear DecisionKind = "CLEAR"
)

// Decision is the eligibility verdict for a sector/activity-mix selection.
type Decision struct {
	Kind   DecisionKind `json:"kind"`
	Reason string       `json:"reason,omitempty"`
	// BlockingActivity is set for threshold breaches.
	BlockingActivity string  `json:"blocking_activity,omitempty"`
	BlockingPercent  float64 `json:"blocking_percent,omitempty"`
	Threshold        float64 `json:"threshold,omitempty"`
	// RestrictedFound lists restricted activities present in the mix.
	RestrictedFound []string `json:"restricted_found,omitempty"`
	// Note carries a reviewer-facing remark, e.g. when several restricted
	// activities sit individually below the threshold.
	Note string `json:"note,omitempty"`
}

// Blocked reports whether the decision stops the operation outright.
func (d Decision) Blocked() bool {
	return d.Kind == DecisionHardBlocked || d.Kind == DecisionBlockedWithRemedy
}

// Evaluate runs the eligibility gate over the current sector selection and
// activity mix. The threshold is compared against each restricted activity's
// own percentage, never against their sum; combined exposure across several
// restricted activities is surfaced in Note for reviewers instead.
func Evaluate(sector *model.Sector, activities []model.ProjectActivity) Decision {
	if sector == nil {
		return Decision{Kind: DecisionInsufficientData, Reason: "sin sector seleccionado"}
	}

	if sector.IsExcluded {
		return Decision{
			Kind:   DecisionHardBlocked,
			Reason: exclusionReason(sector),
		}
	}

	pc := sector.PolicyConfig
	if pc == nil {
		return Decision{Kind: DecisionClear}
	}

	restricted := make(map[string]struct{}, len(pc.RestrictedActivities))
	for _, name := range pc.RestrictedActivities {
		restricted[name] = struct{}{}
	}

	var found []string
	var blocking *model.ProjectActivity
	for i, act := range activities {
		if _, ok := restricted[act.Name]; !ok {
			continue
		}
		found = append(found, act.Name)
		if blocking == nil && act.RevenuePercentage > pc.RevenueThreshold {
			blocking = &activities[i]
		}
	}

	if blocking != nil {
		d := Decision{
			BlockingActivity: blocking.Name,
			BlockingPercent:  blocking.RevenuePercentage,
			Threshold:        pc.RevenueThreshold,
			RestrictedFound:  found,
		}
		if pc.RequiresTransitionPlan {
			d.Kind = DecisionBlockedWithRemedy
			d.Reason = fmt.Sprintf(
				"La exposición a %q (%.1f%%) supera el umbral del %.1f%%; se requiere un Plan de Transición para continuar.",
				blocking.Name, blocking.RevenuePercentage, pc.RevenueThreshold,
			)
		} else {
			d.Kind = DecisionHardBlocked
			d.Reason = exclusionReason(sector)
		}
		return d
	}

	if len(found) > 0 {
		d := Decision{
			Kind:            DecisionRestricted,
			Reason:          fmt.Sprintf("Actividad restringida %q presente; requiere Enhanced Due Diligence.", found[0]),
			Threshold:       pc.RevenueThreshold,
			RestrictedFound: found,
		}
		if len(found) > 1 {
			d.Note = fmt.Sprintf(
				"%d actividades restringidas por debajo del umbral individual del %.1f%%; la exposición combinada no se evalúa y queda a criterio del analista.",
				len(found), pc.RevenueThreshold,
			)
		}
		return d
	}

	return Decision{Kind: DecisionClear}
}

func exclusionReason(sector *model.Sector) string {
	if sector.PolicyConfig != nil && sector.PolicyConfig.ExclusionReason != "" {
		return sector.PolicyConfig.ExclusionReason
	}
	return "Operación excluida por política sectorial."
}

// Tips returns the advisory lines the screening assistant shows for a
// decision, mirroring the copilot overlay of the intake wizard.
func Tips(sector *model.Sector, d Decision) []string {
	var tips []string
	switch d.Kind {
	case DecisionHardBlocked:
		if sector != nil && sector.IsExcluded {
			tips = append(tips, "Atención: este sector se encuentra en la Lista de Exclusión Global.")
		} else {
			tips = append(tips, fmt.Sprintf("BLOQUEO: la exposición a %q supera el umbral permitido.", d.BlockingActivity))
		}
	case DecisionBlockedWithRemedy:
		tips = append(tips, fmt.Sprintf("BLOQUEO CONDICIONADO: %q supera el umbral; aporte un Plan de Transición alineado con Net Zero.", d.BlockingActivity))
	case DecisionRestricted:
		tips = append(tips, fmt.Sprintf("Actividad Restringida: %q. Requiere Enhanced Due Diligence.", d.RestrictedFound[0]))
	}
	if d.Note != "" {
		tips = append(tips, d.Note)
	}
	return tips
}
