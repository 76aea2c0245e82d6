// Package report renders screening and assessment results for the CLI:
// plain-text tables, CSV and XLSX exports, and collated catalog listings.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/rotisserie/eris"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/alterra-fm/screening-cli/internal/catalog"
	"github.com/alterra-fm/screening-cli/internal/model"
	"github.com/alterra-fm/screening-cli/internal/screening"
)

// Assessment bundles everything the assess command renders for one project.
type Assessment struct {
	Name     string
	Decision screening.Decision
	Result   *model.AssessmentResult
}

// WriteDecision prints an eligibility verdict.
func WriteDecision(w io.Writer, d screening.Decision) error {
	if _, err := fmt.Fprintf(w, "Decisión:  %s\n", d.Kind); err != nil {
		return eris.Wrap(err, "report: write decision")
	}
	if d.Reason != "" {
		fmt.Fprintf(w, "Motivo:    %s\n", d.Reason)
	}
	if d.BlockingActivity != "" {
		fmt.Fprintf(w, "Actividad: %s (%.1f%% > umbral %.1f%%)\n",
			d.BlockingActivity, d.BlockingPercent, d.Threshold)
	}
	if len(d.RestrictedFound) > 0 && d.BlockingActivity == "" {
		fmt.Fprintf(w, "Restringidas presentes: %s\n", strings.Join(d.RestrictedFound, ", "))
	}
	if d.Note != "" {
		fmt.Fprintf(w, "Nota:      %s\n", d.Note)
	}
	return nil
}

// WriteResult prints a full assessment in the single-record layout.
func WriteResult(w io.Writer, a Assessment) error {
	r := a.Result
	if r == nil {
		return WriteDecision(w, a.Decision)
	}
	fmt.Fprintf(w, "Evaluación: %s\n", r.ID)
	if a.Name != "" {
		fmt.Fprintf(w, "Proyecto:   %s\n", a.Name)
	}
	fmt.Fprintf(w, "Riesgo Inherente:   %.2f / 5\n", r.InherentRisk)
	fmt.Fprintf(w, "Calidad de Gestión: %.2f / 5\n", r.ManagementQuality)
	fmt.Fprintf(w, "Rating Final:       %s (%.2f)\n", r.FinalRiskRating, r.FinalScore)

	if len(r.RequiredActions) > 0 {
		fmt.Fprintln(w, "\nAcciones Requeridas:")
		for _, action := range r.RequiredActions {
			fmt.Fprintf(w, "  - %s\n", action)
		}
	}
	if len(r.SuggestedClauses) > 0 {
		fmt.Fprintln(w, "\nCláusulas Sugeridas:")
		for _, clause := range r.SuggestedClauses {
			fmt.Fprintf(w, "  - %s\n", clause)
		}
	}
	return nil
}

// WriteTable prints one row per assessment.
func WriteTable(w io.Writer, results []Assessment) error {
	header := fmt.Sprintf("%-30s %-20s %9s %9s %8s %-8s\n",
		"Proyecto", "Decisión", "Inherente", "Gestión", "Final", "Rating")
	if _, err := fmt.Fprint(w, header); err != nil {
		return eris.Wrap(err, "report: write table header")
	}
	if _, err := fmt.Fprintln(w, strings.Repeat("-", 90)); err != nil {
		return eris.Wrap(err, "report: write table separator")
	}

	for _, a := range results {
		name := a.Name
		if len(name) > 30 {
			name = name[:27] + "..."
		}
		if a.Result == nil {
			fmt.Fprintf(w, "%-30s %-20s %9s %9s %8s %-8s\n", name, a.Decision.Kind, "-", "-", "-", "-")
			continue
		}
		fmt.Fprintf(w, "%-30s %-20s %9.2f %9.2f %8.2f %-8s\n",
			name, a.Decision.Kind,
			a.Result.InherentRisk, a.Result.ManagementQuality, a.Result.FinalScore,
			a.Result.FinalRiskRating)
	}
	return nil
}

// WriteCSV exports assessments as CSV.
func WriteCSV(w io.Writer, results []Assessment) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"project", "decision", "inherent_risk", "management_quality", "final_score", "rating", "required_actions", "suggested_clauses"}
	if err := cw.Write(header); err != nil {
		return eris.Wrap(err, "report: write CSV header")
	}

	for _, a := range results {
		row := []string{a.Name, string(a.Decision.Kind), "", "", "", "", "", ""}
		if r := a.Result; r != nil {
			row[2] = fmt.Sprintf("%.2f", r.InherentRisk)
			row[3] = fmt.Sprintf("%.2f", r.ManagementQuality)
			row[4] = fmt.Sprintf("%.2f", r.FinalScore)
			row[5] = string(r.FinalRiskRating)
			row[6] = strings.Join(r.RequiredActions, " | ")
			row[7] = strings.Join(r.SuggestedClauses, " | ")
		}
		if err := cw.Write(row); err != nil {
			return eris.Wrap(err, "report: write CSV row")
		}
	}
	return nil
}

// SortedSectors returns catalog sectors ordered by display name using
// Spanish collation, so listings match the domain language.
func SortedSectors(cat *catalog.Catalog) []model.Sector {
	out := make([]model.Sector, len(cat.Sectors))
	copy(out, cat.Sectors)
	c := collate.New(language.Spanish)
	sort.SliceStable(out, func(i, j int) bool {
		return c.CompareString(out[i].Name, out[j].Name) < 0
	})
	return out
}

// SortedCountries returns catalog countries ordered by Spanish-collated name.
func SortedCountries(cat *catalog.Catalog) []model.Country {
	out := make([]model.Country, len(cat.Countries))
	copy(out, cat.Countries)
	c := collate.New(language.Spanish)
	sort.SliceStable(out, func(i, j int) bool {
		return c.CompareString(out[i].Name, out[j].Name) < 0
	})
	return out
}
