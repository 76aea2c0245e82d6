package report

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
)

// WriteXLSX exports assessments to an XLSX workbook at path. The first
// sheet carries one row per assessment; a second sheet lists the suggested
// clauses per project for legal review.
func WriteXLSX(path string, results []Assessment) error {
	f := xlsx.NewFile()

	scores, err := f.AddSheet("Evaluaciones")
	if err != nil {
		return eris.Wrap(err, "report: add scores sheet")
	}

	header := scores.AddRow()
	for _, h := range []string{"Proyecto", "Decisión", "Riesgo Inherente", "Calidad de Gestión", "Score Final", "Rating", "Acciones Requeridas"} {
		header.AddCell().SetString(h)
	}

	for _, a := range results {
		row := scores.AddRow()
		row.AddCell().SetString(a.Name)
		row.AddCell().SetString(string(a.Decision.Kind))
		if r := a.Result; r != nil {
			row.AddCell().SetFloatWithFormat(r.InherentRisk, "0.00")
			row.AddCell().SetFloatWithFormat(r.ManagementQuality, "0.00")
			row.AddCell().SetFloatWithFormat(r.FinalScore, "0.00")
			row.AddCell().SetString(string(r.FinalRiskRating))
			row.AddCell().SetInt(len(r.RequiredActions))
		}
	}

	clauses, err := f.AddSheet("Cláusulas")
	if err != nil {
		return eris.Wrap(err, "report: add clauses sheet")
	}
	ch := clauses.AddRow()
	ch.AddCell().SetString("Proyecto")
	ch.AddCell().SetString("Cláusula")
	for _, a := range results {
		if a.Result == nil {
			continue
		}
		for _, clause := range a.Result.SuggestedClauses {
			row := clauses.AddRow()
			row.AddCell().SetString(a.Name)
			row.AddCell().SetString(clause)
		}
	}

	if err := f.Save(path); err != nil {
		return eris.Wrap(err, fmt.Sprintf("report: save %s", path))
	}
	return nil
}
