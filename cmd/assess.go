package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alterra-fm/screening-cli/internal/catalog"
	"github.com/alterra-fm/screening-cli/internal/model"
	"github.com/alterra-fm/screening-cli/internal/project"
	"github.com/alterra-fm/screening-cli/internal/report"
	"github.com/alterra-fm/screening-cli/internal/screening"
)

var (
	assessFormat string
	assessOutput string
)

var assessCmd = &cobra.Command{
	Use:   "assess <project.yaml>",
	Short: "Run the full risk assessment on a project file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}

		state, err := project.LoadFile(args[0], cat)
		if err != nil {
			return err
		}

		a, err := assessProject(args[0], state, cat)
		if err != nil {
			return err
		}

		return writeAssessments([]report.Assessment{a}, assessFormat, assessOutput)
	},
}

// assessProject runs the gate and the scoring engine on a resolved project.
func assessProject(path string, state model.ProjectState, cat *catalog.Catalog) (report.Assessment, error) {
	decision := screening.Evaluate(state.Sector, state.Activities)

	questions := model.FilterQuestions(cat.Questions, state.Fund, state.Sector)
	result, err := screening.CalculateRisk(&state, questions, cat.Clauses, scoringWeights())
	if err != nil {
		return report.Assessment{}, eris.Wrapf(err, "assess %s", path)
	}

	zap.L().Info("assessment complete",
		zap.String("project", path),
		zap.Float64("final_score", result.FinalScore),
		zap.String("rating", string(result.FinalRiskRating)),
	)

	return report.Assessment{
		Name:     strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		Decision: decision,
		Result:   result,
	}, nil
}

// writeAssessments renders results in the selected format. A single text
// result goes to stdout in full; table/csv/xlsx accept many.
func writeAssessments(results []report.Assessment, format, output string) error {
	switch format {
	case "text":
		for _, a := range results {
			if err := report.WriteResult(os.Stdout, a); err != nil {
				return eris.Wrap(err, "write result")
			}
		}
		return nil
	case "table":
		return report.WriteTable(os.Stdout, results)
	case "csv":
		out := os.Stdout
		if output != "" {
			f, err := os.Create(output)
			if err != nil {
				return eris.Wrapf(err, "create %s", output)
			}
			defer f.Close()
			out = f
		}
		return report.WriteCSV(out, results)
	case "xlsx":
		if output == "" {
			return eris.New("xlsx format requires --output")
		}
		return report.WriteXLSX(output, results)
	default:
		return eris.Errorf("unknown format %q (text, table, csv, xlsx)", format)
	}
}

func init() {
	assessCmd.Flags().StringVar(&assessFormat, "format", "text", "output format: text, table, csv, xlsx")
	assessCmd.Flags().StringVar(&assessOutput, "output", "", "output file (required for xlsx)")
	rootCmd.AddCommand(assessCmd)
}
