package main

import (
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alterra-fm/screening-cli/internal/project"
	"github.com/alterra-fm/screening-cli/internal/report"
	"github.com/alterra-fm/screening-cli/internal/screening"
)

var screenCmd = &cobra.Command{
	Use:   "screen <project.yaml>",
	Short: "Run the eligibility gate on a project file",
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

		if sum := screening.TotalPercent(screening.Activities(state.Activities)); len(state.Activities) > 0 && !screening.SumWithinTolerance(sum, cfg.Scoring.PercentTolerance) {
			zap.L().Warn("activity revenue does not decompose to 100%",
				zap.Float64("sum", sum),
			)
		}
		if sum := screening.TotalPercent(screening.Locations(state.Locations)); len(state.Locations) > 0 && !screening.SumWithinTolerance(sum, cfg.Scoring.PercentTolerance) {
			zap.L().Warn("location revenue does not decompose to 100%",
				zap.Float64("sum", sum),
			)
		}

		decision := screening.Evaluate(state.Sector, state.Activities)
		if err := report.WriteDecision(os.Stdout, decision); err != nil {
			return eris.Wrap(err, "write decision")
		}

		for _, tip := range screening.Tips(state.Sector, decision) {
			fmt.Fprintf(os.Stdout, "  · %s\n", tip)
		}

		if decision.Blocked() {
			return eris.Errorf("screen: proyecto no elegible (%s)", decision.Kind)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(screenCmd)
}
