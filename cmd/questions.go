package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alterra-fm/screening-cli/internal/model"
	"github.com/alterra-fm/screening-cli/internal/project"
	"github.com/alterra-fm/screening-cli/internal/screening"
)

var questionsShowFeedback bool

var questionsCmd = &cobra.Command{
	Use:   "questions <project.yaml>",
	Short: "List the due-diligence questions applicable to a project",
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

		questions := model.FilterQuestions(cat.Questions, state.Fund, state.Sector)
		answered := model.AnsweredCount(questions, state.Answers)

		fmt.Fprintf(os.Stdout, "Cuestionario de Debida Diligencia (%d/%d respondidas)\n\n", answered, len(questions))

		category := ""
		for _, q := range questions {
			if q.Category != category {
				category = q.Category
				fmt.Fprintf(os.Stdout, "[%s]\n", q.CategoryLabel)
			}

			mark := " "
			answer, ok := state.Answers[q.ID]
			switch {
			case ok && answer:
				mark = "✓"
			case ok:
				mark = "✗"
			}
			fmt.Fprintf(os.Stdout, "  %s %s  %s\n", mark, q.ID, q.Text)

			if questionsShowFeedback && ok {
				fb := screening.Feedback(q, answer, &state)
				fmt.Fprintf(os.Stdout, "      [%s] %s\n", fb.Title, fb.Message)
			}
		}

		return nil
	},
}

func init() {
	questionsCmd.Flags().BoolVar(&questionsShowFeedback, "feedback", false, "show copilot feedback for answered questions")
	rootCmd.AddCommand(questionsCmd)
}
