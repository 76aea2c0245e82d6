package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alterra-fm/screening-cli/internal/model"
	"github.com/alterra-fm/screening-cli/internal/project"
)

var docsCmd = &cobra.Command{
	Use:   "docs <project.yaml>",
	Short: "Show the document checklist for a project",
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

		reqs := model.FilterDocuments(cat.Documents, state.Fund, state.Sector)
		checklist := model.Checklist(reqs, state.Documents)

		fmt.Fprintf(os.Stdout, "Checklist documental (%d/%d obligatorios aportados)\n\n",
			checklist.MandatorySupplied, checklist.Mandatory)

		for _, r := range reqs {
			status := "pendiente"
			if d, ok := state.Documents[r.ID]; ok {
				status = string(d.Status)
			}
			fmt.Fprintf(os.Stdout, "  [%-11s] %-12s %s\n", r.Level, status, r.Title)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(docsCmd)
}
