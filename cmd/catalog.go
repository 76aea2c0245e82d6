package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alterra-fm/screening-cli/internal/report"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the reference data set",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}

		fmt.Fprintln(os.Stdout, "Fondos:")
		for _, f := range cat.Funds {
			fmt.Fprintf(os.Stdout, "  %-14s %s\n", f.ID, f.Name)
		}

		fmt.Fprintln(os.Stdout, "\nSectores:")
		for _, s := range report.SortedSectors(cat) {
			flags := ""
			switch {
			case s.IsExcluded:
				flags = " [excluido]"
			case s.IsRestricted:
				flags = " [restringido]"
			}
			fmt.Fprintf(os.Stdout, "  %-16s riesgo %d  %s%s\n", s.ID, s.InherentRisk, s.Name, flags)
		}

		fmt.Fprintln(os.Stdout, "\nPaíses:")
		for _, c := range report.SortedCountries(cat) {
			fmt.Fprintf(os.Stdout, "  %-4s riesgo %d  %s\n", c.Code, c.RiskScore, c.Name)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}
