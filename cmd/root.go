package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alterra-fm/screening-cli/internal/catalog"
	"github.com/alterra-fm/screening-cli/internal/config"
	"github.com/alterra-fm/screening-cli/internal/screening"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "screening-cli",
	Short: "ESG screening and risk rating for fund due diligence",
	Long:  "Screens project proposals against exclusion and restriction policies, scores inherent and management risk, and generates contractual actions and clauses.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

// loadCatalog resolves the reference data set, built-in unless a path is
// configured.
func loadCatalog() (*catalog.Catalog, error) {
	return catalog.Load(cfg.Catalog.Path)
}

func scoringWeights() screening.Weights {
	return screening.Weights{
		Sector:             cfg.Scoring.SectorWeight,
		Country:            cfg.Scoring.CountryWeight,
		GeneralClauseFloor: cfg.Scoring.GeneralClauseFloor,
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
