package main

import (
	"os/signal"
	"sort"
	"sync"
	"sync/atomic"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/alterra-fm/screening-cli/internal/project"
	"github.com/alterra-fm/screening-cli/internal/report"
)

var (
	batchFormat string
	batchOutput string
)

var batchCmd = &cobra.Command{
	Use:   "batch <project.yaml>...",
	Short: "Assess many project files concurrently",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		cat, err := loadCatalog()
		if err != nil {
			return err
		}

		zap.L().Info("processing batch",
			zap.Int("projects", len(args)),
			zap.Int("concurrency", cfg.Batch.MaxConcurrent),
		)

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(cfg.Batch.MaxConcurrent)

		var (
			mu      sync.Mutex
			results []report.Assessment
			failed  atomic.Int64
		)

		for _, path := range args {
			path := path
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}

				state, err := project.LoadFile(path, cat)
				if err != nil {
					failed.Add(1)
					zap.L().Error("load project failed", zap.String("project", path), zap.Error(err))
					return nil // don't abort batch on individual failure
				}

				a, err := assessProject(path, state, cat)
				if err != nil {
					failed.Add(1)
					zap.L().Error("assessment failed", zap.String("project", path), zap.Error(err))
					return nil
				}

				mu.Lock()
				results = append(results, a)
				mu.Unlock()
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			return eris.Wrap(err, "batch processing")
		}

		sort.Slice(results, func(i, j int) bool { return results[i].Name < results[j].Name })

		zap.L().Info("batch complete",
			zap.Int("succeeded", len(results)),
			zap.Int64("failed", failed.Load()),
		)

		return writeAssessments(results, batchFormat, batchOutput)
	},
}

func init() {
	batchCmd.Flags().StringVar(&batchFormat, "format", "table", "output format: text, table, csv, xlsx")
	batchCmd.Flags().StringVar(&batchOutput, "output", "", "output file (required for xlsx)")
	rootCmd.AddCommand(batchCmd)
}
