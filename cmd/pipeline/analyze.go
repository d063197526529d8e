package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"taxdeedflow/pkg/core/analysis"
	"taxdeedflow/pkg/core/recommend"
	"taxdeedflow/pkg/core/report"
	"taxdeedflow/pkg/core/store"
	"taxdeedflow/pkg/core/utils"
)

// batchFile is the on-disk shape of a deal batch: one or more analysis
// requests, HJSON so analysts can annotate their assumptions.
type batchFile struct {
	Deals []analysis.Request `json:"deals"`
}

func analyzeCmd(ctx context.Context) *cobra.Command {
	var (
		outDir         string
		thresholdsPath string
		persist        bool
	)

	cmd := &cobra.Command{
		Use:   "analyze <deal-file>...",
		Short: "Run deal files through the analysis engine and write reports",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			thresholds := recommend.DefaultThresholds()
			if thresholdsPath != "" {
				loaded, err := recommend.LoadThresholds(thresholdsPath)
				if err != nil {
					return err
				}
				thresholds = loaded
			}
			engine := analysis.NewEngine(thresholds)

			var repo *store.RecommendationRepo
			if persist {
				if err := store.InitDB(ctx); err != nil {
					return fmt.Errorf("persistence requested but unavailable: %w", err)
				}
				defer store.Close()
				repo = store.NewRecommendationRepo()
			}

			for _, path := range args {
				if err := runFile(ctx, engine, repo, path, outDir); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "reports", "directory for Markdown reports")
	cmd.Flags().StringVar(&thresholdsPath, "thresholds", "", "YAML verdict threshold overrides")
	cmd.Flags().BoolVar(&persist, "store", false, "save results to the database (needs DATABASE_URL)")
	return cmd
}

func runFile(ctx context.Context, engine *analysis.Engine, repo *store.RecommendationRepo, path, outDir string) error {
	var batch batchFile
	if err := utils.ParseDealFile(path, &batch); err != nil {
		return err
	}

	// A file holding a single bare request is accepted too.
	if len(batch.Deals) == 0 {
		var single analysis.Request
		if err := utils.ParseDealFile(path, &single); err != nil {
			return err
		}
		if single.Property.ParcelNumber == "" && single.Deal.AcquisitionPrice == 0 {
			return fmt.Errorf("%s: no deals found", path)
		}
		batch.Deals = []analysis.Request{single}
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}

	for i, req := range batch.Deals {
		result := engine.Analyze(req)
		rec := result.Recommendation

		log.Info().
			Str("parcel", req.Property.ParcelNumber).
			Str("verdict", string(rec.Verdict)).
			Float64("max_bid", rec.MaxBid).
			Str("exit", string(rec.ExitStrategy)).
			Msg("deal analyzed")

		md := report.Build(result)
		if !utils.ValidateMarkdown(md) {
			log.Warn().Str("parcel", req.Property.ParcelNumber).Msg("report failed markdown validation")
		}

		name := req.Property.ParcelNumber
		if name == "" {
			name = fmt.Sprintf("%s-%d", strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)), i+1)
		}
		reportPath := filepath.Join(outDir, name+".md")
		if err := os.WriteFile(reportPath, []byte(md), 0o644); err != nil {
			return fmt.Errorf("write report: %w", err)
		}

		if repo != nil && req.Property.ParcelNumber != "" {
			if err := repo.Save(ctx, result); err != nil {
				log.Warn().Err(err).Str("parcel", req.Property.ParcelNumber).Msg("save failed")
			}
		}
	}
	return nil
}
