package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	apianalysis "taxdeedflow/pkg/api/analysis"
	"taxdeedflow/pkg/core/analysis"
	"taxdeedflow/pkg/core/recommend"
	"taxdeedflow/pkg/core/store"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	godotenv.Load()

	// Verdict thresholds: stock table unless an override file exists.
	thresholds := recommend.DefaultThresholds()
	if path := configPath(); path != "" {
		loaded, err := recommend.LoadThresholds(path)
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("threshold config not loaded, using defaults")
		} else {
			thresholds = loaded
			log.Info().Str("path", path).Msg("threshold config loaded")
		}
	}

	engine := analysis.NewEngine(thresholds)

	// Persistence is optional: no DATABASE_URL means the API runs stateless.
	var repo *store.RecommendationRepo
	if os.Getenv("DATABASE_URL") != "" {
		if err := store.InitDB(context.Background()); err != nil {
			log.Warn().Err(err).Msg("database unavailable, continuing without persistence")
		} else {
			repo = store.NewRecommendationRepo()
			defer store.Close()
		}
	}

	handler := apianalysis.NewHandler(engine, repo)
	http.HandleFunc("/api/analyze", handler.HandleAnalyze)
	http.HandleFunc("/api/analyze/report", handler.HandleReport)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8085"
	}
	log.Info().Str("port", port).Msg("analysis API listening")
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func configPath() string {
	if p := os.Getenv("THRESHOLDS_CONFIG"); p != "" {
		return p
	}
	if _, err := os.Stat("config/thresholds.yaml"); err == nil {
		return "config/thresholds.yaml"
	}
	return ""
}
