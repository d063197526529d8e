// Package analysis exposes the deal-analysis engine over HTTP for the
// dashboard frontend.
package analysis

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	core "taxdeedflow/pkg/core/analysis"
	"taxdeedflow/pkg/core/report"
	"taxdeedflow/pkg/core/store"
)

// Handler serves analysis requests. The engine is reusable across requests;
// the repo is optional and nil when persistence is disabled.
type Handler struct {
	engine *core.Engine
	repo   *store.RecommendationRepo
}

// NewHandler wires the handler. Pass a nil repo to disable persistence.
func NewHandler(engine *core.Engine, repo *store.RecommendationRepo) *Handler {
	return &Handler{engine: engine, repo: repo}
}

func allowCORS(w http.ResponseWriter, r *http.Request) bool {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return true
	}
	return false
}

// HandleAnalyze runs one property through the full pipeline.
// POST /api/analyze with an analysis.Request body; responds with the Result.
func (h *Handler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	if allowCORS(w, r) {
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req core.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	started := time.Now()
	result := h.engine.Analyze(req)
	log.Info().
		Str("parcel", req.Property.ParcelNumber).
		Str("verdict", string(result.Recommendation.Verdict)).
		Float64("max_bid", result.Recommendation.MaxBid).
		Dur("elapsed", time.Since(started)).
		Msg("analysis complete")

	if h.repo != nil && req.Property.ParcelNumber != "" {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()
		if err := h.repo.Save(ctx, result); err != nil {
			// Persistence is best-effort; the caller still gets the result.
			log.Warn().Err(err).Str("parcel", req.Property.ParcelNumber).Msg("save failed")
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// HandleReport runs the pipeline and responds with the Markdown report
// instead of JSON. POST /api/analyze/report.
func (h *Handler) HandleReport(w http.ResponseWriter, r *http.Request) {
	if allowCORS(w, r) {
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req core.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result := h.engine.Analyze(req)
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Write([]byte(report.Build(result)))
}
