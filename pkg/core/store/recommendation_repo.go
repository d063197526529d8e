package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"taxdeedflow/pkg/core/analysis"
	"taxdeedflow/pkg/core/recommend"
)

// RecommendationRepo stores finished analysis results, one row per parcel,
// upserted so re-running a property replaces the stale result.
//
// Schema assumption (migrations are managed elsewhere):
//
//	CREATE TABLE IF NOT EXISTS property_analysis (
//	  parcel_number TEXT PRIMARY KEY,
//	  analysis_id   TEXT NOT NULL,
//	  verdict       TEXT NOT NULL,
//	  max_bid       NUMERIC NOT NULL,
//	  result_json   JSONB NOT NULL,
//	  updated_at    TIMESTAMPTZ NOT NULL
//	);
type RecommendationRepo struct{}

// NewRecommendationRepo creates a repository instance.
func NewRecommendationRepo() *RecommendationRepo {
	return &RecommendationRepo{}
}

// Save upserts the full result keyed by parcel number. The verdict and max
// bid get their own columns so downstream queries can filter without
// unpacking the JSONB blob.
func (r *RecommendationRepo) Save(ctx context.Context, res *analysis.Result) error {
	p := Pool()
	if p == nil {
		return fmt.Errorf("database pool not initialized")
	}

	payload, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("marshal analysis result: %w", err)
	}

	query := `
		INSERT INTO property_analysis (parcel_number, analysis_id, verdict, max_bid, result_json, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (parcel_number)
		DO UPDATE SET
			analysis_id = EXCLUDED.analysis_id,
			verdict = EXCLUDED.verdict,
			max_bid = EXCLUDED.max_bid,
			result_json = EXCLUDED.result_json,
			updated_at = EXCLUDED.updated_at;
	`

	_, err = p.Exec(ctx, query,
		res.Property.ParcelNumber,
		res.AnalysisID,
		string(res.Recommendation.Verdict),
		res.Recommendation.MaxBid,
		payload,
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("save analysis for parcel %s: %w", res.Property.ParcelNumber, err)
	}
	return nil
}

// Load retrieves the stored result for a parcel.
func (r *RecommendationRepo) Load(ctx context.Context, parcelNumber string) (*analysis.Result, error) {
	p := Pool()
	if p == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}

	var payload []byte
	row := p.QueryRow(ctx,
		`SELECT result_json FROM property_analysis WHERE parcel_number = $1`, parcelNumber)
	if err := row.Scan(&payload); err != nil {
		return nil, fmt.Errorf("load analysis for parcel %s: %w", parcelNumber, err)
	}

	var res analysis.Result
	if err := json.Unmarshal(payload, &res); err != nil {
		return nil, fmt.Errorf("unmarshal analysis for parcel %s: %w", parcelNumber, err)
	}
	return &res, nil
}

// ListByVerdict returns the parcels carrying a given verdict, newest first.
func (r *RecommendationRepo) ListByVerdict(ctx context.Context, verdict recommend.Verdict, limit int) ([]string, error) {
	p := Pool()
	if p == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}
	if limit <= 0 {
		limit = 50
	}

	rows, err := p.Query(ctx,
		`SELECT parcel_number FROM property_analysis WHERE verdict = $1 ORDER BY updated_at DESC LIMIT $2`,
		string(verdict), limit)
	if err != nil {
		return nil, fmt.Errorf("list by verdict %s: %w", verdict, err)
	}
	defer rows.Close()

	var parcels []string
	for rows.Next() {
		var parcel string
		if err := rows.Scan(&parcel); err != nil {
			return nil, fmt.Errorf("scan parcel: %w", err)
		}
		parcels = append(parcels, parcel)
	}
	return parcels, rows.Err()
}
