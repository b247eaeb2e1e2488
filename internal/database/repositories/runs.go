package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// ModelRun is one recorded workbook generation.
type ModelRun struct {
	ID         int64
	Ticker     string
	Scenario   string
	OutputPath string
	Price      *float64
	WACC       *float64
	DCFValue   *float64
	CreatedAt  time.Time
}

// RunRepository persists workbook generation history.
type RunRepository struct {
	*BaseRepository
}

func NewRunRepository(db *sql.DB, log zerolog.Logger) *RunRepository {
	return &RunRepository{
		BaseRepository: NewBase(db, log.With().Str("repo", "runs").Logger()),
	}
}

// Record inserts a run and returns its ID.
func (r *RunRepository) Record(run *ModelRun) (int64, error) {
	result, err := r.db.Exec(
		`INSERT INTO model_runs (ticker, scenario, output_path, price, wacc, dcf_value)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.Ticker, run.Scenario, run.OutputPath, run.Price, run.WACC, run.DCFValue,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to record run: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read run id: %w", err)
	}
	return id, nil
}

// Recent returns the latest runs, newest first. A limit of 0 defaults
// to 10.
func (r *RunRepository) Recent(limit int) ([]ModelRun, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := r.db.Query(
		`SELECT id, ticker, scenario, output_path, price, wacc, dcf_value, created_at
		 FROM model_runs ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

// ByTicker returns the latest runs for one ticker, newest first.
func (r *RunRepository) ByTicker(ticker string, limit int) ([]ModelRun, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := r.db.Query(
		`SELECT id, ticker, scenario, output_path, price, wacc, dcf_value, created_at
		 FROM model_runs WHERE ticker = ? ORDER BY created_at DESC, id DESC LIMIT ?`,
		ticker, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

func scanRuns(rows *sql.Rows) ([]ModelRun, error) {
	var runs []ModelRun
	for rows.Next() {
		var run ModelRun
		var createdAt sql.NullString
		if err := rows.Scan(&run.ID, &run.Ticker, &run.Scenario, &run.OutputPath,
			&run.Price, &run.WACC, &run.DCFValue, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		if createdAt.Valid {
			run.CreatedAt = parseTimestamp(createdAt.String)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// parseTimestamp handles the formats SQLite stores timestamps in.
func parseTimestamp(s string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02 15:04:05.999"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
