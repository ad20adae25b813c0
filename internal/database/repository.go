package database

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/povarna/algo-drills/internal/models"
)

// SaveResult stores one solve result. Saving the same ID twice keeps the
// latest one.
func (db *DB) SaveResult(ctx context.Context, result models.SolveResult) error {
	row, err := toRow(result)
	if err != nil {
		return fmt.Errorf("failed to encode result %s: %w", result.ID, err)
	}

	query := `
	INSERT INTO solve_results (id, problem, answer, window_json, error, duration_ns, solved_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (id) DO UPDATE SET
		problem = EXCLUDED.problem,
		answer = EXCLUDED.answer,
		window_json = EXCLUDED.window_json,
		error = EXCLUDED.error,
		duration_ns = EXCLUDED.duration_ns,
		solved_at = EXCLUDED.solved_at`

	_, err = db.Pool.Exec(ctx, query,
		row.ID, row.Problem, row.Answer, row.Window, row.Error, row.DurationNS, row.SolvedAt)
	if err != nil {
		return fmt.Errorf("failed to save result %s: %w", result.ID, err)
	}

	return nil
}

// RecentResults returns up to limit results for problem, newest first.
func (db *DB) RecentResults(ctx context.Context, problem models.Problem, limit int) ([]models.SolveResult, error) {
	query := `
	SELECT id, problem, answer, window_json, error, duration_ns, solved_at
	FROM solve_results
	WHERE problem = $1
	ORDER BY solved_at DESC
	LIMIT $2`

	rows, err := db.Pool.Query(ctx, query, string(problem), limit)
	if err != nil {
		return nil, fmt.Errorf("history query failed: %w", err)
	}

	defer rows.Close()

	var results []models.SolveResult
	for rows.Next() {
		var row resultRow

		err := rows.Scan(&row.ID, &row.Problem, &row.Answer, &row.Window, &row.Error, &row.DurationNS, &row.SolvedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		result, err := row.toResult()
		if err != nil {
			return nil, fmt.Errorf("failed to decode result %s: %w", row.ID, err)
		}
		results = append(results, result)
	}

	// Rows errors catch
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return results, nil
}

// resultRow is a solve_results row. JSONB columns travel as raw bytes.
type resultRow struct {
	ID         string
	Problem    string
	Answer     []byte
	Window     []byte
	Error      string
	DurationNS int64
	SolvedAt   time.Time
}

func toRow(result models.SolveResult) (resultRow, error) {
	row := resultRow{
		ID:         result.ID,
		Problem:    string(result.Problem),
		Error:      result.Error,
		DurationNS: result.Duration.Nanoseconds(),
		SolvedAt:   result.SolvedAt,
	}

	answer, err := json.Marshal(result.Answer)
	if err != nil {
		return row, err
	}
	row.Answer = answer

	if result.Window != nil {
		window, err := json.Marshal(result.Window)
		if err != nil {
			return row, err
		}
		row.Window = window
	}

	return row, nil
}

func (r resultRow) toResult() (models.SolveResult, error) {
	result := models.SolveResult{
		ID:       r.ID,
		Problem:  models.Problem(r.Problem),
		Error:    r.Error,
		Duration: time.Duration(r.DurationNS),
		SolvedAt: r.SolvedAt,
	}

	if len(r.Answer) > 0 {
		if err := json.Unmarshal(r.Answer, &result.Answer); err != nil {
			return result, err
		}
	}

	if len(r.Window) > 0 {
		var window models.WindowReport
		if err := json.Unmarshal(r.Window, &window); err != nil {
			return result, err
		}
		result.Window = &window
	}

	return result, nil
}
