// Package db provides PostgreSQL storage for analysis history.
package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/resume-analyzer/internal/analyzer"
)

// historyLimit caps how many records a history listing returns.
const historyLimit = 200

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// Migrate creates the analyses table if it does not exist yet.
func (db *DB) Migrate(ctx context.Context) error {
	_, err := db.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS analyses (
			id               UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			resume_filename  TEXT NOT NULL,
			job_description  TEXT NOT NULL,
			overall_score    INTEGER NOT NULL,
			report           JSONB NOT NULL,
			created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("failed to create analyses table: %w", err)
	}
	return nil
}

// SaveAnalysis stores a completed analysis and returns its ID.
func (db *DB) SaveAnalysis(ctx context.Context, resumeFilename, jobDescription string, report *analyzer.Report) (uuid.UUID, error) {
	reportJSON, err := json.Marshal(report)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal report: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO analyses (resume_filename, job_description, overall_score, report)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		resumeFilename, jobDescription, report.OverallScore, reportJSON,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save analysis: %w", err)
	}
	return id, nil
}

// GetAnalysis fetches one stored analysis with its full report. Returns
// (nil, nil) when no record exists.
func (db *DB) GetAnalysis(ctx context.Context, id uuid.UUID) (*AnalysisRecord, error) {
	var (
		rec        AnalysisRecord
		reportJSON []byte
	)
	err := db.pool.QueryRow(ctx,
		`SELECT id, resume_filename, job_description, overall_score, report, created_at
		 FROM analyses WHERE id = $1`,
		id,
	).Scan(&rec.ID, &rec.ResumeFilename, &rec.JobDescription, &rec.OverallScore, &reportJSON, &rec.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}

	rec.Report = &analyzer.Report{}
	if err := json.Unmarshal(reportJSON, rec.Report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report: %w", err)
	}
	return &rec, nil
}

// ListAnalyses returns recent analyses, newest first, without the report
// payloads.
func (db *DB) ListAnalyses(ctx context.Context) ([]AnalysisRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, resume_filename, job_description, overall_score, created_at
		 FROM analyses ORDER BY created_at DESC LIMIT $1`,
		historyLimit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var records []AnalysisRecord
	for rows.Next() {
		var rec AnalysisRecord
		if err := rows.Scan(&rec.ID, &rec.ResumeFilename, &rec.JobDescription, &rec.OverallScore, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan analysis row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read analysis rows: %w", err)
	}
	return records, nil
}

// DeleteAnalysis removes one stored analysis. Returns whether a record was
// actually deleted.
func (db *DB) DeleteAnalysis(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := db.pool.Exec(ctx, `DELETE FROM analyses WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete analysis: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
