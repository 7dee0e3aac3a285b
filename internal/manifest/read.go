package manifest

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// FixtureRecord is one recorded fixture joined with its run.
type FixtureRecord struct {
	RunID       string
	CreatedAt   string
	ToolVersion string
	Suite       string
	Path        string
	SHA256      string
	Cases       int
	Params      string
}

// LatestFixture returns the most recent fixture record for a suite.
// UUIDv7 run ids are time-ordered, so recency is decided by run id with
// created_at as the human-readable tiebreak.
func (s *Store) LatestFixture(ctx context.Context, suiteName string) (*FixtureRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT f.run_id, r.created_at, r.tool_version, f.suite, f.path, f.sha256, f.cases, f.params
		FROM fixtures f
		JOIN runs r ON f.run_id = r.id
		WHERE f.suite = ?
		ORDER BY f.run_id COLLATE BINARY DESC
		LIMIT 1
	`, suiteName)

	var rec FixtureRecord
	err := row.Scan(&rec.RunID, &rec.CreatedAt, &rec.ToolVersion, &rec.Suite, &rec.Path, &rec.SHA256, &rec.Cases, &rec.Params)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &NotFoundError{Suite: suiteName}
	}
	if err != nil {
		return nil, fmt.Errorf("latest fixture: %w", err)
	}
	return &rec, nil
}

// RunFixtures returns all fixture records for one run, ordered by suite
// name for deterministic output.
func (s *Store) RunFixtures(ctx context.Context, runID string) ([]FixtureRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT f.run_id, r.created_at, r.tool_version, f.suite, f.path, f.sha256, f.cases, f.params
		FROM fixtures f
		JOIN runs r ON f.run_id = r.id
		WHERE f.run_id = ?
		ORDER BY f.suite COLLATE BINARY ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("query run fixtures: %w", err)
	}
	defer rows.Close()

	records := []FixtureRecord{}
	for rows.Next() {
		var rec FixtureRecord
		if err := rows.Scan(&rec.RunID, &rec.CreatedAt, &rec.ToolVersion, &rec.Suite, &rec.Path, &rec.SHA256, &rec.Cases, &rec.Params); err != nil {
			return nil, fmt.Errorf("scan fixture: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate fixtures: %w", err)
	}
	return records, nil
}

// VerifyFixture compares fixture bytes against the latest recorded digest
// for the suite. Returns the matching record on success, a DriftError
// when the digests differ, and a NotFoundError when the suite has never
// been recorded.
func (s *Store) VerifyFixture(ctx context.Context, suiteName string, content []byte) (*FixtureRecord, error) {
	rec, err := s.LatestFixture(ctx, suiteName)
	if err != nil {
		return nil, err
	}

	computed := HashFixture(content)
	if computed != rec.SHA256 {
		return nil, &DriftError{Suite: suiteName, Recorded: rec.SHA256, Computed: computed}
	}
	return rec, nil
}
