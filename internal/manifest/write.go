package manifest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/roach88/lanegen/internal/suite"
)

// Run identifies one generation run.
type Run struct {
	ID          string
	CreatedAt   string // RFC 3339 UTC
	ToolVersion string
}

// BeginRun inserts a new run record. The id is a UUIDv7, so run ids sort
// by creation time.
func (s *Store) BeginRun(ctx context.Context, toolVersion string) (*Run, error) {
	run := &Run{
		ID:          uuid.Must(uuid.NewV7()).String(),
		CreatedAt:   time.Now().UTC().Format(time.RFC3339Nano),
		ToolVersion: toolVersion,
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, created_at, tool_version)
		VALUES (?, ?, ?)
	`, run.ID, run.CreatedAt, run.ToolVersion)
	if err != nil {
		return nil, fmt.Errorf("begin run: %w", err)
	}
	return run, nil
}

// RecordFixture inserts one fixture row for a run. The digest is computed
// over the emitted bytes, the suite parameters are serialized to
// canonical JSON so identical suites produce identical params blobs.
//
// Uses ON CONFLICT DO NOTHING for idempotency within a run.
func (s *Store) RecordFixture(ctx context.Context, runID string, sp suite.Spec, path string, content []byte, cases int) error {
	params, err := MarshalCanonical(specParams(sp))
	if err != nil {
		return fmt.Errorf("record fixture: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO fixtures (run_id, suite, path, sha256, cases, params)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(run_id, suite) DO NOTHING
	`, runID, sp.Name, path, HashFixture(content), cases, string(params))
	if err != nil {
		return fmt.Errorf("record fixture: %w", err)
	}
	return nil
}

// HashFixture computes the hex SHA-256 digest of fixture bytes.
func HashFixture(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}

// specParams flattens a suite spec into plain maps for canonical JSON.
func specParams(sp suite.Spec) map[string]any {
	return map[string]any{
		"name":       sp.Name,
		"lane":       sp.Lane,
		"family":     string(sp.Family),
		"max_finite": sp.MaxFinite,
		"unary_ops":  sp.UnaryOps,
		"binary_ops": sp.BinaryOps,
		"floats":     sp.Floats,
		"literals":   sp.Literals,
		"nans":       sp.NaNs,
	}
}
