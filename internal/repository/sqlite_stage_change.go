package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/twillhq/talentboard/internal/db"
	"github.com/twillhq/talentboard/internal/domain"
)

// SQLiteStageChangeRepo implements StageChangeRepo using a SQLite database.
type SQLiteStageChangeRepo struct {
	db db.DBTX
}

// NewSQLiteStageChangeRepo creates a new SQLiteStageChangeRepo.
func NewSQLiteStageChangeRepo(conn db.DBTX) *SQLiteStageChangeRepo {
	return &SQLiteStageChangeRepo{db: conn}
}

// Create appends a stage change. An empty ID is filled with a new UUID.
func (r *SQLiteStageChangeRepo) Create(ctx context.Context, sc *domain.StageChange) error {
	if sc.ID == "" {
		sc.ID = uuid.New().String()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO stage_changes (id, candidate_id, from_stage, to_stage, changed_at) VALUES (?, ?, ?, ?, ?)`,
		sc.ID, sc.CandidateID, string(sc.FromStage), string(sc.ToStage), formatTime(sc.ChangedAt))
	if err != nil {
		return fmt.Errorf("inserting stage change: %w", err)
	}
	return nil
}

// ListByCandidate returns a candidate's stage history, oldest first.
func (r *SQLiteStageChangeRepo) ListByCandidate(ctx context.Context, candidateID string) ([]domain.StageChange, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, candidate_id, from_stage, to_stage, changed_at FROM stage_changes
		WHERE candidate_id = ? ORDER BY changed_at, rowid`, candidateID)
	if err != nil {
		return nil, fmt.Errorf("listing stage changes: %w", err)
	}
	defer rows.Close()

	var out []domain.StageChange
	for rows.Next() {
		var sc domain.StageChange
		var from, to, changedAt string
		if err := rows.Scan(&sc.ID, &sc.CandidateID, &from, &to, &changedAt); err != nil {
			return nil, fmt.Errorf("scanning stage change: %w", err)
		}
		sc.FromStage = domain.Stage(from)
		sc.ToStage = domain.Stage(to)
		if sc.ChangedAt, err = parseTime("changed_at", changedAt); err != nil {
			return nil, err
		}
		out = append(out, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating stage changes: %w", err)
	}
	return out, nil
}
