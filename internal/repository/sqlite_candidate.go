package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/twillhq/talentboard/internal/db"
	"github.com/twillhq/talentboard/internal/domain"
)

// SQLiteCandidateRepo implements CandidateRepo using a SQLite database.
type SQLiteCandidateRepo struct {
	db db.DBTX
}

// NewSQLiteCandidateRepo creates a new SQLiteCandidateRepo.
func NewSQLiteCandidateRepo(conn db.DBTX) *SQLiteCandidateRepo {
	return &SQLiteCandidateRepo{db: conn}
}

const candidateColumns = `id, name, email, role_id, source, referring_member_id, current_stage,
	submitted_at, stage_entered_at, last_updated_at, alert_cleared, alert_cleared_at,
	disqualification_reason, client_feedback, member_notified`

func (r *SQLiteCandidateRepo) Upsert(ctx context.Context, c *domain.Candidate) error {
	query := `INSERT INTO candidates (` + candidateColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name, email = excluded.email,
		role_id = excluded.role_id, source = excluded.source,
		referring_member_id = excluded.referring_member_id, current_stage = excluded.current_stage,
		submitted_at = excluded.submitted_at, stage_entered_at = excluded.stage_entered_at,
		last_updated_at = excluded.last_updated_at, alert_cleared = excluded.alert_cleared,
		alert_cleared_at = excluded.alert_cleared_at,
		disqualification_reason = excluded.disqualification_reason,
		client_feedback = excluded.client_feedback, member_notified = excluded.member_notified`
	source := c.Source
	if source == "" {
		source = domain.SourceTASourced
	}
	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.Name,
		c.Email,
		c.RoleID,
		string(source),
		nullableString(c.ReferringMemberID),
		string(c.CurrentStage),
		formatTime(c.SubmittedDate),
		formatTime(c.StageEnteredDate),
		formatTime(c.LastUpdatedDate),
		boolToInt(c.AlertCleared),
		nullableTimeToString(c.AlertClearedDate),
		c.DisqualificationReason,
		c.ClientFeedback,
		boolToInt(c.MemberNotified),
	)
	if err != nil {
		return fmt.Errorf("upserting candidate: %w", err)
	}
	return nil
}

// Update writes the mutable pipeline state of an existing candidate.
func (r *SQLiteCandidateRepo) Update(ctx context.Context, c *domain.Candidate) error {
	query := `UPDATE candidates SET current_stage = ?, stage_entered_at = ?, last_updated_at = ?,
		alert_cleared = ?, alert_cleared_at = ?, disqualification_reason = ?, client_feedback = ?,
		member_notified = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		string(c.CurrentStage),
		formatTime(c.StageEnteredDate),
		formatTime(c.LastUpdatedDate),
		boolToInt(c.AlertCleared),
		nullableTimeToString(c.AlertClearedDate),
		c.DisqualificationReason,
		c.ClientFeedback,
		boolToInt(c.MemberNotified),
		c.ID,
	)
	if err != nil {
		return fmt.Errorf("updating candidate: %w", err)
	}
	return requireAffected(res, "candidate", c.ID)
}

func (r *SQLiteCandidateRepo) GetByID(ctx context.Context, id string) (*domain.Candidate, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+candidateColumns+` FROM candidates WHERE id = ?`, id)
	c, err := scanCandidate(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("candidate %s: %w", id, ErrNotFound)
	}
	return c, err
}

func (r *SQLiteCandidateRepo) List(ctx context.Context) ([]domain.Candidate, error) {
	return r.list(ctx, `SELECT `+candidateColumns+` FROM candidates ORDER BY submitted_at, id`)
}

func (r *SQLiteCandidateRepo) ListByRole(ctx context.Context, roleID string) ([]domain.Candidate, error) {
	return r.list(ctx, `SELECT `+candidateColumns+` FROM candidates WHERE role_id = ? ORDER BY submitted_at, id`, roleID)
}

func (r *SQLiteCandidateRepo) list(ctx context.Context, query string, args ...any) ([]domain.Candidate, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing candidates: %w", err)
	}
	defer rows.Close()

	var out []domain.Candidate
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating candidates: %w", err)
	}
	return out, nil
}

func scanCandidate(s rowScanner) (*domain.Candidate, error) {
	var c domain.Candidate
	var source, stage, submitted, entered, updated string
	var referrer, clearedAt sql.NullString
	var cleared, notified int

	err := s.Scan(
		&c.ID, &c.Name, &c.Email, &c.RoleID,
		&source, &referrer, &stage,
		&submitted, &entered, &updated,
		&cleared, &clearedAt,
		&c.DisqualificationReason, &c.ClientFeedback, &notified,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning candidate: %w", err)
	}

	c.Source = domain.CandidateSource(source)
	c.CurrentStage = domain.Stage(stage)
	if referrer.Valid {
		v := referrer.String
		c.ReferringMemberID = &v
	}
	c.AlertCleared = intToBool(cleared)
	c.AlertClearedDate = parseNullableTime(clearedAt)
	c.MemberNotified = intToBool(notified)

	if c.SubmittedDate, err = parseTime("submitted_at", submitted); err != nil {
		return nil, err
	}
	if c.StageEnteredDate, err = parseTime("stage_entered_at", entered); err != nil {
		return nil, err
	}
	if c.LastUpdatedDate, err = parseTime("last_updated_at", updated); err != nil {
		return nil, err
	}
	return &c, nil
}
