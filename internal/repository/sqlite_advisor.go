package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/twillhq/talentboard/internal/db"
	"github.com/twillhq/talentboard/internal/domain"
)

// SQLiteAdvisorRepo implements AdvisorRepo using a SQLite database.
type SQLiteAdvisorRepo struct {
	db db.DBTX
}

// NewSQLiteAdvisorRepo creates a new SQLiteAdvisorRepo.
func NewSQLiteAdvisorRepo(conn db.DBTX) *SQLiteAdvisorRepo {
	return &SQLiteAdvisorRepo{db: conn}
}

// Upsert writes the advisor row, then replaces its assignments. Callers
// that need atomicity run it inside a UnitOfWork.
func (r *SQLiteAdvisorRepo) Upsert(ctx context.Context, a *domain.TalentAdvisor) error {
	role := a.Role
	if role == "" {
		role = domain.UserRoleTA
	}
	_, err := r.db.ExecContext(ctx, `INSERT INTO talent_advisors (id, name, email, role) VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name, email = excluded.email, role = excluded.role`,
		a.ID, a.Name, a.Email, string(role))
	if err != nil {
		return fmt.Errorf("upserting advisor: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM advisor_roles WHERE advisor_id = ?`, a.ID); err != nil {
		return fmt.Errorf("clearing advisor roles: %w", err)
	}
	for _, roleID := range a.AssignedRoleIDs {
		if _, err := r.db.ExecContext(ctx,
			`INSERT OR IGNORE INTO advisor_roles (advisor_id, role_id) VALUES (?, ?)`, a.ID, roleID); err != nil {
			return fmt.Errorf("assigning role %s: %w", roleID, err)
		}
	}
	return nil
}

func (r *SQLiteAdvisorRepo) GetByID(ctx context.Context, id string) (*domain.TalentAdvisor, error) {
	var a domain.TalentAdvisor
	var role string
	err := r.db.QueryRowContext(ctx, `SELECT id, name, email, role FROM talent_advisors WHERE id = ?`, id).
		Scan(&a.ID, &a.Name, &a.Email, &role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("advisor %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning advisor: %w", err)
	}
	a.Role = domain.UserRole(role)

	assigned, err := r.assignments(ctx)
	if err != nil {
		return nil, err
	}
	a.AssignedRoleIDs = assigned[a.ID]
	return &a, nil
}

func (r *SQLiteAdvisorRepo) List(ctx context.Context) ([]domain.TalentAdvisor, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, email, role FROM talent_advisors ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("listing advisors: %w", err)
	}
	var advisors []domain.TalentAdvisor
	for rows.Next() {
		var a domain.TalentAdvisor
		var role string
		if err := rows.Scan(&a.ID, &a.Name, &a.Email, &role); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning advisor row: %w", err)
		}
		a.Role = domain.UserRole(role)
		advisors = append(advisors, a)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterating advisors: %w", err)
	}
	rows.Close()

	assigned, err := r.assignments(ctx)
	if err != nil {
		return nil, err
	}
	for i := range advisors {
		advisors[i].AssignedRoleIDs = assigned[advisors[i].ID]
	}
	return advisors, nil
}

// assignments loads every advisor's role ids, ordered by role id.
func (r *SQLiteAdvisorRepo) assignments(ctx context.Context) (map[string][]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT advisor_id, role_id FROM advisor_roles ORDER BY advisor_id, role_id`)
	if err != nil {
		return nil, fmt.Errorf("listing advisor roles: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]string)
	for rows.Next() {
		var advisorID, roleID string
		if err := rows.Scan(&advisorID, &roleID); err != nil {
			return nil, fmt.Errorf("scanning advisor role: %w", err)
		}
		out[advisorID] = append(out[advisorID], roleID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating advisor roles: %w", err)
	}
	return out, nil
}
