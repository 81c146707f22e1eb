package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/twillhq/talentboard/internal/db"
	"github.com/twillhq/talentboard/internal/domain"
)

// SQLiteRoleRepo implements RoleRepo using a SQLite database.
type SQLiteRoleRepo struct {
	db db.DBTX
}

// NewSQLiteRoleRepo creates a new SQLiteRoleRepo.
func NewSQLiteRoleRepo(conn db.DBTX) *SQLiteRoleRepo {
	return &SQLiteRoleRepo{db: conn}
}

const roleColumns = `id, title, client_id, assigned_ta_id, priority, created_at, posted_to_platform, estimated_revenue`

func (r *SQLiteRoleRepo) Upsert(ctx context.Context, role *domain.Role) error {
	query := `INSERT INTO roles (` + roleColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET title = excluded.title, client_id = excluded.client_id,
		assigned_ta_id = excluded.assigned_ta_id, priority = excluded.priority,
		created_at = excluded.created_at, posted_to_platform = excluded.posted_to_platform,
		estimated_revenue = excluded.estimated_revenue`
	priority := role.Priority
	if priority == "" {
		priority = domain.PriorityLow
	}
	_, err := r.db.ExecContext(ctx, query,
		role.ID,
		role.Title,
		role.ClientID,
		role.AssignedTAID,
		string(priority),
		formatTime(role.CreatedDate),
		boolToInt(role.PostedToPlatform),
		nullableFloat(role.EstimatedRevenue),
	)
	if err != nil {
		return fmt.Errorf("upserting role: %w", err)
	}
	return nil
}

func (r *SQLiteRoleRepo) GetByID(ctx context.Context, id string) (*domain.Role, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+roleColumns+` FROM roles WHERE id = ?`, id)
	role, err := scanRole(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("role %s: %w", id, ErrNotFound)
	}
	return role, err
}

// List returns roles ordered by created_at, then id. Presentation order is
// applied by domain.SortRoles.
func (r *SQLiteRoleRepo) List(ctx context.Context) ([]domain.Role, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+roleColumns+` FROM roles ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("listing roles: %w", err)
	}
	defer rows.Close()

	var roles []domain.Role
	for rows.Next() {
		role, err := scanRole(rows)
		if err != nil {
			return nil, err
		}
		roles = append(roles, *role)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating roles: %w", err)
	}
	return roles, nil
}

func (r *SQLiteRoleRepo) UpdatePriority(ctx context.Context, id string, p domain.RolePriority) error {
	res, err := r.db.ExecContext(ctx, `UPDATE roles SET priority = ? WHERE id = ?`, string(p), id)
	if err != nil {
		return fmt.Errorf("updating role priority: %w", err)
	}
	return requireAffected(res, "role", id)
}

func scanRole(s rowScanner) (*domain.Role, error) {
	var role domain.Role
	var priority, createdAt string
	var posted int
	var revenue sql.NullFloat64
	err := s.Scan(&role.ID, &role.Title, &role.ClientID, &role.AssignedTAID,
		&priority, &createdAt, &posted, &revenue)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning role: %w", err)
	}
	role.Priority = domain.RolePriority(priority)
	role.PostedToPlatform = intToBool(posted)
	if revenue.Valid {
		v := revenue.Float64
		role.EstimatedRevenue = &v
	}
	if role.CreatedDate, err = parseTime("created_at", createdAt); err != nil {
		return nil, err
	}
	return &role, nil
}
