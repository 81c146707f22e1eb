package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/twillhq/talentboard/internal/db"
	"github.com/twillhq/talentboard/internal/domain"
)

// SQLiteClientRepo implements ClientRepo using a SQLite database.
type SQLiteClientRepo struct {
	db db.DBTX
}

// NewSQLiteClientRepo creates a new SQLiteClientRepo.
func NewSQLiteClientRepo(conn db.DBTX) *SQLiteClientRepo {
	return &SQLiteClientRepo{db: conn}
}

const clientColumns = `id, name, company, status, onboarding_date, last_contact_date`

func (r *SQLiteClientRepo) Upsert(ctx context.Context, c *domain.Client) error {
	query := `INSERT INTO clients (` + clientColumns + `) VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name, company = excluded.company,
		status = excluded.status, onboarding_date = excluded.onboarding_date,
		last_contact_date = excluded.last_contact_date`
	status := c.Status
	if status == "" {
		status = domain.ClientResponding
	}
	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.Name,
		c.Company,
		string(status),
		nullableTimeToString(c.OnboardingDate),
		nullableTimeToString(c.LastContactDate),
	)
	if err != nil {
		return fmt.Errorf("upserting client: %w", err)
	}
	return nil
}

func (r *SQLiteClientRepo) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+clientColumns+` FROM clients WHERE id = ?`, id)
	c, err := scanClient(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("client %s: %w", id, ErrNotFound)
	}
	return c, err
}

func (r *SQLiteClientRepo) List(ctx context.Context) ([]domain.Client, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+clientColumns+` FROM clients ORDER BY company, name, id`)
	if err != nil {
		return nil, fmt.Errorf("listing clients: %w", err)
	}
	defer rows.Close()

	var clients []domain.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating clients: %w", err)
	}
	return clients, nil
}

func scanClient(s rowScanner) (*domain.Client, error) {
	var c domain.Client
	var status string
	var onboarding, lastContact sql.NullString
	if err := s.Scan(&c.ID, &c.Name, &c.Company, &status, &onboarding, &lastContact); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning client: %w", err)
	}
	c.Status = domain.ClientStatus(status)
	c.OnboardingDate = parseNullableTime(onboarding)
	c.LastContactDate = parseNullableTime(lastContact)
	return &c, nil
}
