package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func seedRole(t *testing.T, db *sql.DB) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO clients (id, name, company) VALUES ('cl1', 'Jane', 'Acme')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO roles (id, title, client_id, created_at) VALUES ('r1', 'Engineer', 'cl1', '2025-06-01T00:00:00Z')`)
	require.NoError(t, err)
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openTestDB(t)

	expected := []string{"clients", "talent_advisors", "advisor_roles", "roles", "candidates", "stage_changes"}
	for _, table := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_CreatesIndexes(t *testing.T) {
	db := openTestDB(t)

	expected := []string{
		"idx_roles_client",
		"idx_candidates_role",
		"idx_candidates_stage",
		"idx_stage_changes_candidate",
	}
	for _, idx := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, idx).Scan(&name)
		require.NoError(t, err, "index %s should exist", idx)
	}
}

func TestMigrate_ForeignKeysEnabled(t *testing.T) {
	db := openTestDB(t)

	var fk int
	err := db.QueryRow(`PRAGMA foreign_keys`).Scan(&fk)
	require.NoError(t, err)
	assert.Equal(t, 1, fk, "foreign keys should be enabled")
}

func TestMigrate_RejectsUnknownStage(t *testing.T) {
	db := openTestDB(t)
	seedRole(t, db)

	_, err := db.Exec(`INSERT INTO candidates (id, name, role_id, current_stage, submitted_at, stage_entered_at, last_updated_at)
		VALUES ('c1', 'Ann', 'r1', 'hired', '2025-06-01T00:00:00Z', '2025-06-01T00:00:00Z', '2025-06-01T00:00:00Z')`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CHECK")
}

func TestMigrate_RejectsUnknownPriority(t *testing.T) {
	db := openTestDB(t)
	seedRole(t, db)

	_, err := db.Exec(`INSERT INTO roles (id, title, client_id, priority, created_at) VALUES ('r2', 'x', 'cl1', 'urgent', '2025-06-01T00:00:00Z')`)
	require.Error(t, err)
}

func TestMigrate_CandidateRequiresRole(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO candidates (id, name, role_id, current_stage, submitted_at, last_updated_at)
		VALUES ('c1', 'Ann', 'nope', 'qualified', '2025-06-01T00:00:00Z', '2025-06-01T00:00:00Z')`)
	require.Error(t, err)
}

func TestMigrate_BackfillsStageEnteredAt(t *testing.T) {
	db := openTestDB(t)
	seedRole(t, db)

	_, err := db.Exec(`INSERT INTO candidates (id, name, role_id, current_stage, submitted_at, last_updated_at)
		VALUES ('c1', 'Ann', 'r1', 'qualified', '2025-06-02T09:00:00Z', '2025-06-05T09:00:00Z')`)
	require.NoError(t, err)

	require.NoError(t, Migrate(db))

	var entered string
	require.NoError(t, db.QueryRow(`SELECT stage_entered_at FROM candidates WHERE id = 'c1'`).Scan(&entered))
	assert.Equal(t, "2025-06-02T09:00:00Z", entered)
}

func TestMigrate_CascadeDeletesCandidates(t *testing.T) {
	db := openTestDB(t)
	seedRole(t, db)

	_, err := db.Exec(`INSERT INTO candidates (id, name, role_id, current_stage, submitted_at, stage_entered_at, last_updated_at)
		VALUES ('c1', 'Ann', 'r1', 'qualified', '2025-06-01T00:00:00Z', '2025-06-01T00:00:00Z', '2025-06-01T00:00:00Z')`)
	require.NoError(t, err)

	_, err = db.Exec(`DELETE FROM clients WHERE id = 'cl1'`)
	require.NoError(t, err)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM candidates`).Scan(&n))
	assert.Zero(t, n)
}
