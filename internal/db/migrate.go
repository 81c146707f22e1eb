package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := migrateBackfillStageTimestamps(db); err != nil {
		return fmt.Errorf("backfilling candidate stage timestamps: %w", err)
	}
	return nil
}

const stageCheck = `'no_status','qualified','unqualified','fit_and_hold','twill_interview','submitted',
	'rejection_0','intro_request_made','in_client_process','rejection_1','middle_stages',
	'rejection_2','final_stages','verbal_offer','signed_offer'`

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS clients (
		id                TEXT PRIMARY KEY,
		name              TEXT NOT NULL DEFAULT '',
		company           TEXT NOT NULL DEFAULT '',
		status            TEXT NOT NULL DEFAULT 'responding' CHECK(status IN ('responding','not_responsive','deprioritized','paused','at_risk','churned')),
		onboarding_date   TEXT,
		last_contact_date TEXT
	)`,

	`CREATE TABLE IF NOT EXISTS talent_advisors (
		id    TEXT PRIMARY KEY,
		name  TEXT NOT NULL,
		email TEXT NOT NULL DEFAULT '',
		role  TEXT NOT NULL DEFAULT 'ta' CHECK(role IN ('ta','admin'))
	)`,

	`CREATE TABLE IF NOT EXISTS roles (
		id                 TEXT PRIMARY KEY,
		title              TEXT NOT NULL,
		client_id          TEXT NOT NULL REFERENCES clients(id) ON DELETE CASCADE,
		assigned_ta_id     TEXT NOT NULL DEFAULT '',
		priority           TEXT NOT NULL DEFAULT 'low' CHECK(priority IN ('high','low','deprioritized')),
		created_at         TEXT NOT NULL,
		posted_to_platform INTEGER NOT NULL DEFAULT 0,
		estimated_revenue  REAL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_roles_client ON roles(client_id)`,

	`CREATE TABLE IF NOT EXISTS advisor_roles (
		advisor_id TEXT NOT NULL REFERENCES talent_advisors(id) ON DELETE CASCADE,
		role_id    TEXT NOT NULL REFERENCES roles(id) ON DELETE CASCADE,
		PRIMARY KEY (advisor_id, role_id)
	)`,

	`CREATE TABLE IF NOT EXISTS candidates (
		id                  TEXT PRIMARY KEY,
		name                TEXT NOT NULL,
		email               TEXT NOT NULL DEFAULT '',
		role_id             TEXT NOT NULL REFERENCES roles(id) ON DELETE CASCADE,
		source              TEXT NOT NULL DEFAULT 'ta_sourced' CHECK(source IN ('member_referral','member_partner','ta_sourced')),
		referring_member_id TEXT,
		current_stage       TEXT NOT NULL CHECK(current_stage IN (` + stageCheck + `)),
		submitted_at        TEXT NOT NULL,
		stage_entered_at    TEXT NOT NULL DEFAULT '',
		last_updated_at     TEXT NOT NULL,
		alert_cleared       INTEGER NOT NULL DEFAULT 0,
		alert_cleared_at    TEXT
	)`,

	`CREATE INDEX IF NOT EXISTS idx_candidates_role ON candidates(role_id)`,
	`CREATE INDEX IF NOT EXISTS idx_candidates_stage ON candidates(current_stage)`,

	`CREATE TABLE IF NOT EXISTS stage_changes (
		id           TEXT PRIMARY KEY,
		candidate_id TEXT NOT NULL REFERENCES candidates(id) ON DELETE CASCADE,
		from_stage   TEXT NOT NULL,
		to_stage     TEXT NOT NULL CHECK(to_stage IN (` + stageCheck + `)),
		changed_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_stage_changes_candidate ON stage_changes(candidate_id, changed_at)`,

	// Review outcome fields on candidates
	`ALTER TABLE candidates ADD COLUMN disqualification_reason TEXT NOT NULL DEFAULT ''`,
	`ALTER TABLE candidates ADD COLUMN client_feedback TEXT NOT NULL DEFAULT ''`,
	`ALTER TABLE candidates ADD COLUMN member_notified INTEGER NOT NULL DEFAULT 0`,
}

// migrateBackfillStageTimestamps fills stage_entered_at for rows written
// before the column was populated. The stage is assumed entered at
// submission. Idempotent.
func migrateBackfillStageTimestamps(db *sql.DB) error {
	_, err := db.ExecContext(context.Background(),
		`UPDATE candidates SET stage_entered_at = submitted_at WHERE stage_entered_at = ''`)
	if err != nil {
		return fmt.Errorf("updating stage_entered_at: %w", err)
	}
	return nil
}
