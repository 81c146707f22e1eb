package domain

import "time"

// StageChange is the audit record written for every stage transition.
type StageChange struct {
	ID          string
	CandidateID string
	FromStage   Stage
	ToStage     Stage
	ChangedAt   time.Time
}
