package domain

import "time"

// Candidate is a person in exactly one role's pipeline.
//
// StageEnteredDate and LastUpdatedDate are not ordered relative to each other.
// Alert rules name the field they read; neither substitutes for the other.
type Candidate struct {
	ID                string
	Name              string
	Email             string
	RoleID            string
	Source            CandidateSource
	ReferringMemberID *string

	CurrentStage     Stage
	SubmittedDate    time.Time
	StageEnteredDate time.Time
	LastUpdatedDate  time.Time

	// Manual alert-clear state. Reset by every stage change.
	AlertCleared     bool
	AlertClearedDate *time.Time

	DisqualificationReason string
	ClientFeedback         string
	MemberNotified         bool
}

// MoveTo sets the current stage and resets the stage timestamps and the
// manual alert-clear state. Any stage may move to any other stage, including
// itself.
func (c *Candidate) MoveTo(stage Stage, now time.Time) {
	c.CurrentStage = stage
	c.StageEnteredDate = now
	c.LastUpdatedDate = now
	c.AlertCleared = false
	c.AlertClearedDate = nil
}

// ClearAlert records an explicit acknowledgment of a manual-clear alert.
// Calling it again moves the clear timestamp forward.
func (c *Candidate) ClearAlert(now time.Time) {
	c.AlertCleared = true
	c.AlertClearedDate = &now
}

// Touch marks the record as updated without changing its stage.
func (c *Candidate) Touch(now time.Time) {
	c.LastUpdatedDate = now
}

// HasClearTimestamp reports whether the manual clear state is usable. A
// cleared flag without a timestamp counts as never cleared.
func (c *Candidate) HasClearTimestamp() bool {
	return c.AlertCleared && c.AlertClearedDate != nil
}

// MovedSinceSubmission reports whether the candidate has changed stage after
// it was submitted.
func (c *Candidate) MovedSinceSubmission() bool {
	return c.StageEnteredDate.After(c.SubmittedDate)
}
