package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/twillhq/talentboard/internal/domain"
)

// FixedNow is the reference clock for roster fixtures (a Wednesday).
var FixedNow = time.Date(2025, 6, 18, 10, 0, 0, 0, time.UTC)

// Client options
type ClientOption func(*domain.Client)

func WithClientStatus(s domain.ClientStatus) ClientOption {
	return func(c *domain.Client) {
		c.Status = s
	}
}

func WithClientID(id string) ClientOption {
	return func(c *domain.Client) {
		c.ID = id
	}
}

func NewTestClient(company string, opts ...ClientOption) *domain.Client {
	c := &domain.Client{
		ID:      uuid.New().String(),
		Name:    company + " Hiring",
		Company: company,
		Status:  domain.ClientResponding,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Role options
type RoleOption func(*domain.Role)

func WithPriority(p domain.RolePriority) RoleOption {
	return func(r *domain.Role) {
		r.Priority = p
	}
}

func WithRoleID(id string) RoleOption {
	return func(r *domain.Role) {
		r.ID = id
	}
}

func WithRevenue(v float64) RoleOption {
	return func(r *domain.Role) {
		r.EstimatedRevenue = &v
	}
}

func WithCreatedDate(t time.Time) RoleOption {
	return func(r *domain.Role) {
		r.CreatedDate = t
	}
}

func WithAssignedTA(id string) RoleOption {
	return func(r *domain.Role) {
		r.AssignedTAID = id
	}
}

func NewTestRole(clientID, title string, opts ...RoleOption) *domain.Role {
	r := &domain.Role{
		ID:          uuid.New().String(),
		Title:       title,
		ClientID:    clientID,
		Priority:    domain.PriorityLow,
		CreatedDate: FixedNow.AddDate(0, -1, 0),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Candidate options
type CandidateOption func(*domain.Candidate)

func WithStage(s domain.Stage) CandidateOption {
	return func(c *domain.Candidate) {
		c.CurrentStage = s
	}
}

func WithCandidateID(id string) CandidateOption {
	return func(c *domain.Candidate) {
		c.ID = id
	}
}

func WithSource(s domain.CandidateSource) CandidateOption {
	return func(c *domain.Candidate) {
		c.Source = s
	}
}

// WithSubmitted sets the submission instant and moves the stage timestamps
// with it, as for a candidate that has not moved since submission.
func WithSubmitted(t time.Time) CandidateOption {
	return func(c *domain.Candidate) {
		c.SubmittedDate = t
		c.StageEnteredDate = t
		c.LastUpdatedDate = t
	}
}

// WithLastUpdated sets both stage timestamps, leaving submission earlier.
func WithLastUpdated(t time.Time) CandidateOption {
	return func(c *domain.Candidate) {
		c.StageEnteredDate = t
		c.LastUpdatedDate = t
	}
}

func WithClearedAt(t time.Time) CandidateOption {
	return func(c *domain.Candidate) {
		c.AlertCleared = true
		c.AlertClearedDate = &t
	}
}

func NewTestCandidate(roleID, name string, opts ...CandidateOption) *domain.Candidate {
	submitted := FixedNow.AddDate(0, 0, -30)
	c := &domain.Candidate{
		ID:               uuid.New().String(),
		Name:             name,
		RoleID:           roleID,
		Source:           domain.SourceTASourced,
		CurrentStage:     domain.StageNoStatus,
		SubmittedDate:    submitted,
		StageEnteredDate: submitted,
		LastUpdatedDate:  submitted,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Advisor options
type AdvisorOption func(*domain.TalentAdvisor)

func AsAdmin() AdvisorOption {
	return func(a *domain.TalentAdvisor) {
		a.Role = domain.UserRoleAdmin
	}
}

func WithAssignedRoles(ids ...string) AdvisorOption {
	return func(a *domain.TalentAdvisor) {
		a.AssignedRoleIDs = ids
	}
}

func NewTestAdvisor(name string, opts ...AdvisorOption) *domain.TalentAdvisor {
	a := &domain.TalentAdvisor{
		ID:   uuid.New().String(),
		Name: name,
		Role: domain.UserRoleTA,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}
