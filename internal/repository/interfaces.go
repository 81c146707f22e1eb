package repository

import (
	"context"

	"github.com/twillhq/talentboard/internal/domain"
)

type ClientRepo interface {
	Upsert(ctx context.Context, c *domain.Client) error
	GetByID(ctx context.Context, id string) (*domain.Client, error)
	List(ctx context.Context) ([]domain.Client, error)
}

type RoleRepo interface {
	Upsert(ctx context.Context, r *domain.Role) error
	GetByID(ctx context.Context, id string) (*domain.Role, error)
	List(ctx context.Context) ([]domain.Role, error)
	UpdatePriority(ctx context.Context, id string, p domain.RolePriority) error
}

type CandidateRepo interface {
	Upsert(ctx context.Context, c *domain.Candidate) error
	GetByID(ctx context.Context, id string) (*domain.Candidate, error)
	List(ctx context.Context) ([]domain.Candidate, error)
	ListByRole(ctx context.Context, roleID string) ([]domain.Candidate, error)
	Update(ctx context.Context, c *domain.Candidate) error
}

type AdvisorRepo interface {
	// Upsert writes the advisor and replaces its role assignments.
	Upsert(ctx context.Context, a *domain.TalentAdvisor) error
	GetByID(ctx context.Context, id string) (*domain.TalentAdvisor, error)
	List(ctx context.Context) ([]domain.TalentAdvisor, error)
}

type StageChangeRepo interface {
	Create(ctx context.Context, sc *domain.StageChange) error
	ListByCandidate(ctx context.Context, candidateID string) ([]domain.StageChange, error)
}
