package app

import (
	"context"
	"time"

	"github.com/twillhq/talentboard/internal/alerts"
	"github.com/twillhq/talentboard/internal/domain"
	"github.com/twillhq/talentboard/internal/importer"
)

type AlertUseCase interface {
	DashboardAlerts(ctx context.Context, req DashboardAlertsRequest) (*DashboardAlertsResponse, error)
	RoleAlerts(ctx context.Context, roleID string, now time.Time) (*alerts.RoleAlertSummary, error)
}

type CandidateUseCase interface {
	Get(ctx context.Context, id string) (*domain.Candidate, error)
	// List returns every candidate, or only roleID's when it is non-empty.
	List(ctx context.Context, roleID string) ([]domain.Candidate, error)
	View(ctx context.Context, id string, now time.Time) (*CandidateView, error)
	StageTransition(ctx context.Context, id string, stage domain.Stage, now time.Time) (*StageTransitionResult, error)
	ClearAlert(ctx context.Context, id string, now time.Time) (*domain.Candidate, error)
	Touch(ctx context.Context, id string, now time.Time) (*domain.Candidate, error)
	History(ctx context.Context, id string) ([]domain.StageChange, error)
}

type RoleUseCase interface {
	List(ctx context.Context, advisorID string) ([]RoleListItem, error)
	UpdatePriority(ctx context.Context, roleID string, priority domain.RolePriority) (*domain.Role, error)
	Overview(ctx context.Context, roleID string, now time.Time) (*RoleOverview, error)
}

type MetricsUseCase interface {
	Summary(ctx context.Context, advisorID string) (*MetricsSummary, error)
}

type ImportUseCase interface {
	ImportRoster(ctx context.Context, path string) (*ImportResult, error)
	ImportRosterFromSchema(ctx context.Context, schema *importer.RosterSchema) (*ImportResult, error)
}
