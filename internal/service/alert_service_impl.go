package service

import (
	"context"
	"time"

	"github.com/twillhq/talentboard/internal/alerts"
	"github.com/twillhq/talentboard/internal/app"
	"github.com/twillhq/talentboard/internal/repository"
)

type alertService struct {
	reader rosterReader
}

func NewAlertService(
	roles repository.RoleRepo,
	candidates repository.CandidateRepo,
	clients repository.ClientRepo,
	advisors repository.AdvisorRepo,
) app.AlertUseCase {
	return &alertService{reader: rosterReader{roles: roles, candidates: candidates, clients: clients, advisors: advisors}}
}

// DashboardAlerts narrows the roster to the advisor's roles before
// aggregating, so counts never include roles the advisor cannot see.
func (s *alertService) DashboardAlerts(ctx context.Context, req app.DashboardAlertsRequest) (*app.DashboardAlertsResponse, error) {
	now := time.Now()
	if req.Now != nil {
		now = *req.Now
	}

	scope, err := s.reader.load(ctx, req.AdvisorID)
	if err != nil {
		return nil, err
	}
	return &app.DashboardAlertsResponse{
		GeneratedAt: now,
		Alerts:      alerts.Aggregate(scope.Roles, scope.Candidates, scope.Clients, now),
	}, nil
}

func (s *alertService) RoleAlerts(ctx context.Context, roleID string, now time.Time) (*alerts.RoleAlertSummary, error) {
	role, err := s.reader.roles.GetByID(ctx, roleID)
	if err != nil {
		return nil, err
	}
	candidates, err := s.reader.candidates.ListByRole(ctx, roleID)
	if err != nil {
		return nil, err
	}
	summary := alerts.ForRole(*role, candidates, now)
	return &summary, nil
}
