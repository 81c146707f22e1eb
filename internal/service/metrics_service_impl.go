package service

import (
	"context"

	"github.com/twillhq/talentboard/internal/app"
	"github.com/twillhq/talentboard/internal/pipeline"
	"github.com/twillhq/talentboard/internal/repository"
)

type metricsService struct {
	reader rosterReader
}

func NewMetricsService(
	roles repository.RoleRepo,
	candidates repository.CandidateRepo,
	clients repository.ClientRepo,
	advisors repository.AdvisorRepo,
) app.MetricsUseCase {
	return &metricsService{reader: rosterReader{roles: roles, candidates: candidates, clients: clients, advisors: advisors}}
}

func (s *metricsService) Summary(ctx context.Context, advisorID string) (*app.MetricsSummary, error) {
	scope, err := s.reader.load(ctx, advisorID)
	if err != nil {
		return nil, err
	}

	active := pipeline.ActiveByRole(scope.Candidates)
	perRole := make([]app.RoleActiveCount, 0, len(scope.Roles))
	for _, role := range scope.Roles {
		perRole = append(perRole, app.RoleActiveCount{
			RoleID:      role.ID,
			RoleTitle:   role.Title,
			ActiveCount: active[role.ID],
		})
	}

	return &app.MetricsSummary{
		MiddleStagesRevenue: pipeline.MiddleStagesRevenue(scope.Roles, scope.Candidates),
		FinalStagesRevenue:  pipeline.FinalStagesRevenue(scope.Roles, scope.Candidates),
		Placements:          pipeline.Placements(scope.Candidates),
		Funnel:              pipeline.FunnelBySource(scope.Candidates),
		ActiveByRole:        perRole,
	}, nil
}
