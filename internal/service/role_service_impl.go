package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/twillhq/talentboard/internal/alerts"
	"github.com/twillhq/talentboard/internal/app"
	"github.com/twillhq/talentboard/internal/db"
	"github.com/twillhq/talentboard/internal/domain"
	"github.com/twillhq/talentboard/internal/pipeline"
	"github.com/twillhq/talentboard/internal/repository"
)

type roleService struct {
	reader   rosterReader
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewRoleService(
	roles repository.RoleRepo,
	candidates repository.CandidateRepo,
	clients repository.ClientRepo,
	advisors repository.AdvisorRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) app.RoleUseCase {
	return &roleService{
		reader:   rosterReader{roles: roles, candidates: candidates, clients: clients, advisors: advisors},
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

// List returns the advisor's roles, high priority first, then newest.
func (s *roleService) List(ctx context.Context, advisorID string) ([]app.RoleListItem, error) {
	scope, err := s.reader.load(ctx, advisorID)
	if err != nil {
		return nil, err
	}
	domain.SortRoles(scope.Roles)
	names := clientNames(scope.Clients)

	items := make([]app.RoleListItem, 0, len(scope.Roles))
	for _, role := range scope.Roles {
		own := pipeline.ForRole(scope.Candidates, role.ID)
		items = append(items, app.RoleListItem{
			Role:        role,
			ClientName:  names[role.ClientID],
			ActiveCount: pipeline.ActiveCount(own),
			TotalCount:  len(own),
			Probability: pipeline.EstimateProbability(own),
		})
	}
	return items, nil
}

func (s *roleService) UpdatePriority(ctx context.Context, roleID string, priority domain.RolePriority) (role *domain.Role, err error) {
	startedAt := time.Now()
	defer observe(ctx, s.observer, "update-priority", startedAt, &err,
		map[string]any{"role_id": roleID, "priority": string(priority)})

	if _, err = domain.ParsePriority(string(priority)); err != nil {
		return nil, err
	}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txRoles := repository.NewSQLiteRoleRepo(tx)
		if err := txRoles.UpdatePriority(ctx, roleID, priority); err != nil {
			return err
		}
		role, err = txRoles.GetByID(ctx, roleID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return role, nil
}

func (s *roleService) Overview(ctx context.Context, roleID string, now time.Time) (*app.RoleOverview, error) {
	role, err := s.reader.roles.GetByID(ctx, roleID)
	if err != nil {
		return nil, err
	}
	candidates, err := s.reader.candidates.ListByRole(ctx, roleID)
	if err != nil {
		return nil, err
	}

	var clientName string
	client, err := s.reader.clients.GetByID(ctx, role.ClientID)
	switch {
	case err == nil:
		clientName = client.DisplayName()
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("loading client for role %s: %w", roleID, err)
	}

	views := make([]app.CandidateView, 0, len(candidates))
	for _, c := range candidates {
		views = append(views, candidateView(c, now))
	}

	return &app.RoleOverview{
		Role:        *role,
		ClientName:  clientName,
		StageCounts: pipeline.StageCounts(candidates),
		ActiveCount: pipeline.ActiveCount(candidates),
		Probability: pipeline.EstimateProbability(candidates),
		Candidates:  views,
		Alerts:      alerts.ForRole(*role, candidates, now),
	}, nil
}
