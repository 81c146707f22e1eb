package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/twillhq/talentboard/internal/app"
	"github.com/twillhq/talentboard/internal/db"
	"github.com/twillhq/talentboard/internal/importer"
	"github.com/twillhq/talentboard/internal/repository"
)

type importService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewImportService(uow db.UnitOfWork, observers ...UseCaseObserver) app.ImportUseCase {
	return &importService{uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *importService) ImportRoster(ctx context.Context, path string) (*app.ImportResult, error) {
	schema, err := importer.LoadRosterSchema(path)
	if err != nil {
		return nil, fmt.Errorf("loading roster file: %w", err)
	}
	return s.ImportRosterFromSchema(ctx, schema)
}

// ImportRosterFromSchema validates and writes the roster in one transaction.
// Records are upserted by id, so re-importing a file is safe.
func (s *importService) ImportRosterFromSchema(ctx context.Context, schema *importer.RosterSchema) (result *app.ImportResult, err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer observe(ctx, s.observer, "import-roster", startedAt, &err, fields)

	if errs := importer.ValidateRosterSchema(schema); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	roster, err := importer.Convert(schema)
	if err != nil {
		return nil, fmt.Errorf("converting roster: %w", err)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		clients := repository.NewSQLiteClientRepo(tx)
		roles := repository.NewSQLiteRoleRepo(tx)
		advisors := repository.NewSQLiteAdvisorRepo(tx)
		candidates := repository.NewSQLiteCandidateRepo(tx)

		for _, c := range roster.Clients {
			if err := clients.Upsert(ctx, c); err != nil {
				return fmt.Errorf("writing client %q: %w", c.ID, err)
			}
		}
		for _, r := range roster.Roles {
			if err := roles.Upsert(ctx, r); err != nil {
				return fmt.Errorf("writing role %q: %w", r.ID, err)
			}
		}
		for _, a := range roster.Advisors {
			if err := advisors.Upsert(ctx, a); err != nil {
				return fmt.Errorf("writing advisor %q: %w", a.ID, err)
			}
		}
		for _, c := range roster.Candidates {
			if err := candidates.Upsert(ctx, c); err != nil {
				return fmt.Errorf("writing candidate %q: %w", c.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result = &app.ImportResult{
		ClientCount:    len(roster.Clients),
		RoleCount:      len(roster.Roles),
		AdvisorCount:   len(roster.Advisors),
		CandidateCount: len(roster.Candidates),
	}
	fields["clients"] = result.ClientCount
	fields["roles"] = result.RoleCount
	fields["candidates"] = result.CandidateCount
	return result, nil
}

// formatValidationErrors joins every validation error under one header.
func formatValidationErrors(errs []error) error {
	return fmt.Errorf("roster validation failed (%d errors):\n%w", len(errs), errors.Join(errs...))
}
