package service

import (
	"context"
	"fmt"
	"time"

	"github.com/twillhq/talentboard/internal/app"
	"github.com/twillhq/talentboard/internal/calendar"
	"github.com/twillhq/talentboard/internal/db"
	"github.com/twillhq/talentboard/internal/domain"
	"github.com/twillhq/talentboard/internal/pipeline"
	"github.com/twillhq/talentboard/internal/repository"
)

type candidateService struct {
	candidates repository.CandidateRepo
	changes    repository.StageChangeRepo
	uow        db.UnitOfWork
	observer   UseCaseObserver
}

func NewCandidateService(
	candidates repository.CandidateRepo,
	changes repository.StageChangeRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) app.CandidateUseCase {
	return &candidateService{
		candidates: candidates,
		changes:    changes,
		uow:        uow,
		observer:   useCaseObserverOrNoop(observers),
	}
}

func (s *candidateService) Get(ctx context.Context, id string) (*domain.Candidate, error) {
	return s.candidates.GetByID(ctx, id)
}

func (s *candidateService) List(ctx context.Context, roleID string) ([]domain.Candidate, error) {
	if roleID == "" {
		return s.candidates.List(ctx)
	}
	return s.candidates.ListByRole(ctx, roleID)
}

func (s *candidateService) View(ctx context.Context, id string, now time.Time) (*app.CandidateView, error) {
	c, err := s.candidates.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := candidateView(*c, now)
	return &view, nil
}

// candidateView derives display state. Dwell counts business days since the
// stage was entered.
func candidateView(c domain.Candidate, now time.Time) app.CandidateView {
	days := calendar.BusinessDaysSince(c.StageEnteredDate, now)
	return app.CandidateView{
		Candidate:   c,
		DaysInStage: days,
		WaitLevel:   pipeline.WaitingLevel(c.CurrentStage, days),
		Urgent:      pipeline.IsStageUrgent(c.CurrentStage, days),
		Options:     pipeline.NextStageOptions(c.CurrentStage),
	}
}

// StageTransition moves a candidate to stage and records the change, both in
// one transaction. Moving to the current stage still resets the timestamps.
func (s *candidateService) StageTransition(ctx context.Context, id string, stage domain.Stage, now time.Time) (result *app.StageTransitionResult, err error) {
	startedAt := time.Now()
	fields := map[string]any{"candidate_id": id, "to_stage": string(stage)}
	defer observe(ctx, s.observer, "stage-transition", startedAt, &err, fields)

	if !stage.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStage, stage)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txCandidates := repository.NewSQLiteCandidateRepo(tx)
		txChanges := repository.NewSQLiteStageChangeRepo(tx)

		c, err := txCandidates.GetByID(ctx, id)
		if err != nil {
			return err
		}
		from := c.CurrentStage
		c.MoveTo(stage, now)
		if err := txCandidates.Update(ctx, c); err != nil {
			return err
		}

		change := domain.StageChange{CandidateID: c.ID, FromStage: from, ToStage: stage, ChangedAt: now}
		if err := txChanges.Create(ctx, &change); err != nil {
			return err
		}
		fields["from_stage"] = string(from)
		result = &app.StageTransitionResult{Candidate: *c, Change: change}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ClearAlert acknowledges a manual-clear alert. It is idempotent; a repeat
// call moves the clear timestamp forward.
func (s *candidateService) ClearAlert(ctx context.Context, id string, now time.Time) (c *domain.Candidate, err error) {
	startedAt := time.Now()
	defer observe(ctx, s.observer, "clear-alert", startedAt, &err, map[string]any{"candidate_id": id})

	return s.mutate(ctx, id, func(c *domain.Candidate) { c.ClearAlert(now) })
}

func (s *candidateService) Touch(ctx context.Context, id string, now time.Time) (c *domain.Candidate, err error) {
	startedAt := time.Now()
	defer observe(ctx, s.observer, "touch", startedAt, &err, map[string]any{"candidate_id": id})

	return s.mutate(ctx, id, func(c *domain.Candidate) { c.Touch(now) })
}

// mutate runs a read-modify-write of one candidate inside a transaction.
func (s *candidateService) mutate(ctx context.Context, id string, fn func(*domain.Candidate)) (*domain.Candidate, error) {
	var out *domain.Candidate
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txCandidates := repository.NewSQLiteCandidateRepo(tx)
		c, err := txCandidates.GetByID(ctx, id)
		if err != nil {
			return err
		}
		fn(c)
		if err := txCandidates.Update(ctx, c); err != nil {
			return err
		}
		out = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *candidateService) History(ctx context.Context, id string) ([]domain.StageChange, error) {
	if _, err := s.candidates.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.changes.ListByCandidate(ctx, id)
}
