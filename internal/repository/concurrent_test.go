package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twillhq/talentboard/internal/db"
	"github.com/twillhq/talentboard/internal/domain"
	"github.com/twillhq/talentboard/internal/testutil"
)

// TestConcurrentAccess_ReadDuringWrite checks that dashboard reads stay
// consistent while candidates are being written. WAL allows concurrent
// readers with a single writer.
func TestConcurrentAccess_ReadDuringWrite(t *testing.T) {
	database := testutil.NewFileTestDB(t)
	ctx := context.Background()
	_, role := rosterSetup(t, database)
	candRepo := NewSQLiteCandidateRepo(database)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 20; i++ {
			c := testutil.NewTestCandidate(role.ID, fmt.Sprintf("Candidate-%d", i),
				testutil.WithStage(domain.StageQualified))
			if err := candRepo.Upsert(ctx, c); err != nil {
				t.Errorf("writer: upsert candidate %d: %v", i, err)
				return
			}
		}
	}()

	for r := 0; r < 5; r++ {
		wg.Add(1)
		go func(reader int) {
			defer wg.Done()
			for i := 0; i < 10; i++ {
				cands, err := candRepo.ListByRole(ctx, role.ID)
				if err != nil {
					t.Errorf("reader %d: list candidates: %v", reader, err)
					return
				}
				for _, c := range cands {
					if c.ID == "" || c.CurrentStage != domain.StageQualified {
						t.Errorf("reader %d: got half-written candidate %+v", reader, c)
					}
				}
			}
		}(r)
	}

	wg.Wait()

	cands, err := candRepo.ListByRole(ctx, role.ID)
	require.NoError(t, err)
	assert.Len(t, cands, 20)
}

// TestConcurrentAccess_TransitionsKeepHistoryConsistent runs many stage moves
// through transactions and checks that every committed move has exactly one
// history row.
func TestConcurrentAccess_TransitionsKeepHistoryConsistent(t *testing.T) {
	database := testutil.NewFileTestDB(t)
	ctx := context.Background()
	_, role := rosterSetup(t, database)
	uow := db.NewSQLiteUnitOfWork(database)

	cand := testutil.NewTestCandidate(role.ID, "Ann")
	require.NoError(t, NewSQLiteCandidateRepo(database).Upsert(ctx, cand))

	retryTx := func(fn func() error) error {
		const maxRetries = 10
		var err error
		for attempt := 0; attempt < maxRetries; attempt++ {
			if err = fn(); err == nil {
				return nil
			}
			time.Sleep(time.Millisecond * time.Duration(1<<attempt))
		}
		return err
	}

	stages := domain.Stages()
	const workers = 8
	var wg sync.WaitGroup
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := retryTx(func() error {
				return uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
					repo := NewSQLiteCandidateRepo(tx)
					c, err := repo.GetByID(ctx, cand.ID)
					if err != nil {
						return err
					}
					from := c.CurrentStage
					to := stages[i%len(stages)]
					changedAt := testutil.FixedNow.Add(time.Duration(i) * time.Minute)
					c.MoveTo(to, changedAt)
					if err := repo.Update(ctx, c); err != nil {
						return err
					}
					return NewSQLiteStageChangeRepo(tx).Create(ctx, &domain.StageChange{
						CandidateID: c.ID, FromStage: from, ToStage: to, ChangedAt: changedAt,
					})
				})
			})
			if err != nil {
				errCh <- err
			}
		}(i)
	}

	wg.Wait()
	close(errCh)
	for err := range errCh {
		require.NoError(t, err)
	}

	history, err := NewSQLiteStageChangeRepo(database).ListByCandidate(ctx, cand.ID)
	require.NoError(t, err)
	assert.Len(t, history, workers)
}
