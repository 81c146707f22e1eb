package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twillhq/talentboard/internal/domain"
	"github.com/twillhq/talentboard/internal/pipeline"
	"github.com/twillhq/talentboard/internal/testutil"
)

func TestStageTransition_ResetsStateAndRecordsHistory(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	_, role := h.seedBasicRole(t)
	c := h.seedCandidate(t, testutil.NewTestCandidate(role.ID, "Ann",
		testutil.WithStage(domain.StageInClientProcess),
		testutil.WithLastUpdated(testutil.FixedNow.AddDate(0, 0, -10)),
		testutil.WithClearedAt(testutil.FixedNow.AddDate(0, 0, -2)),
	))

	res, err := h.candidateSvc.StageTransition(ctx, c.ID, domain.StageMiddleStages, testutil.FixedNow)
	require.NoError(t, err)
	assert.Equal(t, domain.StageInClientProcess, res.Change.FromStage)
	assert.Equal(t, domain.StageMiddleStages, res.Change.ToStage)

	got, err := h.candidates.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StageMiddleStages, got.CurrentStage)
	assert.True(t, testutil.FixedNow.Equal(got.StageEnteredDate))
	assert.True(t, testutil.FixedNow.Equal(got.LastUpdatedDate))
	assert.False(t, got.AlertCleared)
	assert.Nil(t, got.AlertClearedDate)

	history, err := h.candidateSvc.History(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, domain.StageMiddleStages, history[0].ToStage)
}

func TestStageTransition_SameStageStillResets(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	_, role := h.seedBasicRole(t)
	c := h.seedCandidate(t, testutil.NewTestCandidate(role.ID, "Ann",
		testutil.WithStage(domain.StageQualified),
		testutil.WithLastUpdated(testutil.FixedNow.AddDate(0, 0, -7))))

	res, err := h.candidateSvc.StageTransition(ctx, c.ID, domain.StageQualified, testutil.FixedNow)
	require.NoError(t, err)
	assert.True(t, testutil.FixedNow.Equal(res.Candidate.StageEnteredDate))
}

func TestStageTransition_Errors(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	_, role := h.seedBasicRole(t)
	c := h.seedCandidate(t, testutil.NewTestCandidate(role.ID, "Ann"))

	_, err := h.candidateSvc.StageTransition(ctx, "missing", domain.StageQualified, testutil.FixedNow)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = h.candidateSvc.StageTransition(ctx, c.ID, domain.Stage("hired"), testutil.FixedNow)
	assert.ErrorIs(t, err, domain.ErrInvalidStage)

	history, err := h.candidateSvc.History(ctx, c.ID)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestStageTransition_RollsBackWhenHistoryWriteFails(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	_, role := h.seedBasicRole(t)
	c := h.seedCandidate(t, testutil.NewTestCandidate(role.ID, "Ann", testutil.WithStage(domain.StageQualified)))

	failing := &testutil.FailOnNthExecUoW{DB: h.db, FailOn: 2}
	svc := NewCandidateService(h.candidates, h.changes, failing)

	_, err := svc.StageTransition(ctx, c.ID, domain.StageTwillInterview, testutil.FixedNow)
	require.Error(t, err)
	assert.True(t, errors.Is(err, testutil.ErrInjected))

	got, err := h.candidates.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StageQualified, got.CurrentStage, "candidate update rolled back")
	history, err := h.changes.ListByCandidate(ctx, c.ID)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestClearAlert_IdempotentAndPersists(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	_, role := h.seedBasicRole(t)
	c := h.seedCandidate(t, testutil.NewTestCandidate(role.ID, "Ann", testutil.WithStage(domain.StageFinalStages)))

	_, err := h.candidateSvc.ClearAlert(ctx, c.ID, testutil.FixedNow)
	require.NoError(t, err)
	later := testutil.FixedNow.Add(2 * time.Hour)
	got, err := h.candidateSvc.ClearAlert(ctx, c.ID, later)
	require.NoError(t, err)
	assert.True(t, got.AlertCleared)
	assert.True(t, later.Equal(*got.AlertClearedDate))

	stored, err := h.candidates.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, later.Equal(*stored.AlertClearedDate))
	assert.Equal(t, domain.StageFinalStages, stored.CurrentStage)

	_, err = h.candidateSvc.ClearAlert(ctx, "missing", testutil.FixedNow)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTouch_UpdatesOnlyLastUpdated(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	_, role := h.seedBasicRole(t)
	entered := testutil.FixedNow.AddDate(0, 0, -5)
	c := h.seedCandidate(t, testutil.NewTestCandidate(role.ID, "Ann",
		testutil.WithStage(domain.StageQualified), testutil.WithLastUpdated(entered)))

	got, err := h.candidateSvc.Touch(ctx, c.ID, testutil.FixedNow)
	require.NoError(t, err)
	assert.True(t, testutil.FixedNow.Equal(got.LastUpdatedDate))
	assert.True(t, entered.Equal(got.StageEnteredDate))
}

func TestView_QuickMoveAndWaitLevel(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	_, role := h.seedBasicRole(t)
	// Wednesday 06-11 to Wednesday 06-18 is 5 business days.
	c := h.seedCandidate(t, testutil.NewTestCandidate(role.ID, "Ann",
		testutil.WithStage(domain.StageQualified),
		testutil.WithLastUpdated(testutil.FixedNow.AddDate(0, 0, -7))))

	view, err := h.candidateSvc.View(ctx, c.ID, testutil.FixedNow)
	require.NoError(t, err)
	assert.Equal(t, 5, view.DaysInStage)
	assert.Equal(t, pipeline.WaitCritical, view.WaitLevel)
	assert.True(t, view.Urgent)
	assert.Equal(t, []domain.Stage{domain.StageTwillInterview, domain.StageUnqualified}, view.Options)
}

func TestCandidateList_ByRole(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	client, role := h.seedBasicRole(t)
	other := h.seedRole(t, testutil.NewTestRole(client.ID, "Designer"))
	h.seedCandidate(t, testutil.NewTestCandidate(role.ID, "Ann"))
	h.seedCandidate(t, testutil.NewTestCandidate(other.ID, "Bob"))

	all, err := h.candidateSvc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
	mine, err := h.candidateSvc.List(ctx, role.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Ann", mine[0].Name)
}
