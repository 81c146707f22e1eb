package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twillhq/talentboard/internal/domain"
	"github.com/twillhq/talentboard/internal/testutil"
)

func TestStageChangeRepo_CreateAndList(t *testing.T) {
	database := testutil.NewTestDB(t)
	_, role := rosterSetup(t, database)
	ctx := context.Background()

	cand := testutil.NewTestCandidate(role.ID, "Ann")
	require.NoError(t, NewSQLiteCandidateRepo(database).Upsert(ctx, cand))

	repo := NewSQLiteStageChangeRepo(database)
	first := &domain.StageChange{CandidateID: cand.ID, FromStage: domain.StageNoStatus, ToStage: domain.StageQualified, ChangedAt: testutil.FixedNow}
	second := &domain.StageChange{CandidateID: cand.ID, FromStage: domain.StageQualified, ToStage: domain.StageTwillInterview, ChangedAt: testutil.FixedNow.Add(time.Hour)}
	require.NoError(t, repo.Create(ctx, second))
	require.NoError(t, repo.Create(ctx, first))
	assert.NotEmpty(t, first.ID, "id assigned on create")

	history, err := repo.ListByCandidate(ctx, cand.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, domain.StageQualified, history[0].ToStage)
	assert.Equal(t, domain.StageTwillInterview, history[1].ToStage)
	assert.True(t, testutil.FixedNow.Equal(history[0].ChangedAt))
}

func TestStageChangeRepo_RequiresCandidate(t *testing.T) {
	database := testutil.NewTestDB(t)
	err := NewSQLiteStageChangeRepo(database).Create(context.Background(),
		&domain.StageChange{CandidateID: "missing", ToStage: domain.StageQualified, ChangedAt: testutil.FixedNow})
	require.Error(t, err)
}
