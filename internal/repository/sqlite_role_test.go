package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twillhq/talentboard/internal/domain"
	"github.com/twillhq/talentboard/internal/testutil"
)

func TestRoleRepo_UpsertAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	_, role := rosterSetup(t, database)
	repo := NewSQLiteRoleRepo(database)

	got, err := repo.GetByID(context.Background(), role.ID)
	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer", got.Title)
	assert.Equal(t, domain.PriorityLow, got.Priority)
	assert.Equal(t, 25000.0, got.Revenue())
	assert.True(t, role.CreatedDate.Equal(got.CreatedDate))
}

func TestRoleRepo_NilRevenueRoundTrips(t *testing.T) {
	database := testutil.NewTestDB(t)
	client, _ := rosterSetup(t, database)
	repo := NewSQLiteRoleRepo(database)
	ctx := context.Background()

	r := testutil.NewTestRole(client.ID, "Designer")
	require.NoError(t, repo.Upsert(ctx, r))
	got, err := repo.GetByID(ctx, r.ID)
	require.NoError(t, err)
	assert.Nil(t, got.EstimatedRevenue)
}

func TestRoleRepo_UpdatePriority(t *testing.T) {
	database := testutil.NewTestDB(t)
	_, role := rosterSetup(t, database)
	repo := NewSQLiteRoleRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.UpdatePriority(ctx, role.ID, domain.PriorityHigh))
	got, err := repo.GetByID(ctx, role.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PriorityHigh, got.Priority)

	err = repo.UpdatePriority(ctx, "missing", domain.PriorityHigh)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRoleRepo_ListOrderedByCreation(t *testing.T) {
	database := testutil.NewTestDB(t)
	client, first := rosterSetup(t, database)
	repo := NewSQLiteRoleRepo(database)
	ctx := context.Background()

	later := testutil.NewTestRole(client.ID, "Later", testutil.WithCreatedDate(testutil.FixedNow))
	require.NoError(t, repo.Upsert(ctx, later))

	roles, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, roles, 2)
	assert.Equal(t, first.ID, roles[0].ID)
	assert.Equal(t, later.ID, roles[1].ID)
}

func TestRoleRepo_UpsertDoesNotCascadeCandidates(t *testing.T) {
	database := testutil.NewTestDB(t)
	_, role := rosterSetup(t, database)
	ctx := context.Background()

	cand := testutil.NewTestCandidate(role.ID, "Ann")
	require.NoError(t, NewSQLiteCandidateRepo(database).Upsert(ctx, cand))

	role.Title = "Senior Backend Engineer"
	require.NoError(t, NewSQLiteRoleRepo(database).Upsert(ctx, role))

	_, err := NewSQLiteCandidateRepo(database).GetByID(ctx, cand.ID)
	require.NoError(t, err)
}
