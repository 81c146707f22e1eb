package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/twillhq/talentboard/internal/domain"
	"github.com/twillhq/talentboard/internal/testutil"
)

// rosterSetup writes one client and one role and returns them.
func rosterSetup(t *testing.T, database *sql.DB) (*domain.Client, *domain.Role) {
	t.Helper()
	ctx := context.Background()
	client := testutil.NewTestClient("Acme")
	require.NoError(t, NewSQLiteClientRepo(database).Upsert(ctx, client))
	role := testutil.NewTestRole(client.ID, "Backend Engineer", testutil.WithRevenue(25000))
	require.NoError(t, NewSQLiteRoleRepo(database).Upsert(ctx, role))
	return client, role
}
