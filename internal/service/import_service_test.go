package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twillhq/talentboard/internal/domain"
	"github.com/twillhq/talentboard/internal/importer"
	"github.com/twillhq/talentboard/internal/testutil"
)

const rosterYAML = `clients:
  - id: acme
    company: Acme
advisors:
  - id: tess
    name: Tess
    roles: [r-backend]
roles:
  - id: r-backend
    title: Backend Engineer
    client: acme
    priority: high
    created_at: "2025-05-01T09:00:00Z"
    estimated_revenue: 25000
candidates:
  - id: c-ann
    name: Ann
    role: r-backend
    stage: in_client_process
    submitted_at: "2025-05-20T09:00:00Z"
  - name: Bob
    role: r-backend
    stage: no_status
    submitted_at: "2025-06-18T08:00:00Z"
`

func writeRosterFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roster.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestImportRoster_WritesEverything(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	res, err := h.importSvc.ImportRoster(ctx, writeRosterFile(t, rosterYAML))
	require.NoError(t, err)
	assert.Equal(t, 1, res.ClientCount)
	assert.Equal(t, 1, res.RoleCount)
	assert.Equal(t, 1, res.AdvisorCount)
	assert.Equal(t, 2, res.CandidateCount)

	role, err := h.roles.GetByID(ctx, "r-backend")
	require.NoError(t, err)
	assert.Equal(t, domain.PriorityHigh, role.Priority)

	advisor, err := h.advisors.GetByID(ctx, "tess")
	require.NoError(t, err)
	assert.Equal(t, []string{"r-backend"}, advisor.AssignedRoleIDs)

	candidates, err := h.candidates.ListByRole(ctx, "r-backend")
	require.NoError(t, err)
	assert.Len(t, candidates, 2)
}

func TestImportRoster_ReimportIsIdempotent(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	path := writeRosterFile(t, rosterYAML)

	_, err := h.importSvc.ImportRoster(ctx, path)
	require.NoError(t, err)
	_, err = h.importSvc.ImportRoster(ctx, path)
	require.NoError(t, err)

	candidates, err := h.candidates.List(ctx)
	require.NoError(t, err)
	assert.Len(t, candidates, 2)
}

func TestImportRoster_InvalidWritesNothing(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	schema, err := importer.ParseRoster([]byte(rosterYAML), "yaml")
	require.NoError(t, err)
	schema.Candidates[1].Stage = "hired"
	schema.Roles[0].ClientID = "nobody"

	_, err = h.importSvc.ImportRosterFromSchema(ctx, schema)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "roster validation failed")
	assert.ErrorIs(t, err, domain.ErrInvalidStage)

	clients, err := h.clients.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, clients)
}

func TestImportRoster_RollsBackOnWriteFailure(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	schema, err := importer.ParseRoster([]byte(rosterYAML), "yaml")
	require.NoError(t, err)

	svc := NewImportService(&testutil.FailOnNthExecUoW{DB: h.db, FailOn: 3})
	_, err = svc.ImportRosterFromSchema(ctx, schema)
	require.ErrorIs(t, err, testutil.ErrInjected)

	roles, err := h.roles.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, roles)
	clients, err := h.clients.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, clients)
}

func TestImportRoster_MissingFile(t *testing.T) {
	h := newHarness(t)
	_, err := h.importSvc.ImportRoster(context.Background(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
