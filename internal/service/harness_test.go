package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/twillhq/talentboard/internal/app"
	"github.com/twillhq/talentboard/internal/db"
	"github.com/twillhq/talentboard/internal/domain"
	"github.com/twillhq/talentboard/internal/repository"
	"github.com/twillhq/talentboard/internal/testutil"
)

// harness wires every service over one in-memory database.
type harness struct {
	db         *sql.DB
	uow        db.UnitOfWork
	clients    *repository.SQLiteClientRepo
	roles      *repository.SQLiteRoleRepo
	candidates *repository.SQLiteCandidateRepo
	advisors   *repository.SQLiteAdvisorRepo
	changes    *repository.SQLiteStageChangeRepo

	alertSvc     app.AlertUseCase
	candidateSvc app.CandidateUseCase
	roleSvc      app.RoleUseCase
	metricsSvc   app.MetricsUseCase
	importSvc    app.ImportUseCase
}

func newHarness(t *testing.T, observers ...UseCaseObserver) *harness {
	t.Helper()
	database := testutil.NewTestDB(t)
	h := &harness{
		db:         database,
		uow:        testutil.NewTestUoW(database),
		clients:    repository.NewSQLiteClientRepo(database),
		roles:      repository.NewSQLiteRoleRepo(database),
		candidates: repository.NewSQLiteCandidateRepo(database),
		advisors:   repository.NewSQLiteAdvisorRepo(database),
		changes:    repository.NewSQLiteStageChangeRepo(database),
	}
	h.alertSvc = NewAlertService(h.roles, h.candidates, h.clients, h.advisors)
	h.candidateSvc = NewCandidateService(h.candidates, h.changes, h.uow, observers...)
	h.roleSvc = NewRoleService(h.roles, h.candidates, h.clients, h.advisors, h.uow, observers...)
	h.metricsSvc = NewMetricsService(h.roles, h.candidates, h.clients, h.advisors)
	h.importSvc = NewImportService(h.uow, observers...)
	return h
}

func (h *harness) seedClient(t *testing.T, c *domain.Client) *domain.Client {
	t.Helper()
	require.NoError(t, h.clients.Upsert(context.Background(), c))
	return c
}

func (h *harness) seedRole(t *testing.T, r *domain.Role) *domain.Role {
	t.Helper()
	require.NoError(t, h.roles.Upsert(context.Background(), r))
	return r
}

func (h *harness) seedCandidate(t *testing.T, c *domain.Candidate) *domain.Candidate {
	t.Helper()
	require.NoError(t, h.candidates.Upsert(context.Background(), c))
	return c
}

func (h *harness) seedAdvisor(t *testing.T, a *domain.TalentAdvisor) *domain.TalentAdvisor {
	t.Helper()
	require.NoError(t, h.advisors.Upsert(context.Background(), a))
	return a
}

// seedBasicRole writes a client and one role for it.
func (h *harness) seedBasicRole(t *testing.T, opts ...testutil.RoleOption) (*domain.Client, *domain.Role) {
	t.Helper()
	client := h.seedClient(t, testutil.NewTestClient("Acme"))
	role := h.seedRole(t, testutil.NewTestRole(client.ID, "Backend Engineer", opts...))
	return client, role
}
