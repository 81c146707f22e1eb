package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twillhq/talentboard/internal/domain"
	"github.com/twillhq/talentboard/internal/testutil"
)

func TestRosterReader_AdminSeesEverything(t *testing.T) {
	h := newHarness(t)
	client, role := h.seedBasicRole(t)
	other := h.seedRole(t, testutil.NewTestRole(client.ID, "Designer"))
	h.seedCandidate(t, testutil.NewTestCandidate(role.ID, "Ann"))
	h.seedCandidate(t, testutil.NewTestCandidate(other.ID, "Bob"))
	admin := h.seedAdvisor(t, testutil.NewTestAdvisor("Ada", testutil.AsAdmin(), testutil.WithAssignedRoles(role.ID)))

	reader := rosterReader{roles: h.roles, candidates: h.candidates, clients: h.clients, advisors: h.advisors}
	scope, err := reader.load(context.Background(), admin.ID)
	require.NoError(t, err)
	assert.Len(t, scope.Roles, 2)
	assert.Len(t, scope.Candidates, 2)
	assert.Len(t, scope.Clients, 1)
}

func TestRosterReader_UnassignedAdvisorSeesNothing(t *testing.T) {
	h := newHarness(t)
	_, role := h.seedBasicRole(t)
	h.seedCandidate(t, testutil.NewTestCandidate(role.ID, "Ann"))
	ta := h.seedAdvisor(t, testutil.NewTestAdvisor("Tess"))

	reader := rosterReader{roles: h.roles, candidates: h.candidates, clients: h.clients, advisors: h.advisors}
	scope, err := reader.load(context.Background(), ta.ID)
	require.NoError(t, err)
	assert.Empty(t, scope.Roles)
	assert.Empty(t, scope.Candidates)
}

func TestClientNames_PrefersCompany(t *testing.T) {
	names := clientNames([]domain.Client{
		{ID: "a", Company: "Acme", Name: "Jane"},
		{ID: "b", Name: "Solo"},
	})
	assert.Equal(t, map[string]string{"a": "Acme", "b": "Solo"}, names)
}
