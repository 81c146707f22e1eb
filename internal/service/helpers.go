package service

import (
	"context"
	"fmt"

	"github.com/twillhq/talentboard/internal/domain"
	"github.com/twillhq/talentboard/internal/repository"
)

// rosterScope is the slice of the roster an advisor is allowed to see.
type rosterScope struct {
	Roles      []domain.Role
	Candidates []domain.Candidate
	Clients    []domain.Client
}

type rosterReader struct {
	roles      repository.RoleRepo
	candidates repository.CandidateRepo
	clients    repository.ClientRepo
	advisors   repository.AdvisorRepo
}

// load reads the whole roster and narrows it to advisorID's visible roles.
// An empty advisorID means no narrowing. Roles keep storage order.
func (r rosterReader) load(ctx context.Context, advisorID string) (*rosterScope, error) {
	roles, err := r.roles.List(ctx)
	if err != nil {
		return nil, err
	}
	if advisorID != "" {
		advisor, err := r.advisors.GetByID(ctx, advisorID)
		if err != nil {
			return nil, fmt.Errorf("resolving advisor scope: %w", err)
		}
		roles = advisor.VisibleRoles(roles)
	}

	candidates, err := r.candidates.List(ctx)
	if err != nil {
		return nil, err
	}
	clients, err := r.clients.List(ctx)
	if err != nil {
		return nil, err
	}

	visible := make(map[string]bool, len(roles))
	for _, role := range roles {
		visible[role.ID] = true
	}
	scoped := candidates[:0:0]
	for _, c := range candidates {
		if visible[c.RoleID] {
			scoped = append(scoped, c)
		}
	}
	return &rosterScope{Roles: roles, Candidates: scoped, Clients: clients}, nil
}

func clientNames(clients []domain.Client) map[string]string {
	out := make(map[string]string, len(clients))
	for i := range clients {
		out[clients[i].ID] = clients[i].DisplayName()
	}
	return out
}
