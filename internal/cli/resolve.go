package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/twillhq/talentboard/internal/domain"
)

// resolveID matches input against ids: an exact id wins, otherwise a unique
// prefix. Listings print 8-character prefixes, so those round-trip.
func resolveID(kind, input string, ids []string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("%s ID is required", kind)
	}
	var matches []string
	for _, id := range ids {
		if id == input {
			return id, nil
		}
		if strings.HasPrefix(id, input) {
			matches = append(matches, id)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%s %q: %w", kind, input, domain.ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%s ID prefix %q is ambiguous (%d matches)", kind, input, len(matches))
	}
}

func resolveCandidateID(ctx context.Context, a *App, input string) (string, error) {
	candidates, err := a.Candidates.List(ctx, "")
	if err != nil {
		return "", err
	}
	ids := make([]string, len(candidates))
	for i, c := range candidates {
		ids[i] = c.ID
	}
	return resolveID("candidate", input, ids)
}

func resolveRoleID(ctx context.Context, a *App, input string) (string, error) {
	items, err := a.Roles.List(ctx, "")
	if err != nil {
		return "", err
	}
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.Role.ID
	}
	return resolveID("role", input, ids)
}
