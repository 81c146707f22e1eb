package pipeline

import "github.com/twillhq/talentboard/internal/domain"

// StageCounts tallies candidates per known stage.
func StageCounts(candidates []domain.Candidate) map[domain.Stage]int {
	counts := make(map[domain.Stage]int)
	for _, c := range candidates {
		if c.CurrentStage.IsValid() {
			counts[c.CurrentStage]++
		}
	}
	return counts
}

// ActiveCount counts candidates not in a rejection stage.
func ActiveCount(candidates []domain.Candidate) int {
	n := 0
	for _, c := range candidates {
		if c.CurrentStage.IsActive() {
			n++
		}
	}
	return n
}

// Placements counts candidates with a signed offer.
func Placements(candidates []domain.Candidate) int {
	n := 0
	for _, c := range candidates {
		if c.CurrentStage.IsTerminalSuccess() {
			n++
		}
	}
	return n
}

// MiddleStagesRevenue sums estimated revenue over roles that have at least one
// candidate in a middle stage. Each role counts once.
func MiddleStagesRevenue(roles []domain.Role, candidates []domain.Candidate) float64 {
	return revenueWhere(roles, candidates, domain.Stage.IsMiddleStage)
}

// FinalStagesRevenue sums estimated revenue over roles that have at least one
// candidate in final stages or holding an offer.
func FinalStagesRevenue(roles []domain.Role, candidates []domain.Candidate) float64 {
	return revenueWhere(roles, candidates, domain.Stage.IsFinalStage)
}

func revenueWhere(roles []domain.Role, candidates []domain.Candidate, match func(domain.Stage) bool) float64 {
	hit := make(map[string]bool)
	for _, c := range candidates {
		if match(c.CurrentStage) {
			hit[c.RoleID] = true
		}
	}
	var total float64
	for i := range roles {
		if hit[roles[i].ID] {
			total += roles[i].Revenue()
		}
	}
	return total
}

// Funnel is the candidate count per sourcing channel.
type Funnel struct {
	MemberReferrals int
	MemberPartners  int
	TASourced       int
	Total           int
}

// FunnelBySource counts candidates per source. Total includes candidates
// with an unrecognised source.
func FunnelBySource(candidates []domain.Candidate) Funnel {
	var f Funnel
	for _, c := range candidates {
		f.Total++
		switch c.Source {
		case domain.SourceMemberReferral:
			f.MemberReferrals++
		case domain.SourceMemberPartner:
			f.MemberPartners++
		case domain.SourceTASourced:
			f.TASourced++
		}
	}
	return f
}

// ActiveByRole counts active candidates per role id.
func ActiveByRole(candidates []domain.Candidate) map[string]int {
	out := make(map[string]int)
	for _, c := range candidates {
		if c.CurrentStage.IsActive() {
			out[c.RoleID]++
		}
	}
	return out
}

// ForRole returns the candidates belonging to roleID, preserving order.
func ForRole(candidates []domain.Candidate, roleID string) []domain.Candidate {
	var out []domain.Candidate
	for _, c := range candidates {
		if c.RoleID == roleID {
			out = append(out, c)
		}
	}
	return out
}
