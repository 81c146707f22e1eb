package alerts

import (
	"time"

	"github.com/twillhq/talentboard/internal/domain"
)

type CandidateAlert struct {
	Candidate   domain.Candidate
	DaysInStage int
	Category    Category
}

type RoleAlert struct {
	RoleID     string
	RoleTitle  string
	ClientName string
	Candidates []CandidateAlert
}

type CriticalAlerts struct {
	ClientProcess5Days []RoleAlert
}

type UrgentAlerts struct {
	NewSubmissions   []RoleAlert
	Qualified3Days   []RoleAlert
	TwillScreen3Days []RoleAlert
	FinalStages3Days []RoleAlert
}

// DashboardAlerts groups alert matches by category and role. TotalCount is
// the number of non-empty categories, not the number of candidates.
type DashboardAlerts struct {
	Critical   CriticalAlerts
	Urgent     UrgentAlerts
	TotalCount int
}

// Bucket is one category's role entries.
type Bucket struct {
	Category Category
	Roles    []RoleAlert
}

// Buckets returns every category in Categories order, empty ones included.
func (d DashboardAlerts) Buckets() []Bucket {
	return []Bucket{
		{Category: CategoryClientProcessStalled, Roles: d.Critical.ClientProcess5Days},
		{Category: CategoryNewSubmission, Roles: d.Urgent.NewSubmissions},
		{Category: CategoryQualifiedStalled, Roles: d.Urgent.Qualified3Days},
		{Category: CategoryTwillScreenStalled, Roles: d.Urgent.TwillScreen3Days},
		{Category: CategoryFinalStagesStalled, Roles: d.Urgent.FinalStages3Days},
	}
}

// CandidateCount counts candidate entries across all buckets.
func (d DashboardAlerts) CandidateCount() int {
	n := 0
	for _, b := range d.Buckets() {
		for _, r := range b.Roles {
			n += len(r.Candidates)
		}
	}
	return n
}

func (d *DashboardAlerts) bucket(c Category) *[]RoleAlert {
	switch c {
	case CategoryClientProcessStalled:
		return &d.Critical.ClientProcess5Days
	case CategoryNewSubmission:
		return &d.Urgent.NewSubmissions
	case CategoryQualifiedStalled:
		return &d.Urgent.Qualified3Days
	case CategoryTwillScreenStalled:
		return &d.Urgent.TwillScreen3Days
	default:
		return &d.Urgent.FinalStages3Days
	}
}

// Aggregate classifies every candidate and groups the matches per category
// and role. Roles whose client is not in clients are skipped. Role order and
// candidate order follow the inputs, and a role appears in a bucket only when
// it has at least one match there.
func Aggregate(roles []domain.Role, candidates []domain.Candidate, clients []domain.Client, now time.Time) DashboardAlerts {
	clientByID := make(map[string]*domain.Client, len(clients))
	for i := range clients {
		clientByID[clients[i].ID] = &clients[i]
	}
	byRole := groupByRole(candidates)

	var out DashboardAlerts
	for _, role := range roles {
		client, ok := clientByID[role.ClientID]
		if !ok {
			continue
		}
		matched := classifyAll(byRole[role.ID], now)
		for _, cat := range Categories() {
			if len(matched[cat]) == 0 {
				continue
			}
			b := out.bucket(cat)
			*b = append(*b, RoleAlert{
				RoleID:     role.ID,
				RoleTitle:  role.Title,
				ClientName: client.DisplayName(),
				Candidates: matched[cat],
			})
		}
	}

	for _, b := range out.Buckets() {
		if len(b.Roles) > 0 {
			out.TotalCount++
		}
	}
	return out
}

// RoleAlertSummary is the per-category view for a single role.
type RoleAlertSummary struct {
	RoleID        string
	NewSubmission []CandidateAlert
	Qualified     []CandidateAlert
	TwillScreen   []CandidateAlert
	ClientProcess []CandidateAlert
	FinalStages   []CandidateAlert
	Total         int
}

// ForRole classifies the role's candidates. Candidates of other roles in the
// input are ignored. Total counts candidate entries.
func ForRole(role domain.Role, candidates []domain.Candidate, now time.Time) RoleAlertSummary {
	var own []domain.Candidate
	for _, c := range candidates {
		if c.RoleID == role.ID {
			own = append(own, c)
		}
	}
	matched := classifyAll(own, now)
	s := RoleAlertSummary{
		RoleID:        role.ID,
		NewSubmission: matched[CategoryNewSubmission],
		Qualified:     matched[CategoryQualifiedStalled],
		TwillScreen:   matched[CategoryTwillScreenStalled],
		ClientProcess: matched[CategoryClientProcessStalled],
		FinalStages:   matched[CategoryFinalStagesStalled],
	}
	for _, list := range matched {
		s.Total += len(list)
	}
	return s
}

func classifyAll(candidates []domain.Candidate, now time.Time) map[Category][]CandidateAlert {
	out := make(map[Category][]CandidateAlert)
	for _, c := range candidates {
		for _, m := range Classify(c, now) {
			out[m.Category] = append(out[m.Category], CandidateAlert{
				Candidate:   c,
				DaysInStage: m.DaysInStage,
				Category:    m.Category,
			})
		}
	}
	return out
}

func groupByRole(candidates []domain.Candidate) map[string][]domain.Candidate {
	out := make(map[string][]domain.Candidate)
	for _, c := range candidates {
		out[c.RoleID] = append(out[c.RoleID], c)
	}
	return out
}
