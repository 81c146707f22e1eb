package importer

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/twillhq/talentboard/internal/domain"
)

// Roster is a converted roster ready for persistence, in dependency order.
type Roster struct {
	Clients    []*domain.Client
	Roles      []*domain.Role
	Advisors   []*domain.TalentAdvisor
	Candidates []*domain.Candidate
}

// Convert builds domain values from a validated schema. Call
// ValidateRosterSchema first; Convert still reports malformed timestamps.
// Missing stage timestamps default to the submission time, and a clear
// timestamp marks the alert as cleared.
func Convert(schema *RosterSchema) (*Roster, error) {
	var out Roster

	for _, c := range schema.Clients {
		client := &domain.Client{
			ID:      c.ID,
			Name:    c.Name,
			Company: c.Company,
			Status:  domain.ClientStatus(c.Status),
		}
		if client.Status == "" {
			client.Status = domain.ClientResponding
		}
		var err error
		if client.OnboardingDate, err = parseOptional(c.OnboardingDate); err != nil {
			return nil, fmt.Errorf("client %s onboarding_date: %w", c.ID, err)
		}
		if client.LastContactDate, err = parseOptional(c.LastContactDate); err != nil {
			return nil, fmt.Errorf("client %s last_contact_date: %w", c.ID, err)
		}
		out.Clients = append(out.Clients, client)
	}

	for _, r := range schema.Roles {
		created, err := time.Parse(time.RFC3339, r.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("role %s created_at: %w", r.ID, err)
		}
		priority := domain.PriorityLow
		if r.Priority != "" {
			if priority, err = domain.ParsePriority(r.Priority); err != nil {
				return nil, fmt.Errorf("role %s: %w", r.ID, err)
			}
		}
		out.Roles = append(out.Roles, &domain.Role{
			ID:               r.ID,
			Title:            r.Title,
			ClientID:         r.ClientID,
			AssignedTAID:     r.AssignedTA,
			Priority:         priority,
			CreatedDate:      created,
			PostedToPlatform: r.PostedToPlatform,
			EstimatedRevenue: r.EstimatedRevenue,
		})
	}

	for _, a := range schema.Advisors {
		role := domain.UserRole(a.Role)
		if role == "" {
			role = domain.UserRoleTA
		}
		out.Advisors = append(out.Advisors, &domain.TalentAdvisor{
			ID:              a.ID,
			Name:            a.Name,
			Email:           a.Email,
			Role:            role,
			AssignedRoleIDs: a.RoleIDs,
		})
	}

	for _, c := range schema.Candidates {
		cand, err := convertCandidate(c)
		if err != nil {
			return nil, err
		}
		out.Candidates = append(out.Candidates, cand)
	}

	return &out, nil
}

func convertCandidate(c CandidateImport) (*domain.Candidate, error) {
	submitted, err := time.Parse(time.RFC3339, c.SubmittedAt)
	if err != nil {
		return nil, fmt.Errorf("candidate %q submitted_at: %w", c.Name, err)
	}
	id := c.ID
	if id == "" {
		id = candidateID(c.RoleID, c.Name, submitted)
	}
	entered, err := parseOptional(c.StageEnteredAt)
	if err != nil {
		return nil, fmt.Errorf("candidate %q stage_entered_at: %w", c.Name, err)
	}
	updated, err := parseOptional(c.LastUpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("candidate %q last_updated_at: %w", c.Name, err)
	}
	cleared, err := parseOptional(c.AlertClearedAt)
	if err != nil {
		return nil, fmt.Errorf("candidate %q alert_cleared_at: %w", c.Name, err)
	}
	source := domain.CandidateSource(c.Source)
	if source == "" {
		source = domain.SourceTASourced
	}

	return &domain.Candidate{
		ID:                id,
		Name:              c.Name,
		Email:             c.Email,
		RoleID:            c.RoleID,
		Source:            source,
		ReferringMemberID: c.ReferringMemberID,
		CurrentStage:      domain.Stage(c.Stage),
		SubmittedDate:     submitted,
		StageEnteredDate:  domain.TimeFromPtrWithDefault(submitted, entered),
		LastUpdatedDate:   domain.TimeFromPtrWithDefault(submitted, updated, entered),
		AlertCleared:      cleared != nil,
		AlertClearedDate:  cleared,
		ClientFeedback:    c.ClientFeedback,
	}, nil
}

// candidateNamespace seeds ids for candidates imported without one.
var candidateNamespace = uuid.MustParse("8f0c2a4e-5b7d-4f1e-9a63-2d41c7e8b5f0")

// candidateID derives a stable id so re-importing the same file updates the
// same rows.
func candidateID(roleID, name string, submitted time.Time) string {
	key := roleID + "\x00" + name + "\x00" + submitted.UTC().Format(time.RFC3339)
	return uuid.NewSHA1(candidateNamespace, []byte(key)).String()
}

func parseOptional(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
