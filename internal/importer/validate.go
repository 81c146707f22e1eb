package importer

import (
	"fmt"
	"time"

	"github.com/twillhq/talentboard/internal/domain"
)

var validAdvisorRoles = map[string]bool{"ta": true, "admin": true}

// ValidateRosterSchema checks the roster for errors before conversion.
// Returns every validation error found.
func ValidateRosterSchema(schema *RosterSchema) []error {
	var errs []error

	clientIDs := make(map[string]bool)
	for i, c := range schema.Clients {
		prefix := fmt.Sprintf("clients[%d]", i)
		if c.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
		} else if clientIDs[c.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", prefix, c.ID))
		}
		clientIDs[c.ID] = true
		if c.Name == "" && c.Company == "" {
			errs = append(errs, fmt.Errorf("%s: name or company is required", prefix))
		}
		if c.Status != "" && !domain.ValidClientStatuses[domain.ClientStatus(c.Status)] {
			errs = append(errs, fmt.Errorf("%s.status: invalid value %q", prefix, c.Status))
		}
		errs = append(errs, validateOptionalTime(prefix+".onboarding_date", c.OnboardingDate)...)
		errs = append(errs, validateOptionalTime(prefix+".last_contact_date", c.LastContactDate)...)
	}

	roleIDs := make(map[string]bool)
	for i, r := range schema.Roles {
		prefix := fmt.Sprintf("roles[%d]", i)
		if r.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
		} else if roleIDs[r.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", prefix, r.ID))
		}
		roleIDs[r.ID] = true
		if r.Title == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", prefix))
		}
		if !clientIDs[r.ClientID] {
			errs = append(errs, fmt.Errorf("%s.client: unknown client %q", prefix, r.ClientID))
		}
		if r.Priority != "" {
			if _, err := domain.ParsePriority(r.Priority); err != nil {
				errs = append(errs, fmt.Errorf("%s.priority: %w", prefix, err))
			}
		}
		errs = append(errs, validateRequiredTime(prefix+".created_at", r.CreatedAt)...)
		if r.EstimatedRevenue != nil && *r.EstimatedRevenue < 0 {
			errs = append(errs, fmt.Errorf("%s.estimated_revenue must be >= 0", prefix))
		}
	}

	advisorIDs := make(map[string]bool)
	for i, a := range schema.Advisors {
		prefix := fmt.Sprintf("advisors[%d]", i)
		if a.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
		} else if advisorIDs[a.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", prefix, a.ID))
		}
		advisorIDs[a.ID] = true
		if a.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		if a.Role != "" && !validAdvisorRoles[a.Role] {
			errs = append(errs, fmt.Errorf("%s.role: invalid value %q (expected ta or admin)", prefix, a.Role))
		}
		for _, id := range a.RoleIDs {
			if !roleIDs[id] {
				errs = append(errs, fmt.Errorf("%s.roles: unknown role %q", prefix, id))
			}
		}
	}

	candidateIDs := make(map[string]bool)
	for i, c := range schema.Candidates {
		prefix := fmt.Sprintf("candidates[%d]", i)
		if c.ID != "" {
			if candidateIDs[c.ID] {
				errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", prefix, c.ID))
			}
			candidateIDs[c.ID] = true
		}
		if c.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		if !roleIDs[c.RoleID] {
			errs = append(errs, fmt.Errorf("%s.role: unknown role %q", prefix, c.RoleID))
		}
		if !domain.Stage(c.Stage).IsValid() {
			errs = append(errs, fmt.Errorf("%s.stage: %w: %q", prefix, domain.ErrInvalidStage, c.Stage))
		}
		if c.Source != "" && !domain.ValidCandidateSources[domain.CandidateSource(c.Source)] {
			errs = append(errs, fmt.Errorf("%s.source: invalid value %q", prefix, c.Source))
		}
		errs = append(errs, validateRequiredTime(prefix+".submitted_at", c.SubmittedAt)...)
		errs = append(errs, validateOptionalTime(prefix+".stage_entered_at", c.StageEnteredAt)...)
		errs = append(errs, validateOptionalTime(prefix+".last_updated_at", c.LastUpdatedAt)...)
		errs = append(errs, validateOptionalTime(prefix+".alert_cleared_at", c.AlertClearedAt)...)
	}

	return errs
}

func validateRequiredTime(field, value string) []error {
	if value == "" {
		return []error{fmt.Errorf("%s is required", field)}
	}
	if _, err := time.Parse(time.RFC3339, value); err != nil {
		return []error{fmt.Errorf("%s: invalid timestamp %q (expected RFC3339)", field, value)}
	}
	return nil
}

func validateOptionalTime(field string, value *string) []error {
	if value == nil {
		return nil
	}
	return validateRequiredTime(field, *value)
}
