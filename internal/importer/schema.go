package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// RosterSchema is the top-level structure of a roster file. The same tags
// serve the YAML and JSON encodings.
type RosterSchema struct {
	Clients    []ClientImport    `yaml:"clients" json:"clients"`
	Advisors   []AdvisorImport   `yaml:"advisors,omitempty" json:"advisors,omitempty"`
	Roles      []RoleImport      `yaml:"roles" json:"roles"`
	Candidates []CandidateImport `yaml:"candidates" json:"candidates"`
}

type ClientImport struct {
	ID              string  `yaml:"id" json:"id"`
	Name            string  `yaml:"name" json:"name"`
	Company         string  `yaml:"company" json:"company"`
	Status          string  `yaml:"status,omitempty" json:"status,omitempty"`
	OnboardingDate  *string `yaml:"onboarding_date,omitempty" json:"onboarding_date,omitempty"`
	LastContactDate *string `yaml:"last_contact_date,omitempty" json:"last_contact_date,omitempty"`
}

type AdvisorImport struct {
	ID      string   `yaml:"id" json:"id"`
	Name    string   `yaml:"name" json:"name"`
	Email   string   `yaml:"email,omitempty" json:"email,omitempty"`
	Role    string   `yaml:"role,omitempty" json:"role,omitempty"`
	RoleIDs []string `yaml:"roles,omitempty" json:"roles,omitempty"`
}

type RoleImport struct {
	ID               string   `yaml:"id" json:"id"`
	Title            string   `yaml:"title" json:"title"`
	ClientID         string   `yaml:"client" json:"client"`
	AssignedTA       string   `yaml:"assigned_ta,omitempty" json:"assigned_ta,omitempty"`
	Priority         string   `yaml:"priority,omitempty" json:"priority,omitempty"`
	CreatedAt        string   `yaml:"created_at" json:"created_at"`
	PostedToPlatform bool     `yaml:"posted_to_platform,omitempty" json:"posted_to_platform,omitempty"`
	EstimatedRevenue *float64 `yaml:"estimated_revenue,omitempty" json:"estimated_revenue,omitempty"`
}

type CandidateImport struct {
	ID                string  `yaml:"id,omitempty" json:"id,omitempty"`
	Name              string  `yaml:"name" json:"name"`
	Email             string  `yaml:"email,omitempty" json:"email,omitempty"`
	RoleID            string  `yaml:"role" json:"role"`
	Source            string  `yaml:"source,omitempty" json:"source,omitempty"`
	ReferringMemberID *string `yaml:"referring_member,omitempty" json:"referring_member,omitempty"`
	Stage             string  `yaml:"stage" json:"stage"`
	SubmittedAt       string  `yaml:"submitted_at" json:"submitted_at"`
	StageEnteredAt    *string `yaml:"stage_entered_at,omitempty" json:"stage_entered_at,omitempty"`
	LastUpdatedAt     *string `yaml:"last_updated_at,omitempty" json:"last_updated_at,omitempty"`
	AlertClearedAt    *string `yaml:"alert_cleared_at,omitempty" json:"alert_cleared_at,omitempty"`
	ClientFeedback    string  `yaml:"client_feedback,omitempty" json:"client_feedback,omitempty"`
}

// LoadRosterSchema reads a roster file. Files ending in .json are decoded as
// JSON; everything else is decoded as YAML.
func LoadRosterSchema(path string) (*RosterSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	format := "yaml"
	if strings.EqualFold(filepath.Ext(path), ".json") {
		format = "json"
	}
	return ParseRoster(data, format)
}

// ParseRoster decodes roster bytes in the given format ("yaml" or "json").
func ParseRoster(data []byte, format string) (*RosterSchema, error) {
	var schema RosterSchema
	switch format {
	case "json":
		if err := json.Unmarshal(data, &schema); err != nil {
			return nil, fmt.Errorf("parsing roster json: %w", err)
		}
	case "yaml":
		if err := yaml.Unmarshal(data, &schema); err != nil {
			return nil, fmt.Errorf("parsing roster yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported roster format %q", format)
	}
	return &schema, nil
}
