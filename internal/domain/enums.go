package domain

import (
	"fmt"
	"strings"
)

type CandidateSource string

const (
	SourceMemberReferral CandidateSource = "member_referral"
	SourceMemberPartner  CandidateSource = "member_partner"
	SourceTASourced      CandidateSource = "ta_sourced"
)

// ValidCandidateSources is the canonical set of accepted source strings.
var ValidCandidateSources = map[CandidateSource]bool{
	SourceMemberReferral: true,
	SourceMemberPartner:  true,
	SourceTASourced:      true,
}

type RolePriority string

const (
	PriorityHigh          RolePriority = "high"
	PriorityLow           RolePriority = "low"
	PriorityDeprioritized RolePriority = "deprioritized"
)

// ParsePriority validates a priority string.
func ParsePriority(s string) (RolePriority, error) {
	switch p := RolePriority(strings.ToLower(strings.TrimSpace(s))); p {
	case PriorityHigh, PriorityLow, PriorityDeprioritized:
		return p, nil
	}
	return "", fmt.Errorf("%w: %q (expected high, low or deprioritized)", ErrInvalidPriority, s)
}

type ClientStatus string

const (
	ClientResponding    ClientStatus = "responding"
	ClientNotResponsive ClientStatus = "not_responsive"
	ClientDeprioritized ClientStatus = "deprioritized"
	ClientPaused        ClientStatus = "paused"
	ClientAtRisk        ClientStatus = "at_risk"
	ClientChurned       ClientStatus = "churned"
)

// ValidClientStatuses is the canonical set of accepted client status strings.
var ValidClientStatuses = map[ClientStatus]bool{
	ClientResponding: true, ClientNotResponsive: true, ClientDeprioritized: true,
	ClientPaused: true, ClientAtRisk: true, ClientChurned: true,
}

type UserRole string

const (
	UserRoleTA    UserRole = "ta"
	UserRoleAdmin UserRole = "admin"
)
