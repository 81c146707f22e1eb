package app

import (
	"time"

	"github.com/twillhq/talentboard/internal/alerts"
	"github.com/twillhq/talentboard/internal/domain"
	"github.com/twillhq/talentboard/internal/pipeline"
)

// DashboardAlertsRequest scopes the dashboard. A nil Now means the current
// time; an empty AdvisorID means every role.
type DashboardAlertsRequest struct {
	Now       *time.Time
	AdvisorID string
}

type DashboardAlertsResponse struct {
	GeneratedAt time.Time
	Alerts      alerts.DashboardAlerts
}

// CandidateView is a candidate with its dwell and quick-move suggestions.
type CandidateView struct {
	Candidate   domain.Candidate
	DaysInStage int
	WaitLevel   pipeline.WaitLevel
	Urgent      bool
	Options     []domain.Stage
}

type StageTransitionResult struct {
	Candidate domain.Candidate
	Change    domain.StageChange
}

type RoleListItem struct {
	Role        domain.Role
	ClientName  string
	ActiveCount int
	TotalCount  int
	Probability int
}

type RoleOverview struct {
	Role        domain.Role
	ClientName  string
	StageCounts map[domain.Stage]int
	ActiveCount int
	Probability int
	Candidates  []CandidateView
	Alerts      alerts.RoleAlertSummary
}

type RoleActiveCount struct {
	RoleID      string
	RoleTitle   string
	ActiveCount int
}

type MetricsSummary struct {
	MiddleStagesRevenue float64
	FinalStagesRevenue  float64
	Placements          int
	Funnel              pipeline.Funnel
	ActiveByRole        []RoleActiveCount
}

type ImportResult struct {
	ClientCount    int
	RoleCount      int
	AdvisorCount   int
	CandidateCount int
}
