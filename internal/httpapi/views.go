package httpapi

import (
	"time"

	"github.com/twillhq/talentboard/internal/alerts"
	"github.com/twillhq/talentboard/internal/app"
	"github.com/twillhq/talentboard/internal/domain"
	"github.com/twillhq/talentboard/internal/pipeline"
)

type stageJSON struct {
	Key         string `json:"key"`
	Label       string `json:"label"`
	Probability int    `json:"probability"`
}

func toStage(s domain.Stage) stageJSON {
	return stageJSON{Key: string(s), Label: s.Label(), Probability: pipeline.StageProbability(s)}
}

func toStages(stages []domain.Stage) []stageJSON {
	out := make([]stageJSON, 0, len(stages))
	for _, s := range stages {
		out = append(out, toStage(s))
	}
	return out
}

type candidateJSON struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Email          string     `json:"email,omitempty"`
	RoleID         string     `json:"role_id"`
	Source         string     `json:"source"`
	Stage          string     `json:"stage"`
	StageLabel     string     `json:"stage_label"`
	SubmittedAt    time.Time  `json:"submitted_at"`
	StageEnteredAt time.Time  `json:"stage_entered_at"`
	LastUpdatedAt  time.Time  `json:"last_updated_at"`
	AlertCleared   bool       `json:"alert_cleared"`
	AlertClearedAt *time.Time `json:"alert_cleared_at,omitempty"`
	ClientFeedback string     `json:"client_feedback,omitempty"`
}

func toCandidate(c domain.Candidate) candidateJSON {
	return candidateJSON{
		ID:             c.ID,
		Name:           c.Name,
		Email:          c.Email,
		RoleID:         c.RoleID,
		Source:         string(c.Source),
		Stage:          string(c.CurrentStage),
		StageLabel:     c.CurrentStage.Label(),
		SubmittedAt:    c.SubmittedDate,
		StageEnteredAt: c.StageEnteredDate,
		LastUpdatedAt:  c.LastUpdatedDate,
		AlertCleared:   c.AlertCleared,
		AlertClearedAt: c.AlertClearedDate,
		ClientFeedback: c.ClientFeedback,
	}
}

type candidateViewJSON struct {
	candidateJSON
	DaysInStage int         `json:"days_in_stage"`
	WaitLevel   string      `json:"wait_level"`
	Urgent      bool        `json:"urgent"`
	Options     []stageJSON `json:"options"`
}

func toCandidateView(v app.CandidateView) candidateViewJSON {
	return candidateViewJSON{
		candidateJSON: toCandidate(v.Candidate),
		DaysInStage:   v.DaysInStage,
		WaitLevel:     string(v.WaitLevel),
		Urgent:        v.Urgent,
		Options:       toStages(v.Options),
	}
}

type candidateAlertJSON struct {
	Candidate   candidateJSON `json:"candidate"`
	DaysInStage int           `json:"days_in_stage"`
}

func toCandidateAlerts(list []alerts.CandidateAlert) []candidateAlertJSON {
	out := make([]candidateAlertJSON, 0, len(list))
	for _, a := range list {
		out = append(out, candidateAlertJSON{Candidate: toCandidate(a.Candidate), DaysInStage: a.DaysInStage})
	}
	return out
}

type roleAlertJSON struct {
	RoleID     string               `json:"role_id"`
	RoleTitle  string               `json:"role_title"`
	ClientName string               `json:"client_name"`
	Candidates []candidateAlertJSON `json:"candidates"`
}

func toRoleAlerts(list []alerts.RoleAlert) []roleAlertJSON {
	out := make([]roleAlertJSON, 0, len(list))
	for _, r := range list {
		out = append(out, roleAlertJSON{
			RoleID:     r.RoleID,
			RoleTitle:  r.RoleTitle,
			ClientName: r.ClientName,
			Candidates: toCandidateAlerts(r.Candidates),
		})
	}
	return out
}

type dashboardJSON struct {
	GeneratedAt time.Time `json:"generated_at"`
	Critical    struct {
		ClientProcess5Days []roleAlertJSON `json:"client_process_5_days"`
	} `json:"critical"`
	Urgent struct {
		NewSubmissions   []roleAlertJSON `json:"new_submissions"`
		Qualified3Days   []roleAlertJSON `json:"qualified_3_days"`
		TwillScreen3Days []roleAlertJSON `json:"twill_screen_3_days"`
		FinalStages3Days []roleAlertJSON `json:"final_stages_3_days"`
	} `json:"urgent"`
	TotalCount int `json:"total_count"`
}

func toDashboard(resp *app.DashboardAlertsResponse) dashboardJSON {
	var out dashboardJSON
	out.GeneratedAt = resp.GeneratedAt
	out.Critical.ClientProcess5Days = toRoleAlerts(resp.Alerts.Critical.ClientProcess5Days)
	out.Urgent.NewSubmissions = toRoleAlerts(resp.Alerts.Urgent.NewSubmissions)
	out.Urgent.Qualified3Days = toRoleAlerts(resp.Alerts.Urgent.Qualified3Days)
	out.Urgent.TwillScreen3Days = toRoleAlerts(resp.Alerts.Urgent.TwillScreen3Days)
	out.Urgent.FinalStages3Days = toRoleAlerts(resp.Alerts.Urgent.FinalStages3Days)
	out.TotalCount = resp.Alerts.TotalCount
	return out
}

type roleAlertSummaryJSON struct {
	RoleID        string               `json:"role_id"`
	NewSubmission []candidateAlertJSON `json:"new_submission"`
	Qualified     []candidateAlertJSON `json:"qualified"`
	TwillScreen   []candidateAlertJSON `json:"twill_screen"`
	ClientProcess []candidateAlertJSON `json:"client_process"`
	FinalStages   []candidateAlertJSON `json:"final_stages"`
	Total         int                  `json:"total"`
}

func toRoleAlertSummary(s alerts.RoleAlertSummary) roleAlertSummaryJSON {
	return roleAlertSummaryJSON{
		RoleID:        s.RoleID,
		NewSubmission: toCandidateAlerts(s.NewSubmission),
		Qualified:     toCandidateAlerts(s.Qualified),
		TwillScreen:   toCandidateAlerts(s.TwillScreen),
		ClientProcess: toCandidateAlerts(s.ClientProcess),
		FinalStages:   toCandidateAlerts(s.FinalStages),
		Total:         s.Total,
	}
}

type roleJSON struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	ClientID         string    `json:"client_id"`
	ClientName       string    `json:"client_name,omitempty"`
	AssignedTA       string    `json:"assigned_ta,omitempty"`
	Priority         string    `json:"priority"`
	CreatedAt        time.Time `json:"created_at"`
	PostedToPlatform bool      `json:"posted_to_platform"`
	EstimatedRevenue *float64  `json:"estimated_revenue,omitempty"`
}

func toRole(r domain.Role, clientName string) roleJSON {
	return roleJSON{
		ID:               r.ID,
		Title:            r.Title,
		ClientID:         r.ClientID,
		ClientName:       clientName,
		AssignedTA:       r.AssignedTAID,
		Priority:         string(r.Priority),
		CreatedAt:        r.CreatedDate,
		PostedToPlatform: r.PostedToPlatform,
		EstimatedRevenue: r.EstimatedRevenue,
	}
}

type roleListItemJSON struct {
	roleJSON
	ActiveCount int `json:"active_count"`
	TotalCount  int `json:"total_count"`
	Probability int `json:"probability"`
}

type roleOverviewJSON struct {
	Role        roleJSON             `json:"role"`
	StageCounts map[string]int       `json:"stage_counts"`
	ActiveCount int                  `json:"active_count"`
	Probability int                  `json:"probability"`
	Candidates  []candidateViewJSON  `json:"candidates"`
	Alerts      roleAlertSummaryJSON `json:"alerts"`
}

func toRoleOverview(ov *app.RoleOverview) roleOverviewJSON {
	counts := make(map[string]int, len(ov.StageCounts))
	for stage, n := range ov.StageCounts {
		counts[string(stage)] = n
	}
	views := make([]candidateViewJSON, 0, len(ov.Candidates))
	for _, v := range ov.Candidates {
		views = append(views, toCandidateView(v))
	}
	return roleOverviewJSON{
		Role:        toRole(ov.Role, ov.ClientName),
		StageCounts: counts,
		ActiveCount: ov.ActiveCount,
		Probability: ov.Probability,
		Candidates:  views,
		Alerts:      toRoleAlertSummary(ov.Alerts),
	}
}

type stageChangeJSON struct {
	ID          string    `json:"id"`
	CandidateID string    `json:"candidate_id"`
	FromStage   string    `json:"from_stage"`
	ToStage     string    `json:"to_stage"`
	ChangedAt   time.Time `json:"changed_at"`
}

func toStageChange(sc domain.StageChange) stageChangeJSON {
	return stageChangeJSON{
		ID:          sc.ID,
		CandidateID: sc.CandidateID,
		FromStage:   string(sc.FromStage),
		ToStage:     string(sc.ToStage),
		ChangedAt:   sc.ChangedAt,
	}
}

type metricsJSON struct {
	MiddleStagesRevenue float64 `json:"middle_stages_revenue"`
	FinalStagesRevenue  float64 `json:"final_stages_revenue"`
	Placements          int     `json:"placements"`
	Funnel              struct {
		MemberReferrals int `json:"member_referrals"`
		MemberPartners  int `json:"member_partners"`
		TASourced       int `json:"ta_sourced"`
		Total           int `json:"total"`
	} `json:"funnel"`
	ActiveByRole []roleActiveJSON `json:"active_by_role"`
}

type roleActiveJSON struct {
	RoleID      string `json:"role_id"`
	RoleTitle   string `json:"role_title"`
	ActiveCount int    `json:"active_count"`
}

func toMetrics(m *app.MetricsSummary) metricsJSON {
	var out metricsJSON
	out.MiddleStagesRevenue = m.MiddleStagesRevenue
	out.FinalStagesRevenue = m.FinalStagesRevenue
	out.Placements = m.Placements
	out.Funnel.MemberReferrals = m.Funnel.MemberReferrals
	out.Funnel.MemberPartners = m.Funnel.MemberPartners
	out.Funnel.TASourced = m.Funnel.TASourced
	out.Funnel.Total = m.Funnel.Total
	out.ActiveByRole = make([]roleActiveJSON, 0, len(m.ActiveByRole))
	for _, r := range m.ActiveByRole {
		out.ActiveByRole = append(out.ActiveByRole, roleActiveJSON{RoleID: r.RoleID, RoleTitle: r.RoleTitle, ActiveCount: r.ActiveCount})
	}
	return out
}
