package formatter

import (
	"fmt"
	"strings"

	"github.com/twillhq/talentboard/internal/alerts"
	"github.com/twillhq/talentboard/internal/app"
)

// FormatDashboardAlerts renders every non-empty alert bucket, critical
// first, followed by the category count.
func FormatDashboardAlerts(resp *app.DashboardAlertsResponse) string {
	var b strings.Builder
	b.WriteString(Dim("as of "+resp.GeneratedAt.Format("Mon Jan 2 15:04 MST")) + "\n\n")

	if resp.Alerts.TotalCount == 0 {
		b.WriteString(StyleGreen.Render("No alerts. Every pipeline is moving.") + "\n")
		return RenderBox("Alerts", b.String())
	}

	for _, bucket := range resp.Alerts.Buckets() {
		if len(bucket.Roles) == 0 {
			continue
		}
		b.WriteString(FormatBucket(bucket))
		b.WriteString("\n")
	}

	summary := fmt.Sprintf("%d alert categories, %d candidates",
		resp.Alerts.TotalCount, resp.Alerts.CandidateCount())
	b.WriteString(Bold(summary) + "\n")
	return RenderBox("Alerts", b.String())
}

// FormatBucket renders one category with its roles and candidates.
func FormatBucket(bucket alerts.Bucket) string {
	var b strings.Builder
	title := fmt.Sprintf("%s  %s", TierBadge(bucket.Category.Tier()), Bold(bucket.Category.Label()))
	if bucket.Category.Manual() {
		title += Dim("  (clear manually)")
	}
	b.WriteString(title + "\n")

	for _, role := range bucket.Roles {
		b.WriteString(fmt.Sprintf("  %s %s\n", StyleBlue.Render(role.RoleTitle), Dim("· "+role.ClientName)))
		for _, c := range role.Candidates {
			b.WriteString(fmt.Sprintf("    %s  %s  %s\n",
				TruncID(c.Candidate.ID),
				StyleFg.Render(c.Candidate.Name),
				StyleYellow.Render(BusinessDays(c.DaysInStage)),
			))
		}
	}
	return b.String()
}

// FormatRoleAlerts renders the per-category view of one role.
func FormatRoleAlerts(s *alerts.RoleAlertSummary) string {
	if s.Total == 0 {
		return Dim("No alerts for this role.") + "\n"
	}
	groups := []struct {
		cat  alerts.Category
		list []alerts.CandidateAlert
	}{
		{alerts.CategoryClientProcessStalled, s.ClientProcess},
		{alerts.CategoryNewSubmission, s.NewSubmission},
		{alerts.CategoryQualifiedStalled, s.Qualified},
		{alerts.CategoryTwillScreenStalled, s.TwillScreen},
		{alerts.CategoryFinalStagesStalled, s.FinalStages},
	}
	var b strings.Builder
	for _, g := range groups {
		if len(g.list) == 0 {
			continue
		}
		b.WriteString(fmt.Sprintf("%s  %s\n", TierBadge(g.cat.Tier()), Bold(g.cat.Label())))
		for _, c := range g.list {
			b.WriteString(fmt.Sprintf("    %s  %s\n", StyleFg.Render(c.Candidate.Name), StyleYellow.Render(BusinessDays(c.DaysInStage))))
		}
	}
	return b.String()
}
