package formatter

import (
	"fmt"
	"strings"

	"github.com/twillhq/talentboard/internal/app"
	"github.com/twillhq/talentboard/internal/domain"
)

const probabilityBarWidth = 10

// FormatRoleList renders roles with their pipeline size and probability.
func FormatRoleList(items []app.RoleListItem) string {
	if len(items) == 0 {
		return Dim("No roles.") + "\n"
	}
	headers := []string{"ID", "ROLE", "CLIENT", "PRIORITY", "ACTIVE", "PROBABILITY"}
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, []string{
			TruncID(it.Role.ID),
			Bold(it.Role.Title),
			it.ClientName,
			PriorityPill(it.Role.Priority),
			fmt.Sprintf("%d/%d", it.ActiveCount, it.TotalCount),
			RenderProbability(it.Probability, probabilityBarWidth),
		})
	}
	return RenderTable(headers, rows)
}

// FormatRoleOverview renders one role: stage counts, candidates and alerts.
func FormatRoleOverview(ov *app.RoleOverview) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s  %s\n", Bold(ov.Role.Title), Dim(ov.ClientName)))
	b.WriteString(fmt.Sprintf("Priority %s   Active %d   Probability %s\n",
		PriorityPill(ov.Role.Priority), ov.ActiveCount, RenderProbability(ov.Probability, probabilityBarWidth)))
	if ov.Role.EstimatedRevenue != nil {
		b.WriteString("Estimated revenue " + Money(*ov.Role.EstimatedRevenue) + "\n")
	}

	b.WriteString("\n" + Header("Pipeline") + "\n")
	for _, s := range domain.Stages() {
		if n := ov.StageCounts[s]; n > 0 {
			b.WriteString(fmt.Sprintf("  %-20s %d\n", s.Label(), n))
		}
	}

	b.WriteString("\n" + Header("Candidates") + "\n")
	b.WriteString(FormatCandidateTable(ov.Candidates))

	b.WriteString("\n" + Header("Alerts") + "\n")
	b.WriteString(FormatRoleAlerts(&ov.Alerts))

	return RenderBox("Role", b.String())
}
