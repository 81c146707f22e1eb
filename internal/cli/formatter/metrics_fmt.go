package formatter

import (
	"fmt"
	"strings"

	"github.com/twillhq/talentboard/internal/app"
)

// FormatMetrics renders the revenue, placement and sourcing summary.
func FormatMetrics(m *app.MetricsSummary) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Revenue at middle stages  %s\n", StyleBlue.Render(Money(m.MiddleStagesRevenue))))
	b.WriteString(fmt.Sprintf("Revenue at final stages   %s\n", StyleGreen.Render(Money(m.FinalStagesRevenue))))
	b.WriteString(fmt.Sprintf("Placements                %s\n", Bold(fmt.Sprint(m.Placements))))

	b.WriteString("\n" + Header("Sourcing") + "\n")
	f := m.Funnel
	b.WriteString(fmt.Sprintf("  Member referrals  %d\n", f.MemberReferrals))
	b.WriteString(fmt.Sprintf("  Member partners   %d\n", f.MemberPartners))
	b.WriteString(fmt.Sprintf("  TA sourced        %d\n", f.TASourced))
	b.WriteString(fmt.Sprintf("  Total             %d\n", f.Total))

	if len(m.ActiveByRole) > 0 {
		b.WriteString("\n" + Header("Active by role") + "\n")
		rows := make([][]string, 0, len(m.ActiveByRole))
		for _, r := range m.ActiveByRole {
			rows = append(rows, []string{r.RoleTitle, fmt.Sprint(r.ActiveCount)})
		}
		b.WriteString(RenderTable([]string{"ROLE", "ACTIVE"}, rows))
	}
	return RenderBox("Metrics", b.String())
}
