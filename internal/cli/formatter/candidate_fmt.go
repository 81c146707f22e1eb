package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/twillhq/talentboard/internal/app"
	"github.com/twillhq/talentboard/internal/domain"
)

// FormatCandidateTable renders candidates with dwell coloured by wait level.
func FormatCandidateTable(views []app.CandidateView) string {
	if len(views) == 0 {
		return Dim("No candidates.") + "\n"
	}
	headers := []string{"ID", "NAME", "STAGE", "IN STAGE", "SOURCE", "NEXT"}
	rows := make([][]string, 0, len(views))
	for _, v := range views {
		dwell := WaitStyle(v.WaitLevel).Render(BusinessDays(v.DaysInStage))
		if v.Urgent {
			dwell += StyleRed.Render(" !")
		}
		rows = append(rows, []string{
			TruncID(v.Candidate.ID),
			StyleFg.Render(v.Candidate.Name),
			StageBadge(v.Candidate.CurrentStage),
			dwell,
			Dim(string(v.Candidate.Source)),
			Dim(stageList(v.Options)),
		})
	}
	return RenderTable(headers, rows)
}

// FormatCandidateView renders one candidate's detail block.
func FormatCandidateView(v *app.CandidateView, now time.Time) string {
	c := v.Candidate
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s  %s\n", Bold(c.Name), TruncID(c.ID)))
	if c.Email != "" {
		b.WriteString(Dim(c.Email) + "\n")
	}
	b.WriteString(fmt.Sprintf("Stage      %s (%s)\n", StageBadge(c.CurrentStage),
		WaitStyle(v.WaitLevel).Render(BusinessDays(v.DaysInStage))))
	b.WriteString(fmt.Sprintf("Submitted  %s\n", RelativeDateFrom(c.SubmittedDate, now)))
	b.WriteString(fmt.Sprintf("Updated    %s\n", RelativeDateFrom(c.LastUpdatedDate, now)))
	if c.HasClearTimestamp() {
		b.WriteString(fmt.Sprintf("Cleared    %s\n", RelativeDateFrom(*c.AlertClearedDate, now)))
	}
	if c.ClientFeedback != "" {
		b.WriteString("Feedback   " + c.ClientFeedback + "\n")
	}
	b.WriteString("\n" + FormatOptions(v.Options))
	return RenderBox("Candidate", b.String())
}

// FormatOptions lists quick-move suggestions, numbered for the prompt.
func FormatOptions(options []domain.Stage) string {
	if len(options) == 0 {
		return Dim("No suggested next stage.") + "\n"
	}
	var b strings.Builder
	b.WriteString(Bold("Suggested next stages") + "\n")
	for i, s := range options {
		b.WriteString(fmt.Sprintf("  %d. %s %s\n", i+1, StageBadge(s), Dim("("+string(s)+")")))
	}
	return b.String()
}

// FormatHistory renders stage changes oldest first.
func FormatHistory(changes []domain.StageChange) string {
	if len(changes) == 0 {
		return Dim("No stage changes recorded.") + "\n"
	}
	headers := []string{"WHEN", "FROM", "TO"}
	rows := make([][]string, 0, len(changes))
	for _, sc := range changes {
		rows = append(rows, []string{
			sc.ChangedAt.Format("2006-01-02 15:04"),
			StageBadge(sc.FromStage),
			StageBadge(sc.ToStage),
		})
	}
	return RenderTable(headers, rows)
}

func stageList(stages []domain.Stage) string {
	if len(stages) == 0 {
		return "-"
	}
	labels := make([]string, len(stages))
	for i, s := range stages {
		labels[i] = s.Label()
	}
	return strings.Join(labels, ", ")
}
