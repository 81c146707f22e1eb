package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/twillhq/talentboard/internal/app"
	"github.com/twillhq/talentboard/internal/cli/formatter"
)

func newAlertsCmd(a *App, flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "alerts",
		Short: "Show the alert dashboard",
		Long: `Show candidates needing attention, grouped by category and role.

Critical: in client process 5+ business days.
Urgent: new submissions (24h), qualified 3+, Twill screen 3+, final stages 3+.
Client-process and final-stage alerts stay cleared until five more business
days pass; the others clear when the candidate moves.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now, err := a.evalTime(flags)
			if err != nil {
				return err
			}
			resp, err := a.Alerts.DashboardAlerts(cmd.Context(), app.DashboardAlertsRequest{
				Now:       &now,
				AdvisorID: flags.advisor,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatDashboardAlerts(resp))
			return nil
		},
	}
}
