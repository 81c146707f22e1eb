package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/twillhq/talentboard/internal/cli/formatter"
	"github.com/twillhq/talentboard/internal/domain"
)

func newMetricsCmd(a *App, flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "metrics",
		Short: "Show revenue, placements and sourcing funnel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.Metrics.Summary(cmd.Context(), flags.advisor)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatMetrics(m))
			return nil
		},
	}
}

func newStagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stages",
		Short: "List pipeline stages in order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0, len(domain.Stages()))
			for i, s := range domain.Stages() {
				rows = append(rows, []string{fmt.Sprint(i + 1), string(s), formatter.StageBadge(s)})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable([]string{"#", "KEY", "LABEL"}, rows))
			return nil
		},
	}
}
