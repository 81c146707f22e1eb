package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/twillhq/talentboard/internal/cli/formatter"
	"github.com/twillhq/talentboard/internal/domain"
)

func newRoleCmd(a *App, flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "role",
		Short: "Inspect roles and set priority",
	}
	cmd.AddCommand(
		newRoleListCmd(a, flags),
		newRoleShowCmd(a, flags),
		newRoleAlertsCmd(a, flags),
		newRolePriorityCmd(a),
	)
	return cmd
}

func newRoleListCmd(a *App, flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List roles, high priority first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := a.Roles.List(cmd.Context(), flags.advisor)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRoleList(items))
			return nil
		},
	}
}

func newRoleShowCmd(a *App, flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show ROLE_ID",
		Short: "Show a role's pipeline, candidates and alerts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveRoleID(ctx, a, args[0])
			if err != nil {
				return err
			}
			now, err := a.evalTime(flags)
			if err != nil {
				return err
			}
			ov, err := a.Roles.Overview(ctx, id, now)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatRoleOverview(ov))
			return nil
		},
	}
}

func newRoleAlertsCmd(a *App, flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "alerts ROLE_ID",
		Short: "Show alerts for one role",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveRoleID(ctx, a, args[0])
			if err != nil {
				return err
			}
			now, err := a.evalTime(flags)
			if err != nil {
				return err
			}
			summary, err := a.Alerts.RoleAlerts(ctx, id, now)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRoleAlerts(summary))
			return nil
		},
	}
}

func newRolePriorityCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "priority ROLE_ID high|low|deprioritized",
		Short: "Set a role's priority",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var priority domain.RolePriority
			if err := (priorityValue{priority: &priority}).Set(args[1]); err != nil {
				return err
			}
			ctx := cmd.Context()
			id, err := resolveRoleID(ctx, a, args[0])
			if err != nil {
				return err
			}
			role, err := a.Roles.UpdatePriority(ctx, id, priority)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s priority set to %s\n", role.Title, formatter.PriorityPill(role.Priority))
			return nil
		},
	}
}
