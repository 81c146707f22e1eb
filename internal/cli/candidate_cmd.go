package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/twillhq/talentboard/internal/app"
	"github.com/twillhq/talentboard/internal/cli/formatter"
	"github.com/twillhq/talentboard/internal/domain"
)

func newCandidateCmd(a *App, flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "candidate",
		Aliases: []string{"cand"},
		Short:   "Inspect and move candidates",
	}
	cmd.AddCommand(
		newCandidateListCmd(a, flags),
		newCandidateShowCmd(a, flags),
		newCandidateOptionsCmd(a, flags),
		newCandidateMoveCmd(a, flags),
		newCandidateClearCmd(a, flags),
		newCandidateTouchCmd(a, flags),
		newCandidateHistoryCmd(a),
	)
	return cmd
}

func newCandidateListCmd(a *App, flags *globalFlags) *cobra.Command {
	var roleInput string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List candidates with time in stage",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			roleID := ""
			if roleInput != "" {
				id, err := resolveRoleID(ctx, a, roleInput)
				if err != nil {
					return err
				}
				roleID = id
			}
			now, err := a.evalTime(flags)
			if err != nil {
				return err
			}
			candidates, err := a.Candidates.List(ctx, roleID)
			if err != nil {
				return err
			}
			views := make([]app.CandidateView, 0, len(candidates))
			for _, c := range candidates {
				v, err := a.Candidates.View(ctx, c.ID, now)
				if err != nil {
					return err
				}
				views = append(views, *v)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCandidateTable(views))
			return nil
		},
	}
	cmd.Flags().StringVar(&roleInput, "role", "", "Only candidates of this role")
	return cmd
}

func newCandidateShowCmd(a *App, flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show CANDIDATE_ID",
		Short: "Show a candidate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view, now, err := loadView(cmd.Context(), a, flags, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatCandidateView(view, now))
			return nil
		},
	}
}

func newCandidateOptionsCmd(a *App, flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "options CANDIDATE_ID",
		Short: "Show suggested next stages",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view, _, err := loadView(cmd.Context(), a, flags, args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatOptions(view.Options))
			return nil
		},
	}
}

func newCandidateMoveCmd(a *App, flags *globalFlags) *cobra.Command {
	var stage domain.Stage

	cmd := &cobra.Command{
		Use:   "move CANDIDATE_ID",
		Short: "Move a candidate to another stage",
		Long: `Move a candidate to any stage. The move resets the stage timestamps
and any cleared alert. Without --stage on a terminal, pick from the
suggested next stages.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			view, now, err := loadView(ctx, a, flags, args[0])
			if err != nil {
				return err
			}

			if stage == "" {
				if !a.interactive() {
					return errors.New("--stage is required when not running in a terminal")
				}
				if stage, err = promptStage(view); err != nil {
					return err
				}
			}

			res, err := a.Candidates.StageTransition(ctx, view.Candidate.ID, stage, now)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Moved %s: %s → %s\n",
				res.Candidate.Name,
				formatter.StageBadge(res.Change.FromStage),
				formatter.StageBadge(res.Change.ToStage))
			return nil
		},
	}
	cmd.Flags().Var(newStageValue(&stage), "stage", "Target stage key or label (e.g. middle_stages, \"Final Stages\")")
	return cmd
}

// promptStage asks for the target stage, suggestions first.
func promptStage(view *app.CandidateView) (domain.Stage, error) {
	suggested := make(map[domain.Stage]bool, len(view.Options))
	options := make([]huh.Option[domain.Stage], 0, len(domain.Stages()))
	for _, s := range view.Options {
		suggested[s] = true
		options = append(options, huh.NewOption(s.Label()+" (suggested)", s))
	}
	for _, s := range domain.Stages() {
		if !suggested[s] {
			options = append(options, huh.NewOption(s.Label(), s))
		}
	}

	var choice domain.Stage
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[domain.Stage]().
				Title(fmt.Sprintf("Move %s from %s to", view.Candidate.Name, view.Candidate.CurrentStage.Label())).
				Options(options...).
				Value(&choice),
		),
	).WithTheme(boardHuhTheme()).WithShowHelp(false)
	if err := form.Run(); err != nil {
		return "", err
	}
	return choice, nil
}

func newCandidateClearCmd(a *App, flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "clear CANDIDATE_ID",
		Short: "Acknowledge a client-process or final-stages alert",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveCandidateID(ctx, a, args[0])
			if err != nil {
				return err
			}
			now, err := a.evalTime(flags)
			if err != nil {
				return err
			}
			c, err := a.Candidates.ClearAlert(ctx, id, now)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared alert for %s; it re-arms after 5 business days without progress.\n", c.Name)
			return nil
		},
	}
}

func newCandidateTouchCmd(a *App, flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "touch CANDIDATE_ID",
		Short: "Record activity without changing stage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveCandidateID(ctx, a, args[0])
			if err != nil {
				return err
			}
			now, err := a.evalTime(flags)
			if err != nil {
				return err
			}
			c, err := a.Candidates.Touch(ctx, id, now)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", c.Name)
			return nil
		},
	}
}

func newCandidateHistoryCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "history CANDIDATE_ID",
		Short: "Show recorded stage changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveCandidateID(ctx, a, args[0])
			if err != nil {
				return err
			}
			changes, err := a.Candidates.History(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHistory(changes))
			return nil
		},
	}
}

func loadView(ctx context.Context, a *App, flags *globalFlags, input string) (*app.CandidateView, time.Time, error) {
	id, err := resolveCandidateID(ctx, a, input)
	if err != nil {
		return nil, time.Time{}, err
	}
	now, err := a.evalTime(flags)
	if err != nil {
		return nil, time.Time{}, err
	}
	view, err := a.Candidates.View(ctx, id, now)
	if err != nil {
		return nil, time.Time{}, err
	}
	return view, now, nil
}
