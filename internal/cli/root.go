package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/twillhq/talentboard/internal/app"
	"github.com/twillhq/talentboard/internal/calendar"
)

// App holds the use cases and runtime settings shared by every command.
type App struct {
	Alerts     app.AlertUseCase
	Roles      app.RoleUseCase
	Candidates app.CandidateUseCase
	Metrics    app.MetricsUseCase
	Import     app.ImportUseCase

	// Clock reports the current time in the dashboard's zone.
	Clock func() time.Time
	// DefaultAdvisor scopes alerts, roles and metrics when --advisor is unset.
	DefaultAdvisor string
	// Addr is the default listen address for serve.
	Addr string

	Logger *slog.Logger
	// LogLevel gates Logger; --verbose lowers it to Info.
	LogLevel *slog.LevelVar

	IsInteractive func() bool
}

// globalFlags are the persistent flags every subcommand can read.
type globalFlags struct {
	advisor string
	now     string
	advance int
	verbose bool
}

// NewRootCmd creates the top-level "talentboard" command and registers all
// subcommands against the provided App.
func NewRootCmd(a *App) *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:           "talentboard",
		Short:         "Recruiting pipeline alerts for talent advisors",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flags.verbose && a.LogLevel != nil {
				a.LogLevel.Set(slog.LevelInfo)
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.advisor, "advisor", a.DefaultAdvisor, "Talent advisor id whose roles to show (empty for all)")
	pf.StringVar(&flags.now, "now", "", "Evaluate as of this instant (RFC3339 or YYYY-MM-DD)")
	pf.IntVar(&flags.advance, "advance", 0, "Shift the evaluation time by N business days")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Log use-case events to stderr")

	root.AddCommand(
		newAlertsCmd(a, flags),
		newRoleCmd(a, flags),
		newCandidateCmd(a, flags),
		newMetricsCmd(a, flags),
		newImportCmd(a),
		newServeCmd(a, flags),
		newBoardCmd(a, flags),
		newStagesCmd(),
	)
	return root
}

// evalTime resolves the instant commands evaluate at: --now when given,
// otherwise the clock, then shifted by --advance business days.
func (a *App) evalTime(flags *globalFlags) (time.Time, error) {
	now := a.clock()
	if flags.now != "" {
		t, err := parseInstant(flags.now, now.Location())
		if err != nil {
			return time.Time{}, err
		}
		now = t
	}
	if flags.advance != 0 {
		now = calendar.AddBusinessDays(now, flags.advance)
	}
	return now, nil
}

func (a *App) clock() time.Time {
	if a.Clock == nil {
		return time.Now()
	}
	return a.Clock()
}

func parseInstant(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.In(loc), nil
	}
	if t, err := time.ParseInLocation("2006-01-02", s, loc); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid --now %q: expected RFC3339 or YYYY-MM-DD", s)
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}
