package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/twillhq/talentboard/internal/cli/formatter"
)

func newImportCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Load clients, advisors, roles and candidates from a YAML or JSON roster",
		Long: `Load a roster file. Records are upserted by id, so importing the same
file again updates rather than duplicates. Validation errors are all
reported and nothing is written.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stop := func() {}
			if a.interactive() {
				stop = formatter.StartSpinner(cmd.ErrOrStderr(), "Importing "+args[0])
			}
			res, err := a.Import.ImportRoster(cmd.Context(), args[0])
			stop()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d clients, %d advisors, %d roles, %d candidates\n",
				res.ClientCount, res.AdvisorCount, res.RoleCount, res.CandidateCount)
			return nil
		},
	}
}
