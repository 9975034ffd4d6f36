package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/victorcarvalhox1-creator/analisederesultado/internal/audit"
	"github.com/victorcarvalhox1-creator/analisederesultado/internal/budget"
)

func newCheckCommand() *cobra.Command {
	var repoDir string
	var fix bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check line items for inconsistent values",
		Long: `Check line items for cells outside the calendar, unreadable or stale
percentage formulas, realized values that disagree with their ledger
postings, accounts mapped twice and items missing from the DRE tree.

With --fix, stale formulas are re-evaluated and the workspace is saved
before checking.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, repoDir)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if fix {
				n := budget.Recompute(s.ws.Items(), s.ws.Legends())
				s.ws.Touch()
				if err := s.save(cmd.Context(), "check: recompute formulas"); err != nil {
					return err
				}
				fmt.Fprintf(out, "Recomputed %d formula cells\n", n)
			}

			findings := audit.Check(s.ws.Items(), s.ws.Legends())
			if len(findings) == 0 {
				fmt.Fprintf(out, "No problems found in %d line items\n", len(s.ws.Items()))
				return nil
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "RULE\tITEM\tDESCRIPTION")
			for _, f := range findings {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", f.Rule, f.ItemID, f.Description)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			return fmt.Errorf("%d problem(s) found", len(findings))
		},
	}
	cmd.Flags().StringVar(&repoDir, "repo", ".", "workspace directory")
	cmd.Flags().BoolVar(&fix, "fix", false, "re-evaluate percentage formulas before checking")
	return cmd
}
