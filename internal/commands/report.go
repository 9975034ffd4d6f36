package commands

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/victorcarvalhox1-creator/analisederesultado/internal/report"
)

type reportOptions struct {
	filterFlags
	repoDir     string
	historyYear string
	planned     bool
	vertical    bool
	history     bool
	depth       int
	asJSON      bool
}

func newReportCommand() *cobra.Command {
	var opts reportOptions

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the DRE tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVar(&opts.repoDir, "repo", ".", "workspace directory")
	cmd.Flags().StringVar(&opts.historyYear, "history-year", "", "take realized values from this year")
	cmd.Flags().BoolVar(&opts.planned, "planned", false, "show planned next to realized values")
	cmd.Flags().BoolVar(&opts.vertical, "vertical", false, "add the vertical analysis column")
	cmd.Flags().BoolVar(&opts.history, "history", false, "show ledger history under each item")
	cmd.Flags().IntVar(&opts.depth, "depth", 0, "levels to show (0 for all)")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print the tree as JSON")

	return cmd
}

func runReport(cmd *cobra.Command, opts reportOptions) error {
	s, err := openSession(cmd, opts.repoDir)
	if err != nil {
		return err
	}

	q := report.Query{Filter: opts.filter(), HistoryYear: opts.historyYear}
	forest := s.build(q)
	months := report.AvailableMonths(s.ws.Items(), q)

	if opts.asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Months []string      `json:"months"`
			Forest report.Forest `json:"forest"`
		}{months, forest})
	}

	return report.Render(cmd.OutOrStdout(), forest, report.RenderOptions{
		Months:   months,
		Planned:  opts.planned,
		Vertical: opts.vertical,
		MaxDepth: opts.depth,
		History:  opts.history,
	})
}
