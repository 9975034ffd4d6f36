package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/victorcarvalhox1-creator/analisederesultado/internal/narrative"
	"github.com/victorcarvalhox1-creator/analisederesultado/internal/report"
)

func newAnalyzeCommand() *cobra.Command {
	var filter filterFlags
	var repoDir string
	var html bool

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Ask Gemini for a CFO-style analysis of the DRE",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, repoDir)
			if err != nil {
				return err
			}
			provider, err := narrative.NewGeminiProvider(cmd.Context(), s.env.GeminiAPIKey)
			if err != nil {
				return err
			}
			cfg := s.ws.Config()
			analyst := narrative.NewAnalyst(provider, cfg.Analysis.Model, cfg.Analysis.TopItems, s.logger)

			q := report.Query{Filter: filter.filter()}
			md, err := analyst.Analyze(cmd.Context(), narrative.Snapshot{
				Company: cfg.Company.Name,
				Forest:  s.build(q),
				Months:  report.AvailableMonths(s.ws.Items(), q),
			})
			if err != nil {
				return err
			}
			if html {
				if md, err = narrative.RenderHTML(md); err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), md)
			return nil
		},
	}

	filter.register(cmd)
	cmd.Flags().StringVar(&repoDir, "repo", ".", "workspace directory")
	cmd.Flags().BoolVar(&html, "html", false, "print HTML instead of Markdown")

	return cmd
}
