package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/victorcarvalhox1-creator/analisederesultado/internal/importer"
)

func newLegendCommand() *cobra.Command {
	legendCmd := &cobra.Command{
		Use:   "legend",
		Short: "Manage the line item legend (chart of DRE lines)",
	}
	legendCmd.AddCommand(newLegendImportCommand())
	return legendCmd
}

func newLegendImportCommand() *cobra.Command {
	var repoDir string
	var replace bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import line items from an xlsx or csv legend",
		Long: "Reads account, label, code, account type and the three group columns, " +
			"followed by optional month value columns. Items are appended unless --replace is set.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLegendImport(cmd, repoDir, args[0], replace)
		},
	}

	cmd.Flags().StringVar(&repoDir, "repo", ".", "workspace directory")
	cmd.Flags().BoolVar(&replace, "replace", false, "replace the whole legend, values included")

	return cmd
}

func runLegendImport(cmd *cobra.Command, repoDir, file string, replace bool) error {
	s, err := openSession(cmd, repoDir)
	if err != nil {
		return err
	}

	rows, err := s.readers().ReadFile(file)
	if err != nil {
		return err
	}
	items := importer.ParseLegend(rows)
	if len(items) == 0 {
		return fmt.Errorf("no line items found in %s", filepath.Base(file))
	}

	if replace {
		s.ws.ReplaceItems(items)
	} else {
		s.ws.AddItems(items)
	}

	name := filepath.Base(file)
	if err := s.save(cmd.Context(), fmt.Sprintf("legend: import %d items from %s", len(items), name)); err != nil {
		return err
	}
	s.logger.WithField("file", name).WithField("items", len(items)).Info("legend imported")
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d line items from %s (%d total)\n", len(items), name, len(s.ws.Items()))
	return nil
}
