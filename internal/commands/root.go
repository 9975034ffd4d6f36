package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/victorcarvalhox1-creator/analisederesultado/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "dre",
		Short:   "Income statement (DRE) analysis and budgeting",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newInitCommand(),
		newLegendCommand(),
		newLedgerCommand(),
		newDepartmentsCommand(),
		newOrderCommand(),
		newReportCommand(),
		newBudgetCommand(),
		newCheckCommand(),
		newAnalyzeCommand(),
		newServeCommand(),
	)

	return rootCmd
}
