package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/victorcarvalhox1-creator/analisederesultado/internal/budget"
	"github.com/victorcarvalhox1-creator/analisederesultado/internal/model"
	"github.com/victorcarvalhox1-creator/analisederesultado/internal/money"
)

// budgetFlags select where budget writes land.
type budgetFlags struct {
	filterFlags
	repoDir    string
	sourceYear string
}

func (f *budgetFlags) register(cmd *cobra.Command) {
	f.filterFlags.register(cmd)
	cmd.Flags().StringVar(&f.repoDir, "repo", ".", "workspace directory")
	cmd.Flags().StringVar(&f.sourceYear, "source-year", "", "year whose realized values serve as history")
	_ = cmd.MarkFlagRequired("company")
	_ = cmd.MarkFlagRequired("year")
}

func (f *budgetFlags) context() budget.Context {
	return budget.Context{Company: f.company, Year: f.year, Legend: f.legend, SourceYear: f.sourceYear}
}

func (f *budgetFlags) open(cmd *cobra.Command) (*session, *budget.Editor, error) {
	s, err := openSession(cmd, f.repoDir)
	if err != nil {
		return nil, nil, err
	}
	return s, budget.NewEditor(s.ws, s.ws.Legends(), f.context()), nil
}

func newBudgetCommand() *cobra.Command {
	budgetCmd := &cobra.Command{
		Use:   "budget",
		Short: "Edit planned values for a company, year and department legend",
	}
	budgetCmd.AddCommand(newBudgetSetCommand(), newBudgetDistributeCommand(), newBudgetCopyCommand())
	return budgetCmd
}

func newBudgetSetCommand() *cobra.Command {
	var flags budgetFlags

	cmd := &cobra.Command{
		Use:   "set <item-id|account> <month> <value>",
		Short: "Set one planned cell",
		Long: "Sets the planned value of an item for a month. A value ending in % is stored as a " +
			"share of the month's planned net revenue and follows it. Use -- before negative values.",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, ed, err := flags.open(cmd)
			if err != nil {
				return err
			}
			it, ok := s.ws.Item(args[0])
			if !ok {
				if it, ok = s.ws.ByAccount(args[0]); !ok {
					return fmt.Errorf("%w: %s", budget.ErrUnknownItem, args[0])
				}
			}
			if err := ed.SetCell(it.ID, args[1], args[2]); err != nil {
				return err
			}
			if err := s.save(cmd.Context(), fmt.Sprintf("budget: set %s %s %s", it.Label, args[1], args[2])); err != nil {
				return err
			}

			key := model.Key{Company: flags.company, Year: flags.year, Sector: flags.legend, Month: model.Months[model.MonthIndex(args[1])]}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s = %s\n", it.Label, key.Month, money.Format(it.Planned.Get(key)))
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newBudgetDistributeCommand() *cobra.Command {
	var flags budgetFlags
	var mode string

	cmd := &cobra.Command{
		Use:   "distribute <node-id> <annual>",
		Short: "Spread an annual target over the items under a node",
		Long: "Splits the annual value across the item leaves of the node in proportion to their " +
			"realized values of --source-year, then over the months by history or equally.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := budget.ParseMode(mode)
			if err != nil {
				return err
			}
			annual, err := money.Parse(args[1])
			if err != nil {
				return err
			}
			s, ed, err := flags.open(cmd)
			if err != nil {
				return err
			}
			node := s.build(ed.Query()).Find(args[0])
			if node == nil {
				return fmt.Errorf("no node %q in the budget view", args[0])
			}
			n, err := ed.Distribute(node, annual, m)
			if err != nil {
				return err
			}
			if err := s.save(cmd.Context(), fmt.Sprintf("budget: distribute %s over %s", args[1], node.Label)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Distributed %s over %d items under %s\n", money.Format(annual), n, node.Label)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&mode, "mode", string(budget.ModeHistory), "monthly split: history or equal")
	return cmd
}

func newBudgetCopyCommand() *cobra.Command {
	var flags budgetFlags

	cmd := &cobra.Command{
		Use:   "copy",
		Short: "Replace the plan with the realized values of --source-year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, ed, err := flags.open(cmd)
			if err != nil {
				return err
			}
			n, err := ed.CopyRealized()
			if err != nil {
				return err
			}
			if err := s.save(cmd.Context(), fmt.Sprintf("budget: copy %s realized into %s %s", flags.sourceYear, flags.year, flags.legend)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Copied realized %s into the %s plan of %d items\n", flags.sourceYear, flags.year, n)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}
