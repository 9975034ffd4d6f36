package commands

import (
	"fmt"
	"slices"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/victorcarvalhox1-creator/analisederesultado/internal/ordering"
	"github.com/victorcarvalhox1-creator/analisederesultado/internal/report"
)

func newOrderCommand() *cobra.Command {
	orderCmd := &cobra.Command{
		Use:   "order",
		Short: "Manage the manual order of DRE groups",
	}
	orderCmd.AddCommand(newOrderListCommand(), newOrderMoveCommand(), newOrderSetCommand())
	return orderCmd
}

// siblings returns the labels of the forest roots, or of the children of parentID.
func siblings(s *session, parentID string) ([]string, error) {
	forest := s.build(report.Query{EditMode: true})
	nodes := []*report.Node(forest)
	if parentID != "" {
		parent := forest.Find(parentID)
		if parent == nil {
			return nil, fmt.Errorf("no node %q", parentID)
		}
		nodes = parent.Children
	}
	labels := make([]string, 0, len(nodes))
	for _, n := range nodes {
		if n.Level < report.LevelItem {
			labels = append(labels, n.Label)
		}
	}
	return labels, nil
}

func newOrderListCommand() *cobra.Command {
	var repoDir, parent string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List group labels with their manual rank",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, repoDir)
			if err != nil {
				return err
			}
			labels, err := siblings(s, parent)
			if err != nil {
				return err
			}
			order := s.ws.GroupOrder()
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "#\tRANK\tLABEL")
			for i, label := range order.Sorted(labels) {
				rank := "-"
				if _, ok := order[label]; ok {
					rank = strconv.Itoa(order.Get(label))
				}
				fmt.Fprintf(tw, "%d\t%s\t%s\n", i, rank, label)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&repoDir, "repo", ".", "workspace directory")
	cmd.Flags().StringVar(&parent, "parent", "", "list the children of this node instead of the top groups")
	return cmd
}

func newOrderMoveCommand() *cobra.Command {
	var repoDir, parent string

	cmd := &cobra.Command{
		Use:   "move <label> <up|down>",
		Short: "Move a group one place up or down among its siblings",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := ordering.ParseDirection(args[1])
			if err != nil {
				return err
			}
			s, err := openSession(cmd, repoDir)
			if err != nil {
				return err
			}
			labels, err := siblings(s, parent)
			if err != nil {
				return err
			}
			current := s.ws.GroupOrder()
			idx := slices.Index(current.Sorted(labels), args[0])
			if idx < 0 {
				return fmt.Errorf("no group %q at this level", args[0])
			}

			order := current.Move(labels, idx, dir)
			s.ws.SetGroupOrder(order)
			if err := s.save(cmd.Context(), fmt.Sprintf("order: move %s %s", args[0], dir)); err != nil {
				return err
			}
			for i, label := range order.Sorted(labels) {
				fmt.Fprintf(cmd.OutOrStdout(), "%d. %s\n", i+1, label)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&repoDir, "repo", ".", "workspace directory")
	cmd.Flags().StringVar(&parent, "parent", "", "node whose children are reordered")
	return cmd
}

func newOrderSetCommand() *cobra.Command {
	var repoDir string

	cmd := &cobra.Command{
		Use:   "set <label> <rank>",
		Short: "Pin a group label to a manual rank",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rank, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("rank must be a number: %w", err)
			}
			s, err := openSession(cmd, repoDir)
			if err != nil {
				return err
			}
			s.ws.SetGroupOrder(s.ws.GroupOrder().Set(args[0], rank))
			return s.save(cmd.Context(), fmt.Sprintf("order: set %s %d", args[0], rank))
		},
	}
	cmd.Flags().StringVar(&repoDir, "repo", ".", "workspace directory")
	return cmd
}
