package commands

import (
	"fmt"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/victorcarvalhox1-creator/analisederesultado/internal/config"
)

func newDepartmentsCommand() *cobra.Command {
	depCmd := &cobra.Command{
		Use:     "departments",
		Aliases: []string{"dep"},
		Short:   "Manage the sector to department legend map",
	}
	depCmd.AddCommand(newDepartmentsListCommand(), newDepartmentsSetCommand(), newDepartmentsRemoveCommand())
	return depCmd
}

func newDepartmentsListCommand() *cobra.Command {
	var repoDir string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List department legends and their sectors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, repoDir)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ORDER\tLEGEND\tSECTORS")
			for _, l := range s.ws.Legends().All() {
				fmt.Fprintf(tw, "%d\t%s\t%s\n", l.Order, l.Label, strings.Join(l.Members(), ", "))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&repoDir, "repo", ".", "workspace directory")
	return cmd
}

func newDepartmentsSetCommand() *cobra.Command {
	var repoDir, legend string
	var order int

	cmd := &cobra.Command{
		Use:   "set <code> <name>",
		Short: "Add a sector or update the sector with this code and name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, repoDir)
			if err != nil {
				return err
			}
			dep := config.DepartmentConfig{Code: args[0], Name: args[1], Legend: legend, Order: order}

			deps := slices.Clone(s.ws.Config().Departments)
			i := slices.IndexFunc(deps, func(d config.DepartmentConfig) bool {
				return d.Code == dep.Code && strings.EqualFold(d.Name, dep.Name)
			})
			if i >= 0 {
				deps[i] = dep
			} else {
				deps = append(deps, dep)
			}
			if err := s.ws.SetDepartments(deps); err != nil {
				return err
			}
			if err := s.save(cmd.Context(), fmt.Sprintf("departments: set %s %s", dep.Code, dep.Name)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Sector %s %s -> %s\n", dep.Code, dep.Name, s.ws.Legends().Resolve(dep.Name).Label)
			return nil
		},
	}
	cmd.Flags().StringVar(&repoDir, "repo", ".", "workspace directory")
	cmd.Flags().StringVar(&legend, "legend", "", "department legend (defaults to the sector name)")
	cmd.Flags().IntVar(&order, "order", 0, "legend display order")
	return cmd
}

func newDepartmentsRemoveCommand() *cobra.Command {
	var repoDir string

	cmd := &cobra.Command{
		Use:   "remove <code>",
		Short: "Remove every sector with this code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, repoDir)
			if err != nil {
				return err
			}
			before := s.ws.Config().Departments
			deps := slices.DeleteFunc(slices.Clone(before), func(d config.DepartmentConfig) bool {
				return d.Code == args[0]
			})
			if len(deps) == len(before) {
				return fmt.Errorf("no sector with code %s", args[0])
			}
			if err := s.ws.SetDepartments(deps); err != nil {
				return err
			}
			if err := s.save(cmd.Context(), "departments: remove "+args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d sector(s) with code %s\n", len(before)-len(deps), args[0])
			return nil
		},
	}
	cmd.Flags().StringVar(&repoDir, "repo", ".", "workspace directory")
	return cmd
}
