package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/victorcarvalhox1-creator/analisederesultado/internal/accounts"
	"github.com/victorcarvalhox1-creator/analisederesultado/internal/config"
	"github.com/victorcarvalhox1-creator/analisederesultado/internal/gitops"
)

func newInitCommand() *cobra.Command {
	var name string
	var git bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new DRE workspace",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd, absDir, name, git)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "company name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().BoolVar(&git, "git", false, "track the workspace in a git repository")

	return cmd
}

func runInit(cmd *cobra.Command, dir, name string, git bool) error {
	if _, err := os.Stat(filepath.Join(dir, config.FileName)); err == nil {
		return fmt.Errorf("%s already exists in %s", config.FileName, dir)
	}

	dirs := []string{
		"accounts",
		"data",
		"logs",
		"import",
		filepath.Join("import", "processed"),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	cfg := config.Default(name)
	if err := config.Save(filepath.Join(dir, config.FileName), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	svc := accounts.NewService(accounts.DefaultChart())
	if err := svc.Save(dir); err != nil {
		return fmt.Errorf("writing chart of accounts: %w", err)
	}

	gitignore := ".env\nimport/processed/\n"
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "import", ".gitkeep"), []byte{}, 0o644); err != nil {
		return fmt.Errorf("writing .gitkeep: %w", err)
	}

	out := cmd.OutOrStdout()
	if !git {
		fmt.Fprintf(out, "Initialized DRE workspace at %s\n", dir)
		return nil
	}
	return initGit(cmd, out, dir, name, cfg.Git)
}

func initGit(cmd *cobra.Command, out io.Writer, dir, name string, git config.GitConfig) error {
	ctx := cmd.Context()
	if err := gitops.Init(ctx, dir); err != nil {
		return err
	}
	hash, err := gitops.Snapshot(ctx, dir, "init: Initialize "+name, gitops.Author{Name: git.AuthorName, Email: git.AuthorEmail})
	if err != nil {
		return fmt.Errorf("initial commit: %w", err)
	}
	fmt.Fprintf(out, "Initialized DRE workspace at %s (%s)\n", dir, hash)
	return nil
}
