package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/victorcarvalhox1-creator/analisederesultado/internal/config"
	"github.com/victorcarvalhox1-creator/analisederesultado/internal/gitops"
	"github.com/victorcarvalhox1-creator/analisederesultado/internal/importer"
	"github.com/victorcarvalhox1-creator/analisederesultado/internal/logging"
	"github.com/victorcarvalhox1-creator/analisederesultado/internal/ordering"
	"github.com/victorcarvalhox1-creator/analisederesultado/internal/report"
	"github.com/victorcarvalhox1-creator/analisederesultado/internal/store"
)

// session is an opened workspace plus the process settings of one command.
type session struct {
	ws     *store.Workspace
	env    *config.Env
	logger *logrus.Logger
}

func openSession(cmd *cobra.Command, repoDir string) (*session, error) {
	root, err := filepath.Abs(repoDir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}
	env, err := config.LoadEnv(root)
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(cmd.ErrOrStderr(), env.LogLevel, env.LogFormat)
	if err != nil {
		return nil, err
	}
	ws, err := store.Open(root)
	if err != nil {
		return nil, fmt.Errorf("opening workspace %s: %w", root, err)
	}
	return &session{ws: ws, env: env, logger: logger}, nil
}

// save writes the workspace and, when it is a git repository with
// auto-commit on, commits the change with message.
func (s *session) save(ctx context.Context, message string) error {
	if err := s.ws.Save(); err != nil {
		return err
	}

	git := s.ws.Config().Git
	root := s.ws.Root()
	if !git.AutoCommit || !gitops.IsRepo(root) || !gitops.Available() {
		return nil
	}
	hash, err := gitops.Snapshot(ctx, root, message, gitops.Author{Name: git.AuthorName, Email: git.AuthorEmail})
	if err != nil {
		return fmt.Errorf("committing workspace: %w", err)
	}
	if hash != "" {
		s.logger.WithFields(logrus.Fields{"commit": hash, "message": message}).Info("workspace committed")
	}
	return nil
}

func (s *session) builder() *report.Builder {
	return report.NewBuilder(ordering.DefaultPresets(), s.ws.Legends())
}

// build returns the forest for q with the workspace group order applied.
func (s *session) build(q report.Query) report.Forest {
	q.Order = s.ws.GroupOrder()
	return s.builder().Build(s.ws.Items(), q)
}

// readers returns the row readers for the workspace's import settings.
func (s *session) readers() *importer.Registry {
	imp := s.ws.Config().Import
	reg := importer.NewRegistry()
	reg.Register(importer.XLSXReader{})
	reg.Register(importer.CSVReader{
		Comma:  []rune(imp.Separator)[0],
		Latin1: imp.Encoding == "latin1",
	})
	return reg
}

// filterFlags are the breakdown selection flags shared by several commands.
type filterFlags struct {
	company string
	year    string
	legend  string
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.company, "company", "", "company (empty for all)")
	cmd.Flags().StringVar(&f.year, "year", "", "year (empty for all)")
	cmd.Flags().StringVar(&f.legend, "legend", "", "department legend (empty for the consolidated view)")
}

func (f *filterFlags) filter() report.Filter {
	return report.Filter{Company: f.company, Year: f.year, Legend: f.legend}
}
