package commands

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/victorcarvalhox1-creator/analisederesultado/internal/importer"
	"github.com/victorcarvalhox1-creator/analisederesultado/internal/importlog"
	"github.com/victorcarvalhox1-creator/analisederesultado/internal/money"
)

func newLedgerCommand() *cobra.Command {
	ledgerCmd := &cobra.Command{
		Use:   "ledger",
		Short: "Import accounting ledgers into realized values",
	}
	ledgerCmd.AddCommand(newLedgerImportCommand())
	return ledgerCmd
}

func newLedgerImportCommand() *cobra.Command {
	var repoDir string

	cmd := &cobra.Command{
		Use:   "import [file...]",
		Short: "Import ledger files",
		Long: "Books each ledger row into the line item whose account matches. " +
			"Without arguments every readable file in import/ is imported and moved to import/processed/.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLedgerImport(cmd, repoDir, args)
		},
	}

	cmd.Flags().StringVar(&repoDir, "repo", ".", "workspace directory")

	return cmd
}

type ledgerFile struct {
	path    string
	scanned bool // found in import/ and moved once imported
}

func runLedgerImport(cmd *cobra.Command, repoDir string, args []string) error {
	s, err := openSession(cmd, repoDir)
	if err != nil {
		return err
	}
	reg := s.readers()
	root := s.ws.Root()

	var files []ledgerFile
	for _, a := range args {
		files = append(files, ledgerFile{path: a})
	}
	if len(args) == 0 {
		found, err := importer.Scan(root, reg)
		if err != nil {
			return err
		}
		for _, f := range found {
			files = append(files, ledgerFile{path: f.Path, scanned: true})
		}
	}
	if len(files) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No ledger files to import.")
		return nil
	}

	out := cmd.OutOrStdout()
	var entries []importlog.Entry
	var names []string
	for _, f := range files {
		name := filepath.Base(f.path)
		rows, err := reg.ReadFile(f.path)
		if err != nil {
			return err
		}
		postings, err := importer.ParseLedger(rows)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		sum := importer.Apply(s.ws, postings)

		log := s.logger.WithFields(logrus.Fields{
			"file":          name,
			"processed":     sum.Processed,
			"matched":       sum.Matched,
			"unmatched":     sum.Unmatched,
			"invalid_dates": sum.InvalidDates,
			"volume":        sum.Volume.StringFixed(2),
		})
		log.Info("ledger imported")
		if len(sum.UnmatchedAccounts) > 0 {
			log.WithField("accounts", sum.UnmatchedAccounts).Warn("accounts not in the legend")
		}

		fmt.Fprintf(out, "%s: %d rows, %d matched, %d unmatched, %d invalid dates, volume %s\n",
			name, sum.Processed, sum.Matched, sum.Unmatched, sum.InvalidDates, money.Format(sum.Volume))

		entries = append(entries, importlog.Entry{
			Timestamp:    time.Now().UTC().Truncate(time.Second),
			File:         name,
			Processed:    sum.Processed,
			Matched:      sum.Matched,
			Unmatched:    sum.Unmatched,
			InvalidDates: sum.InvalidDates,
			Volume:       sum.Volume,
		})
		names = append(names, name)
	}
	s.ws.Touch()

	// The snapshot taken by save must include the moved files.
	for _, f := range files {
		if !f.scanned {
			continue
		}
		if err := importer.MarkProcessed(root, filepath.Base(f.path)); err != nil {
			return err
		}
	}
	if err := importlog.Append(root, entries); err != nil {
		return err
	}

	msg := fmt.Sprintf("ledger: import %s", names[0])
	if len(names) > 1 {
		msg = fmt.Sprintf("ledger: import %d files", len(names))
	}
	return s.save(cmd.Context(), msg)
}
