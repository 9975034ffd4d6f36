// Package store loads and saves a DRE workspace: configuration, chart of
// accounts, value cells and drill-down transactions.
package store

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/victorcarvalhox1-creator/analisederesultado/internal/accounts"
	"github.com/victorcarvalhox1-creator/analisederesultado/internal/config"
	"github.com/victorcarvalhox1-creator/analisederesultado/internal/departments"
	"github.com/victorcarvalhox1-creator/analisederesultado/internal/model"
	"github.com/victorcarvalhox1-creator/analisederesultado/internal/ordering"
)

// Paths relative to the workspace root.
const (
	CellsFile        = "data/cells.csv"
	TransactionsFile = "data/transactions.csv"
)

// Workspace is an opened workspace directory. It is not safe for concurrent
// use; callers serialize access.
type Workspace struct {
	root     string
	cfg      *config.Config
	chart    *accounts.Service
	legends  *departments.Set
	revision uint64
}

// Open loads the workspace at root. dre.yaml must exist; data files are optional.
func Open(root string) (*Workspace, error) {
	cfg, err := config.Load(filepath.Join(root, config.FileName))
	if err != nil {
		return nil, err
	}
	chart, err := accounts.Load(root)
	if err != nil {
		return nil, err
	}

	w := &Workspace{root: root, cfg: cfg, chart: chart}
	w.legends = departments.New(cfg.DepartmentList())

	if err := w.loadCells(); err != nil {
		return nil, err
	}
	if err := w.loadTransactions(); err != nil {
		return nil, err
	}
	return w, nil
}

// Root returns the workspace directory.
func (w *Workspace) Root() string {
	return w.root
}

// Config returns the workspace configuration.
func (w *Workspace) Config() *config.Config {
	return w.cfg
}

// Items returns the line items in chart order.
func (w *Workspace) Items() []*model.LineItem {
	return w.chart.All()
}

// Item returns a line item by ID.
func (w *Workspace) Item(id string) (*model.LineItem, bool) {
	return w.chart.Get(id)
}

// ByAccount returns the line item mapped to a ledger account.
func (w *Workspace) ByAccount(account string) (*model.LineItem, bool) {
	return w.chart.ByAccount(account)
}

// AddItems appends line items to the chart.
func (w *Workspace) AddItems(items []*model.LineItem) {
	w.chart = accounts.NewService(append(slices.Clone(w.chart.All()), items...))
	w.Touch()
}

// ReplaceItems swaps the whole chart, values included.
func (w *Workspace) ReplaceItems(items []*model.LineItem) {
	w.chart = accounts.NewService(items)
	w.Touch()
}

// Legends returns the department legends.
func (w *Workspace) Legends() *departments.Set {
	return w.legends
}

// SetDepartments replaces the sector map and rebuilds the legends.
func (w *Workspace) SetDepartments(deps []config.DepartmentConfig) error {
	prev := w.cfg.Departments
	w.cfg.Departments = deps
	if err := w.cfg.Validate(); err != nil {
		w.cfg.Departments = prev
		return err
	}
	w.legends = departments.New(w.cfg.DepartmentList())
	w.Touch()
	return nil
}

// GroupOrder returns a copy of the manual group order.
func (w *Workspace) GroupOrder() ordering.Manual {
	return ordering.Manual(maps.Clone(w.cfg.GroupOrder))
}

// SetGroupOrder replaces the manual group order.
func (w *Workspace) SetGroupOrder(m ordering.Manual) {
	w.cfg.GroupOrder = map[string]int(m)
	w.Touch()
}

// Touch marks the in-memory state as changed.
func (w *Workspace) Touch() {
	w.revision++
}

// Revision increases with every change; equal revisions mean equal state.
func (w *Workspace) Revision() uint64 {
	return w.revision
}

// Save writes configuration, chart, cells and transactions.
func (w *Workspace) Save() error {
	if err := config.Save(filepath.Join(w.root, config.FileName), w.cfg); err != nil {
		return err
	}
	if err := w.chart.Save(w.root); err != nil {
		return err
	}
	if err := writeFile(filepath.Join(w.root, CellsFile), func(f io.Writer) error {
		return WriteCells(f, collectCells(w.Items()))
	}); err != nil {
		return fmt.Errorf("saving cells: %w", err)
	}
	if err := writeFile(filepath.Join(w.root, TransactionsFile), func(f io.Writer) error {
		return WriteTransactions(f, collectTransactions(w.Items()))
	}); err != nil {
		return fmt.Errorf("saving transactions: %w", err)
	}
	return nil
}

func (w *Workspace) loadCells() error {
	f, err := os.Open(filepath.Join(w.root, CellsFile))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("opening cells: %w", err)
	}
	defer f.Close()

	cells, err := ReadCells(f)
	if err != nil {
		return err
	}
	for _, c := range cells {
		it, ok := w.chart.Get(c.ItemID)
		if !ok {
			return fmt.Errorf("cell for unknown item %q", c.ItemID)
		}
		applyCell(it, c)
	}
	return nil
}

func (w *Workspace) loadTransactions() error {
	f, err := os.Open(filepath.Join(w.root, TransactionsFile))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("opening transactions: %w", err)
	}
	defer f.Close()

	txs, err := ReadTransactions(f)
	if err != nil {
		return err
	}
	for _, t := range txs {
		it, ok := w.chart.Get(t.ItemID)
		if !ok {
			return fmt.Errorf("transaction for unknown item %q", t.ItemID)
		}
		it.Transactions = append(it.Transactions, t.Transaction)
	}
	return nil
}

func applyCell(it *model.LineItem, c Cell) {
	switch c.Stream {
	case string(model.Realized):
		it.EnsureRealized()
		it.Realized.Set(c.Key, c.Amount)
	case string(model.Planned):
		it.EnsurePlanned()
		it.Planned.Set(c.Key, c.Amount)
		if c.Formula != "" {
			it.Formulas[c.Key] = c.Formula
		}
	case streamRealizedFlat:
		if it.FlatRealized == nil {
			it.FlatRealized = model.MonthValues{}
		}
		it.FlatRealized[c.Key.Month] = c.Amount
	case streamPlannedFlat:
		if it.FlatPlanned == nil {
			it.FlatPlanned = model.MonthValues{}
		}
		it.FlatPlanned[c.Key.Month] = c.Amount
	}
}

// collectCells flattens every item's values in a stable order.
func collectCells(items []*model.LineItem) []Cell {
	var cells []Cell
	for _, it := range items {
		for _, k := range it.Realized.Keys() {
			cells = append(cells, Cell{ItemID: it.ID, Stream: string(model.Realized), Key: k, Amount: it.Realized[k]})
		}
		for _, k := range it.Planned.Keys() {
			cells = append(cells, Cell{ItemID: it.ID, Stream: string(model.Planned), Key: k, Amount: it.Planned[k], Formula: it.Formulas[k]})
		}
		for _, m := range it.FlatRealized.SortedMonths() {
			cells = append(cells, Cell{ItemID: it.ID, Stream: streamRealizedFlat, Key: model.Key{Month: m}, Amount: it.FlatRealized[m]})
		}
		for _, m := range it.FlatPlanned.SortedMonths() {
			cells = append(cells, Cell{ItemID: it.ID, Stream: streamPlannedFlat, Key: model.Key{Month: m}, Amount: it.FlatPlanned[m]})
		}
	}
	return cells
}

func collectTransactions(items []*model.LineItem) []ItemTransaction {
	var txs []ItemTransaction
	for _, it := range items {
		for _, t := range it.Transactions {
			txs = append(txs, ItemTransaction{ItemID: it.ID, Transaction: t})
		}
	}
	return txs
}

func writeFile(path string, write func(io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
