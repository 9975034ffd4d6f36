// Package budget writes planned values: single cells, percentage-of-revenue
// formulas, annual targets spread over leaves and months, and copies of
// realized history.
package budget

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/victorcarvalhox1-creator/analisederesultado/internal/departments"
	"github.com/victorcarvalhox1-creator/analisederesultado/internal/model"
	"github.com/victorcarvalhox1-creator/analisederesultado/internal/money"
	"github.com/victorcarvalhox1-creator/analisederesultado/internal/report"
)

var (
	// ErrConsolidatedView rejects writes made without a department legend.
	ErrConsolidatedView = errors.New("the consolidated view is read-only: select a department legend to edit the budget")
	// ErrMissingContext rejects writes without a company or year.
	ErrMissingContext = errors.New("budget edits need a company and a year")
	// ErrUnknownItem is returned for an item ID that does not exist.
	ErrUnknownItem = errors.New("unknown line item")
	// ErrUnknownMonth is returned for a month outside the calendar.
	ErrUnknownMonth = errors.New("unknown month")
)

// ItemSet is the mutable line item collection the editor writes into.
type ItemSet interface {
	Items() []*model.LineItem
	Item(id string) (*model.LineItem, bool)
	Touch()
}

// Context is the budget screen selection. Writes land in the cell
// (Company, Year, Legend, month): the legend label is the storage sector.
type Context struct {
	Company    string
	Year       string
	Legend     string
	SourceYear string // realized history shown next to the plan
}

func (c Context) writable() error {
	if c.Legend == "" {
		return ErrConsolidatedView
	}
	if c.Company == "" || c.Year == "" {
		return ErrMissingContext
	}
	return nil
}

func (c Context) key(month string) model.Key {
	return model.Key{Company: c.Company, Year: c.Year, Sector: c.Legend, Month: month}
}

// Editor applies budget edits for one Context.
type Editor struct {
	items   ItemSet
	legends *departments.Set
	ctx     Context
}

// NewEditor creates an Editor.
func NewEditor(items ItemSet, legends *departments.Set, ctx Context) *Editor {
	if legends == nil {
		legends = departments.New(nil)
	}
	return &Editor{items: items, legends: legends, ctx: ctx}
}

// Context returns the editor's selection.
func (e *Editor) Context() Context {
	return e.ctx
}

// Query is the tree query for the budget screen: plan of Year, realized of SourceYear, every row shown.
func (e *Editor) Query() report.Query {
	return report.Query{
		Filter:      report.Filter{Company: e.ctx.Company, Year: e.ctx.Year, Legend: e.ctx.Legend},
		HistoryYear: e.ctx.SourceYear,
		EditMode:    true,
	}
}

// RevenueBase returns the planned net revenue per month for the context.
// Without a legend every sector counts.
func (e *Editor) RevenueBase() model.MonthValues {
	var legend *departments.Legend
	if e.ctx.Legend != "" {
		legend = e.legends.Resolve(e.ctx.Legend)
	}
	return revenueBase(e.items.Items(), e.ctx.Company, e.ctx.Year, legend)
}

// SetCell stores a raw cell entry. A value ending in "%" becomes a formula
// whose cached amount is that share of the month's revenue base; anything
// else is parsed as an amount and removes any formula from the cell.
// All formulas are then re-evaluated.
func (e *Editor) SetCell(itemID, month, raw string) error {
	if err := e.ctx.writable(); err != nil {
		return err
	}
	idx := model.MonthIndex(month)
	if idx < 0 {
		return fmt.Errorf("%w: %q", ErrUnknownMonth, month)
	}
	month = model.Months[idx]
	it, ok := e.items.Item(itemID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownItem, itemID)
	}

	key := e.ctx.key(month)
	if money.IsPercent(raw) {
		pct, err := money.ParsePercent(raw)
		if err != nil {
			return err
		}
		base := e.RevenueBase()[month]
		it.EnsurePlanned()
		it.Formulas[key] = strings.TrimSpace(raw)
		it.Planned.Set(key, base.Mul(pct))
	} else {
		v, err := money.Parse(raw)
		if err != nil {
			return err
		}
		it.EnsurePlanned()
		it.Planned.Set(key, v)
		delete(it.Formulas, key)
	}

	Recompute(e.items.Items(), e.legends)
	e.items.Touch()
	return nil
}

// Distribute spreads an annual target over the item leaves under node, using
// the realized values the node was built with. It returns the number of
// leaves written; a node without item leaves is a no-op.
func (e *Editor) Distribute(node *report.Node, annual decimal.Decimal, mode Mode) (int, error) {
	if err := e.ctx.writable(); err != nil {
		return 0, err
	}
	leaves := node.ItemLeaves()
	if len(leaves) == 0 {
		return 0, nil
	}

	targets := make([]*model.LineItem, len(leaves))
	realized := make([]model.MonthValues, len(leaves))
	for i, leaf := range leaves {
		it, ok := e.items.Item(leaf.ItemID)
		if !ok {
			return 0, fmt.Errorf("%w: %s", ErrUnknownItem, leaf.ItemID)
		}
		targets[i] = it
		realized[i] = leaf.Realized
	}

	for i, months := range Allocate(realized, annual, mode) {
		it := targets[i]
		it.EnsurePlanned()
		for _, m := range model.Months {
			key := e.ctx.key(m)
			it.Planned.Set(key, months[m])
			delete(it.Formulas, key)
		}
	}

	Recompute(e.items.Items(), e.legends)
	e.items.Touch()
	return len(leaves), nil
}

// CopyRealized replaces the plan of every item in the context with its
// realized values of SourceYear for the same company and legend. Items
// without realized values there are left alone. It returns the items written.
func (e *Editor) CopyRealized() (int, error) {
	if err := e.ctx.writable(); err != nil {
		return 0, err
	}
	if e.ctx.SourceYear == "" {
		return 0, fmt.Errorf("%w: source year not set", ErrMissingContext)
	}

	legend := e.legends.Resolve(e.ctx.Legend)
	copied := 0
	for _, it := range e.items.Items() {
		sums := model.MonthValues{}
		for k, v := range it.Realized {
			if k.Company == e.ctx.Company && k.Year == e.ctx.SourceYear && legend.Contains(k.Sector) {
				sums.Add(k.Month, v)
			}
		}
		if len(sums) == 0 {
			continue
		}

		it.EnsurePlanned()
		it.Planned.DeleteSector(e.ctx.Company, e.ctx.Year, e.ctx.Legend)
		for k := range it.Formulas {
			if k.Company == e.ctx.Company && k.Year == e.ctx.Year && k.Sector == e.ctx.Legend {
				delete(it.Formulas, k)
			}
		}
		for m, v := range sums {
			it.Planned.Set(e.ctx.key(m), v)
		}
		copied++
	}

	if copied > 0 {
		Recompute(e.items.Items(), e.legends)
		e.items.Touch()
	}
	return copied, nil
}
