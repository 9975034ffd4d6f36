package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Fallback bucket names for an empty classification.
const (
	DefaultGroup2      = "OUTROS"
	DefaultGroup1      = "GERAL"
	DefaultAccountType = "PADRÃO"
)

// LineItem is one chart-of-accounts row with its value streams.
type LineItem struct {
	ID          string
	Account     string // ledger account, e.g. 3.1.01.01.99.01
	Label       string
	Code        string
	AccountType string
	Group1      string
	Group2      string
	Group3      string
	Description string

	Realized Breakdown
	Planned  Breakdown
	Formulas Formulas // authoritative over Planned for the cells it covers

	// Flat month maps predate breakdowns and are only read when no breakdown exists.
	FlatRealized MonthValues
	FlatPlanned  MonthValues

	Transactions []Transaction
}

// Breakdown returns the breakdown for a stream, nil when absent.
func (it *LineItem) Breakdown(s Stream) Breakdown {
	if s == Planned {
		return it.Planned
	}
	return it.Realized
}

// Flat returns the flat month map for a stream, nil when absent.
func (it *LineItem) Flat(s Stream) MonthValues {
	if s == Planned {
		return it.FlatPlanned
	}
	return it.FlatRealized
}

// EnsurePlanned allocates the planned breakdown and formula overlay.
func (it *LineItem) EnsurePlanned() {
	if it.Planned == nil {
		it.Planned = make(Breakdown)
	}
	if it.Formulas == nil {
		it.Formulas = make(Formulas)
	}
}

// EnsureRealized allocates the realized breakdown.
func (it *LineItem) EnsureRealized() {
	if it.Realized == nil {
		it.Realized = make(Breakdown)
	}
}

// Group2OrDefault returns Group2 or the OUTROS bucket.
func (it *LineItem) Group2OrDefault() string {
	return orDefault(it.Group2, DefaultGroup2)
}

// Group1OrDefault returns Group1 or the GERAL bucket.
func (it *LineItem) Group1OrDefault() string {
	return orDefault(it.Group1, DefaultGroup1)
}

// AccountTypeOrDefault returns AccountType or the PADRÃO bucket.
func (it *LineItem) AccountTypeOrDefault() string {
	return orDefault(it.AccountType, DefaultAccountType)
}

// Clone returns a deep copy.
func (it *LineItem) Clone() *LineItem {
	c := *it
	c.Realized = it.Realized.Clone()
	c.Planned = it.Planned.Clone()
	c.Formulas = it.Formulas.Clone()
	if it.FlatRealized != nil {
		c.FlatRealized = it.FlatRealized.Clone()
	}
	if it.FlatPlanned != nil {
		c.FlatPlanned = it.FlatPlanned.Clone()
	}
	if it.Transactions != nil {
		c.Transactions = append([]Transaction(nil), it.Transactions...)
	}
	return &c
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// Transaction is one imported ledger posting kept for drill-down.
// Transactions never feed totals.
type Transaction struct {
	Date    time.Time
	History string
	Amount  decimal.Decimal // credit minus debit
	Company string
	Sector  string
	Month   string
	Year    string
}

// Department maps a ledger sector to a display legend.
type Department struct {
	SectorCode string
	SectorName string
	Legend     string
	Order      int
}

// LegendLabel returns the legend the department is displayed under.
func (d Department) LegendLabel() string {
	switch {
	case d.Legend != "":
		return d.Legend
	case d.SectorName != "":
		return d.SectorName
	}
	return "Outros"
}
