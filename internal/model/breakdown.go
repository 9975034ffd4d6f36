package model

import (
	"cmp"
	"slices"

	"github.com/shopspring/decimal"
)

// Stream selects the realized or planned side of a line item.
type Stream string

const (
	Realized Stream = "realized"
	Planned  Stream = "planned"
)

// Key addresses one cell of a breakdown.
type Key struct {
	Company string
	Year    string
	Sector  string
	Month   string
}

// Compare orders keys by company, year, sector and calendar month.
func (k Key) Compare(o Key) int {
	if c := cmp.Compare(k.Company, o.Company); c != 0 {
		return c
	}
	if c := cmp.Compare(k.Year, o.Year); c != 0 {
		return c
	}
	if c := cmp.Compare(k.Sector, o.Sector); c != 0 {
		return c
	}
	return CompareMonths(k.Month, o.Month)
}

// Breakdown is the sparse Company × Year × Sector × Month amount map.
// Absent cells read as zero.
type Breakdown map[Key]decimal.Decimal

// Get returns the cell amount, zero when absent.
func (b Breakdown) Get(k Key) decimal.Decimal {
	return b[k]
}

// Set overwrites a cell.
func (b Breakdown) Set(k Key, v decimal.Decimal) {
	b[k] = v
}

// Add accumulates into a cell.
func (b Breakdown) Add(k Key, v decimal.Decimal) {
	b[k] = b[k].Add(v)
}

// Keys returns every cell key in a stable order.
func (b Breakdown) Keys() []Key {
	keys := make([]Key, 0, len(b))
	for k := range b {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, Key.Compare)
	return keys
}

// Companies returns the distinct companies present.
func (b Breakdown) Companies() []string {
	return b.distinct(func(k Key) string { return k.Company })
}

// Years returns the distinct years present.
func (b Breakdown) Years() []string {
	return b.distinct(func(k Key) string { return k.Year })
}

func (b Breakdown) distinct(field func(Key) string) []string {
	seen := make(map[string]struct{})
	var out []string
	for k := range b {
		v := field(k)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}

// DeleteSector removes every month cell of one (company, year, sector).
func (b Breakdown) DeleteSector(company, year, sector string) {
	for k := range b {
		if k.Company == company && k.Year == year && k.Sector == sector {
			delete(b, k)
		}
	}
}

// Clone returns an independent copy.
func (b Breakdown) Clone() Breakdown {
	if b == nil {
		return nil
	}
	out := make(Breakdown, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out
}

// Formulas overlays percentage tokens such as "5%" on planned cells.
type Formulas map[Key]string

// Clone returns an independent copy.
func (f Formulas) Clone() Formulas {
	if f == nil {
		return nil
	}
	out := make(Formulas, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// MonthValues maps a month label to an amount.
type MonthValues map[string]decimal.Decimal

// Add accumulates v into month.
func (m MonthValues) Add(month string, v decimal.Decimal) {
	m[month] = m[month].Add(v)
}

// AddAll accumulates every month of o.
func (m MonthValues) AddAll(o MonthValues) {
	for month, v := range o {
		m.Add(month, v)
	}
}

// Total sums all months.
func (m MonthValues) Total() decimal.Decimal {
	total := decimal.Zero
	for _, v := range m {
		total = total.Add(v)
	}
	return total
}

// Clone returns an independent copy.
func (m MonthValues) Clone() MonthValues {
	out := make(MonthValues, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// SortedMonths returns the month labels in calendar order, unknown labels last.
func (m MonthValues) SortedMonths() []string {
	months := make([]string, 0, len(m))
	for k := range m {
		months = append(months, k)
	}
	slices.SortFunc(months, CompareMonths)
	return months
}
