package report

import (
	"github.com/victorcarvalhox1-creator/analisederesultado/internal/departments"
	"github.com/victorcarvalhox1-creator/analisederesultado/internal/model"
)

// Filter pins zero or more breakdown dimensions. Empty fields mean "all".
type Filter struct {
	Company string `json:"company,omitempty"`
	Year    string `json:"year,omitempty"`
	Legend  string `json:"legend,omitempty"`
}

// IsZero reports whether no dimension is pinned.
func (f Filter) IsZero() bool {
	return f.Company == "" && f.Year == "" && f.Legend == ""
}

// Resolver computes the month values an item shows under a filter.
type Resolver struct {
	legends *departments.Set
}

// NewResolver creates a Resolver over the given legend index.
func NewResolver(legends *departments.Set) *Resolver {
	if legends == nil {
		legends = departments.New(nil)
	}
	return &Resolver{legends: legends}
}

// Effective returns the month values of one stream of it under f.
//
// Items without a breakdown for the stream fall back to their flat map: always
// when f pins nothing, and for the planned stream under any filter. Otherwise
// every cell matching the pinned company, year and legend is summed per month.
// Absent cells contribute nothing; the result may be empty but is never nil.
func (r *Resolver) Effective(it *model.LineItem, s model.Stream, f Filter) model.MonthValues {
	b := it.Breakdown(s)
	if len(b) == 0 {
		flat := it.Flat(s)
		if flat != nil && (f.IsZero() || s == model.Planned) {
			return flat.Clone()
		}
		return model.MonthValues{}
	}

	m := r.matcher(f)
	out := model.MonthValues{}
	for k, v := range b {
		if m.match(k.Company, k.Year, k.Sector) {
			out.Add(k.Month, v)
		}
	}
	return out
}

// MatchTransaction reports whether a drill-down transaction passes f.
func (r *Resolver) MatchTransaction(tx model.Transaction, f Filter) bool {
	return r.matcher(f).match(tx.Company, tx.Year, tx.Sector)
}

type matcher struct {
	f       Filter
	legend  *departments.Legend
	sectors map[string]bool
}

func (r *Resolver) matcher(f Filter) *matcher {
	m := &matcher{f: f}
	if f.Legend != "" {
		m.legend = r.legends.Resolve(f.Legend)
		m.sectors = make(map[string]bool)
	}
	return m
}

func (m *matcher) match(company, year, sector string) bool {
	if m.f.Company != "" && company != m.f.Company {
		return false
	}
	if m.f.Year != "" && year != m.f.Year {
		return false
	}
	if m.legend == nil {
		return true
	}
	in, ok := m.sectors[sector]
	if !ok {
		in = m.legend.Contains(sector)
		m.sectors[sector] = in
	}
	return in
}
