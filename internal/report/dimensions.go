package report

import (
	"slices"

	"github.com/victorcarvalhox1-creator/analisederesultado/internal/model"
)

// AvailableCompanies lists every company with realized or planned cells, sorted.
func AvailableCompanies(items []*model.LineItem) []string {
	seen := make(map[string]struct{})
	for _, it := range items {
		for _, b := range []model.Breakdown{it.Realized, it.Planned} {
			for k := range b {
				seen[k.Company] = struct{}{}
			}
		}
	}
	return sortedKeys(seen)
}

// AvailableYears lists every year with realized or planned cells, newest first.
func AvailableYears(items []*model.LineItem) []string {
	seen := make(map[string]struct{})
	for _, it := range items {
		for _, b := range []model.Breakdown{it.Realized, it.Planned} {
			for k := range b {
				seen[k.Year] = struct{}{}
			}
		}
	}
	years := sortedKeys(seen)
	slices.Reverse(years)
	return years
}

// DefaultYear is the newest available year, or "" without data.
func DefaultYear(items []*model.LineItem) string {
	if years := AvailableYears(items); len(years) > 0 {
		return years[0]
	}
	return ""
}

// AvailableMonths returns the month columns for a query. A pinned year or edit
// mode shows the full calendar; otherwise the months that carry data are shown
// in calendar order, followed by any free-form labels such as "Valor".
func AvailableMonths(items []*model.LineItem, q Query) []string {
	if q.Year != "" || q.EditMode {
		return slices.Clone(model.Months[:])
	}
	seen := make(map[string]struct{})
	for _, it := range items {
		for _, flat := range []model.MonthValues{it.FlatRealized, it.FlatPlanned} {
			for m := range flat {
				seen[m] = struct{}{}
			}
		}
		for _, b := range []model.Breakdown{it.Realized, it.Planned} {
			for k := range b {
				seen[k.Month] = struct{}{}
			}
		}
	}
	months := make([]string, 0, len(seen))
	for m := range seen {
		months = append(months, m)
	}
	slices.SortFunc(months, model.CompareMonths)
	return months
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
