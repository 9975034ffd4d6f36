package budget

import (
	"strings"

	"github.com/victorcarvalhox1-creator/analisederesultado/internal/departments"
	"github.com/victorcarvalhox1-creator/analisederesultado/internal/model"
	"github.com/victorcarvalhox1-creator/analisederesultado/internal/money"
)

// IsRevenue reports whether an item belongs to the net revenue family whose
// plan is the base of percentage formulas.
func IsRevenue(it *model.LineItem) bool {
	g2 := strings.ToUpper(it.Group2)
	return strings.Contains(g2, "LÍQUIDA") || strings.Contains(g2, "LIQUIDA")
}

// revenueBase sums the literal planned cells of revenue items for one company
// and year. Formula cells are left out so a revenue formula never feeds its own
// base. A nil legend accepts every sector.
func revenueBase(items []*model.LineItem, company, year string, legend *departments.Legend) model.MonthValues {
	out := model.MonthValues{}
	for _, it := range items {
		if !IsRevenue(it) {
			continue
		}
		for k, v := range it.Planned {
			if k.Company != company || k.Year != year {
				continue
			}
			if legend != nil && !legend.Contains(k.Sector) {
				continue
			}
			if _, ok := it.Formulas[k]; ok {
				continue
			}
			out.Add(k.Month, v)
		}
	}
	return out
}

type baseKey struct {
	company, year, sector string
}

// Recompute re-evaluates every percentage formula against the current
// revenue bases and overwrites the cached planned amounts. All bases are read
// before any cell is written. It returns the number of cells evaluated.
func Recompute(items []*model.LineItem, legends *departments.Set) int {
	bases := make(map[baseKey]model.MonthValues)
	for _, it := range items {
		for k := range it.Formulas {
			bk := baseKey{k.Company, k.Year, k.Sector}
			if _, ok := bases[bk]; !ok {
				bases[bk] = revenueBase(items, k.Company, k.Year, legends.Resolve(k.Sector))
			}
		}
	}

	n := 0
	for _, it := range items {
		for k, token := range it.Formulas {
			pct, err := money.ParsePercent(token)
			if err != nil {
				continue
			}
			it.EnsurePlanned()
			it.Planned.Set(k, bases[baseKey{k.Company, k.Year, k.Sector}][k.Month].Mul(pct))
			n++
		}
	}
	return n
}
