package report

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/victorcarvalhox1-creator/analisederesultado/internal/model"
)

var (
	netRevenueMarkers   = []string{"VENDAS LÍQUIDAS", "RECEITA LÍQUIDA", "VENDAS LIQUIDAS"}
	grossRevenueMarkers = []string{"VENDAS BRUTAS", "RECEITA BRUTA"}
	hundred             = decimal.NewFromInt(100)
)

// VerticalBase returns the realized values used as the 100% base of vertical
// analysis: the first net-revenue node found level by level, else the first
// gross-revenue node, else an empty map.
func VerticalBase(f Forest) model.MonthValues {
	if n := findLabel(f, netRevenueMarkers); n != nil {
		return n.Realized
	}
	if n := findLabel(f, grossRevenueMarkers); n != nil {
		return n.Realized
	}
	return model.MonthValues{}
}

// findLabel checks every node of a sibling list before descending into any of them.
func findLabel(nodes []*Node, markers []string) *Node {
	for _, n := range nodes {
		label := strings.ToUpper(n.Label)
		for _, m := range markers {
			if strings.Contains(label, m) {
				return n
			}
		}
	}
	for _, n := range nodes {
		if found := findLabel(n.Children, markers); found != nil {
			return found
		}
	}
	return nil
}

// NetResult sums the Group3 roots per month for both streams.
func NetResult(f Forest) (realized, planned model.MonthValues) {
	realized, planned = model.MonthValues{}, model.MonthValues{}
	for _, n := range f {
		realized.AddAll(n.Realized)
		planned.AddAll(n.Planned)
	}
	return realized, planned
}

// Share returns value as a percentage of base, zero when base is zero.
func Share(value, base decimal.Decimal) decimal.Decimal {
	if base.IsZero() {
		return decimal.Zero
	}
	return value.Div(base).Mul(hundred)
}
