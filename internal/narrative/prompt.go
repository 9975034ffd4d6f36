package narrative

import (
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/victorcarvalhox1-creator/analisederesultado/internal/model"
	"github.com/victorcarvalhox1-creator/analisederesultado/internal/report"
)

// Snapshot is the data an analysis reads. It is never modified.
type Snapshot struct {
	Company string
	Forest  report.Forest
	Months  []string // column order for the trend lines
}

const promptTemplate = `Atue como um CFO (Diretor Financeiro) experiente.
Analise os dados financeiros da empresa "%s" estruturados como DRE.

RESUMO DOS GRUPOS MACRO (Tendência Mensal):
%s

TOP %d ITENS MAIS RELEVANTES (Valor Absoluto):
%s

Gere um relatório estratégico conciso:

1. **Análise de Tendência (Trend Analysis)**
   - Como os resultados variaram mês a mês? Houve queda ou crescimento consistente?
   - Identifique sazonalidade ou anomalias nos meses informados.

2. **Drivers de Resultado**
   - Comente sobre os principais ofensores de custo ou impulsionadores de receita listados.

3. **Plano de Ação**
   - 3 ações corretivas diretas baseadas na tendência observada.

Use Markdown. Seja direto, use negrito para valores e meses críticos.
`

// BuildPrompt writes the realized trend of every Group3 root and the topN
// items with the largest absolute realized total.
func BuildPrompt(s Snapshot, topN int) string {
	months := s.Months
	if len(months) == 0 {
		months = monthsOf(s.Forest)
	}

	trend := make([]string, 0, len(s.Forest))
	for _, g3 := range s.Forest {
		points := make([]string, 0, len(months))
		for _, m := range months {
			if v, ok := g3.Realized[m]; ok {
				points = append(points, fmt.Sprintf("%s: %s", m, v.StringFixed(0)))
			}
		}
		trend = append(trend, fmt.Sprintf("- GRUPO MACRO: %s | HISTÓRICO: [%s]", g3.Label, strings.Join(points, ", ")))
	}

	top := topItems(s.Forest, topN)
	return fmt.Sprintf(promptTemplate, s.Company, strings.Join(trend, "\n"), topN, strings.Join(top, "; "))
}

type rankedItem struct {
	label, group3 string
	total         decimal.Decimal
}

func topItems(f report.Forest, n int) []string {
	var items []rankedItem
	for _, g3 := range f {
		for _, leaf := range g3.ItemLeaves() {
			items = append(items, rankedItem{label: leaf.Label, group3: g3.Label, total: leaf.Realized.Total()})
		}
	}
	slices.SortStableFunc(items, func(a, b rankedItem) int {
		return b.total.Abs().Cmp(a.total.Abs())
	})
	if len(items) > n {
		items = items[:n]
	}
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = fmt.Sprintf("%s (%s): Total %s", it.label, it.group3, it.total.StringFixed(0))
	}
	return out
}

func monthsOf(f report.Forest) []string {
	seen := make(map[string]struct{})
	for _, n := range f {
		for m := range n.Realized {
			seen[m] = struct{}{}
		}
	}
	months := make([]string, 0, len(seen))
	for m := range seen {
		months = append(months, m)
	}
	slices.SortFunc(months, model.CompareMonths)
	return months
}
