package accounts

import (
	"github.com/victorcarvalhox1-creator/analisederesultado/internal/id"
	"github.com/victorcarvalhox1-creator/analisederesultado/internal/model"
)

// DefaultChart returns a starter chart with the usual DRE skeleton, for
// workspaces created before a legend workbook is imported.
func DefaultChart() []*model.LineItem {
	rows := []struct {
		account, label, accountType, g1, g2, g3 string
	}{
		{"3.1.01", "VENDA DE PRODUTOS", "Venda Bruta - Estoque", "VENDAS BRUTAS", "VENDAS LÍQUIDAS", "LUCRO BRUTO"},
		{"3.1.02", "VENDA DE SERVIÇOS", "Venda Bruta - Serviços", "VENDAS BRUTAS", "VENDAS LÍQUIDAS", "LUCRO BRUTO"},
		{"3.2.01", "IMPOSTOS SOBRE VENDAS", "Impostos", "DEDUÇÕES", "VENDAS LÍQUIDAS", "LUCRO BRUTO"},
		{"4.1.01", "CUSTO DAS MERCADORIAS", "Custo", "CUSTO DAS VENDAS", "CUSTOS", "LUCRO BRUTO"},
		{"4.2.01", "SALÁRIOS", "Pessoal", "PESSOAL", "DESPESAS OPERACIONAIS", "RESULTADO OPERACIONAL"},
		{"4.2.02", "ALUGUÉIS", "Ocupação", "OCUPAÇÃO", "DESPESAS OPERACIONAIS", "RESULTADO OPERACIONAL"},
		{"4.3.01", "DESPESAS BANCÁRIAS", "Financeiro", "DESPESAS FINANCEIRAS", "RESULTADO FINANCEIRO", "RESULTADO FINANCEIRO"},
	}

	items := make([]*model.LineItem, len(rows))
	for i, r := range rows {
		items[i] = &model.LineItem{
			ID:          id.NewItemID(),
			Account:     r.account,
			Label:       r.label,
			AccountType: r.accountType,
			Group1:      r.g1,
			Group2:      r.g2,
			Group3:      r.g3,
		}
	}
	return items
}
