package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/victorcarvalhox1-creator/analisederesultado/internal/model"
)

func TestVerticalBase(t *testing.T) {
	forest := newTestBuilder().Build(lucroBrutoItems(), Query{})
	base := VerticalBase(forest)
	assert.True(t, base["janeiro"].Equal(dec(150)))

	assert.True(t, Share(dec(-30), dec(150)).Equal(dec(-20)))
	assert.True(t, Share(dec(5), dec(0)).IsZero())
}

func TestVerticalBaseFallsBackToGross(t *testing.T) {
	items := []*model.LineItem{
		{ID: "1", Label: "x", Group3: "RESULTADO", Group2: "RECEITA", Group1: "RECEITA BRUTA", Realized: cells("E", "2024", "1", "abril", 80)},
	}
	forest := newTestBuilder().Build(items, Query{})
	assert.True(t, VerticalBase(forest)["abril"].Equal(dec(80)))

	assert.Empty(t, VerticalBase(nil))
}

func TestNetResult(t *testing.T) {
	items := lucroBrutoItems()
	items[0].Planned = cells("Empresa1", "2024", "SetorX", "janeiro", -10)
	forest := newTestBuilder().Build(items, Query{})

	realized, planned := NetResult(forest)
	assert.True(t, realized["janeiro"].Equal(dec(120)))
	assert.True(t, planned["janeiro"].Equal(dec(-10)))
}

func TestAvailableDimensions(t *testing.T) {
	items := []*model.LineItem{
		{Realized: cells("B", "2023", "1", "março", 1)},
		{Planned: cells("A", "2025", "1", "janeiro", 1), FlatRealized: model.MonthValues{"Valor": dec(1)}},
		{Realized: cells("A", "2024", "1", "dezembro", 1)},
	}

	assert.Equal(t, []string{"A", "B"}, AvailableCompanies(items))
	assert.Equal(t, []string{"2025", "2024", "2023"}, AvailableYears(items))
	assert.Equal(t, "2025", DefaultYear(items))
	assert.Equal(t, "", DefaultYear(nil))

	assert.Equal(t, []string{"janeiro", "março", "dezembro", "Valor"}, AvailableMonths(items, Query{}))
	assert.Len(t, AvailableMonths(items, Query{Filter: Filter{Year: "2024"}}), 12)
	assert.Len(t, AvailableMonths(nil, Query{EditMode: true}), 12)

	generic := []*model.LineItem{{FlatRealized: model.MonthValues{"Mês 1": dec(1), "Mês 2": dec(1), "Mês 10": dec(1), "Mês 11": dec(1)}}}
	assert.Equal(t, []string{"Mês 1", "Mês 2", "Mês 10", "Mês 11"}, AvailableMonths(generic, Query{}))
}

func TestCacheReusesForests(t *testing.T) {
	c, err := NewCache(newTestBuilder(), 2)
	require.NoError(t, err)
	items := lucroBrutoItems()

	f1 := c.Build(1, items, Query{})
	f2 := c.Build(1, items, Query{})
	require.NotEmpty(t, f1)
	assert.Same(t, f1[0], f2[0])

	f3 := c.Build(2, items, Query{})
	assert.NotSame(t, f1[0], f3[0])

	f4 := c.Build(2, items, Query{Filter: Filter{Company: "Empresa1"}})
	assert.NotSame(t, f3[0], f4[0])
	assert.Equal(t, 2, c.Len())

	c.Purge()
	assert.Equal(t, 0, c.Len())
}

func TestCacheKeyIncludesOrder(t *testing.T) {
	a := cacheKey(1, Query{})
	b := cacheKey(1, Query{Order: map[string]int{"X": 1}})
	assert.NotEqual(t, a, b)
}

func TestRender(t *testing.T) {
	forest := newTestBuilder().Build(lucroBrutoItems(), Query{})
	var buf bytes.Buffer
	err := Render(&buf, forest, RenderOptions{Months: []string{"janeiro"}, Vertical: true, MaxDepth: 2})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "LUCRO BRUTO")
	assert.Contains(t, out, "  VENDAS LÍQUIDAS")
	assert.Contains(t, out, "150,00")
	assert.Contains(t, out, "-20,0%")
	assert.Contains(t, out, NetResultLabel)
	assert.NotContains(t, out, "VENDAS BRUTAS", "depth limit hides Group1")
}
