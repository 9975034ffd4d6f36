package store

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/victorcarvalhox1-creator/analisederesultado/internal/accounts"
	"github.com/victorcarvalhox1-creator/analisederesultado/internal/config"
	"github.com/victorcarvalhox1-creator/analisederesultado/internal/model"
	"github.com/victorcarvalhox1-creator/analisederesultado/internal/ordering"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newWorkspace(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, config.Save(filepath.Join(dir, config.FileName), config.Default("Teste")))
	require.NoError(t, accounts.NewService([]*model.LineItem{
		{ID: "a", Account: "3.1.01", Label: "VENDAS", Group3: "LUCRO BRUTO", Group2: "VENDAS LÍQUIDAS"},
		{ID: "b", Account: "4.1.01", Label: "CMV", Group3: "LUCRO BRUTO", Group2: "CUSTOS"},
	}).Save(dir))
	return dir
}

func TestCellRoundTrip(t *testing.T) {
	cells := []Cell{
		{ItemID: "a", Stream: "realized", Key: model.Key{Company: "Matriz", Year: "2024", Sector: "401", Month: "janeiro"}, Amount: dec("-10.5")},
		{ItemID: "a", Stream: "planned", Key: model.Key{Company: "Matriz", Year: "2025", Sector: "Serviços", Month: "março"}, Amount: dec("12"), Formula: "5%"},
		{ItemID: "b", Stream: streamRealizedFlat, Key: model.Key{Month: "Valor"}, Amount: dec("0")},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCells(&buf, cells))
	assert.True(t, strings.HasPrefix(buf.String(), CellHeader+"\n"))

	got, err := ReadCells(&buf)
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i := range cells {
		assert.Equal(t, cells[i].Key, got[i].Key)
		assert.Equal(t, cells[i].Formula, got[i].Formula)
		assert.True(t, cells[i].Amount.Equal(got[i].Amount))
	}
}

func TestUnmarshalCellErrors(t *testing.T) {
	tests := []struct {
		name   string
		record []string
	}{
		{"field count", []string{"a", "realized"}},
		{"stream", []string{"a", "forecast", "", "", "", "janeiro", "1", ""}},
		{"formula on realized", []string{"a", "realized", "", "", "", "janeiro", "1", "5%"}},
		{"amount", []string{"a", "planned", "", "", "", "janeiro", "1,5", ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalCell(tt.record)
			assert.Error(t, err)
		})
	}
}

func TestTransactionRoundTrip(t *testing.T) {
	txs := []ItemTransaction{
		{ItemID: "a", Transaction: model.Transaction{
			Date: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), History: "NF 123, parcela 1", Amount: dec("99.90"),
			Company: "Matriz", Sector: "401", Month: "janeiro", Year: "2024",
		}},
		{ItemID: "b", Transaction: model.Transaction{History: "sem data", Amount: dec("-1")}},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteTransactions(&buf, txs))
	got, err := ReadTransactions(&buf)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.True(t, txs[0].Date.Equal(got[0].Date))
	assert.Equal(t, txs[0].History, got[0].History)
	assert.True(t, got[1].Date.IsZero())
	assert.True(t, got[1].Amount.Equal(dec("-1")))
}

func TestOpenEmptyWorkspace(t *testing.T) {
	w, err := Open(newWorkspace(t))
	require.NoError(t, err)
	assert.Len(t, w.Items(), 2)
	assert.NotEmpty(t, w.Legends().All())
	assert.Zero(t, w.Revision())

	it, ok := w.ByAccount("3101")
	require.True(t, ok)
	assert.Equal(t, "a", it.ID)
}

func TestOpenWithoutConfig(t *testing.T) {
	_, err := Open(t.TempDir())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSaveAndReopen(t *testing.T) {
	dir := newWorkspace(t)
	w, err := Open(dir)
	require.NoError(t, err)

	a, _ := w.Item("a")
	a.EnsureRealized()
	rk := model.Key{Company: "Matriz", Year: "2024", Sector: "401", Month: "janeiro"}
	a.Realized.Set(rk, dec("100"))
	a.EnsurePlanned()
	pk := model.Key{Company: "Matriz", Year: "2025", Sector: "Serviços", Month: "janeiro"}
	a.Planned.Set(pk, dec("110"))
	a.FlatRealized = model.MonthValues{"Valor": dec("7")}
	a.Transactions = []model.Transaction{{History: "venda", Amount: dec("100"), Company: "Matriz", Sector: "401", Month: "janeiro", Year: "2024"}}

	b, _ := w.Item("b")
	b.EnsurePlanned()
	b.Planned.Set(pk, dec("11"))
	b.Formulas[pk] = "10%"

	w.SetGroupOrder(ordering.Manual{"LUCRO BRUTO": 1})
	w.AddItems([]*model.LineItem{{ID: "c", Label: "NOVO", Group3: "DESPESAS"}})
	assert.Equal(t, uint64(2), w.Revision())
	require.NoError(t, w.Save())

	w2, err := Open(dir)
	require.NoError(t, err)
	require.Len(t, w2.Items(), 3)

	a2, _ := w2.Item("a")
	assert.True(t, a2.Realized.Get(rk).Equal(dec("100")))
	assert.True(t, a2.Planned.Get(pk).Equal(dec("110")))
	assert.True(t, a2.FlatRealized["Valor"].Equal(dec("7")))
	require.Len(t, a2.Transactions, 1)
	assert.Equal(t, "venda", a2.Transactions[0].History)

	b2, _ := w2.Item("b")
	assert.Equal(t, "10%", b2.Formulas[pk])
	assert.True(t, b2.Planned.Get(pk).Equal(dec("11")))

	assert.Equal(t, 1, w2.GroupOrder().Get("LUCRO BRUTO"))
}

func TestSetDepartments(t *testing.T) {
	w, err := Open(newWorkspace(t))
	require.NoError(t, err)

	require.NoError(t, w.SetDepartments([]config.DepartmentConfig{{Code: "1", Name: "LOJA", Legend: "Varejo", Order: 1}}))
	require.Len(t, w.Legends().All(), 1)
	assert.Equal(t, "Varejo", w.Legends().All()[0].Label)

	err = w.SetDepartments([]config.DepartmentConfig{{Code: "2"}})
	assert.Error(t, err)
	assert.Len(t, w.Config().Departments, 1, "invalid departments are not applied")
}

func TestOpenRejectsOrphanCells(t *testing.T) {
	dir := newWorkspace(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "data"), 0o755))
	body := CellHeader + "\nzzz,realized,M,2024,1,janeiro,1,\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, CellsFile), []byte(body), 0o644))

	_, err := Open(dir)
	assert.ErrorContains(t, err, "unknown item")
}
