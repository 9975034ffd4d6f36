package importer

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"

	"github.com/victorcarvalhox1-creator/analisederesultado/internal/accounts"
	"github.com/victorcarvalhox1-creator/analisederesultado/internal/model"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

var ledgerHeader = []string{"Empresa", "Conta Contábil", "Data", "Centro de Custo", "Débito", "Crédito", "Histórico"}

func TestDetectColumns(t *testing.T) {
	tests := []struct {
		name    string
		header  []string
		want    columns
		wantErr bool
	}{
		{"full", ledgerHeader, columns{account: 1, date: 2, sector: 3, debit: 4, credit: 5, company: 0, history: 6}, false},
		{"alternate names", []string{"Dt. Lançamento", "CONTA CONTABIL", "debito", "credito", "Setor", "Filial", "Complemento"},
			columns{date: 0, account: 1, debit: 2, credit: 3, sector: 4, company: 5, history: 6}, false},
		{"optional missing", []string{"conta contábil", "data", "débito", "crédito"},
			columns{account: 0, date: 1, debit: 2, credit: 3, sector: -1, company: -1, history: -1}, false},
		{"bom on first header", []string{"\ufeffData", "Conta Contábil", "Débito", "Crédito"},
			columns{date: 0, account: 1, debit: 2, credit: 3, sector: -1, company: -1, history: -1}, false},
		{"debit must match exactly", []string{"conta contábil", "data", "valor débito", "crédito"}, columns{}, true},
		{"no date", []string{"conta contábil", "débito", "crédito"}, columns{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := detectColumns(tt.header)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMissingColumns)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLedger(t *testing.T) {
	rows := [][]string{
		ledgerHeader,
		{"Filial SP", "3.1.01", "15/01/2024", "401", "0", "1.500,50", "Venda NF 10"},
		{"", "3.1.01", "45337", "", "100", "0", ""},
		{"", "", "15/01/2024", "", "1", "0", "sem conta"},
		{"", "9.9.99", "31/13/2024", "", "1", "0", "mês inválido"},
		{"", "4.1.01", "ontem", "", "abc", "2", "valor ruim"},
	}

	postings, err := ParseLedger(rows)
	require.NoError(t, err)
	require.Len(t, postings, 4)

	p := postings[0]
	assert.Equal(t, 2, p.Row)
	assert.Equal(t, "3101", p.Account)
	assert.Equal(t, "janeiro", p.Month)
	assert.Equal(t, "2024", p.Year)
	assert.Equal(t, 15, p.Date.Day())
	assert.True(t, p.Amount.Equal(dec("1500.50")))
	assert.Equal(t, "Filial SP", p.Company)
	assert.Equal(t, "401", p.Sector)
	assert.Equal(t, "Venda NF 10", p.History)

	p = postings[1]
	assert.Equal(t, "fevereiro", p.Month, "serial 45337 is 2024-02-15")
	assert.Equal(t, "2024", p.Year)
	assert.True(t, p.Amount.Equal(dec("-100")))
	assert.Equal(t, DefaultCompany, p.Company)
	assert.Equal(t, DefaultSector, p.Sector)
	assert.Equal(t, "", p.History, "blank history stays blank when the column exists")

	assert.Equal(t, "", postings[2].Month)
	assert.Equal(t, "", postings[3].Month)
	assert.True(t, postings[3].Amount.Equal(dec("2")), "unreadable debit counts as zero")
}

func TestParseLedgerDefaultsWithoutOptionalColumns(t *testing.T) {
	postings, err := ParseLedger([][]string{
		{"Conta Contábil", "Data", "Débito", "Crédito"},
		{"3.1.01", "01/03/2023", "10", "0"},
	})
	require.NoError(t, err)
	require.Len(t, postings, 1)
	assert.Equal(t, DefaultCompany, postings[0].Company)
	assert.Equal(t, DefaultSector, postings[0].Sector)
	assert.Equal(t, DefaultHistory, postings[0].History)
	assert.Equal(t, "março", postings[0].Month)
}

func TestParseLedgerMissingColumns(t *testing.T) {
	_, err := ParseLedger([][]string{{"conta", "data"}, {"1", "01/01/2024"}})
	assert.ErrorIs(t, err, ErrMissingColumns)

	_, err = ParseLedger(nil)
	assert.ErrorIs(t, err, ErrMissingColumns)
}

func TestApply(t *testing.T) {
	revenue := &model.LineItem{ID: "r", Account: "3.1.01", Label: "VENDAS"}
	chart := accounts.NewService([]*model.LineItem{revenue})

	postings, err := ParseLedger([][]string{
		ledgerHeader,
		{"Matriz", "3.1.01", "15/01/2024", "401", "0", "100", "a"},
		{"Matriz", "3101", "20/01/2024", "401", "30", "0", "b"},
		{"Matriz", "3.1.01", "02/02/2024", "100", "0", "5", "c"},
		{"Matriz", "7.7.77", "02/02/2024", "100", "0", "5", "d"},
		{"Matriz", "7.7.77", "03/02/2024", "100", "0", "5", "e"},
		{"Matriz", "3.1.01", "xx", "100", "0", "5", "f"},
	})
	require.NoError(t, err)

	s := Apply(chart, postings)
	assert.Equal(t, 6, s.Processed)
	assert.Equal(t, 3, s.Matched)
	assert.Equal(t, 2, s.Unmatched)
	assert.Equal(t, 1, s.InvalidDates)
	assert.True(t, s.Volume.Equal(dec("75")))
	assert.Equal(t, []string{"77777"}, s.UnmatchedAccounts)

	jan := model.Key{Company: "Matriz", Year: "2024", Sector: "401", Month: "janeiro"}
	assert.True(t, revenue.Realized.Get(jan).Equal(dec("70")))
	require.Len(t, revenue.Transactions, 3)
	assert.Equal(t, "b", revenue.Transactions[1].History)
	assert.Nil(t, revenue.FlatRealized, "ledger imports only write breakdowns")
}

func TestXLSXReader(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]any{"Conta Contábil", "Data", "Débito", "Crédito"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]any{"3.1.01", 45306, 0, 1234.5}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	require.NoError(t, f.Close())

	rows, err := XLSXReader{}.ReadRows(buf)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	postings, err := ParseLedger(rows)
	require.NoError(t, err)
	require.Len(t, postings, 1)
	assert.Equal(t, "janeiro", postings[0].Month)
	assert.Equal(t, "2024", postings[0].Year)
	assert.True(t, postings[0].Amount.Equal(dec("1234.5")))
}

func TestCSVReaderLatin1(t *testing.T) {
	text := "Conta Contábil;Data;Débito;Crédito;Histórico\n3.1.01;05/06/2024;0;10,00;\"Serviço; mão de obra\"\n"
	latin1, err := charmap.ISO8859_1.NewEncoder().String(text)
	require.NoError(t, err)

	rows, err := CSVReader{Comma: ';', Latin1: true}.ReadRows(strings.NewReader(latin1))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Crédito", rows[0][3])
	assert.Equal(t, "Serviço; mão de obra", rows[1][4])

	postings, err := ParseLedger(rows)
	require.NoError(t, err)
	assert.Equal(t, "junho", postings[0].Month)
}

func TestParseLegend(t *testing.T) {
	rows := [][]string{
		{"CONTA", "DESCRIÇÃO", "CÓDIGO", "CONTAS", "GRUPO 1", "GRUPO 2", "GRUPO 3", "janeiro", "fevereiro", ""},
		{"3.1.01.01.99.01", "CAMINHÕES", "159", "Venda Bruta - Estoque", "VENDAS BRUTAS", "VENDAS LÍQUIDAS", "LUCRO BRUTO", "1.000,50", "R$ 20", "99"},
		{"3.1.02", "", "x"},
		{"3.1.03", "SÓ RÓTULO"},
	}
	items := ParseLegend(rows)
	require.Len(t, items, 2)

	it := items[0]
	assert.NotEmpty(t, it.ID)
	assert.Equal(t, "CAMINHÕES", it.Label)
	assert.Equal(t, "159", it.Code)
	assert.Equal(t, "LUCRO BRUTO", it.Group3)
	assert.Len(t, it.FlatRealized, 2)
	assert.True(t, it.FlatRealized["janeiro"].Equal(dec("1000.50")))
	assert.True(t, it.FlatRealized["fevereiro"].Equal(dec("20")))

	assert.Equal(t, model.MonthValues{FlatTotalKey: decimal.Zero}, items[1].FlatRealized)
	assert.NotEqual(t, items[0].ID, items[1].ID)
}

func TestParseLegendGenericMonthKeys(t *testing.T) {
	items := ParseLegend([][]string{
		{"a", "b", "c", "d", "e", "f", "g"},
		{"1", "ITEM", "", "", "", "", "G3", "5", "abc"},
	})
	require.Len(t, items, 1)
	assert.True(t, items[0].FlatRealized["Mês 1"].Equal(dec("5")))
	assert.True(t, items[0].FlatRealized["Mês 2"].IsZero())
}

func TestRegistry(t *testing.T) {
	r := DefaultRegistry()
	assert.NotNil(t, r.Get("XLSX"))
	assert.NotNil(t, r.ForPath("razao.csv"))
	assert.Nil(t, r.ForPath("razao.pdf"))

	assert.Panics(t, func() { r.Register(CSVReader{}) })
}

func TestScanAndMarkProcessed(t *testing.T) {
	dir := t.TempDir()
	importPath := filepath.Join(dir, "import")
	require.NoError(t, os.MkdirAll(importPath, 0o755))

	body := "Conta Contábil;Data;Débito;Crédito\n3.1.01;01/01/2024;0;1\n"
	require.NoError(t, os.WriteFile(filepath.Join(importPath, "jan.csv"), []byte(body), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(importPath, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(importPath, ".gitkeep"), nil, 0o644))

	reg := DefaultRegistry()
	files, err := Scan(dir, reg)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "jan.csv", files[0].Name)

	rows, err := reg.ReadFile(files[0].Path)
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	require.NoError(t, MarkProcessed(dir, "jan.csv"))
	_, err = os.Stat(filepath.Join(dir, "import", "processed", "jan.csv"))
	require.NoError(t, err)

	files, err = Scan(dir, reg)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestScanMissingDir(t *testing.T) {
	files, err := Scan(t.TempDir(), DefaultRegistry())
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestReadFileUnknownFormat(t *testing.T) {
	_, err := DefaultRegistry().ReadFile(filepath.Join(t.TempDir(), "x.ods"))
	assert.ErrorContains(t, err, "no reader")

	var buf bytes.Buffer
	_, err = XLSXReader{}.ReadRows(&buf)
	assert.Error(t, err)
}
