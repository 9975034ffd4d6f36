package importer

import (
	"errors"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/victorcarvalhox1-creator/analisederesultado/internal/model"
	"github.com/victorcarvalhox1-creator/analisederesultado/internal/money"
	"github.com/victorcarvalhox1-creator/analisederesultado/internal/textkey"
)

// Defaults for ledgers without the optional columns.
const (
	DefaultSector  = "Geral"
	DefaultCompany = "Matriz"
	DefaultHistory = "Lançamento"
)

// ErrMissingColumns is returned when the ledger header lacks the account,
// date, debit or credit column.
var ErrMissingColumns = errors.New("required ledger columns not found: need Conta Contábil, Data, Débito and Crédito")

type columns struct {
	account, date, debit, credit int
	sector, company, history     int
}

// detectColumns finds each column by the first header that matches it.
func detectColumns(header []string) (columns, error) {
	hs := make([]string, len(header))
	for i, h := range header {
		hs[i] = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
	}
	find := func(match func(h string) bool) int {
		return slices.IndexFunc(hs, match)
	}
	containsAny := func(subs ...string) func(string) bool {
		return func(h string) bool {
			for _, s := range subs {
				if strings.Contains(h, s) {
					return true
				}
			}
			return false
		}
	}
	equalsAny := func(vals ...string) func(string) bool {
		return func(h string) bool { return slices.Contains(vals, h) }
	}

	c := columns{
		account: find(containsAny("conta contábil", "conta contabil")),
		date: find(func(h string) bool {
			return h == "data" || strings.Contains(h, "dt.")
		}),
		debit:   find(equalsAny("débito", "debito")),
		credit:  find(equalsAny("crédito", "credito")),
		sector:  find(containsAny("centro de custo", "setor", "cc")),
		company: find(containsAny("empresa", "filial")),
		history: find(containsAny("histórico", "historico", "complemento")),
	}
	if c.account < 0 || c.date < 0 || c.debit < 0 || c.credit < 0 {
		return c, ErrMissingColumns
	}
	return c, nil
}

// Posting is one ledger row.
type Posting struct {
	Row     int    // 1-based row in the source file
	Account string // normalized with textkey.AccountKey
	Date    time.Time
	Month   string // canonical month name, "" when the date could not be read
	Year    string
	Amount  decimal.Decimal // credit minus debit
	Company string
	Sector  string
	History string
}

// ParseLedger reads postings from ledger rows. The first row is the header.
// Rows without an account are skipped. Unreadable amounts count as zero.
func ParseLedger(rows [][]string) ([]Posting, error) {
	if len(rows) == 0 {
		return nil, ErrMissingColumns
	}
	cols, err := detectColumns(rows[0])
	if err != nil {
		return nil, err
	}

	var out []Posting
	for i, row := range rows[1:] {
		account := textkey.AccountKey(cell(row, cols.account))
		if account == "" {
			continue
		}

		p := Posting{
			Row:     i + 2,
			Account: account,
			Amount:  lenientAmount(cell(row, cols.credit)).Sub(lenientAmount(cell(row, cols.debit))),
			Company: optional(row, cols.company, DefaultCompany, DefaultCompany),
			Sector:  optional(row, cols.sector, DefaultSector, DefaultSector),
			History: optional(row, cols.history, DefaultHistory, ""),
		}
		if d, month, year, ok := parseDate(cell(row, cols.date)); ok {
			p.Date, p.Month, p.Year = d, month, year
		}
		out = append(out, p)
	}
	return out, nil
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// optional returns the trimmed cell; missing is used without the column and
// blank for an empty cell.
func optional(row []string, idx int, missing, blank string) string {
	if idx < 0 {
		return missing
	}
	if v := cell(row, idx); v != "" {
		return v
	}
	return blank
}

// parseDate accepts Excel serial numbers and dd/mm/yyyy text.
func parseDate(raw string) (t time.Time, month, year string, ok bool) {
	if raw == "" {
		return time.Time{}, "", "", false
	}

	if !strings.Contains(raw, "/") {
		serial, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return time.Time{}, "", "", false
		}
		t, err = excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return time.Time{}, "", "", false
		}
		t = t.Round(time.Millisecond).UTC()
		return t, model.MonthName(t.Month()), strconv.Itoa(t.Year()), true
	}

	parts := strings.Split(raw, "/")
	if len(parts) != 3 {
		return time.Time{}, "", "", false
	}
	m, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || m < 1 || m > 12 {
		return time.Time{}, "", "", false
	}
	yearField := strings.Fields(parts[2])
	if len(yearField) == 0 {
		return time.Time{}, "", "", false
	}
	y, err := strconv.Atoi(yearField[0])
	if err != nil {
		return time.Time{}, "", "", false
	}
	if d, err := strconv.Atoi(strings.TrimSpace(parts[0])); err == nil {
		t = time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	}
	return t, model.Months[m-1], yearField[0], true
}

// lenientAmount parses pt-BR or plain decimals; anything unreadable is zero.
func lenientAmount(raw string) decimal.Decimal {
	v, err := money.Parse(raw)
	if err != nil {
		return decimal.Zero
	}
	return v
}

// AccountLookup finds the line item for a ledger account.
type AccountLookup interface {
	ByAccount(account string) (*model.LineItem, bool)
}

// Summary reports one ledger import.
type Summary struct {
	Processed         int // rows with an account
	Matched           int // rows booked to a line item
	Unmatched         int // dated rows whose account is not in the chart
	InvalidDates      int // rows skipped for an unreadable date
	Volume            decimal.Decimal
	UnmatchedAccounts []string // distinct, in order of appearance
}

// Apply books postings into the realized breakdown of the matching line
// items and records a drill-down transaction for each.
func Apply(lookup AccountLookup, postings []Posting) Summary {
	var s Summary
	seen := make(map[string]bool)
	for _, p := range postings {
		s.Processed++
		if p.Month == "" {
			s.InvalidDates++
			continue
		}
		it, ok := lookup.ByAccount(p.Account)
		if !ok {
			s.Unmatched++
			if !seen[p.Account] {
				seen[p.Account] = true
				s.UnmatchedAccounts = append(s.UnmatchedAccounts, p.Account)
			}
			continue
		}

		it.EnsureRealized()
		it.Realized.Add(model.Key{Company: p.Company, Year: p.Year, Sector: p.Sector, Month: p.Month}, p.Amount)
		it.Transactions = append(it.Transactions, model.Transaction{
			Date:    p.Date,
			History: p.History,
			Amount:  p.Amount,
			Company: p.Company,
			Sector:  p.Sector,
			Month:   p.Month,
			Year:    p.Year,
		})
		s.Matched++
		s.Volume = s.Volume.Add(p.Amount)
	}
	return s
}
