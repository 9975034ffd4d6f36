package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/victorcarvalhox1-creator/analisederesultado/internal/model"
)

// CellHeader is the CSV header for data/cells.csv.
const CellHeader = "item_id,stream,company,year,sector,month,amount,formula"

// Flat month maps share cells.csv; their rows leave company, year and sector empty.
const (
	streamRealizedFlat = "realized_flat"
	streamPlannedFlat  = "planned_flat"
)

const (
	numCellFields = 8
	colCellItem   = 0
	colStream     = 1
	colCompany    = 2
	colYear       = 3
	colSector     = 4
	colMonth      = 5
	colAmount     = 6
	colFormula    = 7
)

// Cell is one stored amount of a line item.
type Cell struct {
	ItemID  string
	Stream  string
	Key     model.Key
	Amount  decimal.Decimal
	Formula string
}

// MarshalCell converts a Cell to a CSV row.
func MarshalCell(c Cell) []string {
	row := make([]string, numCellFields)
	row[colCellItem] = c.ItemID
	row[colStream] = c.Stream
	row[colCompany] = c.Key.Company
	row[colYear] = c.Key.Year
	row[colSector] = c.Key.Sector
	row[colMonth] = c.Key.Month
	row[colAmount] = c.Amount.String()
	row[colFormula] = c.Formula
	return row
}

// UnmarshalCell converts a CSV row to a Cell.
func UnmarshalCell(record []string) (Cell, error) {
	if len(record) != numCellFields {
		return Cell{}, fmt.Errorf("expected %d fields, got %d", numCellFields, len(record))
	}

	switch record[colStream] {
	case string(model.Realized), string(model.Planned), streamRealizedFlat, streamPlannedFlat:
	default:
		return Cell{}, fmt.Errorf("unknown stream %q", record[colStream])
	}
	if record[colFormula] != "" && record[colStream] != string(model.Planned) {
		return Cell{}, fmt.Errorf("formula on %s cell", record[colStream])
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return Cell{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	return Cell{
		ItemID: record[colCellItem],
		Stream: record[colStream],
		Key: model.Key{
			Company: record[colCompany],
			Year:    record[colYear],
			Sector:  record[colSector],
			Month:   record[colMonth],
		},
		Amount:  amount,
		Formula: record[colFormula],
	}, nil
}

// ReadCells reads all cells from a cells.csv reader.
func ReadCells(r io.Reader) ([]Cell, error) {
	records, err := readRecords(r, numCellFields)
	if err != nil {
		return nil, fmt.Errorf("reading cells CSV: %w", err)
	}

	var cells []Cell
	for i, rec := range records {
		c, err := UnmarshalCell(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		cells = append(cells, c)
	}
	return cells, nil
}

// WriteCells writes cells to a cells.csv writer (including header).
func WriteCells(w io.Writer, cells []Cell) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(CellHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, c := range cells {
		if err := cw.Write(MarshalCell(c)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// TransactionHeader is the CSV header for data/transactions.csv.
const TransactionHeader = "item_id,date,history,amount,company,sector,month,year"

const (
	numTxFields  = 8
	dateFormat   = "2006-01-02"
	colTxItem    = 0
	colTxDate    = 1
	colTxHistory = 2
	colTxAmount  = 3
	colTxCompany = 4
	colTxSector  = 5
	colTxMonth   = 6
	colTxYear    = 7
)

// ItemTransaction is a drill-down transaction with its owning item.
type ItemTransaction struct {
	ItemID string
	model.Transaction
}

// MarshalTransaction converts an ItemTransaction to a CSV row.
func MarshalTransaction(t ItemTransaction) []string {
	row := make([]string, numTxFields)
	row[colTxItem] = t.ItemID
	if !t.Date.IsZero() {
		row[colTxDate] = t.Date.Format(dateFormat)
	}
	row[colTxHistory] = t.History
	row[colTxAmount] = t.Amount.String()
	row[colTxCompany] = t.Company
	row[colTxSector] = t.Sector
	row[colTxMonth] = t.Month
	row[colTxYear] = t.Year
	return row
}

// UnmarshalTransaction converts a CSV row to an ItemTransaction.
func UnmarshalTransaction(record []string) (ItemTransaction, error) {
	if len(record) != numTxFields {
		return ItemTransaction{}, fmt.Errorf("expected %d fields, got %d", numTxFields, len(record))
	}

	var date time.Time
	if record[colTxDate] != "" {
		var err error
		date, err = time.Parse(dateFormat, record[colTxDate])
		if err != nil {
			return ItemTransaction{}, fmt.Errorf("parsing date %q: %w", record[colTxDate], err)
		}
	}

	amount, err := decimal.NewFromString(record[colTxAmount])
	if err != nil {
		return ItemTransaction{}, fmt.Errorf("parsing amount %q: %w", record[colTxAmount], err)
	}

	return ItemTransaction{
		ItemID: record[colTxItem],
		Transaction: model.Transaction{
			Date:    date,
			History: record[colTxHistory],
			Amount:  amount,
			Company: record[colTxCompany],
			Sector:  record[colTxSector],
			Month:   record[colTxMonth],
			Year:    record[colTxYear],
		},
	}, nil
}

// ReadTransactions reads all transactions from a transactions.csv reader.
func ReadTransactions(r io.Reader) ([]ItemTransaction, error) {
	records, err := readRecords(r, numTxFields)
	if err != nil {
		return nil, fmt.Errorf("reading transactions CSV: %w", err)
	}

	var txs []ItemTransaction
	for i, rec := range records {
		t, err := UnmarshalTransaction(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txs = append(txs, t)
	}
	return txs, nil
}

// WriteTransactions writes transactions to a transactions.csv writer (including header).
func WriteTransactions(w io.Writer, txs []ItemTransaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(TransactionHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, t := range txs {
		if err := cw.Write(MarshalTransaction(t)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// readRecords returns the data rows after the header.
func readRecords(r io.Reader, fields int) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = fields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) <= 1 {
		return nil, nil
	}
	return records[1:], nil
}
