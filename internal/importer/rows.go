package importer

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// XLSXReader reads the first worksheet of a workbook. Cells are returned
// unformatted, so dates arrive as Excel serial numbers and amounts as plain
// decimals.
type XLSXReader struct{}

// Format returns "xlsx".
func (XLSXReader) Format() string { return "xlsx" }

// ReadRows reads the first sheet.
func (XLSXReader) ReadRows(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}
	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("reading sheet %s: %w", sheets[0], err)
	}
	return rows, nil
}

// CSVReader reads delimited exports. Rows may have any number of fields.
type CSVReader struct {
	Comma  rune
	Latin1 bool // decode ISO-8859-1 instead of UTF-8
}

// Format returns "csv".
func (CSVReader) Format() string { return "csv" }

// ReadRows reads every record.
func (c CSVReader) ReadRows(r io.Reader) ([][]string, error) {
	if c.Latin1 {
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}
	cr := csv.NewReader(r)
	if c.Comma != 0 {
		cr.Comma = c.Comma
	}
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}
	return rows, nil
}
