package accounts

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/victorcarvalhox1-creator/analisederesultado/internal/model"
)

// Header is the CSV header for chart-of-accounts.csv.
const Header = "item_id,account,label,code,account_type,group1,group2,group3,description"

const (
	numFields      = 9
	colID          = 0
	colAccount     = 1
	colLabel       = 2
	colCode        = 3
	colAccountType = 4
	colGroup1      = 5
	colGroup2      = 6
	colGroup3      = 7
	colDesc        = 8
)

// ReadItems reads chart-of-accounts.csv. Values are stored separately, so the
// returned items carry classification only.
func ReadItems(r io.Reader) ([]*model.LineItem, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading accounts CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var items []*model.LineItem
	for i, rec := range records[1:] {
		it, err := UnmarshalItem(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		items = append(items, it)
	}
	return items, nil
}

// WriteItems writes chart-of-accounts.csv.
func WriteItems(w io.Writer, items []*model.LineItem) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, it := range items {
		if err := cw.Write(MarshalItem(it)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalItem converts a LineItem's classification to a CSV row.
func MarshalItem(it *model.LineItem) []string {
	row := make([]string, numFields)
	row[colID] = it.ID
	row[colAccount] = it.Account
	row[colLabel] = it.Label
	row[colCode] = it.Code
	row[colAccountType] = it.AccountType
	row[colGroup1] = it.Group1
	row[colGroup2] = it.Group2
	row[colGroup3] = it.Group3
	row[colDesc] = it.Description
	return row
}

// UnmarshalItem converts a CSV row to a LineItem.
func UnmarshalItem(record []string) (*model.LineItem, error) {
	if len(record) != numFields {
		return nil, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}
	if record[colID] == "" {
		return nil, fmt.Errorf("missing item_id")
	}

	return &model.LineItem{
		ID:          record[colID],
		Account:     record[colAccount],
		Label:       record[colLabel],
		Code:        record[colCode],
		AccountType: record[colAccountType],
		Group1:      record[colGroup1],
		Group2:      record[colGroup2],
		Group3:      record[colGroup3],
		Description: record[colDesc],
	}, nil
}
