package importer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/victorcarvalhox1-creator/analisederesultado/internal/id"
	"github.com/victorcarvalhox1-creator/analisederesultado/internal/model"
	"github.com/victorcarvalhox1-creator/analisederesultado/internal/money"
)

// Legend workbook layout: classification in the first seven columns, month
// values after them.
const (
	legAccount = iota
	legLabel
	legCode
	legAccountType
	legGroup1
	legGroup2
	legGroup3
	legFirstMonth
)

// FlatTotalKey holds the single value of a legend row without month columns.
const FlatTotalKey = "Valor"

// ParseLegend reads chart rows into new line items. The first row is the
// header; its labels from the eighth column on name the month values, or
// "Mês N" is used when it has none. Rows without a label are skipped. The
// values become the item's flat realized map.
func ParseLegend(rows [][]string) []*model.LineItem {
	if len(rows) == 0 {
		return nil
	}

	var monthKeys []string
	header := rows[0]
	for i := legFirstMonth; i < len(header); i++ {
		if h := strings.TrimSpace(header[i]); h != "" {
			monthKeys = append(monthKeys, h)
		}
	}

	var items []*model.LineItem
	for _, row := range rows[1:] {
		label := cell(row, legLabel)
		if label == "" {
			continue
		}

		values := model.MonthValues{}
		if len(monthKeys) == 0 {
			for c := legFirstMonth; c < len(row); c++ {
				values[fmt.Sprintf("Mês %d", c-legFirstMonth+1)] = legendAmount(row[c])
			}
		} else {
			for i, key := range monthKeys {
				if c := legFirstMonth + i; c < len(row) {
					values[key] = legendAmount(row[c])
				}
			}
		}
		if len(values) == 0 {
			values[FlatTotalKey] = decimal.Zero
		}

		items = append(items, &model.LineItem{
			ID:           id.NewItemID(),
			Account:      cell(row, legAccount),
			Label:        label,
			Code:         cell(row, legCode),
			AccountType:  cell(row, legAccountType),
			Group1:       cell(row, legGroup1),
			Group2:       cell(row, legGroup2),
			Group3:       cell(row, legGroup3),
			FlatRealized: values,
		})
	}
	return items
}

var nonNumeric = regexp.MustCompile(`[^0-9.\-]+`)

// legendAmount reads a value cell, dropping currency symbols and other noise;
// anything left unreadable is zero.
func legendAmount(raw string) decimal.Decimal {
	if v, err := money.Parse(raw); err == nil {
		return v
	}
	s := strings.ReplaceAll(strings.TrimSpace(raw), ".", "")
	s = strings.Replace(s, ",", ".", 1)
	v, err := decimal.NewFromString(nonNumeric.ReplaceAllString(s, ""))
	if err != nil {
		return decimal.Zero
	}
	return v
}
