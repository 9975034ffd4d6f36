package budget

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/victorcarvalhox1-creator/analisederesultado/internal/model"
)

// Mode selects how a leaf's annual target is spread over the year.
type Mode string

const (
	// ModeHistory follows the leaf's own realized seasonality.
	ModeHistory Mode = "history"
	// ModeEqual gives every month a twelfth.
	ModeEqual Mode = "equal"
)

// ParseMode converts "history"/"equal".
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeHistory:
		return ModeHistory, nil
	case ModeEqual:
		return ModeEqual, nil
	}
	return "", fmt.Errorf("unknown distribution mode %q (want history or equal)", s)
}

var twelve = decimal.NewFromInt(12)

// annualRealized sums the twelve calendar months; labels outside the calendar are ignored.
func annualRealized(v model.MonthValues) decimal.Decimal {
	total := decimal.Zero
	for _, m := range model.Months {
		total = total.Add(v[m])
	}
	return total
}

// Allocate splits annual across leaves and then across the twelve months.
//
// Each leaf's share of annual is its share of the combined realized total, or
// an even split when that total is zero. Each leaf's target is then spread by
// its own realized months (ModeHistory) or evenly (ModeEqual, and for leaves
// without realized history). Rounding residue goes to the last leaf and the
// last weighted month, so the result sums to annual exactly.
func Allocate(realized []model.MonthValues, annual decimal.Decimal, mode Mode) []model.MonthValues {
	n := len(realized)
	if n == 0 {
		return nil
	}

	totals := make([]decimal.Decimal, n)
	combined := decimal.Zero
	for i, r := range realized {
		totals[i] = annualRealized(r)
		combined = combined.Add(totals[i])
	}

	out := make([]model.MonthValues, n)
	assigned := decimal.Zero
	for i := range realized {
		var target decimal.Decimal
		switch {
		case i == n-1:
			target = annual.Sub(assigned)
		case combined.IsZero():
			target = annual.Div(decimal.NewFromInt(int64(n)))
		default:
			target = annual.Mul(totals[i]).Div(combined)
		}
		assigned = assigned.Add(target)
		out[i] = spread(target, realized[i], totals[i], mode)
	}
	return out
}

// spread distributes one leaf's target over the calendar.
func spread(target decimal.Decimal, realized model.MonthValues, total decimal.Decimal, mode Mode) model.MonthValues {
	out := make(model.MonthValues, len(model.Months))
	weighted := mode == ModeHistory && !total.IsZero()

	last := len(model.Months) - 1
	if weighted {
		for i := len(model.Months) - 1; i >= 0; i-- {
			if !realized[model.Months[i]].IsZero() {
				last = i
				break
			}
		}
	}

	assigned := decimal.Zero
	for i, m := range model.Months {
		var v decimal.Decimal
		switch {
		case i == last:
			v = target.Sub(assigned)
		case i > last:
			v = decimal.Zero
		case weighted:
			v = target.Mul(realized[m]).Div(total)
		default:
			v = target.Div(twelve)
		}
		assigned = assigned.Add(v)
		out[m] = v
	}
	return out
}
