package report

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/victorcarvalhox1-creator/analisederesultado/internal/model"
	"github.com/victorcarvalhox1-creator/analisederesultado/internal/money"
)

// RenderOptions controls the text table.
type RenderOptions struct {
	Months   []string
	Planned  bool // add a planned column next to each realized one
	Vertical bool // add the share of the revenue base
	MaxDepth int  // 0 shows every level
	History  bool // include transaction history rows
}

// NetResultLabel titles the bottom line of the report.
const NetResultLabel = "RESULTADO LÍQUIDO"

// Render writes f as an aligned text table with pt-BR number formatting.
func Render(w io.Writer, f Forest, opts RenderOptions) error {
	header := []string{"DRE"}
	for _, m := range opts.Months {
		if opts.Planned {
			header = append(header, m+" real", m+" orç")
		} else {
			header = append(header, m)
		}
	}
	header = append(header, "Total")
	if opts.Planned {
		header = append(header, "Total orç")
	}
	if opts.Vertical {
		header = append(header, "AV%")
	}

	baseTotal := VerticalBase(f).Total()
	row := func(label string, depth int, realized, planned model.MonthValues) []string {
		cells := []string{strings.Repeat("  ", depth) + label}
		for _, m := range opts.Months {
			cells = append(cells, money.Format(realized[m]))
			if opts.Planned {
				cells = append(cells, money.Format(planned[m]))
			}
		}
		total := sumMonths(realized, opts.Months)
		cells = append(cells, money.Format(total))
		if opts.Planned {
			cells = append(cells, money.Format(sumMonths(planned, opts.Months)))
		}
		if opts.Vertical {
			cells = append(cells, money.FormatPercent(Share(total, baseTotal)))
		}
		return cells
	}

	rows := [][]string{header}
	f.Walk(func(n *Node, depth int) bool {
		if n.Level == LevelHistory && !opts.History {
			return false
		}
		rows = append(rows, row(n.Label, depth, n.Realized, n.Planned))
		return opts.MaxDepth == 0 || depth+1 < opts.MaxDepth
	})
	realized, planned := NetResult(f)
	rows = append(rows, row(NetResultLabel, 0, realized, planned))

	return writeTable(w, rows)
}

func sumMonths(v model.MonthValues, months []string) decimal.Decimal {
	total := decimal.Zero
	for _, m := range months {
		total = total.Add(v[m])
	}
	return total
}

// writeTable left-aligns the first column and right-aligns the others.
func writeTable(w io.Writer, rows [][]string) error {
	var widths []int
	for _, r := range rows {
		for i, c := range r {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], utf8.RuneCountInString(c))
		}
	}
	for _, r := range rows {
		var b strings.Builder
		for i, c := range r {
			pad := strings.Repeat(" ", widths[i]-utf8.RuneCountInString(c))
			if i == 0 {
				b.WriteString(c + pad)
			} else {
				b.WriteString("  " + pad + c)
			}
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(b.String(), " ")); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
	}
	return nil
}
