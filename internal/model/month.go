package model

import (
	"cmp"
	"strings"
	"time"

	"github.com/victorcarvalhox1-creator/analisederesultado/internal/textkey"
)

// Months is the canonical calendar order used as month keys.
var Months = [12]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// MonthIndex returns the 0-based calendar index of a month label, or -1.
func MonthIndex(label string) int {
	l := strings.ToLower(strings.TrimSpace(label))
	for i, m := range Months {
		if m == l {
			return i
		}
	}
	return -1
}

// MonthName returns the canonical label for a time.Month.
func MonthName(m time.Month) string {
	return Months[int(m)-1]
}

// CompareMonths orders canonical months by calendar; other labels sort after
// them with digit runs compared numerically, so "Mês 2" precedes "Mês 10".
func CompareMonths(a, b string) int {
	ia, ib := MonthIndex(a), MonthIndex(b)
	switch {
	case ia >= 0 && ib >= 0:
		return cmp.Compare(ia, ib)
	case ia >= 0:
		return -1
	case ib >= 0:
		return 1
	}
	if c := textkey.NewCodeCollator().CompareString(a, b); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}
