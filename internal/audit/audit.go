// Package audit checks line items for values that disagree with each other.
package audit

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/victorcarvalhox1-creator/analisederesultado/internal/budget"
	"github.com/victorcarvalhox1-creator/analisederesultado/internal/departments"
	"github.com/victorcarvalhox1-creator/analisederesultado/internal/model"
	"github.com/victorcarvalhox1-creator/analisederesultado/internal/money"
	"github.com/victorcarvalhox1-creator/analisederesultado/internal/textkey"
)

// Rule identifies a consistency check.
type Rule int

const (
	// RuleMonth flags breakdown cells whose month is not a calendar month.
	RuleMonth Rule = iota + 1
	// RuleFormula flags formula tokens that are not percentages.
	RuleFormula
	// RuleStaleFormula flags formula cells whose cached amount no longer
	// matches the revenue base.
	RuleStaleFormula
	// RuleLedgerDrift flags realized cells that differ from the sum of the
	// item's ledger transactions.
	RuleLedgerDrift
	// RuleDuplicateAccount flags items whose account is already mapped.
	RuleDuplicateAccount
	// RuleUngrouped flags items without Group3, which never show in the tree.
	RuleUngrouped
	// RuleDuplicateID flags items repeating an earlier item's ID; the tree
	// keeps only the first.
	RuleDuplicateID
)

var ruleNames = map[Rule]string{
	RuleMonth:            "month",
	RuleFormula:          "formula",
	RuleStaleFormula:     "stale-formula",
	RuleLedgerDrift:      "ledger-drift",
	RuleDuplicateAccount: "duplicate-account",
	RuleUngrouped:        "ungrouped",
	RuleDuplicateID:      "duplicate-id",
}

func (r Rule) String() string {
	if n, ok := ruleNames[r]; ok {
		return n
	}
	return fmt.Sprintf("rule(%d)", int(r))
}

// Finding describes a single violation.
type Finding struct {
	Rule        Rule
	ItemID      string
	Description string
}

func (f Finding) Error() string {
	return fmt.Sprintf("%s [%s]: %s", f.Rule, f.ItemID, f.Description)
}

// Check runs every rule over items. Findings come in item order, then rule order.
func Check(items []*model.LineItem, legends *departments.Set) []Finding {
	recomputed := make([]*model.LineItem, len(items))
	for i, it := range items {
		recomputed[i] = it.Clone()
	}
	budget.Recompute(recomputed, legends)

	var out []Finding
	accounts := make(map[string]string)
	ids := make(map[string]bool, len(items))
	for i, it := range items {
		add := func(r Rule, format string, args ...any) {
			out = append(out, Finding{Rule: r, ItemID: it.ID, Description: fmt.Sprintf(format, args...)})
		}

		for _, s := range []model.Stream{model.Realized, model.Planned} {
			for _, k := range it.Breakdown(s).Keys() {
				if model.MonthIndex(k.Month) < 0 {
					add(RuleMonth, "%s cell %s/%s/%s has month %q", s, k.Company, k.Year, k.Sector, k.Month)
				}
			}
		}

		for _, k := range sortedKeys(it.Formulas) {
			token := it.Formulas[k]
			if _, err := money.ParsePercent(token); err != nil {
				add(RuleFormula, "formula %q at %s is not a percentage", token, describe(k))
				continue
			}
			want := recomputed[i].Planned.Get(k)
			if got := it.Planned.Get(k); !got.Equal(want) {
				add(RuleStaleFormula, "%s at %s is %s, re-evaluates to %s", token, describe(k), got.StringFixed(2), want.StringFixed(2))
			}
		}

		if len(it.Transactions) > 0 {
			sums := make(map[model.Key]decimal.Decimal)
			for _, tx := range it.Transactions {
				k := model.Key{Company: tx.Company, Year: tx.Year, Sector: tx.Sector, Month: strings.ToLower(tx.Month)}
				sums[k] = sums[k].Add(tx.Amount)
			}
			keys := slices.Collect(maps.Keys(sums))
			keys = append(keys, it.Realized.Keys()...)
			slices.SortFunc(keys, model.Key.Compare)
			for _, k := range slices.Compact(keys) {
				if got, want := it.Realized.Get(k), sums[k]; !got.Equal(want) {
					add(RuleLedgerDrift, "realized %s at %s, transactions sum to %s", got.StringFixed(2), describe(k), want.StringFixed(2))
				}
			}
		}

		if key := textkey.AccountKey(it.Account); key != "" {
			if first, ok := accounts[key]; ok {
				add(RuleDuplicateAccount, "account %s is already mapped to %s; ledger rows never reach this item", it.Account, first)
			} else {
				accounts[key] = it.ID
			}
		}

		if it.Group3 == "" {
			add(RuleUngrouped, "%q has no Group3 and is left out of the DRE", it.Label)
		}

		if ids[it.ID] {
			add(RuleDuplicateID, "%q repeats an item ID and is left out of the DRE", it.Label)
		}
		ids[it.ID] = true
	}
	return out
}

func sortedKeys(f model.Formulas) []model.Key {
	keys := slices.Collect(maps.Keys(f))
	slices.SortFunc(keys, model.Key.Compare)
	return keys
}

func describe(k model.Key) string {
	return fmt.Sprintf("%s/%s/%s/%s", k.Company, k.Year, k.Sector, k.Month)
}
