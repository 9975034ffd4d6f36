// Package report builds the ordered DRE tree from line items.
package report

import (
	"slices"
	"strings"

	"github.com/victorcarvalhox1-creator/analisederesultado/internal/departments"
	"github.com/victorcarvalhox1-creator/analisederesultado/internal/id"
	"github.com/victorcarvalhox1-creator/analisederesultado/internal/model"
	"github.com/victorcarvalhox1-creator/analisederesultado/internal/ordering"
)

// Query is everything a tree build depends on besides the items.
type Query struct {
	Filter
	// HistoryYear, when set, pins the realized stream to another year than the
	// planned one. Budget screens compare last year's actuals with this year's plan.
	HistoryYear string `json:"historyYear,omitempty"`
	// EditMode keeps items with no values so they can be typed into.
	EditMode bool            `json:"editMode,omitempty"`
	Order    ordering.Manual `json:"order,omitempty"`
}

// RealizedFilter is the filter applied to the realized stream and transactions.
func (q Query) RealizedFilter() Filter {
	f := q.Filter
	if q.HistoryYear != "" {
		f.Year = q.HistoryYear
	}
	return f
}

// Builder folds line items into a Forest. Build does not modify its inputs.
type Builder struct {
	presets  ordering.Presets
	resolver *Resolver
}

// NewBuilder creates a Builder with the given preset tables and legend index.
func NewBuilder(presets ordering.Presets, legends *departments.Set) *Builder {
	return &Builder{presets: presets, resolver: NewResolver(legends)}
}

// Resolver exposes the value resolver the builder uses.
func (b *Builder) Resolver() *Resolver {
	return b.resolver
}

// Build returns the ordered Group3 → Group2 → Group1 → AccountType → Item tree.
// Items without Group3 are left out, as are later items repeating an ID. Every
// other item occupies exactly one leaf, so the Group3 totals equal the sum of
// the included items' values.
func (b *Builder) Build(items []*model.LineItem, q Query) Forest {
	root := newNode("", "", LevelGroup3, ordering.None())
	rf := q.RealizedFilter()
	seen := make(map[string]bool, len(items))

	for _, it := range items {
		if it.Group3 == "" || seen[it.ID] {
			continue
		}
		seen[it.ID] = true
		realized := b.resolver.Effective(it, model.Realized, rf)
		planned := b.resolver.Effective(it, model.Planned, q.Filter)
		if len(realized) == 0 && len(planned) == 0 && !q.EditMode {
			continue
		}

		g3Label := it.Group3
		g2Label := it.Group2OrDefault()
		g1Label := it.Group1OrDefault()
		tpLabel := it.AccountTypeOrDefault()

		g3 := root.child(g3Label, func() *Node {
			return b.groupNode(id.FormatNodeID(id.PrefixGroup3, g3Label), g3Label, LevelGroup3)
		})
		g2 := g3.child(g2Label, func() *Node {
			return b.groupNode(id.FormatNodeID(id.PrefixGroup2, g3Label, g2Label), g2Label, LevelGroup2)
		})
		g1 := g2.child(g1Label, func() *Node {
			return b.groupNode(id.FormatNodeID(id.PrefixGroup1, g3Label, g2Label, g1Label), g1Label, LevelGroup1)
		})
		tp := g1.child(tpLabel, func() *Node {
			n := b.groupNode(id.FormatNodeID(id.PrefixAccountType, g3Label, g2Label, g1Label, tpLabel), tpLabel, LevelAccountType)
			if r, ok := b.presets.LeafRank(tpLabel); ok {
				n.Rank = ordering.Fixed(r)
			}
			return n
		})

		leaf := &Node{
			ID:       it.ID,
			Label:    it.Label,
			Account:  it.Account,
			Level:    LevelItem,
			ItemID:   it.ID,
			Realized: realized,
			Planned:  planned,
			Rank:     b.leafRank(it),
		}
		tp.put(it.ID, leaf)

		tp.accumulate(realized, planned, leaf.Rank)
		g1.accumulate(realized, planned, tp.Rank)
		g2.accumulate(realized, planned, g1.Rank)
		g3.accumulate(realized, planned, g2.Rank)

		b.attachHistory(leaf, it, rf)
	}

	forest := Forest(root.Children)
	sortForest(forest, ordering.NewComparator(q.Order))
	return forest
}

func (b *Builder) groupNode(nodeID, label string, level Level) *Node {
	rank := ordering.None()
	if r, ok := b.presets.GroupRank(label); ok {
		rank = ordering.Fixed(r)
	}
	return newNode(nodeID, label, level, rank)
}

// leafRank looks the item label up first and the account type second.
func (b *Builder) leafRank(it *model.LineItem) ordering.Rank {
	if r, ok := b.presets.LeafRank(it.Label); ok {
		return ordering.Fixed(r)
	}
	if r, ok := b.presets.LeafRank(it.AccountType); ok {
		return ordering.Fixed(r)
	}
	return ordering.Fixed(ordering.Unranked)
}

// attachHistory groups the item's matching transactions by history text, in
// order of first appearance, as realized-only children of the leaf.
func (b *Builder) attachHistory(leaf *Node, it *model.LineItem, f Filter) {
	if len(it.Transactions) == 0 {
		return
	}
	var order []string
	groups := make(map[string]model.MonthValues)
	for _, tx := range it.Transactions {
		if !b.resolver.MatchTransaction(tx, f) {
			continue
		}
		vals, ok := groups[tx.History]
		if !ok {
			vals = model.MonthValues{}
			groups[tx.History] = vals
			order = append(order, tx.History)
		}
		vals.Add(strings.ToLower(tx.Month), tx.Amount)
	}
	for idx, history := range order {
		leaf.Children = append(leaf.Children, &Node{
			ID:       id.FormatHistoryID(it.ID, idx),
			Label:    history,
			Level:    LevelHistory,
			Realized: groups[history],
			Planned:  model.MonthValues{},
			Rank:     ordering.Fixed(idx),
		})
	}
}

func sortForest(nodes []*Node, c *ordering.Comparator) {
	slices.SortStableFunc(nodes, func(a, b *Node) int {
		return c.Compare(a.sortKey(), b.sortKey())
	})
	for _, n := range nodes {
		n.index = nil
		sortForest(n.Children, c)
	}
}
