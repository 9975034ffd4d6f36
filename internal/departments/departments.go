// Package departments groups ledger sectors into display legends.
package departments

import (
	"cmp"
	"slices"

	"github.com/victorcarvalhox1-creator/analisederesultado/internal/model"
	"github.com/victorcarvalhox1-creator/analisederesultado/internal/textkey"
)

// DefaultOrder is the legend order used when no department sets one.
const DefaultOrder = 999

// Legend is a display group of one or more sectors.
type Legend struct {
	Label   string
	Order   int
	members map[string]struct{}
}

// Contains reports whether a sector key belongs to the legend.
// Sector codes, sector names and the legend label itself all match, ignoring case, accents and padding.
func (l *Legend) Contains(sector string) bool {
	if l == nil {
		return false
	}
	_, ok := l.members[textkey.Fold(sector)]
	return ok
}

// Members returns the folded membership keys, sorted.
func (l *Legend) Members() []string {
	out := make([]string, 0, len(l.members))
	for k := range l.members {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

// Set is the legend index built from a department list.
type Set struct {
	legends []*Legend
	byKey   map[string]*Legend
}

// New groups departments by legend label.
func New(deps []model.Department) *Set {
	s := &Set{byKey: make(map[string]*Legend)}
	for _, d := range deps {
		label := d.LegendLabel()
		key := textkey.Fold(label)
		order := d.Order
		if order == 0 {
			order = DefaultOrder
		}

		l, ok := s.byKey[key]
		if !ok {
			l = &Legend{Label: label, Order: order, members: make(map[string]struct{})}
			s.byKey[key] = l
			s.legends = append(s.legends, l)
		}
		if d.SectorName != "" {
			l.members[textkey.Fold(d.SectorName)] = struct{}{}
		}
		if d.SectorCode != "" {
			l.members[textkey.Fold(d.SectorCode)] = struct{}{}
		}
		l.members[key] = struct{}{}
		if order < l.Order {
			l.Order = order
		}
	}

	slices.SortStableFunc(s.legends, func(a, b *Legend) int {
		if c := cmp.Compare(a.Order, b.Order); c != 0 {
			return c
		}
		return textkey.NewCollator().CompareString(a.Label, b.Label)
	})
	return s
}

// All returns the legends in display order.
func (s *Set) All() []*Legend {
	return s.legends
}

// Find looks a legend up by label.
func (s *Set) Find(label string) (*Legend, bool) {
	l, ok := s.byKey[textkey.Fold(label)]
	return l, ok
}

// Resolve returns the legend for a label. Unknown labels resolve to a
// legend whose only member is the label itself, which is where budget
// writes for that label are stored.
func (s *Set) Resolve(label string) *Legend {
	if l, ok := s.Find(label); ok {
		return l
	}
	return &Legend{
		Label:   label,
		Order:   DefaultOrder,
		members: map[string]struct{}{textkey.Fold(label): {}},
	}
}
