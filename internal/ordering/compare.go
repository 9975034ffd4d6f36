package ordering

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/collate"

	"github.com/victorcarvalhox1-creator/analisederesultado/internal/textkey"
)

// Key is what the comparator needs to know about a node.
type Key struct {
	ID    string
	Label string
	Code  string
	Rank  Rank
}

// Comparator orders sibling nodes. It holds collators and is not safe for concurrent use.
type Comparator struct {
	manual Manual
	labels *collate.Collator
	codes  *collate.Collator
}

// NewComparator creates a Comparator using the given manual group order.
func NewComparator(manual Manual) *Comparator {
	return &Comparator{
		manual: manual,
		labels: textkey.NewCollator(),
		codes:  textkey.NewCodeCollator(),
	}
}

// Compare returns a negative number when a sorts before b.
//
// Precedence: rank (when either side is ranked), manual order, account code
// (when both carry one), collated label, raw label, ID. It only returns 0 for
// keys with the same ID and label.
func (c *Comparator) Compare(a, b Key) int {
	if a.Rank.Ranked() || b.Rank.Ranked() {
		if r := cmp.Compare(a.Rank.Value(), b.Rank.Value()); r != 0 {
			return r
		}
	}
	if r := cmp.Compare(c.manual.Get(a.Label), c.manual.Get(b.Label)); r != 0 {
		return r
	}
	if a.Code != "" && b.Code != "" {
		if r := c.codes.CompareString(a.Code, b.Code); r != 0 {
			return r
		}
	}
	if r := c.labels.CompareString(a.Label, b.Label); r != 0 {
		return r
	}
	if r := strings.Compare(a.Label, b.Label); r != 0 {
		return r
	}
	return strings.Compare(a.ID, b.ID)
}

// Sort orders xs in place with a stable sort.
func Sort[T any](xs []T, key func(T) Key, manual Manual) {
	c := NewComparator(manual)
	slices.SortStableFunc(xs, func(a, b T) int {
		return c.Compare(key(a), key(b))
	})
}
