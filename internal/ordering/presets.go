package ordering

import (
	"maps"
	"strings"

	"github.com/victorcarvalhox1-creator/analisederesultado/internal/textkey"
)

// Table is a read-only label to rank lookup.
type Table struct {
	ranks map[string]int
}

// NewTable copies m into a Table; later changes to m are not seen.
func NewTable(m map[string]int) Table {
	return Table{ranks: maps.Clone(m)}
}

// Lookup returns the rank for an exact key.
func (t Table) Lookup(key string) (int, bool) {
	r, ok := t.ranks[key]
	return r, ok
}

// Len returns the number of entries.
func (t Table) Len() int {
	return len(t.ranks)
}

// Presets holds the two static rank tables: group labels and account labels.
type Presets struct {
	Groups Table
	Leaves Table
}

// DefaultPresets returns the built-in DRE layout tables.
func DefaultPresets() Presets {
	return Presets{
		Groups: NewTable(defaultGroupRanks),
		Leaves: NewTable(defaultLeafRanks),
	}
}

// GroupRank looks a group label up, trimmed and upper-cased.
func (p Presets) GroupRank(label string) (int, bool) {
	return p.Groups.Lookup(textkey.Upper(label))
}

// LeafRank looks an account label up, trimmed.
func (p Presets) LeafRank(label string) (int, bool) {
	return p.Leaves.Lookup(strings.TrimSpace(label))
}
