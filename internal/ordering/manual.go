package ordering

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/victorcarvalhox1-creator/analisederesultado/internal/textkey"
)

// DefaultManualRank applies to labels without a manual entry.
const DefaultManualRank = 9999

// Direction moves a label within its list.
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

// ParseDirection converts "up"/"down".
func ParseDirection(s string) (Direction, error) {
	switch Direction(strings.ToLower(strings.TrimSpace(s))) {
	case Up:
		return Up, nil
	case Down:
		return Down, nil
	}
	return "", fmt.Errorf("unknown direction %q (want up or down)", s)
}

// Manual is the user-edited label to rank map. It only affects nodes without a preset rank.
type Manual map[string]int

// Get returns the manual rank, DefaultManualRank when unset.
func (m Manual) Get(label string) int {
	if r, ok := m[label]; ok {
		return r
	}
	return DefaultManualRank
}

// Sorted returns labels ordered by manual rank then collated label.
func (m Manual) Sorted(labels []string) []string {
	out := slices.Clone(labels)
	col := textkey.NewCollator()
	slices.SortStableFunc(out, func(a, b string) int {
		if c := cmp.Compare(m.Get(a), m.Get(b)); c != 0 {
			return c
		}
		return col.CompareString(a, b)
	})
	return out
}

// Move swaps labels[index] with its neighbour and returns a new map in which
// every label of the list is ranked by its new position (1-based). Entries for
// other labels are kept. Moving past either end returns m unchanged.
func (m Manual) Move(labels []string, index int, dir Direction) Manual {
	list := m.Sorted(labels)
	switch {
	case dir == Up && index > 0 && index < len(list):
		list[index], list[index-1] = list[index-1], list[index]
	case dir == Down && index >= 0 && index < len(list)-1:
		list[index], list[index+1] = list[index+1], list[index]
	default:
		return m
	}

	out := maps.Clone(m)
	if out == nil {
		out = make(Manual)
	}
	for i, label := range list {
		out[label] = i + 1
	}
	return out
}

// Set returns a copy with label pinned to rank.
func (m Manual) Set(label string, rank int) Manual {
	out := maps.Clone(m)
	if out == nil {
		out = make(Manual)
	}
	out[label] = rank
	return out
}

// Fingerprint is a stable text form used in cache keys.
func (m Manual) Fingerprint() string {
	keys := slices.Sorted(maps.Keys(m))
	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%q=%d;", k, m[k])
	}
	return b.String()
}
