// Package ordering ranks DRE nodes: preset tables, inherited child ranks,
// manual group order and a pt-BR alphabetical fallback.
package ordering

import "fmt"

// Unranked is larger than any real rank.
const Unranked = 999999

// Rank is a node's sort rank. A Fixed rank never changes; an Inherited rank
// can only be lowered by a child.
type Rank struct {
	value int
	fixed bool
}

// Fixed returns an immutable rank.
func Fixed(n int) Rank {
	return Rank{value: n, fixed: true}
}

// Inherited returns a rank that children may lower.
func Inherited(n int) Rank {
	return Rank{value: n}
}

// None is the neutral rank of a node without a preset.
func None() Rank {
	return Inherited(Unranked)
}

// Value returns the numeric rank.
func (r Rank) Value() int {
	return r.value
}

// IsFixed reports whether the rank came from a preset or a leaf.
func (r Rank) IsFixed() bool {
	return r.fixed
}

// Ranked reports whether the rank is anything other than Unranked.
func (r Rank) Ranked() bool {
	return r.value != Unranked
}

// Lower returns r lowered to child when r is Inherited and child is smaller.
func (r Rank) Lower(child Rank) Rank {
	if r.fixed || child.value >= r.value {
		return r
	}
	return Inherited(child.value)
}

func (r Rank) String() string {
	if r.fixed {
		return fmt.Sprintf("fixed(%d)", r.value)
	}
	return fmt.Sprintf("inherited(%d)", r.value)
}

// MarshalJSON renders the numeric rank.
func (r Rank) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprint(r.value)), nil
}
