package report

import (
	"fmt"

	"github.com/victorcarvalhox1-creator/analisederesultado/internal/model"
	"github.com/victorcarvalhox1-creator/analisederesultado/internal/ordering"
)

// Level tags a node's depth in the DRE.
type Level int

const (
	LevelGroup3 Level = iota
	LevelGroup2
	LevelGroup1
	LevelAccountType
	LevelItem
	LevelHistory
)

var levelNames = [...]string{"group3", "group2", "group1", "account_type", "item", "history"}

func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return fmt.Sprintf("level(%d)", int(l))
}

// MarshalText renders the level name.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// Node is one row of the DRE tree. Children are already sorted.
type Node struct {
	ID       string            `json:"id"`
	Label    string            `json:"label"`
	Account  string            `json:"account,omitempty"`
	Level    Level             `json:"level"`
	ItemID   string            `json:"itemId,omitempty"`
	Realized model.MonthValues `json:"realized"`
	Planned  model.MonthValues `json:"planned"`
	Rank     ordering.Rank     `json:"rank"`
	Children []*Node           `json:"children,omitempty"`

	index map[string]*Node
}

func newNode(id, label string, level Level, rank ordering.Rank) *Node {
	return &Node{
		ID:       id,
		Label:    label,
		Level:    level,
		Realized: model.MonthValues{},
		Planned:  model.MonthValues{},
		Rank:     rank,
	}
}

// child returns the child stored under key, creating it with mk on first use.
func (n *Node) child(key string, mk func() *Node) *Node {
	if c, ok := n.index[key]; ok {
		return c
	}
	c := mk()
	n.put(key, c)
	return c
}

// put stores c under key, replacing any previous child with that key.
func (n *Node) put(key string, c *Node) {
	if n.index == nil {
		n.index = make(map[string]*Node)
	}
	if old, ok := n.index[key]; ok {
		for i, existing := range n.Children {
			if existing == old {
				n.Children[i] = c
				break
			}
		}
	} else {
		n.Children = append(n.Children, c)
	}
	n.index[key] = c
}

// accumulate adds a descendant's values and lets its rank bubble up.
func (n *Node) accumulate(realized, planned model.MonthValues, childRank ordering.Rank) {
	n.Realized.AddAll(realized)
	n.Planned.AddAll(planned)
	n.Rank = n.Rank.Lower(childRank)
}

func (n *Node) sortKey() ordering.Key {
	return ordering.Key{ID: n.ID, Label: n.Label, Code: n.Account, Rank: n.Rank}
}

// ItemLeaves returns the item-level descendants of n (n itself when it is an item).
// History rows are drill-down only and never included.
func (n *Node) ItemLeaves() []*Node {
	var out []*Node
	var walk func(*Node)
	walk = func(x *Node) {
		if x.Level == LevelItem {
			out = append(out, x)
			return
		}
		for _, c := range x.Children {
			walk(c)
		}
	}
	walk(n)
	return out
}

// Forest is the ordered list of Group3 roots.
type Forest []*Node

// Walk visits every node depth-first in display order. Returning false skips the node's children.
func (f Forest) Walk(fn func(n *Node, depth int) bool) {
	var walk func(*Node, int)
	walk = func(n *Node, depth int) {
		if !fn(n, depth) {
			return
		}
		for _, c := range n.Children {
			walk(c, depth+1)
		}
	}
	for _, n := range f {
		walk(n, 0)
	}
}

// Find returns the node with the given ID, or nil.
func (f Forest) Find(id string) *Node {
	var found *Node
	f.Walk(func(n *Node, _ int) bool {
		if found != nil {
			return false
		}
		if n.ID == id {
			found = n
			return false
		}
		return true
	})
	return found
}
