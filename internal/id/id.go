package id

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Node ID prefixes, one per tree level above the item.
const (
	PrefixGroup3      = "g3"
	PrefixGroup2      = "g2"
	PrefixGroup1      = "g1"
	PrefixAccountType = "tp"
	PrefixHistory     = "hist"
)

// NewItemID returns a fresh line item ID.
func NewItemID() string {
	return uuid.NewString()
}

// FormatNodeID returns a group node ID like "g2-LUCRO BRUTO-VENDAS LÍQUIDAS".
func FormatNodeID(prefix string, path ...string) string {
	return prefix + "-" + strings.Join(path, "-")
}

// FormatHistoryID returns the ID of the idx-th history row under an item.
func FormatHistoryID(itemID string, idx int) string {
	return fmt.Sprintf("%s-%s-%d", PrefixHistory, itemID, idx)
}

// Kind returns the prefix of a group or history node ID, or "" for item IDs.
func Kind(nodeID string) string {
	prefix, _, ok := strings.Cut(nodeID, "-")
	if !ok {
		return ""
	}
	switch prefix {
	case PrefixGroup3, PrefixGroup2, PrefixGroup1, PrefixAccountType, PrefixHistory:
		return prefix
	}
	return ""
}

// IsHistory reports whether nodeID names a transaction history row.
func IsHistory(nodeID string) bool {
	return Kind(nodeID) == PrefixHistory
}
