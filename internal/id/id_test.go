package id

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatNodeID(t *testing.T) {
	tests := []struct {
		prefix string
		path   []string
		want   string
	}{
		{PrefixGroup3, []string{"LUCRO BRUTO"}, "g3-LUCRO BRUTO"},
		{PrefixGroup2, []string{"LUCRO BRUTO", "VENDAS LÍQUIDAS"}, "g2-LUCRO BRUTO-VENDAS LÍQUIDAS"},
		{PrefixAccountType, []string{"A", "B", "C", "PADRÃO"}, "tp-A-B-C-PADRÃO"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatNodeID(tt.prefix, tt.path...))
		})
	}
}

func TestFormatHistoryID(t *testing.T) {
	assert.Equal(t, "hist-abc-0", FormatHistoryID("abc", 0))
	assert.Equal(t, "hist-abc-12", FormatHistoryID("abc", 12))
}

func TestKind(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"g3-LUCRO BRUTO", PrefixGroup3},
		{"g1-X-Y-Z", PrefixGroup1},
		{"tp-X-Y-Z-W", PrefixAccountType},
		{"hist-item-3", PrefixHistory},
		{"3f2a9c1e-0000-4000-8000-000000000000", ""},
		{"plain", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.want, Kind(tt.id))
		})
	}

	assert.True(t, IsHistory(FormatHistoryID("x", 1)))
	assert.False(t, IsHistory("g3-x"))
}

func TestNewItemID(t *testing.T) {
	a, b := NewItemID(), NewItemID()
	assert.NotEqual(t, a, b)

	_, err := uuid.Parse(a)
	require.NoError(t, err)
	assert.Empty(t, Kind(a))
}
