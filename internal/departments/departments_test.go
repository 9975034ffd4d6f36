package departments

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/victorcarvalhox1-creator/analisederesultado/internal/model"
)

var sample = []model.Department{
	{SectorCode: "100", SectorName: "VEICULOS NOVOS", Legend: "C & O", Order: 1},
	{SectorCode: "300", SectorName: "PEÇAS", Legend: "Peças", Order: 4},
	{SectorCode: "401", SectorName: "OFICINA MECANICA CAMINHÕES", Legend: "Serviços", Order: 5},
	{SectorCode: "411", SectorName: "OFICINA MECANICA VANS", Legend: "Serviços", Order: 5},
	{SectorCode: "701", SectorName: "VEICULOS VANS", Legend: "Vans", Order: 2},
	{SectorCode: "100", SectorName: "VEICULOS CAMINHOES E ONIBUS", Legend: "C & O", Order: 1},
	{SectorCode: "900", SectorName: "SEM ORDEM"},
}

func TestLegendsOrdered(t *testing.T) {
	s := New(sample)
	var labels []string
	for _, l := range s.All() {
		labels = append(labels, l.Label)
	}
	assert.Equal(t, []string{"C & O", "Vans", "Peças", "Serviços", "SEM ORDEM"}, labels)

	l, ok := s.Find("SEM ORDEM")
	require.True(t, ok)
	assert.Equal(t, DefaultOrder, l.Order)
}

func TestMembershipUnion(t *testing.T) {
	s := New(sample)
	l, ok := s.Find("serviços")
	require.True(t, ok)

	for _, sector := range []string{"401", "411", "oficina mecanica caminhoes", " OFICINA MECANICA VANS ", "Servicos"} {
		assert.True(t, l.Contains(sector), "sector %q", sector)
	}
	assert.False(t, l.Contains("300"))
	assert.False(t, l.Contains("Peças"))

	co, _ := s.Find("C & O")
	assert.True(t, co.Contains("VEICULOS CAMINHOES E ONIBUS"))
	assert.True(t, co.Contains("veiculos novos"))
}

func TestResolveUnknownLegend(t *testing.T) {
	s := New(sample)
	l := s.Resolve("Manual")
	assert.True(t, l.Contains("manual"))
	assert.False(t, l.Contains("100"))

	var nilLegend *Legend
	assert.False(t, nilLegend.Contains("100"))
}
