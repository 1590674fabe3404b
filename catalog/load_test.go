package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbeddedDefaults(t *testing.T) {
	cat, err := Load("")
	require.NoError(t, err)

	assert.NotEmpty(t, cat.Cables)
	assert.NotEmpty(t, cat.Pipelines)
	assert.NotEmpty(t, cat.Ports)
	assert.Len(t, cat.Chokepoints, 9)

	ids := make(map[string]bool)
	for _, cp := range cat.Chokepoints {
		ids[cp.ID] = true
	}
	for _, id := range []string{"suez", "hormuz_strait", "malacca_strait", "bab_el_mandeb", "panama", "gibraltar", "bosphorus", "dardanelles", "taiwan_strait"} {
		assert.True(t, ids[id], "missing chokepoint %s", id)
	}

	marea, ok := cat.CableByID("marea")
	require.True(t, ok)
	assert.Equal(t, "MAREA", marea.Name)
	require.Len(t, marea.CountriesServed, 2)
	assert.Equal(t, 0.4, marea.CountriesServed[0].CapacityShare)

	_, ok = cat.CableByID("doesnotexist")
	assert.False(t, ok)
}

func TestLoadMissingDir(t *testing.T) {
	_, err := Load("/nonexistent/catalog/dir")
	assert.Error(t, err)
}

func TestApplyPortRanks(t *testing.T) {
	cat := &Catalog{Ports: []Port{
		{ID: "shanghai", Name: "Shanghai", Rank: 1},
		{ID: "rotterdam", Name: "Port of Rotterdam", Rank: 10},
		{ID: "aden", Name: "Aden", Rank: 30},
	}}

	updated := cat.ApplyPortRanks(map[string]int{
		"shanghai":  1, // unchanged
		"rotterdam": 12,
	})

	assert.Equal(t, 1, updated)
	assert.Equal(t, 12, cat.Ports[1].Rank)
	assert.Equal(t, 30, cat.Ports[2].Rank, "unmatched ports keep their rank")
}
