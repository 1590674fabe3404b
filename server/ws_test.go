package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"infragraph/cascade"
	"infragraph/catalog"
	"infragraph/graph"
)

func testHub(t *testing.T) *Hub {
	t.Helper()
	cat, err := catalog.Load("")
	require.NoError(t, err)

	hub := NewHub()
	hub.SetService(cascade.NewService(cat))
	go hub.Run()
	return hub
}

func TestHandleStats(t *testing.T) {
	hub := testHub(t)

	rec := httptest.NewRecorder()
	hub.HandleStats(rec, httptest.NewRequest("GET", "/api/stats", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var s graph.Stats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &s))
	assert.Equal(t, s.Nodes, s.Cables+s.Pipelines+s.Ports+s.Chokepoints+s.Countries)
	assert.Greater(t, s.Edges, 0)
}

func TestHandleCascade(t *testing.T) {
	hub := testHub(t)

	rec := httptest.NewRecorder()
	hub.HandleCascade(rec, httptest.NewRequest("GET", "/api/cascade?source=cable:marea&level=1.0", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var result cascade.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "cable:marea", result.Source.ID)
	assert.Equal(t, 1.0, result.DisruptionLevel)
	assert.NotEmpty(t, result.CountriesAffected)
}

func TestHandleCascadeMissingSource(t *testing.T) {
	hub := testHub(t)

	rec := httptest.NewRecorder()
	hub.HandleCascade(rec, httptest.NewRequest("GET", "/api/cascade", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleCascadeBadLevel(t *testing.T) {
	hub := testHub(t)

	rec := httptest.NewRecorder()
	hub.HandleCascade(rec, httptest.NewRequest("GET", "/api/cascade?source=cable:marea&level=abc", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleCascadeUnknownSource(t *testing.T) {
	hub := testHub(t)

	rec := httptest.NewRecorder()
	hub.HandleCascade(rec, httptest.NewRequest("GET", "/api/cascade?source=cable:doesnotexist", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "cable:doesnotexist")
}

func TestHandleGraph(t *testing.T) {
	hub := testHub(t)

	rec := httptest.NewRecorder()
	hub.HandleGraph(rec, httptest.NewRequest("GET", "/api/graph", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var g struct {
		Nodes map[string]json.RawMessage `json:"nodes"`
		Edges []json.RawMessage          `json:"edges"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &g))
	assert.NotEmpty(t, g.Nodes)
	assert.NotEmpty(t, g.Edges)
}
