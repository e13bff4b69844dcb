package world_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"town-explorer/internal/logger"
	"town-explorer/internal/world"
)

const sample = `[
  {"id": "bakery", "plot": 3, "name": "Bakery", "description": "Fresh bread", "category": "shop",
   "contributor": {"handle": "flour", "avatar": "avatars/flour.png"}},
  {"id": "tower", "plot": 99, "name": "Tower", "category": "landmark"},
  {"id": "bakery", "plot": 4, "name": "Second bakery"},
  {"plot": 5, "name": "Nameless"}
]`

func TestPlotTable(t *testing.T) {
	assert.Equal(t, 41, world.PlotCount())
	p, ok := world.PlotAt(40)
	assert.True(t, ok)
	assert.NotEqual(t, world.Plot{}, p)
}

func TestOutOfRangePlotFallsBackToZero(t *testing.T) {
	zero, ok := world.PlotAt(0)
	require.True(t, ok)
	for _, i := range []int{99, 41, -1} {
		p, ok := world.PlotAt(i)
		assert.False(t, ok, "index %d", i)
		assert.Equal(t, zero, p, "index %d", i)
	}
}

func TestBuild(t *testing.T) {
	recs, err := world.DecodeRecords([]byte(sample))
	require.NoError(t, err)
	log := logger.NewNop()

	ents := world.Build(recs, log)
	require.Len(t, ents, 2)

	p3, _ := world.PlotAt(3)
	assert.Equal(t, "bakery", ents[0].ID)
	assert.Equal(t, 3, ents[0].PlotIndex)
	assert.Equal(t, p3.X, ents[0].Position.X)
	assert.Equal(t, p3.Z, ents[0].Position.Z)
	assert.Equal(t, p3.Facing, ents[0].Yaw)
	assert.Equal(t, "flour", ents[0].Record.Contributor.Handle)

	p0, _ := world.PlotAt(0)
	assert.Equal(t, 0, ents[1].PlotIndex)
	assert.Equal(t, p0.X, ents[1].Position.X)
	assert.Equal(t, p0.Z, ents[1].Position.Z)

	lines := strings.Join(log.Lines(), "\n")
	assert.Contains(t, lines, "plot index out of range")
	assert.Contains(t, lines, "duplicate entity id")
	assert.Contains(t, lines, "without id")
}

func TestAnchorWorld(t *testing.T) {
	ents := world.Build([]world.Record{{ID: "a", Plot: 7}}, logger.NewNop())
	require.Len(t, ents, 1)
	a := ents[0].AnchorWorld()
	assert.InDelta(t, ents[0].Position.X, a.X, 1e-4)
	assert.InDelta(t, world.DefaultAnchor.Y, a.Y, 1e-4)
	assert.InDelta(t, ents[0].Position.Z, a.Z, 1e-4)
}

func TestOccupied(t *testing.T) {
	ents := world.Build([]world.Record{{ID: "a", Plot: 1}, {ID: "b", Plot: 2}}, logger.NewNop())
	occ := world.Occupied(ents)
	require.Len(t, occ, 2)
	p1, _ := world.PlotAt(1)
	assert.InDelta(t, float64(p1.X), occ[0].X, 1e-6)
	assert.InDelta(t, float64(p1.Z), occ[0].Z, 1e-6)
	assert.Len(t, world.ByID(ents), 2)
}

func TestDecodeWrappedPayload(t *testing.T) {
	recs, err := world.DecodeRecords([]byte(`{"buildings": [{"id": "x", "plot": 1}]}`))
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "x", recs[0].ID)

	_, err = world.DecodeRecords([]byte(`not json`))
	assert.Error(t, err)
}

func TestLoadRecordsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "buildings.json")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0644))
	recs, err := world.LoadRecords(context.Background(), path, world.DefaultFetchOptions())
	require.NoError(t, err)
	assert.Len(t, recs, 4)
}

func TestLoadRecordsOrEmptyDegrades(t *testing.T) {
	log := logger.NewNop()
	recs := world.LoadRecordsOrEmpty(context.Background(), filepath.Join(t.TempDir(), "missing.json"), world.DefaultFetchOptions(), log)
	assert.NotNil(t, recs)
	assert.Empty(t, recs)
	assert.Contains(t, strings.Join(log.Lines(), "\n"), "entity list unavailable")
}

func TestLoadRecordsOverHTTPRetries(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(sample))
	}))
	defer srv.Close()

	opts := world.FetchOptions{Attempts: 3, Delay: time.Millisecond, Timeout: time.Second}
	recs, err := world.LoadRecords(context.Background(), srv.URL, opts)
	require.NoError(t, err)
	assert.Len(t, recs, 4)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestLoadRecordsOverHTTPClientErrorIsFinal(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	opts := world.FetchOptions{Attempts: 3, Delay: time.Millisecond, Timeout: time.Second}
	_, err := world.LoadRecords(context.Background(), srv.URL, opts)
	assert.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}
