package scatter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"town-explorer/internal/scatter"
)

// regressionOptions is the reference configuration: seed 42, a 250x250 region around the
// origin, a 48 unit clearing around the town center and no occupied plots.
func regressionOptions() scatter.Options {
	opts := scatter.DefaultOptions()
	opts.Seed = 42
	opts.Count = 600
	opts.Center = scatter.Point{}
	opts.Width, opts.Depth = 250, 250
	opts.CenterRadius = 48
	opts.PlotRadius = 0
	opts.Occupied = nil
	return opts
}

func TestPlanRegressionFixture(t *testing.T) {
	got := scatter.Plan(regressionOptions())
	require.Len(t, got, 546)

	want := []scatter.Point{
		{X: -124.91782312277603, Z: 6.14677550324555},
		{X: -75.92854355505133, Z: 118.96847025210434},
		{X: -98.22818635647566, Z: 78.87190671352292},
		{X: -63.147969980793064, Z: -77.93146718895596},
		{X: 8.6027318069724, Z: 86.11347978520834},
	}
	for i, w := range want {
		assert.InDelta(t, w.X, got[i].X, 1e-9, "x of instance %d", i)
		assert.InDelta(t, w.Z, got[i].Z, 1e-9, "z of instance %d", i)
	}
	last := got[len(got)-1]
	assert.InDelta(t, 92.30124960527814, last.X, 1e-9)
	assert.InDelta(t, 57.10211590961654, last.Z, 1e-9)

	assert.InDelta(t, 1.1883388257531164, got[0].Scale, 1e-9)
	assert.Equal(t, 0, got[0].Variant)
	assert.Equal(t, 1, got[1].Variant)
}

func TestPlanIsDeterministic(t *testing.T) {
	opts := regressionOptions()
	opts.Occupied = []scatter.Point{{X: 60, Z: 60}, {X: -70, Z: 20}}
	opts.PlotRadius = 12
	assert.Equal(t, scatter.Plan(opts), scatter.Plan(opts))
}

func TestPlanHonorsExclusions(t *testing.T) {
	occupied := []scatter.Point{{X: 55, Z: 0}, {X: -60, Z: 35}, {X: 10, Z: -80}, {X: 90, Z: 90}}
	opts := scatter.Options{
		Kind:         "grass",
		Seed:         9001,
		Count:        2000,
		Center:       scatter.Point{X: 5, Z: -3},
		Width:        250,
		Depth:        250,
		CenterRadius: 48,
		PlotRadius:   15,
		Occupied:     occupied,
		MinScale:     0.5,
		MaxScale:     1,
		Variants:     2,
	}
	got := scatter.Plan(opts)
	require.NotEmpty(t, got)
	assert.LessOrEqual(t, len(got), opts.Count)
	for _, in := range got {
		p := scatter.Point{X: in.X, Z: in.Z}
		assert.GreaterOrEqual(t, scatter.Distance(p, opts.Center), opts.CenterRadius)
		for _, o := range occupied {
			assert.GreaterOrEqual(t, scatter.Distance(p, o), opts.PlotRadius)
		}
		assert.GreaterOrEqual(t, in.Scale, 0.5)
		assert.Less(t, in.Scale, 1.0)
		assert.Contains(t, []int{0, 1}, in.Variant)
		assert.Equal(t, "grass", in.Kind)
	}
}

func TestPlanSkipsInsteadOfRetrying(t *testing.T) {
	// A clearing covering the whole region rejects every candidate; a resampling planner would loop.
	opts := regressionOptions()
	opts.CenterRadius = 1000
	assert.Empty(t, scatter.Plan(opts))

	// Growing the exclusion can only remove candidates from the same draw sequence prefix.
	small := regressionOptions()
	small.CenterRadius = 10
	assert.Greater(t, len(scatter.Plan(small)), len(scatter.Plan(regressionOptions())))
}

func TestPlanAllUsesIndependentPasses(t *testing.T) {
	flowers := regressionOptions()
	grass := regressionOptions()
	grass.Kind = "grass"
	grass.Seed = 7
	grass.CenterRadius = 0
	grass.Width, grass.Depth = 90, 90
	grass.Count = 100

	all := scatter.PlanAll([]scatter.Options{flowers, grass})
	nf := len(scatter.Plan(flowers))
	require.Len(t, all, nf+100)
	assert.Equal(t, scatter.Plan(flowers), all[:nf])
	assert.Equal(t, "grass", all[nf].Kind)
}

func TestPlanDegenerateInput(t *testing.T) {
	assert.Nil(t, scatter.Plan(scatter.Options{Count: 0, Width: 10, Depth: 10}))
	assert.Nil(t, scatter.Plan(scatter.Options{Count: 10}))
}
