package scene_test

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"town-explorer/internal/camera"
	"town-explorer/internal/picking"
	"town-explorer/internal/primitives"
	"town-explorer/internal/scene"
	"town-explorer/internal/world"
)

func TestCloudsDriftAndWrap(t *testing.T) {
	c := scene.NewClouds(3, 10, 100, 40)
	require.Len(t, c.Items, 10)
	start := c.Items[0].Position

	c.Advance(0.5)
	moved := c.Items[0].Position
	if start.X+c.Items[0].Speed*0.5 <= c.MaxX {
		assert.InDelta(t, start.X+c.Items[0].Speed*0.5, moved.X, 1e-4)
	}
	assert.Equal(t, start.Z, moved.Z)

	for i := 0; i < 1000; i++ {
		c.Advance(0.1)
	}
	for _, cl := range c.Items {
		assert.GreaterOrEqual(t, cl.Position.X, c.MinX)
		assert.LessOrEqual(t, cl.Position.X, c.MaxX)
	}
}

func TestCloudsDeterministic(t *testing.T) {
	a := scene.NewClouds(11, 5, 200, 50)
	b := scene.NewClouds(11, 5, 200, 50)
	assert.Equal(t, a.Items, b.Items)
}

func TestBuildingPartsTagging(t *testing.T) {
	e := &world.Entity{ID: "bakery", Position: rl.NewVector3(10, 0, -5), Anchor: world.DefaultAnchor}
	parts := scene.BuildingParts(e, primitives.DefaultPalette().Building("shop"))
	require.NotEmpty(t, parts)

	var tagged, untagged int
	for _, p := range parts {
		if p.Owner == "" {
			untagged++
		} else {
			assert.Equal(t, "bakery", p.Owner)
			tagged++
		}
	}
	assert.Equal(t, 3, tagged)
	assert.Equal(t, 2, untagged)
}

func TestRegisteredBuildingIsPickable(t *testing.T) {
	e := &world.Entity{ID: "hall", Position: rl.NewVector3(0, 0, 0), Anchor: world.DefaultAnchor}
	reg := picking.NewRegistry()
	parts := scene.BuildingParts(e, primitives.DefaultPalette().Building("default"))
	ids := scene.RegisterParts(parts, reg)
	require.Len(t, ids, len(parts))
	assert.Equal(t, len(parts), reg.Len())

	hl := picking.NewHighlighter(0.35)
	svc := picking.NewService(picking.DefaultConfig(), camera.DefaultLens(), reg, hl, []*world.Entity{e})
	view := camera.View{Eye: rl.NewVector3(0, 3, 25), Target: rl.NewVector3(0, 3, 0), Up: rl.NewVector3(0, 1, 0)}
	vp := camera.Viewport{Width: 800, Height: 600}
	x, y := vp.Center()
	id, ok := svc.Resolve(view, vp, x, y)
	require.True(t, ok)
	assert.Equal(t, "hall", id)
}

func TestNewRegistersEveryBuilding(t *testing.T) {
	es := []*world.Entity{
		{ID: "a", Record: world.Record{Category: "landmark"}, Position: rl.NewVector3(0, 0, 0)},
		{ID: "b", Record: world.Record{Category: "home"}, Position: rl.NewVector3(30, 0, 0)},
	}
	reg := picking.NewRegistry()
	hl := picking.NewHighlighter(0.35)
	pal := primitives.DefaultPalette()
	s := scene.New(camera.DefaultLens(), pal, es, nil, reg, hl)
	require.NotNil(t, s)

	assert.Equal(t, 10, reg.Len())
	assert.InDelta(t, pal.Building("landmark").Emissive, hl.Emissive("a").Baseline, 1e-6)
	assert.False(t, hl.Emissive("b").Highlighted())

	s.Advance(1)
	s.SetPalette(pal)
}

func TestSetPaletteMovesEmissiveBaseline(t *testing.T) {
	es := []*world.Entity{
		{ID: "a", Record: world.Record{Category: "landmark"}},
		{ID: "b", Record: world.Record{Category: "home"}, Position: rl.NewVector3(30, 0, 0)},
	}
	hl := picking.NewHighlighter(0.35)
	s := scene.New(camera.DefaultLens(), primitives.DefaultPalette(), es, nil, picking.NewRegistry(), hl)
	hl.Highlight("b")

	reloaded := primitives.DefaultPalette()
	landmark := reloaded.Buildings["landmark"]
	landmark.Emissive = 0.3
	reloaded.Buildings["landmark"] = landmark
	home := reloaded.Building("home")
	home.Emissive = 0.1
	reloaded.Buildings["home"] = home
	s.SetPalette(reloaded)

	assert.Equal(t, picking.Emissive{Baseline: 0.3, Current: 0.3}, hl.Emissive("a"))
	b := hl.Emissive("b")
	assert.InDelta(t, 0.1, b.Baseline, 1e-6)
	assert.InDelta(t, 0.45, b.Current, 1e-6)
}
