package labels_test

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"town-explorer/internal/camera"
	"town-explorer/internal/labels"
	"town-explorer/internal/world"
)

var vp = camera.Viewport{Width: 1280, Height: 720}

func at(id string, x, z float32) *world.Entity {
	return &world.Entity{ID: id, Position: rl.NewVector3(x, 0, z), Anchor: rl.NewVector3(0, 9, 0)}
}

func TestLabelInFrontIsCentered(t *testing.T) {
	p := labels.New(labels.DefaultConfig(), camera.DefaultLens())
	v := camera.View{Eye: rl.NewVector3(0, 9, 20), Target: rl.NewVector3(0, 9, 0)}
	got := p.Project(v, vp, []*world.Entity{at("a", 0, 0)})
	require.Len(t, got, 1)
	assert.True(t, got[0].Visible)
	assert.InDelta(t, 640, got[0].X, 0.05)
	assert.InDelta(t, 360, got[0].Y, 0.05)
	assert.InDelta(t, 20, got[0].Distance, 1e-4)
	assert.Equal(t, float32(1), got[0].Opacity)
}

func TestLabelBehindCameraIsHidden(t *testing.T) {
	p := labels.New(labels.DefaultConfig(), camera.DefaultLens())
	// Looking away from the anchor: its screen coordinates would land mid-screen if mirrored.
	v := camera.View{Eye: rl.NewVector3(0, 9, 20), Target: rl.NewVector3(0, 9, 40)}
	got := p.Project(v, vp, []*world.Entity{at("a", 0, 0), at("b", 0, 2)})
	for _, l := range got {
		assert.False(t, l.Visible, l.ID)
	}
}

func TestLabelBeyondCutoffIsHidden(t *testing.T) {
	cfg := labels.DefaultConfig()
	p := labels.New(cfg, camera.DefaultLens())
	v := camera.View{Eye: rl.NewVector3(0, 9, cfg.Cutoff+5), Target: rl.NewVector3(0, 9, 0)}
	got := p.Project(v, vp, []*world.Entity{at("far", 0, 0)})
	assert.False(t, got[0].Visible)
	assert.Greater(t, got[0].Distance, cfg.Cutoff)
}

func TestOpacityFade(t *testing.T) {
	cfg := labels.Config{Near: 10, Far: 50, Cutoff: 100, MinOpacity: 0.25}
	p := labels.New(cfg, camera.DefaultLens())
	tests := []struct {
		d    float32
		want float32
	}{
		{0, 1},
		{10, 1},
		{20, 0.75},
		{30, 0.5},
		{40, 0.25},
		{45, 0.25},
		{80, 0.25},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, p.Opacity(tt.d), 1e-5, "distance %v", tt.d)
	}
}

func TestProjectReusesBuffer(t *testing.T) {
	p := labels.New(labels.DefaultConfig(), camera.DefaultLens())
	v := camera.View{Eye: rl.NewVector3(0, 9, 20), Target: rl.NewVector3(0, 9, 0)}
	ents := []*world.Entity{at("a", 0, 0), at("b", 5, 0)}
	first := p.Project(v, vp, ents)
	require.Len(t, first, 2)
	second := p.Project(v, vp, ents[:1])
	assert.Len(t, second, 1)
	assert.Equal(t, "a", second[0].ID)
}
